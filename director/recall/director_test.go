package recall

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/they4kman/concord/game"
)

// immediate applies deferred events as soon as the test asks for them
type immediate struct {
	events []game.Event
}

func (scheduler *immediate) After(_ time.Duration, event game.Event) {
	scheduler.events = append(scheduler.events, event)
}

func (scheduler *immediate) flush(session *game.Session) {
	for _, event := range scheduler.events {
		session.Apply(event)
	}
	scheduler.events = nil
}

func TestDirectorNeverNeedsMoreThanTwoAttemptsPerPair(t *testing.T) {
	for _, size := range []int{2, 4, 5, 6, 8} {
		t.Run(fmt.Sprintf("%dx%d", size, size), func(t *testing.T) {
			board, err := game.NewBoard(game.BoardConfig{Size: size, Wildcard: true, Seed: int64(size) * 31})
			require.NoError(t, err)

			log, _ := test.NewNullLogger()
			scheduler := &immediate{}
			session := game.NewSession(board, scheduler, log)

			director := &Director{}
			director.Init(session)

			for !session.IsComplete() {
				id, ok := director.Next()
				require.True(t, ok)
				require.NotEqual(t, game.Ignored, session.SelectTile(id).Outcome, "tile %d", id)
				scheduler.flush(session)
			}

			assert.LessOrEqual(t, session.Attempts(), 2*board.TotalPairs())
			assert.Equal(t, board.TotalPairs(), session.PairsFound())
		})
	}
}

func TestDirectorCompletesKnownPair(t *testing.T) {
	snapshot := &game.BoardSnapshot{SerializedBoard: "1 2\n2 1"}
	board, err := snapshot.CreateBoard()
	require.NoError(t, err)

	log, _ := test.NewNullLogger()
	scheduler := &immediate{}
	session := game.NewSession(board, scheduler, log)

	director := &Director{}
	director.Init(session)

	// Explores 0 then 1, which mismatch
	for _, expected := range []int{0, 1} {
		id, ok := director.Next()
		require.True(t, ok)
		require.Equal(t, expected, id)
		session.SelectTile(id)
	}
	scheduler.flush(session)

	// 2 is new, and its partner 1 is remembered
	for _, expected := range []int{2, 1} {
		id, _ := director.Next()
		assert.Equal(t, expected, id)
		session.SelectTile(id)
	}
	assert.Equal(t, 1, session.PairsFound())

	// Only 0 and 3 are left; 0 is known but 3 is not
	id, _ := director.Next()
	assert.Equal(t, 3, id)
}

func TestAutoplayWithDirector(t *testing.T) {
	snapshot := &game.BoardSnapshot{SerializedBoard: "1 1 2\n3 * 2\n4 4 3"}
	board, err := snapshot.CreateBoard()
	require.NoError(t, err)

	log, _ := test.NewNullLogger()
	loop := game.NewLoop(clock.New())
	session := game.NewSession(board, loop, log)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	complete, err := game.Autoplay(ctx, game.AutoplayConfig{
		Loop:     loop,
		Session:  session,
		Director: &Director{},
		Interval: time.Millisecond,
	})
	require.NoError(t, err)
	assert.Equal(t, session.Attempts(), complete.Attempts)
	assert.Equal(t, 4, session.PairsFound())
}
