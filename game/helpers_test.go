package game

import (
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

// pendingEvents records deferred events so tests decide when they fire
type pendingEvents struct {
	delays []time.Duration
	events []Event
}

func (pending *pendingEvents) After(d time.Duration, event Event) {
	pending.delays = append(pending.delays, d)
	pending.events = append(pending.events, event)
}

func (pending *pendingEvents) fire(session *Session) []Result {
	var results []Result
	for _, event := range pending.events {
		results = append(results, session.Apply(event))
	}
	pending.events = nil
	return results
}

func nullLogger() logrus.FieldLogger {
	log, _ := test.NewNullLogger()
	return log
}

// boardFromRows builds a fixed layout, e.g. boardFromRows(t, "1 2", "1 2")
func boardFromRows(t *testing.T, rows ...string) *Board {
	t.Helper()

	snapshot := &BoardSnapshot{Seed: 1, SerializedBoard: strings.Join(rows, "\n")}
	board, err := snapshot.CreateBoard()
	require.NoError(t, err)
	return board
}

func newTestSession(t *testing.T, rows ...string) (*Session, *pendingEvents) {
	t.Helper()

	pending := &pendingEvents{}
	return NewSession(boardFromRows(t, rows...), pending, nullLogger()), pending
}

type tileFlags struct {
	revealed, matched bool
}

func flagsOf(board *Board) []tileFlags {
	flags := make([]tileFlags, board.NumTiles())
	for i, tile := range board.Tiles() {
		flags[i] = tileFlags{tile.IsRevealed(), tile.IsMatched()}
	}
	return flags
}
