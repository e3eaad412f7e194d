package game

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

var ErrStalled = errors.New("director has no tile to select")

type AutoplayConfig struct {
	Loop     *Loop
	Session  *Session
	Director Director

	// Time between the director's selections
	Interval time.Duration
}

// Autoplay lets the director play the session to completion. Selections and
// deferred hides are all applied on the calling goroutine.
func Autoplay(ctx context.Context, config AutoplayConfig) (GameComplete, error) {
	loop, session := config.Loop, config.Session

	var complete *GameComplete
	session.Subscribe(func(notification Notification) {
		if done, isComplete := notification.(GameComplete); isComplete {
			complete = &done
		}
	})

	config.Director.Init(session)

	tick := loop.Clock().Ticker(config.Interval)
	defer tick.Stop()

	for {
		loop.Drain(session)
		if complete != nil {
			return *complete, nil
		}

		select {
		case <-ctx.Done():
			return GameComplete{}, ctx.Err()
		case <-tick.C:
		}

		// Wait out the hide delay before picking again
		if session.Phase() == Resolving {
			continue
		}

		id, ok := config.Director.Next()
		if !ok {
			return GameComplete{}, errors.Wrapf(ErrStalled, "after %d attempts", session.Attempts())
		}
		loop.Post(TileSelected{ID: id})
	}
}
