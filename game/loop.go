package game

import (
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/gammazero/deque"
)

// Loop is a serial event queue. Events may be posted from any goroutine, but
// they are only ever applied by whoever calls Drain.
type Loop struct {
	clock clock.Clock

	lock  sync.Mutex
	queue deque.Deque
}

func NewLoop(clk clock.Clock) *Loop {
	return &Loop{clock: clk}
}

func (loop *Loop) Clock() clock.Clock {
	return loop.clock
}

func (loop *Loop) Post(event Event) {
	loop.lock.Lock()
	defer loop.lock.Unlock()

	loop.queue.PushBack(event)
}

// After posts the event once, when d has elapsed on the loop's clock
func (loop *Loop) After(d time.Duration, event Event) {
	loop.clock.AfterFunc(d, func() {
		loop.Post(event)
	})
}

func (loop *Loop) Len() int {
	loop.lock.Lock()
	defer loop.lock.Unlock()

	return loop.queue.Len()
}

// Reset drops every queued event
func (loop *Loop) Reset() {
	loop.lock.Lock()
	defer loop.lock.Unlock()

	loop.queue = deque.Deque{}
}

// Drain applies queued events in order, including any posted while draining,
// and returns how many were applied
func (loop *Loop) Drain(handler Handler) int {
	applied := 0
	for {
		event, ok := loop.pop()
		if !ok {
			return applied
		}

		handler.Apply(event)
		applied++
	}
}

func (loop *Loop) pop() (Event, bool) {
	loop.lock.Lock()
	defer loop.lock.Unlock()

	if loop.queue.Len() == 0 {
		return nil, false
	}
	return loop.queue.PopFront().(Event), true
}
