package dispatch

import (
	"context"
	"errors"
	"sync"
)

var ErrStopped = errors.New("main loop stopped")

// Queue is the main loop. Every observable state change is applied by
// functions run one at a time, in submission order, on the goroutine
// executing Run.
type Queue struct {
	mu      sync.Mutex
	pending []func()
	wake    chan struct{}

	stopped  chan struct{}
	stopOnce sync.Once
}

// NewQueue creates an idle queue. Nothing runs until Run is called.
func NewQueue() *Queue {
	return &Queue{
		wake:    make(chan struct{}, 1),
		stopped: make(chan struct{}),
	}
}

// Do enqueues fn and returns immediately. It never blocks, so it is safe to
// call from inside a function already running on the loop.
func (q *Queue) Do(fn func()) {
	q.mu.Lock()
	q.pending = append(q.pending, fn)
	q.mu.Unlock()

	select {
	case q.wake <- struct{}{}:
	default:
	}
}

// Sync enqueues fn and waits for it to finish. Once Run has returned, fn is
// not run and ErrStopped is returned. It must not be called from the loop
// goroutine.
func (q *Queue) Sync(fn func()) error {
	done := make(chan struct{})
	q.Do(func() {
		defer close(done)
		fn()
	})

	select {
	case <-done:
		return nil
	case <-q.stopped:
		// fn may have been the last function the loop ran
		select {
		case <-done:
			return nil
		default:
			return ErrStopped
		}
	}
}

// Run executes queued functions until ctx is cancelled. A queue runs once.
func (q *Queue) Run(ctx context.Context) {
	defer q.stopOnce.Do(func() { close(q.stopped) })

	for {
		select {
		case <-ctx.Done():
			return
		case <-q.wake:
		}

		for {
			q.mu.Lock()
			if len(q.pending) == 0 {
				q.mu.Unlock()
				break
			}
			batch := q.pending
			q.pending = nil
			q.mu.Unlock()

			for _, fn := range batch {
				fn()
			}
		}
	}
}
