// Package poller runs a fetch-then-apply cycle on a fixed interval for as
// long as its owning view is alive.
package poller

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"cryptoex/internal/metrics"
)

// DefaultInterval is used when a Task leaves Interval unset.
const DefaultInterval = 60 * time.Second

// Task describes one polling view. Fetch may block on I/O; Apply publishes
// the result and is never called once the task's context is done.
type Task[T any] struct {
	Name     string
	Interval time.Duration
	Fetch    func(ctx context.Context) (T, error)
	Apply    func(T)
	// OnError is optional. A failed tick is not retried; the next tick is
	// an independent attempt.
	OnError func(error)
}

// Run executes the task immediately and then every Interval until ctx is
// done. It returns ctx.Err().
func Run[T any](ctx context.Context, task Task[T], log *zap.SugaredLogger) error {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	if task.Interval <= 0 {
		task.Interval = DefaultInterval
	}

	tick := func() {
		v, err := task.Fetch(ctx)
		// The view may have been torn down while Fetch was in flight.
		if ctx.Err() != nil {
			metrics.PollTick(task.Name, "discarded")
			log.Debugw("discarding result after cancellation", "task", task.Name)
			return
		}
		if err != nil {
			metrics.PollTick(task.Name, "failed")
			log.Warnw("poll failed", "task", task.Name, "error", err)
			if task.OnError != nil {
				task.OnError(err)
			}
			return
		}
		metrics.PollTick(task.Name, "applied")
		task.Apply(v)
	}

	tick()

	ticker := time.NewTicker(task.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Debugw("poller stopped", "task", task.Name)
			return ctx.Err()
		case <-ticker.C:
			tick()
		}
	}
}

// Start runs task in a new goroutine. The returned stop function cancels
// the task and waits for it to exit, so no Apply happens after stop
// returns. stop is safe to call more than once.
func Start[T any](parent context.Context, task Task[T], log *zap.SugaredLogger) (stop func()) {
	ctx, cancel := context.WithCancel(parent)
	done := make(chan struct{})

	go func() {
		defer close(done)
		_ = Run(ctx, task, log)
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			cancel()
			<-done
		})
	}
}
