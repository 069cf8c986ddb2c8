// Package eventloop provides the single-goroutine event loop that owns all
// client-side state transitions. User actions and network completions are
// funneled through Dispatch so signal writes are serialized without locks,
// matching the interleaving-only concurrency model of a UI runtime.
package eventloop

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
)

// DefaultQueueSize is the dispatch queue capacity.
// Network completions for a single page rarely exceed a handful in flight;
// the queue only needs to absorb bursts between loop ticks.
const DefaultQueueSize = 256

// Option configures a Loop.
type Option func(*Loop)

// WithLogger sets the logger used for dropped-callback warnings.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Loop) {
		l.logger = logger
	}
}

// WithQueueSize sets the dispatch queue capacity.
func WithQueueSize(n int) Option {
	return func(l *Loop) {
		if n > 0 {
			l.queueSize = n
		}
	}
}

// WithContext sets the standard context returned by StdContext.
// Remote calls issued by controllers derive from it, so cancelling it
// tears down all in-flight network work for the page.
func WithContext(ctx context.Context) Option {
	return func(l *Loop) {
		l.stdCtx = ctx
	}
}

// Loop runs queued functions one at a time on a dedicated goroutine.
// It is the client-side analogue of a browser event loop: there is no
// parallel execution of state transitions, only interleaving of
// completions in dispatch order.
type Loop struct {
	dispatchCh chan func()
	done       chan struct{}
	closed     atomic.Bool
	closeOnce  sync.Once
	wg         sync.WaitGroup

	queueSize int
	stdCtx    context.Context
	logger    *slog.Logger
}

// New creates a Loop and starts its goroutine.
func New(opts ...Option) *Loop {
	l := &Loop{
		queueSize: DefaultQueueSize,
		stdCtx:    context.Background(),
		logger:    slog.Default(),
	}

	for _, opt := range opts {
		opt(l)
	}

	l.dispatchCh = make(chan func(), l.queueSize)
	l.done = make(chan struct{})

	l.wg.Add(1)
	go l.run()

	return l
}

// run executes dispatched functions in order until the loop is closed.
func (l *Loop) run() {
	defer l.wg.Done()

	for {
		select {
		case fn := <-l.dispatchCh:
			fn()
		case <-l.done:
			// Drain anything queued before shutdown was requested.
			for {
				select {
				case fn := <-l.dispatchCh:
					fn()
				default:
					return
				}
			}
		}
	}
}

// Dispatch queues a function to run on the loop.
// This is safe to call from any goroutine and is the correct way to apply
// signal updates from asynchronous operations (network completions, timers).
//
// After Close, Dispatch silently discards the callback: a completion
// arriving for a torn-down page must be a no-op, never an error.
func (l *Loop) Dispatch(fn func()) {
	if l.closed.Load() {
		return
	}
	select {
	case l.dispatchCh <- fn:
		// Successfully queued
	case <-l.done:
		// Loop is closing, discard
	default:
		// Queue full - this shouldn't happen normally, but log it
		l.logger.Warn("dispatch queue full, discarding callback")
	}
}

// Sync dispatches fn and blocks until it has run.
// Returns false without running fn if the loop is closed.
// Useful for tests and the CLI, where the caller needs the settled state.
func (l *Loop) Sync(fn func()) bool {
	if l.closed.Load() {
		return false
	}

	ran := make(chan struct{})
	wrapped := func() {
		fn()
		close(ran)
	}

	select {
	case l.dispatchCh <- wrapped:
		// Queued; the drain pass runs it even if Close races with us.
		<-ran
		return true
	case <-l.done:
		return false
	}
}

// StdContext returns the standard library context for this loop.
// Use it when issuing remote calls from dispatched work.
func (l *Loop) StdContext() context.Context {
	return l.stdCtx
}

// Closed reports whether Close has been called.
func (l *Loop) Closed() bool {
	return l.closed.Load()
}

// Close stops the loop after draining already-queued functions.
// Subsequent Dispatch calls are discarded. Close is idempotent and blocks
// until the loop goroutine has exited.
func (l *Loop) Close() {
	l.closeOnce.Do(func() {
		l.closed.Store(true)
		close(l.done)
	})
	l.wg.Wait()
}
