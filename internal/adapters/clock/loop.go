// Package clock provides schedulers for the timer engine: a real-time event
// loop for headless commands and a fake for tests.
package clock

import (
	"context"
	"sync"
	"time"

	"github.com/xvierd/pomodomate/internal/domain"
	"github.com/xvierd/pomodomate/internal/ports"
)

// Loop is a single-goroutine event queue. Everything posted to it, including
// expired ticks, runs sequentially inside Run, so the state it drives needs no locks.
// A Loop is single use: once Run returns it rejects further work.
type Loop struct {
	queue chan func()
	done  chan struct{}

	mu     sync.Mutex
	next   ports.TickHandle
	timers map[ports.TickHandle]*loopTimer
}

type loopTimer struct {
	timer    *time.Timer
	callback func()
}

// NewLoop creates a loop. Call Run to start draining it.
func NewLoop() *Loop {
	return &Loop{
		queue:  make(chan func(), 64),
		done:   make(chan struct{}),
		timers: make(map[ports.TickHandle]*loopTimer),
	}
}

// Run drains the queue until ctx is cancelled.
func (l *Loop) Run(ctx context.Context) error {
	defer close(l.done)
	defer l.stopTimers()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case fn := <-l.queue:
			fn()
		}
	}
}

// Post enqueues fn without waiting for it. It returns false once the loop has stopped.
func (l *Loop) Post(fn func()) bool {
	select {
	case <-l.done:
		return false
	case l.queue <- fn:
		return true
	}
}

// Do implements ports.EventLoop. It must not be called from inside the loop.
func (l *Loop) Do(ctx context.Context, fn func()) error {
	finished := make(chan struct{})
	wrapped := func() {
		defer close(finished)
		fn()
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-l.done:
		return domain.ErrLoopStopped
	case l.queue <- wrapped:
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-l.done:
		return domain.ErrLoopStopped
	case <-finished:
		return nil
	}
}

// ScheduleTick implements ports.Scheduler. The callback runs on the loop.
func (l *Loop) ScheduleTick(callback func(), after time.Duration) ports.TickHandle {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.next++
	handle := l.next
	l.timers[handle] = &loopTimer{
		callback: callback,
		timer: time.AfterFunc(after, func() {
			l.Post(func() { l.fire(handle) })
		}),
	}
	return handle
}

// Cancel implements ports.Scheduler. An expiry that is already queued is
// discarded when it reaches the front, because its handle is gone.
func (l *Loop) Cancel(handle ports.TickHandle) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if t, ok := l.timers[handle]; ok {
		t.timer.Stop()
		delete(l.timers, handle)
	}
}

func (l *Loop) fire(handle ports.TickHandle) {
	l.mu.Lock()
	t, ok := l.timers[handle]
	delete(l.timers, handle)
	l.mu.Unlock()

	if ok {
		t.callback()
	}
}

func (l *Loop) stopTimers() {
	l.mu.Lock()
	defer l.mu.Unlock()

	for handle, t := range l.timers {
		t.timer.Stop()
		delete(l.timers, handle)
	}
}

// Ensure Loop implements the scheduling ports.
var (
	_ ports.Scheduler = (*Loop)(nil)
	_ ports.EventLoop = (*Loop)(nil)
)
