// Package timer implements the countdown engine behind every pomodoro interval.
package timer

import (
	"time"

	"github.com/xvierd/pomodomate/internal/ports"
)

// TickInterval is the real-time spacing between decrements.
const TickInterval = time.Second

// Engine owns the remaining-seconds countdown and the running flag.
// It schedules one tick at a time on the injected scheduler and is not safe
// for concurrent use; all calls must come from the scheduler's event queue.
type Engine struct {
	scheduler  ports.Scheduler
	onComplete func()
	remaining  int
	running    bool
	pending    ports.TickHandle
}

// New creates a stopped engine with zero remaining time.
func New(scheduler ports.Scheduler) *Engine {
	return &Engine{scheduler: scheduler}
}

// OnComplete sets the callback invoked when the countdown reaches zero.
func (e *Engine) OnComplete(callback func()) {
	e.onComplete = callback
}

// Remaining returns the seconds left in the current countdown.
func (e *Engine) Remaining() int {
	return e.remaining
}

// Running returns true while the countdown is decrementing.
func (e *Engine) Running() bool {
	return e.running
}

// Start begins decrementing once per second.
// It is a no-op when already running or when nothing is left to count.
func (e *Engine) Start() {
	if e.running || e.remaining == 0 {
		return
	}
	e.running = true
	e.scheduleNext()
}

// Pause halts the countdown without losing the remaining time.
func (e *Engine) Pause() {
	e.running = false
	e.cancelPending()
}

// Toggle flips between running and paused.
func (e *Engine) Toggle() {
	if e.running {
		e.Pause()
		return
	}
	e.Start()
}

// Reset stops the countdown and sets a new remaining time.
// Negative values are treated as zero.
func (e *Engine) Reset(seconds int) {
	e.running = false
	e.cancelPending()
	if seconds < 0 {
		seconds = 0
	}
	e.remaining = seconds
}

func (e *Engine) scheduleNext() {
	var handle ports.TickHandle
	handle = e.scheduler.ScheduleTick(func() { e.tick(handle) }, TickInterval)
	e.pending = handle
}

func (e *Engine) cancelPending() {
	if e.pending != 0 {
		e.scheduler.Cancel(e.pending)
		e.pending = 0
	}
}

// tick handles one scheduled decrement. Ticks from a superseded handle are
// dropped so a pause or reset can never be undone by a late callback.
func (e *Engine) tick(handle ports.TickHandle) {
	if handle != e.pending || !e.running {
		return
	}
	e.pending = 0

	if e.remaining > 0 {
		e.remaining--
	}

	if e.remaining == 0 {
		e.running = false
		if e.onComplete != nil {
			e.onComplete()
		}
		return
	}

	e.scheduleNext()
}
