package clock

import (
	"time"

	"github.com/xvierd/pomodomate/internal/ports"
)

// Fake is a deterministic scheduler driven by Advance. Callbacks run on the
// caller's goroutine, in due-time order, so tests observe every tick.
type Fake struct {
	elapsed time.Duration
	next    ports.TickHandle
	pending map[ports.TickHandle]fakeTimer
}

type fakeTimer struct {
	due      time.Duration
	callback func()
}

// NewFake creates a fake scheduler at elapsed time zero.
func NewFake() *Fake {
	return &Fake{pending: make(map[ports.TickHandle]fakeTimer)}
}

// ScheduleTick implements ports.Scheduler.
func (f *Fake) ScheduleTick(callback func(), after time.Duration) ports.TickHandle {
	f.next++
	f.pending[f.next] = fakeTimer{due: f.elapsed + after, callback: callback}
	return f.next
}

// Cancel implements ports.Scheduler.
func (f *Fake) Cancel(handle ports.TickHandle) {
	delete(f.pending, handle)
}

// Pending returns how many callbacks are still scheduled.
func (f *Fake) Pending() int {
	return len(f.pending)
}

// Elapsed returns the total time advanced so far.
func (f *Fake) Elapsed() time.Duration {
	return f.elapsed
}

// Advance moves time forward by d, running every callback that falls due,
// including ones scheduled by callbacks along the way.
func (f *Fake) Advance(d time.Duration) {
	target := f.elapsed + d
	for {
		handle, timer, ok := f.earliestDue(target)
		if !ok {
			break
		}
		delete(f.pending, handle)
		f.elapsed = timer.due
		timer.callback()
	}
	f.elapsed = target
}

// earliestDue finds the next callback due at or before target. Ties go to the
// lower handle, i.e. the one scheduled first.
func (f *Fake) earliestDue(target time.Duration) (ports.TickHandle, fakeTimer, bool) {
	var (
		bestHandle ports.TickHandle
		best       fakeTimer
		found      bool
	)
	for handle, timer := range f.pending {
		if timer.due > target {
			continue
		}
		if !found || timer.due < best.due || (timer.due == best.due && handle < bestHandle) {
			bestHandle, best, found = handle, timer, true
		}
	}
	return bestHandle, best, found
}

// Ensure Fake implements ports.Scheduler.
var _ ports.Scheduler = (*Fake)(nil)
