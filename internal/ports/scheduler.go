package ports

import (
	"context"
	"time"
)

// TickHandle identifies a scheduled callback. The zero value means "nothing scheduled".
type TickHandle uint64

// Scheduler runs a callback once after a delay, on the host's event queue.
// This is a driven port (implemented by the clock and TUI adapters).
type Scheduler interface {
	// ScheduleTick arranges for callback to run once after the given delay.
	ScheduleTick(callback func(), after time.Duration) TickHandle

	// Cancel invalidates a pending callback. Once Cancel returns, the callback
	// will not run, even if its timer already expired. Unknown handles are ignored.
	Cancel(handle TickHandle)
}

// EventLoop serializes work onto a single execution context.
// This is a driven port (implemented by clock.Loop).
type EventLoop interface {
	// Do runs fn on the loop and waits for it to return.
	Do(ctx context.Context, fn func()) error
}

// RandomSource picks uniformly distributed indexes.
type RandomSource interface {
	// Intn returns a value in [0, n).
	Intn(n int) int
}
