package vlist

import "time"

// Clock supplies timestamps and timers to a window. The default is the
// system clock; hosts with their own event loop can substitute a clock
// whose timer callbacks are delivered on that loop, and tests can drive
// time deterministically.
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
}

// Timer is a cancellable pending callback.
type Timer interface {
	// Stop cancels the timer. It reports whether the call prevented the
	// callback from firing.
	Stop() bool
}

// SystemClock returns a Clock backed by the time package. Timer callbacks
// fire on their own goroutine; hosts that share a window across goroutines
// must funnel them onto the loop that owns the window.
func SystemClock() Clock {
	return systemClock{}
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

func (systemClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

var _ Timer = (*time.Timer)(nil)
