// Package scheduler abstracts timers so page behaviors can run on a real
// event loop or on a manual clock in tests.
package scheduler

import "time"

// Timer is a pending callback.
type Timer interface {
	// Stop cancels the timer and reports whether it was still pending.
	Stop() bool
}

// Scheduler runs callbacks later, one at a time.
type Scheduler interface {
	After(d time.Duration, fn func()) Timer
	Every(d time.Duration, fn func()) Timer
}

// Frame is the throttle window for scroll handling, about one display refresh.
const Frame = 16 * time.Millisecond

// Throttle returns a handler that runs fn at most once per window. A call
// arriving inside the window is folded into a single trailing run when the
// window closes, so the last event is never lost.
func Throttle(s Scheduler, window time.Duration, fn func()) func() {
	var (
		open    bool
		pending bool
	)
	var release func()
	release = func() {
		if !pending {
			open = false
			return
		}
		pending = false
		fn()
		s.After(window, release)
	}
	return func() {
		if open {
			pending = true
			return
		}
		open = true
		fn()
		s.After(window, release)
	}
}
