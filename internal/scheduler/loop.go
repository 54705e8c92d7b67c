package scheduler

import (
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

// Loop is a single-goroutine event loop. Timer callbacks and posted events
// run one at a time in arrival order, so callers never need locks.
type Loop struct {
	queue  chan func()
	done   chan struct{}
	closed sync.Once
	logger *slog.Logger
}

var _ Scheduler = (*Loop)(nil)

// NewLoop starts a loop. A nil logger uses slog.Default.
func NewLoop(logger *slog.Logger) *Loop {
	if logger == nil {
		logger = slog.Default()
	}
	l := &Loop{
		queue:  make(chan func(), 64),
		done:   make(chan struct{}),
		logger: logger,
	}
	go l.run()
	return l
}

func (l *Loop) run() {
	for {
		select {
		case fn := <-l.queue:
			l.call(fn)
		case <-l.done:
			return
		}
	}
}

func (l *Loop) call(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			l.logger.Error("event loop callback panicked", "panic", fmt.Sprint(r))
		}
	}()
	fn()
}

// Post queues fn behind everything already queued. It reports false once the
// loop is closed.
func (l *Loop) Post(fn func()) bool {
	select {
	case <-l.done:
		return false
	default:
	}
	select {
	case l.queue <- fn:
		return true
	case <-l.done:
		return false
	}
}

// Do runs fn on the loop and waits for it to return. It reports false if the
// loop closed first. Calling Do from a loop callback deadlocks.
func (l *Loop) Do(fn func()) bool {
	finished := make(chan struct{})
	if !l.Post(func() {
		defer close(finished)
		fn()
	}) {
		return false
	}
	select {
	case <-finished:
		return true
	case <-l.done:
		return false
	}
}

// Close stops the loop. Pending timers are dropped.
func (l *Loop) Close() {
	l.closed.Do(func() { close(l.done) })
}

type loopTimer struct {
	stopped atomic.Bool
	mu      sync.Mutex
	t       *time.Timer
}

func (t *loopTimer) Stop() bool {
	if t.stopped.Swap(true) {
		return false
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.t != nil {
		t.t.Stop()
	}
	return true
}

func (t *loopTimer) arm(d time.Duration, fire func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.t = time.AfterFunc(d, fire)
}

// After runs fn on the loop once d has elapsed. The stop check happens on
// the loop itself, so a timer stopped by an earlier callback never fires
// even if its wakeup was already queued.
func (l *Loop) After(d time.Duration, fn func()) Timer {
	t := &loopTimer{}
	t.arm(d, func() {
		l.Post(func() {
			if t.stopped.Swap(true) {
				return
			}
			fn()
		})
	})
	return t
}

// Every runs fn on the loop every d until stopped.
func (l *Loop) Every(d time.Duration, fn func()) Timer {
	t := &loopTimer{}
	var tick func()
	tick = func() {
		l.Post(func() {
			if t.stopped.Load() {
				return
			}
			fn()
			if !t.stopped.Load() {
				t.arm(d, tick)
			}
		})
	}
	t.arm(d, tick)
	return t
}
