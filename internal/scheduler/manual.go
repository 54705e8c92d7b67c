package scheduler

import (
	"sort"
	"time"
)

// Manual is a deterministic clock. Nothing fires until Advance is called.
// It is not safe for concurrent use.
type Manual struct {
	now     time.Duration
	seq     uint64
	pending []*manualTimer
}

type manualTimer struct {
	m        *Manual
	due      time.Duration
	seq      uint64
	interval time.Duration
	fn       func()
	active   bool
}

var _ Scheduler = (*Manual)(nil)

// NewManual returns a clock at time zero.
func NewManual() *Manual { return &Manual{} }

// Now is the elapsed virtual time.
func (m *Manual) Now() time.Duration { return m.now }

// Pending reports how many timers are armed.
func (m *Manual) Pending() int { return len(m.pending) }

func (m *Manual) After(d time.Duration, fn func()) Timer {
	return m.add(d, 0, fn)
}

func (m *Manual) Every(d time.Duration, fn func()) Timer {
	if d <= 0 {
		d = time.Nanosecond
	}
	return m.add(d, d, fn)
}

func (m *Manual) add(d, interval time.Duration, fn func()) *manualTimer {
	if d < 0 {
		d = 0
	}
	m.seq++
	t := &manualTimer{m: m, due: m.now + d, seq: m.seq, interval: interval, fn: fn, active: true}
	m.pending = append(m.pending, t)
	return t
}

// Advance moves the clock forward by d, firing due callbacks in time order.
// Callbacks scheduled while advancing fire too if they fall inside the window.
func (m *Manual) Advance(d time.Duration) {
	end := m.now + d
	for {
		next := m.next(end)
		if next == nil {
			break
		}
		m.now = next.due
		if next.interval > 0 {
			m.seq++
			next.due += next.interval
			next.seq = m.seq
		} else {
			next.active = false
			m.remove(next)
		}
		next.fn()
	}
	m.now = end
}

func (m *Manual) next(end time.Duration) *manualTimer {
	sort.SliceStable(m.pending, func(i, j int) bool {
		if m.pending[i].due != m.pending[j].due {
			return m.pending[i].due < m.pending[j].due
		}
		return m.pending[i].seq < m.pending[j].seq
	})
	if len(m.pending) == 0 || m.pending[0].due > end {
		return nil
	}
	return m.pending[0]
}

func (m *Manual) remove(t *manualTimer) {
	for i, p := range m.pending {
		if p == t {
			m.pending = append(m.pending[:i], m.pending[i+1:]...)
			return
		}
	}
}

func (t *manualTimer) Stop() bool {
	if !t.active {
		return false
	}
	t.active = false
	t.m.remove(t)
	return true
}
