// Package carousel cycles the testimonial slides.
//
// Each slide is inactive, active or leaving (the "prev" class). A change
// marks the current slide leaving, waits SettleDelay, then activates the
// target. Autoplay advances every Interval and is restarted by every manual
// change, so a manual change is never followed by an early automatic one.
package carousel

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Zachkp/portfolio/internal/dom"
	"github.com/Zachkp/portfolio/internal/scheduler"
)

const (
	// SlideSelector matches the testimonial slides, in display order.
	SlideSelector = ".testimonial-slide"
	// DotSelector matches the indicator dots, one per slide.
	DotSelector = ".testimonial-dot"

	// Interval is the autoplay period.
	Interval = 5 * time.Second
	// SettleDelay separates marking a slide leaving from showing the next.
	SettleDelay = 100 * time.Millisecond

	activeClass  = "active"
	leavingClass = "prev"
)

// ErrSlideOutOfRange is returned by JumpTo for an index outside the slides.
var ErrSlideOutOfRange = errors.New("slide index out of range")

// Wrap maps i into [0, n), wrapping negatives from the end. It returns 0 when
// n is not positive.
func Wrap(i, n int) int {
	if n <= 0 {
		return 0
	}
	return ((i % n) + n) % n
}

// transition is a pending settle.
type transition struct {
	from, to int
	timer    scheduler.Timer
}

// Carousel owns the current slide index and the autoplay timer.
type Carousel struct {
	slides  []dom.Element
	dots    []dom.Element
	sched   scheduler.Scheduler
	logger  *slog.Logger
	current int

	pending  *transition
	autoplay scheduler.Timer
}

// New binds to the slides and dots in doc.
func New(doc dom.Document, s scheduler.Scheduler, logger *slog.Logger) *Carousel {
	if logger == nil {
		logger = slog.Default()
	}
	return &Carousel{
		slides: doc.QueryAll(SlideSelector),
		dots:   doc.QueryAll(DotSelector),
		sched:  s,
		logger: logger,
	}
}

// Len is the number of slides.
func (c *Carousel) Len() int { return len(c.slides) }

// Current is the index of the active slide, or of the slide a pending
// transition is moving to.
func (c *Carousel) Current() int { return c.current }

// Transitioning reports whether a settle is pending.
func (c *Carousel) Transitioning() bool { return c.pending != nil }

// Show activates slide i immediately, clearing every other slide and dot.
func (c *Carousel) Show(i int) {
	if len(c.slides) == 0 {
		return
	}
	i = Wrap(i, len(c.slides))
	for j, slide := range c.slides {
		slide.RemoveClass(activeClass, leavingClass)
		if j == i {
			slide.AddClass(activeClass)
		}
	}
	for j, dot := range c.dots {
		if j == i {
			dot.AddClass(activeClass)
		} else {
			dot.RemoveClass(activeClass)
		}
	}
	c.current = i
}

// Start shows the current slide and begins autoplay. Fewer than two slides
// never autoplay.
func (c *Carousel) Start() {
	c.Show(c.current)
	c.restartAutoplay()
}

// Stop cancels autoplay and settles any pending transition.
func (c *Carousel) Stop() {
	if c.autoplay != nil {
		c.autoplay.Stop()
		c.autoplay = nil
	}
	c.flush()
}

// Advance moves by dir slides, wrapping at both ends.
func (c *Carousel) Advance(dir int) {
	n := len(c.slides)
	if n < 2 {
		return
	}
	c.flush()
	c.begin(Wrap(c.current+dir, n))
	c.restartAutoplay()
}

// JumpTo moves to slide i. Jumping to the current slide does nothing,
// including leaving the autoplay phase untouched.
func (c *Carousel) JumpTo(i int) error {
	n := len(c.slides)
	if i < 0 || i >= n {
		return fmt.Errorf("%w: %d of %d", ErrSlideOutOfRange, i, n)
	}
	if i == c.current {
		return nil
	}
	c.flush()
	c.begin(i)
	c.restartAutoplay()
	return nil
}

func (c *Carousel) begin(to int) {
	from := c.current
	c.slides[from].AddClass(leavingClass)
	c.current = to
	t := &transition{from: from, to: to}
	t.timer = c.sched.After(SettleDelay, func() {
		if c.pending != t {
			return
		}
		c.settle(t)
	})
	c.pending = t
}

// flush completes a pending transition at once so a new one starts from a
// clean state.
func (c *Carousel) flush() {
	t := c.pending
	if t == nil {
		return
	}
	t.timer.Stop()
	c.settle(t)
}

func (c *Carousel) settle(t *transition) {
	c.pending = nil
	c.slides[t.from].RemoveClass(leavingClass)
	c.Show(t.to)
	c.logger.Debug("testimonial shown", "index", t.to)
}

// restartAutoplay cancels the running ticker before arming a new one, so at
// most one is ever active.
func (c *Carousel) restartAutoplay() {
	if c.autoplay != nil {
		c.autoplay.Stop()
		c.autoplay = nil
	}
	if len(c.slides) < 2 {
		return
	}
	c.autoplay = c.sched.Every(Interval, c.tick)
}

func (c *Carousel) tick() {
	n := len(c.slides)
	c.flush()
	c.begin(Wrap(c.current+1, n))
}
