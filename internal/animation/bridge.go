package animation

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/Zachkp/portfolio/internal/dom"
	"github.com/Zachkp/portfolio/internal/scheduler"
)

// AnimatedSelectors lists every element an entrance animation may start
// hidden.
var AnimatedSelectors = []string{
	".hero-content", ".about-content", ".about-image", ".skill-item",
	".project-card", ".service-card", ".timeline-item",
	".certification-card", ".blog-card", ".social-link",
}

// RevealDelay is how long after startup project cards are forced visible
// again in case an entrance tween stalled.
const RevealDelay = time.Second

const cardSelector = ".project-card"

// Bridge guards every call into a Driver. When the library is missing or
// misbehaves it swaps in Noop, so callers never check for it.
type Bridge struct {
	driver    Driver
	available bool
	logger    *slog.Logger
}

// New probes driver by registering the scroll-trigger plugin. A nil driver,
// a registration error or a panic all leave the bridge on Noop.
func New(driver Driver, logger *slog.Logger) *Bridge {
	if logger == nil {
		logger = slog.Default()
	}
	b := &Bridge{driver: Noop{}, logger: logger}
	if driver == nil {
		logger.Warn("animation library not loaded, animations will be disabled")
		return b
	}
	if err := guard(func() error { return driver.RegisterPlugin("ScrollTrigger") }); err != nil {
		logger.Warn("animation initialization failed", "error", err)
		return b
	}
	b.driver = driver
	b.available = true
	return b
}

// Available reports whether a working driver is attached.
func (b *Bridge) Available() bool { return b.available }

// guard runs fn, converting a panic into an error.
func guard(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("animation driver panic: %v", r)
		}
	}()
	return fn()
}

// EnsureVisible forces every normally animated element to its final state.
// It is applied at startup whether or not the driver works.
func EnsureVisible(doc dom.Document) {
	for _, sel := range AnimatedSelectors {
		for _, el := range doc.QueryAll(sel) {
			el.SetStyle("opacity", "1")
			el.SetStyle("transform", "none")
		}
	}
	RevealCards(doc)
}

// RevealCards forces project cards visible.
func RevealCards(doc dom.Document) {
	for _, card := range doc.QueryAll(cardSelector) {
		card.SetStyle("opacity", "1")
		card.SetStyle("transform", "translateY(0) scale(1)")
	}
}

// ScheduleReveal re-applies RevealCards after RevealDelay.
func ScheduleReveal(s scheduler.Scheduler, doc dom.Document) scheduler.Timer {
	return s.After(RevealDelay, func() { RevealCards(doc) })
}

// Stagger plays an entrance over every match of selector. Failures are
// logged and otherwise ignored.
func (b *Bridge) Stagger(selector string, tw Tween) {
	if !b.available {
		return
	}
	if err := guard(func() error { return b.driver.From(Sel(selector), tw) }); err != nil {
		b.logger.Warn("animation failed", "target", selector, "error", err)
	}
}

// Init builds the page's entrance and scroll-triggered animations. A
// failure part way through stops the remaining animations and is logged;
// it is never returned to the caller.
func (b *Bridge) Init() {
	if !b.available {
		b.logger.Warn("animation library not available, skipping animations")
		return
	}
	if err := guard(b.build); err != nil {
		b.logger.Warn("animations failed", "error", err)
	}
}

func (b *Bridge) build() error {
	if err := b.hero(); err != nil {
		return fmt.Errorf("hero timeline: %w", err)
	}
	for _, h := range b.driver.SelectAll("h2") {
		tw := Tween{
			Duration:      800 * time.Millisecond,
			From:          Props{"opacity": 0, "y": 30},
			Ease:          "power3.out",
			ScrollTrigger: onScroll(El(h), "top 80%", "bottom 20%"),
		}
		if err := b.driver.From(El(h), tw); err != nil {
			return fmt.Errorf("section header: %w", err)
		}
	}
	for _, s := range sectionTweens {
		tw := Tween{
			Duration:      s.duration,
			From:          s.from,
			Ease:          "power3.out",
			Stagger:       s.stagger,
			ScrollTrigger: onScroll(Sel(s.trigger), s.start, s.end),
		}
		if err := b.driver.From(Sel(s.target), tw); err != nil {
			return fmt.Errorf("%s: %w", s.target, err)
		}
	}
	return nil
}

func (b *Bridge) hero() error {
	tl, err := b.driver.Timeline()
	if err != nil {
		return err
	}
	steps := []struct {
		target   string
		tw       Tween
		position string
	}{
		{".hero-content", Tween{Duration: time.Second, From: Props{"opacity": 0, "x": -50}, Ease: "power3.out"}, ""},
		{".hero-illustration", Tween{Duration: 1200 * time.Millisecond, From: Props{"opacity": 0, "x": 50, "scale": 0.8}, Ease: "back.out(1.7)"}, "-=0.5"},
		{".floating-shape", Tween{Duration: 1500 * time.Millisecond, From: Props{"opacity": 0, "scale": 0}, Stagger: 200 * time.Millisecond, Ease: "back.out(1.7)"}, "-=0.8"},
		{".hero-illustration .absolute", Tween{Duration: 800 * time.Millisecond, From: Props{"opacity": 0, "y": 30}, Stagger: 100 * time.Millisecond, Ease: "power3.out"}, "-=0.5"},
	}
	for _, s := range steps {
		if err := tl.From(Sel(s.target), s.tw, s.position); err != nil {
			return err
		}
	}
	return nil
}

func onScroll(trigger Target, start, end string) *ScrollTrigger {
	return &ScrollTrigger{
		Trigger:       trigger,
		Start:         start,
		End:           end,
		ToggleActions: "play none none reverse",
	}
}

type sectionTween struct {
	target     string
	trigger    string
	start, end string
	duration   time.Duration
	stagger    time.Duration
	from       Props
}

var sectionTweens = []sectionTween{
	{".about-content", "#about", "top 70%", "bottom 30%", time.Second, 0, Props{"opacity": 0, "x": -50}},
	{".about-image", "#about", "top 70%", "bottom 30%", time.Second, 0, Props{"opacity": 0, "x": 50}},
	{".skill-item", ".skill-item", "top 80%", "bottom 20%", 600 * time.Millisecond, 100 * time.Millisecond, Props{"opacity": 0, "y": 20}},
	{".service-card", "#services", "top 70%", "bottom 30%", 800 * time.Millisecond, 200 * time.Millisecond, Props{"opacity": 0, "y": 30}},
	{".timeline-item", "#experience", "top 70%", "bottom 30%", 800 * time.Millisecond, 300 * time.Millisecond, Props{"opacity": 0, "y": 30}},
	{".certification-card", "#certifications", "top 70%", "bottom 30%", 800 * time.Millisecond, 200 * time.Millisecond, Props{"opacity": 0, "y": 30}},
	{".blog-card", "#blog", "top 70%", "bottom 30%", 800 * time.Millisecond, 200 * time.Millisecond, Props{"opacity": 0, "y": 30}},
	{".social-link", "#contact", "top 70%", "bottom 30%", 600 * time.Millisecond, 100 * time.Millisecond, Props{"opacity": 0, "y": 20}},
}
