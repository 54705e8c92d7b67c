// Package site boots every page behavior against a binding context and
// exposes the entry points the hosting page calls.
package site

import (
	"errors"
	"log/slog"

	"github.com/Zachkp/portfolio/internal/animation"
	"github.com/Zachkp/portfolio/internal/carousel"
	"github.com/Zachkp/portfolio/internal/catalog"
	"github.com/Zachkp/portfolio/internal/dom"
	"github.com/Zachkp/portfolio/internal/navigation"
	"github.com/Zachkp/portfolio/internal/projects"
	"github.com/Zachkp/portfolio/internal/scheduler"
	"github.com/Zachkp/portfolio/internal/typewriter"
)

// Options is the binding context. Document and Scheduler are required; a nil
// Window disables scroll behavior, a nil Driver means no animation library.
type Options struct {
	Document  dom.Document
	Window    dom.Window
	Scheduler scheduler.Scheduler
	Driver    animation.Driver
	Catalog   *catalog.Catalog
	Logger    *slog.Logger
}

// Site is a bound page.
type Site struct {
	logger  *slog.Logger
	catalog *catalog.Catalog
	anim    *animation.Bridge

	projects *projects.Controller
	carousel *carousel.Carousel
	menu     *navigation.Menu
	scroll   *navigation.Scroll
	typing   *typewriter.Typewriter
	reveal   scheduler.Timer
}

// Bind initializes every feature in page load order. A feature whose markup
// is missing is skipped; only a missing Document or Scheduler is an error.
func Bind(opts Options) (*Site, error) {
	if opts.Document == nil {
		return nil, errors.New("site: document is required")
	}
	if opts.Scheduler == nil {
		return nil, errors.New("site: scheduler is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	cat := opts.Catalog
	if cat == nil {
		cat = catalog.Default()
	}

	g := guard{logger: logger}
	doc := guardedDocument{Document: opts.Document, g: g}
	sched := guardedScheduler{s: opts.Scheduler, g: g}

	s := &Site{
		logger:  logger,
		catalog: cat,
		anim:    animation.New(opts.Driver, logger),
	}

	animation.EnsureVisible(doc)
	s.anim.Init()

	if pc, err := projects.NewController(doc, cat, s.anim, logger); err != nil {
		logger.Debug("projects disabled", "error", err)
	} else {
		s.projects = pc
		if err := pc.RenderProjects(catalog.All); err != nil {
			logger.Error("render projects", "error", err)
		}
		pc.Bind()
	}

	s.carousel = carousel.New(doc, sched, logger)
	if s.carousel.Len() == 0 {
		logger.Debug("testimonials disabled", "error", dom.ErrNotFound)
	}
	s.carousel.Start()

	s.menu = navigation.NewMenu(doc)
	if s.menu == nil {
		logger.Debug("mobile menu disabled", "error", dom.ErrNotFound)
	}
	s.menu.Bind()

	if opts.Window != nil {
		win := guardedWindow{Window: opts.Window, g: g}
		navigation.BindSmoothScroll(doc, win)
		s.scroll = navigation.NewScroll(doc, win, logger)
		s.scroll.Bind(sched)
		if animation.ObserveFadeIns(doc, win) == 0 {
			logger.Debug("fade-in observer disabled", "error", dom.ErrNotFound)
		}
	}

	s.typing = typewriter.Start(doc, sched)
	s.reveal = animation.ScheduleReveal(sched, doc)

	logger.Info("portfolio page ready", "projects", cat.Len(), "testimonials", s.carousel.Len(), "animations", s.anim.Available())
	return s, nil
}

// Catalog is the project data the page renders.
func (s *Site) Catalog() *catalog.Catalog { return s.catalog }

// RenderProjects re-renders the grid for category.
func (s *Site) RenderProjects(category catalog.Category) error {
	if s.projects == nil {
		return dom.ErrNotFound
	}
	return s.projects.RenderProjects(category)
}

// ActiveCategory is the filter currently applied.
func (s *Site) ActiveCategory() catalog.Category {
	if s.projects == nil {
		return catalog.All
	}
	return s.projects.Active()
}

// ChangeTestimonial moves the carousel by dir.
func (s *Site) ChangeTestimonial(dir int) { s.carousel.Advance(dir) }

// GoToTestimonial jumps the carousel to slide i.
func (s *Site) GoToTestimonial(i int) error { return s.carousel.JumpTo(i) }

// Testimonial is the current carousel index.
func (s *Site) Testimonial() int { return s.carousel.Current() }

// InitAnimations rebuilds the page animations.
func (s *Site) InitAnimations() { s.anim.Init() }

// Close stops every timer the page owns.
func (s *Site) Close() {
	s.carousel.Stop()
	s.typing.Stop()
	if s.reveal != nil {
		s.reveal.Stop()
	}
}

// Prerender applies the static part of startup to doc: visible content, the
// full project grid and the first testimonial. It arms no timers and binds
// no handlers, so the result can be served as plain HTML.
func Prerender(doc dom.Document, cat *catalog.Catalog, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	if cat == nil {
		cat = catalog.Default()
	}
	pc, err := projects.NewController(doc, cat, nil, logger)
	if err != nil {
		return err
	}
	if err := pc.RenderProjects(catalog.All); err != nil {
		return err
	}
	carousel.New(doc, nil, logger).Show(0)
	animation.EnsureVisible(doc)
	return nil
}
