// Package navigation wires the mobile menu, in-page smooth scrolling and the
// scroll driven navbar state.
package navigation

import (
	"log/slog"
	"strings"

	"github.com/Zachkp/portfolio/internal/dom"
	"github.com/Zachkp/portfolio/internal/scheduler"
)

const (
	NavbarID       = "navbar"
	MenuButtonID   = "mobile-menu-btn"
	MenuID         = "mobile-menu"
	NavLinkClass   = "nav-link"
	sectionQuery   = "section[id]"
	anchorQuery    = `a[href^="#"]`
	highlightClass = "text-blue-600"

	// HeaderOffset keeps smooth-scroll targets clear of the fixed header.
	HeaderOffset = 80.0
	// SectionMargin shifts each section's span up when picking the current one.
	SectionMargin = 100.0
	// SolidThreshold is the scroll offset past which the navbar turns solid.
	SolidThreshold = 100.0

	openIcon   = "fas fa-times text-xl"
	closedIcon = "fas fa-bars text-xl"
)

// SolidClasses are applied to the navbar once scrolled past SolidThreshold.
var SolidClasses = []string{"bg-white/95", "shadow-lg"}

// Menu is the mobile menu toggle.
type Menu struct {
	button dom.Element
	panel  dom.Element
}

// NewMenu binds the trigger and panel. It returns nil when either is
// missing, and a nil *Menu ignores every call.
func NewMenu(doc dom.Document) *Menu {
	button, panel := doc.ByID(MenuButtonID), doc.ByID(MenuID)
	if button == nil || panel == nil {
		return nil
	}
	return &Menu{button: button, panel: panel}
}

// Bind toggles on trigger clicks and closes on any link inside the panel.
func (m *Menu) Bind() {
	if m == nil {
		return
	}
	m.button.On("click", func(dom.Event) { m.Toggle() })
	for _, link := range m.panel.QueryAll("a") {
		link.On("click", func(dom.Event) { m.Close() })
	}
}

// Open reports whether the menu is open.
func (m *Menu) Open() bool { return m != nil && m.panel.HasClass("open") }

// Toggle flips the menu and mirrors the state in the trigger icon.
func (m *Menu) Toggle() {
	if m == nil {
		return
	}
	m.setIcon(m.panel.ToggleClass("open"))
}

// Close shuts the menu.
func (m *Menu) Close() {
	if m == nil {
		return
	}
	m.panel.RemoveClass("open")
	m.setIcon(false)
}

func (m *Menu) setIcon(open bool) {
	icon := m.button.Query("i")
	if icon == nil {
		return
	}
	if open {
		icon.SetClassName(openIcon)
	} else {
		icon.SetClassName(closedIcon)
	}
}

// BindSmoothScroll intercepts same-page anchors and scrolls to their target
// less HeaderOffset.
func BindSmoothScroll(doc dom.Document, win dom.Window) {
	for _, a := range doc.QueryAll(anchorQuery) {
		href := a.Attr("href")
		a.On("click", func(e dom.Event) {
			e.PreventDefault()
			id := strings.TrimPrefix(href, "#")
			if id == "" {
				return
			}
			if target := doc.ByID(id); target != nil {
				win.ScrollTo(target.OffsetTop()-HeaderOffset, true)
			}
		})
	}
}

// Section is the vertical span of one page landmark.
type Section struct {
	ID     string
	Top    float64
	Height float64
}

// Current returns the id of the first section whose span contains y, or "".
// A section spans [Top-SectionMargin, Top-SectionMargin+Height).
func Current(sections []Section, y float64) string {
	for _, s := range sections {
		top := s.Top - SectionMargin
		if y >= top && y < top+s.Height {
			return s.ID
		}
	}
	return ""
}

// Solid reports whether the navbar should be opaque at scroll offset y.
func Solid(y float64) bool { return y > SolidThreshold }

// Scroll keeps the navbar background and the highlighted nav link in step
// with the scroll position.
type Scroll struct {
	doc    dom.Document
	win    dom.Window
	navbar dom.Element
	links  []dom.Element
	logger *slog.Logger

	current string
}

// NewScroll binds to the navbar and nav links. A missing navbar only
// disables the solid background.
func NewScroll(doc dom.Document, win dom.Window, logger *slog.Logger) *Scroll {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scroll{
		doc:    doc,
		win:    win,
		navbar: doc.ByID(NavbarID),
		links:  doc.QueryAll("." + NavLinkClass),
		logger: logger,
	}
}

// Bind updates on scroll, at most once per frame, and once immediately.
func (s *Scroll) Bind(sched scheduler.Scheduler) {
	s.win.OnScroll(scheduler.Throttle(sched, scheduler.Frame, s.Update))
	s.Update()
}

// Sections reads the current layout of every section with an id, in
// document order. Layout is re-read on each call since it changes with
// the viewport.
func (s *Scroll) Sections() []Section {
	els := s.doc.QueryAll(sectionQuery)
	out := make([]Section, 0, len(els))
	for _, el := range els {
		out = append(out, Section{ID: el.ID(), Top: el.OffsetTop(), Height: el.ClientHeight()})
	}
	return out
}

// CurrentSection is the section highlighted by the last Update.
func (s *Scroll) CurrentSection() string { return s.current }

// Update applies the navbar state and link highlight for the current offset.
func (s *Scroll) Update() {
	y := s.win.ScrollY()
	if s.navbar != nil {
		if Solid(y) {
			s.navbar.AddClass(SolidClasses...)
		} else {
			s.navbar.RemoveClass(SolidClasses...)
		}
	}

	current := Current(s.Sections(), y)
	if current != s.current {
		s.logger.Debug("section in view", "section", current)
		s.current = current
	}
	for _, link := range s.links {
		if current != "" && link.Attr("href") == "#"+current {
			link.AddClass(highlightClass)
		} else {
			link.RemoveClass(highlightClass)
		}
	}
}
