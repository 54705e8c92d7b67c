// Package dom describes the slice of a browser document the page behaviors
// need. Implementations bind it to a real page (jsdom) or to an in-memory
// tree (memdom).
package dom

import "errors"

// ErrNotFound is returned when a required element is absent from the page.
var ErrNotFound = errors.New("element not found")

// Handler receives a dispatched event.
type Handler func(Event)

// Event is the part of a DOM event handlers may act on.
type Event interface {
	Target() Element
	PreventDefault()
}

// Element is a single node of the page.
type Element interface {
	ID() string
	Tag() string

	Attr(name string) string
	SetAttr(name, value string)

	HasClass(class string) bool
	AddClass(classes ...string)
	RemoveClass(classes ...string)
	// ToggleClass flips class and reports whether it is now present.
	ToggleClass(class string) bool
	SetClassName(className string)

	Style(prop string) string
	SetStyle(prop, value string)

	Text() string
	SetText(text string)

	// Clear removes every child.
	Clear()
	// AppendHTML parses fragment and appends the resulting nodes.
	AppendHTML(fragment string) error

	Query(selector string) Element
	QueryAll(selector string) []Element

	OffsetTop() float64
	ClientHeight() float64

	On(event string, h Handler)
}

// Document is the binding context handed to every controller.
type Document interface {
	ByID(id string) Element
	Query(selector string) Element
	QueryAll(selector string) []Element
}

// Window exposes scroll state.
type Window interface {
	ScrollY() float64
	ScrollTo(top float64, smooth bool)
	OnScroll(h func())
	// Observe calls fn for each of els whenever it is intersecting the
	// viewport, like an IntersectionObserver.
	Observe(els []Element, opts ObserveOptions, fn func(Element))
}

// ObserveOptions are the IntersectionObserver settings the page uses.
// BottomMargin grows the viewport downward; negative values shrink it.
type ObserveOptions struct {
	Threshold    float64
	BottomMargin float64
}

// Unwrap returns the element behind any decorators, for bindings that need
// their own concrete type back.
func Unwrap(el Element) Element {
	for {
		u, ok := el.(interface{ Unwrap() Element })
		if !ok {
			return el
		}
		el = u.Unwrap()
	}
}

// Lookup returns the element with id or ErrNotFound.
func Lookup(doc Document, id string) (Element, error) {
	if doc == nil {
		return nil, ErrNotFound
	}
	el := doc.ByID(id)
	if el == nil {
		return nil, ErrNotFound
	}
	return el, nil
}
