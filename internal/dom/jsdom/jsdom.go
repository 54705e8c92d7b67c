//go:build js && wasm

// Package jsdom binds the dom interfaces to the browser through syscall/js.
//
// Browser callbacks are handed to a Dispatcher so that event handlers and
// scheduler timers share one logical thread. Clicks wait for their handler
// because preventDefault only works while the event is being dispatched.
package jsdom

import (
	"fmt"
	"strings"
	"syscall/js"

	"github.com/Zachkp/portfolio/internal/dom"
)

// Dispatcher serializes callbacks; *scheduler.Loop implements it.
type Dispatcher interface {
	Post(fn func()) bool
	Do(fn func()) bool
}

// Document is the browser document.
type Document struct {
	v    js.Value
	disp Dispatcher
}

var _ dom.Document = (*Document)(nil)

// New binds to the global document.
func New(disp Dispatcher) *Document {
	return &Document{v: js.Global().Get("document"), disp: disp}
}

// Wrap binds an element value obtained elsewhere, e.g. from the animation
// library. Null and undefined map to nil.
func (d *Document) Wrap(v js.Value) dom.Element {
	if v.IsNull() || v.IsUndefined() {
		return nil
	}
	return &Element{v: v, disp: d.disp}
}

func (d *Document) ByID(id string) dom.Element {
	return d.Wrap(d.v.Call("getElementById", id))
}

func (d *Document) Query(selector string) dom.Element {
	return query(d.v, selector, d.disp)
}

func (d *Document) QueryAll(selector string) []dom.Element {
	return queryAll(d.v, selector, d.disp)
}

// query returns nil for an invalid selector instead of letting the
// SyntaxError escape as a panic.
func query(v js.Value, selector string, disp Dispatcher) (el dom.Element) {
	defer func() {
		if recover() != nil {
			el = nil
		}
	}()
	found := v.Call("querySelector", selector)
	if found.IsNull() {
		return nil
	}
	return &Element{v: found, disp: disp}
}

func queryAll(v js.Value, selector string, disp Dispatcher) (out []dom.Element) {
	defer func() {
		if recover() != nil {
			out = nil
		}
	}()
	list := v.Call("querySelectorAll", selector)
	n := list.Length()
	out = make([]dom.Element, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, &Element{v: list.Index(i), disp: disp})
	}
	return out
}

// Element is a browser element.
type Element struct {
	v    js.Value
	disp Dispatcher
}

var _ dom.Element = (*Element)(nil)

// Value is the underlying JS object.
func (e *Element) Value() js.Value { return e.v }

func (e *Element) ID() string  { return e.v.Get("id").String() }
func (e *Element) Tag() string { return strings.ToLower(e.v.Get("tagName").String()) }

func (e *Element) Attr(name string) string {
	v := e.v.Call("getAttribute", name)
	if v.IsNull() {
		return ""
	}
	return v.String()
}

func (e *Element) SetAttr(name, value string) { e.v.Call("setAttribute", name, value) }

func (e *Element) HasClass(class string) bool {
	return e.v.Get("classList").Call("contains", class).Bool()
}

func (e *Element) AddClass(classes ...string) {
	e.v.Get("classList").Call("add", toAny(classes)...)
}

func (e *Element) RemoveClass(classes ...string) {
	e.v.Get("classList").Call("remove", toAny(classes)...)
}

func (e *Element) ToggleClass(class string) bool {
	return e.v.Get("classList").Call("toggle", class).Bool()
}

func (e *Element) SetClassName(className string) { e.v.Set("className", className) }

func (e *Element) Style(prop string) string {
	return e.v.Get("style").Call("getPropertyValue", prop).String()
}

func (e *Element) SetStyle(prop, value string) {
	e.v.Get("style").Call("setProperty", prop, value)
}

func (e *Element) Text() string        { return e.v.Get("textContent").String() }
func (e *Element) SetText(text string) { e.v.Set("textContent", text) }
func (e *Element) Clear()              { e.v.Set("innerHTML", "") }

func (e *Element) AppendHTML(fragment string) error {
	e.v.Call("insertAdjacentHTML", "beforeend", fragment)
	return nil
}

func (e *Element) Query(selector string) dom.Element {
	return query(e.v, selector, e.disp)
}

func (e *Element) QueryAll(selector string) []dom.Element {
	return queryAll(e.v, selector, e.disp)
}

func (e *Element) OffsetTop() float64    { return e.v.Get("offsetTop").Float() }
func (e *Element) ClientHeight() float64 { return e.v.Get("clientHeight").Float() }

// On registers h for event. The listener lives as long as the page.
func (e *Element) On(event string, h dom.Handler) {
	e.v.Call("addEventListener", event, js.FuncOf(func(_ js.Value, args []js.Value) any {
		ev := &Event{disp: e.disp}
		if len(args) > 0 {
			ev.v = args[0]
		}
		e.disp.Do(func() { h(ev) })
		return nil
	}))
}

// Event wraps a browser event.
type Event struct {
	v    js.Value
	disp Dispatcher
}

func (ev *Event) Target() dom.Element {
	if ev.v.IsUndefined() {
		return nil
	}
	t := ev.v.Get("target")
	if t.IsNull() || t.IsUndefined() {
		return nil
	}
	return &Element{v: t, disp: ev.disp}
}

func (ev *Event) PreventDefault() {
	if !ev.v.IsUndefined() {
		ev.v.Call("preventDefault")
	}
}

// Window is the browser window.
type Window struct {
	v    js.Value
	disp Dispatcher
}

var _ dom.Window = (*Window)(nil)

// NewWindow binds to the global window.
func NewWindow(disp Dispatcher) *Window {
	return &Window{v: js.Global(), disp: disp}
}

func (w *Window) ScrollY() float64 { return w.v.Get("scrollY").Float() }

func (w *Window) ScrollTo(top float64, smooth bool) {
	behavior := "auto"
	if smooth {
		behavior = "smooth"
	}
	w.v.Call("scrollTo", map[string]any{"top": top, "behavior": behavior})
}

// OnScroll queues h on the dispatcher without waiting; scroll listeners are
// passive.
func (w *Window) OnScroll(h func()) {
	w.v.Call("addEventListener", "scroll", js.FuncOf(func(js.Value, []js.Value) any {
		w.disp.Post(h)
		return nil
	}), map[string]any{"passive": true})
}

// Observe registers an IntersectionObserver over els. Callbacks are queued on
// the dispatcher. Browsers without IntersectionObserver never call fn.
func (w *Window) Observe(els []dom.Element, opts dom.ObserveOptions, fn func(dom.Element)) {
	ctor := w.v.Get("IntersectionObserver")
	if len(els) == 0 || ctor.IsUndefined() {
		return
	}
	cb := js.FuncOf(func(_ js.Value, args []js.Value) any {
		if len(args) == 0 {
			return nil
		}
		entries := args[0]
		for i := 0; i < entries.Length(); i++ {
			entry := entries.Index(i)
			if !entry.Get("isIntersecting").Bool() {
				continue
			}
			target := entry.Get("target")
			for _, el := range els {
				if raw, ok := dom.Unwrap(el).(*Element); ok && raw.v.Equal(target) {
					w.disp.Post(func() { fn(el) })
				}
			}
		}
		return nil
	})
	observer := ctor.New(cb, map[string]any{
		"threshold":  opts.Threshold,
		"rootMargin": fmt.Sprintf("0px 0px %gpx 0px", opts.BottomMargin),
	})
	for _, el := range els {
		if raw, ok := dom.Unwrap(el).(*Element); ok {
			observer.Call("observe", raw.v)
		}
	}
}

func toAny(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}
