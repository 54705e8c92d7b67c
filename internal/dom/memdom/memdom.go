// Package memdom is an in-memory dom.Document backed by golang.org/x/net/html.
//
// Layout is not computed: tests and the pre-renderer assign offsets with
// SetLayout. Events never fire on their own; Click and Window.Scroll
// dispatch them synchronously.
package memdom

import (
	"bytes"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"

	"github.com/Zachkp/portfolio/internal/dom"
)

type layout struct {
	top    float64
	height float64
}

// Document wraps a parsed HTML tree.
type Document struct {
	root      *html.Node
	layout    map[*html.Node]layout
	handlers  map[*html.Node]map[string][]dom.Handler
	selectors map[string]cascadia.SelectorGroup
	err       error
}

var _ dom.Document = (*Document)(nil)

// Parse reads an HTML document.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}
	return &Document{
		root:      root,
		layout:    make(map[*html.Node]layout),
		handlers:  make(map[*html.Node]map[string][]dom.Handler),
		selectors: make(map[string]cascadia.SelectorGroup),
	}, nil
}

// ParseString is Parse over a string.
func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

// Render writes the current tree as HTML.
func (d *Document) Render(w io.Writer) error {
	if err := html.Render(w, d.root); err != nil {
		return fmt.Errorf("render document: %w", err)
	}
	return nil
}

// String renders the document, returning "" on failure.
func (d *Document) String() string {
	var buf bytes.Buffer
	if err := d.Render(&buf); err != nil {
		return ""
	}
	return buf.String()
}

func (d *Document) wrap(n *html.Node) dom.Element {
	if n == nil {
		return nil
	}
	return &Element{doc: d, n: n}
}

// ByID returns the first element with the given id, or nil.
func (d *Document) ByID(id string) dom.Element {
	var found *html.Node
	walk(d.root, func(n *html.Node) bool {
		if n.Type == html.ElementNode && attr(n, "id") == id {
			found = n
			return false
		}
		return true
	})
	return d.wrap(found)
}

// Query returns the first match for selector, or nil.
func (d *Document) Query(selector string) dom.Element {
	all := d.QueryAll(selector)
	if len(all) == 0 {
		return nil
	}
	return all[0]
}

// QueryAll returns matches in document order. An invalid selector matches
// nothing and is reported by Err.
func (d *Document) QueryAll(selector string) []dom.Element {
	return d.queryUnder(d.root, selector)
}

// SetLayout assigns the offsetTop and clientHeight reported for el.
func (d *Document) SetLayout(el dom.Element, top, height float64) {
	if e, ok := el.(*Element); ok {
		d.layout[e.n] = layout{top: top, height: height}
	}
}

// Click dispatches a click on el, bubbling to its ancestors. It reports
// whether a handler prevented the default action.
func (d *Document) Click(el dom.Element) bool {
	return d.Dispatch(el, "click")
}

// Dispatch fires event on el and its ancestors.
func (d *Document) Dispatch(el dom.Element, event string) bool {
	e, ok := el.(*Element)
	if !ok {
		return false
	}
	ev := &Event{target: el}
	for n := e.n; n != nil; n = n.Parent {
		for _, h := range d.handlers[n][event] {
			h(ev)
		}
	}
	return ev.prevented
}

// Event is a synchronously dispatched event.
type Event struct {
	target    dom.Element
	prevented bool
}

func (e *Event) Target() dom.Element { return e.target }
func (e *Event) PreventDefault()     { e.prevented = true }

// Element wraps one element node.
type Element struct {
	doc *Document
	n   *html.Node
}

var _ dom.Element = (*Element)(nil)

// Node exposes the underlying node.
func (e *Element) Node() *html.Node { return e.n }

func (e *Element) ID() string  { return attr(e.n, "id") }
func (e *Element) Tag() string { return e.n.Data }

func (e *Element) Attr(name string) string { return attr(e.n, name) }

func (e *Element) SetAttr(name, value string) {
	for i, a := range e.n.Attr {
		if a.Namespace == "" && a.Key == name {
			e.n.Attr[i].Val = value
			return
		}
	}
	e.n.Attr = append(e.n.Attr, html.Attribute{Key: name, Val: value})
}

func (e *Element) classes() []string { return strings.Fields(attr(e.n, "class")) }

func (e *Element) HasClass(class string) bool { return slices.Contains(e.classes(), class) }

func (e *Element) AddClass(classes ...string) {
	have := e.classes()
	for _, c := range classes {
		if !slices.Contains(have, c) {
			have = append(have, c)
		}
	}
	e.SetAttr("class", strings.Join(have, " "))
}

func (e *Element) RemoveClass(classes ...string) {
	have := e.classes()
	kept := have[:0]
	for _, c := range have {
		if !slices.Contains(classes, c) {
			kept = append(kept, c)
		}
	}
	e.SetAttr("class", strings.Join(kept, " "))
}

func (e *Element) ToggleClass(class string) bool {
	if e.HasClass(class) {
		e.RemoveClass(class)
		return false
	}
	e.AddClass(class)
	return true
}

func (e *Element) SetClassName(className string) { e.SetAttr("class", className) }

func (e *Element) Style(prop string) string {
	for _, d := range parseStyle(attr(e.n, "style")) {
		if d.prop == prop {
			return d.value
		}
	}
	return ""
}

func (e *Element) SetStyle(prop, value string) {
	decls := parseStyle(attr(e.n, "style"))
	replaced := false
	for i := range decls {
		if decls[i].prop == prop {
			decls[i].value = value
			replaced = true
		}
	}
	if !replaced {
		decls = append(decls, decl{prop: prop, value: value})
	}
	e.SetAttr("style", formatStyle(decls))
}

func (e *Element) Text() string {
	var b strings.Builder
	walk(e.n, func(n *html.Node) bool {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		return true
	})
	return b.String()
}

func (e *Element) SetText(text string) {
	e.Clear()
	e.n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
}

func (e *Element) Clear() {
	for c := e.n.FirstChild; c != nil; c = e.n.FirstChild {
		e.n.RemoveChild(c)
	}
}

func (e *Element) AppendHTML(fragment string) error {
	nodes, err := html.ParseFragment(strings.NewReader(fragment), e.n)
	if err != nil {
		return fmt.Errorf("parse fragment: %w", err)
	}
	for _, n := range nodes {
		if n.Parent != nil {
			n.Parent.RemoveChild(n)
		}
		e.n.AppendChild(n)
	}
	return nil
}

func (e *Element) Query(selector string) dom.Element {
	all := e.QueryAll(selector)
	if len(all) == 0 {
		return nil
	}
	return all[0]
}

func (e *Element) QueryAll(selector string) []dom.Element {
	return e.doc.queryUnder(e.n, selector)
}

func (e *Element) OffsetTop() float64    { return e.doc.layout[e.n].top }
func (e *Element) ClientHeight() float64 { return e.doc.layout[e.n].height }

func (e *Element) On(event string, h dom.Handler) {
	byEvent := e.doc.handlers[e.n]
	if byEvent == nil {
		byEvent = make(map[string][]dom.Handler)
		e.doc.handlers[e.n] = byEvent
	}
	byEvent[event] = append(byEvent[event], h)
}

// Window is a scrollable viewport with no real layout.
type Window struct {
	y         float64
	handlers  []func()
	observers []observer

	// Height is the viewport height used for intersection checks.
	Height float64

	// Scrolls records every ScrollTo call.
	Scrolls []ScrollCall
}

type observer struct {
	els  []dom.Element
	opts dom.ObserveOptions
	fn   func(dom.Element)
}

// ScrollCall is one recorded ScrollTo.
type ScrollCall struct {
	Top    float64
	Smooth bool
}

var _ dom.Window = (*Window)(nil)

// DefaultHeight is the viewport height of NewWindow.
const DefaultHeight = 800

// NewWindow returns a window scrolled to the top.
func NewWindow() *Window { return &Window{Height: DefaultHeight} }

func (w *Window) ScrollY() float64 { return w.y }

func (w *Window) ScrollTo(top float64, smooth bool) {
	w.Scrolls = append(w.Scrolls, ScrollCall{Top: top, Smooth: smooth})
	w.Scroll(top)
}

func (w *Window) OnScroll(h func()) { w.handlers = append(w.handlers, h) }

// Observe checks els immediately and again after every scroll.
func (w *Window) Observe(els []dom.Element, opts dom.ObserveOptions, fn func(dom.Element)) {
	o := observer{els: els, opts: opts, fn: fn}
	w.observers = append(w.observers, o)
	w.check(o)
}

// Scroll moves the viewport to y and fires scroll handlers, then observers.
func (w *Window) Scroll(y float64) {
	w.y = y
	for _, h := range w.handlers {
		h()
	}
	for _, o := range w.observers {
		w.check(o)
	}
}

func (w *Window) check(o observer) {
	for _, el := range o.els {
		if w.intersects(el, o.opts) {
			o.fn(el)
		}
	}
}

func (w *Window) intersects(el dom.Element, opts dom.ObserveOptions) bool {
	top, height := el.OffsetTop(), el.ClientHeight()
	viewTop, viewBottom := w.y, w.y+w.Height+opts.BottomMargin
	if height <= 0 {
		return top >= viewTop && top < viewBottom
	}
	visible := min(top+height, viewBottom) - max(top, viewTop)
	return visible > 0 && visible/height >= opts.Threshold
}

func walk(n *html.Node, visit func(*html.Node) bool) bool {
	if !visit(n) {
		return false
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if !walk(c, visit) {
			return false
		}
	}
	return true
}

func attr(n *html.Node, key string) string {
	v, _ := lookupAttr(n, key)
	return v
}

func lookupAttr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

type decl struct {
	prop  string
	value string
}

func parseStyle(s string) []decl {
	var out []decl
	for _, part := range strings.Split(s, ";") {
		prop, value, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}
		prop = strings.TrimSpace(prop)
		if prop == "" {
			continue
		}
		out = append(out, decl{prop: prop, value: strings.TrimSpace(value)})
	}
	return out
}

func formatStyle(decls []decl) string {
	parts := make([]string, 0, len(decls))
	for _, d := range decls {
		parts = append(parts, d.prop+": "+d.value)
	}
	return strings.Join(parts, "; ")
}
