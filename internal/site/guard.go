package site

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/Zachkp/portfolio/internal/dom"
	"github.com/Zachkp/portfolio/internal/scheduler"
)

// guard is the page-wide fault handler. Every event handler and timer
// callback registered through the guarded document, window and scheduler
// runs under it, so a panic is logged and the page keeps running.
type guard struct {
	logger *slog.Logger
}

func (g guard) run(source string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			g.logger.Error("uncaught page error", "source", source, "panic", fmt.Sprint(r))
		}
	}()
	fn()
}

func (g guard) handler(event string, h dom.Handler) dom.Handler {
	return func(e dom.Event) {
		g.run(event, func() { h(e) })
	}
}

type guardedDocument struct {
	dom.Document
	g guard
}

func (d guardedDocument) ByID(id string) dom.Element {
	return d.g.element(d.Document.ByID(id))
}

func (d guardedDocument) Query(selector string) dom.Element {
	return d.g.element(d.Document.Query(selector))
}

func (d guardedDocument) QueryAll(selector string) []dom.Element {
	return d.g.elements(d.Document.QueryAll(selector))
}

type guardedElement struct {
	dom.Element
	g guard
}

func (g guard) element(el dom.Element) dom.Element {
	if el == nil {
		return nil
	}
	return guardedElement{Element: el, g: g}
}

func (g guard) elements(els []dom.Element) []dom.Element {
	for i, el := range els {
		els[i] = g.element(el)
	}
	return els
}

func (e guardedElement) Unwrap() dom.Element { return e.Element }

func (e guardedElement) On(event string, h dom.Handler) {
	e.Element.On(event, e.g.handler(event, h))
}

func (e guardedElement) Query(selector string) dom.Element {
	return e.g.element(e.Element.Query(selector))
}

func (e guardedElement) QueryAll(selector string) []dom.Element {
	return e.g.elements(e.Element.QueryAll(selector))
}

type guardedWindow struct {
	dom.Window
	g guard
}

func (w guardedWindow) OnScroll(h func()) {
	w.Window.OnScroll(func() { w.g.run("scroll", h) })
}

func (w guardedWindow) Observe(els []dom.Element, opts dom.ObserveOptions, fn func(dom.Element)) {
	w.Window.Observe(els, opts, func(el dom.Element) {
		w.g.run("observe", func() { fn(el) })
	})
}

type guardedScheduler struct {
	s scheduler.Scheduler
	g guard
}

func (s guardedScheduler) After(d time.Duration, fn func()) scheduler.Timer {
	return s.s.After(d, func() { s.g.run("timer", fn) })
}

func (s guardedScheduler) Every(d time.Duration, fn func()) scheduler.Timer {
	return s.s.Every(d, func() { s.g.run("interval", fn) })
}
