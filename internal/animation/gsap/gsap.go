//go:build js && wasm

// Package gsap drives the GSAP library loaded on the page.
package gsap

import (
	"errors"
	"fmt"
	"syscall/js"

	"github.com/Zachkp/portfolio/internal/animation"
	"github.com/Zachkp/portfolio/internal/dom"
	"github.com/Zachkp/portfolio/internal/dom/jsdom"
)

var errNoTarget = errors.New("tween target has no element or selector")

type Driver struct {
	gsap js.Value
	doc  *jsdom.Document
}

var _ animation.Driver = (*Driver)(nil)

// New returns a driver for window.gsap, or nil when the library is absent.
// The result is an interface so that absence is a true nil for the bridge.
func New(doc *jsdom.Document) animation.Driver {
	g := js.Global().Get("gsap")
	if g.IsUndefined() || g.IsNull() {
		return nil
	}
	return &Driver{gsap: g, doc: doc}
}

func (d *Driver) RegisterPlugin(name string) error {
	plugin := js.Global().Get(name)
	if plugin.IsUndefined() || plugin.IsNull() {
		return fmt.Errorf("plugin %s not loaded", name)
	}
	d.gsap.Call("registerPlugin", plugin)
	return nil
}

func (d *Driver) Timeline() (animation.Timeline, error) {
	return timeline{v: d.gsap.Call("timeline")}, nil
}

func (d *Driver) From(target animation.Target, tw animation.Tween) error {
	t, err := jsTarget(target)
	if err != nil {
		return err
	}
	d.gsap.Call("from", t, vars(tw))
	return nil
}

func (d *Driver) SelectAll(selector string) []dom.Element {
	arr := d.gsap.Get("utils").Call("toArray", selector)
	out := make([]dom.Element, 0, arr.Length())
	for i := 0; i < arr.Length(); i++ {
		if el := d.doc.Wrap(arr.Index(i)); el != nil {
			out = append(out, el)
		}
	}
	return out
}

type timeline struct {
	v js.Value
}

func (t timeline) From(target animation.Target, tw animation.Tween, position string) error {
	jt, err := jsTarget(target)
	if err != nil {
		return err
	}
	if position == "" {
		t.v.Call("from", jt, vars(tw))
		return nil
	}
	t.v.Call("from", jt, vars(tw), position)
	return nil
}

// jsTarget prefers the raw element; anything else is addressed by selector.
func jsTarget(t animation.Target) (any, error) {
	if el, ok := dom.Unwrap(t.Element).(*jsdom.Element); ok {
		return el.Value(), nil
	}
	if t.Element != nil && t.Element.ID() != "" {
		return "#" + t.Element.ID(), nil
	}
	if t.Selector != "" {
		return t.Selector, nil
	}
	return nil, errNoTarget
}

func vars(tw animation.Tween) map[string]any {
	v := map[string]any{
		"duration": tw.Duration.Seconds(),
	}
	for k, val := range tw.From {
		v[k] = val
	}
	if tw.Ease != "" {
		v["ease"] = tw.Ease
	}
	if tw.Stagger > 0 {
		v["stagger"] = tw.Stagger.Seconds()
	}
	if st := tw.ScrollTrigger; st != nil {
		trigger, err := jsTarget(st.Trigger)
		if err == nil {
			v["scrollTrigger"] = map[string]any{
				"trigger":       trigger,
				"start":         st.Start,
				"end":           st.End,
				"toggleActions": st.ToggleActions,
			}
		}
	}
	return v
}
