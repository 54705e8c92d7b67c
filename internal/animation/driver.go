// Package animation isolates page behaviors from the optional
// animation/scroll-trigger library.
package animation

import (
	"time"

	"github.com/Zachkp/portfolio/internal/dom"
)

// Target names what a tween animates: either a selector or one element.
type Target struct {
	Selector string
	Element  dom.Element
}

// Sel targets every element matching selector.
func Sel(selector string) Target { return Target{Selector: selector} }

// El targets a single element.
func El(el dom.Element) Target { return Target{Element: el} }

func (t Target) String() string {
	if t.Element != nil {
		if id := t.Element.ID(); id != "" {
			return "#" + id
		}
		return t.Element.Tag()
	}
	return t.Selector
}

// Props are the property values a from-tween starts at, keyed by library
// property name (opacity, x, y, scale).
type Props map[string]float64

// ScrollTrigger ties a tween to the viewport position of Trigger.
type ScrollTrigger struct {
	Trigger       Target
	Start         string
	End           string
	ToggleActions string
}

// Tween animates targets from Props to their current state.
type Tween struct {
	Duration      time.Duration
	From          Props
	Ease          string
	Stagger       time.Duration
	ScrollTrigger *ScrollTrigger
}

// Timeline sequences tweens. Position follows the library's syntax, e.g.
// "-=0.5" to overlap the previous tween by half a second.
type Timeline interface {
	From(target Target, tw Tween, position string) error
}

// Driver is the call surface of the animation library.
type Driver interface {
	RegisterPlugin(name string) error
	Timeline() (Timeline, error)
	From(target Target, tw Tween) error
	SelectAll(selector string) []dom.Element
}

// Noop is used whenever the real driver is unavailable.
type Noop struct{}

var _ Driver = Noop{}

func (Noop) RegisterPlugin(string) error    { return nil }
func (Noop) Timeline() (Timeline, error)    { return noopTimeline{}, nil }
func (Noop) From(Target, Tween) error       { return nil }
func (Noop) SelectAll(string) []dom.Element { return nil }

type noopTimeline struct{}

func (noopTimeline) From(Target, Tween, string) error { return nil }
