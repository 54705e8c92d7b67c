// Package typewriter reveals an element's text one character at a time.
package typewriter

import (
	"time"

	"github.com/Zachkp/portfolio/internal/dom"
	"github.com/Zachkp/portfolio/internal/scheduler"
)

const (
	// Selector matches the element whose text is typed out.
	Selector = ".typing-text"

	// StartDelay lets the hero entrance finish before typing begins.
	StartDelay = 1500 * time.Millisecond
	// CharDelay is the pause between characters.
	CharDelay = 100 * time.Millisecond
)

// Typewriter reveals the hero text one rune at a time.
type Typewriter struct {
	el    dom.Element
	sched scheduler.Scheduler
	text  []rune
	shown int
	timer scheduler.Timer
}

// Start captures the text of the first Selector match, clears it and begins
// typing after StartDelay. It returns nil when the element is absent.
func Start(doc dom.Document, s scheduler.Scheduler) *Typewriter {
	el := doc.Query(Selector)
	if el == nil {
		return nil
	}
	tw := &Typewriter{el: el, sched: s, text: []rune(el.Text())}
	el.SetText("")
	tw.timer = s.After(StartDelay, tw.step)
	return tw
}

func (tw *Typewriter) step() {
	if tw.shown >= len(tw.text) {
		tw.timer = nil
		return
	}
	tw.shown++
	tw.el.SetText(string(tw.text[:tw.shown]))
	if tw.shown < len(tw.text) {
		tw.timer = tw.sched.After(CharDelay, tw.step)
	} else {
		tw.timer = nil
	}
}

// Done reports whether the full text is shown.
func (tw *Typewriter) Done() bool { return tw == nil || tw.shown >= len(tw.text) }

// Stop cancels typing and shows the full text.
func (tw *Typewriter) Stop() {
	if tw == nil {
		return
	}
	if tw.timer != nil {
		tw.timer.Stop()
		tw.timer = nil
	}
	tw.shown = len(tw.text)
	tw.el.SetText(string(tw.text))
}
