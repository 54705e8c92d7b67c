package animation

import "github.com/Zachkp/portfolio/internal/dom"

// FadeInSelector matches elements styled to fade in once they scroll into
// view. CSS does the animation; the page only adds AnimateClass.
const FadeInSelector = ".fade-in-up, .fade-in-left, .fade-in-right"

// AnimateClass starts a fade-in transition.
const AnimateClass = "animate"

// FadeIn fires when a tenth of the element is visible, ignoring the bottom
// 50px of the viewport.
var FadeIn = dom.ObserveOptions{Threshold: 0.1, BottomMargin: -50}

// ObserveFadeIns adds AnimateClass to each fade-in element as it enters the
// viewport and reports how many elements are watched. It does not depend on
// the animation library.
func ObserveFadeIns(doc dom.Document, win dom.Window) int {
	els := doc.QueryAll(FadeInSelector)
	if len(els) == 0 || win == nil {
		return 0
	}
	win.Observe(els, FadeIn, func(el dom.Element) { el.AddClass(AnimateClass) })
	return len(els)
}
