package animation

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zachkp/portfolio/internal/dom"
	"github.com/Zachkp/portfolio/internal/dom/memdom"
	"github.com/Zachkp/portfolio/internal/scheduler"
)

type call struct {
	target   string
	tw       Tween
	position string
}

type recordingDriver struct {
	doc         dom.Document
	registerErr error
	panicOn     string
	plugins     []string
	timeline    []call
	tweens      []call
}

func (d *recordingDriver) RegisterPlugin(name string) error {
	d.plugins = append(d.plugins, name)
	if d.panicOn == "register" {
		panic("plugin exploded")
	}
	return d.registerErr
}

func (d *recordingDriver) Timeline() (Timeline, error) { return recordingTimeline{d}, nil }

func (d *recordingDriver) From(target Target, tw Tween) error {
	if d.panicOn == target.String() {
		panic("tween exploded")
	}
	d.tweens = append(d.tweens, call{target: target.String(), tw: tw})
	return nil
}

func (d *recordingDriver) SelectAll(selector string) []dom.Element { return d.doc.QueryAll(selector) }

type recordingTimeline struct{ d *recordingDriver }

func (t recordingTimeline) From(target Target, tw Tween, position string) error {
	t.d.timeline = append(t.d.timeline, call{target: target.String(), tw: tw, position: position})
	return nil
}

const page = `<html><body>
<div class="hero-content" style="opacity: 0"></div>
<section id="about"><h2 id="about-title">About</h2><div class="about-content" style="opacity: 0; transform: translateX(-50px)"></div></section>
<section id="projects"><h2 id="projects-title">Projects</h2>
<div id="projects-grid"><div class="project-card" style="opacity: 0"></div><div class="project-card"></div></div></section>
<a class="social-link"></a>
</body></html>`

func newDoc(t *testing.T) *memdom.Document {
	t.Helper()
	doc, err := memdom.ParseString(page)
	require.NoError(t, err)
	return doc
}

func newLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestMissingLibraryFallsBackToVisible(t *testing.T) {
	doc := newDoc(t)
	var logs bytes.Buffer

	b := New(nil, newLogger(&logs))
	assert.NotPanics(t, func() {
		EnsureVisible(doc)
		b.Init()
		b.Stagger(".project-card", Tween{})
	})

	assert.False(t, b.Available())
	assert.Contains(t, logs.String(), "animation library not loaded")
	for _, sel := range []string{".hero-content", ".about-content", ".social-link"} {
		for _, el := range doc.QueryAll(sel) {
			assert.Equal(t, "1", el.Style("opacity"), sel)
			assert.Equal(t, "none", el.Style("transform"), sel)
		}
	}
	for _, card := range doc.QueryAll(".project-card") {
		assert.Equal(t, "1", card.Style("opacity"))
		assert.Equal(t, "translateY(0) scale(1)", card.Style("transform"))
	}
}

func TestRegisterFailureUsesNoop(t *testing.T) {
	tests := []struct {
		name   string
		driver *recordingDriver
	}{
		{"error", &recordingDriver{registerErr: errors.New("no plugin")}},
		{"panic", &recordingDriver{panicOn: "register"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logs bytes.Buffer
			tt.driver.doc = newDoc(t)

			b := New(tt.driver, newLogger(&logs))
			b.Init()

			assert.False(t, b.Available())
			assert.Empty(t, tt.driver.tweens)
			assert.Contains(t, logs.String(), "animation initialization failed")
		})
	}
}

func TestInitBuildsHeroAndScrollTweens(t *testing.T) {
	doc := newDoc(t)
	d := &recordingDriver{doc: doc}

	b := New(d, nil)
	require.True(t, b.Available())
	b.Init()

	assert.Equal(t, []string{"ScrollTrigger"}, d.plugins)
	require.Len(t, d.timeline, 4)
	assert.Equal(t, ".hero-content", d.timeline[0].target)
	assert.Equal(t, "-=0.8", d.timeline[2].position)
	assert.Equal(t, 200*time.Millisecond, d.timeline[2].tw.Stagger)

	// two section headers plus one tween per section group
	require.Len(t, d.tweens, 2+len(sectionTweens))
	assert.Equal(t, "#about-title", d.tweens[0].target)
	require.NotNil(t, d.tweens[0].tw.ScrollTrigger)
	assert.Equal(t, "top 80%", d.tweens[0].tw.ScrollTrigger.Start)
	assert.Equal(t, "play none none reverse", d.tweens[0].tw.ScrollTrigger.ToggleActions)

	last := d.tweens[len(d.tweens)-1]
	assert.Equal(t, ".social-link", last.target)
	assert.Equal(t, "#contact", last.tw.ScrollTrigger.Trigger.Selector)
}

func TestInitRecoversFromDriverPanic(t *testing.T) {
	doc := newDoc(t)
	d := &recordingDriver{doc: doc, panicOn: ".skill-item"}
	var logs bytes.Buffer

	b := New(d, newLogger(&logs))
	assert.NotPanics(t, b.Init)

	assert.Contains(t, logs.String(), "animations failed")
	assert.Contains(t, logs.String(), "tween exploded")
	// tweens queued before the fault are kept
	assert.Len(t, d.tweens, 4)
}

func TestStaggerIsGuarded(t *testing.T) {
	doc := newDoc(t)
	d := &recordingDriver{doc: doc}
	b := New(d, nil)

	b.Stagger(".project-card", Tween{Stagger: 100 * time.Millisecond})
	require.Len(t, d.tweens, 1)
	assert.Equal(t, ".project-card", d.tweens[0].target)

	d.panicOn = ".project-card"
	assert.NotPanics(t, func() { b.Stagger(".project-card", Tween{}) })
}

func TestScheduleReveal(t *testing.T) {
	doc := newDoc(t)
	clock := scheduler.NewManual()

	ScheduleReveal(clock, doc)
	card := doc.Query(".project-card")
	card.SetStyle("opacity", "0")

	clock.Advance(RevealDelay - time.Millisecond)
	assert.Equal(t, "0", card.Style("opacity"))

	clock.Advance(time.Millisecond)
	assert.Equal(t, "1", card.Style("opacity"))
}
