package animation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zachkp/portfolio/internal/dom/memdom"
)

func TestObserveFadeIns(t *testing.T) {
	doc, err := memdom.ParseString(`<body>
<div id="top" class="fade-in-up"></div>
<div id="mid" class="fade-in-left"></div>
<div id="low" class="fade-in-right"></div>
<div id="plain"></div>
</body>`)
	require.NoError(t, err)
	doc.SetLayout(doc.ByID("top"), 100, 200)
	doc.SetLayout(doc.ByID("mid"), 740, 200)
	doc.SetLayout(doc.ByID("low"), 2000, 200)
	win := memdom.NewWindow()

	assert.Equal(t, 3, ObserveFadeIns(doc, win))

	assert.True(t, doc.ByID("top").HasClass(AnimateClass))
	// 60px of mid are on screen, but only 10px clear the bottom margin.
	assert.False(t, doc.ByID("mid").HasClass(AnimateClass))
	assert.False(t, doc.ByID("low").HasClass(AnimateClass))

	win.Scroll(100)
	assert.True(t, doc.ByID("mid").HasClass(AnimateClass))
	assert.False(t, doc.ByID("low").HasClass(AnimateClass))

	win.Scroll(1500)
	assert.True(t, doc.ByID("low").HasClass(AnimateClass))
	assert.True(t, doc.ByID("top").HasClass(AnimateClass), "animate is never removed")
	assert.False(t, doc.ByID("plain").HasClass(AnimateClass))
}

func TestObserveFadeInsWithoutTargets(t *testing.T) {
	doc, err := memdom.ParseString(`<body><div class="fade-in-up"></div></body>`)
	require.NoError(t, err)
	assert.Zero(t, ObserveFadeIns(doc, nil))

	empty, err := memdom.ParseString(`<body></body>`)
	require.NoError(t, err)
	assert.Zero(t, ObserveFadeIns(empty, memdom.NewWindow()))
}
