package typewriter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zachkp/portfolio/internal/dom/memdom"
	"github.com/Zachkp/portfolio/internal/scheduler"
)

func TestTypesOneRuneAtATime(t *testing.T) {
	doc, err := memdom.ParseString(`<html><body><span class="typing-text">Go ✓</span></body></html>`)
	require.NoError(t, err)
	clock := scheduler.NewManual()

	tw := Start(doc, clock)
	require.NotNil(t, tw)
	el := doc.Query(Selector)
	assert.Equal(t, "", el.Text())

	clock.Advance(StartDelay - 1)
	assert.Equal(t, "", el.Text())

	clock.Advance(1)
	assert.Equal(t, "G", el.Text())

	clock.Advance(CharDelay)
	assert.Equal(t, "Go", el.Text())

	clock.Advance(2 * CharDelay)
	assert.Equal(t, "Go ✓", el.Text())
	assert.True(t, tw.Done())
	assert.Equal(t, 0, clock.Pending())
}

func TestStopShowsFullText(t *testing.T) {
	doc, err := memdom.ParseString(`<html><body><span class="typing-text">Hello</span></body></html>`)
	require.NoError(t, err)
	clock := scheduler.NewManual()

	tw := Start(doc, clock)
	clock.Advance(StartDelay)
	tw.Stop()

	assert.Equal(t, "Hello", doc.Query(Selector).Text())
	assert.Equal(t, 0, clock.Pending())
}

func TestMissingElement(t *testing.T) {
	doc, err := memdom.ParseString(`<html><body></body></html>`)
	require.NoError(t, err)

	tw := Start(doc, scheduler.NewManual())
	assert.Nil(t, tw)
	assert.True(t, tw.Done())
	assert.NotPanics(t, tw.Stop)
}
