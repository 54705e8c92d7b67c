package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(ps []Project) []int {
	out := make([]int, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.ID)
	}
	return out
}

func TestDefaultCatalog(t *testing.T) {
	c := Default()

	assert.Equal(t, 6, c.Len())
	assert.Equal(t, []Category{Web, Design}, c.Categories())
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, ids(c.Projects()))
}

func TestFilterPreservesCatalogOrder(t *testing.T) {
	c := Default()

	tests := []struct {
		category Category
		want     []int
	}{
		{All, []int{1, 2, 3, 4, 5, 6}},
		{Web, []int{1, 2, 3, 6}},
		{Design, []int{4, 5}},
		{Category("mobile"), []int{}},
	}
	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			got := c.Filter(tt.category)
			assert.Equal(t, tt.want, ids(got))
			for _, p := range got {
				if tt.category != All {
					assert.Equal(t, tt.category, p.Category)
				}
			}
		})
	}
}

func TestFilterReturnsCopies(t *testing.T) {
	c := Default()

	first := c.Filter(All)
	first[0].Title = "changed"
	first[0].Technologies[0] = "changed"

	again := c.Filter(All)
	assert.Equal(t, "Microservices Architecture Platform", again[0].Title)
	assert.Equal(t, "Java", again[0].Technologies[0])
}

func TestKnown(t *testing.T) {
	c := Default()
	assert.True(t, c.Known(All))
	assert.True(t, c.Known(Design))
	assert.False(t, c.Known("mobile"))
}

const validDoc = `
categories: [web]
projects:
  - id: 1
    title: One
    description: first
    theme: from-a to-b
    category: web
    technologies: [Go]
    live_url: https://a
    source_url: https://b
    demo_url: https://c
`

func TestLoad(t *testing.T) {
	c, err := Load(strings.NewReader(validDoc))
	require.NoError(t, err)
	require.Equal(t, 1, c.Len())
	assert.Equal(t, []string{"Go"}, c.Projects()[0].Technologies)
}

func TestLoadErrors(t *testing.T) {
	dup := validDoc + `
  - id: 1
    title: Two
    description: second
    theme: from-a to-b
    category: web
    live_url: https://a
    source_url: https://b
    demo_url: https://c
`
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"duplicate id", dup, ErrDuplicateID},
		{"unknown category", strings.Replace(validDoc, "category: web", "category: mobile", 1), ErrUnknownCategory},
		{"missing title", strings.Replace(validDoc, "title: One", "title: ''", 1), ErrInvalidProject},
		{"missing link", strings.Replace(validDoc, "demo_url: https://c", "demo_url: ''", 1), ErrInvalidProject},
		{"reserved category", strings.Replace(validDoc, "categories: [web]", "categories: [web, all]", 1), ErrUnknownCategory},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.doc))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestLoadMalformed(t *testing.T) {
	_, err := Load(strings.NewReader("projects: [:"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode catalog")
}
