package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportWritesSite(t *testing.T) {
	t.Setenv("PORTFOLIO_TEMPLATES", filepath.Join("..", "templates"))
	t.Setenv("PORTFOLIO_LOG_LEVEL", "error")
	out := filepath.Join(t.TempDir(), "dist")

	rootCmd.SetArgs([]string{"export", "--out", out})
	require.NoError(t, Execute())

	index, err := os.ReadFile(filepath.Join(out, "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(index), `data-project-id="1"`)

	raw, err := os.ReadFile(filepath.Join(out, "projects.json"))
	require.NoError(t, err)
	var body struct {
		Projects []json.RawMessage `json:"projects"`
	}
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Len(t, body.Projects, 6)
}

func TestLoadCatalogFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "projects.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
categories: [tools]
projects:
  - id: 1
    title: Scheduler
    description: Cron for small teams.
    theme: from-blue-500 to-purple-600
    category: tools
    technologies: [Go]
    live_url: https://example.com
    source_url: https://example.com/src
    demo_url: https://example.com/demo
`), 0o644))

	catalogFile = path
	t.Cleanup(func() { catalogFile = "" })

	cat, err := loadCatalog()
	require.NoError(t, err)
	assert.Equal(t, 1, cat.Len())

	catalogFile = filepath.Join(t.TempDir(), "missing.yaml")
	_, err = loadCatalog()
	assert.ErrorContains(t, err, "opening catalog")
}
