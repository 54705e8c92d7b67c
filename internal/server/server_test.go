package server

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zachkp/portfolio/internal/catalog"
	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/dom/memdom"
)

func newTestServer(t *testing.T, logs io.Writer) *Server {
	t.Helper()
	static := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(static, "styles.css"), []byte("body{}"), 0o644))

	cfg := &config.Config{
		Port:        "0",
		GinMode:     gin.TestMode,
		TemplateDir: filepath.Join("..", "..", "templates"),
		StaticDir:   static,
		ImageDir:    t.TempDir(),
		WasmDir:     t.TempDir(),
		LogLevel:    "info",
	}
	if logs == nil {
		logs = io.Discard
	}
	s, err := New(cfg, catalog.Default(), slog.New(slog.NewTextHandler(logs, nil)))
	require.NoError(t, err)
	return s
}

func get(t *testing.T, s *Server, path string, header ...string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func TestIndexIsPrerendered(t *testing.T) {
	s := newTestServer(t, nil)
	w := get(t, s, "/")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Equal(t, s.Index(), w.Body.Bytes())

	doc, err := memdom.Parse(w.Body)
	require.NoError(t, err)

	cards := doc.QueryAll(".project-card")
	assert.Len(t, cards, catalog.Default().Len())

	filters := doc.QueryAll(".filter-btn")
	require.Len(t, filters, 3)
	assert.True(t, filters[0].HasClass("active"))
	assert.Equal(t, "web", filters[1].Attr("data-filter"))

	slides := doc.QueryAll(".testimonial-slide")
	require.Len(t, slides, len(Testimonials))
	assert.True(t, slides[0].HasClass("active"))
	assert.False(t, slides[1].HasClass("active"))
	assert.True(t, doc.QueryAll(".testimonial-dot")[0].HasClass("active"))

	assert.Equal(t, "1", doc.Query(".hero-content").Style("opacity"))
	assert.Contains(t, doc.Query(".about-content").Text(), "curious")
}

func TestProjectsJSON(t *testing.T) {
	s := newTestServer(t, nil)

	w := get(t, s, "/projects.json")
	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Categories []string          `json:"categories"`
		Projects   []catalog.Project `json:"projects"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, []string{"web", "design"}, body.Categories)
	assert.Len(t, body.Projects, 6)

	w = get(t, s, "/projects.json?category=design")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Projects, 2)
	for _, p := range body.Projects {
		assert.Equal(t, catalog.Design, p.Category)
	}

	w = get(t, s, "/projects.json?category=mobile")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStaticAndNotFound(t *testing.T) {
	s := newTestServer(t, nil)

	w := get(t, s, "/static/styles.css")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "body{}", w.Body.String())

	w = get(t, s, "/nowhere")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "/nowhere")
}

func TestRequestLogger(t *testing.T) {
	var logs bytes.Buffer
	s := newTestServer(t, &logs)

	get(t, s, "/static/styles.css")
	get(t, s, "/wasm/portfolio.wasm")
	get(t, s, "/wasm/wasm_exec.js")
	assert.Empty(t, logs.String())

	get(t, s, "/")
	assert.Contains(t, logs.String(), "path=/")
	assert.Contains(t, logs.String(), "client=")

	logs.Reset()
	get(t, s, "/", "DNT", "1")
	assert.Contains(t, logs.String(), "status=200")
	assert.NotContains(t, logs.String(), "client=")
}

func TestIPHasher(t *testing.T) {
	h, err := newIPHasher()
	require.NoError(t, err)
	a := h.Hash("203.0.113.7")
	assert.Len(t, a, 16)
	assert.Equal(t, a, h.Hash("203.0.113.7"))
	assert.NotEqual(t, a, h.Hash("203.0.113.8"))
}

func TestNewFailsWithoutTemplates(t *testing.T) {
	cfg := &config.Config{GinMode: gin.TestMode, TemplateDir: t.TempDir()}
	_, err := New(cfg, nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load index template")
}
