package server

import (
	"bytes"
	"fmt"
	"html/template"
	"log/slog"
	"path/filepath"

	"github.com/Zachkp/portfolio/internal/catalog"
	"github.com/Zachkp/portfolio/internal/dom/memdom"
	"github.com/Zachkp/portfolio/internal/site"
)

// PageData feeds templates/index.html.
type PageData struct {
	Headline     string
	AboutMe      string
	Skills       []string
	Categories   []catalog.Category
	Testimonials []Testimonial
}

// RenderIndex executes index.html from templateDir and pre-renders the
// static part of the page behaviors into it: the full project grid, the
// first testimonial and visible animated content.
func RenderIndex(templateDir string, cat *catalog.Catalog, logger *slog.Logger) ([]byte, error) {
	tmpl, err := template.ParseFiles(filepath.Join(templateDir, "index.html"))
	if err != nil {
		return nil, fmt.Errorf("load index template: %w", err)
	}

	data := PageData{
		Headline:     Headline,
		AboutMe:      AboutMe,
		Skills:       Skills,
		Categories:   cat.Categories(),
		Testimonials: Testimonials,
	}
	var raw bytes.Buffer
	if err := tmpl.ExecuteTemplate(&raw, "index.html", data); err != nil {
		return nil, fmt.Errorf("execute index template: %w", err)
	}

	doc, err := memdom.Parse(&raw)
	if err != nil {
		return nil, err
	}
	if err := site.Prerender(doc, cat, logger); err != nil {
		return nil, fmt.Errorf("prerender: %w", err)
	}

	var out bytes.Buffer
	if err := doc.Render(&out); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
