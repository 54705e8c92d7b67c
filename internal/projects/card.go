// Package projects renders the project grid and drives its category filter.
package projects

import (
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/Zachkp/portfolio/internal/catalog"
)

var cardTemplate = template.Must(template.New("card").Parse(`<div class="project-card transform transition-all duration-500" data-project-id="{{.ID}}">
<div class="relative overflow-hidden">
<div class="project-image bg-gradient-to-br {{.Theme}}"></div>
<div class="project-overlay">
<div class="project-links">
<a href="{{.LiveURL}}" class="project-link" target="_blank"><i class="fas fa-external-link-alt mr-2"></i>Live</a>
<a href="{{.SourceURL}}" class="project-link" target="_blank"><i class="fab fa-github mr-2"></i>Code</a>
<a href="{{.DemoURL}}" class="project-link" target="_blank"><i class="fas fa-play mr-2"></i>Demo</a>
</div>
</div>
</div>
<div class="p-6">
<h3 class="text-xl font-semibold mb-2 text-gray-100">{{.Title}}</h3>
<p class="text-gray-300 mb-4">{{.Description}}</p>
<div class="flex flex-wrap gap-2 mb-4">
{{- range .Technologies}}<span class="tech-tag px-3 py-1 bg-gradient-to-r from-indigo-500 to-purple-500 text-white text-sm rounded-full border border-indigo-400">{{.}}</span>{{end -}}
</div>
<div class="flex justify-between items-center">
<span class="project-category text-sm text-gray-400 capitalize">{{.Category}}</span>
<div class="flex space-x-2">
<a href="{{.LiveURL}}" class="text-indigo-400 hover:text-indigo-300 transition-colors"><i class="fas fa-external-link-alt"></i></a>
<a href="{{.SourceURL}}" class="text-gray-400 hover:text-gray-300 transition-colors"><i class="fab fa-github"></i></a>
</div>
</div>
</div>
</div>`))

// RenderCard writes the card fragment for p.
func RenderCard(w io.Writer, p catalog.Project) error {
	if err := cardTemplate.Execute(w, p); err != nil {
		return fmt.Errorf("render card %d: %w", p.ID, err)
	}
	return nil
}

// CardHTML is RenderCard into a string.
func CardHTML(p catalog.Project) (string, error) {
	var b strings.Builder
	if err := RenderCard(&b, p); err != nil {
		return "", err
	}
	return b.String(), nil
}
