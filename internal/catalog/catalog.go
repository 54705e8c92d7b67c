// Package catalog holds the fixed, ordered list of portfolio projects.
package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Category partitions the catalog.
type Category string

const (
	// All is the sentinel meaning no partition.
	All    Category = "all"
	Web    Category = "web"
	Design Category = "design"
)

var (
	ErrDuplicateID     = errors.New("duplicate project id")
	ErrUnknownCategory = errors.New("unknown category")
	ErrInvalidProject  = errors.New("invalid project")
)

// Project is one portfolio entry. Projects are never mutated after load.
type Project struct {
	ID           int      `yaml:"id" json:"id"`
	Title        string   `yaml:"title" json:"title"`
	Description  string   `yaml:"description" json:"description"`
	Theme        string   `yaml:"theme" json:"image"`
	Category     Category `yaml:"category" json:"category"`
	Technologies []string `yaml:"technologies" json:"technologies"`
	LiveURL      string   `yaml:"live_url" json:"liveUrl"`
	SourceURL    string   `yaml:"source_url" json:"githubUrl"`
	DemoURL      string   `yaml:"demo_url" json:"demoUrl"`
}

// Catalog is an immutable ordered collection of projects.
type Catalog struct {
	categories []Category
	projects   []Project
}

type document struct {
	Categories []Category `yaml:"categories"`
	Projects   []Project  `yaml:"projects"`
}

//go:embed projects.yaml
var defaultProjects []byte

// Default returns the catalog compiled into the binary. The embedded data is
// validated by tests, so a decode failure here is a programming error.
func Default() *Catalog {
	c, err := Load(bytes.NewReader(defaultProjects))
	if err != nil {
		panic(fmt.Sprintf("catalog: embedded projects: %v", err))
	}
	return c
}

// Load decodes and validates a catalog document.
func Load(r io.Reader) (*Catalog, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return New(doc.Categories, doc.Projects)
}

// New validates projects against categories and returns a catalog holding
// copies of both.
func New(categories []Category, projects []Project) (*Catalog, error) {
	known := make(map[Category]bool, len(categories))
	for _, c := range categories {
		if c == "" || c == All {
			return nil, fmt.Errorf("%w: %q is reserved", ErrUnknownCategory, c)
		}
		known[c] = true
	}

	seen := make(map[int]bool, len(projects))
	out := make([]Project, 0, len(projects))
	for i, p := range projects {
		if err := validate(p); err != nil {
			return nil, fmt.Errorf("project %d: %w", i, err)
		}
		if seen[p.ID] {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateID, p.ID)
		}
		seen[p.ID] = true
		if !known[p.Category] {
			return nil, fmt.Errorf("project %d: %w: %q", p.ID, ErrUnknownCategory, p.Category)
		}
		p.Technologies = append([]string(nil), p.Technologies...)
		out = append(out, p)
	}

	return &Catalog{
		categories: append([]Category(nil), categories...),
		projects:   out,
	}, nil
}

func validate(p Project) error {
	switch {
	case p.Title == "":
		return fmt.Errorf("%w: missing title", ErrInvalidProject)
	case p.Description == "":
		return fmt.Errorf("%w: missing description", ErrInvalidProject)
	case p.Theme == "":
		return fmt.Errorf("%w: missing theme", ErrInvalidProject)
	case p.LiveURL == "" || p.SourceURL == "" || p.DemoURL == "":
		return fmt.Errorf("%w: missing link", ErrInvalidProject)
	}
	return nil
}

// Projects returns every project in catalog order.
func (c *Catalog) Projects() []Project {
	return c.Filter(All)
}

// Categories returns the known categories in declaration order.
func (c *Catalog) Categories() []Category {
	return append([]Category(nil), c.categories...)
}

// Known reports whether category is All or a declared category.
func (c *Catalog) Known(category Category) bool {
	if category == All {
		return true
	}
	for _, k := range c.categories {
		if k == category {
			return true
		}
	}
	return false
}

// Filter returns the projects in category, preserving catalog order. All
// returns the full catalog; an unknown category returns nothing.
func (c *Catalog) Filter(category Category) []Project {
	out := make([]Project, 0, len(c.projects))
	for _, p := range c.projects {
		if category == All || p.Category == category {
			p.Technologies = append([]string(nil), p.Technologies...)
			out = append(out, p)
		}
	}
	return out
}

// Len is the number of projects.
func (c *Catalog) Len() int { return len(c.projects) }
