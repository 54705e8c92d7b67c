package memdom

import (
	"fmt"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"

	"github.com/Zachkp/portfolio/internal/dom"
)

// compile parses selector once per document.
func (d *Document) compile(selector string) (cascadia.SelectorGroup, error) {
	if sel, ok := d.selectors[selector]; ok {
		return sel, nil
	}
	sel, err := cascadia.ParseGroup(selector)
	if err != nil {
		return nil, fmt.Errorf("invalid selector %q: %w", selector, err)
	}
	d.selectors[selector] = sel
	return sel, nil
}

// Select is QueryAll with the selector error surfaced.
func (d *Document) Select(selector string) ([]dom.Element, error) {
	return d.selectUnder(d.root, selector)
}

func (d *Document) selectUnder(root *html.Node, selector string) ([]dom.Element, error) {
	sel, err := d.compile(selector)
	if err != nil {
		return nil, err
	}
	nodes := cascadia.QueryAll(root, sel)
	out := make([]dom.Element, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, d.wrap(n))
	}
	return out, nil
}

// queryUnder matches like querySelectorAll: an invalid selector matches
// nothing, and the error is kept for Err.
func (d *Document) queryUnder(root *html.Node, selector string) []dom.Element {
	out, err := d.selectUnder(root, selector)
	if err != nil {
		d.err = err
		return nil
	}
	return out
}

// Err is the most recent selector error seen by Query or QueryAll.
func (d *Document) Err() error { return d.err }
