package projects

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Zachkp/portfolio/internal/animation"
	"github.com/Zachkp/portfolio/internal/catalog"
	"github.com/Zachkp/portfolio/internal/dom"
)

const (
	GridID         = "projects-grid"
	FilterSelector = ".filter-btn"
	CardSelector   = ".project-card"
	activeClass    = "active"
)

// Entrance is the staggered tween played over freshly rendered cards.
var Entrance = animation.Tween{
	Duration: 600 * time.Millisecond,
	From:     animation.Props{"opacity": 0, "y": 30, "scale": 0.95},
	Ease:     "power3.out",
	Stagger:  100 * time.Millisecond,
}

// Animator plays entrance animations. *animation.Bridge satisfies it.
type Animator interface {
	Stagger(selector string, tw animation.Tween)
}

// Controller owns the project grid and the active filter category.
type Controller struct {
	catalog *catalog.Catalog
	grid    dom.Element
	buttons []dom.Element
	anim    Animator
	logger  *slog.Logger
	active  catalog.Category
}

// NewController binds to the grid and the filter buttons in doc. It fails
// with dom.ErrNotFound when the grid is missing; missing buttons only
// disable filtering.
func NewController(doc dom.Document, c *catalog.Catalog, anim Animator, logger *slog.Logger) (*Controller, error) {
	grid, err := dom.Lookup(doc, GridID)
	if err != nil {
		return nil, fmt.Errorf("project grid #%s: %w", GridID, err)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{
		catalog: c,
		grid:    grid,
		buttons: doc.QueryAll(FilterSelector),
		anim:    anim,
		logger:  logger,
		active:  catalog.All,
	}, nil
}

// Bind wires each filter button to RenderProjects with its data-filter.
func (c *Controller) Bind() {
	for _, btn := range c.buttons {
		category := catalog.Category(strings.TrimSpace(btn.Attr("data-filter")))
		btn.On("click", func(dom.Event) {
			if err := c.RenderProjects(category); err != nil {
				c.logger.Error("render projects", "category", category, "error", err)
			}
		})
	}
}

// Active is the category last rendered.
func (c *Controller) Active() catalog.Category { return c.active }

// RenderProjects replaces the grid with cards for category, in catalog
// order, and moves the active marker to the matching filter button. Every
// call is a full rebuild.
func (c *Controller) RenderProjects(category catalog.Category) error {
	subset := c.catalog.Filter(category)

	c.grid.Clear()
	for _, p := range subset {
		card, err := CardHTML(p)
		if err != nil {
			return err
		}
		if err := c.grid.AppendHTML(card); err != nil {
			return fmt.Errorf("append card %d: %w", p.ID, err)
		}
	}
	c.active = category
	c.markActive(category)

	c.logger.Debug("rendered projects", "category", category, "count", len(subset))

	if c.anim != nil && len(subset) > 0 {
		c.anim.Stagger(CardSelector, Entrance)
	}
	return nil
}

func (c *Controller) markActive(category catalog.Category) {
	for _, btn := range c.buttons {
		if catalog.Category(strings.TrimSpace(btn.Attr("data-filter"))) == category {
			btn.AddClass(activeClass)
		} else {
			btn.RemoveClass(activeClass)
		}
	}
}

// Rendered returns the project ids currently in the grid, in order.
func (c *Controller) Rendered() []string {
	cards := c.grid.QueryAll(CardSelector)
	out := make([]string, 0, len(cards))
	for _, card := range cards {
		out = append(out, card.Attr("data-project-id"))
	}
	return out
}
