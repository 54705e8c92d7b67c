package site

import (
	"fmt"
	"math"

	"github.com/Zachkp/portfolio/internal/catalog"
)

// Export is a page entry point published for inline handlers and embedding
// pages. Arguments arrive loosely typed: numbers as float64 or int, text as
// string.
type Export func(args ...any) error

// Exports maps global function names to entry points.
func (s *Site) Exports() map[string]Export {
	return map[string]Export{
		"changeTestimonial": func(args ...any) error {
			dir, err := intArg(args, 0)
			if err != nil {
				return err
			}
			s.ChangeTestimonial(dir)
			return nil
		},
		"goToTestimonial": func(args ...any) error {
			i, err := intArg(args, 0)
			if err != nil {
				return err
			}
			return s.GoToTestimonial(i)
		},
		"renderProjects": func(args ...any) error {
			category := catalog.All
			if len(args) > 0 && args[0] != nil {
				c, ok := args[0].(string)
				if !ok {
					return fmt.Errorf("category: want string, got %T", args[0])
				}
				category = catalog.Category(c)
			}
			return s.RenderProjects(category)
		},
		"initializeAnimations": func(...any) error {
			s.InitAnimations()
			return nil
		},
	}
}

func intArg(args []any, i int) (int, error) {
	if i >= len(args) {
		return 0, fmt.Errorf("missing argument %d", i)
	}
	switch v := args[i].(type) {
	case int:
		return v, nil
	case float64:
		if v != math.Trunc(v) {
			return 0, fmt.Errorf("argument %d: %v is not an integer", i, v)
		}
		return int(v), nil
	default:
		return 0, fmt.Errorf("argument %d: want number, got %T", i, v)
	}
}
