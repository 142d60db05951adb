// Package resolver flattens a recipe's nested required items into base
// ingredient totals and a cumulative cook time.
package resolver

import (
	"fmt"
	"math"
	"strings"

	"cookbook/internal/cookbook/models"
)

// DefaultMaxExpansion bounds the number of required-item visits a single
// resolution may perform.
const DefaultMaxExpansion = 100_000

// Catalog is the read side the resolver walks. Implementations must give a
// consistent view for the duration of one Resolve call.
type Catalog interface {
	Lookup(name string) (*models.Entry, bool)
}

// Resolver expands recipes. It holds no per-call state and is safe for
// concurrent use.
type Resolver struct {
	maxExpansion int
}

type Option func(*Resolver)

// WithMaxExpansion overrides DefaultMaxExpansion. Values <= 0 disable the limit.
func WithMaxExpansion(n int) Option {
	return func(r *Resolver) {
		r.maxExpansion = n
	}
}

func New(opts ...Option) *Resolver {
	r := &Resolver{maxExpansion: DefaultMaxExpansion}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve expands the recipe called name. Any failure aborts the whole
// resolution; a partial summary is never returned.
func (r *Resolver) Resolve(catalog Catalog, name string) (*models.Summary, error) {
	root, ok := catalog.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", models.ErrNotFound, name)
	}
	if !root.IsRecipe() {
		return nil, fmt.Errorf("%w: %q", models.ErrNotARecipe, name)
	}

	x := &expansion{
		catalog: catalog,
		limit:   r.maxExpansion,
		totals:  make(map[string]int64),
		onPath:  map[string]struct{}{root.Name: {}},
		path:    []string{root.Name},
	}
	if err := x.expand(root.RequiredItems, 1); err != nil {
		return nil, err
	}

	summary := &models.Summary{
		Name:        root.Name,
		CookTime:    x.cookTime,
		Ingredients: make([]models.IngredientQuantity, 0, len(x.order)),
	}
	for _, n := range x.order {
		summary.Ingredients = append(summary.Ingredients, models.IngredientQuantity{Name: n, Quantity: x.totals[n]})
	}
	return summary, nil
}

// expansion is the accumulator for one Resolve call.
type expansion struct {
	catalog Catalog
	limit   int
	visited int

	cookTime int64
	totals   map[string]int64
	order    []string

	// recipes on the current root-to-node path
	onPath map[string]struct{}
	path   []string
}

func (x *expansion) expand(items []models.RequiredItem, multiplier int64) error {
	for _, item := range items {
		x.visited++
		if x.limit > 0 && x.visited > x.limit {
			return fmt.Errorf("%w: more than %d items under %q", models.ErrExpansionLimit, x.limit, x.path[0])
		}

		entry, ok := x.catalog.Lookup(item.Name)
		if !ok {
			return fmt.Errorf("%w: %q required by %q", models.ErrIngredientNotFound, item.Name, x.path[len(x.path)-1])
		}

		quantity, ok := mul(item.Quantity, multiplier)
		if !ok {
			return x.overflow(item.Name)
		}

		switch entry.Kind {
		case models.KindRecipe:
			if _, cyclic := x.onPath[entry.Name]; cyclic {
				return fmt.Errorf("%w: %s -> %s", models.ErrCyclicReference, strings.Join(x.path, " -> "), entry.Name)
			}
			x.onPath[entry.Name] = struct{}{}
			x.path = append(x.path, entry.Name)
			if err := x.expand(entry.RequiredItems, quantity); err != nil {
				return err
			}
			x.path = x.path[:len(x.path)-1]
			delete(x.onPath, entry.Name)

		case models.KindIngredient:
			cook, ok := mul(entry.CookTime, quantity)
			if !ok {
				return x.overflow(item.Name)
			}
			if x.cookTime, ok = add(x.cookTime, cook); !ok {
				return x.overflow(item.Name)
			}
			total, seen := x.totals[entry.Name]
			if !seen {
				x.order = append(x.order, entry.Name)
			}
			if x.totals[entry.Name], ok = add(total, quantity); !ok {
				return x.overflow(item.Name)
			}
		}
	}
	return nil
}

func (x *expansion) overflow(item string) error {
	return fmt.Errorf("%w: at %q under %q", models.ErrQuantityOverflow, item, x.path[0])
}

// mul and add operate on non-negative operands only.
func mul(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if a > math.MaxInt64/b {
		return 0, false
	}
	return a * b, true
}

func add(a, b int64) (int64, bool) {
	if a > math.MaxInt64-b {
		return 0, false
	}
	return a + b, true
}
