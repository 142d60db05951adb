package models

import (
	"fmt"
	"strings"

	pstrings "cookbook/pkg/platform/strings"
)

// Kind tags the two entry variants.
type Kind string

const (
	KindIngredient Kind = "ingredient"
	KindRecipe     Kind = "recipe"
)

// ParseKind validates a wire-level type tag.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindIngredient, KindRecipe:
		return Kind(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidVariant, s)
	}
}

// RequiredItem is a reference from a recipe to another entry.
type RequiredItem struct {
	Name     string `json:"name" yaml:"name"`
	Quantity int64  `json:"quantity" yaml:"quantity"`
}

// Entry is a named cookbook item. Kind selects which payload is meaningful:
// CookTime for ingredients, RequiredItems for recipes.
//
// Invariants:
//   - Name is non-empty and never changes after insertion
//   - Ingredient CookTime is >= 0
//   - Recipe RequiredItems have unique names and non-negative quantities
//
// Required items may name entries that do not exist yet; references are
// checked when a recipe is resolved.
type Entry struct {
	Name          string
	Kind          Kind
	CookTime      int64
	RequiredItems []RequiredItem
}

// NewIngredient builds a validated ingredient entry.
func NewIngredient(name string, cookTime int64) (*Entry, error) {
	e := &Entry{Name: strings.TrimSpace(name), Kind: KindIngredient, CookTime: cookTime}
	if err := e.Validate(); err != nil {
		return nil, err
	}
	return e, nil
}

// NewRecipe builds a validated recipe entry. items is copied.
func NewRecipe(name string, items []RequiredItem) (*Entry, error) {
	e := &Entry{
		Name:          strings.TrimSpace(name),
		Kind:          KindRecipe,
		RequiredItems: append([]RequiredItem(nil), items...),
	}
	if err := e.Validate(); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *Entry) IsRecipe() bool {
	return e.Kind == KindRecipe
}

// Validate checks the per-entry structural invariants. It never consults
// other entries.
func (e *Entry) Validate() error {
	if e.Name == "" {
		return ErrInvalidName
	}

	switch e.Kind {
	case KindIngredient:
		if e.CookTime < 0 {
			return fmt.Errorf("%w: %d", ErrInvalidCookTime, e.CookTime)
		}
	case KindRecipe:
		names := make([]string, len(e.RequiredItems))
		for i, item := range e.RequiredItems {
			if item.Quantity < 0 {
				return fmt.Errorf("%w: %q has quantity %d", ErrInvalidQuantity, item.Name, item.Quantity)
			}
			names[i] = item.Name
		}
		if dup, found := pstrings.FirstDuplicate(names); found {
			return fmt.Errorf("%w: %q", ErrDuplicateRequiredItem, dup)
		}
	default:
		return fmt.Errorf("%w: %q", ErrInvalidVariant, e.Kind)
	}
	return nil
}

// Clone returns a deep copy so callers cannot mutate stored entries.
func (e *Entry) Clone() *Entry {
	c := *e
	if e.RequiredItems != nil {
		c.RequiredItems = append([]RequiredItem(nil), e.RequiredItems...)
	}
	return &c
}
