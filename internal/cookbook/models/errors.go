package models

import "errors"

// Error kinds surfaced by the registry and the resolver. Callers match them
// with errors.Is; the service layer attaches transport codes.
var (
	ErrDuplicateName         = errors.New("entry name is not unique")
	ErrInvalidVariant        = errors.New("entry type must be either \"recipe\" or \"ingredient\"")
	ErrInvalidName           = errors.New("entry name is required")
	ErrInvalidCookTime       = errors.New("cookTime must be greater or equal to 0")
	ErrInvalidQuantity       = errors.New("quantity must be greater or equal to 0")
	ErrDuplicateRequiredItem = errors.New("requiredItems can only have one element per name")

	ErrNotFound           = errors.New("recipe not found")
	ErrNotARecipe         = errors.New("name is not a recipe name")
	ErrIngredientNotFound = errors.New("ingredient not in cookbook")
	ErrCyclicReference    = errors.New("recipe requires itself")
	ErrExpansionLimit     = errors.New("recipe expansion exceeds limit")
	ErrQuantityOverflow   = errors.New("recipe totals overflow")
)

// ErrInvalidDisplayName is returned when name normalization leaves nothing.
var ErrInvalidDisplayName = errors.New("invalid recipe name")
