package models

import "strings"

// CreateEntryRequest is the transport-neutral input of CreateEntry. Type is
// kept raw so an unknown tag surfaces as ErrInvalidVariant.
type CreateEntryRequest struct {
	Type          string         `yaml:"type"`
	Name          string         `yaml:"name"`
	CookTime      *int64         `yaml:"cookTime"`
	RequiredItems []RequiredItem `yaml:"requiredItems"`
}

// Normalize trims the entry and item names in place.
func (r *CreateEntryRequest) Normalize() {
	r.Type = strings.TrimSpace(r.Type)
	r.Name = strings.TrimSpace(r.Name)
	for i := range r.RequiredItems {
		r.RequiredItems[i].Name = strings.TrimSpace(r.RequiredItems[i].Name)
	}
}
