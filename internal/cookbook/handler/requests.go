package handler

import (
	"strings"

	"cookbook/internal/cookbook/models"
	dErrors "cookbook/pkg/domain-errors"
)

const (
	maxNameLength    = 256
	maxRequiredItems = 1000
	maxParseInput    = 1024
)

// EntryRequest is the HTTP request body for POST /entry.
type EntryRequest struct {
	Type          string                `json:"type"`
	Name          string                `json:"name"`
	CookTime      *int64                `json:"cookTime,omitempty"`
	RequiredItems []RequiredItemRequest `json:"requiredItems,omitempty"`
}

// RequiredItemRequest is one element of requiredItems.
type RequiredItemRequest struct {
	Name     string `json:"name"`
	Quantity int64  `json:"quantity"`
}

// Validate enforces size limits. Domain rules (kind, cook time, duplicate
// items) are checked by the service.
// Implements the Validatable interface for httputil.DecodeAndPrepare.
func (r *EntryRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}

	// Size validation (fail fast)
	if len(r.Name) > maxNameLength {
		return dErrors.New(dErrors.CodeValidation, "name must be at most 256 characters")
	}
	if len(r.RequiredItems) > maxRequiredItems {
		return dErrors.New(dErrors.CodeValidation, "requiredItems must have at most 1000 elements")
	}
	for _, item := range r.RequiredItems {
		if len(item.Name) > maxNameLength {
			return dErrors.New(dErrors.CodeValidation, "requiredItems name must be at most 256 characters")
		}
	}

	r.Type = strings.TrimSpace(r.Type)
	r.Name = strings.TrimSpace(r.Name)
	return nil
}

// ToModel converts the request into the service input.
func (r *EntryRequest) ToModel() *models.CreateEntryRequest {
	items := make([]models.RequiredItem, len(r.RequiredItems))
	for i, item := range r.RequiredItems {
		items[i] = models.RequiredItem{Name: item.Name, Quantity: item.Quantity}
	}
	return &models.CreateEntryRequest{
		Type:          r.Type,
		Name:          r.Name,
		CookTime:      r.CookTime,
		RequiredItems: items,
	}
}

// ParseRequest is the HTTP request body for POST /parse.
type ParseRequest struct {
	Input string `json:"input"`
}

func (r *ParseRequest) Validate() error {
	if len(r.Input) > maxParseInput {
		return dErrors.New(dErrors.CodeValidation, "input must be at most 1024 characters")
	}
	return nil
}
