package handler

import (
	"cookbook/internal/cookbook/models"
)

// SummaryResponse is the HTTP response for GET /summary.
type SummaryResponse struct {
	Type        string               `json:"type"`
	Name        string               `json:"name"`
	CookTime    int64                `json:"cookTime"`
	Ingredients []IngredientResponse `json:"ingredients"`
}

// IngredientResponse is one flattened ingredient total.
type IngredientResponse struct {
	Name     string `json:"name"`
	Quantity int64  `json:"quantity"`
}

// ParseResponse is the HTTP response for POST /parse.
type ParseResponse struct {
	Msg string `json:"msg"`
}

// HealthResponse is the HTTP response for GET /healthz.
type HealthResponse struct {
	Status  string        `json:"status"`
	Entries models.Counts `json:"entries"`
}

// FromSummary converts a domain Summary to an HTTP response.
func FromSummary(s *models.Summary) *SummaryResponse {
	ingredients := make([]IngredientResponse, len(s.Ingredients))
	for i, iq := range s.Ingredients {
		ingredients[i] = IngredientResponse{Name: iq.Name, Quantity: iq.Quantity}
	}
	return &SummaryResponse{
		Type:        string(models.KindRecipe),
		Name:        s.Name,
		CookTime:    s.CookTime,
		Ingredients: ingredients,
	}
}
