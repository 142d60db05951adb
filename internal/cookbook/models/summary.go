package models

// IngredientQuantity is one flattened base-ingredient total.
type IngredientQuantity struct {
	Name     string
	Quantity int64
}

// Summary is the resolved view of a recipe. Ingredients are ordered by first
// encounter during expansion.
type Summary struct {
	Name        string
	CookTime    int64
	Ingredients []IngredientQuantity
}

// Quantity returns the total for ingredient name, or 0.
func (s *Summary) Quantity(name string) int64 {
	for _, iq := range s.Ingredients {
		if iq.Name == name {
			return iq.Quantity
		}
	}
	return 0
}

// Counts reports the number of stored entries per kind.
type Counts struct {
	Ingredients int `json:"ingredients"`
	Recipes     int `json:"recipes"`
}
