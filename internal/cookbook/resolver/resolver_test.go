package resolver

import (
	"math"
	"testing"

	"github.com/stretchr/testify/suite"

	"cookbook/internal/cookbook/models"
)

type catalog map[string]*models.Entry

func (c catalog) Lookup(name string) (*models.Entry, bool) {
	e, ok := c[name]
	return e, ok
}

func (c catalog) ingredient(name string, cookTime int64) catalog {
	c[name] = &models.Entry{Name: name, Kind: models.KindIngredient, CookTime: cookTime}
	return c
}

func (c catalog) recipe(name string, items ...models.RequiredItem) catalog {
	c[name] = &models.Entry{Name: name, Kind: models.KindRecipe, RequiredItems: items}
	return c
}

func item(name string, quantity int64) models.RequiredItem {
	return models.RequiredItem{Name: name, Quantity: quantity}
}

type ResolverSuite struct {
	suite.Suite
	resolver *Resolver
}

func (s *ResolverSuite) SetupTest() {
	s.resolver = New()
}

func TestResolverSuite(t *testing.T) {
	suite.Run(t, new(ResolverSuite))
}

// TestMultiplicativeExpansion verifies quantities multiply down the tree.
func (s *ResolverSuite) TestMultiplicativeExpansion() {
	c := catalog{}.
		ingredient("egg", 5).
		recipe("omelette", item("egg", 2)).
		recipe("brunch", item("omelette", 3))

	summary, err := s.resolver.Resolve(c, "brunch")
	s.Require().NoError(err)
	s.Equal("brunch", summary.Name)
	s.Equal(int64(30), summary.CookTime)
	s.Equal([]models.IngredientQuantity{{Name: "egg", Quantity: 6}}, summary.Ingredients)
}

// TestSharedBaseIngredientIsSummed verifies two branches reaching the same
// ingredient fold into one total.
func (s *ResolverSuite) TestSharedBaseIngredientIsSummed() {
	c := catalog{}.
		ingredient("bread", 2).
		ingredient("ham", 1).
		recipe("sandwich", item("bread", 2), item("ham", 1)).
		recipe("toast", item("bread", 1)).
		recipe("lunch", item("sandwich", 1), item("toast", 3))

	summary, err := s.resolver.Resolve(c, "lunch")
	s.Require().NoError(err)
	s.Equal([]models.IngredientQuantity{
		{Name: "bread", Quantity: 5},
		{Name: "ham", Quantity: 1},
	}, summary.Ingredients)
	s.Equal(int64(2*2+1*1+2*3), summary.CookTime)
}

func (s *ResolverSuite) TestFirstEncounterOrder() {
	c := catalog{}.
		ingredient("a", 1).
		ingredient("b", 1).
		ingredient("c", 1).
		recipe("inner", item("c", 1), item("a", 1)).
		recipe("outer", item("b", 1), item("inner", 1), item("a", 1))

	summary, err := s.resolver.Resolve(c, "outer")
	s.Require().NoError(err)
	s.Equal([]models.IngredientQuantity{
		{Name: "b", Quantity: 1},
		{Name: "c", Quantity: 1},
		{Name: "a", Quantity: 2},
	}, summary.Ingredients)
}

func (s *ResolverSuite) TestEdgeQuantities() {
	s.Run("zero quantity keeps the ingredient with a zero total", func() {
		c := catalog{}.ingredient("salt", 3).recipe("bland", item("salt", 0))

		summary, err := s.resolver.Resolve(c, "bland")
		s.Require().NoError(err)
		s.Equal(int64(0), summary.CookTime)
		s.Equal([]models.IngredientQuantity{{Name: "salt", Quantity: 0}}, summary.Ingredients)
	})

	s.Run("recipe without items resolves empty", func() {
		c := catalog{}.recipe("air")

		summary, err := s.resolver.Resolve(c, "air")
		s.Require().NoError(err)
		s.Equal(int64(0), summary.CookTime)
		s.Empty(summary.Ingredients)
		s.NotNil(summary.Ingredients)
	})

	s.Run("overflow fails instead of wrapping", func() {
		c := catalog{}.
			ingredient("grain", 1).
			recipe("silo", item("grain", math.MaxInt64/2)).
			recipe("farm", item("silo", 3))

		_, err := s.resolver.Resolve(c, "farm")
		s.ErrorIs(err, models.ErrQuantityOverflow)
	})
}

func (s *ResolverSuite) TestLookupFailures() {
	c := catalog{}.ingredient("egg", 5)

	s.Run("unknown name", func() {
		_, err := s.resolver.Resolve(c, "cake")
		s.ErrorIs(err, models.ErrNotFound)
	})

	s.Run("ingredient is not a recipe", func() {
		_, err := s.resolver.Resolve(c, "egg")
		s.ErrorIs(err, models.ErrNotARecipe)
	})
}

// TestMissingReference verifies a dangling reference fails the whole call at
// any depth.
func (s *ResolverSuite) TestMissingReference() {
	c := catalog{}.
		ingredient("egg", 5).
		recipe("level3", item("egg", 1), item("truffle", 1)).
		recipe("level2", item("level3", 2)).
		recipe("level1", item("egg", 1), item("level2", 1))

	for _, name := range []string{"level1", "level2", "level3"} {
		summary, err := s.resolver.Resolve(c, name)
		s.ErrorIs(err, models.ErrIngredientNotFound, name)
		s.Nil(summary)
	}
}

func (s *ResolverSuite) TestCycles() {
	s.Run("self reference", func() {
		c := catalog{}.recipe("ouroboros", item("ouroboros", 1))

		_, err := s.resolver.Resolve(c, "ouroboros")
		s.ErrorIs(err, models.ErrCyclicReference)
	})

	s.Run("indirect reference", func() {
		c := catalog{}.
			ingredient("egg", 1).
			recipe("a", item("egg", 1), item("b", 1)).
			recipe("b", item("c", 1)).
			recipe("c", item("a", 1))

		_, err := s.resolver.Resolve(c, "a")
		s.ErrorIs(err, models.ErrCyclicReference)
		s.Contains(err.Error(), "a -> b -> c -> a")
	})

	s.Run("cycle below the queried recipe", func() {
		c := catalog{}.
			recipe("top", item("x", 1)).
			recipe("x", item("y", 1)).
			recipe("y", item("x", 1))

		_, err := s.resolver.Resolve(c, "top")
		s.ErrorIs(err, models.ErrCyclicReference)
	})

	s.Run("diamond is not a cycle", func() {
		c := catalog{}.
			ingredient("flour", 1).
			recipe("dough", item("flour", 2)).
			recipe("left", item("dough", 1)).
			recipe("right", item("dough", 1)).
			recipe("top", item("left", 1), item("right", 1))

		summary, err := s.resolver.Resolve(c, "top")
		s.Require().NoError(err)
		s.Equal(int64(4), summary.Quantity("flour"))
	})
}

func (s *ResolverSuite) TestExpansionLimit() {
	c := catalog{}.ingredient("leaf", 1)
	prev := "leaf"
	for _, name := range []string{"r1", "r2", "r3", "r4", "r5", "r6", "r7", "r8"} {
		c.recipe(name, item(prev, 1), item(prev+"'", 1))
		c.recipe(prev+"'", item(prev, 1))
		prev = name
	}

	limited := New(WithMaxExpansion(50))
	_, err := limited.Resolve(c, "r8")
	s.ErrorIs(err, models.ErrExpansionLimit)

	unlimited := New(WithMaxExpansion(0))
	summary, err := unlimited.Resolve(c, "r8")
	s.Require().NoError(err)
	s.Equal(int64(256), summary.Quantity("leaf"))
}
