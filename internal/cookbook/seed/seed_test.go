package seed

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cookbook/internal/cookbook/models"
	"cookbook/internal/cookbook/service"
	"cookbook/internal/cookbook/store"
)

const breakfast = `
entries:
  - type: ingredient
    name: Egg
    cookTime: 5
  - type: recipe
    name: Omelette
    requiredItems:
      - name: Egg
        quantity: 3
      - name: Butter
        quantity: 1
  - type: ingredient
    name: Butter
    cookTime: 0
`

func newService() *service.Service {
	return service.New(store.NewInMemory(), nil,
		service.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
}

func TestLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("registers entries in order", func(t *testing.T) {
		svc := newService()
		n, err := Load(ctx, strings.NewReader(breakfast), svc)
		require.NoError(t, err)
		assert.Equal(t, 3, n)

		summary, err := svc.GetSummary(ctx, "Omelette")
		require.NoError(t, err)
		assert.Equal(t, int64(15), summary.CookTime)
		assert.Equal(t, []models.IngredientQuantity{
			{Name: "Egg", Quantity: 3},
			{Name: "Butter", Quantity: 1},
		}, summary.Ingredients)
	})

	t.Run("empty document", func(t *testing.T) {
		n, err := Load(ctx, strings.NewReader(""), newService())
		require.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("stops at first failure", func(t *testing.T) {
		doc := breakfast + `
  - type: recipe
    name: Egg
`
		svc := newService()
		n, err := Load(ctx, strings.NewReader(doc), svc)
		require.Error(t, err)
		assert.Equal(t, 3, n)
		assert.ErrorIs(t, err, models.ErrDuplicateName)
		assert.Contains(t, err.Error(), `seed entry 3 ("Egg")`)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := Load(ctx, strings.NewReader("entries: [\n"), newService())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "decode seed file")
	})
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(breakfast), 0o600))

	n, err := LoadFile(context.Background(), path, newService())
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	_, err = LoadFile(context.Background(), filepath.Join(t.TempDir(), "missing.yaml"), newService())
	assert.ErrorIs(t, err, os.ErrNotExist)
}
