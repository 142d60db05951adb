// Package seed loads a fixed set of cookbook entries at startup.
package seed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"cookbook/internal/cookbook/models"
)

// Creator is the subset of the cookbook service used for seeding.
type Creator interface {
	CreateEntry(ctx context.Context, req *models.CreateEntryRequest) error
}

type file struct {
	Entries []models.CreateEntryRequest `yaml:"entries"`
}

// LoadFile reads the YAML seed at path and registers its entries in file
// order. It returns the number of entries created.
func LoadFile(ctx context.Context, path string, svc Creator) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open seed file: %w", err)
	}
	defer f.Close()
	return Load(ctx, f, svc)
}

// Load registers every entry decoded from r. The first failure aborts with
// the entry's index and name; entries before it stay registered.
func Load(ctx context.Context, r io.Reader, svc Creator) (int, error) {
	var doc file
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return 0, nil
		}
		return 0, fmt.Errorf("decode seed file: %w", err)
	}

	for i := range doc.Entries {
		req := &doc.Entries[i]
		if err := ctx.Err(); err != nil {
			return i, err
		}
		if err := svc.CreateEntry(ctx, req); err != nil {
			return i, fmt.Errorf("seed entry %d (%q): %w", i, req.Name, err)
		}
	}
	return len(doc.Entries), nil
}
