package domain

import (
	"context"
	"errors"
	"fmt"
)

// StaticPricingCatalog is an immutable, ordered pricing table built once at startup.
type StaticPricingCatalog struct {
	entries []CatalogEntry
	index   map[ModelID]PriceEntry
}

// NewStaticPricingCatalog creates a catalog from entries, keeping their order.
func NewStaticPricingCatalog(entries []CatalogEntry) (*StaticPricingCatalog, error) {
	c := &StaticPricingCatalog{
		entries: make([]CatalogEntry, 0, len(entries)),
		index:   make(map[ModelID]PriceEntry, len(entries)),
	}

	for _, entry := range entries {
		if entry.Model == "" {
			return nil, errors.New("model cannot be empty")
		}
		if entry.Price.InputPerMillion.IsNegative() || entry.Price.OutputPerMillion.IsNegative() {
			return nil, fmt.Errorf("price for model %s cannot be negative", entry.Model)
		}
		if _, exists := c.index[entry.Model]; exists {
			return nil, fmt.Errorf("model %s listed twice", entry.Model)
		}

		c.entries = append(c.entries, entry)
		c.index[entry.Model] = entry.Price
	}

	return c, nil
}

// Lookup retrieves pricing for a model.
func (c *StaticPricingCatalog) Lookup(_ context.Context, model ModelID) (PriceEntry, error) {
	price, exists := c.index[model]
	if !exists {
		return PriceEntry{}, fmt.Errorf("%w: %s", ErrUnknownModel, model)
	}

	return price, nil
}

// Entries returns a copy of the catalog in display order.
func (c *StaticPricingCatalog) Entries(_ context.Context) []CatalogEntry {
	out := make([]CatalogEntry, len(c.entries))
	copy(out, c.entries)
	return out
}
