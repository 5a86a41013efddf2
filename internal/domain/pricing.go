package domain

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
)

// PriceEntry contains model pricing information.
type PriceEntry struct {
	InputPerMillion  decimal.Decimal `json:"input_per_million"`  // USD per 1M input tokens
	OutputPerMillion decimal.Decimal `json:"output_per_million"` // USD per 1M output tokens
}

// NewPriceEntry builds a PriceEntry from per-million dollar rates.
func NewPriceEntry(inputPerMillion, outputPerMillion float64) PriceEntry {
	return PriceEntry{
		InputPerMillion:  decimal.NewFromFloat(inputPerMillion),
		OutputPerMillion: decimal.NewFromFloat(outputPerMillion),
	}
}

// CatalogEntry pairs a model with its price.
type CatalogEntry struct {
	Model ModelID    `json:"model"`
	Price PriceEntry `json:"price"`
}

// Label renders the entry the way model pickers display it.
func (e CatalogEntry) Label() string {
	return fmt.Sprintf("%s ($%s in / $%s out)", e.Model, e.Price.InputPerMillion, e.Price.OutputPerMillion)
}

// PricingCatalog maintains pricing information for models.
type PricingCatalog interface {
	// Lookup returns the price of a model, or ErrUnknownModel.
	Lookup(ctx context.Context, model ModelID) (PriceEntry, error)

	// Entries returns every catalog entry in display order.
	Entries(ctx context.Context) []CatalogEntry
}

// CostCalculator turns an allocation and usage into a cost report.
type CostCalculator interface {
	// Compute derives token volumes and per-model costs for both workloads.
	Compute(
		ctx context.Context,
		selected []ModelID,
		weights AllocationWeights,
		usage UsageParameters,
	) (*CostReport, error)
}
