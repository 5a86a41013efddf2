package groq

import (
	"fmt"

	"github.com/davidbz/terra/internal/domain"
)

// priceTable lists Groq on-demand prices in USD per 1M tokens, in picker order.
//
//nolint:gochecknoglobals // Fixed price table
var priceTable = []struct {
	model  domain.ModelID
	input  float64
	output float64
}{
	{"Llama 4 Scout (17Bx16E)", 0.11, 0.34},
	{"Llama 4 Maverick (17Bx128E)", 0.20, 0.60},
	{"Llama Guard 4 12B 128k", 0.20, 0.20},
	{"DeepSeek R1 Distill Llama 70B", 0.75, 0.99},
	{"Qwen3 32B 131k", 0.29, 0.59},
	{"Qwen QwQ 32B (Preview)", 0.29, 0.39},
	{"Mistral Saba 24B", 0.79, 0.79},
	{"Llama 3.3 70B Versatile 128k", 0.59, 0.79},
	{"Llama 3.1 8B Instant 128k", 0.05, 0.08},
	{"Llama 3 70B 8k", 0.59, 0.79},
	{"Llama 3 8B 8k", 0.05, 0.08},
	{"Gemma 2 9B 8k", 0.20, 0.20},
	{"Llama Guard 3 8B 8k", 0.20, 0.20},
}

// CatalogEntries returns the Groq price table.
func CatalogEntries() []domain.CatalogEntry {
	entries := make([]domain.CatalogEntry, 0, len(priceTable))
	for _, row := range priceTable {
		entries = append(entries, domain.CatalogEntry{
			Model: row.model,
			Price: domain.NewPriceEntry(row.input, row.output),
		})
	}
	return entries
}

// NewCatalog builds the static pricing catalog from the Groq price table.
func NewCatalog() (*domain.StaticPricingCatalog, error) {
	catalog, err := domain.NewStaticPricingCatalog(CatalogEntries())
	if err != nil {
		return nil, fmt.Errorf("failed to build groq catalog: %w", err)
	}
	return catalog, nil
}

// DefaultModels returns the models selected before the user changes anything.
func DefaultModels() []domain.ModelID {
	return []domain.ModelID{
		"Llama 3.3 70B Versatile 128k",
		"Qwen3 32B 131k",
	}
}
