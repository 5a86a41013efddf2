package domain_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/davidbz/terra/internal/domain"
)

func fixedClock() time.Time {
	return time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
}

func renderScenario(t *testing.T, selected []domain.ModelID, weights domain.AllocationWeights) string {
	t.Helper()
	report, err := newCalculator(t).Compute(context.Background(), selected, weights, defaultUsage())
	require.NoError(t, err)
	return domain.NewReportRendererWithClock(fixedClock).Render(report)
}

func requireInOrder(t *testing.T, text string, parts ...string) {
	t.Helper()
	last := -1
	for _, part := range parts {
		idx := strings.Index(text[last+1:], part)
		require.GreaterOrEqual(t, idx, 0, "missing %q after offset %d", part, last)
		last += idx + 1
	}
}

func TestReportRenderer_DefaultScenario(t *testing.T) {
	text := renderScenario(t, []domain.ModelID{llama, qwen}, domain.AllocationWeights{llama: 70, qwen: 30})

	require.True(t, strings.HasPrefix(text, "Terra Price Estimator Report\nGenerated on: 2025-03-14 09:30:00 UTC\n"))
	require.Contains(t, text, "  • Llama 3.3 70B Versatile 128k (70%): $0.26/day → $7.81/month\n")
	require.Contains(t, text, "  • Qwen3 32B 131k (30%): $0.06/day → $1.81/month\n")
	require.Contains(t, text, "    - Input tokens: 357,000\n")
	require.Contains(t, text, "    - Output tokens: 63,000\n")

	require.Contains(t, text, "Combined Daily Tokens: 1,200,000\n")
	require.Contains(t, text, "Combined Monthly Tokens: 36,000,000\n")
	require.Contains(t, text, "Q&A Daily Cost: $0.32\n")
	require.Contains(t, text, "Report Daily Cost: $0.32\n")
	require.Contains(t, text, "Total Daily Cost: $0.64\n")
	require.Contains(t, text, "Total Monthly Cost: $19.24\n")

	require.Contains(t, text, "Models Selected: 2\n")
	require.Contains(t, text, "Tokens per Question: 10,000\n")
	require.Contains(t, text, "Total Questions per Day: 60\n")
}

func TestReportRenderer_CombinedPerModel(t *testing.T) {
	text := renderScenario(t, []domain.ModelID{llama, qwen}, domain.AllocationWeights{llama: 70, qwen: 30})

	requireInOrder(t, text,
		"Combined Cost per Model:",
		"  • Llama 3.3 70B Versatile 128k (70%)\n",
		"    - Q&A Daily: $0.26\n",
		"    - Reports Daily: $0.26\n",
		"    - Combined Daily: $0.52, Monthly: $15.62\n",
		"  • Qwen3 32B 131k (30%)\n",
		"    - Combined Daily: $0.12, Monthly: $3.62\n",
		"SUMMARY",
	)
}

func TestReportRenderer_SectionOrder(t *testing.T) {
	tests := []struct {
		name     string
		selected []domain.ModelID
		weights  domain.AllocationWeights
	}{
		{"single model", []domain.ModelID{scout}, domain.AllocationWeights{scout: 100}},
		{"two models", []domain.ModelID{llama, qwen}, domain.AllocationWeights{llama: 70, qwen: 30}},
		{"three models", []domain.ModelID{qwen, scout, llama}, domain.EqualSplit([]domain.ModelID{qwen, scout, llama})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text := renderScenario(t, tt.selected, tt.weights)

			requireInOrder(t, text,
				"Terra Price Estimator Report",
				"Generated on:",
				"SELECTED MODELS AND COST BREAKDOWN",
				"Q&A Cost Breakdown:",
				"Report Generation Cost Breakdown:",
				"Combined Cost per Model:",
				"SUMMARY",
				"USAGE PARAMETERS",
			)

			// Breakdown lines follow selection order in both sections.
			order := []string{"Q&A Cost Breakdown:"}
			for _, model := range tt.selected {
				order = append(order, "  • "+string(model)+" (")
			}
			order = append(order, "Report Generation Cost Breakdown:")
			for _, model := range tt.selected {
				order = append(order, "  • "+string(model)+" (")
			}
			requireInOrder(t, text, order...)
		})
	}
}

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		amount   string
		expected string
	}{
		{"0", "$0.00"},
		{"0.2604", "$0.26"},
		{"7.812", "$7.81"},
		{"0.005", "$0.01"},
		{"1234.5", "$1234.50"},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			require.Equal(t, tt.expected, domain.FormatCurrency(decimal.RequireFromString(tt.amount)))
		})
	}
}
