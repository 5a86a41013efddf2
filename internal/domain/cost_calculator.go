package domain

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/davidbz/terra/internal/observability"
)

const (
	// DaysPerMonth is the flat month length used for every monthly figure.
	DaysPerMonth = 30

	// Prices are quoted per 10^6 tokens.
	pricePerTokensExp = -6
)

//nolint:gochecknoglobals // Fixed policy constants expressed as decimals
var (
	// InputRatio is the share of every model's tokens billed at the input rate.
	InputRatio = decimal.RequireFromString("0.85")

	// OutputRatio is the share of every model's tokens billed at the output rate.
	OutputRatio = decimal.RequireFromString("0.15")

	daysPerMonth = decimal.NewFromInt(DaysPerMonth)
	percent      = decimal.NewFromInt(fullAllocation)
)

// StandardCostCalculator implements the Q&A plus report-generation cost model.
type StandardCostCalculator struct {
	catalog PricingCatalog
}

// NewStandardCostCalculator creates a new cost calculator.
func NewStandardCostCalculator(catalog PricingCatalog) *StandardCostCalculator {
	return &StandardCostCalculator{
		catalog: catalog,
	}
}

// Compute derives daily token pools from usage, splits each pool across selected
// models by weight and prices the 85/15 input/output split.
//
// Weights are not checked here: callers gate on ValidateAllocation first, and a
// mismatched allocation yields an under- or over-counted report.
func (c *StandardCostCalculator) Compute(
	ctx context.Context,
	selected []ModelID,
	weights AllocationWeights,
	usage UsageParameters,
) (*CostReport, error) {
	// Resolve every price up front so an unknown model produces no partial report.
	prices := make([]PriceEntry, len(selected))
	for i, model := range selected {
		price, err := c.catalog.Lookup(ctx, model)
		if err != nil {
			return nil, fmt.Errorf("failed to price model: %w", err)
		}
		prices[i] = price
	}

	volumes, err := usage.volumes()
	if err != nil {
		return nil, err
	}

	qnaBreakdown := breakdown(volumes.qna, selected, prices, weights)
	reportBreakdown := breakdown(volumes.report, selected, prices, weights)

	qnaTotal := sumDailyCost(qnaBreakdown)
	reportTotal := sumDailyCost(reportBreakdown)
	combinedDaily := qnaTotal.Add(reportTotal)

	models := make([]ModelID, len(selected))
	copy(models, selected)

	report := &CostReport{
		Models:              models,
		Usage:               usage,
		TotalQuestionsDaily: volumes.questions,
		QnATokensDaily:      volumes.qna,
		ReportTokensDaily:   volumes.report,
		TotalDailyTokens:    volumes.daily,
		MonthlyTokens:       volumes.monthly,
		QnABreakdown:        qnaBreakdown,
		ReportBreakdown:     reportBreakdown,
		QnATotalCost:        qnaTotal,
		ReportTotalCost:     reportTotal,
		CombinedDailyCost:   combinedDaily,
		CombinedMonthlyCost: combinedDaily.Mul(daysPerMonth),
		ModelTotals:         modelTotals(qnaBreakdown, reportBreakdown),
	}

	observability.FromContext(ctx).Debug("estimate computed",
		observability.Int("models", len(selected)),
		observability.Int64("daily_tokens", volumes.daily),
		observability.String("daily_cost", combinedDaily.String()),
	)

	return report, nil
}

// breakdown prices one token pool for every selected model, in selection order.
func breakdown(pool int64, selected []ModelID, prices []PriceEntry, weights AllocationWeights) []CostBreakdownEntry {
	poolTokens := decimal.NewFromInt(pool)
	entries := make([]CostBreakdownEntry, 0, len(selected))

	for i, model := range selected {
		weight := weights[model]
		share := poolTokens.Mul(decimal.NewFromInt(int64(weight))).Div(percent)
		inputTokens := share.Mul(InputRatio)
		outputTokens := share.Mul(OutputRatio)

		daily := inputTokens.Mul(prices[i].InputPerMillion).
			Add(outputTokens.Mul(prices[i].OutputPerMillion)).
			Shift(pricePerTokensExp)

		entries = append(entries, CostBreakdownEntry{
			Model:        model,
			Weight:       weight,
			Share:        share,
			InputTokens:  inputTokens,
			OutputTokens: outputTokens,
			DailyCost:    daily,
			MonthlyCost:  daily.Mul(daysPerMonth),
		})
	}

	return entries
}

// modelTotals pairs the two breakdowns, which share selection order.
func modelTotals(qna, report []CostBreakdownEntry) []ModelCostTotal {
	totals := make([]ModelCostTotal, 0, len(qna))
	for i := range qna {
		daily := qna[i].DailyCost.Add(report[i].DailyCost)
		totals = append(totals, ModelCostTotal{
			Model:               qna[i].Model,
			Weight:              qna[i].Weight,
			QnADailyCost:        qna[i].DailyCost,
			ReportDailyCost:     report[i].DailyCost,
			CombinedDailyCost:   daily,
			CombinedMonthlyCost: daily.Mul(daysPerMonth),
		})
	}
	return totals
}

func sumDailyCost(entries []CostBreakdownEntry) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		total = total.Add(e.DailyCost)
	}
	return total
}
