package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

const (
	// ReportFileName is the default name of an exported report.
	ReportFileName = "terra_price_estimate.txt"

	// ReportContentType is the MIME type of an exported report.
	ReportContentType = "text/plain"

	reportTitle      = "Terra Price Estimator Report"
	reportTimeLayout = "2006-01-02 15:04:05 MST"
	currencyPlaces   = 2
)

//nolint:gochecknoglobals // Section rule reused by every heading
var sectionRule = strings.Repeat("=", 40)

// ReportRenderer formats a CostReport as a plain-text document.
type ReportRenderer struct {
	now func() time.Time
}

// NewReportRenderer creates a renderer stamped with the wall clock.
func NewReportRenderer() *ReportRenderer {
	return NewReportRendererWithClock(time.Now)
}

// NewReportRendererWithClock creates a renderer stamped with now.
func NewReportRendererWithClock(now func() time.Time) *ReportRenderer {
	return &ReportRenderer{now: now}
}

// Render produces the report text. Breakdown lines keep selection order.
func (r *ReportRenderer) Render(report *CostReport) string {
	var b strings.Builder

	b.WriteString(reportTitle + "\n")
	fmt.Fprintf(&b, "Generated on: %s\n\n", r.now().Format(reportTimeLayout))

	writeHeading(&b, "SELECTED MODELS AND COST BREAKDOWN")
	b.WriteString("\n")

	b.WriteString("Q&A Cost Breakdown:\n")
	writeBreakdown(&b, report.QnABreakdown)

	b.WriteString("\nReport Generation Cost Breakdown:\n")
	writeBreakdown(&b, report.ReportBreakdown)

	b.WriteString("\nCombined Cost per Model:\n")
	for _, t := range report.ModelTotals {
		fmt.Fprintf(&b, "  • %s (%d%%)\n", t.Model, t.Weight)
		fmt.Fprintf(&b, "    - Q&A Daily: %s\n", FormatCurrency(t.QnADailyCost))
		fmt.Fprintf(&b, "    - Reports Daily: %s\n", FormatCurrency(t.ReportDailyCost))
		fmt.Fprintf(&b, "    - Combined Daily: %s, Monthly: %s\n",
			FormatCurrency(t.CombinedDailyCost), FormatCurrency(t.CombinedMonthlyCost))
	}

	b.WriteString("\n")
	writeHeading(&b, "SUMMARY")
	fmt.Fprintf(&b, "Total Q&A Tokens per Day: %s\n", formatCount(report.QnATokensDaily))
	fmt.Fprintf(&b, "Total Report Tokens per Day: %s\n", formatCount(report.ReportTokensDaily))
	fmt.Fprintf(&b, "Combined Daily Tokens: %s\n", formatCount(report.TotalDailyTokens))
	fmt.Fprintf(&b, "Combined Monthly Tokens: %s\n\n", formatCount(report.MonthlyTokens))
	fmt.Fprintf(&b, "Q&A Daily Cost: %s\n", FormatCurrency(report.QnATotalCost))
	fmt.Fprintf(&b, "Report Daily Cost: %s\n", FormatCurrency(report.ReportTotalCost))
	fmt.Fprintf(&b, "Total Daily Cost: %s\n", FormatCurrency(report.CombinedDailyCost))
	fmt.Fprintf(&b, "Total Monthly Cost: %s\n", FormatCurrency(report.CombinedMonthlyCost))

	b.WriteString("\n")
	writeHeading(&b, "USAGE PARAMETERS")
	fmt.Fprintf(&b, "Models Selected: %d\n", len(report.Models))
	fmt.Fprintf(&b, "Tokens per Question: %s\n", formatCount(report.Usage.TokensPerQuestion))
	fmt.Fprintf(&b, "Number of Users: %s\n", formatCount(report.Usage.UserCount))
	fmt.Fprintf(&b, "Questions per User per Day: %s\n", formatCount(report.Usage.QuestionsPerUserPerDay))
	fmt.Fprintf(&b, "Questions per Report: %s\n", formatCount(report.Usage.QuestionsPerReport))
	fmt.Fprintf(&b, "Reports per Day: %s\n", formatCount(report.Usage.ReportsPerDay))
	fmt.Fprintf(&b, "Total Questions per Day: %s\n", formatCount(report.TotalQuestionsDaily))
	fmt.Fprintf(&b, "Q&A Tokens: %s\n", formatCount(report.QnATokensDaily))
	fmt.Fprintf(&b, "Report Tokens: %s\n", formatCount(report.ReportTokensDaily))
	fmt.Fprintf(&b, "Total Daily Tokens: %s\n", formatCount(report.TotalDailyTokens))

	return b.String()
}

func writeHeading(b *strings.Builder, title string) {
	b.WriteString(sectionRule + "\n")
	b.WriteString(title + "\n")
	b.WriteString(sectionRule + "\n")
}

func writeBreakdown(b *strings.Builder, entries []CostBreakdownEntry) {
	for _, e := range entries {
		fmt.Fprintf(b, "  • %s (%d%%): %s/day → %s/month\n",
			e.Model, e.Weight, FormatCurrency(e.DailyCost), FormatCurrency(e.MonthlyCost))
		fmt.Fprintf(b, "    - Input tokens: %s\n", formatTokens(e.InputTokens))
		fmt.Fprintf(b, "    - Output tokens: %s\n", formatTokens(e.OutputTokens))
	}
}

// FormatCurrency renders an amount as dollars with two decimal places.
func FormatCurrency(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(currencyPlaces)
}

func formatCount(n int64) string {
	return humanize.Comma(n)
}

func formatTokens(tokens decimal.Decimal) string {
	return humanize.Comma(tokens.Round(0).IntPart())
}
