package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ModelID identifies a priced model by its display name.
type ModelID string

// AllocationWeights maps a model to the integer percentage of a token pool it receives.
type AllocationWeights map[ModelID]int

// UsageParameters describes the daily workload being priced.
type UsageParameters struct {
	TokensPerQuestion      int64 `json:"tokens_per_question"`
	UserCount              int64 `json:"user_count"`
	QuestionsPerUserPerDay int64 `json:"questions_per_user_per_day"`
	QuestionsPerReport     int64 `json:"questions_per_report"`
	ReportsPerDay          int64 `json:"reports_per_day"`
}

// Validate checks that every usage parameter is at least 1 and that the
// monthly token volume fits in an int64.
func (u UsageParameters) Validate() error {
	fields := []struct {
		name  string
		value int64
	}{
		{"tokens_per_question", u.TokensPerQuestion},
		{"user_count", u.UserCount},
		{"questions_per_user_per_day", u.QuestionsPerUserPerDay},
		{"questions_per_report", u.QuestionsPerReport},
		{"reports_per_day", u.ReportsPerDay},
	}

	for _, f := range fields {
		if f.value < 1 {
			return fmt.Errorf("%w: %s must be at least 1, got %d", ErrInvalidUsage, f.name, f.value)
		}
	}

	_, err := u.volumes()
	return err
}

// UsageOverrides is usage as supplied by a caller. Nil fields were not
// supplied and take a default; explicit zeros are kept and fail Validate.
type UsageOverrides struct {
	TokensPerQuestion      *int64 `json:"tokens_per_question,omitempty"        yaml:"tokens_per_question"`
	UserCount              *int64 `json:"user_count,omitempty"                 yaml:"user_count"`
	QuestionsPerUserPerDay *int64 `json:"questions_per_user_per_day,omitempty" yaml:"questions_per_user_per_day"`
	QuestionsPerReport     *int64 `json:"questions_per_report,omitempty"       yaml:"questions_per_report"`
	ReportsPerDay          *int64 `json:"reports_per_day,omitempty"            yaml:"reports_per_day"`
}

// Resolve fills every unsupplied field from defaults.
func (o UsageOverrides) Resolve(defaults UsageParameters) UsageParameters {
	pick := func(v *int64, def int64) int64 {
		if v == nil {
			return def
		}
		return *v
	}

	return UsageParameters{
		TokensPerQuestion:      pick(o.TokensPerQuestion, defaults.TokensPerQuestion),
		UserCount:              pick(o.UserCount, defaults.UserCount),
		QuestionsPerUserPerDay: pick(o.QuestionsPerUserPerDay, defaults.QuestionsPerUserPerDay),
		QuestionsPerReport:     pick(o.QuestionsPerReport, defaults.QuestionsPerReport),
		ReportsPerDay:          pick(o.ReportsPerDay, defaults.ReportsPerDay),
	}
}

// CostBreakdownEntry is the cost and token attribution for one model within one workload.
type CostBreakdownEntry struct {
	Model        ModelID         `json:"model"`
	Weight       int             `json:"weight"`
	Share        decimal.Decimal `json:"share"`
	InputTokens  decimal.Decimal `json:"input_tokens"`
	OutputTokens decimal.Decimal `json:"output_tokens"`
	DailyCost    decimal.Decimal `json:"daily_cost"`
	MonthlyCost  decimal.Decimal `json:"monthly_cost"`
}

// CostReport aggregates both workload breakdowns and their derived totals.
type CostReport struct {
	Models []ModelID       `json:"models"`
	Usage  UsageParameters `json:"usage"`

	TotalQuestionsDaily int64 `json:"total_questions_daily"`
	QnATokensDaily      int64 `json:"qna_tokens_daily"`
	ReportTokensDaily   int64 `json:"report_tokens_daily"`
	TotalDailyTokens    int64 `json:"total_daily_tokens"`
	MonthlyTokens       int64 `json:"monthly_tokens"`

	QnABreakdown    []CostBreakdownEntry `json:"qna_breakdown"`
	ReportBreakdown []CostBreakdownEntry `json:"report_breakdown"`

	QnATotalCost        decimal.Decimal `json:"qna_total_cost"`
	ReportTotalCost     decimal.Decimal `json:"report_total_cost"`
	CombinedDailyCost   decimal.Decimal `json:"combined_daily_cost"`
	CombinedMonthlyCost decimal.Decimal `json:"combined_monthly_cost"`

	ModelTotals []ModelCostTotal `json:"model_totals"`
}

// ModelCostTotal is one model's cost across both workloads.
type ModelCostTotal struct {
	Model               ModelID         `json:"model"`
	Weight              int             `json:"weight"`
	QnADailyCost        decimal.Decimal `json:"qna_daily_cost"`
	ReportDailyCost     decimal.Decimal `json:"report_daily_cost"`
	CombinedDailyCost   decimal.Decimal `json:"combined_daily_cost"`
	CombinedMonthlyCost decimal.Decimal `json:"combined_monthly_cost"`
}

// EstimateRequest is the full input tuple of one estimate.
type EstimateRequest struct {
	Models  []ModelID         `json:"models"`
	Weights AllocationWeights `json:"weights"`
	Usage   UsageParameters   `json:"usage"`
}

// Estimate is the outcome of an estimate request. Report is nil while the
// allocation is invalid.
type Estimate struct {
	Validation ValidationResult `json:"validation"`
	Report     *CostReport      `json:"report"`
	Cached     bool             `json:"cached"`
}

// TokenSample is a measured prompt/completion token count for one question.
type TokenSample struct {
	Model            ModelID `json:"model"`
	PromptTokens     int64   `json:"prompt_tokens"`
	CompletionTokens int64   `json:"completion_tokens"`
	TotalTokens      int64   `json:"total_tokens"`
}
