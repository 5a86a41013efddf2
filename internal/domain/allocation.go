package domain

import (
	"context"
	"fmt"
)

const fullAllocation = 100

// InvalidReason explains why an allocation cannot be priced yet.
type InvalidReason string

const (
	// ReasonNoModelsSelected means the selection is empty.
	ReasonNoModelsSelected InvalidReason = "no_models_selected"

	// ReasonWeightMismatch means the selected weights do not total 100.
	ReasonWeightMismatch InvalidReason = "weight_mismatch"
)

// ValidationResult is the outcome of ValidateAllocation.
type ValidationResult struct {
	Valid       bool          `json:"valid"`
	Reason      InvalidReason `json:"reason,omitempty"`
	TotalWeight int           `json:"total_weight"`
}

// Err converts an invalid result into its sentinel error. Valid results return nil.
func (r ValidationResult) Err() error {
	if r.Valid {
		return nil
	}

	switch r.Reason {
	case ReasonNoModelsSelected:
		return ErrNoModelsSelected
	case ReasonWeightMismatch:
		return fmt.Errorf("%w: current total is %d%%", ErrWeightMismatch, r.TotalWeight)
	default:
		return fmt.Errorf("invalid allocation: %s", r.Reason)
	}
}

// Message is the user-facing explanation of a blocked estimate.
func (r ValidationResult) Message() string {
	switch {
	case r.Valid:
		return ""
	case r.Reason == ReasonNoModelsSelected:
		return "Select at least one model to see cost estimates."
	default:
		return fmt.Sprintf("Adjust token allocation to equal 100%% to see cost estimates. Current total: %d%%",
			r.TotalWeight)
	}
}

// ValidateAllocation reports whether selected is non-empty and its weights total exactly 100.
// Weights of models outside the selection are ignored; missing weights count as 0.
func ValidateAllocation(selected []ModelID, weights AllocationWeights) ValidationResult {
	total := 0
	for _, model := range selected {
		total += weights[model]
	}

	switch {
	case len(selected) == 0:
		return ValidationResult{Valid: false, Reason: ReasonNoModelsSelected, TotalWeight: total}
	case total != fullAllocation:
		return ValidationResult{Valid: false, Reason: ReasonWeightMismatch, TotalWeight: total}
	default:
		return ValidationResult{Valid: true, TotalWeight: total}
	}
}

// EqualSplit gives every selected model floor(100/N) percent and adds the
// remainder to the first model, so the weights always total exactly 100.
func EqualSplit(selected []ModelID) AllocationWeights {
	weights := make(AllocationWeights, len(selected))
	if len(selected) == 0 {
		return weights
	}

	base := fullAllocation / len(selected)
	remainder := fullAllocation - base*len(selected)

	for i, model := range selected {
		weights[model] = base
		if i == 0 {
			weights[model] += remainder
		}
	}

	return weights
}

// ResetWeights assigns 0 to every selected model.
func ResetWeights(selected []ModelID) AllocationWeights {
	weights := make(AllocationWeights, len(selected))
	for _, model := range selected {
		weights[model] = 0
	}
	return weights
}

// CheckSelection rejects duplicate or unpriced models and weights outside [0,100].
func CheckSelection(ctx context.Context, catalog PricingCatalog, selected []ModelID, weights AllocationWeights) error {
	seen := make(map[ModelID]struct{}, len(selected))
	for _, model := range selected {
		if _, dup := seen[model]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicateModel, model)
		}
		seen[model] = struct{}{}

		if _, err := catalog.Lookup(ctx, model); err != nil {
			return err
		}
	}

	for model, weight := range weights {
		if weight < 0 || weight > fullAllocation {
			return fmt.Errorf("%w: %s has %d", ErrInvalidWeight, model, weight)
		}
	}

	return nil
}
