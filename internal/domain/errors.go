package domain

import "errors"

var (
	// ErrUnknownModel is returned when a model is absent from the pricing catalog.
	ErrUnknownModel = errors.New("unknown model")

	// ErrNoModelsSelected is returned when an allocation has no selected models.
	ErrNoModelsSelected = errors.New("no models selected")

	// ErrWeightMismatch is returned when allocation weights do not total 100.
	ErrWeightMismatch = errors.New("allocation weights must total 100%")

	// ErrInvalidUsage is returned when a usage parameter is below 1.
	ErrInvalidUsage = errors.New("invalid usage parameters")

	// ErrDuplicateModel is returned when a selection names the same model twice.
	ErrDuplicateModel = errors.New("duplicate model in selection")

	// ErrInvalidWeight is returned when a weight falls outside [0,100].
	ErrInvalidWeight = errors.New("weight must be between 0 and 100")

	// ErrCacheMiss is returned by an EstimateCache when no entry exists for a key.
	ErrCacheMiss = errors.New("cache miss")

	// ErrProbeNotConfigured is returned when no usage probe is available.
	ErrProbeNotConfigured = errors.New("usage probe not configured")
)
