package domain

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/davidbz/terra/internal/observability"
)

const defaultCacheTTL = 1 * time.Hour

// EstimatorService gates, computes and caches estimates.
type EstimatorService struct {
	catalog    PricingCatalog
	calculator CostCalculator
	renderer   *ReportRenderer
	cache      EstimateCache
	events     EventPublisher
	probe      UsageProbe
	cacheTTL   time.Duration
}

// EstimatorOption customises an EstimatorService.
type EstimatorOption func(*EstimatorService)

// WithCache enables result caching. A nil cache disables it.
func WithCache(cache EstimateCache, ttl time.Duration) EstimatorOption {
	return func(s *EstimatorService) {
		s.cache = cache
		if ttl > 0 {
			s.cacheTTL = ttl
		}
	}
}

// WithEvents publishes an event for every computed estimate.
func WithEvents(events EventPublisher) EstimatorOption {
	return func(s *EstimatorService) {
		s.events = events
	}
}

// WithProbe enables token measurement through probe.
func WithProbe(probe UsageProbe) EstimatorOption {
	return func(s *EstimatorService) {
		s.probe = probe
	}
}

// NewEstimatorService creates a new estimator service (DI constructor).
func NewEstimatorService(
	catalog PricingCatalog,
	calculator CostCalculator,
	renderer *ReportRenderer,
	opts ...EstimatorOption,
) *EstimatorService {
	s := &EstimatorService{
		catalog:    catalog,
		calculator: calculator,
		renderer:   renderer,
		cacheTTL:   defaultCacheTTL,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Catalog returns every priced model in display order.
func (s *EstimatorService) Catalog(ctx context.Context) []CatalogEntry {
	return s.catalog.Entries(ctx)
}

// Validate checks the selection shape and then the allocation.
func (s *EstimatorService) Validate(
	ctx context.Context,
	selected []ModelID,
	weights AllocationWeights,
) (ValidationResult, error) {
	if err := CheckSelection(ctx, s.catalog, selected, weights); err != nil {
		return ValidationResult{}, err
	}
	return ValidateAllocation(selected, weights), nil
}

// Estimate computes the cost report for req. An invalid allocation is not an
// error: the returned Estimate carries the validation and a nil report.
func (s *EstimatorService) Estimate(ctx context.Context, req *EstimateRequest) (*Estimate, error) {
	if req == nil {
		return nil, errors.New("request cannot be nil")
	}

	if err := req.Usage.Validate(); err != nil {
		return nil, err
	}

	validation, err := s.Validate(ctx, req.Models, req.Weights)
	if err != nil {
		return nil, err
	}

	key := EstimateKey(req)
	ctx = observability.WithScenario(ctx, key[:12])
	logger := observability.FromContext(ctx)

	if !validation.Valid {
		logger.Info("estimate blocked by allocation",
			observability.String("reason", string(validation.Reason)),
			observability.Int("total_weight", validation.TotalWeight))
		return &Estimate{Validation: validation}, nil
	}

	if s.cache != nil {
		cached, cacheErr := s.cache.Get(ctx, key)
		switch {
		case cacheErr == nil && cached != nil:
			logger.Info("cache HIT - returning cached estimate")
			s.publish(ctx, cached, true)
			return &Estimate{Validation: validation, Report: cached, Cached: true}, nil
		case cacheErr != nil && !errors.Is(cacheErr, ErrCacheMiss):
			logger.Warn("cache get failed, continuing without cache", observability.Error(cacheErr))
		default:
			logger.Info("cache MISS - computing estimate")
		}
	}

	report, err := s.calculator.Compute(ctx, req.Models, req.Weights, req.Usage)
	if err != nil {
		return nil, fmt.Errorf("estimate failed: %w", err)
	}

	if s.cache != nil {
		if setErr := s.cache.Set(ctx, key, report, s.cacheTTL); setErr != nil {
			logger.Warn("failed to store estimate in cache", observability.Error(setErr))
		}
	}

	s.publish(ctx, report, false)

	return &Estimate{Validation: validation, Report: report}, nil
}

// Render estimates req and returns the plain-text report. An invalid
// allocation is returned as its validation error.
func (s *EstimatorService) Render(ctx context.Context, req *EstimateRequest) (string, error) {
	estimate, err := s.Estimate(ctx, req)
	if err != nil {
		return "", err
	}
	if !estimate.Validation.Valid {
		return "", estimate.Validation.Err()
	}
	return s.renderer.Render(estimate.Report), nil
}

// Probe measures the tokens a sample question consumes on model.
func (s *EstimatorService) Probe(ctx context.Context, model ModelID, prompt string) (*TokenSample, error) {
	if s.probe == nil {
		return nil, ErrProbeNotConfigured
	}

	if prompt == "" {
		return nil, errors.New("prompt cannot be empty")
	}

	if _, err := s.catalog.Lookup(ctx, model); err != nil {
		return nil, err
	}

	sample, err := s.probe.Measure(ctx, model, prompt)
	if err != nil {
		return nil, fmt.Errorf("probe %s failed: %w", s.probe.Name(), err)
	}

	return sample, nil
}

func (s *EstimatorService) publish(ctx context.Context, report *CostReport, cached bool) {
	if s.events == nil {
		return
	}

	s.events.Publish(ctx, "estimate.computed", map[string]interface{}{
		"models":       len(report.Models),
		"daily_tokens": report.TotalDailyTokens,
		"daily_cost":   report.CombinedDailyCost.String(),
		"monthly_cost": report.CombinedMonthlyCost.String(),
		"cached":       cached,
	})
}
