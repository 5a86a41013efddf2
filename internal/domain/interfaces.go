package domain

import (
	"context"
	"time"
)

// EstimateCache stores computed reports keyed by their full input tuple.
type EstimateCache interface {
	// Get retrieves a cached report, or ErrCacheMiss.
	Get(ctx context.Context, key string) (*CostReport, error)

	// Set stores a report under key for ttl.
	Set(ctx context.Context, key string, report *CostReport, ttl time.Duration) error
}

// UsageProbe measures real token usage of a sample question against a live model.
type UsageProbe interface {
	// Measure sends prompt to model and reports the tokens it consumed.
	Measure(ctx context.Context, model ModelID, prompt string) (*TokenSample, error)

	// Name returns the probe identifier.
	Name() string
}

// EventPublisher publishes events for observability.
type EventPublisher interface {
	// Publish publishes an event with the given type and data.
	Publish(ctx context.Context, eventType string, data map[string]interface{})
}
