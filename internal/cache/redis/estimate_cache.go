package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/davidbz/terra/internal/domain"
	"github.com/davidbz/terra/internal/observability"
)

const keyPrefix = "terra:estimate:"

// EstimateCache stores cost reports in Redis as JSON strings.
type EstimateCache struct {
	client redis.Cmdable
}

// NewEstimateCache creates a new Redis estimate cache adapter.
func NewEstimateCache(client redis.Cmdable) *EstimateCache {
	return &EstimateCache{client: client}
}

// Get retrieves a cached report. A missing key returns domain.ErrCacheMiss.
func (c *EstimateCache) Get(ctx context.Context, key string) (*domain.CostReport, error) {
	logger := observability.FromContext(ctx)

	data, err := c.client.Get(ctx, redisKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrCacheMiss
	}
	if err != nil {
		logger.Error("estimate cache get failed", observability.Error(err))
		return nil, fmt.Errorf("failed to get estimate: %w", err)
	}

	var report domain.CostReport
	if err = json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("failed to decode cached estimate: %w", err)
	}

	logger.Debug("estimate cache hit",
		observability.String("key", key),
		observability.Int("data_size", len(data)))

	return &report, nil
}

// Set stores report under key. A non-positive ttl keeps the entry without expiry.
func (c *EstimateCache) Set(ctx context.Context, key string, report *domain.CostReport, ttl time.Duration) error {
	if report == nil {
		return errors.New("report cannot be nil")
	}

	data, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to encode estimate: %w", err)
	}

	if ttl < 0 {
		ttl = 0
	}

	if err = c.client.Set(ctx, redisKey(key), data, ttl).Err(); err != nil {
		observability.FromContext(ctx).Error("estimate cache set failed", observability.Error(err))
		return fmt.Errorf("failed to set estimate: %w", err)
	}

	return nil
}

func redisKey(key string) string {
	return keyPrefix + key
}
