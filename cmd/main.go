package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/davidbz/terra/internal/cache/redis"
	"github.com/davidbz/terra/internal/config"
	"github.com/davidbz/terra/internal/domain"
	"github.com/davidbz/terra/internal/http"
	"github.com/davidbz/terra/internal/http/middleware"
	"github.com/davidbz/terra/internal/observability"
	"github.com/davidbz/terra/internal/provider/groq"
)

var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "terra",
		Short:         "Terra price estimator for Groq-hosted LLMs",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newServeCmd(),
		newEstimateCmd(),
		newModelsCmd(),
	)

	return root
}

func buildContainer() (*dig.Container, error) {
	container := dig.New()

	providers := []struct {
		name        string
		constructor interface{}
	}{
		// Configuration
		{"config", config.Load},
		{"config dependencies", config.ParseDependenciesConfig},

		// Observability
		{"logger", observability.InitLogger},
		{"event bus", observability.NewEventBus},

		// Pricing and cost engine
		{"pricing catalog", func() (domain.PricingCatalog, error) {
			return groq.NewCatalog()
		}},
		{"cost calculator", func(catalog domain.PricingCatalog) domain.CostCalculator {
			return domain.NewStandardCostCalculator(catalog)
		}},
		{"report renderer", domain.NewReportRenderer},

		// Optional adapters
		{"estimate cache", newEstimateCache},
		{"usage probe", newUsageProbe},

		// Domain Services
		{"estimator service", newEstimatorService},

		// HTTP Layer
		{"middleware chain", middleware.BuildMiddlewareChain},
		{"HTTP handler", http.NewHandler},
		{"HTTP server", http.NewServer},
	}

	for _, p := range providers {
		if err := container.Provide(p.constructor); err != nil {
			return nil, fmt.Errorf("failed to provide %s: %w", p.name, err)
		}
	}

	return container, nil
}

// newEstimateCache connects to Redis when configured. A connection failure
// disables caching instead of failing startup.
func newEstimateCache(_ *zap.Logger, cfg *redis.Config) domain.EstimateCache {
	ctx := context.Background()
	logger := observability.FromContext(ctx)

	if !cfg.Enabled() {
		logger.Debug("estimate cache disabled")
		return nil
	}

	client, err := redis.NewClient(ctx, *cfg)
	if err != nil {
		logger.Warn("estimate cache unavailable, continuing without cache", observability.Error(err))
		return nil
	}

	logger.Info("estimate cache enabled", observability.String("addr", cfg.Addr))
	return redis.NewEstimateCache(client)
}

// newUsageProbe builds the Groq probe when an API key is configured.
func newUsageProbe(cfg *groq.Config) (domain.UsageProbe, error) {
	if cfg.APIKey == "" {
		return nil, nil //nolint:nilnil // Probe is optional
	}

	prober, err := groq.NewProber(*cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create groq probe: %w", err)
	}
	return prober, nil
}

func newEstimatorService(
	catalog domain.PricingCatalog,
	calculator domain.CostCalculator,
	renderer *domain.ReportRenderer,
	cache domain.EstimateCache,
	probe domain.UsageProbe,
	events *observability.EventBus,
	redisCfg *redis.Config,
) *domain.EstimatorService {
	return domain.NewEstimatorService(catalog, calculator, renderer,
		domain.WithCache(cache, redisCfg.TTL),
		domain.WithProbe(probe),
		domain.WithEvents(events),
	)
}
