package domain_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/davidbz/terra/internal/domain"
	"github.com/davidbz/terra/internal/mocks"
	"github.com/davidbz/terra/internal/provider/groq"
)

type recordingPublisher struct {
	events []string
	data   []map[string]interface{}
}

func (p *recordingPublisher) Publish(_ context.Context, eventType string, data map[string]interface{}) {
	p.events = append(p.events, eventType)
	p.data = append(p.data, data)
}

func newCatalog(t *testing.T) domain.PricingCatalog {
	t.Helper()
	catalog, err := groq.NewCatalog()
	require.NoError(t, err)
	return catalog
}

func validRequest() *domain.EstimateRequest {
	return &domain.EstimateRequest{
		Models:  []domain.ModelID{llama, qwen},
		Weights: domain.AllocationWeights{llama: 70, qwen: 30},
		Usage:   defaultUsage(),
	}
}

func TestEstimatorService_Estimate(t *testing.T) {
	ctx := context.Background()

	t.Run("should compute report for valid allocation", func(t *testing.T) {
		catalog := newCatalog(t)
		publisher := &recordingPublisher{}
		service := domain.NewEstimatorService(catalog, domain.NewStandardCostCalculator(catalog),
			domain.NewReportRenderer(), domain.WithEvents(publisher))

		estimate, err := service.Estimate(ctx, validRequest())

		require.NoError(t, err)
		require.True(t, estimate.Validation.Valid)
		require.False(t, estimate.Cached)
		require.NotNil(t, estimate.Report)
		requireDecimal(t, "0.6414", estimate.Report.CombinedDailyCost)

		require.Equal(t, []string{"estimate.computed"}, publisher.events)
		require.Equal(t, "0.6414", publisher.data[0]["daily_cost"])
		require.Equal(t, false, publisher.data[0]["cached"])
	})

	t.Run("should not invoke calculator while allocation is invalid", func(t *testing.T) {
		calculator := mocks.NewMockCostCalculator(t)
		service := domain.NewEstimatorService(newCatalog(t), calculator, domain.NewReportRenderer())

		req := validRequest()
		req.Weights = domain.AllocationWeights{llama: 60, qwen: 30}

		estimate, err := service.Estimate(ctx, req)

		require.NoError(t, err)
		require.False(t, estimate.Validation.Valid)
		require.Equal(t, domain.ReasonWeightMismatch, estimate.Validation.Reason)
		require.Equal(t, 90, estimate.Validation.TotalWeight)
		require.Nil(t, estimate.Report)
	})

	t.Run("should block empty selection", func(t *testing.T) {
		calculator := mocks.NewMockCostCalculator(t)
		service := domain.NewEstimatorService(newCatalog(t), calculator, domain.NewReportRenderer())

		req := validRequest()
		req.Models = nil

		estimate, err := service.Estimate(ctx, req)

		require.NoError(t, err)
		require.Equal(t, domain.ReasonNoModelsSelected, estimate.Validation.Reason)
		require.Nil(t, estimate.Report)
	})

	t.Run("should reject unknown model", func(t *testing.T) {
		calculator := mocks.NewMockCostCalculator(t)
		service := domain.NewEstimatorService(newCatalog(t), calculator, domain.NewReportRenderer())

		req := validRequest()
		req.Models = []domain.ModelID{"gpt-4"}
		req.Weights = domain.AllocationWeights{"gpt-4": 100}

		estimate, err := service.Estimate(ctx, req)

		require.ErrorIs(t, err, domain.ErrUnknownModel)
		require.Nil(t, estimate)
	})

	t.Run("should reject invalid usage", func(t *testing.T) {
		calculator := mocks.NewMockCostCalculator(t)
		service := domain.NewEstimatorService(newCatalog(t), calculator, domain.NewReportRenderer())

		req := validRequest()
		req.Usage.UserCount = 0

		estimate, err := service.Estimate(ctx, req)

		require.ErrorIs(t, err, domain.ErrInvalidUsage)
		require.Nil(t, estimate)
	})

	t.Run("should return error when request is nil", func(t *testing.T) {
		service := domain.NewEstimatorService(newCatalog(t), mocks.NewMockCostCalculator(t), domain.NewReportRenderer())

		estimate, err := service.Estimate(ctx, nil)

		require.Error(t, err)
		require.Nil(t, estimate)
		require.Contains(t, err.Error(), "request cannot be nil")
	})

	t.Run("should wrap calculator failure", func(t *testing.T) {
		calculator := mocks.NewMockCostCalculator(t)
		calculator.EXPECT().
			Compute(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(nil, errors.New("boom"))
		service := domain.NewEstimatorService(newCatalog(t), calculator, domain.NewReportRenderer())

		estimate, err := service.Estimate(ctx, validRequest())

		require.Error(t, err)
		require.Nil(t, estimate)
		require.Contains(t, err.Error(), "estimate failed")
	})
}

func TestEstimatorService_Cache(t *testing.T) {
	ctx := context.Background()
	req := validRequest()
	key := domain.EstimateKey(req)

	t.Run("should return cached report on hit", func(t *testing.T) {
		cache := mocks.NewMockEstimateCache(t)
		calculator := mocks.NewMockCostCalculator(t)
		cached := &domain.CostReport{Models: req.Models, TotalDailyTokens: 42}

		cache.EXPECT().Get(mock.Anything, key).Return(cached, nil)

		service := domain.NewEstimatorService(newCatalog(t), calculator, domain.NewReportRenderer(),
			domain.WithCache(cache, time.Minute))

		estimate, err := service.Estimate(ctx, req)

		require.NoError(t, err)
		require.True(t, estimate.Cached)
		require.Same(t, cached, estimate.Report)
	})

	t.Run("should compute and store on miss", func(t *testing.T) {
		cache := mocks.NewMockEstimateCache(t)
		catalog := newCatalog(t)

		cache.EXPECT().Get(mock.Anything, key).Return(nil, domain.ErrCacheMiss)
		cache.EXPECT().
			Set(mock.Anything, key, mock.MatchedBy(func(report *domain.CostReport) bool {
				return report.TotalDailyTokens == 1_200_000
			}), time.Minute).
			Return(nil)

		service := domain.NewEstimatorService(catalog, domain.NewStandardCostCalculator(catalog),
			domain.NewReportRenderer(), domain.WithCache(cache, time.Minute))

		estimate, err := service.Estimate(ctx, req)

		require.NoError(t, err)
		require.False(t, estimate.Cached)
		require.Equal(t, int64(1_200_000), estimate.Report.TotalDailyTokens)
	})

	t.Run("should continue when cache fails", func(t *testing.T) {
		cache := mocks.NewMockEstimateCache(t)
		catalog := newCatalog(t)

		cache.EXPECT().Get(mock.Anything, key).Return(nil, errors.New("connection refused"))
		cache.EXPECT().Set(mock.Anything, key, mock.Anything, time.Hour).Return(errors.New("connection refused"))

		service := domain.NewEstimatorService(catalog, domain.NewStandardCostCalculator(catalog),
			domain.NewReportRenderer(), domain.WithCache(cache, 0))

		estimate, err := service.Estimate(ctx, req)

		require.NoError(t, err)
		require.NotNil(t, estimate.Report)
	})
}

func TestEstimatorService_Render(t *testing.T) {
	ctx := context.Background()
	catalog := newCatalog(t)
	service := domain.NewEstimatorService(catalog, domain.NewStandardCostCalculator(catalog),
		domain.NewReportRendererWithClock(fixedClock))

	t.Run("should render valid estimate", func(t *testing.T) {
		text, err := service.Render(ctx, validRequest())

		require.NoError(t, err)
		require.Contains(t, text, "$0.26/day")
		require.Contains(t, text, "$7.81/month")
	})

	t.Run("should return validation error for invalid allocation", func(t *testing.T) {
		req := validRequest()
		req.Weights = domain.AllocationWeights{llama: 10, qwen: 10}

		text, err := service.Render(ctx, req)

		require.ErrorIs(t, err, domain.ErrWeightMismatch)
		require.Empty(t, text)
	})
}

func TestEstimatorService_Probe(t *testing.T) {
	ctx := context.Background()
	catalog := newCatalog(t)

	t.Run("should fail without probe", func(t *testing.T) {
		service := domain.NewEstimatorService(catalog, domain.NewStandardCostCalculator(catalog),
			domain.NewReportRenderer())

		sample, err := service.Probe(ctx, llama, "hello")

		require.ErrorIs(t, err, domain.ErrProbeNotConfigured)
		require.Nil(t, sample)
	})

	t.Run("should measure through probe", func(t *testing.T) {
		probe := mocks.NewMockUsageProbe(t)
		probe.EXPECT().Measure(mock.Anything, llama, "hello").Return(&domain.TokenSample{
			Model: llama, PromptTokens: 10, CompletionTokens: 5, TotalTokens: 15,
		}, nil)

		service := domain.NewEstimatorService(catalog, domain.NewStandardCostCalculator(catalog),
			domain.NewReportRenderer(), domain.WithProbe(probe))

		sample, err := service.Probe(ctx, llama, "hello")

		require.NoError(t, err)
		require.Equal(t, int64(15), sample.TotalTokens)
	})

	t.Run("should reject unknown model before calling probe", func(t *testing.T) {
		probe := mocks.NewMockUsageProbe(t)
		service := domain.NewEstimatorService(catalog, domain.NewStandardCostCalculator(catalog),
			domain.NewReportRenderer(), domain.WithProbe(probe))

		sample, err := service.Probe(ctx, "gpt-4", "hello")

		require.ErrorIs(t, err, domain.ErrUnknownModel)
		require.Nil(t, sample)
	})

	t.Run("should wrap probe failure", func(t *testing.T) {
		probe := mocks.NewMockUsageProbe(t)
		probe.EXPECT().Measure(mock.Anything, llama, "hello").Return(nil, errors.New("rate limited"))
		probe.EXPECT().Name().Return("groq")

		service := domain.NewEstimatorService(catalog, domain.NewStandardCostCalculator(catalog),
			domain.NewReportRenderer(), domain.WithProbe(probe))

		sample, err := service.Probe(ctx, llama, "hello")

		require.Error(t, err)
		require.Nil(t, sample)
		require.Contains(t, err.Error(), "probe groq failed")
	})
}
