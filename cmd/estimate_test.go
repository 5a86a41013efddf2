package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/terra/internal/domain"
	"github.com/davidbz/terra/internal/provider/groq"
)

const (
	llama domain.ModelID = "Llama 3.3 70B Versatile 128k"
	qwen  domain.ModelID = "Qwen3 32B 131k"
)

func defaultUsage() domain.UsageParameters {
	return domain.UsageParameters{
		TokensPerQuestion:      10000,
		UserCount:              3,
		QuestionsPerUserPerDay: 20,
		QuestionsPerReport:     30,
		ReportsPerDay:          2,
	}
}

func newTestEstimator(t *testing.T) (*domain.EstimatorService, *domain.ReportRenderer) {
	t.Helper()

	catalog, err := groq.NewCatalog()
	require.NoError(t, err)

	renderer := domain.NewReportRendererWithClock(func() time.Time {
		return time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	})
	return domain.NewEstimatorService(catalog, domain.NewStandardCostCalculator(catalog), renderer), renderer
}

func TestParseWeights(t *testing.T) {
	tests := []struct {
		name     string
		pairs    []string
		expected domain.AllocationWeights
		wantErr  bool
	}{
		{
			name:     "names with spaces",
			pairs:    []string{"Llama 3.3 70B Versatile 128k=70", "Qwen3 32B 131k = 30%"},
			expected: domain.AllocationWeights{llama: 70, qwen: 30},
		},
		{
			name:     "name containing parentheses",
			pairs:    []string{"Llama 4 Scout (17Bx16E)=100"},
			expected: domain.AllocationWeights{"Llama 4 Scout (17Bx16E)": 100},
		},
		{name: "missing separator", pairs: []string{"Qwen3 32B 131k"}, wantErr: true},
		{name: "missing name", pairs: []string{"=50"}, wantErr: true},
		{name: "non numeric", pairs: []string{"Qwen3 32B 131k=half"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			weights, err := parseWeights(tt.pairs)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.expected, weights)
		})
	}
}

func TestBuildEstimateRequest(t *testing.T) {
	t.Run("should default to catalog defaults with equal split", func(t *testing.T) {
		cmd := newEstimateCmd()
		require.NoError(t, cmd.ParseFlags(nil))

		req, err := buildEstimateRequest(cmd, estimateOptions{}, defaultUsage())

		require.NoError(t, err)
		require.Equal(t, []domain.ModelID{llama, qwen}, req.Models)
		require.Equal(t, domain.AllocationWeights{llama: 50, qwen: 50}, req.Weights)
		require.Equal(t, defaultUsage(), req.Usage)
	})

	t.Run("should apply flags", func(t *testing.T) {
		cmd := newEstimateCmd()
		require.NoError(t, cmd.ParseFlags([]string{
			"--model", string(qwen),
			"--weight", string(qwen) + "=100",
			"--users", "25",
			"--reports-per-day", "4",
		}))

		var opts estimateOptions
		opts.models, _ = cmd.Flags().GetStringArray("model")
		opts.weights, _ = cmd.Flags().GetStringArray("weight")
		opts.users, _ = cmd.Flags().GetInt64("users")
		opts.reportsPerDay, _ = cmd.Flags().GetInt64("reports-per-day")

		req, err := buildEstimateRequest(cmd, opts, defaultUsage())

		require.NoError(t, err)
		require.Equal(t, []domain.ModelID{qwen}, req.Models)
		require.Equal(t, domain.AllocationWeights{qwen: 100}, req.Weights)
		require.Equal(t, int64(25), req.Usage.UserCount)
		require.Equal(t, int64(4), req.Usage.ReportsPerDay)
		require.Equal(t, int64(10000), req.Usage.TokensPerQuestion)
	})

	t.Run("should load scenario file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "scenario.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`
models: [Qwen3 32B 131k, Llama 3.3 70B Versatile 128k]
weights:
  Qwen3 32B 131k: 80
  Llama 3.3 70B Versatile 128k: 20
usage:
  user_count: 12
`), 0o600))

		cmd := newEstimateCmd()
		require.NoError(t, cmd.ParseFlags(nil))

		req, err := buildEstimateRequest(cmd, estimateOptions{scenario: path}, defaultUsage())

		require.NoError(t, err)
		require.Equal(t, []domain.ModelID{qwen, llama}, req.Models)
		require.Equal(t, 80, req.Weights[qwen])
		require.Equal(t, int64(12), req.Usage.UserCount)
	})
}

func TestRunEstimate(t *testing.T) {
	ctx := context.Background()
	valid := func() *domain.EstimateRequest {
		return &domain.EstimateRequest{
			Models:  []domain.ModelID{llama, qwen},
			Weights: domain.AllocationWeights{llama: 70, qwen: 30},
			Usage:   defaultUsage(),
		}
	}

	t.Run("should write report file", func(t *testing.T) {
		estimator, renderer := newTestEstimator(t)
		output := filepath.Join(t.TempDir(), domain.ReportFileName)
		var stdout, stderr bytes.Buffer

		err := runEstimate(ctx, estimator, renderer, valid(), &stdout, &stderr, output, false)

		require.NoError(t, err)
		require.Contains(t, stdout.String(), "Daily cost: $0.64  Monthly cost: $19.24")

		data, err := os.ReadFile(output)
		require.NoError(t, err)
		require.True(t, strings.HasPrefix(string(data), "Terra Price Estimator Report\n"))
	})

	t.Run("should print report to stdout", func(t *testing.T) {
		estimator, renderer := newTestEstimator(t)
		var stdout, stderr bytes.Buffer

		err := runEstimate(ctx, estimator, renderer, valid(), &stdout, &stderr, "", true)

		require.NoError(t, err)
		require.Contains(t, stdout.String(), "Total Monthly Cost: $19.24")
	})

	t.Run("should fail with blocking reason", func(t *testing.T) {
		estimator, renderer := newTestEstimator(t)
		req := valid()
		req.Weights[qwen] = 10
		var stdout, stderr bytes.Buffer

		err := runEstimate(ctx, estimator, renderer, req, &stdout, &stderr, "", true)

		require.ErrorIs(t, err, domain.ErrWeightMismatch)
		require.Contains(t, stderr.String(), "Current total: 80%")
		require.Empty(t, stdout.String())
	})
}

func TestPrintModels(t *testing.T) {
	estimator, _ := newTestEstimator(t)
	var out bytes.Buffer

	require.NoError(t, printModels(context.Background(), &out, estimator))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 14)
	require.True(t, strings.HasPrefix(lines[0], "MODEL"))
	require.Contains(t, out.String(), "$0.59")
}
