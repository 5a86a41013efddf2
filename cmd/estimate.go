package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/davidbz/terra/internal/config"
	"github.com/davidbz/terra/internal/domain"
	"github.com/davidbz/terra/internal/provider/groq"
)

const reportFileMode = 0o644

type estimateOptions struct {
	scenario string
	models   []string
	weights  []string
	output   string
	stdout   bool

	tokensPerQuestion  int64
	users              int64
	questionsPerUser   int64
	questionsPerReport int64
	reportsPerDay      int64
}

func newEstimateCmd() *cobra.Command {
	var opts estimateOptions

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate daily and monthly cost of a model allocation",
		Example: `  terra estimate
  terra estimate --model "Qwen3 32B 131k" --model "Llama 3.3 70B Versatile 128k" \
    --weight "Qwen3 32B 131k=60" --weight "Llama 3.3 70B Versatile 128k=40" --users 25
  terra estimate --scenario team.yaml --stdout`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			container, err := buildContainer()
			if err != nil {
				return err
			}

			return container.Invoke(func(
				_ *zap.Logger,
				estimator *domain.EstimatorService,
				renderer *domain.ReportRenderer,
				estimateCfg *config.EstimateConfig,
			) error {
				req, reqErr := buildEstimateRequest(cmd, opts, estimateCfg.Usage())
				if reqErr != nil {
					return reqErr
				}

				output := opts.output
				if output == "" {
					output = estimateCfg.ReportFile
				}

				return runEstimate(cmd.Context(), estimator, renderer, req, cmd.OutOrStdout(), cmd.ErrOrStderr(),
					output, opts.stdout)
			})
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.scenario, "scenario", "", "YAML scenario file with models, weights and usage")
	f.StringArrayVar(&opts.models, "model", nil, "model to include (repeatable, in display order)")
	f.StringArrayVar(&opts.weights, "weight", nil, "allocation as NAME=PERCENT (repeatable)")
	f.Int64Var(&opts.tokensPerQuestion, "tokens-per-question", 0, "tokens consumed per question")
	f.Int64Var(&opts.users, "users", 0, "number of users")
	f.Int64Var(&opts.questionsPerUser, "questions-per-user", 0, "questions per user per day")
	f.Int64Var(&opts.questionsPerReport, "questions-per-report", 0, "questions per generated report")
	f.Int64Var(&opts.reportsPerDay, "reports-per-day", 0, "reports generated per day")
	f.StringVarP(&opts.output, "output", "o", "", "report file path (default from ESTIMATE_REPORT_FILE)")
	f.BoolVar(&opts.stdout, "stdout", false, "print the report instead of writing a file")

	return cmd
}

// buildEstimateRequest layers flags over the scenario file over configured defaults.
func buildEstimateRequest(
	cmd *cobra.Command,
	opts estimateOptions,
	defaults domain.UsageParameters,
) (*domain.EstimateRequest, error) {
	req := &domain.EstimateRequest{Models: groq.DefaultModels(), Usage: defaults}
	if opts.scenario != "" {
		loaded, err := config.LoadScenario(opts.scenario, defaults)
		if err != nil {
			return nil, err
		}
		req = loaded
	}

	if len(opts.models) > 0 {
		req.Models = make([]domain.ModelID, 0, len(opts.models))
		for _, m := range opts.models {
			req.Models = append(req.Models, domain.ModelID(m))
		}
		req.Weights = nil
	}

	if len(opts.weights) > 0 {
		weights, err := parseWeights(opts.weights)
		if err != nil {
			return nil, err
		}
		req.Weights = weights
	}

	if len(req.Weights) == 0 {
		req.Weights = domain.EqualSplit(req.Models)
	}

	flags := cmd.Flags()
	overrides := []struct {
		flag  string
		value int64
		field *int64
	}{
		{"tokens-per-question", opts.tokensPerQuestion, &req.Usage.TokensPerQuestion},
		{"users", opts.users, &req.Usage.UserCount},
		{"questions-per-user", opts.questionsPerUser, &req.Usage.QuestionsPerUserPerDay},
		{"questions-per-report", opts.questionsPerReport, &req.Usage.QuestionsPerReport},
		{"reports-per-day", opts.reportsPerDay, &req.Usage.ReportsPerDay},
	}
	for _, o := range overrides {
		if flags.Changed(o.flag) {
			*o.field = o.value
		}
	}

	return req, nil
}

// parseWeights parses NAME=PERCENT pairs. Names may contain spaces, so the
// last '=' separates the percentage.
func parseWeights(pairs []string) (domain.AllocationWeights, error) {
	weights := make(domain.AllocationWeights, len(pairs))
	for _, pair := range pairs {
		idx := strings.LastIndex(pair, "=")
		if idx <= 0 {
			return nil, fmt.Errorf("invalid --weight %q: expected NAME=PERCENT", pair)
		}

		name := strings.TrimSpace(pair[:idx])
		pct, err := strconv.Atoi(strings.TrimSpace(strings.TrimSuffix(pair[idx+1:], "%")))
		if err != nil {
			return nil, fmt.Errorf("invalid --weight %q: %w", pair, err)
		}

		weights[domain.ModelID(name)] = pct
	}
	return weights, nil
}

func runEstimate(
	ctx context.Context,
	estimator *domain.EstimatorService,
	renderer *domain.ReportRenderer,
	req *domain.EstimateRequest,
	stdout io.Writer,
	stderr io.Writer,
	output string,
	toStdout bool,
) error {
	estimate, err := estimator.Estimate(ctx, req)
	if err != nil {
		return err
	}

	if !estimate.Validation.Valid {
		fmt.Fprintln(stderr, estimate.Validation.Message())
		return estimate.Validation.Err()
	}

	text := renderer.Render(estimate.Report)

	if toStdout {
		_, err = io.WriteString(stdout, text)
		return err
	}

	if output == "" {
		return errors.New("output path cannot be empty")
	}

	if err = os.WriteFile(output, []byte(text), reportFileMode); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	fmt.Fprintf(stdout, "Daily cost: %s  Monthly cost: %s\n",
		domain.FormatCurrency(estimate.Report.CombinedDailyCost),
		domain.FormatCurrency(estimate.Report.CombinedMonthlyCost))
	fmt.Fprintf(stdout, "Report saved to %s\n", output)

	return nil
}
