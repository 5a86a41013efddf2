package main

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/davidbz/terra/internal/domain"
	"github.com/davidbz/terra/internal/provider/groq"
)

func newModelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List priced models (USD per million tokens)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			container, err := buildContainer()
			if err != nil {
				return err
			}

			return container.Invoke(func(_ *zap.Logger, estimator *domain.EstimatorService) error {
				return printModels(cmd.Context(), cmd.OutOrStdout(), estimator)
			})
		},
	}
}

func printModels(ctx context.Context, out io.Writer, estimator *domain.EstimatorService) error {
	defaults := make(map[domain.ModelID]bool)
	for _, m := range groq.DefaultModels() {
		defaults[m] = true
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "MODEL\tINPUT\tOUTPUT\tDEFAULT")
	for _, e := range estimator.Catalog(ctx) {
		mark := ""
		if defaults[e.Model] {
			mark = "*"
		}
		fmt.Fprintf(w, "%s\t$%s\t$%s\t%s\n", e.Model, e.Price.InputPerMillion, e.Price.OutputPerMillion, mark)
	}
	return w.Flush()
}
