package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"modelscore/internal/metric"
)

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "List registered metrics and their default net-score weights",
	RunE:  runMetrics,
}

func runMetrics(cmd *cobra.Command, _ []string) error {
	reg := metric.Builtin()
	card := metric.DefaultScorecard()
	for _, name := range reg.Names() {
		fmt.Fprintf(cmd.OutOrStdout(), "%-20s weight=%.2f\n", name, card.Weights[name])
	}
	return nil
}
