// modelscore scores machine-learning artifacts: it reads a manifest of
// code/dataset/model links, runs the selected metrics concurrently per
// model and prints one NDJSON record per model.
//
// Usage:
//
//	modelscore score <manifest> [--tasks tasks.txt] [--scorecard weights.yaml]
//	modelscore validate <manifest>
//	modelscore metrics
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "modelscore",
	Short: "Trust scoring for reusable ML models",
	Long: "modelscore evaluates candidate models (optionally paired with their\ncode repository and dataset) by running independent metrics concurrently\nand aggregating per-model score/latency reports.",
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
}

func init() {
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(metricsCmd)
	rootCmd.Version = version
}

func main() {
	_ = godotenv.Load()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
