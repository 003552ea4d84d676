package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"modelscore/internal/config"
	"modelscore/internal/ghapi"
	"modelscore/internal/hfapi"
	"modelscore/internal/logging"
	"modelscore/internal/manifest"
	"modelscore/internal/metric"
	"modelscore/internal/pipeline"
	"modelscore/internal/report"
	"modelscore/internal/runner"
)

var scoreFlags struct {
	tasks          string
	scorecard      string
	downloadDir    string
	parallel       int
	metricTimeout  time.Duration
	skipTokenCheck bool
}

var scoreCmd = &cobra.Command{
	Use:   "score <manifest>",
	Short: "Evaluate every model in a manifest and print NDJSON reports",
	Long: `Score reads a manifest with one artifact group per line in the form
code_link,dataset_link,model_link (fields optional), evaluates the metrics
named in the task list concurrently for each model and prints one JSON
record per model to stdout, in manifest order.`,
	Args: cobra.ExactArgs(1),
	RunE: runScore,
}

func init() {
	f := scoreCmd.Flags()
	f.StringVar(&scoreFlags.tasks, "tasks", "tasks.txt", "Path to the task list (one metric name per line)")
	f.StringVar(&scoreFlags.scorecard, "scorecard", "", "Path to net-score weights YAML (empty = built-in defaults)")
	f.StringVar(&scoreFlags.downloadDir, "download-dir", "", "Directory for downloaded model files (default: per-run temp dir)")
	f.IntVar(&scoreFlags.parallel, "parallel", 0, "Max concurrent metrics per model (0 = all at once)")
	f.DurationVar(&scoreFlags.metricTimeout, "metric-timeout", 30*time.Second, "Deadline for a single metric (0 = none)")
	f.BoolVar(&scoreFlags.skipTokenCheck, "skip-token-check", false, "Skip the GitHub token validation call")
}

func runScore(cmd *cobra.Command, args []string) error {
	cfg, err := config.FromEnv(os.Getenv)
	if err != nil {
		return err
	}

	logging.Init(logging.LevelFromVerbosity(cfg.Verbosity), "text")
	logger := logging.New("score")

	if !scoreFlags.skipTokenCheck {
		if err := ghapi.New("").ValidateToken(cmd.Context(), cfg.GitHubToken); err != nil {
			return fmt.Errorf("GitHub token check failed: %w", err)
		}
	}

	groups, err := manifest.ParseFile(args[0])
	if err != nil {
		return err
	}
	logger.Info("manifest parsed", "path", args[0], "groups", len(groups))

	reg := metric.Builtin()
	tasks, err := metric.LoadTaskList(scoreFlags.tasks, reg)
	if err != nil {
		return err
	}

	card, err := metric.LoadScorecard(scoreFlags.scorecard)
	if err != nil {
		return err
	}

	sink, err := logging.NewSink(cfg.LogFile)
	if err != nil {
		return err
	}
	defer sink.Close()

	downloadDir := scoreFlags.downloadDir
	if downloadDir == "" {
		downloadDir = filepath.Join(os.TempDir(), fmt.Sprintf("modelscore-%d", os.Getpid()))
		defer os.RemoveAll(downloadDir)
	}

	source, err := hfapi.New(hfapi.WithToken(cfg.HFToken), hfapi.WithLogger(logging.New("hfapi")))
	if err != nil {
		return err
	}

	p := &pipeline.Pipeline{
		Source:      source,
		Registry:    reg,
		Tasks:       tasks,
		Scorecard:   card,
		Sink:        sink,
		Out:         report.NewWriter(os.Stdout),
		Verbosity:   cfg.Verbosity,
		DownloadDir: downloadDir,
		Runner: runner.Config{
			MetricTimeout: scoreFlags.metricTimeout,
			Parallel:      scoreFlags.parallel,
		},
	}
	return p.Process(cmd.Context(), groups)
}
