// Package pipeline walks the parsed manifest group by group: it builds
// the per-group input record from the hosting API, hands it to the
// concurrent metric batch and streams one report record per model.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"modelscore/internal/logging"
	"modelscore/internal/manifest"
	"modelscore/internal/metric"
	"modelscore/internal/report"
	"modelscore/internal/runner"
)

// ModelSource is the narrow collaborator surface the pipeline needs from
// the model-hosting API.
type ModelSource interface {
	ModelSize(ctx context.Context, namespace, repo, rev string) (int64, error)
	License(ctx context.Context, namespace, repo, rev string) (string, error)
	DownloadFile(ctx context.Context, namespace, repo, rev, filename, destDir string) (string, error)
}

// Pipeline evaluates artifact groups sequentially, in manifest order.
// Within one group all selected metrics run concurrently.
type Pipeline struct {
	Source      ModelSource
	Registry    *metric.Registry
	Tasks       []string
	Scorecard   *metric.Scorecard
	Sink        *logging.Sink
	Out         *report.Writer
	Verbosity   int
	DownloadDir string
	Runner      runner.Config
}

// Process evaluates every model-bearing group and writes one record per
// group, preserving manifest order. Groups without a model are skipped.
// Collaborator fetch failures degrade the affected input fields to their
// zero values instead of aborting the batch; only configuration and
// output errors stop the run.
func (p *Pipeline) Process(ctx context.Context, groups []manifest.Group) error {
	logger := logging.New("pipeline")

	for i, group := range groups {
		if group.Model == nil {
			logger.Debug("skipping group with no model", "line", i+1)
			continue
		}

		in := p.buildInput(ctx, group, logger)

		rep, elapsed, err := runner.Run(ctx, p.Tasks, in, p.Registry, p.Runner)
		if err != nil {
			return fmt.Errorf("evaluate %s: %w", group.Model.Identity.Repo, err)
		}

		rec := report.Build(group.Model.Identity.Repo, "model", rep, p.Scorecard.NetScore(rep), elapsed)
		if err := p.Out.Write(rec); err != nil {
			return err
		}
		logger.Info("group evaluated",
			"repo", group.Model.Identity.Repo, "metrics", len(rep), "elapsed", elapsed.Round(time.Millisecond))
	}
	return nil
}

// buildInput assembles the read-only record one group presents to every
// metric. Each hosting-API failure is logged and leaves its field zero.
func (p *Pipeline) buildInput(ctx context.Context, group manifest.Group, logger *slog.Logger) *metric.Input {
	id := group.Model.Identity

	in := &metric.Input{
		RepoOwner: id.Namespace,
		RepoName:  id.Repo,
		Verbosity: p.Verbosity,
		Log:       p.Sink,
	}
	if group.Code != nil {
		in.CodeRepo = group.Code.Link
	}
	if group.Dataset != nil {
		in.DatasetName = group.Dataset.Name
	}

	size, err := p.Source.ModelSize(ctx, id.Namespace, id.Repo, id.Revision)
	if err != nil {
		logger.Warn("model size unavailable", "repo", id.Repo, "error", err)
	} else {
		in.ModelSizeBytes = size
	}

	license, err := p.Source.License(ctx, id.Namespace, id.Repo, id.Revision)
	if err != nil {
		logger.Warn("license unavailable", "repo", id.Repo, "error", err)
	} else {
		in.License = license
	}

	readmePath, err := p.Source.DownloadFile(ctx, id.Namespace, id.Repo, id.Revision, "README.md", p.DownloadDir)
	if err != nil {
		logger.Warn("README unavailable", "repo", id.Repo, "error", err)
	} else {
		in.ReadmePath = readmePath
	}

	return in
}
