// Package runner executes the selected metrics for one artifact group
// concurrently, isolating per-metric failures and reporting the
// wall-clock span of the whole batch.
package runner

import (
	"context"
	"fmt"
	"math"
	"time"

	"golang.org/x/sync/errgroup"

	"modelscore/internal/logging"
	"modelscore/internal/metric"
)

// neutralScore is the fallback recorded for a metric that panics, errors
// or returns an out-of-contract value. Matches the conservative default
// the individual metrics use for their own internal failures.
const neutralScore = 0.5

// Config bounds one evaluation batch.
type Config struct {
	// MetricTimeout cancels a metric's context after the given duration.
	// Zero means no deadline. Metrics that ignore their context still run
	// to completion; the deadline only helps cooperative ones.
	MetricTimeout time.Duration

	// Parallel caps concurrent metric executions. Zero or negative means
	// every selected metric runs at once.
	Parallel int
}

// job pairs a selected metric with its slot in the results slice, so
// collection order is independent of completion order.
type job struct {
	index int
	m     metric.Metric
}

// Run evaluates every metric named in names against the shared read-only
// input. All metrics run concurrently; a failing metric degrades to a
// neutral result and never cancels its siblings. The returned report
// contains exactly one entry per selected name, and the returned duration
// is the wall-clock span of the whole concurrent batch.
func Run(ctx context.Context, names []string, in *metric.Input, reg *metric.Registry, cfg Config) (metric.Report, time.Duration, error) {
	if len(names) == 0 {
		return nil, 0, fmt.Errorf("runner: no metrics selected")
	}

	jobs := make([]job, 0, len(names))
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if seen[name] {
			return nil, 0, fmt.Errorf("runner: metric %q selected twice", name)
		}
		seen[name] = true
		m, ok := reg.Get(name)
		if !ok {
			return nil, 0, fmt.Errorf("runner: unknown metric %q", name)
		}
		jobs = append(jobs, job{index: len(jobs), m: m})
	}

	logger := logging.New("runner")
	logger.Debug("dispatching metric batch",
		"metrics", len(jobs), "repo", in.RepoOwner+"/"+in.RepoName)

	results := make([]metric.Result, len(jobs))
	start := time.Now()

	g, gctx := errgroup.WithContext(ctx)
	if cfg.Parallel > 0 {
		g.SetLimit(cfg.Parallel)
	}
	for _, j := range jobs {
		j := j
		g.Go(func() error {
			results[j.index] = runOne(gctx, j.m, in, cfg.MetricTimeout)
			return nil // failures are captured in the result, never propagated
		})
	}
	_ = g.Wait()

	elapsed := time.Since(start)

	report := make(metric.Report, len(jobs))
	for _, j := range jobs {
		report[j.m.Name()] = results[j.index]
	}
	return report, elapsed, nil
}

// runOne executes a single metric, converting panics, errors and
// out-of-contract return values into the neutral fallback result.
func runOne(ctx context.Context, m metric.Metric, in *metric.Input, timeout time.Duration) (out metric.Result) {
	logger := logging.New("runner")
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			logger.Error("metric panicked", "metric", m.Name(), "panic", r)
			out = metric.Result{Score: neutralScore, Latency: time.Since(start)}
		}
	}()

	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	res, err := m.Evaluate(ctx, in)
	if err != nil {
		logger.Warn("metric failed", "metric", m.Name(), "error", err)
		return metric.Result{Score: neutralScore, Latency: time.Since(start)}
	}
	if bad := contractViolation(res); bad != "" {
		logger.Warn("metric returned out-of-contract value",
			"metric", m.Name(), "violation", bad, "score", res.Score, "latency", res.Latency)
		return metric.Result{Score: neutralScore, Latency: time.Since(start)}
	}
	return res
}

// contractViolation describes how a result breaks the (score, latency)
// contract, or "" when it is valid.
func contractViolation(res metric.Result) string {
	switch {
	case math.IsNaN(res.Score) || math.IsInf(res.Score, 0):
		return "score is not a finite number"
	case res.Score < 0 || res.Score > 1:
		return "score outside [0,1]"
	case res.Latency < 0:
		return "negative latency"
	}
	return ""
}
