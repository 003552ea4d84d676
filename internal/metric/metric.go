// Package metric defines the scoring contract: the read-only input record
// every metric receives, the (score, latency) result every metric must
// produce, and the registry the task list selects from.
package metric

import (
	"context"
	"time"

	"modelscore/internal/logging"
)

// Input is the flattened, read-only record one artifact group presents to
// every metric. It is built fresh per group and must never be mutated by
// a metric implementation; the only shared mutable handle is the Log sink,
// which serializes appends internally.
type Input struct {
	RepoOwner      string
	RepoName       string
	Verbosity      int
	Log            *logging.Sink
	ModelSizeBytes int64
	CodeRepo       string // raw code-host link, empty when the group has none
	DatasetName    string // resolved dataset identifier, empty when absent
	ReadmePath     string // local path of the downloaded README, may be empty
	License        string // license identifier from the hosting API tags
}

// Logf appends a line to the evaluation sink when the input's verbosity
// is at or above level (1 = info, 2 = debug).
func (in *Input) Logf(level int, format string, args ...any) {
	if in.Verbosity >= level {
		in.Log.Put(format, args...)
	}
}

// Result is one metric's outcome for one input: a score in [0,1] and the
// wall-clock latency the metric observed for its own work, network I/O
// included.
type Result struct {
	Score   float64
	Latency time.Duration
}

// Report maps metric name to result for one evaluated artifact.
type Report map[string]Result

// Metric is one independent, pluggable scoring function. Evaluate must
// be safe to run concurrently with other metrics sharing the same Input,
// and must report its own latency.
type Metric interface {
	Name() string
	Evaluate(ctx context.Context, in *Input) (Result, error)
}

// timed wraps a metric body with latency measurement. Latency is
// self-reported rather than imposed so network time is attributed to the
// metric that spent it.
func timed(fn func() (float64, error)) (Result, error) {
	start := time.Now()
	score, err := fn()
	return Result{Score: score, Latency: time.Since(start)}, err
}
