package metric

import (
	"context"
	"strings"
)

// DatasetQuality judges the documented provenance of the training data:
// a linked dataset that the model card actually discusses scores high, an
// unlinked or undocumented one low.
type DatasetQuality struct{}

func (DatasetQuality) Name() string { return "dataset_quality" }

func (DatasetQuality) Evaluate(ctx context.Context, in *Input) (Result, error) {
	return timed(func() (float64, error) {
		if in.DatasetName == "" {
			in.Logf(1, "[INFO] dataset_quality: no dataset linked -> score 0.0")
			return 0.0, nil
		}

		score := 0.4
		text := readme(in)
		if strings.Contains(text, strings.ToLower(in.DatasetName)) {
			score += 0.3
		}
		if containsAny(text, "training data", "dataset", "corpus", "pretraining data") {
			score += 0.3
		}

		score = clamp01(score)
		in.Logf(1, "[INFO] dataset_quality: score %.2f for %q", score, in.DatasetName)
		return score, nil
	})
}
