package metric

import "context"

// DatasetAndCode checks whether the artifact group links both its
// training dataset and its code repository: half the score for each.
type DatasetAndCode struct{}

func (DatasetAndCode) Name() string { return "dataset_and_code" }

func (DatasetAndCode) Evaluate(ctx context.Context, in *Input) (Result, error) {
	return timed(func() (float64, error) {
		score := 0.0
		if in.DatasetName != "" {
			score += 0.5
		}
		if in.CodeRepo != "" {
			score += 0.5
		}
		in.Logf(1, "[INFO] dataset_and_code: dataset=%t code=%t -> score %.1f",
			in.DatasetName != "", in.CodeRepo != "", score)
		return score, nil
	})
}
