package metric

import (
	"context"
	"math"
)

// Size thresholds for deployability scoring. Anything at or under
// sizeFullScore deploys anywhere and scores 1.0; the score decays
// logarithmically to 0.0 at sizeZeroScore and beyond.
const (
	sizeFullScore = int64(100) << 20 // 100 MiB
	sizeZeroScore = int64(50) << 30  // 50 GiB
)

// SizeScore scores how deployable the model is given its total on-disk
// size across the repository file tree.
type SizeScore struct{}

func (SizeScore) Name() string { return "size_score" }

func (SizeScore) Evaluate(ctx context.Context, in *Input) (Result, error) {
	return timed(func() (float64, error) {
		size := in.ModelSizeBytes
		in.Logf(1, "[INFO] size_score: model size %d bytes", size)

		var score float64
		switch {
		case size <= 0:
			// Unknown size: neither reward nor punish.
			score = 0.5
		case size <= sizeFullScore:
			score = 1.0
		case size >= sizeZeroScore:
			score = 0.0
		default:
			// Log-linear interpolation between the two thresholds.
			span := math.Log(float64(sizeZeroScore)) - math.Log(float64(sizeFullScore))
			score = 1.0 - (math.Log(float64(size))-math.Log(float64(sizeFullScore)))/span
		}
		score = clamp01(score)
		in.Logf(1, "[INFO] size_score: score %.2f", score)
		return score, nil
	})
}
