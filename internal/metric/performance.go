package metric

import "context"

// PerformanceClaims checks whether the model card backs up its claims
// with evaluation evidence: benchmark names, metric tables, leaderboard
// references.
type PerformanceClaims struct{}

func (PerformanceClaims) Name() string { return "performance_claims" }

// performanceSignals are counted individually; each one found adds a
// fixed increment so a card citing several benchmarks outranks one that
// name-drops a single score.
var performanceSignals = []string{
	"benchmark", "accuracy", "f1", "bleu", "rouge", "perplexity",
	"leaderboard", "evaluation results", "eval results", "glue", "mmlu",
}

func (PerformanceClaims) Evaluate(ctx context.Context, in *Input) (Result, error) {
	return timed(func() (float64, error) {
		text := readme(in)
		if text == "" {
			in.Logf(1, "[INFO] performance_claims: no README -> score 0.0")
			return 0.0, nil
		}

		found := 0
		for _, signal := range performanceSignals {
			if containsAny(text, signal) {
				found++
			}
		}

		score := clamp01(float64(found) * 0.2)
		in.Logf(1, "[INFO] performance_claims: %d signals -> score %.2f", found, score)
		return score, nil
	})
}
