package metric

import "context"

// CodeQuality judges the linked code repository by the signals available
// without cloning it: whether a repo is linked at all and whether the
// model card shows runnable, documented code.
type CodeQuality struct{}

func (CodeQuality) Name() string { return "code_quality" }

func (CodeQuality) Evaluate(ctx context.Context, in *Input) (Result, error) {
	return timed(func() (float64, error) {
		if in.CodeRepo == "" {
			in.Logf(1, "[INFO] code_quality: no code repo linked -> score 0.0")
			return 0.0, nil
		}

		score := 0.4
		text := readme(in)
		if containsAny(text, "```") {
			score += 0.3
		}
		if containsAny(text, "test", "ci", "continuous integration", "lint") {
			score += 0.3
		}

		score = clamp01(score)
		in.Logf(1, "[INFO] code_quality: score %.2f for %s", score, in.CodeRepo)
		return score, nil
	})
}
