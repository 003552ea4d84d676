package metric

import (
	"context"
	"strings"
)

// BusFactor estimates how resilient the artifact is to its maintainers
// walking away: organization-owned repos with a linked code base and a
// maintained model card score higher than one-off uploads.
type BusFactor struct{}

func (BusFactor) Name() string { return "bus_factor" }

func (BusFactor) Evaluate(ctx context.Context, in *Input) (Result, error) {
	return timed(func() (float64, error) {
		score := 0.1

		// Organization namespaces ("openai-community", "google") signal a
		// team behind the model rather than a single account.
		owner := strings.ToLower(in.RepoOwner)
		if strings.Contains(owner, "-") || containsAny(owner,
			"community", "research", "lab", "team", "ai", "nlp") {
			score += 0.3
		}
		if in.CodeRepo != "" {
			score += 0.3
		}

		text := readme(in)
		if containsAny(text, "contributors", "maintainers", "team", "citation", "cite") {
			score += 0.3
		}

		score = clamp01(score)
		in.Logf(1, "[INFO] bus_factor: score %.2f for %s/%s", score, in.RepoOwner, in.RepoName)
		return score, nil
	})
}
