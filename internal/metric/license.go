package metric

import (
	"context"
	"strings"
)

// licenseTier is one rung of the compatibility ladder. Tiers are checked
// in order; the first match wins.
type licenseTier struct {
	score   float64
	desc    string
	matches []string
}

// licenseTiers ranks licenses by reuse-friendliness, from highly
// permissive down to proprietary. Unknown licenses land on a neutral 0.5.
var licenseTiers = []licenseTier{
	{1.0, "highly permissive", []string{
		"mit", "apache-2.0", "apache2", "apache license 2.0",
		"bsd-2-clause", "bsd-3-clause", "bsd-2", "bsd-3", "bsd",
		"unlicense", "cc0", "creative commons zero"}},
	{0.9, "lgpl-2.1", []string{"lgpl-2.1", "lgplv2.1"}},
	{0.8, "permissive with conditions", []string{
		"mpl-2.0", "mpl2", "mozilla public license 2.0",
		"eclipse-2.0", "eclipse public license 2.0"}},
	{0.7, "lgpl family", []string{"lgpl", "lgpl-", "lesser general public license"}},
	{0.7, "openrail", []string{"openrail"}},
	{0.6, "modern ml license", []string{"llama2", "gemma", "bigscience", "bigcode"}},
	{0.6, "weak copyleft", []string{"lgpl-3.0", "lgplv3", "epl-1.0", "epl-2.0"}},
	{0.5, "gpl-2.0", []string{"gpl-2.0", "gplv2"}},
	{0.3, "strong copyleft", []string{"gpl-3.0", "gplv3", "gpl", "agpl", "affero gpl"}},
	{0.2, "restricted", []string{
		"non-commercial", "noncommercial", "research-only",
		"research use", "no-derivatives", "cc-by-nc",
		"educational", "academic", "non-profit"}},
	{0.0, "proprietary", []string{
		"proprietary", "closed source", "commercial", "all rights reserved"}},
}

// License scores the declared license by where it sits on the
// compatibility ladder.
type License struct{}

func (License) Name() string { return "license" }

func (License) Evaluate(ctx context.Context, in *Input) (Result, error) {
	return timed(func() (float64, error) {
		text := strings.ToLower(strings.TrimSpace(in.License))
		if text == "" {
			text = "unknown"
		}
		in.Logf(1, "[INFO] license: evaluating %q", text)

		for _, tier := range licenseTiers {
			for _, needle := range tier.matches {
				if strings.Contains(text, needle) {
					in.Logf(1, "[INFO] license: %s -> score %.1f", tier.desc, tier.score)
					return tier.score, nil
				}
			}
		}
		in.Logf(1, "[INFO] license: unknown -> score 0.5")
		return 0.5, nil
	})
}
