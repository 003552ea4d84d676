package metric

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed scorecard.yaml
var defaultScorecard []byte

// Scorecard holds the per-metric weights used to fold a report into one
// net score.
type Scorecard struct {
	Weights map[string]float64 `yaml:"weights"`
}

// DefaultScorecard returns the embedded weight set.
func DefaultScorecard() *Scorecard {
	card, err := parseScorecard(defaultScorecard)
	if err != nil {
		// The embedded card is validated by tests; failing here means a
		// broken build, not a user error.
		panic(err)
	}
	return card
}

// LoadScorecard reads a weight file from disk. An empty path returns the
// embedded default.
func LoadScorecard(path string) (*Scorecard, error) {
	if path == "" {
		return DefaultScorecard(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scorecard: %w", err)
	}
	card, err := parseScorecard(data)
	if err != nil {
		return nil, fmt.Errorf("scorecard %s: %w", path, err)
	}
	return card, nil
}

func parseScorecard(data []byte) (*Scorecard, error) {
	var card Scorecard
	if err := yaml.Unmarshal(data, &card); err != nil {
		return nil, fmt.Errorf("parse scorecard: %w", err)
	}
	if len(card.Weights) == 0 {
		return nil, fmt.Errorf("scorecard has no weights")
	}
	for name, w := range card.Weights {
		if w < 0 {
			return nil, fmt.Errorf("scorecard weight for %q is negative", name)
		}
	}
	return &card, nil
}

// NetScore folds a report into one weighted score. Only metrics present
// in both the report and the weight set contribute; their weights are
// renormalized so a partial task list still yields a [0,1] score.
func (c *Scorecard) NetScore(rep Report) float64 {
	var sum, total float64
	for name, weight := range c.Weights {
		res, ok := rep[name]
		if !ok {
			continue
		}
		sum += weight * res.Score
		total += weight
	}
	if total == 0 {
		return 0
	}
	return clamp01(sum / total)
}
