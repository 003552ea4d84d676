package metric

import "context"

// RampUpTime estimates how quickly an engineer can start using the model,
// judged entirely from the model card: presence, substance and the usage
// sections a newcomer needs.
type RampUpTime struct{}

func (RampUpTime) Name() string { return "ramp_up_time" }

func (RampUpTime) Evaluate(ctx context.Context, in *Input) (Result, error) {
	return timed(func() (float64, error) {
		text := readme(in)
		if text == "" {
			in.Logf(1, "[INFO] ramp_up_time: no README -> score 0.0")
			return 0.0, nil
		}

		score := 0.2 // a README exists at all
		if len(text) >= 1000 {
			score += 0.2
		}
		if containsAny(text, "## usage", "# usage", "how to use", "quickstart", "quick start", "getting started") {
			score += 0.3
		}
		if containsAny(text, "```") {
			score += 0.2
		}
		if containsAny(text, "install", "pip install", "requirements") {
			score += 0.1
		}

		score = clamp01(score)
		in.Logf(1, "[INFO] ramp_up_time: score %.2f (%d README bytes)", score, len(text))
		return score, nil
	})
}
