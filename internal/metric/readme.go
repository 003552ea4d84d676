package metric

import (
	"os"
	"strings"
)

// maxReadmeBytes caps how much of a README any metric inspects. Model
// cards are occasionally enormous.
const maxReadmeBytes = 1 << 20

// readme returns the lower-cased README text for the input, or "" when no
// README was downloaded or it cannot be read. Metrics treat a missing
// README as signal, not as an error.
func readme(in *Input) string {
	if in.ReadmePath == "" {
		return ""
	}
	data, err := os.ReadFile(in.ReadmePath)
	if err != nil {
		in.Logf(1, "[INFO] readme unreadable at %s: %v", in.ReadmePath, err)
		return ""
	}
	if len(data) > maxReadmeBytes {
		data = data[:maxReadmeBytes]
	}
	return strings.ToLower(string(data))
}

// containsAny reports whether text contains at least one of the needles.
func containsAny(text string, needles ...string) bool {
	for _, n := range needles {
		if strings.Contains(text, n) {
			return true
		}
	}
	return false
}

// clamp01 bounds a score to the [0,1] contract.
func clamp01(s float64) float64 {
	if s < 0 {
		return 0
	}
	if s > 1 {
		return 1
	}
	return s
}
