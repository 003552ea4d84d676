package metric

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"modelscore/internal/logging"
)

func licenseInput(license string, verbosity int, buf *bytes.Buffer) *Input {
	return &Input{
		RepoOwner: "openai-community",
		RepoName:  "gpt2",
		Verbosity: verbosity,
		Log:       logging.NewSinkWriter(buf),
		License:   license,
	}
}

func TestLicense_TierScores(t *testing.T) {
	cases := []struct {
		license string
		want    float64
	}{
		{"mit", 1.0},
		{"apache-2.0", 1.0},
		{"bsd-3-clause", 1.0},
		{"cc0", 1.0},
		{"lgpl-2.1", 0.9},
		{"mpl-2.0", 0.8},
		{"lesser general public license", 0.7},
		{"openrail", 0.7},
		{"gemma", 0.6},
		{"bigscience", 0.6},
		{"gpl-2.0", 0.5},
		{"gplv2", 0.5},
		{"gpl-3.0", 0.3},
		{"agpl", 0.3},
		{"cc-by-nc", 0.2},
		{"research-only", 0.2},
		{"proprietary", 0.0},
		{"all rights reserved", 0.0},
		{"some-novel-license", 0.5},
		{"", 0.5},
	}
	for _, tc := range cases {
		t.Run(tc.license, func(t *testing.T) {
			var buf bytes.Buffer
			res, err := License{}.Evaluate(context.Background(), licenseInput(tc.license, 0, &buf))
			if err != nil {
				t.Fatalf("Evaluate(%q): %v", tc.license, err)
			}
			if res.Score != tc.want {
				t.Errorf("license %q: score = %.2f, want %.2f", tc.license, res.Score, tc.want)
			}
			if res.Latency < 0 {
				t.Errorf("license %q: negative latency %v", tc.license, res.Latency)
			}
		})
	}
}

func TestLicense_CaseInsensitive(t *testing.T) {
	var buf bytes.Buffer
	res, err := License{}.Evaluate(context.Background(), licenseInput("Apache License 2.0", 0, &buf))
	if err != nil {
		t.Fatal(err)
	}
	if res.Score != 1.0 {
		t.Errorf("score = %.2f, want 1.0", res.Score)
	}
}

func TestLicense_VerboseLogging(t *testing.T) {
	var buf bytes.Buffer
	if _, err := (License{}).Evaluate(context.Background(), licenseInput("mit", 1, &buf)); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "license") {
		t.Errorf("expected sink output at verbosity 1, got %q", buf.String())
	}

	buf.Reset()
	if _, err := (License{}).Evaluate(context.Background(), licenseInput("mit", 0, &buf)); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Errorf("expected silent sink at verbosity 0, got %q", buf.String())
	}
}
