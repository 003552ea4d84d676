package manifest

import (
	"strings"
	"testing"
)

func TestResolveModelIdentity(t *testing.T) {
	cases := []struct {
		name string
		url  string
		want Identity
	}{
		{
			name: "plain model url",
			url:  "https://huggingface.co/openai-community/gpt2",
			want: Identity{Namespace: "openai-community", Repo: "gpt2", Revision: "main"},
		},
		{
			name: "revision via tree segment",
			url:  "https://huggingface.co/google/gemma-3-270m/tree/v2",
			want: Identity{Namespace: "google", Repo: "gemma-3-270m", Revision: "v2"},
		},
		{
			name: "tree without revision keeps default",
			url:  "https://huggingface.co/ns/repo/tree",
			want: Identity{Namespace: "ns", Repo: "repo", Revision: "main"},
		},
		{
			name: "extra segments after revision",
			url:  "https://huggingface.co/ns/repo/tree/dev/config.json",
			want: Identity{Namespace: "ns", Repo: "repo", Revision: "dev"},
		},
		{
			name: "trailing slash",
			url:  "https://huggingface.co/ns/repo/",
			want: Identity{Namespace: "ns", Repo: "repo", Revision: "main"},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ResolveModelIdentity(tc.url)
			if err != nil {
				t.Fatalf("ResolveModelIdentity(%q): %v", tc.url, err)
			}
			if got != tc.want {
				t.Errorf("ResolveModelIdentity(%q) = %+v, want %+v", tc.url, got, tc.want)
			}
		})
	}
}

func TestResolveModelIdentity_TooFewSegments(t *testing.T) {
	for _, url := range []string{
		"https://huggingface.co/onlyonesegment",
		"https://huggingface.co/",
		"https://huggingface.co",
	} {
		if _, err := ResolveModelIdentity(url); err == nil {
			t.Errorf("ResolveModelIdentity(%q): expected format error", url)
		}
	}
}

func TestResolveDatasetName(t *testing.T) {
	cases := []struct {
		name string
		url  string
		want string
	}{
		{
			name: "model host dataset yields trailing segment",
			url:  "https://huggingface.co/datasets/stanfordnlp/imdb",
			want: "imdb",
		},
		{
			name: "model host dataset without org",
			url:  "https://huggingface.co/datasets/glue",
			want: "glue",
		},
		{
			name: "code host passes through verbatim",
			url:  "https://github.com/zalandoresearch/fashion-mnist",
			want: "https://github.com/zalandoresearch/fashion-mnist",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ResolveDatasetName(tc.url)
			if err != nil {
				t.Fatalf("ResolveDatasetName(%q): %v", tc.url, err)
			}
			if got != tc.want {
				t.Errorf("ResolveDatasetName(%q) = %q, want %q", tc.url, got, tc.want)
			}
		})
	}
}

func TestResolveDatasetName_Errors(t *testing.T) {
	cases := []struct {
		url     string
		wantMsg string
	}{
		{"https://huggingface.co/stanfordnlp/imdb", "expected /datasets/"},
		{"https://huggingface.co/datasets", "expected /datasets/"},
		{"https://gitlab.com/some/dataset", "unsupported dataset URL"},
	}
	for _, tc := range cases {
		_, err := ResolveDatasetName(tc.url)
		if err == nil {
			t.Errorf("ResolveDatasetName(%q): expected error", tc.url)
			continue
		}
		if !strings.Contains(err.Error(), tc.wantMsg) {
			t.Errorf("ResolveDatasetName(%q) error %q does not mention %q", tc.url, err, tc.wantMsg)
		}
	}
}
