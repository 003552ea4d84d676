package manifest

import (
	"fmt"
	"net/url"
	"strings"
)

// DefaultRevision is used when a model URL does not embed a revision.
const DefaultRevision = "main"

// ResolveModelIdentity extracts (namespace, repo, revision) from a model
// hosting URL. The path must have at least two segments; a revision is
// recognized in the /namespace/repo/tree/<rev> form, otherwise it
// defaults to DefaultRevision.
func ResolveModelIdentity(raw string) (Identity, error) {
	parsed, err := url.Parse(raw)
	if err != nil {
		return Identity{}, fmt.Errorf("parse model URL %q: %w", raw, err)
	}
	parts := splitPath(parsed.Path)
	if len(parts) < 2 {
		return Identity{}, fmt.Errorf("invalid model URL %q: need namespace and repo", raw)
	}
	id := Identity{
		Namespace: parts[0],
		Repo:      parts[1],
		Revision:  DefaultRevision,
	}
	if len(parts) >= 4 && parts[2] == "tree" {
		id.Revision = parts[3]
	}
	return id, nil
}

// ResolveDatasetName resolves a dataset URL to the identifier consumed
// downstream. Model-host dataset URLs (huggingface.co/datasets/...) yield
// the trailing path segment; code-host URLs (github.com) are passed
// through verbatim as clone targets. Any other host is unsupported.
func ResolveDatasetName(raw string) (string, error) {
	parsed, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("parse dataset URL %q: %w", raw, err)
	}

	host := parsed.Hostname()
	switch {
	case strings.Contains(host, "huggingface.co"):
		parts := splitPath(parsed.Path)
		if len(parts) < 2 || parts[0] != "datasets" {
			return "", fmt.Errorf("invalid dataset URL %q: expected /datasets/<name>", raw)
		}
		return parts[len(parts)-1], nil
	case strings.Contains(host, "github.com"):
		return raw, nil
	}
	return "", fmt.Errorf("unsupported dataset URL %q: host %q", raw, host)
}

func splitPath(p string) []string {
	trimmed := strings.Trim(p, "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}
