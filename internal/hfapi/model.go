package hfapi

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// ModelInfo is the subset of repo metadata the scoring pipeline reads.
// Tags carry the license as a "license:<id>" entry.
type ModelInfo struct {
	ID   string   `json:"id"`
	Tags []string `json:"tags"`
}

// FileInfo is one entry of a repository file tree.
type FileInfo struct {
	Type string `json:"type"`
	Path string `json:"path"`
	Size int64  `json:"size"`
}

// ModelInfo fetches repo metadata, caching by namespace/repo/revision.
func (c *Client) ModelInfo(ctx context.Context, namespace, repo, rev string) (*ModelInfo, error) {
	if err := validateRef(namespace, repo, rev); err != nil {
		return nil, err
	}
	key := namespace + "/" + repo + "@" + rev
	if info, ok := c.infoCache.Get(key); ok {
		c.logger.DebugContext(ctx, "model info cache hit", "repo", key)
		return info, nil
	}

	u := fmt.Sprintf("%s/api/models/%s/%s", c.baseURL, namespace, repo)
	var info ModelInfo
	if err := c.doJSON(ctx, u, "model info", &info); err != nil {
		return nil, err
	}
	c.infoCache.Add(key, &info)
	return &info, nil
}

// License returns the license identifier from the repo tags, or "" when
// the repo declares none.
func (c *Client) License(ctx context.Context, namespace, repo, rev string) (string, error) {
	info, err := c.ModelInfo(ctx, namespace, repo, rev)
	if err != nil {
		return "", err
	}
	for _, tag := range info.Tags {
		if lic, ok := strings.CutPrefix(tag, "license:"); ok {
			return lic, nil
		}
	}
	return "", nil
}

// ListFiles returns the file entries of the repo tree at rev, directories
// excluded.
func (c *Client) ListFiles(ctx context.Context, namespace, repo, rev string) ([]FileInfo, error) {
	if err := validateRef(namespace, repo, rev); err != nil {
		return nil, err
	}
	u := fmt.Sprintf("%s/api/models/%s/%s/tree/%s?recursive=true", c.baseURL, namespace, repo, url.PathEscape(rev))
	var entries []FileInfo
	if err := c.doJSON(ctx, u, "list files", &entries); err != nil {
		return nil, err
	}
	files := entries[:0]
	for _, e := range entries {
		if e.Type == "file" {
			files = append(files, e)
		}
	}
	return files, nil
}

// ModelSize sums the sizes of every file in the repo tree.
func (c *Client) ModelSize(ctx context.Context, namespace, repo, rev string) (int64, error) {
	files, err := c.ListFiles(ctx, namespace, repo, rev)
	if err != nil {
		return 0, err
	}
	var total int64
	for _, f := range files {
		total += f.Size
	}
	return total, nil
}

// DownloadFile fetches one raw file from the repo at rev into destDir and
// returns the local path. Missing files are reported as *APIError with
// IsNotFound true.
func (c *Client) DownloadFile(ctx context.Context, namespace, repo, rev, filename, destDir string) (string, error) {
	if err := validateRef(namespace, repo, rev); err != nil {
		return "", err
	}
	u := fmt.Sprintf("%s/%s/%s/resolve/%s/%s", c.baseURL, namespace, repo, url.PathEscape(rev), filename)
	resp, err := c.do(ctx, u, "download file")
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return "", fmt.Errorf("download file: create dest dir: %w", err)
	}
	dest := filepath.Join(destDir, filepath.Base(filename))
	out, err := os.Create(dest)
	if err != nil {
		return "", fmt.Errorf("download file: create %s: %w", dest, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, resp.Body); err != nil {
		return "", fmt.Errorf("download file: write %s: %w", dest, err)
	}
	return dest, nil
}

func validateRef(namespace, repo, rev string) error {
	if namespace == "" || repo == "" || rev == "" {
		return fmt.Errorf("hfapi: namespace, repo and revision are all required")
	}
	return nil
}
