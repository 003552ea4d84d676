package hfapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"testing"
)

func TestModelInfo_ExtractsLicense(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/models/openai-community/gpt2" && r.Method == "GET" {
			json.NewEncoder(w).Encode(ModelInfo{
				ID:   "openai-community/gpt2",
				Tags: []string{"pytorch", "license:mit", "text-generation"},
			})
			return
		}
		http.NotFound(w, r)
	}))
	defer server.Close()

	client, err := New(WithBaseURL(server.URL), WithHTTPClient(server.Client()))
	if err != nil {
		t.Fatal(err)
	}

	lic, err := client.License(context.Background(), "openai-community", "gpt2", "main")
	if err != nil {
		t.Fatalf("License: %v", err)
	}
	if lic != "mit" {
		t.Errorf("license = %q, want %q", lic, "mit")
	}
}

func TestModelInfo_NoLicenseTag(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(ModelInfo{ID: "a/b", Tags: []string{"pytorch"}})
	}))
	defer server.Close()

	client, _ := New(WithBaseURL(server.URL), WithHTTPClient(server.Client()))
	lic, err := client.License(context.Background(), "a", "b", "main")
	if err != nil {
		t.Fatalf("License: %v", err)
	}
	if lic != "" {
		t.Errorf("expected empty license, got %q", lic)
	}
}

func TestModelInfo_CachesByRevision(t *testing.T) {
	var hits atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		json.NewEncoder(w).Encode(ModelInfo{ID: "a/b"})
	}))
	defer server.Close()

	client, _ := New(WithBaseURL(server.URL), WithHTTPClient(server.Client()))
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		if _, err := client.ModelInfo(ctx, "a", "b", "main"); err != nil {
			t.Fatalf("ModelInfo: %v", err)
		}
	}
	if got := hits.Load(); got != 1 {
		t.Errorf("expected 1 upstream hit, got %d", got)
	}

	if _, err := client.ModelInfo(ctx, "a", "b", "v2"); err != nil {
		t.Fatalf("ModelInfo v2: %v", err)
	}
	if got := hits.Load(); got != 2 {
		t.Errorf("different revision must miss the cache: hits = %d", got)
	}
}

func TestModelInfo_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Repository not found", http.StatusNotFound)
	}))
	defer server.Close()

	client, _ := New(WithBaseURL(server.URL), WithHTTPClient(server.Client()))
	_, err := client.ModelInfo(context.Background(), "a", "missing", "main")
	if err == nil {
		t.Fatal("expected error")
	}
	if !IsNotFound(err) {
		t.Errorf("expected IsNotFound, got: %v", err)
	}
}

func TestListFiles_FiltersDirectories(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/models/a/b/tree/main" {
			json.NewEncoder(w).Encode([]FileInfo{
				{Type: "file", Path: "config.json", Size: 512},
				{Type: "directory", Path: "onnx"},
				{Type: "file", Path: "model.safetensors", Size: 1 << 20},
			})
			return
		}
		http.NotFound(w, r)
	}))
	defer server.Close()

	client, _ := New(WithBaseURL(server.URL), WithHTTPClient(server.Client()))
	files, err := client.ListFiles(context.Background(), "a", "b", "main")
	if err != nil {
		t.Fatalf("ListFiles: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("expected 2 files, got %d", len(files))
	}

	size, err := client.ModelSize(context.Background(), "a", "b", "main")
	if err != nil {
		t.Fatalf("ModelSize: %v", err)
	}
	if want := int64(512 + 1<<20); size != want {
		t.Errorf("size = %d, want %d", size, want)
	}
}

func TestDownloadFile(t *testing.T) {
	const readme = "# gpt2\n\nA language model.\n"
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/a/b/resolve/main/README.md" {
			w.Write([]byte(readme))
			return
		}
		http.NotFound(w, r)
	}))
	defer server.Close()

	client, _ := New(WithBaseURL(server.URL), WithHTTPClient(server.Client()))
	dest, err := client.DownloadFile(context.Background(), "a", "b", "main", "README.md", t.TempDir())
	if err != nil {
		t.Fatalf("DownloadFile: %v", err)
	}
	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("read downloaded file: %v", err)
	}
	if string(data) != readme {
		t.Errorf("downloaded content = %q, want %q", data, readme)
	}
}

func TestValidateRef(t *testing.T) {
	client, _ := New()
	if _, err := client.ModelInfo(context.Background(), "", "b", "main"); err == nil {
		t.Error("expected error for empty namespace")
	}
	if _, err := client.ListFiles(context.Background(), "a", "", "main"); err == nil {
		t.Error("expected error for empty repo")
	}
}
