package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
)

// Sink is an append-only line sink shared by every metric running in one
// concurrent evaluation batch. Appends are serialized so lines from
// concurrent metrics never interleave mid-line.
type Sink struct {
	mu sync.Mutex
	w  io.Writer
	c  io.Closer
}

// NewSink opens (or creates) the log file at path in append mode. The
// parent directory is created if missing.
func NewSink(path string) (*Sink, error) {
	if path == "" {
		return nil, fmt.Errorf("sink: path is required")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("sink: create log dir: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("sink: open log file: %w", err)
	}
	return &Sink{w: f, c: f}, nil
}

// NewSinkWriter wraps an arbitrary writer as a Sink. Used by tests and by
// callers that want evaluation logs on an in-memory buffer.
func NewSinkWriter(w io.Writer) *Sink {
	return &Sink{w: w}
}

// Put appends one formatted line to the sink. A trailing newline is added.
func (s *Sink) Put(format string, args ...any) {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(s.w, format+"\n", args...)
}

// Close closes the underlying file, if any.
func (s *Sink) Close() error {
	if s == nil || s.c == nil {
		return nil
	}
	return s.c.Close()
}
