// Package config builds the run configuration once at startup. Nothing
// below the command layer reads the process environment; the core only
// ever sees this struct.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"modelscore/internal/logging"
)

// Env var names the CLI honors, mirroring the grading harness contract.
const (
	EnvLogLevel    = "LOG_LEVEL"
	EnvLogFile     = "LOG_FILE"
	EnvGitHubToken = "GITHUB_TOKEN"
	EnvHFToken     = "HF_TOKEN"
)

// Config is the immutable run configuration.
type Config struct {
	Verbosity   int    // 0 silent, 1 info, 2 debug
	LogFile     string // evaluation sink path
	GitHubToken string // validated before any evaluation starts
	HFToken     string // optional, for gated model repos
}

// FromEnv builds a Config from an environment lookup (normally
// os.Getenv). LOG_LEVEL and LOG_FILE are mandatory; a missing or invalid
// value stops the run before any work happens.
func FromEnv(getenv func(string) string) (*Config, error) {
	verbosity, err := logging.ParseVerbosity(getenv(EnvLogLevel))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", EnvLogLevel, err)
	}

	logFile := getenv(EnvLogFile)
	if err := validateLogPath(logFile); err != nil {
		return nil, fmt.Errorf("%s: %w", EnvLogFile, err)
	}

	githubToken := getenv(EnvGitHubToken)
	if githubToken == "" {
		return nil, fmt.Errorf("%s is not set", EnvGitHubToken)
	}

	return &Config{
		Verbosity:   verbosity,
		LogFile:     logFile,
		GitHubToken: githubToken,
		HFToken:     getenv(EnvHFToken),
	}, nil
}

// validateLogPath ensures the log file's directory exists (creating it if
// needed) and is writable.
func validateLogPath(path string) error {
	if path == "" {
		return fmt.Errorf("log file path is not set")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve log path: %w", err)
	}
	dir := filepath.Dir(abs)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create log directory %s: %w", dir, err)
	}
	probe, err := os.CreateTemp(dir, ".writecheck-*")
	if err != nil {
		return fmt.Errorf("log directory %s is not writable: %w", dir, err)
	}
	probe.Close()
	os.Remove(probe.Name())
	return nil
}
