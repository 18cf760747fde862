// Package testsupport provides shared helpers for package tests.
package testsupport

import (
	"path/filepath"
	"testing"

	"craigmix/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.BaseDirectory = base
	cfg.Paths.OutputDir = filepath.Join(base, "out")

	for _, opt := range opts {
		opt(&cfg)
	}

	return &cfg
}

// WithFormat overrides the output format on the test config.
func WithFormat(format string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Output.Format = format
	}
}

// WithQuality overrides the output quality on the test config.
func WithQuality(quality string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Output.Quality = quality
	}
}

// WithDeleteMode overrides the delete-originals policy on the test config.
func WithDeleteMode(mode string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Cleanup.DeleteOriginals = mode
	}
}
