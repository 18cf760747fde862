package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadDefaultsWithoutFile(t *testing.T) {
	cfg, _, exists, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatal(err)
	}
	if exists {
		t.Fatal("expected missing config file")
	}
	if cfg.Output.Format != "mp3" {
		t.Errorf("default format = %q, want mp3", cfg.Output.Format)
	}
	if cfg.Output.Quality != "medium" {
		t.Errorf("default quality = %q, want medium", cfg.Output.Quality)
	}
	if cfg.Cleanup.DeleteOriginals != DeleteNever {
		t.Errorf("default delete mode = %q, want never", cfg.Cleanup.DeleteOriginals)
	}
	if !filepath.IsAbs(cfg.Paths.BaseDirectory) {
		t.Errorf("base directory should be absolute, got %q", cfg.Paths.BaseDirectory)
	}
	if cfg.Paths.OutputDir != cfg.Paths.BaseDirectory {
		t.Errorf("output dir should default to base directory, got %q", cfg.Paths.OutputDir)
	}
}

func TestLoadReadsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[paths]
base_directory = "` + dir + `"

[output]
format = "ogg"
quality = "high"

[cleanup]
delete_originals = "prompt"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, resolved, exists, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if !exists || resolved == "" {
		t.Fatal("expected config file to resolve")
	}
	if cfg.Output.Format != "ogg" || cfg.Output.Quality != "high" {
		t.Errorf("unexpected output config: %+v", cfg.Output)
	}
	if cfg.Cleanup.DeleteOriginals != DeletePrompt {
		t.Errorf("delete mode = %q, want prompt", cfg.Cleanup.DeleteOriginals)
	}
	if cfg.Paths.OutputDir != cfg.Paths.BaseDirectory {
		t.Errorf("output dir should fall back to base directory")
	}
}

func TestLoadRejectsBadFormat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("[output]\nformat = \"flac\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, _, _, err := Load(path)
	if err == nil {
		t.Fatal("expected validation error for flac")
	}
	if !strings.Contains(err.Error(), "output.format") {
		t.Errorf("error should name the field, got %v", err)
	}
}

func TestValidateRejectsBadDeleteMode(t *testing.T) {
	cfg := Default()
	cfg.Cleanup.DeleteOriginals = "sometimes"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestExpandPathTilde(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	got, err := ExpandPath("~/recordings")
	if err != nil {
		t.Fatal(err)
	}
	if got != filepath.Join(home, "recordings") {
		t.Errorf("ExpandPath = %q", got)
	}
}

func TestCreateSampleRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := CreateSample(path); err != nil {
		t.Fatal(err)
	}
	cfg, _, exists, err := Load(path)
	if err != nil {
		t.Fatalf("sample config should load cleanly: %v", err)
	}
	if !exists {
		t.Fatal("sample config should exist")
	}
	if cfg.Output.Format != "mp3" {
		t.Errorf("sample format = %q, want mp3", cfg.Output.Format)
	}
}
