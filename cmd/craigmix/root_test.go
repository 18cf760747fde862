package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"craigmix/internal/config"
	"craigmix/internal/merge"
	"craigmix/internal/scanner"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCommand()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func requireContains(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Fatalf("expected output to contain %q, got:\n%s", needle, haystack)
	}
}

func TestConfigInitWritesSample(t *testing.T) {
	target := filepath.Join(t.TempDir(), "config.toml")

	out, err := runCLI(t, "config", "init", "--path", target)
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "Wrote sample configuration")

	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected config file at %s: %v", target, err)
	}

	out, err = runCLI(t, "config", "init", "--path", target)
	if err == nil {
		t.Fatalf("expected error when target exists, got output:\n%s", out)
	}

	if _, err := runCLI(t, "config", "init", "--path", target, "--overwrite"); err != nil {
		t.Fatalf("config init --overwrite: %v", err)
	}
}

func TestConfigShowPrintsEffectiveConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	contents := "[output]\nformat = \"ogg\"\nquality = \"high\"\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	out, err := runCLI(t, "--config", path, "config", "show")
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	requireContains(t, out, path)
	requireContains(t, out, "format = 'ogg'")
	requireContains(t, out, "quality = 'high'")
}

func TestApplyFlagOverrides(t *testing.T) {
	base := t.TempDir()
	cmd := newRootCommand()
	if err := cmd.ParseFlags([]string{"-d", base, "--format", "wav", "--delete-originals=always"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}

	cfg := config.Default()
	err := applyFlagOverrides(cmd, &cfg, flagOverrides{
		directory: base,
		format:    "wav",
		delete:    "always",
	})
	if err != nil {
		t.Fatalf("apply overrides: %v", err)
	}

	if cfg.Paths.BaseDirectory != base {
		t.Fatalf("expected base %s, got %s", base, cfg.Paths.BaseDirectory)
	}
	if cfg.Paths.OutputDir != base {
		t.Fatalf("expected output dir to track base, got %s", cfg.Paths.OutputDir)
	}
	if cfg.Output.Format != "wav" {
		t.Fatalf("expected format wav, got %s", cfg.Output.Format)
	}
	if cfg.Cleanup.DeleteOriginals != config.DeleteAlways {
		t.Fatalf("expected delete mode always, got %s", cfg.Cleanup.DeleteOriginals)
	}
}

func TestApplyFlagOverridesKeepsExplicitOutputDir(t *testing.T) {
	base := t.TempDir()
	outDir := t.TempDir()
	cmd := newRootCommand()
	if err := cmd.ParseFlags([]string{"-d", base, "--output-dir", outDir}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}

	cfg := config.Default()
	err := applyFlagOverrides(cmd, &cfg, flagOverrides{directory: base, outputDir: outDir})
	if err != nil {
		t.Fatalf("apply overrides: %v", err)
	}
	if cfg.Paths.OutputDir != outDir {
		t.Fatalf("expected output dir %s, got %s", outDir, cfg.Paths.OutputDir)
	}
}

func TestApplyFlagOverridesRejectsBadFormat(t *testing.T) {
	cmd := newRootCommand()
	if err := cmd.ParseFlags([]string{"--format", "flac"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}

	cfg := config.Default()
	if err := applyFlagOverrides(cmd, &cfg, flagOverrides{format: "flac"}); err == nil {
		t.Fatal("expected invalid format to be rejected")
	}
}

func TestDeleteOriginalsFlagDefaultsToPrompt(t *testing.T) {
	cmd := newRootCommand()
	if err := cmd.ParseFlags([]string{"--delete-originals"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	value, err := cmd.Flags().GetString("delete-originals")
	if err != nil {
		t.Fatalf("get flag: %v", err)
	}
	if value != config.DeletePrompt {
		t.Fatalf("expected bare flag to mean prompt, got %q", value)
	}
}

func TestRenderDryRun(t *testing.T) {
	cmd := &cobra.Command{}
	var buf bytes.Buffer
	cmd.SetOut(&buf)

	renderDryRun(cmd, []merge.FolderPlan{
		{
			Folder:     scanner.Folder{Name: "craig-standup", Path: "/tmp/craig-standup"},
			FileCount:  3,
			OutputName: "merged_standup_20240101_120000.mp3",
		},
	})

	out := buf.String()
	requireContains(t, out, "craig-standup")
	requireContains(t, out, "merged_standup_20240101_120000.mp3")
	requireContains(t, out, "1 folder(s) would be processed")
}

func TestRenderDryRunEmpty(t *testing.T) {
	cmd := &cobra.Command{}
	var buf bytes.Buffer
	cmd.SetOut(&buf)

	renderDryRun(cmd, nil)
	requireContains(t, buf.String(), "No Craig folders found")
}

func TestRenderSummary(t *testing.T) {
	cmd := &cobra.Command{}
	var buf bytes.Buffer
	cmd.SetOut(&buf)

	summary := &merge.Summary{}
	summary.Results = []merge.Result{
		{Folder: scanner.Folder{Name: "craig-one"}, OutputPath: "/out/merged_one.mp3"},
		{Folder: scanner.Folder{Name: "craig-two"}, Err: os.ErrPermission},
	}
	summary.Succeeded = 1
	summary.Failed = 1

	renderSummary(cmd, summary)
	out := buf.String()
	requireContains(t, out, "craig-one")
	requireContains(t, out, "/out/merged_one.mp3")
	requireContains(t, out, "failed")
	requireContains(t, out, "Processed 2 folder(s): 1 succeeded, 1 failed")
}

func TestStdinConfirmer(t *testing.T) {
	var out bytes.Buffer

	noTTY := &stdinConfirmer{in: strings.NewReader("y\n"), out: &out, tty: false}
	if noTTY.Confirm("delete files?") {
		t.Fatal("expected non-TTY confirmer to refuse")
	}

	yes := &stdinConfirmer{in: strings.NewReader("Y\n"), out: &out, tty: true}
	if !yes.Confirm("delete files?") {
		t.Fatal("expected y to confirm")
	}

	no := &stdinConfirmer{in: strings.NewReader("nah\n"), out: &out, tty: true}
	if no.Confirm("delete files?") {
		t.Fatal("expected non-yes answer to refuse")
	}
}
