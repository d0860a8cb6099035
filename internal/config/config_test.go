package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	cfg, _, exists, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("expected exists=false for missing file")
	}
	if cfg.Tools.FFmpegBinary != "ffmpeg" {
		t.Fatalf("expected default ffmpeg binary, got %q", cfg.Tools.FFmpegBinary)
	}
	if cfg.Timeouts.ProbeSeconds != defaultProbeSeconds {
		t.Fatalf("expected default probe timeout, got %d", cfg.Timeouts.ProbeSeconds)
	}
}

func TestLoadParsesOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	body := strings.Join([]string{
		"[paths]",
		`output_dir = "` + filepath.Join(dir, "out") + `"`,
		"[tools]",
		`ffmpeg_binary = "/opt/ffmpeg/bin/ffmpeg"`,
		"[timeouts]",
		"fetch_seconds = 10",
		"[logging]",
		`level = "debug"`,
	}, "\n")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, resolved, exists, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("expected config at %q to be used, got %q exists=%v", path, resolved, exists)
	}
	if cfg.Tools.FFmpegBinary != "/opt/ffmpeg/bin/ffmpeg" {
		t.Fatalf("override not applied: %q", cfg.Tools.FFmpegBinary)
	}
	if cfg.Timeouts.FetchSeconds != 10 {
		t.Fatalf("override not applied: %d", cfg.Timeouts.FetchSeconds)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("override not applied: %q", cfg.Logging.Level)
	}
	if cfg.Timeouts.ProbeSeconds != defaultProbeSeconds {
		t.Fatalf("unset value should keep default, got %d", cfg.Timeouts.ProbeSeconds)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	body := "[timeouts]\nfetch_seconds = -1\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, _, err := Load(path); err == nil {
		t.Fatal("expected validation error for negative timeout")
	}
}

func TestValidateRejectsUnknownLogFormat(t *testing.T) {
	cfg := Default()
	if err := cfg.normalize(); err != nil {
		t.Fatal(err)
	}
	cfg.Logging.Format = "xml"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unsupported log format")
	}
}

func TestExpandPathHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}
	expanded, err := expandPath("~/tasks.json")
	if err != nil {
		t.Fatalf("expandPath returned error: %v", err)
	}
	if expanded != filepath.Join(home, "tasks.json") {
		t.Fatalf("expected home expansion, got %q", expanded)
	}
}

func TestSampleConfigParses(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte(SampleConfig()), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, _, err := Load(path); err != nil {
		t.Fatalf("sample config should load cleanly: %v", err)
	}
}
