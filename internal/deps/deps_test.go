package deps

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCheckBinariesFindsExecutable(t *testing.T) {
	dir := t.TempDir()
	bin := filepath.Join(dir, "fake-ffmpeg")
	if err := os.WriteFile(bin, []byte("#!/bin/sh\nexit 0\n"), 0o755); err != nil {
		t.Fatal(err)
	}

	statuses := CheckBinaries([]Requirement{{Name: "FFmpeg", Command: bin}})
	if len(statuses) != 1 || !statuses[0].Available {
		t.Fatalf("expected available status, got %#v", statuses)
	}
}

func TestCheckBinariesMissing(t *testing.T) {
	statuses := CheckBinaries([]Requirement{
		{Name: "FFmpeg", Command: filepath.Join(t.TempDir(), "absent")},
		{Name: "Empty", Command: "   "},
	})
	if statuses[0].Available || statuses[0].Detail == "" {
		t.Fatalf("expected missing binary detail, got %#v", statuses[0])
	}
	if statuses[1].Available || statuses[1].Detail != "command not configured" {
		t.Fatalf("expected unconfigured detail, got %#v", statuses[1])
	}
}

func TestMissingRequiredSkipsOptional(t *testing.T) {
	statuses := []Status{
		{Name: "FFmpeg", Available: false},
		{Name: "FFprobe", Available: false, Optional: true},
		{Name: "Other", Available: true},
	}
	missing := MissingRequired(statuses)
	if len(missing) != 1 || missing[0] != "FFmpeg" {
		t.Fatalf("expected only FFmpeg missing, got %v", missing)
	}
}

func TestRequirementsMarkFFprobeOptional(t *testing.T) {
	reqs := Requirements("ffmpeg", "ffprobe")
	if len(reqs) != 2 {
		t.Fatalf("expected 2 requirements, got %d", len(reqs))
	}
	if reqs[0].Optional {
		t.Fatal("ffmpeg must be required")
	}
	if !reqs[1].Optional {
		t.Fatal("ffprobe must be optional")
	}
}
