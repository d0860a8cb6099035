package preflight

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCheckOutputDirWritable(t *testing.T) {
	result := CheckOutputDir(t.TempDir())
	if !result.Passed {
		t.Fatalf("expected writable temp dir to pass, got %#v", result)
	}
}

func TestCheckOutputDirMissing(t *testing.T) {
	result := CheckOutputDir(filepath.Join(t.TempDir(), "absent"))
	if result.Passed {
		t.Fatalf("expected missing dir to fail, got %#v", result)
	}
}

func TestCheckOutputDirNotADirectory(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	result := CheckOutputDir(file)
	if result.Passed {
		t.Fatalf("expected regular file to fail, got %#v", result)
	}
}
