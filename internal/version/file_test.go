package version

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestBumpFileSeedsMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "VERSION")

	old, next, err := BumpFile(path)
	if err != nil {
		t.Fatalf("BumpFile: %v", err)
	}
	if old != Seed {
		t.Fatalf("old = %q, want seed %q", old, Seed)
	}
	if next != "1.0.1" {
		t.Fatalf("next = %q, want %q", next, "1.0.1")
	}

	current, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if current != "1.0.1" {
		t.Fatalf("stored version = %q, want %q", current, "1.0.1")
	}
}

func TestBumpFileKeepsHistory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "VERSION")
	if err := os.WriteFile(path, []byte("2.0.9\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, _, err := BumpFile(path); err != nil {
		t.Fatalf("first bump: %v", err)
	}
	if _, next, err := BumpFile(path); err != nil {
		t.Fatalf("second bump: %v", err)
	} else if next != "2.0.11" {
		t.Fatalf("next = %q, want %q", next, "2.0.11")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected current + 2 history lines, got %d: %q", len(lines), lines)
	}
	if lines[0] != "2.0.11" {
		t.Fatalf("current line = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "2.0.10\t") {
		t.Fatalf("newest history line = %q", lines[1])
	}
	if !strings.HasPrefix(lines[2], "2.0.9\t") {
		t.Fatalf("oldest history line = %q", lines[2])
	}
}

func TestBumpFileRejectsMalformedWithoutWriting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "VERSION")
	original := "not-a-version\n"
	if err := os.WriteFile(path, []byte(original), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, _, err := BumpFile(path); err == nil {
		t.Fatal("expected error for malformed version")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != original {
		t.Fatalf("file was modified on error: %q", data)
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "VERSION")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
