package main

import (
	"path/filepath"
	"testing"
)

func TestVersionBumpSeedsAndIncrements(t *testing.T) {
	file := filepath.Join(t.TempDir(), "VERSION")

	out, _, err := runCLI(t, "version", "bump", "--file", file)
	if err != nil {
		t.Fatalf("first bump: %v", err)
	}
	requireContains(t, out, "1.0.0 -> 1.0.1")

	out, _, err = runCLI(t, "version", "bump", "--file", file)
	if err != nil {
		t.Fatalf("second bump: %v", err)
	}
	requireContains(t, out, "1.0.1 -> 1.0.2")

	out, _, err = runCLI(t, "version", "show", "--file", file)
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	requireContains(t, out, "1.0.2")
}

func TestVersionShowMissingFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "VERSION")
	if _, _, err := runCLI(t, "version", "show", "--file", file); err == nil {
		t.Fatal("expected error for missing version file")
	}
}
