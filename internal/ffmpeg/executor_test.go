package ffmpeg

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeStub(t *testing.T, script string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ffmpeg-stub")
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
	return path
}

func TestRunReportsProgress(t *testing.T) {
	stub := writeStub(t, "#!/bin/sh\n"+
		"printf 'frame=  120 fps=24 time=00:01:05.04 bitrate=900kbits/s\\r' >&2\n"+
		"printf 'frame=  240 fps=24 time=00:02:10.08 bitrate=900kbits/s\\n' >&2\n"+
		"exit 0\n")

	var updates []ProgressUpdate
	runner := NewRunner(stub)
	err := runner.Run(context.Background(), nil, func(u ProgressUpdate) {
		updates = append(updates, u)
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(updates) != 2 {
		t.Fatalf("expected 2 progress updates, got %d", len(updates))
	}
	if updates[0].Position != time.Minute+5*time.Second+40*time.Millisecond {
		t.Fatalf("first position = %v", updates[0].Position)
	}
	if updates[1].Position != 2*time.Minute+10*time.Second+80*time.Millisecond {
		t.Fatalf("second position = %v", updates[1].Position)
	}
}

func TestParseTimeKeepsFraction(t *testing.T) {
	cases := []struct {
		line string
		want time.Duration
	}{
		{"frame=1 time=00:00:01.50 speed=1x", time.Second + 500*time.Millisecond},
		{"frame=2 time=01:02:03.04 speed=1x", time.Hour + 2*time.Minute + 3*time.Second + 40*time.Millisecond},
		{"frame=3 time=00:00:00.999 speed=1x", 999 * time.Millisecond},
	}
	for _, tc := range cases {
		got, ok := parseTime(tc.line)
		if !ok {
			t.Fatalf("parseTime(%q) not recognized", tc.line)
		}
		if got != tc.want {
			t.Fatalf("parseTime(%q) = %v, want %v", tc.line, got, tc.want)
		}
	}
}

func TestRunSurfacesLastStderrLine(t *testing.T) {
	stub := writeStub(t, "#!/bin/sh\n"+
		"echo 'Input #0, mov, from input.mov:' >&2\n"+
		"echo '/renders/missing.mov: No such file or directory' >&2\n"+
		"exit 1\n")

	runner := NewRunner(stub)
	err := runner.Run(context.Background(), nil, nil)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "No such file or directory") {
		t.Fatalf("error missing stderr detail: %v", err)
	}
}

func TestRunHonorsContextCancellation(t *testing.T) {
	stub := writeStub(t, "#!/bin/sh\nsleep 30\n")

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	runner := NewRunner(stub)
	if err := runner.Run(ctx, nil, nil); err == nil {
		t.Fatal("expected error from cancelled context")
	}
}

func TestNewRunnerDefaultsBinary(t *testing.T) {
	if NewRunner("").binary != "ffmpeg" {
		t.Fatal("expected ffmpeg default")
	}
}

func TestLastMeaningfulLineSkipsProgress(t *testing.T) {
	lines := []string{
		"Press [q] to stop",
		"Conversion failed!",
		"frame=  120 fps=24",
		"",
	}
	if got := lastMeaningfulLine(lines); got != "Conversion failed!" {
		t.Fatalf("lastMeaningfulLine = %q", got)
	}
	if got := lastMeaningfulLine(nil); got != "" {
		t.Fatalf("expected empty result, got %q", got)
	}
}
