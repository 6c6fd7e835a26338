package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"slate/internal/config"
)

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for input, want := range cases {
		if got := parseLevel(input); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", input, got, want)
		}
	}
}

func TestNewFromConfigWritesLogFile(t *testing.T) {
	dir := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.LogDir = filepath.Join(dir, "logs")
	cfgVal.Logging.Format = "json"
	cfgVal.Logging.Level = "debug"

	logger, err := NewFromConfig(&cfgVal)
	if err != nil {
		t.Fatalf("NewFromConfig: %v", err)
	}
	logger.Info("render finished", String("shot", "sh010"))

	data, err := os.ReadFile(filepath.Join(cfgVal.Paths.LogDir, "slate.log"))
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), `"shot":"sh010"`) {
		t.Fatalf("log file missing attribute: %s", data)
	}
}
