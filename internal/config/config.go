package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains directory and file locations.
type Paths struct {
	LogDir      string `toml:"log_dir"`
	OutputDir   string `toml:"output_dir"` // empty means alongside the input
	VersionFile string `toml:"version_file"`
}

// Transcode contains ffmpeg transcode settings.
type Transcode struct {
	FFmpegBinary  string `toml:"ffmpeg_binary"`
	FFprobeBinary string `toml:"ffprobe_binary"`
	Preset        string `toml:"preset"`
	FrameRate     int    `toml:"frame_rate"`
	CRF           int    `toml:"crf"`
	Overwrite     bool   `toml:"overwrite"`
}

// Nuke contains settings for invoking Nuke in batch and terminal mode.
type Nuke struct {
	Binary         string `toml:"binary"`
	RenderTimeout  int    `toml:"render_timeout"`
	ConvertTimeout int    `toml:"convert_timeout"`
}

// Notifications contains ntfy and email delivery settings.
type Notifications struct {
	NtfyTopic       string `toml:"ntfy_topic"`
	RequestTimeout  int    `toml:"request_timeout"`
	SendemailBinary string `toml:"sendemail_binary"`
	EmailFrom       string `toml:"email_from"`
	EmailTo         string `toml:"email_to"`
	SMTPServer      string `toml:"smtp_server"`
	Started         bool   `toml:"started"`
	Completed       bool   `toml:"completed"`
	Errors          bool   `toml:"errors"`
}

// Watch contains drop-folder settings.
type Watch struct {
	Dir           string   `toml:"dir"`
	Patterns      []string `toml:"patterns"`
	SettleSeconds int      `toml:"settle_seconds"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for Slate.
//
// Configuration sections by subsystem:
//   - Paths: log directory, default output directory, version file
//   - Transcode: ffmpeg binaries and preset defaults
//   - Nuke: batch render and terminal-mode conversion settings
//   - Notifications: ntfy topic and sendemail delivery
//   - Watch: drop-folder directory, patterns, settle interval
//   - Logging: log format and level
type Config struct {
	Paths         Paths         `toml:"paths"`
	Transcode     Transcode     `toml:"transcode"`
	Nuke          Nuke          `toml:"nuke"`
	Notifications Notifications `toml:"notifications"`
	Watch         Watch         `toml:"watch"`
	Logging       Logging       `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/slate/config.toml")
}

// Sample returns the embedded sample configuration used by `slate config init`.
func Sample() string {
	return sampleConfig
}

// Load locates, parses, and validates a configuration file. An empty path
// falls back to SLATE_CONFIG, then a project-local slate.toml, then the
// default location. The returned config has all path fields expanded and
// normalized. When no config file exists the repository defaults are
// returned with exists == false.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path == "" {
		path = strings.TrimSpace(os.Getenv("SLATE_CONFIG"))
	}
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("slate.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}
	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	return defaultPath, false, nil
}

// EnsureDirectories creates the directories Slate writes into.
func (c *Config) EnsureDirectories() error {
	if err := os.MkdirAll(c.Paths.LogDir, 0o755); err != nil {
		return fmt.Errorf("create directory %q: %w", c.Paths.LogDir, err)
	}
	if strings.TrimSpace(c.Paths.OutputDir) != "" {
		if err := os.MkdirAll(c.Paths.OutputDir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", c.Paths.OutputDir, err)
		}
	}
	return nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}
