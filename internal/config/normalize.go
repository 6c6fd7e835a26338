package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	if err := c.normalizeWatch(); err != nil {
		return err
	}
	c.normalizeTranscode()
	c.normalizeNuke()
	c.normalizeNotifications()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.OutputDir) != "" {
		if c.Paths.OutputDir, err = expandPath(c.Paths.OutputDir); err != nil {
			return fmt.Errorf("paths.output_dir: %w", err)
		}
	}
	if strings.TrimSpace(c.Paths.VersionFile) == "" {
		c.Paths.VersionFile = defaultVersionFile
	}
	if c.Paths.VersionFile, err = expandPath(c.Paths.VersionFile); err != nil {
		return fmt.Errorf("paths.version_file: %w", err)
	}
	return nil
}

func (c *Config) normalizeWatch() error {
	if strings.TrimSpace(c.Watch.Dir) != "" {
		var err error
		if c.Watch.Dir, err = expandPath(c.Watch.Dir); err != nil {
			return fmt.Errorf("watch.dir: %w", err)
		}
	}
	if len(c.Watch.Patterns) == 0 {
		c.Watch.Patterns = defaultWatchPatterns()
	}
	if c.Watch.SettleSeconds <= 0 {
		c.Watch.SettleSeconds = defaultWatchSettleSeconds
	}
	return nil
}

func (c *Config) normalizeTranscode() {
	if strings.TrimSpace(c.Transcode.FFmpegBinary) == "" {
		c.Transcode.FFmpegBinary = defaultFFmpegBinary
	}
	if strings.TrimSpace(c.Transcode.FFprobeBinary) == "" {
		c.Transcode.FFprobeBinary = defaultFFprobeBinary
	}
	c.Transcode.Preset = strings.ToLower(strings.TrimSpace(c.Transcode.Preset))
	if c.Transcode.Preset == "" {
		c.Transcode.Preset = defaultTranscodePreset
	}
	if c.Transcode.FrameRate <= 0 {
		c.Transcode.FrameRate = defaultTranscodeFrameRate
	}
	if c.Transcode.CRF <= 0 {
		c.Transcode.CRF = defaultTranscodeCRF
	}
}

func (c *Config) normalizeNuke() {
	if strings.TrimSpace(c.Nuke.Binary) == "" {
		c.Nuke.Binary = defaultNukeBinary
	}
	if c.Nuke.RenderTimeout <= 0 {
		c.Nuke.RenderTimeout = defaultNukeRenderTimeout
	}
	if c.Nuke.ConvertTimeout <= 0 {
		c.Nuke.ConvertTimeout = defaultNukeConvertTimeout
	}
}

func (c *Config) normalizeNotifications() {
	if c.Notifications.NtfyTopic == "" {
		if value, ok := os.LookupEnv("SLATE_NTFY_TOPIC"); ok {
			c.Notifications.NtfyTopic = strings.TrimSpace(value)
		}
	}
	if c.Notifications.RequestTimeout <= 0 {
		c.Notifications.RequestTimeout = defaultNotifyRequestTimeout
	}
	if strings.TrimSpace(c.Notifications.SendemailBinary) == "" {
		c.Notifications.SendemailBinary = defaultSendemailBinary
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
