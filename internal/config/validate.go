package config

import (
	"errors"
	"fmt"
	"strings"
)

var transcodePresets = map[string]struct{}{
	"h264":   {},
	"hevc":   {},
	"prores": {},
}

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateTranscode(); err != nil {
		return err
	}
	if err := c.validateNotifications(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateTranscode() error {
	if _, ok := transcodePresets[c.Transcode.Preset]; !ok {
		return fmt.Errorf("transcode.preset: unknown preset %q (supported: h264, hevc, prores)", c.Transcode.Preset)
	}
	if c.Transcode.CRF < 0 || c.Transcode.CRF > 51 {
		return errors.New("transcode.crf must be between 0 and 51")
	}
	return nil
}

func (c *Config) validateNotifications() error {
	n := c.Notifications
	emailFields := []string{n.EmailFrom, n.EmailTo, n.SMTPServer}
	configured := 0
	for _, field := range emailFields {
		if strings.TrimSpace(field) != "" {
			configured++
		}
	}
	if configured > 0 && configured < len(emailFields) {
		return errors.New("notifications: email_from, email_to, and smtp_server must all be set to enable email")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}

// EmailConfigured reports whether all email delivery fields are present.
func (c *Config) EmailConfigured() bool {
	n := c.Notifications
	return strings.TrimSpace(n.EmailFrom) != "" &&
		strings.TrimSpace(n.EmailTo) != "" &&
		strings.TrimSpace(n.SMTPServer) != ""
}
