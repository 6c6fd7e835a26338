package main

import (
	"log/slog"
	"strings"
	"sync"

	"slate/internal/config"
	"slate/internal/joblog"
	"slate/internal/logging"
	"slate/internal/notify"
)

// commandContext lazily resolves shared dependencies so cheap commands like
// `slate seq` never touch the config file or the job database.
type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		c.logger, c.loggerErr = logging.NewFromConfig(cfg)
	})
	return c.logger, c.loggerErr
}

func (c *commandContext) notifier() (notify.Service, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return notify.NewService(cfg), nil
}

// withStore opens the job log for the duration of fn.
func (c *commandContext) withStore(fn func(*joblog.Store) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	store, err := joblog.Open(cfg)
	if err != nil {
		return err
	}
	defer store.Close()
	return fn(store)
}
