package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"slate/internal/joblog"
	"slate/internal/logging"
	"slate/internal/watch"
)

func newWatchCommand(cctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Watch a drop folder and transcode arriving files",
		Long: "Watch the configured drop folder and transcode every matching\n" +
			"file that lands in it, using the default transcode settings.\n" +
			"Runs until interrupted.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := cctx.ensureLogger()
			if err != nil {
				return err
			}
			notifier, err := cctx.notifier()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return cctx.withStore(func(store *joblog.Store) error {
				handler := func(ctx context.Context, path string) {
					if err := runTranscode(ctx, cfg, logger, store, notifier, path, transcodeOptions{}); err != nil {
						logger.Error("transcode failed",
							logging.String("path", path), logging.Error(err))
					}
				}
				watcher, err := watch.New(cfg, logger, handler)
				if err != nil {
					return err
				}
				if err := watcher.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
					return err
				}
				logger.Info("watch stopped")
				return nil
			})
		},
	}
}
