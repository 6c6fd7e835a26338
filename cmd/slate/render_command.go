package main

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"slate/internal/joblog"
	"slate/internal/logging"
	"slate/internal/nuke"
	"slate/internal/sequence"
)

func newRenderCommand(cctx *commandContext) *cobra.Command {
	var frameRange string

	cmd := &cobra.Command{
		Use:   "render <script.nk>",
		Short: "Render a Nuke script in batch mode",
		Args:  cobra.ExactArgs(1),
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

			script, err := filepath.Abs(args[0])
			if err != nil {
				return fmt.Errorf("resolve path: %w", err)
			}
			jobName := sequence.DisplayName(script)

			ctx := cmd.Context()
			if cfg.Nuke.RenderTimeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, time.Duration(cfg.Nuke.RenderTimeout)*time.Second)
				defer cancel()
			}

			return cctx.withStore(func(store *joblog.Store) error {
				job, err := store.Begin(ctx, "nuke", script, "")
				if err != nil {
					return err
				}
				if cfg.Notifications.Started {
					if err := notifier.RenderStarted(ctx, jobName); err != nil {
						logger.Warn("notify failed", logging.Error(err))
					}
				}

				started := time.Now()
				client := nuke.NewCLI(nuke.WithBinary(cfg.Nuke.Binary))
				renderErr := client.Render(ctx, script, frameRange, func(u nuke.ProgressUpdate) {
					fmt.Fprintf(cmd.OutOrStdout(), "Frame %d (%d of %d)\n", u.Frame, u.Index, u.Total)
				})
				elapsed := time.Since(started)

				if renderErr != nil {
					if err := store.Fail(ctx, job.ID, renderErr.Error()); err != nil {
						logger.Warn("job log update failed", logging.Error(err))
					}
					if cfg.Notifications.Errors {
						if err := notifier.RenderFailed(ctx, jobName, renderErr); err != nil {
							logger.Warn("notify failed", logging.Error(err))
						}
					}
					return renderErr
				}

				if err := store.Complete(ctx, job.ID, ""); err != nil {
					logger.Warn("job log update failed", logging.Error(err))
				}
				if cfg.Notifications.Completed {
					if err := notifier.RenderCompleted(ctx, jobName, elapsed); err != nil {
						logger.Warn("notify failed", logging.Error(err))
					}
				}
				logger.Info("render finished",
					logging.String("script", script),
					logging.Duration("elapsed", elapsed.Round(time.Second)))
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&frameRange, "frames", "F", "", "Frame range in Nuke syntax (e.g. 1-100, 1-100x10)")
	return cmd
}
