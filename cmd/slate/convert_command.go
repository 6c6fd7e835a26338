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
)

func newConvertCommand(cctx *commandContext) *cobra.Command {
	var first, last int

	cmd := &cobra.Command{
		Use:   "convert <input> <output>",
		Short: "Convert image formats through Nuke's terminal mode",
		Long: "Convert an image or image sequence to another format using Nuke.\n" +
			"Inputs and outputs may be single files or printf-style sequence\n" +
			"patterns (e.g. plate.%04d.exr).",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := cctx.ensureLogger()
			if err != nil {
				return err
			}

			input, err := filepath.Abs(args[0])
			if err != nil {
				return fmt.Errorf("resolve path: %w", err)
			}
			output, err := filepath.Abs(args[1])
			if err != nil {
				return fmt.Errorf("resolve path: %w", err)
			}

			ctx := cmd.Context()
			if cfg.Nuke.ConvertTimeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, time.Duration(cfg.Nuke.ConvertTimeout)*time.Second)
				defer cancel()
			}

			return cctx.withStore(func(store *joblog.Store) error {
				job, err := store.Begin(ctx, "nuke", input, output)
				if err != nil {
					return err
				}
				client := nuke.NewCLI(nuke.WithBinary(cfg.Nuke.Binary))
				convErr := client.Convert(ctx, nuke.ConvertRequest{
					Input:  input,
					Output: output,
					First:  first,
					Last:   last,
				})
				if convErr != nil {
					if err := store.Fail(ctx, job.ID, convErr.Error()); err != nil {
						logger.Warn("job log update failed", logging.Error(err))
					}
					return convErr
				}
				if err := store.Complete(ctx, job.ID, output); err != nil {
					logger.Warn("job log update failed", logging.Error(err))
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", output)
				return nil
			})
		},
	}

	cmd.Flags().IntVar(&first, "first", 0, "First frame to convert")
	cmd.Flags().IntVar(&last, "last", 0, "Last frame to convert")
	return cmd
}
