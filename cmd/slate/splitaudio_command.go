package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"slate/internal/ffmpeg"
	"slate/internal/joblog"
	"slate/internal/logging"
	"slate/internal/sequence"
)

func newSplitAudioCommand(cctx *commandContext) *cobra.Command {
	var left, right string

	cmd := &cobra.Command{
		Use:   "split-audio <input>",
		Short: "Split a stereo source into two mono wav files",
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

			input, err := filepath.Abs(args[0])
			if err != nil {
				return fmt.Errorf("resolve path: %w", err)
			}
			parsed := sequence.Parse(input)
			if left == "" {
				left = filepath.Join(parsed.Directory, parsed.Base+"_L.wav")
			}
			if right == "" {
				right = filepath.Join(parsed.Directory, parsed.Base+"_R.wav")
			}

			ffArgs, err := ffmpeg.SplitAudioArgs(input, left, right, cfg.Transcode.Overwrite)
			if err != nil {
				return err
			}

			return cctx.withStore(func(store *joblog.Store) error {
				job, err := store.Begin(cmd.Context(), "ffmpeg", input, left)
				if err != nil {
					return err
				}
				runner := ffmpeg.NewRunner(cfg.Transcode.FFmpegBinary)
				if err := runner.Run(cmd.Context(), ffArgs, nil); err != nil {
					if failErr := store.Fail(cmd.Context(), job.ID, err.Error()); failErr != nil {
						logger.Warn("job log update failed", logging.Error(failErr))
					}
					return err
				}
				if err := store.Complete(cmd.Context(), job.ID, left); err != nil {
					logger.Warn("job log update failed", logging.Error(err))
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\nWrote %s\n", left, right)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&left, "left", "", "Left channel output path")
	cmd.Flags().StringVar(&right, "right", "", "Right channel output path")
	return cmd
}
