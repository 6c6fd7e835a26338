package main

import (
	"github.com/spf13/cobra"

	"slate/internal/joblog"
)

func newTranscodeCommand(cctx *commandContext) *cobra.Command {
	var opts transcodeOptions

	cmd := &cobra.Command{
		Use:   "transcode <input>",
		Short: "Transcode a movie or image sequence with ffmpeg",
		Long: "Transcode a movie file or an image sequence with ffmpeg.\n" +
			"Passing any frame of a numbered sequence transcodes the whole\n" +
			"sequence starting from that frame.",
		Args: cobra.ExactArgs(1),
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
			return cctx.withStore(func(store *joblog.Store) error {
				return runTranscode(cmd.Context(), cfg, logger, store, notifier, args[0], opts)
			})
		},
	}

	cmd.Flags().StringVarP(&opts.Preset, "preset", "p", "", "Output preset (h264, hevc, prores)")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "Output file path")
	cmd.Flags().IntVar(&opts.FrameRate, "frame-rate", 0, "Frame rate for sequence inputs")
	return cmd
}
