package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string

	cctx := newCommandContext(&configFlag)

	rootCmd := &cobra.Command{
		Use:           "slate",
		Short:         "Slate VFX pipeline toolkit",
		Long:          "Slate wraps the studio's ffmpeg and Nuke tooling for transcoding,\nsequence rendering, format conversion, audio splitting, and version bumps.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")

	rootCmd.AddCommand(newTranscodeCommand(cctx))
	rootCmd.AddCommand(newSplitAudioCommand(cctx))
	rootCmd.AddCommand(newRenderCommand(cctx))
	rootCmd.AddCommand(newConvertCommand(cctx))
	rootCmd.AddCommand(newSeqCommand())
	rootCmd.AddCommand(newVersionCommand(cctx))
	rootCmd.AddCommand(newJobsCommand(cctx))
	rootCmd.AddCommand(newDepsCommand(cctx))
	rootCmd.AddCommand(newConfigCommand(cctx))
	rootCmd.AddCommand(newWatchCommand(cctx))
	rootCmd.AddCommand(newNotifyTestCommand(cctx))

	return rootCmd
}
