package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"slate/internal/sequence"
)

func newSeqCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seq <path>",
		Short: "Inspect a filename for frame-sequence structure",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			info := sequence.ParseSequence(args[0])
			out := cmd.OutOrStdout()

			fmt.Fprintf(out, "directory:  %s\n", info.Directory)
			fmt.Fprintf(out, "filename:   %s\n", info.Filename)
			fmt.Fprintf(out, "base:       %s\n", info.Base)
			fmt.Fprintf(out, "ext:        %s\n", info.Ext)
			fmt.Fprintf(out, "display:    %s\n", sequence.DisplayName(args[0]))
			fmt.Fprintf(out, "sequence:   %s\n", strconv.FormatBool(info.IsSequence))
			if !info.IsSequence {
				return nil
			}
			frame, _ := info.FrameNumber()
			fmt.Fprintf(out, "seq base:   %s\n", info.SequenceBase)
			fmt.Fprintf(out, "separator:  %q\n", info.Separator)
			fmt.Fprintf(out, "counter:    %s\n", info.Counter)
			fmt.Fprintf(out, "frame:      %d\n", frame)
			fmt.Fprintf(out, "pattern:    %s\n", info.Pattern)
			return nil
		},
	}
}
