package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"slate/internal/version"
)

func newVersionCommand(cctx *commandContext) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show or bump the project version",
	}
	cmd.PersistentFlags().StringVarP(&file, "file", "f", "", "Version file path (defaults to paths.version_file)")

	cmd.AddCommand(newVersionShowCommand(cctx, &file))
	cmd.AddCommand(newVersionBumpCommand(cctx, &file))
	return cmd
}

// resolveVersionFile prefers the --file flag so the command works without a
// config file.
func resolveVersionFile(cctx *commandContext, flag *string) (string, error) {
	if flag != nil && strings.TrimSpace(*flag) != "" {
		return strings.TrimSpace(*flag), nil
	}
	cfg, err := cctx.ensureConfig()
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(cfg.Paths.VersionFile) == "" {
		return "", fmt.Errorf("no version file configured; set paths.version_file or pass --file")
	}
	return cfg.Paths.VersionFile, nil
}

func newVersionShowCommand(cctx *commandContext, file *string) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the current version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := resolveVersionFile(cctx, file)
			if err != nil {
				return err
			}
			current, err := version.LoadFile(path)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), current)
			return nil
		},
	}
}

func newVersionBumpCommand(cctx *commandContext, file *string) *cobra.Command {
	return &cobra.Command{
		Use:   "bump",
		Short: "Increment the rightmost version field",
		Long: "Increment the rightmost field of the stored version, preserving\n" +
			"zero padding. A missing version file is seeded from " + version.Seed + ".",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := resolveVersionFile(cctx, file)
			if err != nil {
				return err
			}
			old, next, err := version.BumpFile(path)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s\n", old, next)
			return nil
		},
	}
}
