package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"slate/internal/joblog"
)

func newJobsCommand(cctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "jobs",
		Short: "List recent jobs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cctx.withStore(func(store *joblog.Store) error {
				jobs, err := store.Recent(cmd.Context(), limit)
				if err != nil {
					return err
				}
				if len(jobs) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No jobs recorded.")
					return nil
				}

				rows := make([][]string, 0, len(jobs))
				for _, job := range jobs {
					duration := "-"
					if d := job.Duration(); d > 0 {
						duration = d.Round(time.Second).String()
					}
					rows = append(rows, []string{
						shortID(job.ID),
						job.Tool,
						string(job.Status),
						job.Source,
						job.StartedAt.Local().Format("2006-01-02 15:04:05"),
						duration,
					})
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(
					[]string{"ID", "Tool", "Status", "Source", "Started", "Duration"},
					rows,
					[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignLeft, alignRight},
				))
				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of jobs to list")
	cmd.AddCommand(newJobsClearCommand(cctx))
	return cmd
}

func newJobsClearCommand(cctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete all job records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cctx.withStore(func(store *joblog.Store) error {
				removed, err := store.Clear(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed %d job(s).\n", removed)
				return nil
			})
		},
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
