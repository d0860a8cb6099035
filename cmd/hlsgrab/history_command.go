package main

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"hlsgrab/internal/history"
)

func newHistoryCommand(cmdCtx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history [run-id]",
		Short: "Show recent runs, or one run's task outcomes",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cmdCtx.ensureConfig()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			store, err := history.Open(ctx, cfg.Paths.HistoryDB)
			if err != nil {
				return err
			}
			defer store.Close()

			if len(args) == 1 {
				return printRunOutcomes(cmd, ctx, store, args[0])
			}
			return printRuns(cmd, ctx, store, limit)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of runs to list")

	return cmd
}

func printRuns(cmd *cobra.Command, ctx context.Context, store *history.Store, limit int) error {
	runs, err := store.ListRuns(ctx, limit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No runs recorded yet.")
		return nil
	}
	rows := make([][]string, 0, len(runs))
	for _, run := range runs {
		rows = append(rows, []string{
			run.ID,
			run.StartedAt.Local().Format(time.DateTime),
			run.PageURL,
			strconv.Itoa(run.TaskCount),
		})
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderTable(
		[]string{"Run", "Started", "Page", "Tasks"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight},
	))
	return nil
}

func printRunOutcomes(cmd *cobra.Command, ctx context.Context, store *history.Store, runID string) error {
	outcomes, err := store.RunOutcomes(ctx, runID)
	if err != nil {
		return err
	}
	if len(outcomes) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No outcomes recorded for run %s.\n", runID)
		return nil
	}
	rows := make([][]string, 0, len(outcomes))
	for _, outcome := range outcomes {
		result := "downloaded"
		if !outcome.Succeeded {
			result = "failed: " + outcome.Detail
		}
		rows = append(rows, []string{
			strconv.Itoa(outcome.Position + 1),
			outcome.LocalName,
			outcome.SourceURL,
			result,
		})
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderTable(
		[]string{"#", "File", "Source", "Result"},
		rows,
		[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft},
	))
	return nil
}
