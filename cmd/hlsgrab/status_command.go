package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"hlsgrab/internal/deps"
	"hlsgrab/internal/preflight"
)

func newStatusCommand(cmdCtx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Check external binaries and the output directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cmdCtx.ensureConfig()
			if err != nil {
				return err
			}

			rows := make([][]string, 0, 3)
			statuses := deps.CheckBinaries(deps.Requirements(cfg.Tools.FFmpegBinary, cfg.Tools.FFprobeBinary))
			for _, status := range statuses {
				state := "ok"
				if !status.Available {
					state = "missing"
					if status.Optional {
						state = "missing (optional)"
					}
				}
				detail := status.Detail
				if detail == "" {
					detail = status.Command
				}
				rows = append(rows, []string{status.Name, state, detail})
			}

			dir := preflight.CheckOutputDir(cfg.Paths.OutputDir)
			dirState := "ok"
			if !dir.Passed {
				dirState = "failed"
			}
			rows = append(rows, []string{dir.Name, dirState, dir.Detail})

			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Check", "State", "Detail"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft},
			))

			if missing := deps.MissingRequired(statuses); len(missing) > 0 {
				return fmt.Errorf("missing required binaries: %v", missing)
			}
			return nil
		},
	}
}
