package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"hlsgrab/internal/batch"
	"hlsgrab/internal/config"
	"hlsgrab/internal/deps"
	"hlsgrab/internal/download"
	"hlsgrab/internal/history"
	"hlsgrab/internal/linkfind"
	"hlsgrab/internal/logging"
	"hlsgrab/internal/media/ffprobe"
	"hlsgrab/internal/naming"
	"hlsgrab/internal/preflight"
	"hlsgrab/internal/services/ffmpeg"
)

type fetchOptions struct {
	pageURL  string
	taskFile string
	yes      bool
}

func newFetchCommand(cmdCtx *commandContext) *cobra.Command {
	opts := &fetchOptions{}

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Discover manifest links and download them as a task batch",
		Long: `Fetch builds a task batch and downloads it.

With --url the page is scanned for .m3u8 links, the resulting tasks are
persisted, and the batch is downloaded. With --tasks a previously persisted
batch is loaded and downloaded instead. Exactly one of the two must be given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFetch(cmd, cmdCtx, opts)
		},
	}

	cmd.Flags().StringVar(&opts.pageURL, "url", "", "Page URL to scan for manifest links")
	cmd.Flags().StringVar(&opts.taskFile, "tasks", "", "Existing task batch file to download")
	cmd.Flags().BoolVarP(&opts.yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

func runFetch(cmd *cobra.Command, cmdCtx *commandContext, opts *fetchOptions) error {
	hasURL := strings.TrimSpace(opts.pageURL) != ""
	hasTasks := strings.TrimSpace(opts.taskFile) != ""
	if hasURL == hasTasks {
		_ = cmd.Usage()
		return errors.New("exactly one of --url or --tasks is required")
	}

	cfg, err := cmdCtx.ensureConfig()
	if err != nil {
		return err
	}
	logger, err := cmdCtx.ensureLogger()
	if err != nil {
		return err
	}
	if err := cfg.EnsureDirectories(); err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	var tasks batch.Batch
	storePath := cfg.Paths.TaskFile
	if hasTasks {
		storePath = strings.TrimSpace(opts.taskFile)
		tasks, err = batch.NewStore(storePath).Load()
		if err != nil {
			return err
		}
	} else {
		tasks, err = discoverTasks(ctx, cmd, cfg, logger, strings.TrimSpace(opts.pageURL), storePath)
		if err != nil {
			return err
		}
	}

	if len(tasks) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No manifest links found; nothing to download.")
		return nil
	}

	printBatch(cmd, tasks)

	if !opts.yes && !confirm(cmd, fmt.Sprintf("Download %d file(s) to %s?", len(tasks), cfg.Paths.OutputDir)) {
		fmt.Fprintln(cmd.OutOrStdout(), "Aborted; the task batch is saved for later.")
		return nil
	}

	if err := checkEnvironment(cfg); err != nil {
		return err
	}

	lock := batch.NewLock(storePath)
	if err := lock.Acquire(); err != nil {
		return err
	}
	defer lock.Release()

	client := ffmpeg.NewCLI(ffmpeg.WithBinary(cfg.Tools.FFmpegBinary))
	orch := download.New(client, cfg.Paths.OutputDir, newRenderer(cmd.OutOrStdout(), logger), logger)
	outcomes := orch.Run(ctx, tasks)

	recordHistory(ctx, cfg, logger, opts.pageURL, outcomes)
	printOutcomes(cmd, outcomes)

	failed := 0
	for _, outcome := range outcomes {
		if !outcome.Downloaded() {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d task(s) failed", failed, len(outcomes))
	}
	return nil
}

// discoverTasks scans the page, names the candidates, probes durations for
// operator feedback, and persists the new batch.
func discoverTasks(ctx context.Context, cmd *cobra.Command, cfg *config.Config, logger *slog.Logger, pageURL, storePath string) (batch.Batch, error) {
	finder := linkfind.NewFinder(time.Duration(cfg.Timeouts.FetchSeconds)*time.Second, logger)
	links, err := finder.Discover(ctx, pageURL)
	if err != nil {
		return nil, err
	}
	tasks := naming.Assign(links)
	if len(tasks) == 0 {
		return nil, nil
	}

	probeBudget := time.Duration(cfg.Timeouts.ProbeSeconds) * time.Second
	for _, task := range tasks {
		if seconds := ffprobe.ProbeDuration(ctx, cfg.Tools.FFprobeBinary, task.SourceURL, probeBudget); seconds > 0 {
			logger.Info("probed manifest duration",
				logging.String(logging.FieldSourceURL, task.SourceURL),
				logging.Float64("seconds", seconds))
		}
	}

	if err := batch.NewStore(storePath).Save(tasks); err != nil {
		return nil, err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Saved %d task(s) to %s\n", len(tasks), storePath)
	return tasks, nil
}

func checkEnvironment(cfg *config.Config) error {
	statuses := deps.CheckBinaries(deps.Requirements(cfg.Tools.FFmpegBinary, cfg.Tools.FFprobeBinary))
	if missing := deps.MissingRequired(statuses); len(missing) > 0 {
		return fmt.Errorf("missing required binaries: %s", strings.Join(missing, ", "))
	}
	if result := preflight.CheckOutputDir(cfg.Paths.OutputDir); !result.Passed {
		return fmt.Errorf("output directory check failed: %s", result.Detail)
	}
	return nil
}

func recordHistory(ctx context.Context, cfg *config.Config, logger *slog.Logger, pageURL string, outcomes []download.Outcome) {
	store, err := history.Open(ctx, cfg.Paths.HistoryDB)
	if err != nil {
		logger.Warn("history unavailable, outcomes not recorded", logging.Error(err))
		return
	}
	defer store.Close()

	run := history.NewRun(pageURL, len(outcomes))
	if err := store.RecordRun(ctx, run); err != nil {
		logger.Warn("recording run failed", logging.Error(err))
		return
	}
	for i, outcome := range outcomes {
		row := history.OutcomeRow{
			RunID:     run.ID,
			Position:  i,
			SourceURL: outcome.Task.SourceURL,
			LocalName: outcome.Task.LocalName,
			Succeeded: outcome.Downloaded(),
			Detail:    outcome.Reason(),
		}
		if err := store.RecordOutcome(ctx, row); err != nil {
			logger.Warn("recording outcome failed", logging.Error(err))
			return
		}
	}
}

func printBatch(cmd *cobra.Command, tasks batch.Batch) {
	rows := make([][]string, 0, len(tasks))
	for i, task := range tasks {
		rows = append(rows, []string{strconv.Itoa(i + 1), task.SourceURL, task.LocalName})
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderTable(
		[]string{"#", "Source", "Destination"},
		rows,
		[]columnAlignment{alignRight, alignLeft, alignLeft},
	))
}

func printOutcomes(cmd *cobra.Command, outcomes []download.Outcome) {
	rows := make([][]string, 0, len(outcomes))
	for i, outcome := range outcomes {
		result := "downloaded"
		if !outcome.Downloaded() {
			result = "failed: " + outcome.Reason()
		}
		rows = append(rows, []string{strconv.Itoa(i + 1), outcome.Task.LocalName, result})
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderTable(
		[]string{"#", "File", "Result"},
		rows,
		[]columnAlignment{alignRight, alignLeft, alignLeft},
	))
}
