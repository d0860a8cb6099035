package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"

	"hlsgrab/internal/batch"
	"hlsgrab/internal/download"
	"hlsgrab/internal/logging"
)

// newRenderer picks a live progress bar on terminals and plain log lines
// everywhere else.
func newRenderer(out io.Writer, logger *slog.Logger) download.Renderer {
	if file, ok := out.(*os.File); ok {
		fd := file.Fd()
		if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
			return &barRenderer{out: out}
		}
	}
	return &logRenderer{logger: logging.NewComponentLogger(logger, "progress")}
}

// barRenderer draws one progress bar per task, measured in media seconds.
type barRenderer struct {
	out io.Writer
	bar *progressbar.ProgressBar
}

func (r *barRenderer) TaskStarted(position, count int, task batch.Task) {
	r.bar = nil
	fmt.Fprintf(r.out, "[%d/%d] %s\n", position+1, count, task.Label)
}

func (r *barRenderer) Progress(elapsed, total float64) {
	if r.bar == nil {
		length := int64(total)
		if length <= 0 {
			// Unknown duration renders as a spinner.
			length = -1
		}
		r.bar = progressbar.NewOptions64(length,
			progressbar.OptionSetWriter(r.out),
			progressbar.OptionSetDescription("downloading"),
			progressbar.OptionShowCount(),
			progressbar.OptionSetPredictTime(true),
		)
	}
	_ = r.bar.Set64(int64(elapsed))
}

func (r *barRenderer) TaskFinished(task batch.Task, err error) {
	if r.bar != nil {
		_ = r.bar.Finish()
		fmt.Fprintln(r.out)
		r.bar = nil
	}
	if err != nil {
		fmt.Fprintf(r.out, "  %s failed: %v\n", task.LocalName, err)
		return
	}
	fmt.Fprintf(r.out, "  %s done\n", task.LocalName)
}

// logRenderer reports lifecycle transitions through the logger and keeps
// quiet about individual progress ticks; the orchestrator already records
// terminal outcomes at info level.
type logRenderer struct {
	logger *slog.Logger
}

func (r *logRenderer) TaskStarted(position, count int, task batch.Task) {
	r.logger.Info("task started",
		logging.Int("position", position+1),
		logging.Int("count", count),
		logging.String(logging.FieldLocalName, task.LocalName))
}

func (r *logRenderer) Progress(elapsed, total float64) {
	r.logger.Debug("progress",
		logging.Float64("elapsed_seconds", elapsed),
		logging.Float64("total_seconds", total))
}

func (r *logRenderer) TaskFinished(task batch.Task, err error) {
	if err != nil {
		r.logger.Warn("task finished with failure",
			logging.String(logging.FieldLocalName, task.LocalName),
			logging.Error(err))
		return
	}
	r.logger.Info("task finished",
		logging.String(logging.FieldLocalName, task.LocalName))
}
