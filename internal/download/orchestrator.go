package download

import (
	"context"
	"log/slog"
	"path/filepath"

	"hlsgrab/internal/batch"
	"hlsgrab/internal/logging"
	"hlsgrab/internal/services/ffmpeg"
)

// Renderer receives a task's progress signals. Implementations turn them
// into a bar, a percentage, or log lines; the orchestrator only supplies the
// normalized (elapsed, total) pairs in seconds plus the final status.
type Renderer interface {
	TaskStarted(position, count int, task batch.Task)
	Progress(elapsed, total float64)
	TaskFinished(task batch.Task, err error)
}

// NopRenderer discards all progress signals.
type NopRenderer struct{}

func (NopRenderer) TaskStarted(int, int, batch.Task) {}

func (NopRenderer) Progress(float64, float64) {}

func (NopRenderer) TaskFinished(batch.Task, error) {}

// Orchestrator drives a batch of download tasks sequentially.
type Orchestrator struct {
	client    ffmpeg.Client
	outputDir string
	renderer  Renderer
	logger    *slog.Logger
}

// New constructs an Orchestrator writing into outputDir. A nil renderer
// falls back to NopRenderer.
func New(client ffmpeg.Client, outputDir string, renderer Renderer, logger *slog.Logger) *Orchestrator {
	if renderer == nil {
		renderer = NopRenderer{}
	}
	return &Orchestrator{
		client:    client,
		outputDir: outputDir,
		renderer:  renderer,
		logger:    logging.NewComponentLogger(logger, "download"),
	}
}

// Run executes every task in order and returns one outcome per task, indexed
// by task position. Tasks never overlap; the next process starts only after
// the previous one's terminal event. Individual failures are recorded and
// the batch continues.
func (o *Orchestrator) Run(ctx context.Context, tasks batch.Batch) []Outcome {
	outcomes := make([]Outcome, len(tasks))
	for i, task := range tasks {
		o.renderer.TaskStarted(i, len(tasks), task)
		err := o.runTask(ctx, task)
		outcomes[i] = Outcome{Task: task, Err: err}
		o.renderer.TaskFinished(task, err)

		if err != nil {
			o.logger.Error("task failed",
				logging.String(logging.FieldSourceURL, task.SourceURL),
				logging.String(logging.FieldLocalName, task.LocalName),
				logging.Error(err))
			continue
		}
		o.logger.Info("task downloaded",
			logging.String(logging.FieldSourceURL, task.SourceURL),
			logging.String(logging.FieldLocalName, task.LocalName))
	}
	return outcomes
}

func (o *Orchestrator) runTask(ctx context.Context, task batch.Task) error {
	outputPath := filepath.Join(o.outputDir, task.LocalName)

	var total float64
	return o.client.Download(ctx, task.SourceURL, outputPath, func(event ffmpeg.Event) {
		switch event.Type {
		case ffmpeg.EventStarted:
			total = event.Total
			o.renderer.Progress(0, total)
		case ffmpeg.EventProgress:
			o.renderer.Progress(clamp(event.Elapsed, total), total)
		}
	})
}

// clamp bounds elapsed to [0, total] for display. The raw parser values pass
// through unbounded; only rendering wants the clamp.
func clamp(elapsed, total float64) float64 {
	if elapsed < 0 {
		return 0
	}
	if total > 0 && elapsed > total {
		return total
	}
	return elapsed
}
