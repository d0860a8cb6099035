package download

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"hlsgrab/internal/batch"
	"hlsgrab/internal/logging"
	"hlsgrab/internal/services/ffmpeg"
)

// scriptedClient fails the downloads whose source URL appears in failures
// and succeeds otherwise, recording the order of attempts.
type scriptedClient struct {
	failures map[string]error
	attempts []string
	outputs  []string
	events   []ffmpeg.Event
}

func (c *scriptedClient) Download(_ context.Context, sourceURL, outputPath string, onEvent func(ffmpeg.Event)) error {
	c.attempts = append(c.attempts, sourceURL)
	c.outputs = append(c.outputs, outputPath)
	if err, ok := c.failures[sourceURL]; ok {
		if onEvent != nil {
			onEvent(ffmpeg.Event{Type: ffmpeg.EventFailure, Err: err})
		}
		return err
	}
	for _, event := range c.events {
		if onEvent != nil {
			onEvent(event)
		}
	}
	if onEvent != nil {
		onEvent(ffmpeg.Event{Type: ffmpeg.EventSuccess})
	}
	return nil
}

type recordingRenderer struct {
	started  []string
	progress [][2]float64
	finished []string
}

func (r *recordingRenderer) TaskStarted(position, count int, task batch.Task) {
	r.started = append(r.started, fmt.Sprintf("%d/%d %s", position, count, task.LocalName))
}

func (r *recordingRenderer) Progress(elapsed, total float64) {
	r.progress = append(r.progress, [2]float64{elapsed, total})
}

func (r *recordingRenderer) TaskFinished(task batch.Task, err error) {
	status := "ok"
	if err != nil {
		status = "failed"
	}
	r.finished = append(r.finished, task.LocalName+" "+status)
}

func threeTasks() batch.Batch {
	return batch.Batch{
		batch.NewTask("https://cdn.example.com/a.m3u8", "example_com_00.mp4"),
		batch.NewTask("https://cdn.example.com/b.m3u8", "example_com_01.mp4"),
		batch.NewTask("https://cdn.example.com/c.m3u8", "example_com_02.mp4"),
	}
}

func TestRunContinuesPastFailedTask(t *testing.T) {
	spawnErr := fmt.Errorf("%w: no such file", ffmpeg.ErrSpawn)
	client := &scriptedClient{failures: map[string]error{
		"https://cdn.example.com/b.m3u8": spawnErr,
	}}
	orch := New(client, t.TempDir(), nil, logging.NewNop())

	outcomes := orch.Run(context.Background(), threeTasks())

	if len(outcomes) != 3 {
		t.Fatalf("expected 3 outcomes, got %d", len(outcomes))
	}
	if !outcomes[0].Downloaded() || !outcomes[2].Downloaded() {
		t.Fatalf("tasks 1 and 3 should succeed: %#v", outcomes)
	}
	if outcomes[1].Downloaded() {
		t.Fatalf("task 2 should fail: %#v", outcomes[1])
	}
	if !errors.Is(outcomes[1].Err, ffmpeg.ErrSpawn) {
		t.Fatalf("expected spawn failure cause, got %v", outcomes[1].Err)
	}
	if len(client.attempts) != 3 {
		t.Fatalf("all tasks must be attempted, got %v", client.attempts)
	}
}

func TestRunOutcomeOrderMatchesInput(t *testing.T) {
	client := &scriptedClient{}
	orch := New(client, t.TempDir(), nil, logging.NewNop())

	tasks := threeTasks()
	outcomes := orch.Run(context.Background(), tasks)

	for i, outcome := range outcomes {
		if outcome.Task.SourceURL != tasks[i].SourceURL {
			t.Fatalf("outcome %d is %q, want %q", i, outcome.Task.SourceURL, tasks[i].SourceURL)
		}
	}
}

func TestRunJoinsOutputDir(t *testing.T) {
	client := &scriptedClient{}
	dir := t.TempDir()
	orch := New(client, dir, nil, logging.NewNop())

	orch.Run(context.Background(), threeTasks()[:1])

	want := filepath.Join(dir, "example_com_00.mp4")
	if len(client.outputs) != 1 || client.outputs[0] != want {
		t.Fatalf("expected output path %q, got %v", want, client.outputs)
	}
}

func TestRunForwardsClampedProgress(t *testing.T) {
	client := &scriptedClient{events: []ffmpeg.Event{
		{Type: ffmpeg.EventStarted, Total: 90},
		{Type: ffmpeg.EventProgress, Elapsed: 45},
		{Type: ffmpeg.EventProgress, Elapsed: 120},
		{Type: ffmpeg.EventProgress, Elapsed: -1},
	}}
	renderer := &recordingRenderer{}
	orch := New(client, t.TempDir(), renderer, logging.NewNop())

	orch.Run(context.Background(), threeTasks()[:1])

	want := [][2]float64{{0, 90}, {45, 90}, {90, 90}, {0, 90}}
	if len(renderer.progress) != len(want) {
		t.Fatalf("expected %d progress signals, got %#v", len(want), renderer.progress)
	}
	for i, pair := range want {
		if renderer.progress[i] != pair {
			t.Fatalf("progress %d = %v, want %v", i, renderer.progress[i], pair)
		}
	}
}

func TestRunNotifiesRendererPerTask(t *testing.T) {
	client := &scriptedClient{failures: map[string]error{
		"https://cdn.example.com/b.m3u8": &ffmpeg.ExitError{Code: 1},
	}}
	renderer := &recordingRenderer{}
	orch := New(client, t.TempDir(), renderer, logging.NewNop())

	orch.Run(context.Background(), threeTasks())

	if len(renderer.started) != 3 || renderer.started[1] != "1/3 example_com_01.mp4" {
		t.Fatalf("unexpected start notifications: %v", renderer.started)
	}
	wantFinished := []string{
		"example_com_00.mp4 ok",
		"example_com_01.mp4 failed",
		"example_com_02.mp4 ok",
	}
	for i, want := range wantFinished {
		if renderer.finished[i] != want {
			t.Fatalf("finished[%d] = %q, want %q", i, renderer.finished[i], want)
		}
	}
}

func TestRunEmptyBatch(t *testing.T) {
	orch := New(&scriptedClient{}, t.TempDir(), nil, logging.NewNop())
	outcomes := orch.Run(context.Background(), nil)
	if len(outcomes) != 0 {
		t.Fatalf("expected no outcomes, got %#v", outcomes)
	}
}
