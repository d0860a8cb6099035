package ffmpeg

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"sync"
)

var commandContext = exec.CommandContext

// Client defines the external download behaviour the orchestrator depends on.
type Client interface {
	Download(ctx context.Context, sourceURL, outputPath string, onEvent func(Event)) error
}

// Option configures the CLI client.
type Option func(*CLI)

// WithBinary overrides the default binary name.
func WithBinary(binary string) Option {
	return func(c *CLI) {
		if strings.TrimSpace(binary) != "" {
			c.binary = binary
		}
	}
}

// CLI wraps the ffmpeg command-line tool.
type CLI struct {
	binary string
}

// NewCLI constructs a CLI client using defaults.
func NewCLI(opts ...Option) *CLI {
	cli := &CLI{binary: "ffmpeg"}
	for _, opt := range opts {
		opt(cli)
	}
	return cli
}

func downloadArgs(sourceURL, outputPath string) []string {
	return []string{
		"-hide_banner",
		"-nostdin",
		"-y",
		"-i", sourceURL,
		"-c", "copy",
		"-bsf:a", "aac_adtstoasc",
		"-progress", "pipe:1",
		outputPath,
	}
}

// Download fetches sourceURL into outputPath with one ffmpeg process,
// streaming progress events to onEvent as the process reports them. The
// returned error mirrors the terminal event: nil on a clean exit, ErrSpawn
// when the process never launched, an ExitError otherwise. There is no
// timeout; downloads run as long as the stream does, bounded only by ctx.
func (c *CLI) Download(ctx context.Context, sourceURL, outputPath string, onEvent func(Event)) error {
	if strings.TrimSpace(sourceURL) == "" {
		return errors.New("source url required")
	}
	if strings.TrimSpace(outputPath) == "" {
		return errors.New("output path required")
	}

	parser := NewParser(onEvent)

	cmd := commandContext(ctx, c.binary, downloadArgs(sourceURL, outputPath)...)
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		wrapped := fmt.Errorf("%w: stdout pipe: %v", ErrSpawn, err)
		parser.Finish(wrapped)
		return wrapped
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		wrapped := fmt.Errorf("%w: stderr pipe: %v", ErrSpawn, err)
		parser.Finish(wrapped)
		return wrapped
	}

	if err := cmd.Start(); err != nil {
		wrapped := fmt.Errorf("%w: %v", ErrSpawn, err)
		parser.Finish(wrapped)
		return wrapped
	}

	var readers sync.WaitGroup
	readers.Add(2)
	go func() {
		defer readers.Done()
		drain(stderr, parser.FeedDiagnostic)
	}()
	go func() {
		defer readers.Done()
		drain(stdout, parser.FeedProgress)
	}()
	readers.Wait()

	waitErr := cmd.Wait()
	if waitErr == nil {
		parser.Finish(nil)
		return nil
	}

	var exitErr *exec.ExitError
	if errors.As(waitErr, &exitErr) {
		failure := &ExitError{Code: exitErr.ExitCode()}
		parser.Finish(failure)
		return failure
	}
	wrapped := fmt.Errorf("wait for ffmpeg: %w", waitErr)
	parser.Finish(wrapped)
	return wrapped
}

// drain feeds reader chunks to sink as they arrive.
func drain(reader io.Reader, sink func([]byte)) {
	buf := make([]byte, 4096)
	for {
		n, err := reader.Read(buf)
		if n > 0 {
			sink(buf[:n])
		}
		if err != nil {
			return
		}
	}
}

var _ Client = (*CLI)(nil)
