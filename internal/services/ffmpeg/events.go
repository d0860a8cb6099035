package ffmpeg

import (
	"errors"
	"fmt"
)

// ErrSpawn marks download failures where the ffmpeg process never started
// (binary missing, permission denied). Callers can distinguish these from
// nonzero exits via errors.Is.
var ErrSpawn = errors.New("ffmpeg spawn failed")

// ExitError reports a nonzero ffmpeg exit code.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("ffmpeg exited with code %d", e.Code)
}

// EventType identifies a progress event.
type EventType int

const (
	// EventStarted fires once per task, when the total media duration has
	// been observed on the diagnostic stream.
	EventStarted EventType = iota
	// EventProgress carries the media time transcoded so far.
	EventProgress
	// EventSuccess fires once when the process exits cleanly.
	EventSuccess
	// EventFailure fires once when the process exits nonzero or never
	// launched; Err carries the cause.
	EventFailure
)

// Event is one normalized progress signal for a running task.
type Event struct {
	Type    EventType
	Total   float64 // seconds, set on EventStarted
	Elapsed float64 // seconds, set on EventProgress
	Err     error   // set on EventFailure
}
