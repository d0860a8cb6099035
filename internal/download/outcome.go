package download

import "hlsgrab/internal/batch"

// Outcome is the terminal result of one task.
type Outcome struct {
	Task batch.Task
	Err  error
}

// Downloaded reports whether the task completed successfully.
func (o Outcome) Downloaded() bool {
	return o.Err == nil
}

// Reason describes a failed outcome, empty on success.
func (o Outcome) Reason() string {
	if o.Err == nil {
		return ""
	}
	return o.Err.Error()
}
