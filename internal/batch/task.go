package batch

// Task is one source-URL-to-local-filename download unit.
type Task struct {
	SourceURL string `json:"sourceUrl"`
	LocalName string `json:"localName"`
	Label     string `json:"label"`
}

// Batch is an ordered sequence of tasks. Insertion order is significant.
type Batch []Task

// NewTask builds a task with its derived label.
func NewTask(sourceURL, localName string) Task {
	return Task{
		SourceURL: sourceURL,
		LocalName: localName,
		Label:     sourceURL + " to " + localName,
	}
}
