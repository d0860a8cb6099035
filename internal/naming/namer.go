// Package naming assigns deterministic local filenames to discovered links.
package naming

import (
	"fmt"
	"net/url"
	"strings"

	"hlsgrab/internal/batch"
)

// MediaExtension is the container extension given to downloaded files.
const MediaExtension = "mp4"

// Assign names each link in order and returns the resulting tasks.
//
// The domain key is the last two labels of the link's host joined with an
// underscore (cdn.example.com -> example_com). A per-key counter numbers
// consecutive links from the same domain; the counter resets to zero every
// time the key changes from the previous link, so numbering follows runs of
// same-domain links rather than global per-domain counts. Revisiting a
// domain later in the list starts again at 00.
func Assign(links []string) batch.Batch {
	tasks := make(batch.Batch, 0, len(links))
	counters := make(map[string]int)
	previousKey := ""
	for _, link := range links {
		key := domainKey(link)
		if key != previousKey {
			counters[key] = 0
		}
		name := fmt.Sprintf("%s_%02d.%s", key, counters[key], MediaExtension)
		counters[key]++
		previousKey = key
		tasks = append(tasks, batch.NewTask(link, name))
	}
	return tasks
}

// domainKey reduces a link's host to its last two labels. Hosts that fail to
// parse or have a single label fall back to whatever is available so naming
// never aborts a batch.
func domainKey(link string) string {
	host := ""
	if parsed, err := url.Parse(link); err == nil {
		host = parsed.Hostname()
	}
	if host == "" {
		return "unknown"
	}
	labels := strings.Split(host, ".")
	if len(labels) > 2 {
		labels = labels[len(labels)-2:]
	}
	return strings.Join(labels, "_")
}
