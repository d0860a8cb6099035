// Package ffprobe wraps ffprobe invocations used to probe manifest
// durations before downloading. Probes run under a short budget; an expired
// or failed probe degrades to an unknown duration instead of failing the
// task that triggered it.
package ffprobe
