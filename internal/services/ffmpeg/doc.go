// Package ffmpeg drives one ffmpeg process per download task and turns its
// interleaved output into normalized progress events.
//
// ffmpeg writes a human-oriented diagnostic stream on stderr and, when
// invoked with -progress pipe:1, a machine-readable key=value stream on
// stdout. Parser consumes both incrementally: the first "Duration:" line on
// the diagnostic stream fixes the total media time and gates all progress;
// out_time fields on the machine-readable stream become elapsed seconds.
// CLI wires a spawned process to a Parser and reports the terminal outcome.
package ffmpeg
