// Package download sequences a task batch through the external media tool.
//
// The orchestrator runs tasks strictly one at a time: it spawns one ffmpeg
// process per task, forwards the task's progress events to a renderer, and
// records an outcome per task in input order. A failing task never aborts
// the batch; the next task is always attempted.
package download
