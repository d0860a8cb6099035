// Package batch defines the download task model and its persisted snapshot.
//
// A Batch is an ordered list of Tasks produced by one discovery pass or
// loaded verbatim from a previous run. Order is significant: it drives both
// naming and execution. Tasks never change after creation; saving a batch
// replaces the snapshot wholesale. Store reads and writes the snapshot as a
// JSON array, and Lock guards the snapshot against concurrent runs.
package batch
