// Package history persists completed runs in SQLite.
//
// Each invocation that downloads a batch records one run row plus one
// outcome row per task, so earlier results stay inspectable after the task
// snapshot has been superseded. The database is bookkeeping, not a work
// queue: nothing reads it to decide what to download next. Schema changes
// bump schemaVersion; users delete the database to adopt a new schema.
package history
