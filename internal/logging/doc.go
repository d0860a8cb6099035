// Package logging builds slog loggers for the CLI.
//
// Loggers are constructed from Options derived from configuration. Two
// handler formats exist: a console handler that prints a compact
// timestamp/level/component header followed by selected fields, and a JSON
// handler for machine consumption. Helpers in attrs.go keep call sites free
// of direct slog imports.
package logging
