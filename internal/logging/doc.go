// Package logging constructs slog loggers for shelfsync.
//
// Two output formats are supported: a human-oriented console format (colored
// when writing to a terminal) and line-delimited JSON. Helpers mirror the
// slog attribute constructors so call sites import a single package, and
// NewNop returns a logger that discards everything for tests and optional
// dependencies.
package logging
