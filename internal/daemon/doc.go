// Package daemon hosts the long-running shelfsync process: it enforces
// single-instance execution through a file lock and fronts the store and
// reconciliation engine for IPC callers.
package daemon
