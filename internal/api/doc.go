// Package api defines transport-friendly representations of book records and
// their derived views, shared by the IPC surface and the CLI.
package api
