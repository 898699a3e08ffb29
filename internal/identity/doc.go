// Package identity derives comparison keys and deterministic record IDs from
// raw book titles and authors.
//
// Platform watchers report free-text metadata that differs between stores for
// the same book ("Project Hail Mary" vs "Project Hail Mary: A Novel
// (Unabridged)"). NormalizeTitle and NormalizeAuthor reduce both to a common
// comparison form; BookID hashes the normalized pair into a stable identifier
// that is reproducible across processes and restarts.
package identity
