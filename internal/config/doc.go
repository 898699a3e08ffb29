// Package config loads, defaults, normalizes, and validates shelfsync
// configuration from a TOML file.
//
// Configuration sections by subsystem:
//   - Paths: data and log directories
//   - Matching: fuzzy title/author matching thresholds
//   - Sync: cross-platform drift threshold
//   - Notifications: ntfy push notification settings
//   - Logging: log format and level
//
// Load applies defaults for missing values, expands ~ in paths, and validates
// the result, so callers always receive a usable configuration.
package config
