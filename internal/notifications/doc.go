// Package notifications delivers push notifications for reconciliation
// events via ntfy. When no topic is configured a no-op implementation is
// returned, so callers never need to nil-check.
package notifications
