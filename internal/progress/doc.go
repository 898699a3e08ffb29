// Package progress derives cross-platform resume estimates and drift reports
// from a consolidated book record.
//
// Estimates are linear interpolations of one platform's progress fraction
// onto the other platform's scale. Narration pace is not modeled, so a time
// estimate for an audiobook is approximate by design. Every function returns
// nil when its required inputs are absent; missing data is not an error.
package progress
