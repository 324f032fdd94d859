// Package cliutil holds the small pieces of CLI ambiance that aren't
// part of the search engine itself: a sensible default thread count, a
// memory-budget warning, and TTY-aware status output.
package cliutil

// DefaultThreads returns the --threads default: 4, or 1 in a debug
// build, matching the original engine's own do-debug feature flag
// (compile-time DEBUG const gating the same default-value choice).
func DefaultThreads() int {
	if Debug {
		return 1
	}
	return 4
}
