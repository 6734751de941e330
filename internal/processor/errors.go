// ABOUTME: Sentinel errors for the data processing pipeline.
// ABOUTME: Distinguishes the empty-data-directory case from per-file parse failures.
package processor

import "errors"

var (
	// ErrNoSessions means no files matched the session pattern in the
	// data directory.
	ErrNoSessions = errors.New("no session files found")

	// ErrNotLoaded means a query ran before any successful load.
	ErrNotLoaded = errors.New("no session data loaded")
)
