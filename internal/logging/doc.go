// Package logging assembles the structured slog loggers used by contentindex.
//
// It owns the console and JSON handlers, level parsing, and output plumbing,
// plus typed attribute helpers and the standard field names (component,
// event_type, error_hint, run_id). A no-op logger is provided for tests and
// wiring code that cannot fail.
package logging
