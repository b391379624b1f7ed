// Package failure defines the error kinds contentindex reports at the top
// level.
//
// Callers tag errors with one of the exported sentinels through Wrap so the
// CLI can log a consistent event type and hint before exiting with a failure
// status. Use errors.Is against the sentinels instead of matching messages.
package failure
