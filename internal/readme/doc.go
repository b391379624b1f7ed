// Package readme keeps the auto-managed regions of a markdown README in sync
// with the scanned content.
//
// Two marker shapes are supported. Inline markers wrap a single value:
//
//	<!-- AUTO:TOTAL_COUNT -->42<!-- /AUTO:TOTAL_COUNT -->
//
// Block markers wrap whole lines:
//
//	<!-- AUTO:TOPIC_BADGES_START -->
//	...
//	<!-- AUTO:TOPIC_BADGES_END -->
//
// Every marker must occur exactly once. Replacement is idempotent, so running
// the generator twice over the same content leaves the README unchanged.
package readme
