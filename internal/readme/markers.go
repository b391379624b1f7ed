package readme

import (
	"fmt"
	"regexp"

	"contentindex/internal/failure"
)

// ReplaceInline replaces the value between the single inline marker pair for
// key. Zero or multiple pairs are a validation error.
func ReplaceInline(doc, key, value string) (string, error) {
	pattern := regexp.MustCompile(`(?s)(<!-- AUTO:` + regexp.QuoteMeta(key) + ` -->)(.*?)(<!-- /AUTO:` + regexp.QuoteMeta(key) + ` -->)`)
	return replaceOnce(doc, pattern, "marker pair", key, value)
}

// ReplaceBlock replaces the lines between the single KEY_START/KEY_END marker
// pair. The region becomes "\n" + value + "\n".
func ReplaceBlock(doc, key, value string) (string, error) {
	pattern := regexp.MustCompile(`(?s)(<!-- AUTO:` + regexp.QuoteMeta(key) + `_START -->)(.*?)(<!-- AUTO:` + regexp.QuoteMeta(key) + `_END -->)`)
	return replaceOnce(doc, pattern, "block marker pair", key, "\n"+value+"\n")
}

func replaceOnce(doc string, pattern *regexp.Regexp, kind, key, value string) (string, error) {
	matches := pattern.FindAllStringSubmatchIndex(doc, -1)
	if len(matches) != 1 {
		return "", failure.Wrap(failure.ErrValidation, "readme", "replace marker",
			fmt.Sprintf("expected exactly one %s for %s, found %d", kind, key, len(matches)), nil)
	}
	m := matches[0]
	// m[3] ends the opening marker, m[6] starts the closing marker.
	return doc[:m[3]] + value + doc[m[6]:], nil
}
