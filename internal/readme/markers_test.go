package readme_test

import (
	"errors"
	"strings"
	"testing"

	"contentindex/internal/failure"
	"contentindex/internal/readme"
)

func TestReplaceInline(t *testing.T) {
	doc := "Posts: <!-- AUTO:LINKEDIN_COUNT -->12<!-- /AUTO:LINKEDIN_COUNT --> total"
	got, err := readme.ReplaceInline(doc, "LINKEDIN_COUNT", "34")
	if err != nil {
		t.Fatalf("ReplaceInline: %v", err)
	}
	want := "Posts: <!-- AUTO:LINKEDIN_COUNT -->34<!-- /AUTO:LINKEDIN_COUNT --> total"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestReplaceInlineSpansLinesAndKeepsValueLiteral(t *testing.T) {
	doc := "<!-- AUTO:TOTAL_BADGE -->\nold\n<!-- /AUTO:TOTAL_BADGE -->"
	value := `<img src="a?x=1&y=$1" alt="Total">`
	got, err := readme.ReplaceInline(doc, "TOTAL_BADGE", value)
	if err != nil {
		t.Fatalf("ReplaceInline: %v", err)
	}
	if got != "<!-- AUTO:TOTAL_BADGE -->"+value+"<!-- /AUTO:TOTAL_BADGE -->" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestReplaceRequiresExactlyOneMarker(t *testing.T) {
	tests := []struct {
		name  string
		doc   string
		block bool
		count string
	}{
		{"inline missing", "no markers here", false, "found 0"},
		{"inline duplicated", "<!-- AUTO:K -->1<!-- /AUTO:K --> <!-- AUTO:K -->2<!-- /AUTO:K -->", false, "found 2"},
		{"inline unclosed", "<!-- AUTO:K -->1", false, "found 0"},
		{"block missing", "<!-- AUTO:K -->1<!-- /AUTO:K -->", true, "found 0"},
		{"block duplicated", "<!-- AUTO:K_START --><!-- AUTO:K_END -->\n<!-- AUTO:K_START --><!-- AUTO:K_END -->", true, "found 2"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var err error
			if tc.block {
				_, err = readme.ReplaceBlock(tc.doc, "K", "x")
			} else {
				_, err = readme.ReplaceInline(tc.doc, "K", "x")
			}
			if !errors.Is(err, failure.ErrValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if !strings.Contains(err.Error(), tc.count) {
				t.Fatalf("expected %q in %q", tc.count, err.Error())
			}
		})
	}
}

func TestReplaceInlineDoesNotMatchOtherKeys(t *testing.T) {
	doc := "<!-- AUTO:TOTAL_COUNT -->1<!-- /AUTO:TOTAL_COUNT --><!-- AUTO:TOTAL.COUNT -->2<!-- /AUTO:TOTAL.COUNT -->"
	got, err := readme.ReplaceInline(doc, "TOTAL.COUNT", "9")
	if err != nil {
		t.Fatalf("ReplaceInline: %v", err)
	}
	if !strings.Contains(got, "<!-- AUTO:TOTAL_COUNT -->1<") || !strings.Contains(got, "TOTAL.COUNT -->9<") {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestReplaceBlockIsIdempotent(t *testing.T) {
	doc := "before\n<!-- AUTO:TOPIC_BADGES_START -->\nstale\nlines\n<!-- AUTO:TOPIC_BADGES_END -->\nafter"
	once, err := readme.ReplaceBlock(doc, "TOPIC_BADGES", "a\nb")
	if err != nil {
		t.Fatalf("ReplaceBlock: %v", err)
	}
	want := "before\n<!-- AUTO:TOPIC_BADGES_START -->\na\nb\n<!-- AUTO:TOPIC_BADGES_END -->\nafter"
	if once != want {
		t.Fatalf("got %q, want %q", once, want)
	}
	twice, err := readme.ReplaceBlock(once, "TOPIC_BADGES", "a\nb")
	if err != nil {
		t.Fatalf("ReplaceBlock second pass: %v", err)
	}
	if twice != once {
		t.Fatalf("expected idempotent result, got %q", twice)
	}
}
