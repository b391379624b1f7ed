package failure_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"contentindex/internal/failure"
)

func TestWrapIncludesContext(t *testing.T) {
	base := errors.New("boom")
	err := failure.Wrap(failure.ErrMissingFile, "readme", "read", "README.md", base)
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, failure.ErrMissingFile) {
		t.Fatalf("expected marker to be retained, got %v", err)
	}
	if !errors.Is(err, base) {
		t.Fatalf("expected wrapped error to contain base error, got %v", err)
	}
	msg := err.Error()
	for _, fragment := range []string{"readme", "read", "README.md", "boom"} {
		if !strings.Contains(msg, fragment) {
			t.Fatalf("expected %q in error string %q", fragment, msg)
		}
	}
}

func TestWrapDefaultsMarkerAndDetail(t *testing.T) {
	err := failure.Wrap(nil, "", "", "", nil)
	if !errors.Is(err, failure.ErrValidation) {
		t.Fatalf("expected validation marker by default, got %v", err)
	}
	if !strings.Contains(err.Error(), "generation failure") {
		t.Fatalf("expected fallback detail, got %q", err.Error())
	}
}

func TestKindMapping(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{failure.Wrap(failure.ErrMissingFile, "readme", "", "", nil), "missing_file"},
		{failure.Wrap(failure.ErrValidation, "content", "", "", nil), "validation_failed"},
		{failure.Wrap(failure.ErrConfiguration, "config", "", "", nil), "configuration_invalid"},
		{fmt.Errorf("outer: %w", failure.Wrap(failure.ErrConflict, "generator", "", "", nil)), "run_conflict"},
		{errors.New("plain"), "unknown"},
	}
	for _, tc := range tests {
		if got := failure.Kind(tc.err); got != tc.want {
			t.Fatalf("Kind(%v) = %q, want %q", tc.err, got, tc.want)
		}
	}
}

func TestHintIsNeverEmpty(t *testing.T) {
	for _, err := range []error{failure.ErrMissingFile, failure.ErrValidation, failure.ErrConfiguration, failure.ErrConflict, errors.New("x")} {
		if failure.Hint(err) == "" {
			t.Fatalf("expected hint for %v", err)
		}
	}
}
