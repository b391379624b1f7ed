package failure

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMissingFile   = errors.New("missing file")
	ErrValidation    = errors.New("validation error")
	ErrConfiguration = errors.New("configuration error")
	ErrConflict      = errors.New("conflict")
)

// Wrap builds an error message that includes component context while tagging
// it with the provided marker. The marker should be one of the exported
// sentinel errors above.
func Wrap(marker error, component, operation, message string, err error) error {
	detail := buildDetail(component, operation, message)
	if marker == nil {
		marker = ErrValidation
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// Kind returns a short event name for the error's marker, or "unknown".
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrMissingFile):
		return "missing_file"
	case errors.Is(err, ErrValidation):
		return "validation_failed"
	case errors.Is(err, ErrConfiguration):
		return "configuration_invalid"
	case errors.Is(err, ErrConflict):
		return "run_conflict"
	default:
		return "unknown"
	}
}

// Hint returns a next step suitable for the error_hint log field.
func Hint(err error) string {
	switch {
	case errors.Is(err, ErrMissingFile):
		return "create the missing file or fix the configured path"
	case errors.Is(err, ErrValidation):
		return "fix the reported content folder or README markers and rerun"
	case errors.Is(err, ErrConfiguration):
		return "run `contentindex config validate` and correct the config file"
	case errors.Is(err, ErrConflict):
		return "wait for the other run to finish"
	default:
		return "check logs for details"
	}
}

func buildDetail(component, operation, message string) string {
	parts := make([]string, 0, 3)
	if component = strings.TrimSpace(component); component != "" {
		parts = append(parts, component)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "generation failure"
	}
	return strings.Join(parts, ": ")
}
