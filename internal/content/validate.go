package content

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"contentindex/internal/failure"
)

var itemValidator = validator.New(validator.WithRequiredStructEnabled())

// EnsureUniqueIDs returns a validation error when two items of the same
// platform share an id. The same id on different platforms is allowed.
func EnsureUniqueIDs(items []Item) error {
	seen := make(map[Platform]map[string]struct{}, len(Platforms))
	for _, item := range items {
		ids, ok := seen[item.Platform]
		if !ok {
			ids = make(map[string]struct{})
			seen[item.Platform] = ids
		}
		if _, dup := ids[item.ID]; dup {
			return failure.Wrap(failure.ErrValidation, "content", "unique ids",
				fmt.Sprintf("duplicate id %q in platform %q", item.ID, item.Platform), nil)
		}
		ids[item.ID] = struct{}{}
	}
	return nil
}

// ValidateItems checks every item's fields and then id uniqueness.
func ValidateItems(items []Item) error {
	for _, item := range items {
		if err := itemValidator.Struct(item); err != nil {
			return failure.Wrap(failure.ErrValidation, "content", "validate item",
				fmt.Sprintf("%s/%s: %s", item.Platform, item.ID, describe(err)), nil)
		}
	}
	return EnsureUniqueIDs(items)
}

func describe(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		parts = append(parts, fmt.Sprintf("%s failed %s", strings.ToLower(fe.Field()), fe.Tag()))
	}
	return strings.Join(parts, ", ")
}
