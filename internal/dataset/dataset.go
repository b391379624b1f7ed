package dataset

import (
	"bytes"
	"encoding/json"
	"fmt"

	"contentindex/internal/content"
	"contentindex/internal/fileutil"
)

// DefaultVariable is the global the site reads items from.
const DefaultVariable = "CONTENT_DATA"

// Render returns "window.<variable> = <json>;" with two-space indentation.
// HTML characters and non-ASCII text are written verbatim and there is no
// trailing newline.
func Render(variable string, items []content.Item) ([]byte, error) {
	if variable == "" {
		variable = DefaultVariable
	}
	if items == nil {
		items = []content.Item{}
	}
	normalized := make([]content.Item, len(items))
	for i, item := range items {
		if item.Tags == nil {
			item.Tags = []string{}
		}
		normalized[i] = item
	}

	var body bytes.Buffer
	enc := json.NewEncoder(&body)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(normalized); err != nil {
		return nil, fmt.Errorf("encode items: %w", err)
	}

	var out bytes.Buffer
	out.Grow(body.Len() + len(variable) + 16)
	out.WriteString("window.")
	out.WriteString(variable)
	out.WriteString(" = ")
	out.Write(bytes.TrimRight(body.Bytes(), "\n"))
	out.WriteByte(';')
	return out.Bytes(), nil
}

// Write renders items and atomically replaces the file at path.
func Write(path, variable string, items []content.Item) error {
	data, err := Render(variable, items)
	if err != nil {
		return err
	}
	if err := fileutil.WriteFileAtomic(path, data, 0o644); err != nil {
		return fmt.Errorf("write data file %s: %w", path, err)
	}
	return nil
}
