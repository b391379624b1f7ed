package main

import (
	"encoding/json"

	"github.com/spf13/cobra"
)

// writeJSON writes v to stdout as indented JSON. HTML characters in titles
// and URLs are left unescaped to match the data file.
func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
