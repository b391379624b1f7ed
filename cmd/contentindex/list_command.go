package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"contentindex/internal/content"
	"contentindex/internal/generator"
)

func newListCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool
	var platformFilter string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List scanned content items",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var platform content.Platform
			if trimmed := strings.TrimSpace(platformFilter); trimmed != "" {
				p, err := content.ParsePlatform(strings.ToLower(trimmed))
				if err != nil {
					return err
				}
				platform = p
			}

			logger, err := ctx.logger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			cfg, _ := ctx.ensureConfig()

			items, err := generator.New(cfg, logger).Collect(cmd.Context())
			if err != nil {
				return report(logger, "failed to scan content", err)
			}
			if platform != "" {
				filtered := items[:0:0]
				for _, item := range items {
					if item.Platform == platform {
						filtered = append(filtered, item)
					}
				}
				items = filtered
			}

			if jsonOutput {
				if items == nil {
					items = []content.Item{}
				}
				return writeJSON(cmd, items)
			}

			out := cmd.OutOrStdout()
			if len(items) == 0 {
				fmt.Fprintln(out, "No content items found")
				return nil
			}
			rows := make([][]string, 0, len(items))
			for _, item := range items {
				rows = append(rows, []string{
					item.Platform.Label(),
					item.ID,
					item.Title,
					strings.Join(item.Tags, ", "),
					yesNo(item.URL != ""),
					yesNo(item.HasDownload()),
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Platform", "ID", "Title", "Tags", "URL", "Files"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignLeft, alignLeft},
			))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output items as JSON")
	cmd.Flags().StringVarP(&platformFilter, "platform", "p", "", "Only list items of this platform (linkedin or youtube)")
	return cmd
}
