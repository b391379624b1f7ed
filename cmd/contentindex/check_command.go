package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"contentindex/internal/content"
	"contentindex/internal/generator"
)

func newCheckCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate content folders and README markers without writing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := ctx.logger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			cfg, _ := ctx.ensureConfig()

			summary, err := generator.New(cfg, logger).Check(cmd.Context())
			if err != nil {
				return report(logger, "content index check failed", err)
			}

			rows := make([][]string, 0, len(content.Platforms)+1)
			for _, p := range content.Platforms {
				rows = append(rows, []string{p.Label(), strconv.Itoa(summary.Counts[p])})
			}
			rows = append(rows, []string{"Total", strconv.Itoa(summary.Total)})

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable([]string{"Platform", "Items"}, rows, []columnAlignment{alignLeft, alignRight}))
			if len(summary.Tags) > 0 {
				fmt.Fprintf(out, "Tags: %s\n", strings.Join(summary.Tags, ", "))
			}
			fmt.Fprintf(out, "README up to date: %s\n", yesNo(!summary.ReadmeChanged))
			return nil
		},
	}
}
