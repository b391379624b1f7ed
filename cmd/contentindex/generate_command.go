package main

import (
	"github.com/spf13/cobra"

	"contentindex/internal/generator"
)

func newGenerateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Write the data file and sync README markers (default command)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, ctx)
		},
	}
}

func runGenerate(cmd *cobra.Command, ctx *commandContext) error {
	logger, err := ctx.logger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	cfg, _ := ctx.ensureConfig()

	if _, err := generator.New(cfg, logger).Run(cmd.Context()); err != nil {
		return report(logger, "failed to generate data", err)
	}
	return nil
}
