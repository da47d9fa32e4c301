package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"monserial/internal/preflight"
)

func newCheckCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Check that displays can be enumerated and decoded",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			defer ctx.close()

			cfg, err := ctx.ensureConfig(cmd)
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			results := preflight.RunAll(cfg, logger)
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderChecks(results, shouldColorize(out)))

			if preflight.Failed(results) {
				return errors.New("one or more checks failed")
			}
			return nil
		},
	}
}
