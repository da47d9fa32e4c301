package main

import (
	"github.com/spf13/cobra"

	"monserial/internal/catalog"
	"monserial/internal/logging"
	"monserial/internal/mapping"
)

func runList(cmd *cobra.Command, ctx *commandContext) error {
	cat, err := ctx.discover(cmd)
	if err != nil {
		return err
	}
	return catalog.WriteListing(cmd.OutOrStdout(), cat)
}

func runMap(cmd *cobra.Command, ctx *commandContext, tokens []string) error {
	rules, err := mapping.ParseRules(tokens)
	if err != nil {
		return err
	}

	cat, err := ctx.discover(cmd)
	if err != nil {
		return err
	}

	logger, err := ctx.ensureLogger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	logger.Debug("reconciling rules",
		logging.Int("rules", len(rules)),
		logging.Int("displays", cat.Len()),
	)
	return mapping.NewReconciler(cat.BySerial(), logger).Write(cmd.OutOrStdout(), rules)
}
