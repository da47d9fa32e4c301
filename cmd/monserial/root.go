package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var drmRootFlag string
	var logLevelFlag string
	var skipUnparsable bool
	var listFlag bool
	var mapFlags []string

	ctx := newCommandContext(&configFlag, &drmRootFlag, &logLevelFlag, &skipUnparsable)

	rootCmd := &cobra.Command{
		Use:   "monserial",
		Short: "Map monitors to sway outputs by EDID serial number",
		Long: `monserial reads the EDID of every display under /sys/class/drm and either
lists the outputs with their serial numbers (--list) or prints sway
"set $VAR <output>" lines for VAR:S/N rules (--map, repeatable).`,
		Example: `  monserial --list
  monserial --map left:16843009 --map right:33686018 > ~/.config/sway/outputs`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			defer func() {
				if closeErr := ctx.close(); err == nil {
					err = closeErr
				}
			}()
			switch {
			case listFlag:
				return runList(cmd, ctx)
			case len(mapFlags) > 0:
				return runMap(cmd, ctx, mapFlags)
			default:
				return nil
			}
		},
	}

	rootCmd.Flags().BoolVar(&listFlag, "list", false, "Display table of Short Names and Serial Numbers")
	rootCmd.Flags().StringArrayVar(&mapFlags, "map", nil, "Mapping rule from sway variable name to serial number, as VAR:S/N (repeatable)")

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&drmRootFlag, "drm-root", "", "Directory holding DRM connectors (default /sys/class/drm)")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Log level for stderr diagnostics (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&skipUnparsable, "skip-unparsable", false, "Skip displays whose EDID cannot be decoded instead of failing")

	rootCmd.AddCommand(newConfigCommand())
	rootCmd.AddCommand(newCheckCommand(ctx))

	return rootCmd
}
