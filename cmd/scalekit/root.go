package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "scalekit",
		Short:         "scalekit edits color palettes built from scales, curves and naming schemes",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Without a subcommand, open the editor on the first palette
			return runEdit(cmd, flags, "")
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to config.yaml (default $SCALEKIT_HOME/config.yaml)")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newEditCmd(flags))
	cmd.AddCommand(newPaletteCmd(flags))
	cmd.AddCommand(newUndoCmd(flags))
	cmd.AddCommand(newRedoCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
