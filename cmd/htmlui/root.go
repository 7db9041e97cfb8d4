package main

import (
	"github.com/spf13/cobra"

	"github.com/accompanyhq/htmlui/internal/logger"
)

type rootFlags struct {
	configPath string
	verbose    bool
}

func newRootCmd(log *logger.Logger) *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "htmlui",
		Short:         "htmlui compiles theme tokens and safelists for the component kit",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "htmlui.yaml", "Path to build configuration file")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newSafelistCmd(flags, log))
	cmd.AddCommand(newThemeCmd(flags, log))
	cmd.AddCommand(newPreviewCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func commandLogger(log *logger.Logger, flags *rootFlags) *logger.Logger {
	if !flags.verbose {
		return log
	}
	verbose, err := logger.New(logger.Options{Level: "debug", HumanReadable: true})
	if err != nil {
		return log
	}
	return verbose
}
