package cmd

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/vippsas/coqstep"
)

var (
	rootCmd = &cobra.Command{
		Use:          "coqstep <line> <column> (next|to <line> <column>)",
		Short:        "Find Coq statement boundaries in the text on stdin",
		SilenceUsage: true,
		Long: `Reads Coq source on stdin, which starts at <line> <column> of the editor buffer,
and prints the span and text of each statement found, one per line, followed by a blank line.

  next             stop after the first statement
  to <line> <col>  stop at the first statement ending at or after <line> <col>`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := coqstep.ParseRequest(args)
			if err != nil {
				var usage coqstep.UsageError
				if errors.As(err, &usage) {
					cmd.PrintErr(cmd.UsageString())
				}
				return err
			}

			config, err := LoadConfig()
			if err != nil {
				return err
			}
			logger, err := config.Logger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			source, err := config.OpenInput(cmd.InOrStdin())
			if err != nil {
				return err
			}
			defer source.Close()

			return coqstep.Step(cmd.Context(), source, cmd.OutOrStdout(), req, logger)
		},
	}

	configFile string
	inputFile  string
	logLevel   string
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "path to configuration file (default ./"+defaultConfigFilename+" if present)")
	rootCmd.PersistentFlags().StringVarP(&inputFile, "input", "i", "", "read Coq source from this file instead of stdin")
	rootCmd.PersistentFlags().StringVarP(&logLevel, "log-level", "l", "", "log level for diagnostics on stderr (default warning)")
	// flags go before the positional arguments, so a negative number like
	// `to -2 1` reaches ParseRequest instead of being read as a flag
	rootCmd.Flags().SetInterspersed(false)
}
