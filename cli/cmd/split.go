package cmd

import (
	"errors"

	"github.com/spf13/cobra"
	"github.com/vippsas/coqstep"
	"gopkg.in/yaml.v3"
)

var (
	splitCmd = &cobra.Command{
		Use:   "split [file]",
		Short: "Print every statement of a Coq file, or of stdin",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 1 {
				_ = cmd.Help()
				return errors.New("too many arguments")
			}

			config, err := LoadConfig()
			if err != nil {
				return err
			}
			if len(args) == 1 {
				config.Input = args[0]
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

			return coqstep.Split(cmd.Context(), source, cmd.OutOrStdout(), logger.WithField("input", config.Input))
		},
	}

	configCmd = &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 {
				_ = cmd.Help()
				return errors.New("too many arguments")
			}
			config, err := LoadConfig()
			if err != nil {
				return err
			}
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			if err := enc.Encode(config); err != nil {
				return err
			}
			return enc.Close()
		},
	}
)

func init() {
	rootCmd.AddCommand(splitCmd)
	rootCmd.AddCommand(configCmd)
}
