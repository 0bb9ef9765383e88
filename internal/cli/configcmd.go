package cli

import (
	"fmt"
	"os"

	"github.com/iwvelando/lng-economics/internal/config"
	"github.com/iwvelando/lng-economics/pkg/constants"
	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Generate or validate scenario files",
		Long: `Manage scenario files.

Subcommands:
  init     - Generate a sample scenario file
  validate - Validate an existing scenario file

Examples:
  lng-economics config init -o scenarios.yaml
  lng-economics config validate -f scenarios.yaml`,
	}
	cmd.AddCommand(newConfigInitCmd(), newConfigValidateCmd())
	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var (
		outputPath string
		force      bool
	)
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Generate a sample scenario file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				if _, err := os.Stat(outputPath); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", outputPath)
				}
			}
			if err := config.DefaultConfiguration().SaveToFile(outputPath); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote sample scenario file to %s\n", outputPath)
			return nil
		},
	}
	cmd.Flags().StringVarP(&outputPath, "output", "o", constants.DefaultConfigFile, "output scenario file path")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}

func newConfigValidateCmd() *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a scenario file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := config.LoadConfiguration(path)
			if err != nil {
				return err
			}
			if err := conf.Validate(); err != nil {
				return fmt.Errorf("%s is invalid: %w", path, err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s is valid: %d scenarios, %d active\n", path, len(conf.Scenarios), len(conf.ActiveScenarios()))
			for _, warning := range conf.ValidateConfiguration() {
				fmt.Fprintf(out, "warning: %s\n", warning)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&path, "file", "f", "", "path to scenario file (required)")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
