package cli

import (
	"fmt"

	"github.com/iwvelando/lng-economics/internal/config"
	"github.com/iwvelando/lng-economics/internal/scenario"
	"github.com/iwvelando/lng-economics/pkg/constants"
	"github.com/iwvelando/lng-economics/pkg/output"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newRunCmd(opts *rootOptions) *cobra.Command {
	var configPath string
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Evaluate every active scenario in a scenario file",
		Long: `Load a scenario file, evaluate each active scenario in order and print
the reports together with any breakeven results.

Example:
  lng-economics run -c scenarios.yaml --output-format csv`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScenarios(cmd, opts, configPath)
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", constants.DefaultConfigFile, "path to scenario file")
	return cmd
}

func runScenarios(cmd *cobra.Command, opts *rootOptions, configPath string) error {
	conf, err := config.LoadConfiguration(configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration at %s: %w", configPath, err)
	}

	logger, err := opts.logger(conf.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	outputOpts := opts.outputOptions(conf.Output)
	conf.Output = config.OutputConfig{Format: outputOpts.Format, File: outputOpts.File}
	if err := conf.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	for _, warning := range conf.ValidateConfiguration() {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "cli.run"),
		)
	}

	results, err := scenario.Run(logger, *conf)
	if err != nil {
		return fmt.Errorf("failed to evaluate scenarios: %w", err)
	}
	logger.Info("scenarios evaluated",
		zap.String("op", "cli.run"),
		zap.String("runId", outputOpts.RunID),
		zap.Int("scenarios", len(results)),
	)

	return output.Results(cmd.OutOrStdout(), outputOpts, results)
}
