package cli

import (
	"github.com/iwvelando/lng-economics/internal/breakeven"
	"github.com/iwvelando/lng-economics/internal/config"
	"github.com/iwvelando/lng-economics/internal/scenario"
	"github.com/iwvelando/lng-economics/pkg/output"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newCargoCmd(opts *rootOptions) *cobra.Command {
	terms := &termFlags{}
	cmd := &cobra.Command{
		Use:   "cargo",
		Short: "Compute the economics and P&L of one cargo",
		Long: `Compute shipping days, losses, margins and hedge P&L for a single cargo.

Example:
  lng-economics cargo --deal_type DES --cargo_mmbtu 3000000 --distance_nm 9000 \
    --purchase_price_fob 9.5 --hedge_volume_mmbtu 2000000`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCargo(cmd, opts, terms, nil)
		},
	}
	terms.register(cmd)
	return cmd
}

// runCargo evaluates the flag terms, solves any directives and renders the
// single result.
func runCargo(cmd *cobra.Command, opts *rootOptions, terms *termFlags, directives []config.BreakevenConfig) error {
	logger, err := opts.logger(config.LoggingConfig{})
	if err != nil {
		return err
	}
	defer func() {
		_ = logger.Sync()
	}()

	cargo, shipping := terms.terms()
	result, err := scenario.Evaluate(breakeven.NewSolver(logger), cmd.Name(), cargo, shipping, directives)
	if err != nil {
		return err
	}
	for _, warning := range result.Warnings {
		logger.Warn(warning, zap.String("op", "cli."+cmd.Name()))
	}

	return output.Results(cmd.OutOrStdout(), opts.outputOptions(config.OutputConfig{}), []scenario.Result{result})
}
