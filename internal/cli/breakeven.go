package cli

import (
	"github.com/iwvelando/lng-economics/internal/config"
	"github.com/iwvelando/lng-economics/pkg/constants"
	"github.com/spf13/cobra"
)

func newBreakevenCmd(opts *rootOptions) *cobra.Command {
	terms := &termFlags{}
	var (
		directive config.BreakevenConfig
		lower     float64
		upper     float64
	)
	cmd := &cobra.Command{
		Use:   "breakeven",
		Short: "Solve for the value of one input at which total P&L hits a target",
		Long: `Bisect one input between --min and --max until total P&L equals --target.

Supported fields: salesPrice, purchasePrice, hedgePrice, freightDeduct,
regasFee, pipelineTariff, dailyCharterRate, speedKnots (snake_case accepted).

Example:
  lng-economics breakeven --field salesPrice --min 5 --max 20 \
    --deal_type DES --cargo_mmbtu 3000000 --distance_nm 9000`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d := directive
			d.Min = &lower
			d.Max = &upper
			return runCargo(cmd, opts, terms, []config.BreakevenConfig{d})
		},
	}
	terms.register(cmd)

	fs := cmd.Flags()
	fs.StringVar(&directive.Field, "field", "", "input to solve for (required)")
	fs.Float64Var(&lower, "min", 0, "lower bound of the search (required)")
	fs.Float64Var(&upper, "max", 0, "upper bound of the search (required)")
	fs.Float64Var(&directive.Target, "target", 0, "total P&L to solve for, USD")
	fs.Float64Var(&directive.Tolerance, "tolerance", constants.DefaultBreakevenTolerance, "stop when the bracket is narrower than this")
	fs.IntVar(&directive.MaxIterations, "max-iterations", constants.DefaultBreakevenMaxIterations, "maximum bisection steps")
	_ = cmd.MarkFlagRequired("field")
	_ = cmd.MarkFlagRequired("min")
	_ = cmd.MarkFlagRequired("max")

	return cmd
}
