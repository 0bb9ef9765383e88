package cli

import (
	"fmt"

	"github.com/iwvelando/lng-economics/internal/config"
	"github.com/iwvelando/lng-economics/pkg/constants"
	"github.com/iwvelando/lng-economics/pkg/market"
	"github.com/iwvelando/lng-economics/pkg/output"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newMarketCmd(opts *rootOptions) *cobra.Command {
	var (
		pricesPath string
		period     string
		window     int
	)
	cmd := &cobra.Command{
		Use:   "market",
		Short: "Summarize hub spreads, volatility and correlation from a price file",
		Long: `Read daily closing prices from a CSV file (date,JKM,TTF,NBP,Brent), keep the
trailing period and report spreads, rolling annualized volatility and the
correlation of daily returns.

Example:
  lng-economics market --prices prices.csv --period 12mo --window 20`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := opts.logger(config.LoggingConfig{})
			if err != nil {
				return err
			}
			defer func() {
				_ = logger.Sync()
			}()

			p, err := market.ParsePeriod(period)
			if err != nil {
				return err
			}
			table, err := market.LoadCSVFile(pricesPath)
			if err != nil {
				return err
			}
			if table.Dropped > 0 {
				logger.Info(fmt.Sprintf("dropped %d incomplete price rows", table.Dropped),
					zap.String("op", "cli.market"),
					zap.String("file", pricesPath),
				)
			}

			dashboard, err := market.BuildDashboard(table.Trim(p), window)
			if err != nil {
				return err
			}
			return output.Dashboard(cmd.OutOrStdout(), opts.outputOptions(config.OutputConfig{}), dashboard, p.String())
		},
	}
	cmd.Flags().StringVar(&pricesPath, "prices", "", "path to price CSV (required)")
	cmd.Flags().StringVar(&period, "period", constants.DefaultPeriod, "history period, e.g. 12mo, 24mo, 5y")
	cmd.Flags().IntVar(&window, "window", constants.DefaultVolatilityWindow, "rolling volatility window, rows")
	_ = cmd.MarkFlagRequired("prices")
	return cmd
}
