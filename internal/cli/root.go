// Package cli wires the lng-economics commands.
package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/iwvelando/lng-economics/internal/config"
	"github.com/iwvelando/lng-economics/pkg/constants"
	"github.com/iwvelando/lng-economics/pkg/id"
	"github.com/iwvelando/lng-economics/pkg/output"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Version is set at build time with -ldflags "-X .../internal/cli.Version=...".
var Version = "dev"

// rootOptions holds the global flags shared by every command.
type rootOptions struct {
	logging      config.LoggingConfig
	outputFormat string
	outputFile   string
	envErr       error
}

// logger builds the zap logger for a command, layering the global flags over
// the given configuration.
func (o *rootOptions) logger(base config.LoggingConfig) (*zap.Logger, error) {
	return initializeLogger(base, o.logging)
}

// outputOptions resolves the output format and file, flags first.
func (o *rootOptions) outputOptions(base config.OutputConfig) output.Options {
	opts := output.Options{
		Format:      base.Format,
		File:        base.File,
		RunID:       id.New(),
		GeneratedAt: time.Now(),
	}
	if o.outputFormat != "" {
		opts.Format = o.outputFormat
	}
	if o.outputFile != "" {
		opts.File = o.outputFile
	}
	return opts
}

// NewRootCommand builds the command tree. Flags not given on the command
// line are read from LNG_<FLAG> environment variables.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "lng-economics",
		Short: "LNG cargo economics, breakeven and market analytics",
		Long: `lng-economics prices single LNG cargoes sold FOB or delivered DES.

It provides tools for:
  - Computing the P&L of one cargo from command-line terms
  - Evaluating a file of named scenarios
  - Solving for the breakeven value of a price, fee or voyage input
  - Summarizing hub spreads, volatility and correlation from a price file`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.envErr
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.logging.Level, "log-level", "", "log level override (debug, info, warn, error)")
	flags.StringVar(&opts.logging.Format, "log-format", "", "log format override (json, console)")
	flags.StringVar(&opts.logging.OutputFile, "log-file", "", "write logs to this file")
	flags.StringVar(&opts.outputFormat, "output-format", "", "output format override: pretty, csv, json, xlsx")
	flags.StringVar(&opts.outputFile, "out", "", "write output to this file (required for xlsx)")

	root.AddCommand(
		newCargoCmd(opts),
		newRunCmd(opts),
		newBreakevenCmd(opts),
		newMarketCmd(opts),
		newConfigCmd(),
		newVersionCmd(),
	)

	opts.envErr = bindEnvironment(root)
	return root
}

// Execute runs the root command.
func Execute() error {
	return NewRootCommand().Execute()
}

// bindEnvironment copies LNG_* environment variables into flags of every
// command. Values given on the command line are parsed afterwards and win.
func bindEnvironment(root *cobra.Command) error {
	v := viper.New()
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	var errs []string
	apply := func(fs *pflag.FlagSet) {
		fs.VisitAll(func(f *pflag.Flag) {
			if f.Name == "help" || !v.IsSet(f.Name) {
				return
			}
			if err := fs.Set(f.Name, v.GetString(f.Name)); err != nil {
				errs = append(errs, fmt.Sprintf("%s_%s: %v", constants.EnvPrefix, strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_")), err))
			}
		})
	}

	var visit func(c *cobra.Command)
	visit = func(c *cobra.Command) {
		apply(c.PersistentFlags())
		apply(c.LocalNonPersistentFlags())
		for _, child := range c.Commands() {
			visit(child)
		}
	}
	visit(root)

	if len(errs) > 0 {
		return fmt.Errorf("invalid environment override: %s", strings.Join(errs, "; "))
	}
	return nil
}
