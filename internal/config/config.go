// Package config defines the data structures of a scenario file and
// includes functions for loading it and resolving each scenario's terms.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/iwvelando/lng-economics/pkg/constants"
	"github.com/iwvelando/lng-economics/pkg/economics"
	"github.com/iwvelando/lng-economics/pkg/validation"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Configuration holds all configuration for lng-economics.
type Configuration struct {
	Common    Terms         `yaml:"common,omitempty" mapstructure:"common"`
	Scenarios []Scenario    `yaml:"scenarios" mapstructure:"scenarios"`
	Logging   LoggingConfig `yaml:"logging,omitempty" mapstructure:"logging"`
	Output    OutputConfig  `yaml:"output,omitempty" mapstructure:"output"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty" mapstructure:"level"`           // debug, info, warn, error
	Format     string `yaml:"format,omitempty" mapstructure:"format"`         // json, console
	OutputFile string `yaml:"outputFile,omitempty" mapstructure:"outputFile"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty" mapstructure:"format"` // pretty, csv, json, xlsx
	File   string `yaml:"file,omitempty" mapstructure:"file"`     // required for xlsx
}

// Scenario is one named cargo evaluated by the runner.
type Scenario struct {
	Name      string            `yaml:"name" mapstructure:"name"`
	Active    bool              `yaml:"active" mapstructure:"active"`
	Terms     `yaml:",inline" mapstructure:",squash"`
	Breakeven []BreakevenConfig `yaml:"breakeven,omitempty" mapstructure:"breakeven"`
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there. Keys can be overridden from the environment with the
// LNG_ prefix, e.g. LNG_OUTPUT_FORMAT=csv.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yml")
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := v.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// SaveToFile writes the configuration as YAML.
func (conf *Configuration) SaveToFile(path string) error {
	data, err := yaml.Marshal(conf)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// ActiveScenarios returns the scenarios flagged active, in file order.
func (conf *Configuration) ActiveScenarios() []Scenario {
	var active []Scenario
	for _, scenario := range conf.Scenarios {
		if scenario.Active {
			active = append(active, scenario)
		}
	}
	return active
}

// Validate returns an error for configurations that cannot be evaluated:
// unnamed or duplicate scenarios, unresolvable terms, bad breakeven
// directives and unsupported output formats.
func (conf *Configuration) Validate() error {
	if len(conf.Scenarios) == 0 {
		return fmt.Errorf("configuration has no scenarios")
	}

	if conf.Output.Format != "" {
		if err := validation.ValidateOutputFormat(conf.Output.Format); err != nil {
			return err
		}
		if conf.Output.Format == constants.OutputFormatXLSX && conf.Output.File == "" {
			return fmt.Errorf("output.file is required for %s output", constants.OutputFormatXLSX)
		}
	}

	seen := make(map[string]bool)
	for i := range conf.Scenarios {
		scenario := &conf.Scenarios[i]
		name := strings.TrimSpace(scenario.Name)
		if name == "" {
			return fmt.Errorf("scenario %d has no name", i+1)
		}
		if seen[name] {
			return fmt.Errorf("scenario name %q is used more than once", name)
		}
		seen[name] = true

		if !scenario.Active {
			continue
		}
		if _, _, err := scenario.Resolve(conf.Common); err != nil {
			return fmt.Errorf("scenario %s: %w", name, err)
		}
		for j := range scenario.Breakeven {
			if err := scenario.Breakeven[j].Validate(); err != nil {
				return fmt.Errorf("scenario %s breakeven %d: %w", name, j+1, err)
			}
		}
	}
	return nil
}

// ValidateConfiguration performs general validation of the active scenarios
// and returns warnings. Scenarios that fail to resolve are reported by
// Validate and skipped here.
func (conf *Configuration) ValidateConfiguration() []string {
	var warnings []string
	for _, scenario := range conf.ActiveScenarios() {
		cargo, shipping, err := scenario.Resolve(conf.Common)
		if err != nil {
			continue
		}
		for _, warning := range validation.ScenarioWarnings(cargo, shipping) {
			warnings = append(warnings, fmt.Sprintf("Scenario '%s': %s", scenario.Name, warning))
		}
	}
	return warnings
}

// Resolve merges the scenario's terms over the common terms and the built-in
// defaults.
func (s Scenario) Resolve(common Terms) (economics.CargoTerms, economics.ShippingTerms, error) {
	return s.Terms.Over(common).Resolve()
}

// DefaultConfiguration returns the sample configuration written by
// `config init`.
func DefaultConfiguration() *Configuration {
	return &Configuration{
		Common: Terms{
			SpeedKnots:       floatPtr(constants.DefaultSpeedKnots),
			DailyCharterRate: floatPtr(constants.DefaultDailyCharterRate),
		},
		Scenarios: []Scenario{
			{
				Name:   "des-delivery",
				Active: true,
				Terms: Terms{
					DealType:           string(economics.DES),
					CargoMMBtu:         floatPtr(3_000_000),
					DistanceNM:         floatPtr(9000),
					SalesPriceDES:      floatPtr(12),
					PurchasePriceFOB:   floatPtr(9.5),
					HedgePricePerMMBtu: floatPtr(11),
					HedgeVolumeMMBtu:   floatPtr(2_000_000),
				},
				Breakeven: []BreakevenConfig{
					{Field: BreakevenFieldSalesPrice, Min: floatPtr(0), Max: floatPtr(30)},
				},
			},
			{
				Name:   "fob-sale",
				Active: true,
				Terms: Terms{
					DealType:         string(economics.FOB),
					CargoMMBtu:       floatPtr(3_000_000),
					DistanceNM:       floatPtr(9000),
					PurchasePriceFOB: floatPtr(10),
				},
			},
		},
		Logging: LoggingConfig{Level: "info", Format: "console"},
		Output:  OutputConfig{Format: constants.OutputFormatPretty},
	}
}

func floatPtr(v float64) *float64 {
	return &v
}
