package config

import (
	"fmt"
	"strings"

	"github.com/iwvelando/lng-economics/pkg/constants"
)

const (
	BreakevenFieldSalesPrice       = "salesPrice"
	BreakevenFieldPurchasePrice    = "purchasePrice"
	BreakevenFieldHedgePrice       = "hedgePrice"
	BreakevenFieldFreightDeduct    = "freightDeduct"
	BreakevenFieldRegasFee         = "regasFee"
	BreakevenFieldPipelineTariff   = "pipelineTariff"
	BreakevenFieldDailyCharterRate = "dailyCharterRate"
	BreakevenFieldSpeedKnots       = "speedKnots"
)

// BreakevenFields lists the supported breakeven fields in display order.
var BreakevenFields = []string{
	BreakevenFieldSalesPrice,
	BreakevenFieldPurchasePrice,
	BreakevenFieldHedgePrice,
	BreakevenFieldFreightDeduct,
	BreakevenFieldRegasFee,
	BreakevenFieldPipelineTariff,
	BreakevenFieldDailyCharterRate,
	BreakevenFieldSpeedKnots,
}

// BreakevenConfig defines a single-field breakeven directive: find the value
// of Field in [Min, Max] at which total P&L equals Target.
type BreakevenConfig struct {
	Field         string   `yaml:"field" mapstructure:"field"`
	Target        float64  `yaml:"target,omitempty" mapstructure:"target"`
	Min           *float64 `yaml:"min,omitempty" mapstructure:"min"`
	Max           *float64 `yaml:"max,omitempty" mapstructure:"max"`
	Tolerance     float64  `yaml:"tolerance,omitempty" mapstructure:"tolerance"`
	MaxIterations int      `yaml:"maxIterations,omitempty" mapstructure:"maxIterations"`
}

// CanonicalBreakevenField returns the canonical identifier for a breakeven
// field. Matching ignores case, underscores and hyphens.
func CanonicalBreakevenField(value string) string {
	key := strings.ToLower(strings.TrimSpace(value))
	key = strings.NewReplacer("_", "", "-", "").Replace(key)
	switch key {
	case "salesprice", "salespricedes":
		return BreakevenFieldSalesPrice
	case "purchaseprice", "purchasepricefob":
		return BreakevenFieldPurchasePrice
	case "hedgeprice", "hedgepriceusdpermmbtu":
		return BreakevenFieldHedgePrice
	case "freightdeduct", "freightdeductusdpermmbtu":
		return BreakevenFieldFreightDeduct
	case "regasfee", "regasfeeusdpermmbtu":
		return BreakevenFieldRegasFee
	case "pipelinetariff", "pipelinetariffusdpermmbtu":
		return BreakevenFieldPipelineTariff
	case "dailycharterrate", "dailycharterrateusd":
		return BreakevenFieldDailyCharterRate
	case "speedknots", "speed":
		return BreakevenFieldSpeedKnots
	default:
		return strings.TrimSpace(value)
	}
}

// Normalize ensures defaults and canonical values are applied before validation.
func (b *BreakevenConfig) Normalize() {
	if b == nil {
		return
	}
	b.Field = CanonicalBreakevenField(b.Field)
	if b.Tolerance <= 0 {
		b.Tolerance = constants.DefaultBreakevenTolerance
	}
	if b.MaxIterations <= 0 {
		b.MaxIterations = constants.DefaultBreakevenMaxIterations
	}
}

// Validate returns an error when the breakeven configuration is unsupported.
func (b *BreakevenConfig) Validate() error {
	if b == nil {
		return fmt.Errorf("breakeven configuration cannot be nil")
	}

	b.Normalize()

	if b.Field == "" {
		return fmt.Errorf("breakeven field is required")
	}
	supported := false
	for _, field := range BreakevenFields {
		if b.Field == field {
			supported = true
			break
		}
	}
	if !supported {
		return fmt.Errorf("breakeven field %q is not supported", b.Field)
	}

	if b.Min == nil {
		return fmt.Errorf("breakeven requires a minimum bound")
	}
	if b.Max == nil {
		return fmt.Errorf("breakeven requires a maximum bound")
	}
	if *b.Min >= *b.Max {
		return fmt.Errorf("breakeven minimum %g must be less than maximum %g", *b.Min, *b.Max)
	}
	if b.Field == BreakevenFieldSpeedKnots && *b.Min <= 0 {
		return fmt.Errorf("breakeven %s minimum %g must be positive", b.Field, *b.Min)
	}

	return nil
}
