package config

import (
	"fmt"

	"github.com/iwvelando/lng-economics/pkg/constants"
	"github.com/iwvelando/lng-economics/pkg/economics"
)

// Terms is the optional form of the calculator inputs used in scenario files.
// A nil field falls through to the next layer of defaults.
type Terms struct {
	DealType   string   `yaml:"dealType,omitempty" mapstructure:"dealType"`
	CargoMMBtu *float64 `yaml:"cargoMMBtu,omitempty" mapstructure:"cargoMMBtu"`
	DistanceNM *float64 `yaml:"distanceNM,omitempty" mapstructure:"distanceNM"`

	SpeedKnots          *float64 `yaml:"speedKnots,omitempty" mapstructure:"speedKnots"`
	DailyCharterRate    *float64 `yaml:"dailyCharterRate,omitempty" mapstructure:"dailyCharterRate"`
	BoilOffRateSeaDaily *float64 `yaml:"boiloffRateSeaDaily,omitempty" mapstructure:"boiloffRateSeaDaily"`

	SalesPriceDES          *float64 `yaml:"salesPriceDES,omitempty" mapstructure:"salesPriceDES"`
	PurchasePriceFOB       *float64 `yaml:"purchasePriceFOB,omitempty" mapstructure:"purchasePriceFOB"`
	BoilOffRateVoyage      *float64 `yaml:"boiloffRateVoyage,omitempty" mapstructure:"boiloffRateVoyage"`
	FuelUseFraction        *float64 `yaml:"fuelUseFraction,omitempty" mapstructure:"fuelUseFraction"`
	FreightDeductPerMMBtu  *float64 `yaml:"freightDeductPerMMBtu,omitempty" mapstructure:"freightDeductPerMMBtu"`
	RegasFeePerMMBtu       *float64 `yaml:"regasFeePerMMBtu,omitempty" mapstructure:"regasFeePerMMBtu"`
	PipelineTariffPerMMBtu *float64 `yaml:"pipelineTariffPerMMBtu,omitempty" mapstructure:"pipelineTariffPerMMBtu"`
	HedgePricePerMMBtu     *float64 `yaml:"hedgePricePerMMBtu,omitempty" mapstructure:"hedgePricePerMMBtu"`
	HedgeVolumeMMBtu       *float64 `yaml:"hedgeVolumeMMBtu,omitempty" mapstructure:"hedgeVolumeMMBtu"`
}

// Over returns t with every unset field taken from base.
func (t Terms) Over(base Terms) Terms {
	out := t
	if out.DealType == "" {
		out.DealType = base.DealType
	}
	pick := func(dst **float64, src *float64) {
		if *dst == nil {
			*dst = src
		}
	}
	pick(&out.CargoMMBtu, base.CargoMMBtu)
	pick(&out.DistanceNM, base.DistanceNM)
	pick(&out.SpeedKnots, base.SpeedKnots)
	pick(&out.DailyCharterRate, base.DailyCharterRate)
	pick(&out.BoilOffRateSeaDaily, base.BoilOffRateSeaDaily)
	pick(&out.SalesPriceDES, base.SalesPriceDES)
	pick(&out.PurchasePriceFOB, base.PurchasePriceFOB)
	pick(&out.BoilOffRateVoyage, base.BoilOffRateVoyage)
	pick(&out.FuelUseFraction, base.FuelUseFraction)
	pick(&out.FreightDeductPerMMBtu, base.FreightDeductPerMMBtu)
	pick(&out.RegasFeePerMMBtu, base.RegasFeePerMMBtu)
	pick(&out.PipelineTariffPerMMBtu, base.PipelineTariffPerMMBtu)
	pick(&out.HedgePricePerMMBtu, base.HedgePricePerMMBtu)
	pick(&out.HedgeVolumeMMBtu, base.HedgeVolumeMMBtu)
	return out
}

// Resolve fills the remaining gaps from the built-in defaults and converts
// the terms into calculator inputs. Deal type, cargo size and distance have
// no default.
func (t Terms) Resolve() (economics.CargoTerms, economics.ShippingTerms, error) {
	if t.DealType == "" {
		return economics.CargoTerms{}, economics.ShippingTerms{}, fmt.Errorf("dealType is required")
	}
	dealType, err := economics.ParseDealType(t.DealType)
	if err != nil {
		return economics.CargoTerms{}, economics.ShippingTerms{}, err
	}
	if t.CargoMMBtu == nil {
		return economics.CargoTerms{}, economics.ShippingTerms{}, fmt.Errorf("cargoMMBtu is required")
	}
	if t.DistanceNM == nil {
		return economics.CargoTerms{}, economics.ShippingTerms{}, fmt.Errorf("distanceNM is required")
	}

	cargo := economics.CargoTerms{
		DealType:               dealType,
		CargoMMBtu:             *t.CargoMMBtu,
		SalesPriceDES:          valueOr(t.SalesPriceDES, constants.DefaultSalesPriceDES),
		PurchasePriceFOB:       valueOr(t.PurchasePriceFOB, constants.DefaultPurchasePriceFOB),
		BoilOffRateVoyage:      valueOr(t.BoilOffRateVoyage, constants.DefaultBoilOffRateVoyage),
		FuelUseFraction:        valueOr(t.FuelUseFraction, constants.DefaultFuelUseFraction),
		FreightDeductPerMMBtu:  valueOr(t.FreightDeductPerMMBtu, constants.DefaultFreightDeductPerMMBtu),
		RegasFeePerMMBtu:       valueOr(t.RegasFeePerMMBtu, constants.DefaultRegasFeePerMMBtu),
		PipelineTariffPerMMBtu: valueOr(t.PipelineTariffPerMMBtu, constants.DefaultPipelineTariffPerMMBtu),
		HedgePricePerMMBtu:     valueOr(t.HedgePricePerMMBtu, constants.DefaultHedgePricePerMMBtu),
		HedgeVolumeMMBtu:       valueOr(t.HedgeVolumeMMBtu, constants.DefaultHedgeVolumeMMBtu),
	}
	shipping := economics.ShippingTerms{
		DistanceNM:          *t.DistanceNM,
		SpeedKnots:          valueOr(t.SpeedKnots, constants.DefaultSpeedKnots),
		DailyCharterRate:    valueOr(t.DailyCharterRate, constants.DefaultDailyCharterRate),
		BoilOffRateSeaDaily: valueOr(t.BoilOffRateSeaDaily, constants.DefaultBoilOffRateSeaDaily),
	}
	if shipping.SpeedKnots <= 0 {
		return economics.CargoTerms{}, economics.ShippingTerms{}, fmt.Errorf("%w: got %g knots", economics.ErrInvalidSpeed, shipping.SpeedKnots)
	}
	return cargo, shipping, nil
}

func valueOr(v *float64, fallback float64) float64 {
	if v == nil {
		return fallback
	}
	return *v
}
