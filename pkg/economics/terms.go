// Package economics computes the profit and loss of a single LNG cargo sold
// FOB or delivered DES, including shipping cost, boil-off, fuel use,
// downstream costs and a flat-price hedge.
package economics

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidSpeed is returned when the vessel speed is zero or negative.
	ErrInvalidSpeed = errors.New("speed must be positive")

	// ErrInvalidDealType is returned for a deal type other than FOB or DES.
	ErrInvalidDealType = errors.New("deal type must be FOB or DES")
)

// DealType is the delivery basis of a cargo.
type DealType string

const (
	// FOB (Free On Board): the buyer takes title at the loading port and pays freight.
	FOB DealType = "FOB"
	// DES (Delivered Ex Ship): the seller pays freight and delivers at destination.
	DES DealType = "DES"
)

// ParseDealType converts user input into a DealType. Surrounding whitespace
// and letter case are ignored.
func ParseDealType(value string) (DealType, error) {
	switch DealType(strings.ToUpper(strings.TrimSpace(value))) {
	case FOB:
		return FOB, nil
	case DES:
		return DES, nil
	default:
		return "", fmt.Errorf("%w: got %q", ErrInvalidDealType, value)
	}
}

// Valid reports whether d is one of the supported deal types.
func (d DealType) Valid() bool {
	return d == FOB || d == DES
}

// CargoTerms holds the commercial terms of a cargo. Quantities are in MMBtu
// and prices in USD/MMBtu.
type CargoTerms struct {
	DealType   DealType `json:"dealType" yaml:"dealType"`
	CargoMMBtu float64  `json:"cargoMMBtu" yaml:"cargoMMBtu"`

	SalesPriceDES    float64 `json:"salesPriceDES" yaml:"salesPriceDES"`
	PurchasePriceFOB float64 `json:"purchasePriceFOB" yaml:"purchasePriceFOB"` // FOB sale price when DealType is FOB

	// BoilOffRateVoyage is recorded with the deal but does not enter any
	// calculation; voyage boil-off is driven by ShippingTerms.BoilOffRateSeaDaily.
	BoilOffRateVoyage float64 `json:"boiloffRateVoyage" yaml:"boiloffRateVoyage"`
	FuelUseFraction   float64 `json:"fuelUseFraction" yaml:"fuelUseFraction"`

	FreightDeductPerMMBtu  float64 `json:"freightDeductPerMMBtu" yaml:"freightDeductPerMMBtu"`
	RegasFeePerMMBtu       float64 `json:"regasFeePerMMBtu" yaml:"regasFeePerMMBtu"`
	PipelineTariffPerMMBtu float64 `json:"pipelineTariffPerMMBtu" yaml:"pipelineTariffPerMMBtu"`

	HedgePricePerMMBtu float64 `json:"hedgePricePerMMBtu" yaml:"hedgePricePerMMBtu"`
	HedgeVolumeMMBtu   float64 `json:"hedgeVolumeMMBtu" yaml:"hedgeVolumeMMBtu"` // may exceed delivered volume
}

// ShippingTerms holds the voyage parameters.
type ShippingTerms struct {
	DistanceNM          float64 `json:"distanceNM" yaml:"distanceNM"`
	SpeedKnots          float64 `json:"speedKnots" yaml:"speedKnots"`
	DailyCharterRate    float64 `json:"dailyCharterRate" yaml:"dailyCharterRate"` // USD/day
	BoilOffRateSeaDaily float64 `json:"boiloffRateSeaDaily" yaml:"boiloffRateSeaDaily"`
}
