package economics

import (
	"fmt"
	"math"

	"github.com/iwvelando/lng-economics/pkg/constants"
)

// ShippingDays returns the sailing time in days for a distance in nautical
// miles at a speed in knots.
func ShippingDays(distanceNM, speedKnots float64) (float64, error) {
	if speedKnots <= 0 {
		return 0, fmt.Errorf("%w: got %g knots", ErrInvalidSpeed, speedKnots)
	}
	return distanceNM / (speedKnots * constants.HoursPerDay), nil
}

// VoyageBoilOff approximates the quantity lost to boil-off during the voyage
// as cargo * daily rate * days. The linear form slightly overstates losses
// compared to compounding daily decay.
func VoyageBoilOff(cargoMMBtu, shippingDays, dailyBoilOffRate float64) float64 {
	return cargoMMBtu * dailyBoilOffRate * shippingDays
}

// FuelUse returns the quantity of cargo burned as fuel.
func FuelUse(cargoMMBtu, fuelUseFraction float64) float64 {
	return cargoMMBtu * fuelUseFraction
}

// FreightCost returns the time-charter cost of the voyage.
func FreightCost(dailyCharterRate, shippingDays float64) float64 {
	return dailyCharterRate * shippingDays
}

// HedgePnL returns the P&L of a flat-price hedge: long physical, short paper
// at hedgePrice.
func HedgePnL(hedgePrice, physicalPrice, hedgeVolume float64) float64 {
	return (physicalPrice - hedgePrice) * hedgeVolume
}

// Compute derives the economics report for a cargo and its voyage. All
// intermediate values keep full precision; use Report.Rounded for display.
func Compute(cargo CargoTerms, shipping ShippingTerms) (Report, error) {
	if !cargo.DealType.Valid() {
		return Report{}, fmt.Errorf("%w: got %q", ErrInvalidDealType, string(cargo.DealType))
	}

	shippingDays, err := ShippingDays(shipping.DistanceNM, shipping.SpeedKnots)
	if err != nil {
		return Report{}, err
	}
	freightCost := FreightCost(shipping.DailyCharterRate, shippingDays)

	voyageBoilOff := VoyageBoilOff(cargo.CargoMMBtu, shippingDays, shipping.BoilOffRateSeaDaily)
	fuelUse := FuelUse(cargo.CargoMMBtu, cargo.FuelUseFraction)
	totalLosses := voyageBoilOff + fuelUse
	netDelivered := math.Max(cargo.CargoMMBtu-totalLosses, 0)

	// Downstream costs apply to the delivered volume only.
	regasCost := netDelivered * cargo.RegasFeePerMMBtu
	pipelineCost := netDelivered * cargo.PipelineTariffPerMMBtu
	downstreamCosts := regasCost + pipelineCost

	var grossMargin, hedgeReference float64
	switch cargo.DealType {
	case DES:
		// Bought FOB, sold delivered; freight is explicit.
		fobCost := cargo.CargoMMBtu * cargo.PurchasePriceFOB
		desRevenue := netDelivered * cargo.SalesPriceDES
		grossMargin = desRevenue - fobCost - freightCost
		hedgeReference = cargo.SalesPriceDES
	case FOB:
		// The buyer lifts the cargo. The freight deduct is the notional
		// netback freight; freightCost is the modelled voyage compared
		// against it.
		fobRevenue := cargo.CargoMMBtu * cargo.PurchasePriceFOB
		freightDeduct := cargo.CargoMMBtu * cargo.FreightDeductPerMMBtu
		netback := fobRevenue - freightDeduct
		grossMargin = netback - freightCost
		hedgeReference = cargo.PurchasePriceFOB - cargo.FreightDeductPerMMBtu
	}

	netMargin := grossMargin - downstreamCosts
	hedgePnL := HedgePnL(cargo.HedgePricePerMMBtu, hedgeReference, cargo.HedgeVolumeMMBtu)

	return Report{
		Cargo:               cargo,
		Shipping:            shipping,
		ShippingDays:        shippingDays,
		VoyageBoilOffMMBtu:  voyageBoilOff,
		FuelUseMMBtu:        fuelUse,
		TotalLossesMMBtu:    totalLosses,
		NetDeliveredMMBtu:   netDelivered,
		FreightCost:         freightCost,
		RegasCost:           regasCost,
		PipelineCost:        pipelineCost,
		GrossMargin:         grossMargin,
		DownstreamCosts:     downstreamCosts,
		NetMargin:           netMargin,
		HedgeReferencePrice: hedgeReference,
		HedgePnL:            hedgePnL,
		TotalPnL:            netMargin + hedgePnL,
	}, nil
}
