package cli

import (
	"github.com/iwvelando/lng-economics/pkg/constants"
	"github.com/iwvelando/lng-economics/pkg/economics"
	"github.com/spf13/cobra"
)

// termFlags holds the calculator inputs given as flags.
type termFlags struct {
	dealType               string
	cargoMMBtu             float64
	distanceNM             float64
	speedKnots             float64
	dailyCharterRate       float64
	salesPriceDES          float64
	purchasePriceFOB       float64
	boilOffRateVoyage      float64
	fuelUseFraction        float64
	freightDeductPerMMBtu  float64
	regasFeePerMMBtu       float64
	pipelineTariffPerMMBtu float64
	boilOffRateSeaDaily    float64
	hedgePricePerMMBtu     float64
	hedgeVolumeMMBtu       float64
}

func (t *termFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&t.dealType, "deal_type", "", "deal basis: FOB or DES (required)")
	fs.Float64Var(&t.cargoMMBtu, "cargo_mmbtu", 0, "cargo size loaded, MMBtu (required)")
	fs.Float64Var(&t.distanceNM, "distance_nm", 0, "voyage distance, nautical miles (required)")
	fs.Float64Var(&t.speedKnots, "speed_knots", constants.DefaultSpeedKnots, "vessel speed, knots")
	fs.Float64Var(&t.dailyCharterRate, "daily_charter_rate_usd", constants.DefaultDailyCharterRate, "time charter rate, USD/day")
	fs.Float64Var(&t.salesPriceDES, "sales_price_des", constants.DefaultSalesPriceDES, "delivered sales price, USD/MMBtu")
	fs.Float64Var(&t.purchasePriceFOB, "purchase_price_fob", constants.DefaultPurchasePriceFOB, "FOB price, USD/MMBtu (purchase for DES, sale for FOB)")
	fs.Float64Var(&t.boilOffRateVoyage, "boiloff_rate_voyage", constants.DefaultBoilOffRateVoyage, "voyage boil-off rate (recorded only)")
	fs.Float64Var(&t.fuelUseFraction, "fuel_use_fraction_of_cargo", constants.DefaultFuelUseFraction, "fraction of cargo burned as fuel")
	fs.Float64Var(&t.freightDeductPerMMBtu, "freight_deduct_usd_per_mmbtu", constants.DefaultFreightDeductPerMMBtu, "FOB netback freight deduct, USD/MMBtu")
	fs.Float64Var(&t.regasFeePerMMBtu, "regas_fee_usd_per_mmbtu", constants.DefaultRegasFeePerMMBtu, "regasification fee, USD/MMBtu")
	fs.Float64Var(&t.pipelineTariffPerMMBtu, "pipeline_tariff_usd_per_mmbtu", constants.DefaultPipelineTariffPerMMBtu, "pipeline tariff, USD/MMBtu")
	fs.Float64Var(&t.boilOffRateSeaDaily, "boiloff_rate_sea_daily", constants.DefaultBoilOffRateSeaDaily, "daily boil-off rate at sea")
	fs.Float64Var(&t.hedgePricePerMMBtu, "hedge_price_usd_per_mmbtu", constants.DefaultHedgePricePerMMBtu, "hedge price, USD/MMBtu")
	fs.Float64Var(&t.hedgeVolumeMMBtu, "hedge_volume_mmbtu", constants.DefaultHedgeVolumeMMBtu, "hedged volume, MMBtu")

	_ = cmd.MarkFlagRequired("deal_type")
	_ = cmd.MarkFlagRequired("cargo_mmbtu")
	_ = cmd.MarkFlagRequired("distance_nm")
}

// terms converts the flags into calculator inputs. The deal type is passed
// through verbatim; the calculator rejects anything but FOB or DES.
func (t *termFlags) terms() (economics.CargoTerms, economics.ShippingTerms) {
	cargo := economics.CargoTerms{
		DealType:               economics.DealType(t.dealType),
		CargoMMBtu:             t.cargoMMBtu,
		SalesPriceDES:          t.salesPriceDES,
		PurchasePriceFOB:       t.purchasePriceFOB,
		BoilOffRateVoyage:      t.boilOffRateVoyage,
		FuelUseFraction:        t.fuelUseFraction,
		FreightDeductPerMMBtu:  t.freightDeductPerMMBtu,
		RegasFeePerMMBtu:       t.regasFeePerMMBtu,
		PipelineTariffPerMMBtu: t.pipelineTariffPerMMBtu,
		HedgePricePerMMBtu:     t.hedgePricePerMMBtu,
		HedgeVolumeMMBtu:       t.hedgeVolumeMMBtu,
	}
	shipping := economics.ShippingTerms{
		DistanceNM:          t.distanceNM,
		SpeedKnots:          t.speedKnots,
		DailyCharterRate:    t.dailyCharterRate,
		BoilOffRateSeaDaily: t.boilOffRateSeaDaily,
	}
	return cargo, shipping
}
