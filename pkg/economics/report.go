package economics

import (
	"github.com/iwvelando/lng-economics/pkg/constants"
	"github.com/iwvelando/lng-economics/pkg/mathutil"
)

// Report holds the derived quantities of a cargo. Values are kept at full
// precision; Rounded produces the presentation copy.
type Report struct {
	Cargo    CargoTerms    `json:"-"`
	Shipping ShippingTerms `json:"-"`

	ShippingDays        float64 `json:"shipping_days"`
	VoyageBoilOffMMBtu  float64 `json:"voyage_boiloff_mmbtu"`
	FuelUseMMBtu        float64 `json:"fuel_use_mmbtu"`
	TotalLossesMMBtu    float64 `json:"total_losses_mmbtu"`
	NetDeliveredMMBtu   float64 `json:"net_delivered_mmbtu"`
	FreightCost         float64 `json:"freight_cost_total_usd"`
	RegasCost           float64 `json:"regas_cost_total_usd"`
	PipelineCost        float64 `json:"pipeline_cost_total_usd"`
	GrossMargin         float64 `json:"gross_margin_usd"`
	DownstreamCosts     float64 `json:"downstream_costs_usd"`
	NetMargin           float64 `json:"net_margin_usd"`
	HedgeReferencePrice float64 `json:"-"`
	HedgePnL            float64 `json:"hedge_pnl_usd"`
	TotalPnL            float64 `json:"total_pnl_usd"`
}

// Field is one named scalar of a report, in output order.
type Field struct {
	Key       string
	Value     float64
	Precision int32
}

// Fields lists the report scalars in the order they are printed.
func (r Report) Fields() []Field {
	money := int32(constants.MoneyDecimalPlaces)
	return []Field{
		{"shipping_days", r.ShippingDays, constants.DaysDecimalPlaces},
		{"voyage_boiloff_mmbtu", r.VoyageBoilOffMMBtu, money},
		{"fuel_use_mmbtu", r.FuelUseMMBtu, money},
		{"total_losses_mmbtu", r.TotalLossesMMBtu, money},
		{"net_delivered_mmbtu", r.NetDeliveredMMBtu, money},
		{"freight_cost_total_usd", r.FreightCost, money},
		{"regas_cost_total_usd", r.RegasCost, money},
		{"pipeline_cost_total_usd", r.PipelineCost, money},
		{"gross_margin_usd", r.GrossMargin, money},
		{"downstream_costs_usd", r.DownstreamCosts, money},
		{"net_margin_usd", r.NetMargin, money},
		{"hedge_pnl_usd", r.HedgePnL, money},
		{"total_pnl_usd", r.TotalPnL, money},
	}
}

// Rounded returns a copy of the report with shipping days rounded to three
// decimals and every other scalar to two. Each field is rounded from its own
// full-precision value.
func (r Report) Rounded() Report {
	out := r
	out.ShippingDays = mathutil.RoundTo(r.ShippingDays, constants.DaysDecimalPlaces)
	out.VoyageBoilOffMMBtu = mathutil.Round(r.VoyageBoilOffMMBtu)
	out.FuelUseMMBtu = mathutil.Round(r.FuelUseMMBtu)
	out.TotalLossesMMBtu = mathutil.Round(r.TotalLossesMMBtu)
	out.NetDeliveredMMBtu = mathutil.Round(r.NetDeliveredMMBtu)
	out.FreightCost = mathutil.Round(r.FreightCost)
	out.RegasCost = mathutil.Round(r.RegasCost)
	out.PipelineCost = mathutil.Round(r.PipelineCost)
	out.GrossMargin = mathutil.Round(r.GrossMargin)
	out.DownstreamCosts = mathutil.Round(r.DownstreamCosts)
	out.NetMargin = mathutil.Round(r.NetMargin)
	out.HedgePnL = mathutil.Round(r.HedgePnL)
	out.TotalPnL = mathutil.Round(r.TotalPnL)
	return out
}
