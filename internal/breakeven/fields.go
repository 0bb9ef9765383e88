package breakeven

import (
	"fmt"

	"github.com/iwvelando/lng-economics/internal/config"
	"github.com/iwvelando/lng-economics/pkg/economics"
	"github.com/iwvelando/lng-economics/pkg/format"
)

func getField(cargo economics.CargoTerms, shipping economics.ShippingTerms, field string) (float64, error) {
	switch field {
	case config.BreakevenFieldSalesPrice:
		return cargo.SalesPriceDES, nil
	case config.BreakevenFieldPurchasePrice:
		return cargo.PurchasePriceFOB, nil
	case config.BreakevenFieldHedgePrice:
		return cargo.HedgePricePerMMBtu, nil
	case config.BreakevenFieldFreightDeduct:
		return cargo.FreightDeductPerMMBtu, nil
	case config.BreakevenFieldRegasFee:
		return cargo.RegasFeePerMMBtu, nil
	case config.BreakevenFieldPipelineTariff:
		return cargo.PipelineTariffPerMMBtu, nil
	case config.BreakevenFieldDailyCharterRate:
		return shipping.DailyCharterRate, nil
	case config.BreakevenFieldSpeedKnots:
		return shipping.SpeedKnots, nil
	default:
		return 0, fmt.Errorf("breakeven field %q is not supported", field)
	}
}

func setField(cargo *economics.CargoTerms, shipping *economics.ShippingTerms, field string, value float64) error {
	switch field {
	case config.BreakevenFieldSalesPrice:
		cargo.SalesPriceDES = value
	case config.BreakevenFieldPurchasePrice:
		cargo.PurchasePriceFOB = value
	case config.BreakevenFieldHedgePrice:
		cargo.HedgePricePerMMBtu = value
	case config.BreakevenFieldFreightDeduct:
		cargo.FreightDeductPerMMBtu = value
	case config.BreakevenFieldRegasFee:
		cargo.RegasFeePerMMBtu = value
	case config.BreakevenFieldPipelineTariff:
		cargo.PipelineTariffPerMMBtu = value
	case config.BreakevenFieldDailyCharterRate:
		shipping.DailyCharterRate = value
	case config.BreakevenFieldSpeedKnots:
		shipping.SpeedKnots = value
	default:
		return fmt.Errorf("breakeven field %q is not supported", field)
	}
	return nil
}

func formatFieldDisplay(field string, value float64) string {
	switch field {
	case config.BreakevenFieldDailyCharterRate:
		return format.Currency(value) + "/day"
	case config.BreakevenFieldSpeedKnots:
		return fmt.Sprintf("%.3f kn", value)
	default:
		return format.Price(value)
	}
}
