package validation

import (
	"fmt"

	"github.com/iwvelando/lng-economics/pkg/constants"
	"github.com/iwvelando/lng-economics/pkg/economics"
	"github.com/iwvelando/lng-economics/pkg/format"
)

// ScenarioWarnings checks calculator inputs that are accepted but likely
// mistaken. It never rejects a cargo; hard errors come from the calculator.
func ScenarioWarnings(cargo economics.CargoTerms, shipping economics.ShippingTerms) []string {
	var warnings []string

	if shipping.DistanceNM <= 0 {
		warning := fmt.Sprintf("distance %g nm is not positive", shipping.DistanceNM)
		if days, err := economics.ShippingDays(shipping.DistanceNM, shipping.SpeedKnots); err == nil {
			warning += fmt.Sprintf("; shipping days will be %.3f", days)
		}
		warnings = append(warnings, warning)
	}
	if cargo.CargoMMBtu <= 0 {
		warnings = append(warnings, fmt.Sprintf("cargo quantity %s is not positive", format.Quantity(cargo.CargoMMBtu)))
	}
	if !isFraction(cargo.FuelUseFraction) {
		warnings = append(warnings, fmt.Sprintf("fuel use fraction %g is outside [0, 1]", cargo.FuelUseFraction))
	}
	if !isFraction(shipping.BoilOffRateSeaDaily) {
		warnings = append(warnings, fmt.Sprintf("daily sea boil-off rate %g is outside [0, 1]", shipping.BoilOffRateSeaDaily))
	}
	if cargo.HedgeVolumeMMBtu > cargo.CargoMMBtu {
		warnings = append(warnings, fmt.Sprintf("hedge volume %s exceeds cargo %s (over-hedged)",
			format.Quantity(cargo.HedgeVolumeMMBtu), format.Quantity(cargo.CargoMMBtu)))
	}
	if cargo.BoilOffRateVoyage != constants.DefaultBoilOffRateVoyage {
		warnings = append(warnings, fmt.Sprintf("voyage boil-off rate %g is recorded but not used; losses follow the daily sea rate",
			cargo.BoilOffRateVoyage))
	}

	return warnings
}

func isFraction(v float64) bool {
	return v >= 0 && v <= 1
}
