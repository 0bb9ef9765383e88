package economics

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const delta = 1e-6

func desCargo() CargoTerms {
	return CargoTerms{
		DealType:               DES,
		CargoMMBtu:             3_000_000,
		SalesPriceDES:          12,
		PurchasePriceFOB:       9.5,
		BoilOffRateVoyage:      0.001,
		FuelUseFraction:        0.02,
		FreightDeductPerMMBtu:  0.20,
		RegasFeePerMMBtu:       0.30,
		PipelineTariffPerMMBtu: 0.20,
		HedgePricePerMMBtu:     11,
		HedgeVolumeMMBtu:       2_000_000,
	}
}

func voyage() ShippingTerms {
	return ShippingTerms{
		DistanceNM:          9000,
		SpeedKnots:          15,
		DailyCharterRate:    80000,
		BoilOffRateSeaDaily: 0.001,
	}
}

func TestComputeDESScenario(t *testing.T) {
	report, err := Compute(desCargo(), voyage())
	require.NoError(t, err)

	assert.InDelta(t, 25.0, report.ShippingDays, delta)
	assert.InDelta(t, 60_000.0, report.FuelUseMMBtu, delta)
	assert.InDelta(t, 75_000.0, report.VoyageBoilOffMMBtu, delta)
	assert.InDelta(t, 135_000.0, report.TotalLossesMMBtu, delta)
	assert.InDelta(t, 2_865_000.0, report.NetDeliveredMMBtu, delta)
	assert.InDelta(t, 2_000_000.0, report.FreightCost, delta)
	assert.InDelta(t, 859_500.0, report.RegasCost, delta)
	assert.InDelta(t, 573_000.0, report.PipelineCost, delta)
	assert.InDelta(t, 1_432_500.0, report.DownstreamCosts, delta)

	// 2,865,000 * 12 - 3,000,000 * 9.5 - 2,000,000
	assert.InDelta(t, 3_880_000.0, report.GrossMargin, delta)
	assert.InDelta(t, 2_447_500.0, report.NetMargin, delta)
	assert.InDelta(t, 12.0, report.HedgeReferencePrice, delta)
	assert.InDelta(t, 2_000_000.0, report.HedgePnL, delta)
	assert.InDelta(t, 4_447_500.0, report.TotalPnL, delta)
}

func TestComputeFOBScenario(t *testing.T) {
	cargo := desCargo()
	cargo.DealType = FOB
	cargo.PurchasePriceFOB = 10
	cargo.HedgeVolumeMMBtu = 1_000_000

	report, err := Compute(cargo, voyage())
	require.NoError(t, err)

	// 30,000,000 revenue - 600,000 deduct - 2,000,000 freight
	assert.InDelta(t, 27_400_000.0, report.GrossMargin, delta)
	assert.InDelta(t, 25_967_500.0, report.NetMargin, delta)
	assert.InDelta(t, 9.8, report.HedgeReferencePrice, delta)
	assert.InDelta(t, -1_200_000.0, report.HedgePnL, delta)
	assert.InDelta(t, 24_767_500.0, report.TotalPnL, delta)
}

func TestComputeFOBIgnoresSalesPrice(t *testing.T) {
	cargo := desCargo()
	cargo.DealType = FOB

	base, err := Compute(cargo, voyage())
	require.NoError(t, err)

	cargo.SalesPriceDES = 99
	changed, err := Compute(cargo, voyage())
	require.NoError(t, err)

	assert.Equal(t, base.TotalPnL, changed.TotalPnL)
}

func TestComputeInvariants(t *testing.T) {
	tests := []struct {
		name     string
		cargo    func() CargoTerms
		shipping func() ShippingTerms
	}{
		{"DES default", desCargo, voyage},
		{"FOB default", func() CargoTerms {
			c := desCargo()
			c.DealType = FOB
			return c
		}, voyage},
		{"Slow steaming", desCargo, func() ShippingTerms {
			s := voyage()
			s.SpeedKnots = 11.3
			s.DistanceNM = 12_345
			return s
		}},
		{"Negative spread over-hedged", func() CargoTerms {
			c := desCargo()
			c.HedgePricePerMMBtu = 13.37
			c.HedgeVolumeMMBtu = 9_000_000
			return c
		}, voyage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := Compute(tt.cargo(), tt.shipping())
			require.NoError(t, err)

			assert.Equal(t, r.NetMargin+r.HedgePnL, r.TotalPnL)
			assert.Equal(t, r.RegasCost+r.PipelineCost, r.DownstreamCosts)
			assert.Equal(t, r.VoyageBoilOffMMBtu+r.FuelUseMMBtu, r.TotalLossesMMBtu)
			assert.GreaterOrEqual(t, r.NetDeliveredMMBtu, 0.0)
		})
	}
}

func TestComputeNetDeliveredClampedAtZero(t *testing.T) {
	cargo := desCargo()
	cargo.FuelUseFraction = 0.9
	shipping := voyage()
	shipping.BoilOffRateSeaDaily = 0.01 // 25 days -> 25% boil-off

	r, err := Compute(cargo, shipping)
	require.NoError(t, err)

	assert.Greater(t, r.TotalLossesMMBtu, cargo.CargoMMBtu)
	assert.Equal(t, 0.0, r.NetDeliveredMMBtu)
	assert.Equal(t, 0.0, r.RegasCost)
	assert.Equal(t, 0.0, r.PipelineCost)
	// Nothing delivered: the whole FOB cost and freight are lost.
	assert.InDelta(t, -28_500_000.0-2_000_000.0, r.GrossMargin, delta)
}

func TestComputeInvalidSpeed(t *testing.T) {
	for _, dealType := range []DealType{FOB, DES} {
		for _, speed := range []float64{0, -1, -15.5} {
			cargo := desCargo()
			cargo.DealType = dealType
			shipping := voyage()
			shipping.SpeedKnots = speed

			_, err := Compute(cargo, shipping)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidSpeed), "deal %s speed %v: %v", dealType, speed, err)
		}
	}
}

func TestComputeInvalidDealType(t *testing.T) {
	for _, dealType := range []DealType{"", "CIF", "fob", "DAP"} {
		cargo := desCargo()
		cargo.DealType = dealType

		report, err := Compute(cargo, voyage())
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidDealType)
		assert.Equal(t, Report{}, report)
	}
}

func TestComputeInvalidDealTypeCheckedBeforeSpeed(t *testing.T) {
	cargo := desCargo()
	cargo.DealType = "CIF"
	shipping := voyage()
	shipping.SpeedKnots = 0

	_, err := Compute(cargo, shipping)
	assert.ErrorIs(t, err, ErrInvalidDealType)
	assert.NotErrorIs(t, err, ErrInvalidSpeed)
}

func TestComputeZeroHedgeVolume(t *testing.T) {
	for _, hedgePrice := range []float64{0, 5, 11, 50} {
		cargo := desCargo()
		cargo.HedgeVolumeMMBtu = 0
		cargo.HedgePricePerMMBtu = hedgePrice

		r, err := Compute(cargo, voyage())
		require.NoError(t, err)
		assert.Equal(t, 0.0, r.HedgePnL)
		assert.Equal(t, r.NetMargin, r.TotalPnL)
	}
}

func TestComputeVoyageBoilOffRateUnused(t *testing.T) {
	cargo := desCargo()
	base, err := Compute(cargo, voyage())
	require.NoError(t, err)

	cargo.BoilOffRateVoyage = 0.5
	changed, err := Compute(cargo, voyage())
	require.NoError(t, err)

	assert.Equal(t, base.VoyageBoilOffMMBtu, changed.VoyageBoilOffMMBtu)
	assert.Equal(t, base.TotalPnL, changed.TotalPnL)
	assert.Equal(t, 0.5, changed.Cargo.BoilOffRateVoyage)
}

func TestComputeDistanceNotValidated(t *testing.T) {
	shipping := voyage()
	shipping.DistanceNM = -3600

	r, err := Compute(desCargo(), shipping)
	require.NoError(t, err)
	assert.InDelta(t, -10.0, r.ShippingDays, delta)
	assert.InDelta(t, -800_000.0, r.FreightCost, delta)
}

func TestShippingDays(t *testing.T) {
	tests := []struct {
		name     string
		distance float64
		speed    float64
	}{
		{"Typical", 9000, 15},
		{"Short hop", 120, 19.5},
		{"Slow", 11_000, 10},
		{"Zero distance", 0, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days, err := ShippingDays(tt.distance, tt.speed)
			require.NoError(t, err)
			assert.Equal(t, tt.distance/(tt.speed*24), days)

			doubled, err := ShippingDays(tt.distance, tt.speed*2)
			require.NoError(t, err)
			assert.InDelta(t, days/2, doubled, 1e-12)
		})
	}
}

func TestStepHelpers(t *testing.T) {
	assert.InDelta(t, 7_500.0, VoyageBoilOff(1_000_000, 5, 0.0015), delta)
	assert.InDelta(t, 15_000.0, FuelUse(1_000_000, 0.015), delta)
	assert.InDelta(t, 1_200_000.0, FreightCost(100_000, 12), delta)
	assert.InDelta(t, -500_000.0, HedgePnL(11, 10.5, 1_000_000), delta)
	assert.InDelta(t, 500_000.0, HedgePnL(10, 10.5, 1_000_000), delta)
}

func TestParseDealType(t *testing.T) {
	tests := []struct {
		input    string
		expected DealType
		wantErr  bool
	}{
		{"FOB", FOB, false},
		{"DES", DES, false},
		{" des ", DES, false},
		{"fob", FOB, false},
		{"CIF", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDealType(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidDealType)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}
