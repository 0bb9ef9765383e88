package scenario_test

import (
	"errors"
	"testing"

	"github.com/iwvelando/lng-economics/internal/config"
	"github.com/iwvelando/lng-economics/internal/scenario"
	"github.com/iwvelando/lng-economics/pkg/economics"
	"github.com/iwvelando/lng-economics/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func floatPtr(v float64) *float64 {
	return &v
}

func testConfiguration() config.Configuration {
	return config.Configuration{
		Common: config.Terms{
			SpeedKnots:       floatPtr(15),
			DailyCharterRate: floatPtr(80000),
		},
		Scenarios: []config.Scenario{
			{
				Name:   "des",
				Active: true,
				Terms: config.Terms{
					DealType:         "DES",
					CargoMMBtu:       floatPtr(3_000_000),
					DistanceNM:       floatPtr(9000),
					PurchasePriceFOB: floatPtr(9.5),
					HedgeVolumeMMBtu: floatPtr(2_000_000),
				},
				Breakeven: []config.BreakevenConfig{
					{Field: "salesPrice", Min: floatPtr(0), Max: floatPtr(30)},
				},
			},
			{
				Name:   "inactive",
				Active: false,
			},
			{
				Name:   "fob",
				Active: true,
				Terms: config.Terms{
					DealType:         "FOB",
					CargoMMBtu:       floatPtr(3_000_000),
					DistanceNM:       floatPtr(9000),
					HedgeVolumeMMBtu: floatPtr(1_000_000),
				},
			},
		},
	}
}

func TestRun(t *testing.T) {
	results, err := scenario.Run(zap.NewNop(), testConfiguration())
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, "des", results[0].Name)
	assert.Equal(t, "fob", results[1].Name)
	assert.Nil(t, testutil.FindScenario(results, "inactive"))

	des := testutil.FindScenario(results, "des")
	require.NotNil(t, des)
	assert.InDelta(t, 4_447_500.0, des.Report.TotalPnL, 1e-6)
	assert.Empty(t, des.Warnings)
	require.Len(t, des.Breakeven, 1)
	assert.True(t, des.Breakeven[0].Converged)
	assert.InDelta(t, 53_932_500.0/4_865_000.0, des.Breakeven[0].Value, 1e-5)

	fob := testutil.FindScenario(results, "fob")
	require.NotNil(t, fob)
	assert.InDelta(t, 24_767_500.0, fob.Report.TotalPnL, 1e-6)
	assert.Empty(t, fob.Breakeven)
}

func TestRunDoesNotMutateConfiguration(t *testing.T) {
	conf := testConfiguration()
	_, err := scenario.Run(nil, conf)
	require.NoError(t, err)

	assert.Equal(t, "salesPrice", conf.Scenarios[0].Breakeven[0].Field)
	assert.Nil(t, conf.Scenarios[0].SalesPriceDES)
}

func TestRunLogsWarnings(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	conf := testConfiguration()
	conf.Scenarios[2].HedgeVolumeMMBtu = floatPtr(4_000_000)

	results, err := scenario.Run(zap.New(core), conf)
	require.NoError(t, err)

	fob := testutil.FindScenario(results, "fob")
	require.NotNil(t, fob)
	require.Len(t, fob.Warnings, 1)

	warned := logs.FilterLevelExact(zap.WarnLevel).All()
	require.Len(t, warned, 1)
	assert.Equal(t, "scenario.Run", warned[0].ContextMap()["op"])
	assert.Equal(t, "fob", warned[0].ContextMap()["scenario"])

	skipped := logs.FilterMessage("skipping scenario inactive because it is inactive").All()
	assert.Len(t, skipped, 1)
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *config.Configuration)
		is      error
		wantErr string
	}{
		{
			name:    "Unresolvable scenario",
			mutate:  func(c *config.Configuration) { c.Scenarios[2].DistanceNM = nil },
			wantErr: "scenario fob: distanceNM is required",
		},
		{
			name:    "Invalid speed",
			mutate:  func(c *config.Configuration) { c.Scenarios[0].SpeedKnots = floatPtr(-3) },
			is:      economics.ErrInvalidSpeed,
			wantErr: "scenario des",
		},
		{
			name:    "Invalid deal type",
			mutate:  func(c *config.Configuration) { c.Scenarios[2].DealType = "CIF" },
			is:      economics.ErrInvalidDealType,
			wantErr: "scenario fob",
		},
		{
			name: "Bad breakeven",
			mutate: func(c *config.Configuration) {
				c.Scenarios[0].Breakeven[0].Min = floatPtr(40)
			},
			wantErr: "must be less than",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conf := testConfiguration()
			tt.mutate(&conf)
			_, err := scenario.Run(nil, conf)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			if tt.is != nil {
				assert.True(t, errors.Is(err, tt.is))
			}
		})
	}
}

func TestEvaluate(t *testing.T) {
	cargo, shipping, err := testConfiguration().Scenarios[0].Resolve(testConfiguration().Common)
	require.NoError(t, err)

	result, err := scenario.Evaluate(nil, "direct", cargo, shipping, nil)
	require.NoError(t, err)
	assert.Equal(t, "direct", result.Name)
	assert.Nil(t, result.Breakeven)
	assert.InDelta(t, 2_447_500.0, result.Report.NetMargin, 1e-6)
}
