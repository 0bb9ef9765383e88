package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/iwvelando/lng-economics/internal/config"
	"github.com/iwvelando/lng-economics/internal/scenario"
	"github.com/iwvelando/lng-economics/pkg/economics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func floatPtr(v float64) *float64 {
	return &v
}

func desCargo() economics.CargoTerms {
	return economics.CargoTerms{
		DealType:               economics.DES,
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

func voyage() economics.ShippingTerms {
	return economics.ShippingTerms{
		DistanceNM:          9000,
		SpeedKnots:          15,
		DailyCharterRate:    80000,
		BoilOffRateSeaDaily: 0.001,
	}
}

func testResults(t *testing.T) []scenario.Result {
	t.Helper()
	des, err := scenario.Evaluate(nil, "des", desCargo(), voyage(), []config.BreakevenConfig{
		{Field: "salesPrice", Min: floatPtr(0), Max: floatPtr(30)},
	})
	require.NoError(t, err)

	fobCargo := desCargo()
	fobCargo.DealType = economics.FOB
	fobCargo.PurchasePriceFOB = 10
	fobCargo.HedgeVolumeMMBtu = 1_000_000
	fob, err := scenario.Evaluate(nil, "fob", fobCargo, voyage(), nil)
	require.NoError(t, err)

	return []scenario.Result{des, fob}
}

func TestPrettyFormatSingleScenario(t *testing.T) {
	result, err := scenario.Evaluate(nil, "cargo", desCargo(), voyage(), nil)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, PrettyFormat(&buf, []scenario.Result{result}))
	output := buf.String()

	lines := strings.Split(strings.TrimSpace(output), "\n")
	require.Len(t, lines, 14)
	assert.Equal(t, ReportTitle, lines[0])
	assert.Equal(t, "shipping_days: 25.000", lines[1])
	assert.Equal(t, "total_pnl_usd: 4,447,500.00", lines[13])

	assert.Contains(t, output, "net_delivered_mmbtu: 2,865,000.00\n")
	assert.Contains(t, output, "gross_margin_usd: 3,880,000.00\n")
	assert.Contains(t, output, "hedge_pnl_usd: 2,000,000.00\n")
	assert.NotContains(t, output, "--- Results for scenario")
}

func TestPrettyFormatMultipleScenarios(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrettyFormat(&buf, testResults(t)))
	output := buf.String()

	assert.Equal(t, 1, strings.Count(output, ReportTitle))
	assert.Contains(t, output, "--- Results for scenario des ---")
	assert.Contains(t, output, "--- Results for scenario fob ---")
	assert.Contains(t, output, "total_pnl_usd: 24,767,500.00")
	assert.Contains(t, output, "hedge_pnl_usd: -1,200,000.00")
	assert.Contains(t, output, "breakeven salesPrice: $11.0858/MMBtu (was $12.0000/MMBtu")
	assert.Contains(t, output, "converged)")
}

func TestPrettyFormatBreakevenNotes(t *testing.T) {
	result, err := scenario.Evaluate(nil, "des", desCargo(), voyage(), []config.BreakevenConfig{
		{Field: "salesPrice", Min: floatPtr(12), Max: floatPtr(20)},
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, PrettyFormat(&buf, []scenario.Result{result}))
	assert.Contains(t, buf.String(), "not converged)")
	assert.Contains(t, buf.String(), "  note: total P&L ranges from")
}

func TestPrettyFormatEmptyResults(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrettyFormat(&buf, nil))
	assert.Equal(t, ReportTitle+"\n", buf.String())
}

func TestCsvFormat(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, CsvFormat(&buf, testResults(t)))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 15)

	assert.Equal(t, []string{"metric", "des", "fob"}, records[0])
	assert.Equal(t, []string{"shipping_days", "25.000", "25.000"}, records[1])
	assert.Equal(t, []string{"total_pnl_usd", "4447500.00", "24767500.00"}, records[13])
	assert.Equal(t, "breakeven_salesPrice", records[14][0])
	assert.True(t, strings.HasPrefix(records[14][1], "11.0858"))
	assert.Equal(t, "", records[14][2])
}

func TestJSONFormat(t *testing.T) {
	generated := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	var buf bytes.Buffer
	require.NoError(t, JSONFormat(&buf, "01HTESTRUN", generated, testResults(t)))

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "01HTESTRUN", decoded["runId"])
	assert.Equal(t, "2026-01-02T03:04:05Z", decoded["generatedAt"])

	scenarios := decoded["scenarios"].([]interface{})
	require.Len(t, scenarios, 2)
	des := scenarios[0].(map[string]interface{})
	assert.Equal(t, "des", des["name"])

	report := des["report"].(map[string]interface{})
	assert.Equal(t, 4447500.0, report["total_pnl_usd"])
	assert.Equal(t, 25.0, report["shipping_days"])
	assert.Len(t, report, 13)

	cargo := des["cargo"].(map[string]interface{})
	assert.Equal(t, "DES", cargo["dealType"])
	shipping := des["shipping"].(map[string]interface{})
	assert.Equal(t, 9000.0, shipping["distanceNM"])

	breakeven := des["breakeven"].([]interface{})
	require.Len(t, breakeven, 1)
	assert.Equal(t, "salesPrice", breakeven[0].(map[string]interface{})["field"])

	_, hasBreakeven := scenarios[1].(map[string]interface{})["breakeven"]
	assert.False(t, hasBreakeven)
}

func TestJSONFormatRoundsReport(t *testing.T) {
	shipping := voyage()
	shipping.SpeedKnots = 14
	result, err := scenario.Evaluate(nil, "slow", desCargo(), shipping, nil)
	require.NoError(t, err)

	env := NewEnvelope("id", time.Now(), []scenario.Result{result})
	assert.Equal(t, 26.786, env.Scenarios[0].Report.ShippingDays)
	assert.Equal(t, 2142857.14, env.Scenarios[0].Report.FreightCost)
	assert.NotEqual(t, 26.786, result.Report.ShippingDays)
}

func TestXLSXFormat(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, XLSXFormat(&buf, testResults(t)))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{sheetScenarios, sheetBreakeven}, f.GetSheetList())

	header, err := f.GetCellValue(sheetScenarios, "A1")
	require.NoError(t, err)
	assert.Equal(t, "metric", header)
	name, err := f.GetCellValue(sheetScenarios, "C1")
	require.NoError(t, err)
	assert.Equal(t, "fob", name)

	metric, err := f.GetCellValue(sheetScenarios, "A14")
	require.NoError(t, err)
	assert.Equal(t, "total_pnl_usd", metric)
	total, err := f.GetCellValue(sheetScenarios, "B14", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	assert.Equal(t, "4447500", total)

	field, err := f.GetCellValue(sheetBreakeven, "B2")
	require.NoError(t, err)
	assert.Equal(t, "salesPrice", field)
}

func TestXLSXFormatWithoutBreakeven(t *testing.T) {
	results := testResults(t)[1:]
	var buf bytes.Buffer
	require.NoError(t, XLSXFormat(&buf, results))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{sheetScenarios}, f.GetSheetList())
}

func TestResultsDestination(t *testing.T) {
	results := testResults(t)

	var buf bytes.Buffer
	require.NoError(t, Results(&buf, Options{}, results))
	assert.True(t, strings.HasPrefix(buf.String(), ReportTitle))

	buf.Reset()
	err := Results(&buf, Options{Format: "xlsx"}, results)
	assert.ErrorContains(t, err, "requires an output file")

	err = Results(&buf, Options{Format: "html"}, results)
	assert.ErrorContains(t, err, `"html"`)

	path := filepath.Join(t.TempDir(), "report.csv")
	buf.Reset()
	require.NoError(t, Results(&buf, Options{Format: "csv", File: path}, results))
	assert.Empty(t, buf.String())
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "metric,des,fob\n"))

	xlsxPath := filepath.Join(t.TempDir(), "report.xlsx")
	require.NoError(t, Results(&buf, Options{Format: "xlsx", File: xlsxPath}, results))
	f, err := excelize.OpenFile(xlsxPath)
	require.NoError(t, err)
	assert.NoError(t, f.Close())

	err = Results(&buf, Options{Format: "csv", File: filepath.Join(t.TempDir(), "missing", "x.csv")}, results)
	assert.ErrorContains(t, err, "create output file")
}
