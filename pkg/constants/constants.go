// Package constants provides shared constants for the lng-economics application.
package constants

// Unit constants
const (
	// HoursPerDay converts knots (nm per hour) into nm per day.
	HoursPerDay = 24.0

	// TradingDaysPerYear annualizes daily return volatility.
	TradingDaysPerYear = 252

	// MoneyDecimalPlaces is the presentation precision for currency and MMBtu quantities.
	MoneyDecimalPlaces = 2

	// DaysDecimalPlaces is the presentation precision for shipping days.
	DaysDecimalPlaces = 3
)

// Default cargo and shipping terms used by the CLI and scenario files when a
// value is not provided.
const (
	DefaultSpeedKnots             = 15.0
	DefaultDailyCharterRate       = 80000.0
	DefaultSalesPriceDES          = 12.0
	DefaultPurchasePriceFOB       = 10.0
	DefaultBoilOffRateVoyage      = 0.001
	DefaultFuelUseFraction        = 0.02
	DefaultFreightDeductPerMMBtu  = 0.20
	DefaultRegasFeePerMMBtu       = 0.30
	DefaultPipelineTariffPerMMBtu = 0.20
	DefaultBoilOffRateSeaDaily    = 0.001
	DefaultHedgePricePerMMBtu     = 11.0
	DefaultHedgeVolumeMMBtu       = 0.0
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatJSON is the JSON output format
	OutputFormatJSON = "json"

	// OutputFormatXLSX is the Excel workbook output format; it requires a file path
	OutputFormatXLSX = "xlsx"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default scenario file name
	DefaultConfigFile = "scenarios.yaml"

	// EnvPrefix prefixes environment variables that override flags and config keys
	EnvPrefix = "LNG"
)

// Market dashboard defaults
const (
	// DefaultVolatilityWindow is the rolling window, in rows, for volatility
	DefaultVolatilityWindow = 30

	// DefaultPeriod is the trailing history kept by the dashboard
	DefaultPeriod = "24mo"

	// PriceDateLayout is the date format expected in price CSV files
	PriceDateLayout = "2006-01-02"
)

// Tolerance constants
const (
	// CurrencyTolerance is the tolerance for currency comparisons (half a cent)
	CurrencyTolerance = 0.005

	// DefaultBreakevenTolerance is the bracket width at which bisection stops
	DefaultBreakevenTolerance = 1e-6

	// DefaultBreakevenMaxIterations caps the number of bisection steps
	DefaultBreakevenMaxIterations = 100
)
