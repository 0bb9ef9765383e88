package market

import (
	"fmt"
	"math"

	"github.com/iwvelando/lng-economics/pkg/constants"
	"github.com/iwvelando/lng-economics/pkg/datetime"
)

// Spread is a named price difference, Long minus Short.
type Spread struct {
	Name  string
	Long  string
	Short string
}

// DefaultSpreads are the inter-hub and oil-slope spreads on the dashboard.
var DefaultSpreads = []Spread{
	{Name: "JKM - TTF", Long: "JKM", Short: "TTF"},
	{Name: "JKM - NBP", Long: "JKM", Short: "NBP"},
	{Name: "TTF - NBP", Long: "TTF", Short: "NBP"},
	{Name: "JKM - Brent (slope)", Long: "JKM", Short: "Brent"},
}

// Spreads returns one column per spread over the dates of t.
func Spreads(t *Table, spreads []Spread) (*Table, error) {
	names := make([]string, len(spreads))
	for i, s := range spreads {
		names[i] = s.Name
	}
	out := NewTable(names, t.Len())
	out.Dates = append(out.Dates, t.Dates...)

	for i, s := range spreads {
		long, ok := t.Column(s.Long)
		if !ok {
			return nil, fmt.Errorf("spread %s: price column %q not found", s.Name, s.Long)
		}
		short, ok := t.Column(s.Short)
		if !ok {
			return nil, fmt.Errorf("spread %s: price column %q not found", s.Name, s.Short)
		}
		for r := range t.Dates {
			out.Values[i] = append(out.Values[i], long[r]-short[r])
		}
	}
	return out, nil
}

// Returns computes simple period-over-period returns. The first row has no
// prior price and is NaN.
func Returns(t *Table) *Table {
	out := NewTable(t.Columns, t.Len())
	out.Dates = append(out.Dates, t.Dates...)
	for c, series := range t.Values {
		for r := range series {
			if r == 0 {
				out.Values[c] = append(out.Values[c], math.NaN())
				continue
			}
			out.Values[c] = append(out.Values[c], series[r]/series[r-1]-1)
		}
	}
	return out
}

// RollingVolatility returns the annualized rolling standard deviation of the
// returns of t over window rows. A row is NaN until the window holds window
// finite returns.
func RollingVolatility(t *Table, window int) (*Table, error) {
	if window < 2 {
		return nil, fmt.Errorf("volatility window must be at least 2, got %d", window)
	}
	returns := Returns(t)
	annualize := math.Sqrt(constants.TradingDaysPerYear)

	out := NewTable(t.Columns, t.Len())
	out.Dates = append(out.Dates, t.Dates...)
	for c, series := range returns.Values {
		for r := range series {
			if r+1 < window {
				out.Values[c] = append(out.Values[c], math.NaN())
				continue
			}
			out.Values[c] = append(out.Values[c], sampleStdDev(series[r+1-window:r+1])*annualize)
		}
	}
	return out, nil
}

// Matrix is a labelled square matrix.
type Matrix struct {
	Labels []string
	Values [][]float64
}

// At returns the entry for the labels row and col.
func (m Matrix) At(row, col string) (float64, bool) {
	i, j := -1, -1
	for k, label := range m.Labels {
		if label == row {
			i = k
		}
		if label == col {
			j = k
		}
	}
	if i < 0 || j < 0 {
		return 0, false
	}
	return m.Values[i][j], true
}

// Correlation returns the Pearson correlation of the returns of every pair of
// columns, using the rows where both returns are finite.
func Correlation(t *Table) Matrix {
	returns := Returns(t)
	n := len(t.Columns)
	m := Matrix{
		Labels: append([]string(nil), t.Columns...),
		Values: make([][]float64, n),
	}
	for i := range m.Values {
		m.Values[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			rho := pearson(returns.Values[i], returns.Values[j])
			if i == j && finite(rho) {
				rho = 1
			}
			m.Values[i][j] = rho
			m.Values[j][i] = rho
		}
	}
	return m
}

// Dashboard bundles the analytics of one price history.
type Dashboard struct {
	Start       string
	End         string
	Window      int
	Prices      *Table
	Spreads     *Table
	Volatility  *Table
	Correlation Matrix
}

// BuildDashboard computes spreads, rolling volatility and return correlation
// for t. Spreads use DefaultSpreads.
func BuildDashboard(t *Table, window int) (*Dashboard, error) {
	if t.Len() == 0 {
		return nil, fmt.Errorf("price history is empty")
	}
	spreads, err := Spreads(t, DefaultSpreads)
	if err != nil {
		return nil, err
	}
	vol, err := RollingVolatility(t, window)
	if err != nil {
		return nil, err
	}
	return &Dashboard{
		Start:       datetime.FormatDate(t.Dates[0]),
		End:         datetime.FormatDate(t.Dates[t.Len()-1]),
		Window:      window,
		Prices:      t,
		Spreads:     spreads,
		Volatility:  vol,
		Correlation: Correlation(t),
	}, nil
}
