package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"time"

	"github.com/iwvelando/lng-economics/pkg/datetime"
	"github.com/iwvelando/lng-economics/pkg/market"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DashboardTitle heads the human-readable dashboard.
const DashboardTitle = "=== LNG Dashboard Run Complete ==="

// DashboardPrettyFormat prints the latest prices, spreads and volatilities
// and the return correlation matrix.
func DashboardPrettyFormat(w io.Writer, d *market.Dashboard, period string) error {
	p := message.NewPrinter(language.English)
	if _, err := fmt.Fprintln(w, DashboardTitle); err != nil {
		return err
	}
	fmt.Fprintf(w, "Period: %s\n", period)
	fmt.Fprintf(w, "Rolling Vol Window: %d days\n", d.Window)
	fmt.Fprintf(w, "History: %s to %s (%d rows)\n", d.Start, d.End, d.Prices.Len())

	sections := []struct {
		title string
		table *market.Table
		verb  string
	}{
		{"Latest prices", d.Prices, "%.2f"},
		{"Latest spreads", d.Spreads, "%.2f"},
		{"Latest annualized volatility", d.Volatility, "%.4f"},
	}
	for _, section := range sections {
		fmt.Fprintf(w, "\n--- %s ---\n", section.title)
		last := section.table.Len() - 1
		for c, column := range section.table.Columns {
			value := "n/a"
			if last >= 0 && !math.IsNaN(section.table.Values[c][last]) {
				value = p.Sprintf(section.verb, section.table.Values[c][last])
			}
			fmt.Fprintf(w, "%s: %s\n", column, value)
		}
	}

	fmt.Fprintf(w, "\n--- Return correlation ---\n")
	fmt.Fprintf(w, "%-8s", "")
	for _, label := range d.Correlation.Labels {
		fmt.Fprintf(w, " %8s", label)
	}
	fmt.Fprintln(w)
	for i, label := range d.Correlation.Labels {
		fmt.Fprintf(w, "%-8s", label)
		for _, v := range d.Correlation.Values[i] {
			fmt.Fprintf(w, " %8s", formatOptional(v, 3))
		}
		fmt.Fprintln(w)
	}
	return nil
}

// DashboardCsvFormat writes one row per date with prices, spreads and
// volatility side by side. Missing values are empty.
func DashboardCsvFormat(w io.Writer, d *market.Dashboard) error {
	writer := csv.NewWriter(w)
	header := []string{"date"}
	header = append(header, d.Prices.Columns...)
	header = append(header, d.Spreads.Columns...)
	for _, column := range d.Volatility.Columns {
		header = append(header, "vol "+column)
	}
	if err := writer.Write(header); err != nil {
		return err
	}
	for r, date := range d.Prices.Dates {
		record := []string{datetime.FormatDate(date)}
		for _, table := range []*market.Table{d.Prices, d.Spreads, d.Volatility} {
			for _, value := range table.Row(r) {
				record = append(record, formatOptional(value, 6))
			}
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// SeriesRecord is a table in JSON form; NaN becomes null.
type SeriesRecord struct {
	Dates  []string              `json:"dates"`
	Series map[string][]*float64 `json:"series"`
}

// DashboardEnvelope is the JSON document written for a dashboard run.
type DashboardEnvelope struct {
	RunID       string       `json:"runId"`
	GeneratedAt time.Time    `json:"generatedAt"`
	Period      string       `json:"period"`
	Window      int          `json:"window"`
	Start       string       `json:"start"`
	End         string       `json:"end"`
	Dropped     int          `json:"droppedRows"`
	Prices      SeriesRecord `json:"prices"`
	Spreads     SeriesRecord `json:"spreads"`
	Volatility  SeriesRecord `json:"volatility"`
	Labels      []string     `json:"correlationLabels"`
	Correlation [][]*float64 `json:"correlation"`
}

// DashboardJSONFormat writes the dashboard as an indented DashboardEnvelope.
func DashboardJSONFormat(w io.Writer, runID string, generatedAt time.Time, d *market.Dashboard, period string) error {
	env := DashboardEnvelope{
		RunID:       runID,
		GeneratedAt: generatedAt.UTC(),
		Period:      period,
		Window:      d.Window,
		Start:       d.Start,
		End:         d.End,
		Dropped:     d.Prices.Dropped,
		Prices:      seriesRecord(d.Prices),
		Spreads:     seriesRecord(d.Spreads),
		Volatility:  seriesRecord(d.Volatility),
		Labels:      d.Correlation.Labels,
	}
	for _, row := range d.Correlation.Values {
		env.Correlation = append(env.Correlation, nullable(row))
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(env)
}

// DashboardXLSXFormat writes one sheet per dashboard table.
func DashboardXLSXFormat(w io.Writer, d *market.Dashboard) error {
	wb, err := newWorkbook()
	if err != nil {
		return err
	}
	tables := []struct {
		name  string
		table *market.Table
	}{
		{"Prices", d.Prices},
		{"Spreads", d.Spreads},
		{"Volatility", d.Volatility},
	}
	for _, t := range tables {
		if err := wb.sheet(t.name); err != nil {
			return err
		}
		if err := wb.writeHeader(t.name, append([]string{"date"}, t.table.Columns...)); err != nil {
			return err
		}
		for r, date := range t.table.Dates {
			if err := wb.setCell(t.name, 1, r+2, datetime.FormatDate(date), 0); err != nil {
				return err
			}
			for c, value := range t.table.Row(r) {
				if math.IsNaN(value) || math.IsInf(value, 0) {
					continue
				}
				if err := wb.setCell(t.name, c+2, r+2, value, 0); err != nil {
					return err
				}
			}
		}
	}

	const corr = "Correlation"
	if err := wb.sheet(corr); err != nil {
		return err
	}
	if err := wb.writeHeader(corr, append([]string{""}, d.Correlation.Labels...)); err != nil {
		return err
	}
	for i, label := range d.Correlation.Labels {
		if err := wb.setCell(corr, 1, i+2, label, 0); err != nil {
			return err
		}
		for j, value := range d.Correlation.Values[i] {
			if math.IsNaN(value) {
				continue
			}
			if err := wb.setCell(corr, j+2, i+2, value, 0); err != nil {
				return err
			}
		}
	}
	return wb.write(w)
}

func seriesRecord(t *market.Table) SeriesRecord {
	rec := SeriesRecord{
		Dates:  make([]string, len(t.Dates)),
		Series: make(map[string][]*float64, len(t.Columns)),
	}
	for i, date := range t.Dates {
		rec.Dates[i] = datetime.FormatDate(date)
	}
	for c, column := range t.Columns {
		rec.Series[column] = nullable(t.Values[c])
	}
	return rec
}

func nullable(values []float64) []*float64 {
	out := make([]*float64, len(values))
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		out[i] = &v
	}
	return out
}

func formatOptional(v float64, decimals int) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ""
	}
	return strconv.FormatFloat(v, 'f', decimals, 64)
}
