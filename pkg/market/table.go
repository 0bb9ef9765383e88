// Package market computes the LNG price dashboard: hub spreads, rolling
// volatility and the correlation of daily returns.
package market

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/iwvelando/lng-economics/pkg/datetime"
)

// DefaultTickers maps the dashboard's price columns to the futures tickers
// they are normally sourced from.
var DefaultTickers = []Ticker{
	{Name: "JKM", Symbol: "JKM=F"},
	{Name: "TTF", Symbol: "TTF=F"},
	{Name: "NBP", Symbol: "NBP=F"},
	{Name: "Brent", Symbol: "BZ=F"},
}

// Ticker names a price column and its exchange symbol.
type Ticker struct {
	Name   string
	Symbol string
}

// Table is a date-indexed set of float series. Values[c][r] is the value of
// column c on Dates[r].
type Table struct {
	Dates   []time.Time
	Columns []string
	Values  [][]float64

	// Dropped counts input rows discarded by LoadCSV.
	Dropped int
}

// NewTable allocates an empty table with the given columns and capacity.
func NewTable(columns []string, rows int) *Table {
	t := &Table{
		Dates:   make([]time.Time, 0, rows),
		Columns: append([]string(nil), columns...),
		Values:  make([][]float64, len(columns)),
	}
	for i := range t.Values {
		t.Values[i] = make([]float64, 0, rows)
	}
	return t
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.Dates)
}

// Column returns the series named name.
func (t *Table) Column(name string) ([]float64, bool) {
	for i, column := range t.Columns {
		if column == name {
			return t.Values[i], true
		}
	}
	return nil, false
}

// Row returns the values of row r in column order.
func (t *Table) Row(r int) []float64 {
	row := make([]float64, len(t.Columns))
	for c := range t.Columns {
		row[c] = t.Values[c][r]
	}
	return row
}

// Append adds a row. values must be in column order.
func (t *Table) Append(date time.Time, values []float64) {
	t.Dates = append(t.Dates, date)
	for c := range t.Columns {
		t.Values[c] = append(t.Values[c], values[c])
	}
}

// LoadCSVFile opens path and parses it with LoadCSV.
func LoadCSVFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open price file: %w", err)
	}
	defer f.Close()
	return LoadCSV(f)
}

// LoadCSV parses a price file with a header of the form date,<series>...
// and one row per trading day. Rows with an empty, NaN or non-numeric price
// are dropped. The result is sorted by date; a repeated date is an error.
func LoadCSV(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("price file is empty")
		}
		return nil, fmt.Errorf("read price header: %w", err)
	}
	if len(header) < 2 || !strings.EqualFold(strings.TrimSpace(header[0]), "date") {
		return nil, fmt.Errorf("price header must start with date and name at least one series, got %q", strings.Join(header, ","))
	}
	columns := make([]string, len(header)-1)
	for i, name := range header[1:] {
		columns[i] = strings.TrimSpace(name)
		if columns[i] == "" {
			return nil, fmt.Errorf("price header column %d has no name", i+2)
		}
	}

	type row struct {
		date   time.Time
		values []float64
	}
	var rows []row
	dropped := 0
	line := 1
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("read price row %d: %w", line, err)
		}

		date, err := datetime.ParseDate(record[0])
		if err != nil {
			return nil, fmt.Errorf("price row %d: invalid date %q: %w", line, record[0], err)
		}

		values := make([]float64, len(columns))
		complete := true
		for i, field := range record[1:] {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
				complete = false
				break
			}
			values[i] = v
		}
		if !complete {
			dropped++
			continue
		}
		rows = append(rows, row{date: date, values: values})
	}

	sort.SliceStable(rows, func(i, j int) bool { return rows[i].date.Before(rows[j].date) })

	table := NewTable(columns, len(rows))
	table.Dropped = dropped
	for i, r := range rows {
		if i > 0 && r.date.Equal(rows[i-1].date) {
			return nil, fmt.Errorf("price date %s appears more than once", datetime.FormatDate(r.date))
		}
		table.Append(r.date, r.values)
	}
	return table, nil
}

// Trim keeps the rows inside period, counted back from the last date. The
// boundary date itself is excluded, so "1d" keeps only the last row.
func (t *Table) Trim(period Period) *Table {
	out := NewTable(t.Columns, t.Len())
	out.Dropped = t.Dropped
	if t.Len() == 0 {
		return out
	}
	start := period.Start(t.Dates[t.Len()-1])
	for r, date := range t.Dates {
		if date.After(start) {
			out.Append(date, t.Row(r))
		}
	}
	return out
}
