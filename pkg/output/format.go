// Package output provides utilities for formatting and displaying cargo
// economics and market dashboard results.
package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/iwvelando/lng-economics/internal/scenario"
	"github.com/iwvelando/lng-economics/pkg/economics"
	"github.com/iwvelando/lng-economics/pkg/format"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ReportTitle heads the human-readable report.
const ReportTitle = "=== LNG Cargo Economics & P&L ==="

// PrettyFormat outputs a human-readable rather than machine-readable report,
// one key: value line per metric.
func PrettyFormat(w io.Writer, results []scenario.Result) error {
	p := message.NewPrinter(language.English)
	if _, err := fmt.Fprintln(w, ReportTitle); err != nil {
		return err
	}
	for i, result := range results {
		if len(results) > 1 {
			if i > 0 {
				fmt.Fprintln(w)
			}
			fmt.Fprintf(w, "--- Results for scenario %s ---\n", result.Name)
		}
		for _, field := range result.Report.Rounded().Fields() {
			if _, err := p.Fprintf(w, "%s: %s\n", field.Key, p.Sprintf(precisionVerb(field.Precision), field.Value)); err != nil {
				return err
			}
		}
		for _, summary := range result.Breakeven {
			status := "converged"
			if !summary.Converged {
				status = "not converged"
			}
			fmt.Fprintf(w, "breakeven %s: %s (was %s, total P&L %s, %d iterations, %s)\n",
				summary.Field,
				summary.ValueDisplay,
				summary.OriginalDisplay,
				format.Currency(summary.TotalPnL),
				summary.Iterations,
				status,
			)
			for _, note := range summary.Notes {
				fmt.Fprintf(w, "  note: %s\n", note)
			}
		}
	}
	return nil
}

// CsvFormat outputs in comma-separated value format: one row per metric and
// one column per scenario. Breakeven values follow the report metrics.
func CsvFormat(w io.Writer, results []scenario.Result) error {
	writer := csv.NewWriter(w)

	header := []string{"metric"}
	for _, result := range results {
		header = append(header, result.Name)
	}
	if err := writer.Write(header); err != nil {
		return err
	}

	rounded := make([][]economics.Field, len(results))
	for i, result := range results {
		rounded[i] = result.Report.Rounded().Fields()
	}
	for row, field := range (economics.Report{}).Fields() {
		record := []string{field.Key}
		for i := range results {
			f := rounded[i][row]
			record = append(record, strconv.FormatFloat(f.Value, 'f', int(f.Precision), 64))
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	for _, field := range breakevenFields(results) {
		record := []string{"breakeven_" + field}
		for _, result := range results {
			value := ""
			for _, summary := range result.Breakeven {
				if summary.Field == field {
					value = strconv.FormatFloat(summary.Value, 'f', 6, 64)
					break
				}
			}
			record = append(record, value)
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// breakevenFields lists every solved field across results in order of first
// appearance.
func breakevenFields(results []scenario.Result) []string {
	seen := make(map[string]bool)
	var fields []string
	for _, result := range results {
		for _, summary := range result.Breakeven {
			if !seen[summary.Field] {
				seen[summary.Field] = true
				fields = append(fields, summary.Field)
			}
		}
	}
	return fields
}

func precisionVerb(precision int32) string {
	return "%." + strconv.Itoa(int(precision)) + "f"
}
