package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/iwvelando/lng-economics/internal/scenario"
	"github.com/iwvelando/lng-economics/pkg/economics"
	"github.com/xuri/excelize/v2"
)

const (
	sheetScenarios = "Scenarios"
	sheetBreakeven = "Breakeven"
)

// workbook wraps an excelize file with the header and number styles shared
// by every sheet.
type workbook struct {
	file        *excelize.File
	headerStyle int
	numberStyle int
	daysStyle   int
	sheets      int
}

func newWorkbook() (*workbook, error) {
	f := excelize.NewFile()
	header, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF", Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}
	numberFormat := "#,##0.00"
	number, err := f.NewStyle(&excelize.Style{CustomNumFmt: &numberFormat})
	if err != nil {
		return nil, fmt.Errorf("failed to create number style: %w", err)
	}
	daysFormat := "0.000"
	days, err := f.NewStyle(&excelize.Style{CustomNumFmt: &daysFormat})
	if err != nil {
		return nil, fmt.Errorf("failed to create days style: %w", err)
	}
	return &workbook{file: f, headerStyle: header, numberStyle: number, daysStyle: days}, nil
}

// sheet returns a new sheet named name. The first call renames the default
// sheet.
func (wb *workbook) sheet(name string) error {
	wb.sheets++
	if wb.sheets == 1 {
		return wb.file.SetSheetName("Sheet1", name)
	}
	_, err := wb.file.NewSheet(name)
	return err
}

// writeHeader writes a styled header row and freezes it.
func (wb *workbook) writeHeader(sheet string, columns []string) error {
	for i, column := range columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := wb.file.SetCellValue(sheet, cell, column); err != nil {
			return err
		}
	}
	last, err := excelize.CoordinatesToCellName(len(columns), 1)
	if err != nil {
		return err
	}
	if err := wb.file.SetCellStyle(sheet, "A1", last, wb.headerStyle); err != nil {
		return err
	}
	if err := wb.file.SetColWidth(sheet, "A", "A", 28); err != nil {
		return err
	}
	return wb.file.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		XSplit:      1,
		YSplit:      1,
		TopLeftCell: "B2",
		ActivePane:  "bottomRight",
	})
}

// setCell writes value at (col, row), both 1-based, with an optional style.
func (wb *workbook) setCell(sheet string, col, row int, value interface{}, style int) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	if err := wb.file.SetCellValue(sheet, cell, value); err != nil {
		return err
	}
	if style > 0 {
		return wb.file.SetCellStyle(sheet, cell, cell, style)
	}
	return nil
}

func (wb *workbook) write(w io.Writer) error {
	defer wb.file.Close()
	return wb.file.Write(w)
}

// XLSXFormat writes results as an Excel workbook: a Scenarios sheet with one
// column per scenario and, when any scenario has breakeven directives, a
// Breakeven sheet.
func XLSXFormat(w io.Writer, results []scenario.Result) error {
	wb, err := newWorkbook()
	if err != nil {
		return err
	}
	if err := wb.sheet(sheetScenarios); err != nil {
		return err
	}

	header := []string{"metric"}
	for _, result := range results {
		header = append(header, result.Name)
	}
	if err := wb.writeHeader(sheetScenarios, header); err != nil {
		return err
	}

	for row, field := range (economics.Report{}).Fields() {
		if err := wb.setCell(sheetScenarios, 1, row+2, field.Key, 0); err != nil {
			return err
		}
	}
	for col, result := range results {
		for row, field := range result.Report.Rounded().Fields() {
			style := wb.numberStyle
			if field.Key == "shipping_days" {
				style = wb.daysStyle
			}
			if err := wb.setCell(sheetScenarios, col+2, row+2, field.Value, style); err != nil {
				return err
			}
		}
	}

	if len(breakevenFields(results)) > 0 {
		if err := writeBreakevenSheet(wb, results); err != nil {
			return err
		}
	}

	return wb.write(w)
}

func writeBreakevenSheet(wb *workbook, results []scenario.Result) error {
	if err := wb.sheet(sheetBreakeven); err != nil {
		return err
	}
	columns := []string{"scenario", "field", "original", "value", "target_pnl_usd", "total_pnl_usd", "iterations", "converged", "notes"}
	if err := wb.writeHeader(sheetBreakeven, columns); err != nil {
		return err
	}

	row := 2
	for _, result := range results {
		for _, summary := range result.Breakeven {
			values := []interface{}{
				result.Name,
				summary.Field,
				summary.Original,
				summary.Value,
				summary.TargetPnL,
				summary.TotalPnL,
				summary.Iterations,
				summary.Converged,
				strings.Join(summary.Notes, "; "),
			}
			for col, value := range values {
				style := 0
				if col == 4 || col == 5 {
					style = wb.numberStyle
				}
				if err := wb.setCell(sheetBreakeven, col+1, row, value, style); err != nil {
					return err
				}
			}
			row++
		}
	}
	return nil
}
