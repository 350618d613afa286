package excel

import (
	"fmt"
	"io"
	"strings"

	"freight-cost/internal/models"

	"github.com/xuri/excelize/v2"
)

const tripHeader = "Query"

var resultHeaders = []interface{}{
	"Row", "Query", "Miles", "Diesel Cost", "Electric Cost", "Savings", "Error",
}

func OpenFile(filename string) (*excelize.File, error) {
	return excelize.OpenFile(filename)
}

// ReadTrips reads column A of sheetName as one trip query per row. The first
// row is a header; blank cells are skipped. Row numbers are 1-based sheet rows.
func ReadTrips(f *excelize.File, sheetName string) ([]models.TripRow, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("excel.ReadTrips: %w", err)
	}

	var trips []models.TripRow
	for i, row := range rows {
		if i == 0 {
			continue // Skip header
		}
		if len(row) == 0 {
			continue
		}
		query := strings.TrimSpace(row[0])
		if query == "" {
			continue
		}
		trips = append(trips, models.TripRow{Row: i + 1, Query: query})
	}
	return trips, nil
}

// WriteResult writes one result row per trip plus a totals row to a new workbook.
func WriteResult(path string, data []models.ResultRow, totals models.CostComparison, sheetName string) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("excel.WriteResult: new sheet: %w", err)
	}

	sw, err := f.NewStreamWriter(sheetName)
	if err != nil {
		return fmt.Errorf("excel.WriteResult: stream writer: %w", err)
	}

	if err := sw.SetRow("A1", resultHeaders); err != nil {
		return fmt.Errorf("excel.WriteResult: header: %w", err)
	}

	for i, r := range data {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := []interface{}{r.Row, r.Query, nil, nil, nil, nil, r.Error}
		if r.Error == "" {
			row[2], row[3], row[4], row[5] = r.Miles, r.DieselTotal, r.ElectricTotal, r.Savings
		}
		if err := sw.SetRow(cell, row); err != nil {
			return fmt.Errorf("excel.WriteResult: row %d: %w", r.Row, err)
		}
	}

	cell, _ := excelize.CoordinatesToCellName(1, len(data)+2)
	total := []interface{}{"Total", nil, totals.Miles, totals.DieselTotal, totals.ElectricTotal, totals.Savings, nil}
	if err := sw.SetRow(cell, total); err != nil {
		return fmt.Errorf("excel.WriteResult: totals: %w", err)
	}

	if err := sw.Flush(); err != nil {
		return fmt.Errorf("excel.WriteResult: flush: %w", err)
	}

	f.SetActiveSheet(index)
	if sheetName != "Sheet1" {
		f.DeleteSheet("Sheet1")
	}

	return f.SaveAs(path)
}

// WriteTemplate writes an empty trip workbook, header row only, to w.
func WriteTemplate(w io.Writer, sheetName string) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("excel.WriteTemplate: new sheet: %w", err)
	}
	if err := f.SetCellValue(sheetName, "A1", tripHeader); err != nil {
		return fmt.Errorf("excel.WriteTemplate: header: %w", err)
	}
	_ = f.SetColWidth(sheetName, "A", "A", 60)

	f.SetActiveSheet(index)
	if sheetName != "Sheet1" {
		f.DeleteSheet("Sheet1")
	}

	return f.Write(w)
}
