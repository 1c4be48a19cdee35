// Package report renders the employee directory, attendance log, and
// per-employee summary into an Excel workbook.
package report

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/workhub/hrms-lite/internal/domain"
	"github.com/workhub/hrms-lite/internal/logger"
)

type Exporter struct {
	layout Layout
}

func NewExporter(layout Layout) *Exporter {
	return &Exporter{layout: layout}
}

// Export writes the workbook to path. Sheet and header naming comes from the
// exporter's layout; data order is whatever the caller passes (the store's
// server-response order).
func (e *Exporter) Export(ctx context.Context, path string,
	employees []domain.Employee,
	attendance []domain.AttendanceRecord,
	summary []domain.AttendanceSummaryRow) error {

	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"4472C4"}},
	})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}

	directory := make([][]interface{}, 0, len(employees))
	for _, emp := range employees {
		directory = append(directory, []interface{}{emp.Code, emp.FullName, emp.Email, emp.Department})
	}
	if err := writeSheet(f, e.layout.Directory, headerStyle, directory, true); err != nil {
		return err
	}

	log := make([][]interface{}, 0, len(attendance))
	for _, rec := range attendance {
		log = append(log, []interface{}{rec.EmployeeCode, rec.Date, string(rec.Status)})
	}
	if err := writeSheet(f, e.layout.Attendance, headerStyle, log, false); err != nil {
		return err
	}

	totals := make([][]interface{}, 0, len(summary))
	for _, row := range summary {
		totals = append(totals, []interface{}{
			row.EmployeeCode, row.EmployeeName, row.Department,
			row.TotalPresent, row.TotalAbsent, row.TotalRecords,
		})
	}
	if err := writeSheet(f, e.layout.Summary, headerStyle, totals, false); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	logger.InfoLog(ctx, "report written to %s (%d employees, %d attendance rows)",
		path, len(employees), len(attendance))
	return nil
}

// writeSheet fills one sheet with a header row and the data rows. The first
// sheet replaces excelize's default "Sheet1".
func writeSheet(f *excelize.File, layout SheetLayout, headerStyle int, rows [][]interface{}, first bool) error {
	if first {
		if err := f.SetSheetName("Sheet1", layout.Name); err != nil {
			return fmt.Errorf("rename sheet: %w", err)
		}
	} else {
		if _, err := f.NewSheet(layout.Name); err != nil {
			return fmt.Errorf("create sheet %s: %w", layout.Name, err)
		}
	}

	for i, col := range layout.Columns {
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		cell := name + "1"
		if err := f.SetCellValue(layout.Name, cell, col.Header); err != nil {
			return err
		}
		if err := f.SetCellStyle(layout.Name, cell, cell, headerStyle); err != nil {
			return err
		}
		if col.Width > 0 {
			if err := f.SetColWidth(layout.Name, name, name, col.Width); err != nil {
				return err
			}
		}
	}

	for r, row := range rows {
		for cIdx, val := range row {
			cell, err := excelize.CoordinatesToCellName(cIdx+1, r+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(layout.Name, cell, val); err != nil {
				return err
			}
		}
	}
	return nil
}
