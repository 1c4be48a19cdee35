package report

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ColumnLayout names one column of a report sheet.
type ColumnLayout struct {
	Header string  `yaml:"header"`
	Width  float64 `yaml:"width"`
}

// SheetLayout is the name and column set of one sheet.
type SheetLayout struct {
	Name    string         `yaml:"name"`
	Columns []ColumnLayout `yaml:"columns"`
}

// Layout controls the workbook produced by Exporter. Column order is fixed by
// the data; the layout only renames sheets and headers and sets widths.
type Layout struct {
	Directory  SheetLayout `yaml:"directory"`
	Attendance SheetLayout `yaml:"attendance"`
	Summary    SheetLayout `yaml:"summary"`
}

// DefaultLayout is the workbook shape used when no layout file is given.
func DefaultLayout() Layout {
	return Layout{
		Directory: SheetLayout{
			Name: "Employees",
			Columns: []ColumnLayout{
				{Header: "Employee ID", Width: 14},
				{Header: "Full Name", Width: 28},
				{Header: "Email", Width: 32},
				{Header: "Department", Width: 18},
			},
		},
		Attendance: SheetLayout{
			Name: "Attendance",
			Columns: []ColumnLayout{
				{Header: "Employee ID", Width: 14},
				{Header: "Date", Width: 14},
				{Header: "Status", Width: 12},
			},
		},
		Summary: SheetLayout{
			Name: "Summary",
			Columns: []ColumnLayout{
				{Header: "Employee ID", Width: 14},
				{Header: "Full Name", Width: 28},
				{Header: "Department", Width: 18},
				{Header: "Present", Width: 10},
				{Header: "Absent", Width: 10},
				{Header: "Total", Width: 10},
			},
		},
	}
}

// LoadLayout reads a layout file and fills gaps from the default, so a file
// may override just one sheet.
func LoadLayout(path string) (Layout, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("read layout file: %w", err)
	}

	layout := DefaultLayout()
	var override Layout
	if err := yaml.Unmarshal(raw, &override); err != nil {
		return Layout{}, fmt.Errorf("decode layout file: %w", err)
	}
	mergeSheet(&layout.Directory, override.Directory)
	mergeSheet(&layout.Attendance, override.Attendance)
	mergeSheet(&layout.Summary, override.Summary)
	return layout, nil
}

func mergeSheet(dst *SheetLayout, src SheetLayout) {
	if src.Name != "" {
		dst.Name = src.Name
	}
	for i, col := range src.Columns {
		if i >= len(dst.Columns) {
			break
		}
		if col.Header != "" {
			dst.Columns[i].Header = col.Header
		}
		if col.Width > 0 {
			dst.Columns[i].Width = col.Width
		}
	}
}
