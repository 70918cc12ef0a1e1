package export

import (
	"fmt"
	"path/filepath"

	"github.com/xuri/excelize/v2"
)

// WriteExcel writes the whole report as one workbook under dir, one sheet per
// output table, with the run id on a cover sheet. Returns the file path.
func WriteExcel(dir string, report *Report) (string, error) {
	xl := excelize.NewFile()
	defer func() { _ = xl.Close() }()

	// Cover sheet replaces the default Sheet1.
	const cover = "run"
	if err := xl.SetSheetName("Sheet1", cover); err != nil {
		return "", fmt.Errorf("failed to rename cover sheet: %w", err)
	}
	_ = xl.SetSheetRow(cover, "A1", &[]interface{}{"run_id", report.RunID})

	for _, t := range report.tables() {
		// Excel caps sheet names at 31 chars.
		name := t.name
		if len(name) > 31 {
			name = name[:31]
		}
		if _, err := xl.NewSheet(name); err != nil {
			return "", fmt.Errorf("failed to create sheet %s: %w", name, err)
		}

		header := make([]interface{}, len(t.header))
		for i, h := range t.header {
			header[i] = h
		}
		_ = xl.SetSheetRow(name, "A1", &header)

		for ri, row := range t.rows {
			record := make([]interface{}, len(row))
			for ci, v := range row {
				record[ci] = v
			}
			cellRef, _ := excelize.CoordinatesToCellName(1, ri+2)
			_ = xl.SetSheetRow(name, cellRef, &record)
		}
	}

	path := filepath.Join(dir, "mining_report.xlsx")
	if err := xl.SaveAs(path); err != nil {
		return "", fmt.Errorf("failed to save workbook: %w", err)
	}
	return path, nil
}
