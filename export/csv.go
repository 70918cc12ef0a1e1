package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
)

// WriteCSV writes one CSV file per output table under dir, creating it if
// needed. Files are named <table>.csv and always start with the header row.
func WriteCSV(dir string, report *Report) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create export dir: %w", err)
	}

	var written []string
	for _, t := range report.tables() {
		path := filepath.Join(dir, t.name+".csv")
		if err := writeCSVFile(path, t); err != nil {
			return nil, err
		}
		written = append(written, path)
	}
	return written, nil
}

func writeCSVFile(path string, t table) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(t.header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", t.name, err)
	}
	for _, row := range t.rows {
		if err := w.Write(row); err != nil {
			return fmt.Errorf("failed to write %s row: %w", t.name, err)
		}
	}
	w.Flush()
	return w.Error()
}
