package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/censuspdf/censustab/model"
)

// WriteCSV writes the table as RFC 4180 CSV with a header row. All cells
// are rendered as text; missing measurements keep the source marker.
func WriteCSV(t *model.Table, w io.Writer) error {
	cw := csv.NewWriter(w)
	cols := t.Columns()

	if err := cw.Write(cols); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	record := make([]string, len(cols))
	for _, rec := range t.Records() {
		for i, col := range cols {
			record[i] = cellString(rec[col])
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteCSVFile writes the table to a CSV file at path.
func WriteCSVFile(t *model.Table, path string) error {
	return writeFile(path, func(w io.Writer) error { return WriteCSV(t, w) })
}

func cellString(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case int64:
		return fmt.Sprintf("%d", x)
	default:
		return fmt.Sprintf("%v", x)
	}
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
