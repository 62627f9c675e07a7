package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/censuspdf/censustab/model"
)

// WriteJSON writes the table as an indented JSON array of records, one
// object per row keyed by column name. Recovered numbers are JSON
// numbers; the missing marker stays a string.
func WriteJSON(t *model.Table, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(t.Records()); err != nil {
		return fmt.Errorf("json write: %w", err)
	}
	return nil
}

// WriteJSONFile writes the table to a JSON file at path.
func WriteJSONFile(t *model.Table, path string) error {
	return writeFile(path, func(w io.Writer) error { return WriteJSON(t, w) })
}
