package model

import "strings"

// Reserved column names attached to every row in addition to the numeric
// columns of the selected schema.
const (
	ColumnRegion  = "REGION"
	ColumnSection = "SECTION"
	ColumnSource  = "SOURCE_IMAGE"
)

// Row is one structured output row: the region/section context it was
// emitted under, the parsed category, the ordered numeric cells named by
// the selected schema, and the provenance of the source page.
type Row struct {
	Region   string
	Section  string
	Category string
	Source   string

	// Columns holds the numeric column names of the schema the row was
	// assembled against, in order. Cells maps each of those names to its
	// value.
	Columns []string
	Cells   map[string]Value
}

// Value returns the named numeric cell and whether it is present.
func (r Row) Value(column string) (Value, bool) {
	v, ok := r.Cells[column]
	return v, ok
}

// Key builds the row's deduplication key. Two rows are duplicates when all
// column values match; whether provenance participates is a configured
// mode, so it is a parameter here.
func (r Row) Key(includeSource bool) string {
	var sb strings.Builder
	sb.WriteString(r.Region)
	sb.WriteByte(0x1f)
	sb.WriteString(r.Section)
	sb.WriteByte(0x1f)
	sb.WriteString(r.Category)
	for _, col := range r.Columns {
		sb.WriteByte(0x1f)
		sb.WriteString(col)
		sb.WriteByte('=')
		sb.WriteString(r.Cells[col].String())
	}
	if includeSource {
		sb.WriteByte(0x1f)
		sb.WriteString(r.Source)
	}
	return sb.String()
}
