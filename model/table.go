package model

import "strings"

// Table is the final ordered collection of structured rows. Insertion
// order is preserved for human review; rows assembled against different
// schemas may carry different numeric column sets, and the Table presents
// the union of them in first-seen order.
type Table struct {
	// CategoryColumn is the header used for the category cell, for
	// example "SEX" for census profiles or "POLLING_STATION" for
	// election profiles.
	CategoryColumn string

	Rows []Row
}

// RowCount returns the number of rows.
func (t *Table) RowCount() int {
	return len(t.Rows)
}

// Columns returns the uniform column set: the context columns, the
// category column, the union of numeric columns across all rows in
// first-seen order, and the provenance column last.
func (t *Table) Columns() []string {
	category := t.CategoryColumn
	if category == "" {
		category = "CATEGORY"
	}

	cols := []string{ColumnRegion, ColumnSection, category}
	seen := make(map[string]bool)
	for _, row := range t.Rows {
		for _, c := range row.Columns {
			if !seen[c] {
				seen[c] = true
				cols = append(cols, c)
			}
		}
	}
	return append(cols, ColumnSource)
}

// Records returns the table as a sequence of uniform mappings from column
// name to value, the in-memory contract consumed by export collaborators.
// Numeric cells appear as int64, missing cells as the missing marker, and
// numeric columns a row's schema did not define as the empty string.
func (t *Table) Records() []map[string]any {
	cols := t.Columns()
	category := cols[2]

	records := make([]map[string]any, 0, len(t.Rows))
	for _, row := range t.Rows {
		rec := make(map[string]any, len(cols))
		rec[ColumnRegion] = row.Region
		rec[ColumnSection] = row.Section
		rec[category] = row.Category
		rec[ColumnSource] = row.Source
		for _, c := range cols[3 : len(cols)-1] {
			if v, ok := row.Cells[c]; ok {
				rec[c] = v.Raw()
			} else {
				rec[c] = ""
			}
		}
		records = append(records, rec)
	}
	return records
}

// cellText renders one cell for the text exports.
func cellText(row Row, col, category string) string {
	switch col {
	case ColumnRegion:
		return row.Region
	case ColumnSection:
		return row.Section
	case category:
		return row.Category
	case ColumnSource:
		return row.Source
	}
	if v, ok := row.Cells[col]; ok {
		return v.String()
	}
	return ""
}

// ToCSV converts the table to CSV format.
func (t *Table) ToCSV() string {
	var sb strings.Builder
	cols := t.Columns()

	writeCell := func(text string, last bool) {
		if strings.ContainsAny(text, ",\"\n") {
			text = "\"" + strings.ReplaceAll(text, "\"", "\"\"") + "\""
		}
		sb.WriteString(text)
		if !last {
			sb.WriteString(",")
		}
	}

	for j, col := range cols {
		writeCell(col, j == len(cols)-1)
	}
	sb.WriteString("\n")

	for _, row := range t.Rows {
		for j, col := range cols {
			writeCell(cellText(row, col, cols[2]), j == len(cols)-1)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// ToMarkdown converts the table to markdown format.
func (t *Table) ToMarkdown() string {
	if len(t.Rows) == 0 {
		return ""
	}

	var sb strings.Builder
	cols := t.Columns()

	for j, col := range cols {
		sb.WriteString("| ")
		sb.WriteString(col)
		sb.WriteString(" ")
		if j == len(cols)-1 {
			sb.WriteString("|")
		}
	}
	sb.WriteString("\n")

	for j := range cols {
		sb.WriteString("|---")
		if j == len(cols)-1 {
			sb.WriteString("|")
		}
	}
	sb.WriteString("\n")

	for _, row := range t.Rows {
		for j, col := range cols {
			sb.WriteString("| ")
			sb.WriteString(cellText(row, col, cols[2]))
			sb.WriteString(" ")
			if j == len(cols)-1 {
				sb.WriteString("|")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
