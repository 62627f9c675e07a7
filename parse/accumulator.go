package parse

import (
	"sort"

	"github.com/censuspdf/censustab/model"
	"github.com/censuspdf/censustab/profile"
)

// Accumulator collects assembled rows in encounter order across the full
// input set and produces the final table.
type Accumulator struct {
	prof          *profile.Profile
	rows          []model.Row
	includeSource bool
	sortRows      bool
}

// NewAccumulator returns an accumulator. includeSource controls whether
// provenance participates in duplicate equality; sortRows enables the
// final ordering pass.
func NewAccumulator(p *profile.Profile, includeSource, sortRows bool) *Accumulator {
	return &Accumulator{prof: p, includeSource: includeSource, sortRows: sortRows}
}

// Add appends a row. Row emission is atomic: either the full row is added
// here or nothing was.
func (a *Accumulator) Add(row model.Row) {
	a.rows = append(a.rows, row)
}

// Len returns the number of rows collected so far.
func (a *Accumulator) Len() int {
	return len(a.rows)
}

// Reset discards all collected rows.
func (a *Accumulator) Reset() {
	a.rows = nil
}

// Finalize produces the table: exact duplicates are removed keeping the
// first occurrence, then rows are stable-sorted by region, section rank,
// and category rank. Section and category values outside the profile's
// vocabulary sort after all recognized ones.
func (a *Accumulator) Finalize() *model.Table {
	seen := make(map[string]struct{}, len(a.rows))
	rows := make([]model.Row, 0, len(a.rows))
	for _, r := range a.rows {
		key := r.Key(a.includeSource)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		rows = append(rows, r)
	}

	if a.sortRows {
		sort.SliceStable(rows, func(i, j int) bool {
			if rows[i].Region != rows[j].Region {
				return rows[i].Region < rows[j].Region
			}
			si, sj := a.prof.SectionRank(rows[i].Section), a.prof.SectionRank(rows[j].Section)
			if si != sj {
				return si < sj
			}
			return a.prof.CategoryRank(rows[i].Category) < a.prof.CategoryRank(rows[j].Category)
		})
	}

	return &model.Table{CategoryColumn: a.prof.CategoryColumn, Rows: rows}
}
