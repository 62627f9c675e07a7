package export

import (
	"fmt"
	"sort"
	"strings"

	"github.com/censuspdf/censustab/model"
)

// Stats summarizes a parsed table for run reports.
type Stats struct {
	Rows       int
	Regions    int
	Sources    int
	BySection  map[string]int
	ByCategory map[string]int

	// MissingCells counts cells holding the explicit missing marker.
	MissingCells int
}

// Summarize computes table statistics.
func Summarize(t *model.Table) Stats {
	s := Stats{
		Rows:       t.RowCount(),
		BySection:  make(map[string]int),
		ByCategory: make(map[string]int),
	}

	regions := make(map[string]bool)
	sources := make(map[string]bool)
	for _, row := range t.Rows {
		regions[row.Region] = true
		sources[row.Source] = true
		s.BySection[row.Section]++
		s.ByCategory[row.Category]++
		for _, v := range row.Cells {
			if v.Missing {
				s.MissingCells++
			}
		}
	}
	s.Regions = len(regions)
	s.Sources = len(sources)
	return s
}

// String renders the summary as a short multi-line report.
func (s Stats) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "rows: %d\n", s.Rows)
	fmt.Fprintf(&sb, "regions: %d\n", s.Regions)
	fmt.Fprintf(&sb, "source pages: %d\n", s.Sources)
	fmt.Fprintf(&sb, "missing cells: %d\n", s.MissingCells)

	for _, line := range []struct {
		label  string
		counts map[string]int
	}{
		{"sections", s.BySection},
		{"categories", s.ByCategory},
	} {
		keys := make([]string, 0, len(line.counts))
		for k := range line.counts {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			parts = append(parts, fmt.Sprintf("%s=%d", k, line.counts[k]))
		}
		fmt.Fprintf(&sb, "%s: %s\n", line.label, strings.Join(parts, " "))
	}
	return sb.String()
}
