package parse

import (
	"testing"

	"github.com/censuspdf/censustab/model"
	"github.com/censuspdf/censustab/profile"
)

func censusRow(region, section, sex string, total int64, source string) model.Row {
	cols := []string{"TOTAL"}
	return model.Row{
		Region:   region,
		Section:  section,
		Category: sex,
		Source:   source,
		Columns:  cols,
		Cells:    map[string]model.Value{"TOTAL": model.IntValue(total)},
	}
}

// Identical rows from different pages collapse to one when provenance is
// excluded from equality, and stay separate when it is included.
func TestFinalizeDedupModes(t *testing.T) {
	row1 := censusRow("DISTRICT A", "OVERALL", "MALE", 100, "page_0")
	row2 := censusRow("DISTRICT A", "OVERALL", "MALE", 100, "page_1")

	acc := NewAccumulator(profile.Census(), false, false)
	acc.Add(row1)
	acc.Add(row2)
	if got := acc.Finalize().RowCount(); got != 1 {
		t.Errorf("dedup excluding provenance: Expected 1 row, got %d", got)
	}

	acc = NewAccumulator(profile.Census(), true, false)
	acc.Add(row1)
	acc.Add(row2)
	if got := acc.Finalize().RowCount(); got != 2 {
		t.Errorf("dedup including provenance: Expected 2 rows, got %d", got)
	}
}

func TestFinalizeKeepsFirstOccurrence(t *testing.T) {
	acc := NewAccumulator(profile.Census(), false, false)
	acc.Add(censusRow("DISTRICT B", "RURAL", "FEMALE", 7, "p1"))
	acc.Add(censusRow("DISTRICT A", "OVERALL", "MALE", 1, "p2"))
	acc.Add(censusRow("DISTRICT B", "RURAL", "FEMALE", 7, "p3"))

	table := acc.Finalize()
	if table.RowCount() != 2 {
		t.Fatalf("Expected 2 rows, got %d", table.RowCount())
	}
	if table.Rows[0].Source != "p1" {
		t.Errorf("Expected first occurrence kept, got source %q", table.Rows[0].Source)
	}
}

func TestFinalizeSortOrder(t *testing.T) {
	acc := NewAccumulator(profile.Census(), false, true)
	acc.Add(censusRow("DISTRICT B", "URBAN", "MALE", 1, "p"))
	acc.Add(censusRow("DISTRICT A", "RURAL", "FEMALE", 2, "p"))
	acc.Add(censusRow("DISTRICT A", "OVERALL", "MALE", 3, "p"))
	acc.Add(censusRow("DISTRICT A", "OVERALL", "ALL", 4, "p"))
	acc.Add(censusRow("DISTRICT A", "GARBLED", "ALL", 5, "p"))

	table := acc.Finalize()
	got := make([]string, 0, table.RowCount())
	for _, r := range table.Rows {
		got = append(got, r.Region+"/"+r.Section+"/"+r.Category)
	}

	want := []string{
		"DISTRICT A/OVERALL/ALL",
		"DISTRICT A/OVERALL/MALE",
		"DISTRICT A/RURAL/FEMALE",
		"DISTRICT A/GARBLED/ALL", // unrecognized section sorts last
		"DISTRICT B/URBAN/MALE",
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("row %d: Expected %s, got %s", i, want[i], got[i])
		}
	}
}

func TestFinalizeEmpty(t *testing.T) {
	acc := NewAccumulator(profile.Census(), false, true)
	table := acc.Finalize()
	if table.RowCount() != 0 {
		t.Errorf("Expected empty table, got %d rows", table.RowCount())
	}
	if table.CategoryColumn != "SEX" {
		t.Errorf("Expected category column SEX, got %q", table.CategoryColumn)
	}
}
