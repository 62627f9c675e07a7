package censustab

import (
	"strings"
	"testing"

	"github.com/censuspdf/censustab/model"
	"github.com/censuspdf/censustab/profile"
)

var censusLines = []string{
	"DISTRICT A",
	"OVERALL",
	"ALL SEXES 1,000 900 50 30 10 5 5",
	"RURAL",
	"MALE 500 450 25 15 5 3 2",
}

func TestFromLinesTable(t *testing.T) {
	table, warnings, err := FromLines("page_0.png", censusLines).Table()
	if err != nil {
		t.Fatal(err)
	}
	if len(warnings) != 0 {
		t.Errorf("Expected no warnings, got %v", warnings)
	}
	if table.RowCount() != 2 {
		t.Fatalf("Expected 2 rows, got %d", table.RowCount())
	}

	row := table.Rows[0]
	if row.Region != "DISTRICT A" || row.Section != "OVERALL" || row.Category != "ALL" {
		t.Errorf("unexpected first row: %+v", row)
	}
	if v, _ := row.Value("TOTAL"); v.Int != 1000 {
		t.Errorf("Expected TOTAL 1000, got %v", v)
	}
	if row.Source != "page_0.png" {
		t.Errorf("Expected provenance, got %q", row.Source)
	}
}

func TestChainImmutability(t *testing.T) {
	base := FromLines("p0", censusLines)
	withPages := base.Pages(1, 2)
	withProfile := base.ProfileName("election")

	if len(base.options.pages) != 0 {
		t.Error("Expected base to be unchanged by Pages()")
	}
	if base.options.prof != nil {
		t.Error("Expected base to be unchanged by ProfileName()")
	}
	if len(withPages.options.pages) != 2 {
		t.Error("Expected derived extractor to carry pages")
	}
	if withProfile.options.prof == nil {
		t.Error("Expected derived extractor to carry profile")
	}
}

func TestProfileNameUnknownFailsFast(t *testing.T) {
	_, _, err := FromLines("p0", censusLines).ProfileName("nope").Table()
	if err == nil {
		t.Error("Expected error for unknown profile")
	}
}

func TestElectionProfile(t *testing.T) {
	lines := []string{
		"CONSTITUENCY NA-120",
		"PS-1 1,250 1,100 1,050 50",
	}
	table, _, err := FromLines("na120_p1", lines).Profile(profile.Election()).Table()
	if err != nil {
		t.Fatal(err)
	}
	if table.RowCount() != 1 {
		t.Fatalf("Expected 1 row, got %d", table.RowCount())
	}
	if table.CategoryColumn != "POLLING_STATION" {
		t.Errorf("Expected POLLING_STATION category column, got %q", table.CategoryColumn)
	}
}

func TestCaseInsensitiveSections(t *testing.T) {
	lines := []string{
		"DISTRICT A",
		"Overall",
		"MALE 100 90 5 3 1 1 0",
	}

	table, _, err := FromLines("p0", lines).Table()
	if err != nil {
		t.Fatal(err)
	}
	if table.RowCount() != 0 {
		t.Errorf("Expected 0 rows with exact section matching, got %d", table.RowCount())
	}

	table, _, err = FromLines("p0", lines).CaseInsensitiveSections().Table()
	if err != nil {
		t.Fatal(err)
	}
	if table.RowCount() != 1 {
		t.Fatalf("Expected 1 row, got %d", table.RowCount())
	}
	if table.Rows[0].Section != "OVERALL" {
		t.Errorf("Expected canonical OVERALL, got %q", table.Rows[0].Section)
	}
}

func TestDedupModes(t *testing.T) {
	pages := []model.Page{
		{Source: "p0", Lines: censusLines},
		{Source: "p1", Lines: censusLines},
	}

	table := MustTable(FromPages(pages).Table())
	if table.RowCount() != 2 {
		t.Errorf("Expected duplicates collapsed, got %d rows", table.RowCount())
	}

	table = MustTable(FromPages(pages).DedupIncludeProvenance().Table())
	if table.RowCount() != 4 {
		t.Errorf("Expected duplicates kept per page, got %d rows", table.RowCount())
	}
}

func TestNoSortKeepsEncounterOrder(t *testing.T) {
	lines := []string{
		"DISTRICT B",
		"OVERALL",
		"MALE 100 90 5 3 1 1 0",
		"DISTRICT A",
		"OVERALL",
		"MALE 200 180 10 6 2 1 1",
	}

	table := MustTable(FromLines("p0", lines).NoSort().Table())
	if table.RowCount() != 2 {
		t.Fatalf("Expected 2 rows, got %d", table.RowCount())
	}
	if table.Rows[0].Region != "DISTRICT B" {
		t.Errorf("Expected encounter order, got %q first", table.Rows[0].Region)
	}

	sorted := MustTable(FromLines("p0", lines).Table())
	if sorted.Rows[0].Region != "DISTRICT A" {
		t.Errorf("Expected sorted order, got %q first", sorted.Rows[0].Region)
	}
}

func TestDropPageContext(t *testing.T) {
	pages := []model.Page{
		{Source: "p0", Lines: []string{"DISTRICT A", "OVERALL"}},
		{Source: "p1", Lines: []string{"MALE 100 90 5 3 1 1 0"}},
	}

	table := MustTable(FromPages(pages).Table())
	if table.RowCount() != 1 {
		t.Errorf("Expected context carried across pages, got %d rows", table.RowCount())
	}

	table = MustTable(FromPages(pages).DropPageContext().Table())
	if table.RowCount() != 0 {
		t.Errorf("Expected context reset per page, got %d rows", table.RowCount())
	}
}

func TestLinesTerminal(t *testing.T) {
	pages, warnings, err := FromLines("p0", censusLines).Lines()
	if err != nil {
		t.Fatal(err)
	}
	if len(warnings) != 0 {
		t.Errorf("Expected no warnings, got %v", warnings)
	}
	if len(pages) != 1 || len(pages[0].Lines) != len(censusLines) {
		t.Errorf("unexpected pages: %v", pages)
	}
}

func TestTableNoInput(t *testing.T) {
	if _, _, err := (&Extractor{options: defaultOptions()}).Table(); err == nil {
		t.Error("Expected error for missing input")
	}
}

func TestOpenMissingFile(t *testing.T) {
	_, _, err := Open("testdata/does_not_exist.pdf").Table()
	if err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestFormatWarnings(t *testing.T) {
	warnings := []Warning{
		{Page: 3, Message: "recognition failed"},
		{Message: "no text layer found"},
	}
	got := FormatWarnings(warnings)
	if !strings.Contains(got, "page 3: recognition failed") || !strings.Contains(got, "; no text layer found") {
		t.Errorf("unexpected format: %q", got)
	}
	if FormatWarnings(nil) != "" {
		t.Error("Expected empty string for no warnings")
	}
}

func TestMustTablePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic")
		}
	}()
	MustTable(FromLines("p0", nil).ProfileName("nope").Table())
}
