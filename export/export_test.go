package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/censuspdf/censustab/model"
)

func testTable() *model.Table {
	return &model.Table{
		CategoryColumn: "SEX",
		Rows: []model.Row{
			{
				Region: "DISTRICT A", Section: "OVERALL", Category: "ALL",
				Source:  "p0.png",
				Columns: []string{"TOTAL", "MUSLIM"},
				Cells: map[string]model.Value{
					"TOTAL":  model.IntValue(1000),
					"MUSLIM": model.IntValue(900),
				},
			},
			{
				Region: "DISTRICT A", Section: "RURAL", Category: "MALE",
				Source:  "p1.png",
				Columns: []string{"TOTAL", "MUSLIM"},
				Cells: map[string]model.Value{
					"TOTAL":  model.IntValue(500),
					"MUSLIM": model.MissingValue(),
				},
			},
		},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(testTable(), &buf); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("Expected header and 2 rows, got %d lines", len(lines))
	}
	if lines[0] != "REGION,SECTION,SEX,TOTAL,MUSLIM,SOURCE_IMAGE" {
		t.Errorf("unexpected header: %q", lines[0])
	}
	if lines[2] != "DISTRICT A,RURAL,MALE,500,-,p1.png" {
		t.Errorf("unexpected row: %q", lines[2])
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(testTable(), &buf); err != nil {
		t.Fatal(err)
	}

	var records []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &records); err != nil {
		t.Fatal(err)
	}
	if len(records) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(records))
	}
	if records[0]["TOTAL"] != float64(1000) {
		t.Errorf("Expected numeric TOTAL, got %v", records[0]["TOTAL"])
	}
	if records[1]["MUSLIM"] != model.MissingMarker {
		t.Errorf("Expected missing marker, got %v", records[1]["MUSLIM"])
	}
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteXLSX(testTable(), &buf); err != nil {
		t.Fatal(err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	header, err := f.GetCellValue(SheetName, "A1")
	if err != nil {
		t.Fatal(err)
	}
	if header != "REGION" {
		t.Errorf("Expected REGION header, got %q", header)
	}

	total, _ := f.GetCellValue(SheetName, "D2")
	if total != "1000" {
		t.Errorf("Expected TOTAL 1000, got %q", total)
	}
	missing, _ := f.GetCellValue(SheetName, "E3")
	if missing != model.MissingMarker {
		t.Errorf("Expected missing marker, got %q", missing)
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize(testTable())

	if s.Rows != 2 || s.Regions != 1 || s.Sources != 2 {
		t.Errorf("unexpected counts: %+v", s)
	}
	if s.BySection["OVERALL"] != 1 || s.BySection["RURAL"] != 1 {
		t.Errorf("unexpected sections: %v", s.BySection)
	}
	if s.MissingCells != 1 {
		t.Errorf("Expected 1 missing cell, got %d", s.MissingCells)
	}

	report := s.String()
	if !strings.Contains(report, "rows: 2") || !strings.Contains(report, "MALE=1") {
		t.Errorf("unexpected report: %q", report)
	}
}

func TestWriteFiles(t *testing.T) {
	dir := t.TempDir()
	table := testTable()

	if err := WriteCSVFile(table, dir+"/out.csv"); err != nil {
		t.Errorf("csv: %v", err)
	}
	if err := WriteJSONFile(table, dir+"/out.json"); err != nil {
		t.Errorf("json: %v", err)
	}
	if err := WriteXLSXFile(table, dir+"/out.xlsx"); err != nil {
		t.Errorf("xlsx: %v", err)
	}
}
