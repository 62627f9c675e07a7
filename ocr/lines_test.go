package ocr

import (
	"reflect"
	"testing"
)

func TestSplitLines(t *testing.T) {
	text := "DISTRICT A\n\n  OVERALL  \nMALE 100 90 5 3 1 1 0\n\n"
	want := []string{"DISTRICT A", "OVERALL", "MALE 100 90 5 3 1 1 0"}
	if got := SplitLines(text); !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestSplitLinesEmpty(t *testing.T) {
	if got := SplitLines("  \n\n  "); got != nil {
		t.Errorf("Expected nil for blank text, got %v", got)
	}
}
