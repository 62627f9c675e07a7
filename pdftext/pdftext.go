// Package pdftext extracts text-layer lines from PDFs that carry one.
//
// Some census volumes are distributed as born-digital PDFs rather than
// scans. For those the text layer is both faster and more accurate than
// OCR, so it is tried first and the render+OCR path is the fallback.
package pdftext

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/censuspdf/censustab/model"
)

// ExtractPages reads the text layer of the selected 1-based pages (nil
// means all) and returns one Page per PDF page, each holding the page's
// lines in reading order. Pages with no text layer come back with zero
// lines; the caller decides whether to fall through to OCR.
func ExtractPages(path string, pages []int) ([]model.Page, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	selected := make(map[int]bool, len(pages))
	for _, p := range pages {
		selected[p] = true
	}

	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	var out []model.Page
	for i := 1; i <= r.NumPage(); i++ {
		if len(selected) > 0 && !selected[i] {
			continue
		}
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		out = append(out, model.Page{
			Source: fmt.Sprintf("%s_page_%d", base, i),
			Lines:  pageLines(p),
		})
	}
	return out, nil
}

// HasText reports whether any selected page yields text-layer lines.
func HasText(path string, pages []int) (bool, error) {
	extracted, err := ExtractPages(path, pages)
	if err != nil {
		return false, err
	}
	for _, p := range extracted {
		if len(p.Lines) > 0 {
			return true, nil
		}
	}
	return false, nil
}

func pageLines(p pdf.Page) []string {
	rows, err := p.GetTextByRow()
	if err != nil {
		return nil
	}

	// PDF Y grows bottom to top; higher positions are higher on the
	// page, so descending order gives reading order.
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Position > rows[j].Position
	})

	var lines []string
	for _, row := range rows {
		if row == nil || len(row.Content) == 0 {
			continue
		}
		line := strings.TrimSpace(joinRow(row.Content))
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// joinRow reassembles a row's text fragments into one line. Text often
// arrives a character or short run at a time, so a space is inserted
// only where the horizontal gap between fragments indicates a word
// boundary.
func joinRow(texts []pdf.Text) string {
	sorted := append([]pdf.Text(nil), texts...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].X < sorted[j].X
	})

	var sb strings.Builder
	for i, t := range sorted {
		if i > 0 {
			prev := sorted[i-1]
			if t.X-(prev.X+prev.W) > wordGap(prev) {
				sb.WriteString(" ")
			}
		}
		sb.WriteString(t.S)
	}
	return sb.String()
}

func wordGap(t pdf.Text) float64 {
	if t.FontSize > 0 {
		return t.FontSize * 0.25
	}
	return 1.0
}
