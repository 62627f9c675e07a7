package render

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	_ "image/jpeg"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	_ "golang.org/x/image/tiff"
)

// DefaultDPI is the resolution census volumes are typically scanned at.
const DefaultDPI = 300

// PageImage is one extracted page scan.
type PageImage struct {
	// PageNr is the 1-based page number within the source PDF.
	PageNr int

	// Name identifies the image for provenance, "<pdf base>_page_<n>".
	Name string

	Image image.Image
}

// ExtractPages pulls the embedded page scans out of a PDF. pages selects
// 1-based page numbers; nil means all pages. Pages without an embedded
// image are skipped: vector-only pages carry a text layer and belong to
// the text extraction path instead.
func ExtractPages(path string, pages []int) ([]PageImage, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()
	return extract(f, baseName(path), pages)
}

// ExtractReader is ExtractPages for an in-memory PDF. name is used for
// page provenance.
func ExtractReader(rs io.ReadSeeker, name string, pages []int) ([]PageImage, error) {
	return extract(rs, name, pages)
}

func extract(rs io.ReadSeeker, name string, pages []int) ([]PageImage, error) {
	selected := make([]string, 0, len(pages))
	for _, p := range pages {
		selected = append(selected, strconv.Itoa(p))
	}

	raw, err := api.ExtractImagesRaw(rs, selected, nil)
	if err != nil {
		return nil, fmt.Errorf("extract images: %w", err)
	}

	var out []PageImage
	for _, pageImages := range raw {
		// One map per selected page, keyed by object number. A scanned
		// page holds exactly one image; if several are present, take
		// the first in object order for determinism.
		objNrs := make([]int, 0, len(pageImages))
		for objNr := range pageImages {
			objNrs = append(objNrs, objNr)
		}
		sort.Ints(objNrs)

		for _, objNr := range objNrs {
			img := pageImages[objNr]
			decoded, _, err := image.Decode(img)
			if err != nil {
				return nil, fmt.Errorf("decode page %d image: %w", img.PageNr, err)
			}
			out = append(out, PageImage{
				PageNr: img.PageNr,
				Name:   fmt.Sprintf("%s_page_%d", name, img.PageNr),
				Image:  decoded,
			})
			break
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].PageNr < out[j].PageNr })
	return out, nil
}

// PageCount returns the number of pages in the PDF.
func PageCount(path string) (int, error) {
	n, err := api.PageCountFile(path)
	if err != nil {
		return 0, fmt.Errorf("page count: %w", err)
	}
	return n, nil
}

// EncodePNG encodes an image as PNG bytes, the format handed to the OCR
// engine.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

func baseName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
