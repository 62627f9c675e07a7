// Package censustab provides a fluent API for extracting structured
// tables from scanned census and election result PDFs.
//
// Basic usage:
//
//	table, warnings, err := censustab.Open("district_54.pdf").Table()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", censustab.FormatWarnings(warnings))
//	}
//
// With options:
//
//	table, _, err := censustab.Open("na120.pdf").
//	    ProfileName("election").
//	    Pages(1, 2, 3).
//	    ForceOCR().
//	    Table()
//
// For advanced use cases, the lower-level parse, render, and ocr
// packages are also available.
package censustab

import "github.com/censuspdf/censustab/model"

// Open prepares an Extractor for a PDF file and returns it for fluent
// configuration. The file is not touched until a terminal operation
// like Table() runs.
//
// Example:
//
//	table, warnings, err := censustab.Open("district_54.pdf").Table()
func Open(filename string) *Extractor {
	return &Extractor{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromLines creates an Extractor over text lines that have already been
// recognized, one page of lines at a time. Use this when OCR happens
// elsewhere, or to replay saved recognition output. source labels the
// page for provenance.
//
// Example:
//
//	table, _, err := censustab.FromLines("page_0.png", lines).Table()
func FromLines(source string, lines []string) *Extractor {
	return FromPages([]model.Page{{Source: source, Lines: lines}})
}

// FromPages creates an Extractor over multiple pages of recognized
// lines.
func FromPages(pages []model.Page) *Extractor {
	return &Extractor{
		pages:   append([]model.Page(nil), pages...),
		options: defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustTable is a helper that wraps a terminal operation and panics if
// the error is non-nil. It discards warnings and returns just the
// value.
//
// Example:
//
//	table := censustab.MustTable(censustab.FromLines("p0", lines).Table())
func MustTable[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
