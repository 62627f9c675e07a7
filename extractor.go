package censustab

import (
	"fmt"
	"sort"

	"github.com/censuspdf/censustab/model"
	"github.com/censuspdf/censustab/ocr"
	"github.com/censuspdf/censustab/parse"
	"github.com/censuspdf/censustab/pdftext"
	"github.com/censuspdf/censustab/profile"
	"github.com/censuspdf/censustab/render"
)

// Extractor provides a fluent interface for turning scanned table PDFs
// into structured tables. Each configuration method returns a new
// Extractor instance, making it safe for concurrent use and allowing
// method chaining.
type Extractor struct {
	// Source: a PDF on disk, or pre-extracted page lines.
	filename string
	pages    []model.Page

	// Configuration
	options ExtractOptions

	// Accumulated error (fail-fast)
	err error

	// Warnings accumulated during processing
	warnings []Warning
}

// clone creates a shallow copy of the Extractor with a deep copy of
// options. This ensures immutability: each chain method returns a new
// instance.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		filename: e.filename,
		pages:    append([]model.Page(nil), e.pages...),
		options:  e.options.clone(),
		err:      e.err,
		warnings: append([]Warning(nil), e.warnings...),
	}
}

func (e *Extractor) warnf(page int, format string, args ...any) {
	e.warnings = append(e.warnings, Warning{Page: page, Message: fmt.Sprintf(format, args...)})
}

// ============================================================================
// Configuration Methods (return new Extractor instance)
// ============================================================================

// Profile selects the parsing profile. The default is the built-in
// census profile.
//
// Example:
//
//	table, _, err := censustab.Open("na120.pdf").Profile(profile.Election()).Table()
func (e *Extractor) Profile(p *profile.Profile) *Extractor {
	newExt := e.clone()
	newExt.options.prof = p
	return newExt
}

// ProfileName selects a built-in profile by name: "census", "election",
// or "generic".
func (e *Extractor) ProfileName(name string) *Extractor {
	newExt := e.clone()
	p, err := profile.Builtin(name)
	if err != nil && newExt.err == nil {
		newExt.err = err
	}
	newExt.options.prof = p
	return newExt
}

// ProfileFile loads the parsing profile from a YAML file.
//
// Example:
//
//	table, _, err := censustab.Open("d54.pdf").ProfileFile("sindh.yaml").Table()
func (e *Extractor) ProfileFile(path string) *Extractor {
	newExt := e.clone()
	p, err := profile.Load(path)
	if err != nil && newExt.err == nil {
		newExt.err = err
	}
	newExt.options.prof = p
	return newExt
}

// Pages specifies which pages to process (1-indexed). Multiple calls are
// cumulative.
//
// Example:
//
//	table, _, err := censustab.Open("d54.pdf").Pages(3, 4, 5).Table()
func (e *Extractor) Pages(pages ...int) *Extractor {
	newExt := e.clone()
	newExt.options.pages = append(newExt.options.pages, pages...)
	return newExt
}

// PageRange specifies a range of pages to process (1-indexed,
// inclusive).
func (e *Extractor) PageRange(start, end int) *Extractor {
	newExt := e.clone()
	for i := start; i <= end; i++ {
		newExt.options.pages = append(newExt.options.pages, i)
	}
	return newExt
}

// DPI sets the target recognition resolution for the OCR path. Page
// scans are upscaled relative to the standard 300 DPI scan resolution.
func (e *Extractor) DPI(dpi int) *Extractor {
	newExt := e.clone()
	newExt.options.dpi = dpi
	return newExt
}

// Language sets the OCR language. Multiple languages are "+" separated
// ("eng+urd"). The default is "eng".
func (e *Extractor) Language(lang string) *Extractor {
	newExt := e.clone()
	newExt.options.language = lang
	return newExt
}

// CaseInsensitiveSections matches section headers regardless of case.
// Useful for volumes where OCR reads "Overall" rather than "OVERALL".
func (e *Extractor) CaseInsensitiveSections() *Extractor {
	newExt := e.clone()
	newExt.options.caseInsensitiveSections = true
	return newExt
}

// DropPageContext resets region/section context at each page boundary
// instead of carrying it forward. Use for volumes where every page
// restates its full heading.
func (e *Extractor) DropPageContext() *Extractor {
	newExt := e.clone()
	newExt.options.dropPageContext = true
	return newExt
}

// DedupIncludeProvenance includes the source page in duplicate equality:
// the identical row seen on two pages is kept twice. The default treats
// such rows as one.
func (e *Extractor) DedupIncludeProvenance() *Extractor {
	newExt := e.clone()
	newExt.options.dedupIncludeSource = true
	return newExt
}

// NoSort keeps rows in encounter order instead of sorting by region,
// section, and category.
func (e *Extractor) NoSort() *Extractor {
	newExt := e.clone()
	newExt.options.noSort = true
	return newExt
}

// TextLayerOnly processes only the PDF text layer and never falls back
// to OCR. Pages without a text layer contribute nothing.
func (e *Extractor) TextLayerOnly() *Extractor {
	newExt := e.clone()
	newExt.options.textLayerOnly = true
	return newExt
}

// ForceOCR skips the text layer and always renders pages for OCR, for
// PDFs whose embedded text layer is itself the product of a bad OCR
// pass.
func (e *Extractor) ForceOCR() *Extractor {
	newExt := e.clone()
	newExt.options.forceOCR = true
	return newExt
}

// ============================================================================
// Terminal Operations (execute extraction and return results)
// ============================================================================

// Table runs the full pipeline and returns the structured table.
//
// Returns the table, any warnings encountered during processing, and an
// error if extraction failed outright. Warnings indicate non-fatal
// issues where extraction succeeded but results may be incomplete.
//
// Example:
//
//	table, warnings, err := censustab.Open("district_54.pdf").Table()
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", censustab.FormatWarnings(warnings))
//	}
func (e *Extractor) Table() (*model.Table, []Warning, error) {
	if e.err != nil {
		return nil, nil, e.err
	}

	pages, warnings, err := e.Lines()
	if err != nil {
		return nil, warnings, err
	}

	prof := e.resolvedProfile()
	parser, err := parse.NewParser(prof, parse.Config{
		CarryContext:       !e.options.dropPageContext,
		DedupIncludeSource: e.options.dedupIncludeSource,
		Sort:               !e.options.noSort,
	})
	if err != nil {
		return nil, warnings, err
	}

	return parser.ParseAll(pages), warnings, nil
}

// Lines runs extraction up to, but not including, parsing: one Page of
// raw text lines per processed PDF page. Useful for debugging a profile
// against a new volume.
func (e *Extractor) Lines() ([]model.Page, []Warning, error) {
	if e.err != nil {
		return nil, nil, e.err
	}

	ex := e.clone()
	pages, err := ex.collectPages()
	if err != nil {
		return nil, ex.warnings, err
	}
	return pages, ex.warnings, nil
}

func (e *Extractor) collectPages() ([]model.Page, error) {
	if e.pages != nil {
		return e.pages, nil
	}
	if e.filename == "" {
		return nil, fmt.Errorf("no input specified")
	}

	selected := e.selectedPages()

	var textPages []model.Page
	if !e.options.forceOCR {
		var err error
		textPages, err = pdftext.ExtractPages(e.filename, selected)
		if err != nil {
			return nil, err
		}
		if nonEmpty(textPages) {
			return textPages, nil
		}
		if e.options.textLayerOnly {
			e.warnf(0, "no text layer found")
			return textPages, nil
		}
	}

	return e.ocrPages(selected)
}

func (e *Extractor) ocrPages(selected []int) ([]model.Page, error) {
	images, err := render.ExtractPages(e.filename, selected)
	if err != nil {
		return nil, err
	}
	if len(images) == 0 {
		e.warnf(0, "no page images found")
		return nil, nil
	}

	client, err := ocr.New()
	if err != nil {
		return nil, err
	}
	defer client.Close()

	if e.options.language != "" {
		if err := client.SetLanguage(e.options.language); err != nil {
			return nil, fmt.Errorf("set language: %w", err)
		}
	}

	scale := render.ScaleForDPI(e.options.dpi)

	var pages []model.Page
	for _, img := range images {
		prepared := render.Preprocess(img.Image, scale)
		data, err := render.EncodePNG(prepared)
		if err != nil {
			e.warnf(img.PageNr, "encode failed: %v", err)
			continue
		}

		lines, err := client.RecognizeLines(data)
		if err != nil {
			e.warnf(img.PageNr, "recognition failed: %v", err)
			continue
		}
		pages = append(pages, model.Page{Source: img.Name, Lines: lines})
	}
	return pages, nil
}

func (e *Extractor) resolvedProfile() *profile.Profile {
	prof := e.options.prof
	if prof == nil {
		prof = profile.Census()
	}
	if e.options.caseInsensitiveSections && !prof.IgnoreSectionCase {
		prof = prof.Clone()
		prof.IgnoreSectionCase = true
	}
	return prof
}

// selectedPages returns the deduplicated, sorted 1-based page selection,
// or nil for all pages.
func (e *Extractor) selectedPages() []int {
	if len(e.options.pages) == 0 {
		return nil
	}
	seen := make(map[int]bool, len(e.options.pages))
	var out []int
	for _, p := range e.options.pages {
		if p > 0 && !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	sort.Ints(out)
	return out
}

func nonEmpty(pages []model.Page) bool {
	for _, p := range pages {
		if len(p.Lines) > 0 {
			return true
		}
	}
	return false
}
