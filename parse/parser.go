package parse

import (
	"strings"

	"github.com/censuspdf/censustab/model"
	"github.com/censuspdf/censustab/profile"
)

// Config controls parsing behavior that is not part of the profile.
type Config struct {
	// CarryContext keeps region/section context across page boundaries.
	// Region headers may appear once per page group rather than on every
	// page, so the default is on.
	CarryContext bool

	// DedupIncludeSource includes provenance in duplicate equality: the
	// identical row seen on two pages stays twice.
	DedupIncludeSource bool

	// Sort orders the final table by region, section rank, and category
	// rank. Disable to keep encounter order for review.
	Sort bool
}

// DefaultConfig returns the default parsing configuration.
func DefaultConfig() Config {
	return Config{
		CarryContext: true,
		Sort:         true,
	}
}

// Parser folds the line classifier over page line sequences and feeds an
// accumulator. One Parser handles one batch of pages; it is purely
// synchronous and not safe for concurrent use.
type Parser struct {
	prof       *profile.Profile
	cfg        Config
	classifier *Classifier
	assembler  *Assembler
	acc        *Accumulator
	ctx        Context
}

// NewParser builds a parser for the profile.
func NewParser(p *profile.Profile, cfg Config) (*Parser, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	classifier, err := NewClassifier(p)
	if err != nil {
		return nil, err
	}
	return &Parser{
		prof:       p,
		cfg:        cfg,
		classifier: classifier,
		assembler:  NewAssembler(p),
		acc:        NewAccumulator(p, cfg.DedupIncludeSource, cfg.Sort),
	}, nil
}

// ParsePage processes one page's lines in order. Rows that classify and
// assemble successfully are collected; everything else is skipped.
func (ps *Parser) ParsePage(page model.Page) {
	if !ps.cfg.CarryContext {
		ps.ctx = Context{}
	}

	lines := FilterLines(page.Lines, ps.prof.Filters)
	if ps.prof.TrimToKeyword {
		lines = TrimToKeyword(lines, ps.prof.RegionKeywords)
	}
	grouping := GroupingFor(ps.prof, lines)

	for _, line := range lines {
		cls, next := ps.classifier.Classify(line, ps.ctx)
		ps.ctx = next
		if cls.Kind != DataRow {
			continue
		}
		if row, ok := ps.assembler.Assemble(ps.ctx, cls, page.Source, grouping); ok {
			ps.acc.Add(row)
		}
	}
}

// ParseRows processes simple positional table data, as produced by a PDF
// text layer with cell coordinates: each row's cells are joined into one
// line and handled like OCR output.
func (ps *Parser) ParseRows(source string, rows [][]string) {
	lines := make([]string, 0, len(rows))
	for _, cells := range rows {
		lines = append(lines, strings.TrimSpace(strings.Join(cells, " ")))
	}
	ps.ParsePage(model.Page{Source: source, Lines: lines})
}

// ParseAll processes pages in order and returns the finalized table.
func (ps *Parser) ParseAll(pages []model.Page) *model.Table {
	for _, page := range pages {
		ps.ParsePage(page)
	}
	return ps.Table()
}

// Table finalizes the collected rows: duplicates removed and, unless
// disabled, rows ordered by the profile's ranks. An empty table is a
// valid outcome.
func (ps *Parser) Table() *model.Table {
	return ps.acc.Finalize()
}

// Reset clears collected rows and context so the parser can run another
// batch.
func (ps *Parser) Reset() {
	ps.acc.Reset()
	ps.ctx = Context{}
}

// FilterLines trims each line and drops the ones classification should
// never see: empty lines, lines in the profile's filter list, and single
// alphabetic characters, which are almost always OCR noise.
func FilterLines(lines, filters []string) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if len(line) == 1 && isAlpha(line) {
			continue
		}
		filtered := false
		for _, f := range filters {
			if line == f {
				filtered = true
				break
			}
		}
		if !filtered {
			out = append(out, line)
		}
	}
	return out
}

// TrimToKeyword drops lines before the first one containing a region
// keyword, skipping page headers and table titles. If no line matches,
// the input is returned unchanged.
func TrimToKeyword(lines, keywords []string) []string {
	for i, line := range lines {
		upper := strings.ToUpper(line)
		for _, kw := range keywords {
			if strings.Contains(upper, kw) {
				return lines[i:]
			}
		}
	}
	return lines
}

func isAlpha(s string) bool {
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return len(s) > 0
}
