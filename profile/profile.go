package profile

import (
	"fmt"
	"regexp"
	"strings"
)

// Category is one row-level category rule: a literal token matched at the
// start of a line, and the value emitted for rows it matches. Several
// rules may emit the same value ("ALL SEXES" and "ALL" both emit "ALL").
// Sort rank is the order in which distinct values first appear.
type Category struct {
	Name  string `yaml:"name"`
	Match string `yaml:"match"`
}

// Schema is an ordered list of numeric column names associated with an
// expected token count. Min is the smallest number of valid numeric
// tokens a line must yield for the schema to apply; columns past the
// available count are filled with the missing marker.
type Schema struct {
	Name    string   `yaml:"name"`
	Columns []string `yaml:"columns"`
	Min     int      `yaml:"min"`
}

// Profile is the full parsing configuration for one data-format profile.
type Profile struct {
	Name string `yaml:"name"`

	// RegionKeywords mark region header lines: any line containing one
	// of these is a region header. Empty means the profile has no region
	// hierarchy and rows do not require one.
	RegionKeywords []string `yaml:"region_keywords"`

	// Sections is the exact-match section vocabulary in rank order
	// (e.g. OVERALL, RURAL, URBAN). Empty means the profile has no
	// section hierarchy.
	Sections []string `yaml:"sections"`

	// IgnoreSectionCase switches section matching to case-insensitive.
	// OCR output is typically uppercase, so the default is exact.
	IgnoreSectionCase bool `yaml:"ignore_section_case"`

	// CategoryColumn is the output header for the category value, for
	// example "SEX" or "POLLING_STATION".
	CategoryColumn string `yaml:"category_column"`

	// Categories are the literal line-start rules. CategoryPattern is an
	// optional regular expression tried after them, anchored at the line
	// start; its match becomes the category value.
	Categories      []Category `yaml:"categories"`
	CategoryPattern string     `yaml:"category_pattern"`

	Schemas []Schema `yaml:"schemas"`

	// Grouping forces the thousands-grouping locale for all pages:
	// GroupingComma disables the space-grouping merge, GroupingSpace
	// always merges, empty auto-detects per page.
	Grouping string `yaml:"grouping"`

	// AutoSchema generates COL_1..COL_n column names when no configured
	// schema fits, instead of dropping the row.
	AutoSchema bool `yaml:"auto_schema"`

	// Filters lists lines discarded verbatim before classification.
	Filters []string `yaml:"filters"`

	// TrimToKeyword drops everything before the first line containing a
	// region keyword, skipping page headers and table titles.
	TrimToKeyword bool `yaml:"trim_to_keyword"`
}

// Grouping override values.
const (
	GroupingComma = "comma"
	GroupingSpace = "space"
)

// Validate checks the profile for internal consistency.
func (p *Profile) Validate() error {
	switch p.Grouping {
	case "", GroupingComma, GroupingSpace:
	default:
		return fmt.Errorf("profile %q: grouping %q (want %q or %q)",
			p.Name, p.Grouping, GroupingComma, GroupingSpace)
	}
	if len(p.Categories) == 0 && p.CategoryPattern == "" {
		return fmt.Errorf("profile %q: no categories or category pattern", p.Name)
	}
	if p.CategoryPattern != "" {
		if _, err := regexp.Compile(p.CategoryPattern); err != nil {
			return fmt.Errorf("profile %q: category pattern: %w", p.Name, err)
		}
	}
	if len(p.Schemas) == 0 && !p.AutoSchema {
		return fmt.Errorf("profile %q: no schemas and auto_schema disabled", p.Name)
	}
	counts := make(map[int]string)
	for _, s := range p.Schemas {
		if len(s.Columns) == 0 {
			return fmt.Errorf("profile %q: schema %q has no columns", p.Name, s.Name)
		}
		if s.Min < 1 || s.Min > len(s.Columns) {
			return fmt.Errorf("profile %q: schema %q: min %d out of range 1..%d",
				p.Name, s.Name, s.Min, len(s.Columns))
		}
		if prev, dup := counts[len(s.Columns)]; dup {
			return fmt.Errorf("profile %q: schemas %q and %q both have %d columns",
				p.Name, prev, s.Name, len(s.Columns))
		}
		counts[len(s.Columns)] = s.Name
	}
	return nil
}

// MinFields returns the smallest Min across the configured schemas, the
// threshold below which a candidate row is dropped. Profiles relying on
// AutoSchema only have a threshold of 1.
func (p *Profile) MinFields() int {
	min := 0
	for _, s := range p.Schemas {
		if min == 0 || s.Min < min {
			min = s.Min
		}
	}
	if min == 0 {
		min = 1
	}
	return min
}

// SelectSchema picks the schema for a line that yielded count valid
// numeric tokens: an exact column-count match if one exists, otherwise
// the largest schema whose Min is within the available count. AutoSchema
// profiles fall back to generated COL_1..COL_n names. The second return
// is false when the count is below every schema's threshold.
func (p *Profile) SelectSchema(count int) (Schema, bool) {
	for _, s := range p.Schemas {
		if len(s.Columns) == count {
			return s, true
		}
	}

	var best Schema
	found := false
	for _, s := range p.Schemas {
		if s.Min <= count && (!found || len(s.Columns) > len(best.Columns)) {
			best = s
			found = true
		}
	}
	if found {
		return best, true
	}

	if p.AutoSchema && count >= 1 {
		cols := make([]string, count)
		for i := range cols {
			cols[i] = fmt.Sprintf("COL_%d", i+1)
		}
		return Schema{Name: "auto", Columns: cols, Min: count}, true
	}
	return Schema{}, false
}

// MatchSection reports whether the trimmed line is a section header and
// returns the canonical vocabulary spelling if so.
func (p *Profile) MatchSection(line string) (string, bool) {
	for _, s := range p.Sections {
		if line == s {
			return s, true
		}
		if p.IgnoreSectionCase && strings.EqualFold(line, s) {
			return s, true
		}
	}
	return "", false
}

// SectionRank returns the sort rank of a section value. Values outside
// the vocabulary rank after all recognized ones.
func (p *Profile) SectionRank(section string) int {
	for i, s := range p.Sections {
		if s == section {
			return i
		}
	}
	return len(p.Sections)
}

// CategoryRank returns the sort rank of a category value: the order in
// which distinct category names are configured. Unrecognized values rank
// last.
func (p *Profile) CategoryRank(name string) int {
	rank := 0
	seen := make(map[string]bool)
	for _, c := range p.Categories {
		if seen[c.Name] {
			continue
		}
		if c.Name == name {
			return rank
		}
		seen[c.Name] = true
		rank++
	}
	return rank
}

// RequireRegion reports whether rows need an established region before
// they may be emitted.
func (p *Profile) RequireRegion() bool {
	return len(p.RegionKeywords) > 0
}

// RequireSection reports whether rows need an established section.
func (p *Profile) RequireSection() bool {
	return len(p.Sections) > 0
}

// Clone returns a deep copy so callers can adjust a profile without
// affecting other users of it.
func (p *Profile) Clone() *Profile {
	return p.clone()
}

func (p *Profile) clone() *Profile {
	cp := *p
	cp.RegionKeywords = append([]string(nil), p.RegionKeywords...)
	cp.Sections = append([]string(nil), p.Sections...)
	cp.Categories = append([]Category(nil), p.Categories...)
	cp.Filters = append([]string(nil), p.Filters...)
	cp.Schemas = make([]Schema, len(p.Schemas))
	for i, s := range p.Schemas {
		s.Columns = append([]string(nil), s.Columns...)
		cp.Schemas[i] = s
	}
	return &cp
}
