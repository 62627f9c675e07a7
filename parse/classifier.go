package parse

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/censuspdf/censustab/profile"
)

// Context is the parse state threaded through line classification for one
// line sequence: the most recent region and section headers. The zero
// value means neither has been established yet. Context is a value type;
// classification returns the context that applies after a line rather
// than mutating shared state.
type Context struct {
	Region  string
	Section string
}

// Kind tags the classification of one line.
type Kind int

const (
	// Skip marks noise: empty lines and lines matching no rule.
	Skip Kind = iota
	// RegionHeader marks a line containing a configured region keyword.
	RegionHeader
	// SectionHeader marks a line exactly matching the section vocabulary.
	SectionHeader
	// DataRow marks a line starting with a category token.
	DataRow
)

// Classification is the result of classifying one line.
type Classification struct {
	Kind Kind

	// Name is the region name, canonical section value, or category
	// value, depending on Kind.
	Name string

	// Remainder is the data-row text after the category token.
	Remainder string
}

// Classifier tags trimmed text lines according to a profile's rules.
type Classifier struct {
	prof       *profile.Profile
	categories []profile.Category
	pattern    *regexp.Regexp
}

// NewClassifier builds a classifier for the profile. Category rules are
// ordered by descending match length so that longer tokens win over
// shorter overlapping prefixes ("ALL SEXES" before "ALL").
func NewClassifier(p *profile.Profile) (*Classifier, error) {
	c := &Classifier{prof: p}

	c.categories = append(c.categories, p.Categories...)
	sort.SliceStable(c.categories, func(i, j int) bool {
		return len(c.categories[i].Match) > len(c.categories[j].Match)
	})

	if p.CategoryPattern != "" {
		pat := p.CategoryPattern
		if !strings.HasPrefix(pat, "^") {
			pat = "^" + pat
		}
		re, err := regexp.Compile(pat)
		if err != nil {
			return nil, fmt.Errorf("category pattern: %w", err)
		}
		c.pattern = re
	}
	return c, nil
}

// Classify inspects one line against the current context. It returns the
// classification and the context in effect after the line: region and
// section headers establish new context, data rows only read it.
func (c *Classifier) Classify(line string, ctx Context) (Classification, Context) {
	line = strings.TrimSpace(line)
	if line == "" {
		return Classification{Kind: Skip}, ctx
	}

	upper := strings.ToUpper(line)
	for _, kw := range c.prof.RegionKeywords {
		if strings.Contains(upper, kw) {
			ctx.Region = line
			return Classification{Kind: RegionHeader, Name: line}, ctx
		}
	}

	if section, ok := c.prof.MatchSection(line); ok {
		ctx.Section = section
		return Classification{Kind: SectionHeader, Name: section}, ctx
	}

	for _, cat := range c.categories {
		if strings.HasPrefix(line, cat.Match) {
			rem := strings.TrimSpace(line[len(cat.Match):])
			return Classification{Kind: DataRow, Name: cat.Name, Remainder: rem}, ctx
		}
	}

	if c.pattern != nil {
		if m := c.pattern.FindString(line); m != "" {
			rem := strings.TrimSpace(line[len(m):])
			return Classification{Kind: DataRow, Name: strings.TrimSpace(m), Remainder: rem}, ctx
		}
	}

	return Classification{Kind: Skip}, ctx
}
