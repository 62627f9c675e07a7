package parse

import (
	"regexp"
	"strings"

	"golang.org/x/text/language"

	"github.com/censuspdf/censustab/profile"
)

// Tables published in English group thousands with commas inside a single
// token ("1,436,082"). French-published tables group with spaces, which
// OCR splits into separate short tokens ("1 132 655" arrives as "1",
// "132", "655").
var commaGrouped = regexp.MustCompile(`^[0-9]{1,3}(,[0-9]{3})+$`)

// DetectGrouping inspects the raw token sequence of a line, before any
// cleaning, and reports the thousands-grouping locale: language.English
// for comma grouping, language.French for space grouping. A single valid
// comma-grouped token decides the whole line.
func DetectGrouping(tokens []string) language.Tag {
	for _, tok := range tokens {
		if commaGrouped.MatchString(tok) {
			return language.English
		}
	}
	return language.French
}

// MergeGroups merges space-grouped number runs into single digit tokens.
// On a comma-grouped line it returns the tokens unchanged. Otherwise a
// run starts at a token of 1-3 digits and extends over each following
// token of exactly 3 digits; the run ends at the first token that is not
// exactly 3 digits or is not numeric.
//
// A 3-digit token after a 1-3 digit token is always treated as a
// continuation, even when it could have been a standalone small number.
// The bias is deliberate and is a known source of misparses for
// legitimately separate small adjacent numbers.
func MergeGroups(tokens []string) []string {
	if DetectGrouping(tokens) == language.English {
		return tokens
	}

	out := make([]string, 0, len(tokens))
	for i := 0; i < len(tokens); {
		tok := tokens[i]
		if !isDigits(tok) || len(tok) > 3 {
			out = append(out, tok)
			i++
			continue
		}

		var run strings.Builder
		run.WriteString(tok)
		j := i + 1
		for j < len(tokens) && isDigits(tokens[j]) && len(tokens[j]) == 3 {
			run.WriteString(tokens[j])
			j++
		}
		out = append(out, run.String())
		i = j
	}
	return out
}

// PageGrouping decides the grouping locale for a whole page: English as
// soon as any line carries a valid comma-grouped token, French otherwise.
// English-published pages mix comma-grouped and small plain numbers on
// the same page, so deciding per line would merge runs of legitimately
// separate values there.
func PageGrouping(lines []string) language.Tag {
	for _, line := range lines {
		if DetectGrouping(strings.Fields(line)) == language.English {
			return language.English
		}
	}
	return language.French
}

// GroupingFor resolves the grouping locale for a page under a profile:
// the profile's forced grouping when set, else PageGrouping.
func GroupingFor(p *profile.Profile, lines []string) language.Tag {
	switch p.Grouping {
	case profile.GroupingComma:
		return language.English
	case profile.GroupingSpace:
		return language.French
	}
	return PageGrouping(lines)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
