package parse

import (
	"strings"

	"golang.org/x/text/language"

	"github.com/censuspdf/censustab/model"
	"github.com/censuspdf/censustab/profile"
)

// Assembler combines the current context, a data-row classification, and
// the cleaned numeric fields into at most one structured row.
type Assembler struct {
	prof *profile.Profile
}

// NewAssembler returns an assembler for the profile.
func NewAssembler(p *profile.Profile) *Assembler {
	return &Assembler{prof: p}
}

// Assemble produces the structured row for a classified data line.
// grouping is the thousands-grouping locale in effect for the source
// page, as resolved by [GroupingFor]; under space grouping, token runs
// are merged before cleaning.
//
// The second return is false when the line must be dropped: the region
// or section context required by the profile has not been established,
// or fewer valid numeric fields remain than the smallest schema allows.
// Drops are silent; single garbled OCR lines are expected and must not
// abort the batch.
func (a *Assembler) Assemble(ctx Context, cls Classification, source string, grouping language.Tag) (model.Row, bool) {
	if cls.Kind != DataRow {
		return model.Row{}, false
	}
	if a.prof.RequireRegion() && ctx.Region == "" {
		return model.Row{}, false
	}
	if a.prof.RequireSection() && ctx.Section == "" {
		return model.Row{}, false
	}

	// The grouping merge runs on the as-split tokens, before cleaning.
	tokens := strings.Fields(cls.Remainder)
	if grouping != language.English {
		tokens = MergeGroups(tokens)
	}
	values := CleanTokens(tokens)
	if len(values) < a.prof.MinFields() {
		return model.Row{}, false
	}

	schema, ok := a.prof.SelectSchema(len(values))
	if !ok {
		return model.Row{}, false
	}

	cells := make(map[string]model.Value, len(schema.Columns))
	for i, col := range schema.Columns {
		if i < len(values) {
			cells[col] = values[i]
		} else {
			// Best-fit selection leaves trailing optional columns as
			// the missing marker, never zero.
			cells[col] = model.MissingValue()
		}
	}

	return model.Row{
		Region:   ctx.Region,
		Section:  ctx.Section,
		Category: cls.Name,
		Source:   source,
		Columns:  append([]string(nil), schema.Columns...),
		Cells:    cells,
	}, true
}
