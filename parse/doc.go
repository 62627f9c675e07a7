// Package parse reconstructs relational tables from raw OCR line output.
//
// Scanned statistics-bureau tables come out of OCR as noisy, inconsistently
// spaced text lines with digit/letter confusions. This package applies a
// small set of domain-specific rules to turn those lines back into rows
// with a region/section/category hierarchy and numeric fields:
//
//   - [Classifier] tags each line as a region header, section header,
//     data row, or noise, threading an explicit [Context] value through
//     the line sequence.
//   - [CleanToken] corrects common OCR digit confusions and validates
//     numeric tokens, keeping the "-" missing marker distinct from zero.
//   - [DetectGrouping] and [MergeGroups] handle locale-specific thousands
//     grouping: English comma-grouped numbers pass through untouched,
//     French space-grouped runs are merged into single tokens.
//   - [Assembler] matches the cleaned fields against the profile's column
//     schemas and builds structured rows.
//   - [Accumulator] collects rows across the input set, de-duplicates,
//     and orders the final table.
//
// All failure handling is local and silent: unrecognized lines, invalid
// tokens, and under-filled rows are skipped, never errors. An empty table
// is a valid outcome.
//
// Most callers use [Parser], which wires the pieces together over a
// sequence of pages:
//
//	p, err := parse.NewParser(profile.Census(), parse.DefaultConfig())
//	if err != nil {
//	    // handle error
//	}
//	table := p.ParseAll(pages)
package parse
