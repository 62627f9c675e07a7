// Package model provides the intermediate representation for extracted
// tabular data.
//
// This package defines the user-facing data structures that the parsing
// pipeline produces and the export collaborators consume. All parsing
// operations ultimately produce these types, making them the primary API
// for working with extracted census and election tables.
//
// # Pages
//
// A [Page] is the contract with the OCR collaborator: one source image or
// PDF page reduced to an ordered sequence of text lines plus a source
// identifier. Pages are immutable inputs to the parser.
//
// # Rows and Values
//
// A [Row] is one structured output row: the region and section context it
// was emitted under, its category (for example a sex category), an ordered
// set of named numeric cells, and the provenance of the source page.
//
// Each numeric cell is a [Value]: either a non-negative integer or the
// explicit missing marker recovered from a "-" token in the source. Missing
// is distinct from zero and from a token that failed validation.
//
// # Tables
//
// The [Table] type is the final ordered collection of rows with:
//
//   - A uniform column view via Columns() and Records()
//   - Export methods: ToCSV() and ToMarkdown()
package model
