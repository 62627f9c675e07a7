// Package profile supplies the data-driven parsing configuration: region
// keywords, section vocabulary, category tokens, column schemas, and line
// filters for a given data-format profile.
//
// Three profiles are built in, mirroring the statistics-bureau table
// layouts the extractor was written for:
//
//   - [Census] - district religion tables with a region/section/sex
//     hierarchy and 7, 8, or 9 numeric columns
//   - [Election] - polling-station result tables
//   - [Generic] - positional fallback with generated column names
//
// Profiles can also be loaded from YAML files with [Load], optionally
// overlaying one of the built-ins, so new table layouts are a data change
// rather than a code change.
package profile
