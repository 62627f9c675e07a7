// Package export writes structured tables to the formats analysts
// consume: XLSX, CSV, and JSON records, plus a run summary.
package export
