package model

import "strconv"

// MissingMarker is the textual form of an explicitly absent measurement.
// Source tables print "-" where a count was not recorded; that is distinct
// from zero and from a token that could not be read.
const MissingMarker = "-"

// Value is a single numeric cell in a structured row: either a
// non-negative integer or the explicit missing marker.
type Value struct {
	Int     int64
	Missing bool
}

// IntValue returns a Value holding n.
func IntValue(n int64) Value {
	return Value{Int: n}
}

// MissingValue returns the missing-value marker.
func MissingValue() Value {
	return Value{Missing: true}
}

// String renders the value the way the source tables print it: decimal
// digits, or "-" for a missing measurement.
func (v Value) String() string {
	if v.Missing {
		return MissingMarker
	}
	return strconv.FormatInt(v.Int, 10)
}

// Raw returns the value in the form used by Records(): an int64 for a
// recovered number, or the missing marker string.
func (v Value) Raw() any {
	if v.Missing {
		return MissingMarker
	}
	return v.Int
}
