package parse

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/censuspdf/censustab/model"
)

// confusables maps the letter shapes Tesseract most often reads in place
// of digits on these tables. The substitution is applied to the whole
// token; genuinely alphabetic tokens are expected to fail validation
// afterwards anyway.
var confusables = strings.NewReplacer(
	"O", "0", "o", "0",
	"Z", "2", "z", "2",
	"S", "5", "s", "5",
)

var digitsOnly = regexp.MustCompile(`^[0-9]+$`)

// CleanToken corrects OCR digit confusions in one whitespace-delimited
// token, strips comma grouping separators, and validates the result. It
// returns the value and true, or false for a token that is unusable as a
// numeric field. A literal "-" maps to the missing-value marker, which is
// distinct from both zero and an invalid token. Cleaning an already-clean
// token is a no-op, so the operation is idempotent.
func CleanToken(token string) (model.Value, bool) {
	if token == model.MissingMarker {
		return model.MissingValue(), true
	}

	cleaned := confusables.Replace(token)
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	if !digitsOnly.MatchString(cleaned) {
		return model.Value{}, false
	}

	n, err := strconv.ParseInt(cleaned, 10, 64)
	if err != nil {
		// Overflows int64: a garbled digit run, not a population count.
		return model.Value{}, false
	}
	return model.IntValue(n), true
}

// CleanTokens runs CleanToken over a token sequence in order, silently
// dropping invalid tokens. The row-assembly stage decides whether enough
// valid fields remain.
func CleanTokens(tokens []string) []model.Value {
	values := make([]model.Value, 0, len(tokens))
	for _, tok := range tokens {
		if v, ok := CleanToken(tok); ok {
			values = append(values, v)
		}
	}
	return values
}
