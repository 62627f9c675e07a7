package censustab

import (
	"fmt"
	"strings"
)

// Warning is a non-fatal issue encountered while processing: extraction
// succeeded but the result may be incomplete. Rows dropped for
// insufficient data, pages without a usable image, and per-page OCR
// failures all surface as warnings rather than errors.
type Warning struct {
	// Page is the 1-based page number the warning refers to, or 0 when
	// it applies to the whole document.
	Page int

	Message string
}

func (w Warning) String() string {
	if w.Page > 0 {
		return fmt.Sprintf("page %d: %s", w.Page, w.Message)
	}
	return w.Message
}

// FormatWarnings renders warnings as a single semicolon-separated line
// for logging.
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	parts := make([]string, len(warnings))
	for i, w := range warnings {
		parts[i] = w.String()
	}
	return strings.Join(parts, "; ")
}
