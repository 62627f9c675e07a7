package censustab

import "github.com/censuspdf/censustab/profile"

// ExtractOptions holds configuration for table extraction.
type ExtractOptions struct {
	// Page selection (1-indexed)
	pages []int

	// Parsing profile; nil means the built-in census profile.
	prof *profile.Profile

	// OCR path
	dpi      int
	language string
	forceOCR bool

	// Text layer path
	textLayerOnly bool

	// Parsing behavior
	caseInsensitiveSections bool
	dropPageContext         bool
	dedupIncludeSource      bool
	noSort                  bool
}

// defaultOptions returns the default extraction options.
func defaultOptions() ExtractOptions {
	return ExtractOptions{
		pages: nil, // nil means all pages
	}
}

// clone creates a deep copy of ExtractOptions.
func (o ExtractOptions) clone() ExtractOptions {
	newOpts := o

	if o.pages != nil {
		newOpts.pages = make([]int, len(o.pages))
		copy(newOpts.pages, o.pages)
	}
	// Profiles are shared read-only until a method needs to modify one;
	// modifying methods clone via the profile package first.

	return newOpts
}
