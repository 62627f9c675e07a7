package model

// Page is the OCR collaborator's result for one source image or PDF page:
// the source identifier plus the recognized text lines in reading order.
// A Page is immutable once produced.
type Page struct {
	Source string
	Lines  []string
}
