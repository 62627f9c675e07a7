package ocr

import "strings"

// SplitLines breaks raw recognized text into trimmed, non-empty lines.
// Tesseract separates table rows with newlines but frequently emits
// blank lines between them.
func SplitLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
