package fetch

import (
	"fmt"
	"io"
	"os"

	"github.com/gocarina/gocsv"
)

// ManifestEntry is one row of a district manifest: the CSV listing of
// district codes and table numbers that drives a batch download.
type ManifestEntry struct {
	Code     string `csv:"code"`
	Name     string `csv:"name"`
	Province string `csv:"province"`
	Table    string `csv:"table"`
}

// FileName expands a filename pattern for this entry.
func (e ManifestEntry) FileName(pattern string) string {
	return ExpandPattern(pattern, e.Code, e.Table)
}

// LoadManifest reads a district manifest CSV file.
func LoadManifest(path string) ([]ManifestEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open manifest: %w", err)
	}
	defer f.Close()
	return ParseManifest(f)
}

// ParseManifest decodes a district manifest from CSV.
func ParseManifest(r io.Reader) ([]ManifestEntry, error) {
	var entries []ManifestEntry
	if err := gocsv.Unmarshal(r, &entries); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	return entries, nil
}

// ManifestURLs builds the full download URL list for a manifest: the
// base URL joined with each entry's expanded filename.
func ManifestURLs(baseURL, pattern string, entries []ManifestEntry) []string {
	urls := make([]string, 0, len(entries))
	for _, e := range entries {
		urls = append(urls, joinURL(baseURL, e.FileName(pattern)))
	}
	return urls
}

func joinURL(base, name string) string {
	if len(base) > 0 && base[len(base)-1] == '/' {
		return base + name
	}
	return base + "/" + name
}
