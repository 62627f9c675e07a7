package fetch

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/net/html"
)

// ParseLinks extracts absolute PDF URLs from an HTML index page.
// Relative hrefs are resolved against base. Duplicates are removed
// keeping first-seen order.
func ParseLinks(doc *html.Node, base *url.URL) []string {
	var links []string
	seen := make(map[string]bool)

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" {
			for _, attr := range n.Attr {
				if attr.Key != "href" {
					continue
				}
				href := strings.TrimSpace(attr.Val)
				if !strings.HasSuffix(strings.ToLower(href), ".pdf") {
					continue
				}
				ref, err := url.Parse(href)
				if err != nil {
					continue
				}
				abs := base.ResolveReference(ref).String()
				if !seen[abs] {
					seen[abs] = true
					links = append(links, abs)
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return links
}

// DiscoverLinks fetches an index page and returns the PDF links it
// references, resolved to absolute URLs.
func (c *Client) DiscoverLinks(ctx context.Context, indexURL string) ([]string, error) {
	base, err := url.Parse(indexURL)
	if err != nil {
		return nil, fmt.Errorf("parse index url: %w", err)
	}

	data, err := c.Download(ctx, indexURL)
	if err != nil {
		return nil, err
	}

	doc, err := html.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse index page: %w", err)
	}
	return ParseLinks(doc, base), nil
}
