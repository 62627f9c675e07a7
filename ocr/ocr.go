//go:build ocr

// Package ocr recognizes text on rendered census table pages.
//
// It wraps the Tesseract engine via gosseract and requires Tesseract to
// be installed on the system. On macOS, install via:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr
package ocr

import (
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// Client wraps a Tesseract session for page recognition.
type Client struct {
	client *gosseract.Client
}

// New creates an OCR client configured for tabular pages: a single
// uniform block of text, English language. Close it when done to release
// the Tesseract session.
func New() (*Client, error) {
	client := gosseract.NewClient()
	// Census pages are one uniform table block; full layout analysis
	// tends to split columns into separate reading-order streams.
	if err := client.SetPageSegMode(gosseract.PSM_SINGLE_BLOCK); err != nil {
		client.Close()
		return nil, fmt.Errorf("set page segmentation: %w", err)
	}
	return &Client{client: client}, nil
}

// Close releases OCR resources.
func (c *Client) Close() error {
	if c != nil && c.client != nil {
		return c.client.Close()
	}
	return nil
}

// RecognizeImage performs OCR on encoded image data (PNG, TIFF, JPEG)
// and returns the recognized text with surrounding whitespace trimmed.
func (c *Client) RecognizeImage(imageData []byte) (string, error) {
	if err := c.client.SetImageFromBytes(imageData); err != nil {
		return "", fmt.Errorf("set image: %w", err)
	}

	text, err := c.client.Text()
	if err != nil {
		return "", fmt.Errorf("recognize: %w", err)
	}
	return strings.TrimSpace(text), nil
}

// RecognizeLines performs OCR on encoded image data and splits the
// result into trimmed, non-empty lines, the unit the line classifier
// consumes.
func (c *Client) RecognizeLines(imageData []byte) ([]string, error) {
	text, err := c.RecognizeImage(imageData)
	if err != nil {
		return nil, err
	}
	return SplitLines(text), nil
}

// SetLanguage sets the recognition language(s). Multiple languages are
// "+" separated ("eng+urd"). The default is "eng".
func (c *Client) SetLanguage(lang string) error {
	return c.client.SetLanguage(lang)
}

// SetPageSegMode overrides the page segmentation mode. See the
// gosseract PageSegMode constants.
func (c *Client) SetPageSegMode(mode gosseract.PageSegMode) error {
	return c.client.SetPageSegMode(mode)
}
