//go:build !ocr

// Package ocr recognizes text on rendered census table pages.
//
// This is the stub implementation used when the "ocr" build tag is not
// set. All recognition functions return ErrOCRNotEnabled.
//
// To enable OCR, rebuild with the "ocr" build tag:
//
//	go build -tags ocr
//
// This requires Tesseract to be installed. On macOS:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr
package ocr

import "errors"

// ErrOCRNotEnabled is returned when OCR functions are called but OCR
// support was not compiled in. Rebuild with -tags ocr to enable it.
var ErrOCRNotEnabled = errors.New("OCR support not enabled; rebuild with -tags ocr")

// PageSegMode represents Tesseract page segmentation modes.
type PageSegMode int

// Page segmentation modes (matching the OCR-enabled implementation).
const (
	PSM_OSD_ONLY               PageSegMode = 0
	PSM_AUTO_OSD               PageSegMode = 1
	PSM_AUTO_ONLY              PageSegMode = 2
	PSM_AUTO                   PageSegMode = 3
	PSM_SINGLE_COLUMN          PageSegMode = 4
	PSM_SINGLE_BLOCK_VERT_TEXT PageSegMode = 5
	PSM_SINGLE_BLOCK           PageSegMode = 6
	PSM_SINGLE_LINE            PageSegMode = 7
	PSM_SINGLE_WORD            PageSegMode = 8
	PSM_CIRCLE_WORD            PageSegMode = 9
	PSM_SINGLE_CHAR            PageSegMode = 10
	PSM_SPARSE_TEXT            PageSegMode = 11
	PSM_SPARSE_TEXT_OSD        PageSegMode = 12
	PSM_RAW_LINE               PageSegMode = 13
)

// Client is a stub OCR client that returns errors for all operations.
type Client struct{}

// New returns an error indicating OCR support is not enabled.
func New() (*Client, error) {
	return nil, ErrOCRNotEnabled
}

// Close is a no-op for the stub client. Safe to call on a nil client.
func (c *Client) Close() error {
	return nil
}

// RecognizeImage returns an error indicating OCR support is not enabled.
func (c *Client) RecognizeImage(imageData []byte) (string, error) {
	return "", ErrOCRNotEnabled
}

// RecognizeLines returns an error indicating OCR support is not enabled.
func (c *Client) RecognizeLines(imageData []byte) ([]string, error) {
	return nil, ErrOCRNotEnabled
}

// SetLanguage returns an error indicating OCR support is not enabled.
func (c *Client) SetLanguage(lang string) error {
	return ErrOCRNotEnabled
}

// SetPageSegMode returns an error indicating OCR support is not enabled.
func (c *Client) SetPageSegMode(mode PageSegMode) error {
	return ErrOCRNotEnabled
}
