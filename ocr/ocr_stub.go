//go:build !ocr

// Package ocr bridges a local Tesseract engine (via gosseract) to the
// reconstruction pipeline, turning recognized words with their bounding
// boxes into fragments.
//
// This is the stub implementation used when the "ocr" build tag is not set.
// All recognition functions return ErrOCRNotEnabled.
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

import (
	"errors"

	"github.com/gridform/tablature/model"
)

// ErrOCRNotEnabled is returned when OCR functions are called but OCR support
// was not compiled in. Rebuild with -tags ocr to enable OCR support.
var ErrOCRNotEnabled = errors.New("ocr: OCR support not enabled; rebuild with -tags ocr")

// Client is a no-op stand-in for the Tesseract client.
type Client struct{}

// New returns a stub client; recognition calls fail with ErrOCRNotEnabled.
func New() (*Client, error) {
	return &Client{}, nil
}

// Close releases OCR resources.
func (c *Client) Close() error {
	return nil
}

// SetLanguage sets the language(s) for recognition.
func (c *Client) SetLanguage(lang string) error {
	return ErrOCRNotEnabled
}

// FragmentsFromImage recognizes image data and returns positioned fragments.
func (c *Client) FragmentsFromImage(imageData []byte, pageID string) ([]model.Fragment, error) {
	return nil, ErrOCRNotEnabled
}
