//go:build ocr

// Package ocr bridges a local Tesseract engine (via gosseract) to the
// reconstruction pipeline, turning recognized words with their bounding
// boxes into fragments.
//
// This package requires Tesseract to be installed on the system. On macOS,
// install via:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr
package ocr

import (
	"fmt"

	"github.com/otiai10/gosseract/v2"

	"github.com/gridform/tablature/model"
)

// Client wraps Tesseract for recognition.
type Client struct {
	client *gosseract.Client
}

// New creates a new OCR client.
// The client should be closed when no longer needed to release resources.
func New() (*Client, error) {
	return &Client{client: gosseract.NewClient()}, nil
}

// Close releases OCR resources.
func (c *Client) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// SetLanguage sets the language(s) for recognition.
// Multiple languages can be specified as a "+" separated string (e.g., "eng+fra").
// Default is "eng" (English).
func (c *Client) SetLanguage(lang string) error {
	return c.client.SetLanguage(lang)
}

// FragmentsFromImage recognizes image data (PNG, TIFF, JPEG, etc.) and
// returns one fragment per recognized word, with Tesseract's 0-100 word
// confidence scaled to 0-1. Scan images preprocessed with
// EnhanceForRecognition generally recognize better.
func (c *Client) FragmentsFromImage(imageData []byte, pageID string) ([]model.Fragment, error) {
	if err := c.client.SetImageFromBytes(imageData); err != nil {
		return nil, fmt.Errorf("ocr: failed to set image: %w", err)
	}

	boxes, err := c.client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil {
		return nil, fmt.Errorf("ocr: recognition failed: %w", err)
	}

	frags := make([]model.Fragment, 0, len(boxes))
	for _, box := range boxes {
		if box.Word == "" {
			continue
		}
		frags = append(frags, model.Fragment{
			ID:   len(frags),
			Text: box.Word,
			BBox: model.NewBBoxFromEdges(
				float64(box.Box.Min.X), float64(box.Box.Min.Y),
				float64(box.Box.Max.X), float64(box.Box.Max.Y),
			),
			Confidence: box.Confidence / 100,
			PageID:     pageID,
		})
	}
	return frags, nil
}
