//go:build ocr

// Package ocr reads text back out of rendered slide previews.
//
// This implementation wraps the Tesseract engine via gosseract and is only
// built with the "ocr" tag. Tesseract and its language data must be
// installed. On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr tesseract-ocr-fra
package ocr

import (
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// Enabled reports whether OCR support was compiled in.
const Enabled = true

// Client wraps Tesseract for OCR operations.
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
	if c == nil || c.client == nil {
		return nil
	}
	err := c.client.Close()
	c.client = nil
	return err
}

// SetLanguage sets the recognition language(s), "+" separated
// (e.g. "fra+eng"). Tesseract defaults to "eng".
func (c *Client) SetLanguage(lang string) error {
	if err := c.client.SetLanguage(strings.Split(lang, "+")...); err != nil {
		return fmt.Errorf("setting OCR language %q: %w", lang, err)
	}
	return nil
}

// RecognizeImage performs OCR on encoded image data (PNG, JPEG, ...).
// Returns the recognized text with leading/trailing whitespace trimmed.
func (c *Client) RecognizeImage(imageData []byte) (string, error) {
	if err := c.client.SetImageFromBytes(imageData); err != nil {
		return "", fmt.Errorf("setting OCR image: %w", err)
	}

	text, err := c.client.Text()
	if err != nil {
		return "", fmt.Errorf("recognizing text: %w", err)
	}

	return strings.TrimSpace(text), nil
}
