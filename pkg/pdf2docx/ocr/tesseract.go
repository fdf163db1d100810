//go:build ocr

package ocr

import (
	"context"
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// Tesseract is an Engine backed by a single gosseract client.
type Tesseract struct {
	client *gosseract.Client
}

// NewEngine creates a Tesseract engine. Close it when done.
func NewEngine() (Engine, error) {
	return &Tesseract{client: gosseract.NewClient()}, nil
}

func (t *Tesseract) Name() string { return "tesseract" }

// Recognize returns the trimmed text Tesseract finds in image.
func (t *Tesseract) Recognize(ctx context.Context, image []byte, opts Options) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := t.client.SetImageFromBytes(image); err != nil {
		return "", fmt.Errorf("set image: %w", err)
	}
	if len(opts.Languages) > 0 {
		if err := t.client.SetLanguage(opts.Languages...); err != nil {
			return "", fmt.Errorf("set languages: %w", err)
		}
	}
	if opts.DPI > 0 {
		if err := t.client.SetVariable(gosseract.SettableVariable("user_defined_dpi"), fmt.Sprint(opts.DPI)); err != nil {
			return "", fmt.Errorf("set dpi: %w", err)
		}
	}
	text, err := t.client.Text()
	if err != nil {
		return "", fmt.Errorf("recognize text: %w", err)
	}
	return strings.TrimSpace(text), nil
}

// Close releases the Tesseract client.
func (t *Tesseract) Close() error {
	if t.client != nil {
		return t.client.Close()
	}
	return nil
}
