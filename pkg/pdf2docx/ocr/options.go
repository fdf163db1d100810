package ocr

import (
	"errors"
	"strings"

	"github.com/sirupsen/logrus"
)

// DefaultMinChars is the number of letters and numbers below which a
// document is treated as having no text layer.
const DefaultMinChars = 50

// ErrOCRNotEnabled is returned when recognition was not compiled in.
// Rebuild with -tags ocr to enable it.
var ErrOCRNotEnabled = errors.New("OCR support not enabled; rebuild with -tags ocr")

// Options configures recognition.
type Options struct {
	// Languages are Tesseract language codes, tried together.
	Languages []string
	// DPI is the resolution hint passed to the engine.
	DPI int
	// Logger receives per-page progress and warnings. If nil, output is discarded.
	Logger logrus.FieldLogger
}

// DefaultOptions returns Spanish plus English at 300 DPI.
func DefaultOptions() Options {
	return Options{
		Languages: []string{"spa", "eng"},
		DPI:       300,
	}
}

// ParseLanguages splits a Tesseract style "spa+eng" list.
func ParseLanguages(s string) []string {
	var langs []string
	for _, l := range strings.Split(s, "+") {
		if l = strings.TrimSpace(l); l != "" {
			langs = append(langs, l)
		}
	}
	return langs
}
