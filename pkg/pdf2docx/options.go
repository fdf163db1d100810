// Package pdf2docx converts a PDF into a Word document, running OCR first
// when the PDF carries no usable text layer.
package pdf2docx

import (
	"github.com/inalma/officeconv/pkg/pdf2docx/docxout"
	"github.com/inalma/officeconv/pkg/pdf2docx/ocr"
	"github.com/sirupsen/logrus"
)

// Options configures a conversion.
type Options struct {
	// MinChars is the letter and number count below which OCR runs.
	MinChars int
	// Languages passed to the OCR engine.
	Languages []string
	// DPI hint passed to the OCR engine.
	DPI int
	// KeepOCRPDF, when set, receives the searchable PDF produced by OCR.
	KeepOCRPDF string
	// MaxImageWidth downscales wider pictures in the output.
	MaxImageWidth int
	// Logger receives progress and warnings. If nil, output is discarded.
	Logger logrus.FieldLogger
	// NewEngine creates the OCR engine. Defaults to ocr.NewEngine.
	NewEngine func() (ocr.Engine, error)
}

// DefaultOptions returns the command-line defaults.
func DefaultOptions() Options {
	o := ocr.DefaultOptions()
	return Options{
		MinChars:      ocr.DefaultMinChars,
		Languages:     o.Languages,
		DPI:           o.DPI,
		MaxImageWidth: docxout.DefaultMaxImageWidth,
		NewEngine:     ocr.NewEngine,
	}
}

func (o Options) ocrOptions() ocr.Options {
	return ocr.Options{
		Languages: o.Languages,
		DPI:       o.DPI,
		Logger:    o.Logger,
	}
}
