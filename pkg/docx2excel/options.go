// Package docx2excel converts the tables, text and pictures of a Word
// document into an Excel workbook.
package docx2excel

import (
	"github.com/inalma/officeconv/pkg/docx2excel/writer"
	"github.com/sirupsen/logrus"
)

// Options configures extraction and workbook layout.
type Options struct {
	// IncludeCombined adds a sheet stacking all tables when there are several.
	IncludeCombined bool
	// MaxImageWidth caps the displayed picture width in pixels.
	// If zero, defaults to 900.
	MaxImageWidth int
	// RowHeightPx is the row height used to estimate how many rows a picture spans.
	// If zero, defaults to 18.
	RowHeightPx float64
	// FallbackImageRows is the row advance for pictures of unknown size.
	// If zero, defaults to 30.
	FallbackImageRows int
	// Logger receives degradation warnings. If nil, output is discarded.
	Logger logrus.FieldLogger
}

// DefaultOptions returns default conversion options.
func DefaultOptions() Options {
	d := writer.DefaultOptions()
	return Options{
		IncludeCombined:   d.IncludeCombined,
		MaxImageWidth:     d.MaxImageWidth,
		RowHeightPx:       d.RowHeightPx,
		FallbackImageRows: d.FallbackImageRows,
	}
}

func (o Options) writerOptions() writer.Options {
	return writer.Options{
		IncludeCombined:   o.IncludeCombined,
		MaxImageWidth:     o.MaxImageWidth,
		RowHeightPx:       o.RowHeightPx,
		FallbackImageRows: o.FallbackImageRows,
		Logger:            o.Logger,
	}
}
