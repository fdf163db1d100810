// Package writer lays extracted DOCX content out as an XLSX workbook.
package writer

import "github.com/sirupsen/logrus"

// Sheet names, in the order they are written.
const (
	TableSheetFormat = "Tabla%d"
	CombinedSheet    = "Combinado"
	TextSheet        = "Texto"
	MessageSheet     = "Mensaje"
	ImageSheet       = "Imagenes"
)

// Column headers and placeholder text.
const (
	TextHeader    = "Texto"
	MessageHeader = "Mensaje"
	EmptyMessage  = "El documento no contiene tablas, texto ni imágenes."
)

// Options configures workbook assembly.
type Options struct {
	// IncludeCombined adds the combined sheet when there is more than one table.
	IncludeCombined bool
	// MaxImageWidth is the widest an image is shown, in pixels.
	MaxImageWidth int
	// RowHeightPx is the assumed height of a worksheet row in pixels.
	RowHeightPx float64
	// FallbackImageRows is the row advance for images of unknown size.
	FallbackImageRows int
	// Logger receives warnings about pictures that could not be embedded.
	Logger logrus.FieldLogger
}

// DefaultOptions returns the default layout.
func DefaultOptions() Options {
	return Options{
		IncludeCombined:   true,
		MaxImageWidth:     900,
		RowHeightPx:       18,
		FallbackImageRows: 30,
	}
}

func (o *Options) defaults() {
	d := DefaultOptions()
	if o.MaxImageWidth <= 0 {
		o.MaxImageWidth = d.MaxImageWidth
	}
	if o.RowHeightPx <= 0 {
		o.RowHeightPx = d.RowHeightPx
	}
	if o.FallbackImageRows <= 0 {
		o.FallbackImageRows = d.FallbackImageRows
	}
}
