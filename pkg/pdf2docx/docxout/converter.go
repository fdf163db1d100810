// Package docxout writes extracted PDF pages into a Word document.
package docxout

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fumiama/go-docx"
	"github.com/inalma/officeconv/internal/logging"
	"github.com/inalma/officeconv/pkg/pdf2docx/pdfread"
	"github.com/sirupsen/logrus"
)

// Font sizes outside this range are left to the document default.
const (
	minFontSize = 6.0
	maxFontSize = 72.0
)

// DefaultMaxImageWidth is the widest picture embedded, in pixels.
const DefaultMaxImageWidth = 600

// Page is the content of one PDF page.
type Page struct {
	// Lines are text lines in reading order.
	Lines []pdfread.Line
	// Images are the pictures drawn on the page.
	Images []pdfread.PageImage
}

// Options configures a Converter.
type Options struct {
	// MaxImageWidth downscales wider pictures. Zero means DefaultMaxImageWidth.
	MaxImageWidth int
	// Logger receives warnings for skipped pictures. If nil, output is discarded.
	Logger logrus.FieldLogger
}

// Converter writes pages to a DOCX file.
type Converter struct {
	maxWidth int
	log      logrus.FieldLogger
}

// New returns a Converter for opts.
func New(opts Options) *Converter {
	if opts.MaxImageWidth <= 0 {
		opts.MaxImageWidth = DefaultMaxImageWidth
	}
	return &Converter{
		maxWidth: opts.MaxImageWidth,
		log:      logging.OrDiscard(opts.Logger),
	}
}

// Convert writes pages to outPath. Each page starts after a page break,
// except the first.
func (c *Converter) Convert(ctx context.Context, pages []Page, outPath string) error {
	doc := docx.New().WithDefaultTheme()

	for i, page := range pages {
		if err := ctx.Err(); err != nil {
			return err
		}
		if i > 0 {
			doc.AddParagraph().AddPageBreaks()
		}
		c.writePage(doc, i+1, page)
	}

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if _, err := doc.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("write docx: %w", err)
	}
	return f.Close()
}

func (c *Converter) writePage(doc *docx.Docx, num int, page Page) {
	for _, line := range page.Lines {
		text := strings.TrimSpace(line.Text)
		if text == "" {
			continue
		}
		run := doc.AddParagraph().AddText(text)
		if size, ok := halfPoints(line.FontSize); ok {
			run.Size(size)
		}
	}

	for _, img := range page.Images {
		data, err := fitImage(img.Data, c.maxWidth)
		if err != nil {
			c.log.WithError(err).WithField("page", num).WithField("image", img.Name).Warn("skipping image")
			continue
		}
		if _, err := doc.AddParagraph().AddInlineDrawing(data); err != nil {
			c.log.WithError(err).WithField("page", num).WithField("image", img.Name).Warn("skipping image")
		}
	}
}

// halfPoints converts a point size to the half-point string used by
// run properties.
func halfPoints(pt float64) (string, bool) {
	if pt < minFontSize || pt > maxFontSize {
		return "", false
	}
	return strconv.Itoa(int(pt*2 + 0.5)), true
}
