package ocr

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/inalma/officeconv/internal/logging"
	"github.com/inalma/officeconv/pkg/pdf2docx/pdfread"
)

// Result is the outcome of an OCR pass.
type Result struct {
	// PDFPath is a temporary searchable copy of the input.
	PDFPath string
	// Pages maps 1-based page numbers to recognized text.
	Pages map[int]string
}

// Cleanup removes the temporary PDF.
func (r *Result) Cleanup() error {
	if r == nil || r.PDFPath == "" {
		return nil
	}
	err := os.Remove(r.PDFPath)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// Run recognizes every picture of every page of inPDF and writes a
// temporary copy of the document carrying the recognized text. Pictures
// the engine rejects are skipped with a warning; cancellation stops the run.
func Run(ctx context.Context, engine Engine, inPDF string, opts Options) (*Result, error) {
	log := logging.OrDiscard(opts.Logger).WithField("engine", engine.Name())

	images, err := pdfread.PageImages(inPDF, nil)
	if err != nil {
		return nil, err
	}
	count, err := pdfread.PageCount(inPDF)
	if err != nil {
		return nil, fmt.Errorf("page count: %w", err)
	}

	pages := make(map[int]string, count)
	for page := 1; page <= count; page++ {
		if len(images[page]) == 0 {
			log.WithField("page", page).Warn("no page image to recognize")
			continue
		}
		var parts []string
		for _, img := range images[page] {
			text, err := engine.Recognize(ctx, img.Data, opts)
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			if err != nil {
				log.WithError(err).WithField("page", page).WithField("image", img.Name).Warn("recognition failed")
				continue
			}
			if text != "" {
				parts = append(parts, text)
			}
		}
		pages[page] = strings.TrimSpace(strings.Join(parts, "\n"))
		log.WithField("page", page).WithField("chars", len([]rune(pages[page]))).Debug("page recognized")
	}

	tmpPath, err := copyToTemp(inPDF)
	if err != nil {
		return nil, err
	}
	res := &Result{PDFPath: tmpPath, Pages: pages}

	if err := BurnTextLayer(tmpPath, pages); err != nil {
		log.WithError(err).Warn("text layer incomplete")
	}
	return res, nil
}

func copyToTemp(src string) (string, error) {
	in, err := os.Open(src)
	if err != nil {
		return "", err
	}
	defer in.Close()

	out, err := os.CreateTemp("", "pdf2docx-ocr-*.pdf")
	if err != nil {
		return "", fmt.Errorf("create temp pdf: %w", err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(out.Name())
		return "", fmt.Errorf("copy to temp pdf: %w", err)
	}
	if err := out.Close(); err != nil {
		os.Remove(out.Name())
		return "", err
	}
	return out.Name(), nil
}
