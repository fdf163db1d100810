package pdf2docx

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/inalma/officeconv/internal/logging"
	"github.com/inalma/officeconv/pkg/pdf2docx/docxout"
	"github.com/inalma/officeconv/pkg/pdf2docx/ocr"
	"github.com/inalma/officeconv/pkg/pdf2docx/pdfread"
	"github.com/sirupsen/logrus"
)

// Convert writes inPDF as a Word document to outDOCX. When the PDF has
// fewer than opts.MinChars letters and numbers, its pages are recognized
// first and the recognized text becomes the document text.
func Convert(ctx context.Context, inPDF, outDOCX string, opts Options) error {
	if _, err := os.Stat(inPDF); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrFileNotFound, inPDF)
		}
		return err
	}
	if opts.NewEngine == nil {
		opts.NewEngine = ocr.NewEngine
	}
	log := logging.OrDiscard(opts.Logger).WithField("input", filepath.Base(inPDF))

	needsOCR, err := ocr.NeedsOCR(inPDF, opts.MinChars)
	if err != nil {
		return &ConversionError{Stage: "gate", Err: err}
	}
	log.WithField("ocr", needsOCR).Debug("text layer checked")

	source := inPDF
	var recognized map[int]string
	if needsOCR {
		res, err := runOCR(ctx, inPDF, opts, log)
		if err != nil {
			return &ConversionError{Stage: "ocr", Err: err}
		}
		if res != nil {
			defer func() {
				if err := res.Cleanup(); err != nil {
					log.WithError(err).Warn("temporary OCR file not removed")
				}
			}()
			source = res.PDFPath
			recognized = res.Pages
			if opts.KeepOCRPDF != "" {
				if err := copyFile(res.PDFPath, opts.KeepOCRPDF); err != nil {
					log.WithError(err).Warn("OCR PDF not kept")
				}
			}
		}
	}

	pages, err := readPages(source, recognized, log)
	if err != nil {
		return &ConversionError{Stage: "read", Err: err}
	}

	conv := docxout.New(docxout.Options{MaxImageWidth: opts.MaxImageWidth, Logger: opts.Logger})
	if err := conv.Convert(ctx, pages, outDOCX); err != nil {
		return &ConversionError{Stage: "write", Err: err}
	}

	return validateOutput(outDOCX, log)
}

// runOCR returns nil without error when recognition is not compiled in.
func runOCR(ctx context.Context, inPDF string, opts Options, log logrus.FieldLogger) (*ocr.Result, error) {
	engine, err := opts.NewEngine()
	if errors.Is(err, ocr.ErrOCRNotEnabled) {
		log.Warn("PDF has no text layer and OCR is not enabled; converting without it")
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer engine.Close()

	log.WithField("engine", engine.Name()).Info("running OCR")
	return ocr.Run(ctx, engine, inPDF, opts.ocrOptions())
}

func readPages(path string, recognized map[int]string, log logrus.FieldLogger) ([]docxout.Page, error) {
	lines, err := pdfread.PageLines(path)
	if err != nil {
		return nil, err
	}

	images, err := pdfread.PageImages(path, nil)
	if err != nil {
		log.WithError(err).Warn("images skipped")
		images = nil
	}

	pages := make([]docxout.Page, len(lines))
	for i := range lines {
		num := i + 1
		pages[i].Lines = lines[i]
		if !hasText(lines[i]) {
			if text, ok := recognized[num]; ok && text != "" {
				pages[i].Lines = pdfread.TextLines(text)
			}
		}
		pages[i].Images = images[num]
	}
	return pages, nil
}

func hasText(lines []pdfread.Line) bool {
	for _, l := range lines {
		if pdfread.CountAlnum(l.Text) > 0 {
			return true
		}
	}
	return false
}

func validateOutput(path string, log logrus.FieldLogger) error {
	info, err := os.Stat(path)
	if err != nil {
		return &ConversionError{Stage: "validate", Err: fmt.Errorf("%w: %v", ErrInvalidOutput, err)}
	}
	if info.Size() < MinOutputSize {
		return &ConversionError{
			Stage: "validate",
			Err:   fmt.Errorf("%w: %s is only %s", ErrInvalidOutput, path, humanize.Bytes(uint64(info.Size()))),
		}
	}
	log.WithField("size", humanize.Bytes(uint64(info.Size()))).Debug("document written")
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
