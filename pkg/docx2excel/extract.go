package docx2excel

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/inalma/officeconv/internal/logging"
	"github.com/inalma/officeconv/pkg/docx2excel/models"
	"github.com/inalma/officeconv/pkg/docx2excel/parser"
	"github.com/inalma/officeconv/pkg/docx2excel/writer"
)

// Extract pulls tables, paragraphs and images out of a DOCX file.
// A document whose object model cannot be read yields no tables; paragraph
// and image failures are returned.
func Extract(path string, opts Options) (*models.Document, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, err
	}
	log := logging.OrDiscard(opts.Logger).WithField("input", filepath.Base(path))

	tables, err := parser.ExtractTables(path)
	if err != nil {
		log.WithError(err).Warn("tables skipped")
		tables = nil
	}

	paragraphs, err := parser.ExtractParagraphs(path)
	if err != nil {
		return nil, NewExtractionError(path, "paragraphs", err)
	}

	images, err := parser.ExtractImages(path)
	if err != nil {
		return nil, NewExtractionError(path, "images", err)
	}

	log.WithField("tables", len(tables)).
		WithField("paragraphs", len(paragraphs)).
		WithField("images", len(images)).
		Debug("extracted")

	return &models.Document{
		SourceName: filepath.Base(path),
		Tables:     tables,
		Paragraphs: paragraphs,
		Images:     images,
	}, nil
}

// Convert extracts inPath and writes the workbook to outPath, or next to
// the input with an .xlsx extension when outPath is empty. It returns the
// path written.
func Convert(inPath, outPath string, opts Options) (string, error) {
	if outPath == "" {
		outPath = DefaultOutputPath(inPath)
	}

	doc, err := Extract(inPath, opts)
	if err != nil {
		return "", err
	}

	if err := writer.Write(doc, outPath, opts.writerOptions()); err != nil {
		return "", err
	}
	return outPath, nil
}

// DefaultOutputPath swaps the extension of inPath for .xlsx.
func DefaultOutputPath(inPath string) string {
	return strings.TrimSuffix(inPath, filepath.Ext(inPath)) + ".xlsx"
}
