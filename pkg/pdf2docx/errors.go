package pdf2docx

import (
	"errors"
	"fmt"
)

// MinOutputSize is the smallest DOCX accepted as a successful conversion.
const MinOutputSize = 1024

var (
	// ErrFileNotFound indicates the input PDF does not exist.
	ErrFileNotFound = errors.New("file not found")
	// ErrInvalidOutput indicates the converter produced no usable document.
	ErrInvalidOutput = errors.New("invalid output document")
)

// ConversionError reports the pipeline stage that failed.
type ConversionError struct {
	Stage string // "gate", "ocr", "read", "write", "validate"
	Err   error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}
