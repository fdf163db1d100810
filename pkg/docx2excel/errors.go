package docx2excel

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ExtractionError represents an error while pulling one kind of content
// out of a document.
type ExtractionError struct {
	Path      string
	Component string // "tables", "paragraphs", "images"
	Err       error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extraction error in %q (%s): %v", e.Path, e.Component, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// NewExtractionError creates a new ExtractionError.
func NewExtractionError(path, component string, err error) *ExtractionError {
	return &ExtractionError{
		Path:      path,
		Component: component,
		Err:       err,
	}
}
