package ocr

import "github.com/inalma/officeconv/pkg/pdf2docx/pdfread"

// NeedsOCR reports whether the whole document carries fewer than minChars
// letters and numbers in its text layer. It is a single decision for the
// document, not a per-page one.
func NeedsOCR(pdfPath string, minChars int) (bool, error) {
	if minChars <= 0 {
		minChars = DefaultMinChars
	}
	hasText, err := pdfread.HasRealText(pdfPath, minChars)
	if err != nil {
		return false, err
	}
	return !hasText, nil
}
