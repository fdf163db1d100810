//go:build !ocr

package ocr

// NewEngine returns ErrOCRNotEnabled. Rebuild with -tags ocr for Tesseract.
func NewEngine() (Engine, error) {
	return nil, ErrOCRNotEnabled
}
