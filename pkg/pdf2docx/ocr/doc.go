// Package ocr decides whether a PDF needs optical character recognition
// and, when it does, recognizes its page images and burns the result into
// a searchable copy of the document.
//
// Recognition uses Tesseract through gosseract and is only compiled in
// with the "ocr" build tag:
//
//	go build -tags ocr ./...
//
// Without the tag NewEngine returns ErrOCRNotEnabled.
package ocr
