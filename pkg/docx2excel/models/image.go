package models

import "strings"

// Image represents an embedded picture pulled from word/media.
type Image struct {
	// Name is the archive member base name (e.g. "image1.png").
	Name string `json:"name"`
	// Data holds the raw, possibly re-encoded, image bytes.
	Data []byte `json:"-"`
	// Format is the upper-case format label (PNG, JPEG, JPG, or the
	// original extension when the image passed through unchanged).
	Format string `json:"format"`
	// Width is the pixel width (nil if unknown).
	Width *int `json:"w,omitempty"`
	// Height is the pixel height (nil if unknown).
	Height *int `json:"h,omitempty"`
}

// HasSize reports whether both pixel dimensions are known.
func (i Image) HasSize() bool {
	return i.Width != nil && i.Height != nil && *i.Width > 0 && *i.Height > 0
}

// Extension returns the file extension matching Format, with leading dot.
func (i Image) Extension() string {
	if i.Format == "" {
		return ""
	}
	return "." + strings.ToLower(i.Format)
}
