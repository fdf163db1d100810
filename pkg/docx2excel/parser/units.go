// Package parser provides DOCX extraction utilities.
package parser

// EMUPerPixel is the number of EMUs (English Metric Units) per pixel at 96 DPI.
// 1 inch = 914400 EMU, 1 inch = 96 pixels at 96 DPI
// Therefore: 914400 / 96 = 9525 EMU per pixel
const EMUPerPixel = 9525

// EMUToPixels converts EMU to pixels at 96 DPI.
// Word stores drawing extents (wp:extent cx/cy) in EMU.
func EMUToPixels(emu int64) int {
	return int(emu / EMUPerPixel)
}

// Size is a pixel size.
type Size struct {
	W int
	H int
}

// Valid reports whether both dimensions are positive.
func (s Size) Valid() bool {
	return s.W > 0 && s.H > 0
}
