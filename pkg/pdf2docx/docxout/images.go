package docxout

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"

	_ "image/gif"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

var errEmptyImage = errors.New("empty image")

// fitImage returns data re-encoded as PNG or JPEG, scaled down to maxWidth
// when wider. JPEG input stays JPEG; everything else becomes PNG.
func fitImage(data []byte, maxWidth int) ([]byte, error) {
	if len(data) == 0 {
		return nil, errEmptyImage
	}
	src, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	b := src.Bounds()
	if b.Dx() <= maxWidth && (format == "png" || format == "jpeg") {
		return data, nil
	}

	dst := src
	if b.Dx() > maxWidth {
		h := b.Dy() * maxWidth / b.Dx()
		if h < 1 {
			h = 1
		}
		scaled := image.NewRGBA(image.Rect(0, 0, maxWidth, h))
		draw.CatmullRom.Scale(scaled, scaled.Bounds(), src, b, draw.Over, nil)
		dst = scaled
	}

	var buf bytes.Buffer
	if format == "jpeg" {
		err = jpeg.Encode(&buf, dst, &jpeg.Options{Quality: 90})
	} else {
		err = png.Encode(&buf, dst)
	}
	if err != nil {
		return nil, fmt.Errorf("encode image: %w", err)
	}
	return buf.Bytes(), nil
}
