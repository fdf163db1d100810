package parser

import (
	"archive/zip"
	"bytes"
	"image"
	_ "image/gif" // register GIF decoder
	_ "image/jpeg"
	"image/png"
	"path"
	"sort"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/inalma/officeconv/pkg/docx2excel/models"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ExtractImages returns every member under word/media, sorted by name.
// Pictures that are neither PNG nor JPEG are re-encoded to PNG when they
// can be decoded; anything else passes through untouched.
func ExtractImages(docxPath string) ([]models.Image, error) {
	r, err := zip.OpenReader(docxPath)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	var members []*zip.File
	for _, f := range r.File {
		if strings.HasPrefix(f.Name, mediaPrefix) && !strings.HasSuffix(f.Name, "/") {
			members = append(members, f)
		}
	}
	if len(members) == 0 {
		return nil, nil
	}
	sort.Slice(members, func(i, j int) bool { return members[i].Name < members[j].Name })

	// Sizes from the layout are only a fallback for undecodable pictures.
	extents, err := drawingExtents(&r.Reader)
	if err != nil {
		extents = nil
	}

	images := make([]models.Image, 0, len(members))
	for _, f := range members {
		data, err := readZipEntry(f)
		if err != nil {
			return nil, err
		}
		img := NormalizeImage(path.Base(f.Name), data)
		if !img.HasSize() {
			if s, ok := extents[f.Name]; ok {
				w, h := s.W, s.H
				img.Width, img.Height = &w, &h
			}
		}
		images = append(images, img)
	}

	return images, nil
}

// NormalizeImage labels the image format and records its pixel size.
func NormalizeImage(name string, data []byte) models.Image {
	format := strings.ToUpper(strings.TrimPrefix(path.Ext(name), "."))
	if format == "" {
		format = sniffFormat(data)
	}
	passThrough := models.Image{Name: name, Data: data, Format: format}

	if isNativeFormat(format) {
		cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
		if err != nil {
			return passThrough
		}
		return withSize(passThrough, cfg.Width, cfg.Height)
	}

	decoded, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return passThrough
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, decoded); err != nil {
		return passThrough
	}
	b := decoded.Bounds()
	return withSize(models.Image{Name: name, Data: buf.Bytes(), Format: "PNG"}, b.Dx(), b.Dy())
}

func isNativeFormat(format string) bool {
	switch format {
	case "PNG", "JPG", "JPEG":
		return true
	}
	return false
}

func sniffFormat(data []byte) string {
	ext := mimetype.Detect(data).Extension()
	return strings.ToUpper(strings.TrimPrefix(ext, "."))
}

func withSize(img models.Image, w, h int) models.Image {
	img.Width = &w
	img.Height = &h
	return img
}
