// Package pdftest writes small PDF files for tests.
package pdftest

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"os"
	"strings"
)

// Page is the content of one fixture page: lines of Helvetica text, an
// optional grey picture, or both.
type Page struct {
	Lines []string
	// ImageWidth and ImageHeight size a JPEG picture drawn on the page.
	ImageWidth  int
	ImageHeight int
}

// Write stores a PDF with pages at path.
func Write(path string, pages ...Page) error {
	data, err := Build(pages...)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Build returns a PDF with a classic cross-reference table.
func Build(pages ...Page) ([]byte, error) {
	var objs []string
	add := func(body string) int {
		objs = append(objs, body)
		return len(objs)
	}

	catalog := add("") // filled in below
	tree := add("")
	font := add(fmt.Sprintf("<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding /FirstChar 32 /LastChar 126 /Widths [%s] >>",
		strings.TrimSpace(strings.Repeat("556 ", 126-32+1))))

	kids := make([]string, 0, len(pages))
	for _, p := range pages {
		var content strings.Builder
		resources := fmt.Sprintf("/Font << /F1 %d 0 R >>", font)

		if p.ImageWidth > 0 && p.ImageHeight > 0 {
			jpg, err := grayJPEG(p.ImageWidth, p.ImageHeight)
			if err != nil {
				return nil, err
			}
			img := add(fmt.Sprintf("<< /Type /XObject /Subtype /Image /Width %d /Height %d /ColorSpace /DeviceGray /BitsPerComponent 8 /Filter /DCTDecode /Length %d >>\nstream\n%s\nendstream",
				p.ImageWidth, p.ImageHeight, len(jpg), jpg))
			resources += fmt.Sprintf(" /XObject << /Im1 %d 0 R >>", img)
			fmt.Fprintf(&content, "q %d 0 0 %d 72 300 cm /Im1 Do Q\n", p.ImageWidth, p.ImageHeight)
		}

		if len(p.Lines) > 0 {
			content.WriteString("BT /F1 12 Tf 72 720 Td 16 TL\n")
			for i, line := range p.Lines {
				if i > 0 {
					content.WriteString("T*\n")
				}
				fmt.Fprintf(&content, "(%s) Tj\n", escape(line))
			}
			content.WriteString("ET\n")
		}

		stream := content.String()
		contents := add(fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(stream), stream))
		page := add(fmt.Sprintf("<< /Type /Page /Parent %d 0 R /MediaBox [0 0 612 792] /Resources << %s >> /Contents %d 0 R >>",
			tree, resources, contents))
		kids = append(kids, fmt.Sprintf("%d 0 R", page))
	}

	objs[catalog-1] = fmt.Sprintf("<< /Type /Catalog /Pages %d 0 R >>", tree)
	objs[tree-1] = fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), len(kids))

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objs))
	for i, body := range objs {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, body)
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(objs)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root %d 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objs)+1, catalog, xref)
	return buf.Bytes(), nil
}

func escape(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `(`, `\(`, `)`, `\)`)
	return r.Replace(s)
}

func grayJPEG(w, h int) (string, error) {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetGray(x, y, color.Gray{Y: uint8((x + y) % 256)})
		}
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 80}); err != nil {
		return "", err
	}
	return buf.String(), nil
}
