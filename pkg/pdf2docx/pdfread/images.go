package pdfread

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// PageImage is a picture embedded in a page.
type PageImage struct {
	// Page is the 1-based page number.
	Page int
	// Name is the resource name on the page (e.g. "Im0").
	Name string
	// Format is the lower-case file type (png, jpg, tif, ...).
	Format string
	// Data holds the encoded image.
	Data   []byte
	Width  int
	Height int
}

// PageCount returns the number of pages in the document.
func PageCount(path string) (int, error) {
	return api.PageCountFile(path)
}

// PageImages returns the pictures of the selected pages (all pages when
// pages is empty), keyed by page number, in object order within a page.
func PageImages(path string, pages []int) (map[int][]PageImage, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var selected []string
	for _, p := range pages {
		selected = append(selected, fmt.Sprint(p))
	}

	perPage, err := api.ExtractImagesRaw(f, selected, NewConfiguration())
	if err != nil {
		return nil, fmt.Errorf("extract images: %w", err)
	}

	result := make(map[int][]PageImage)
	for _, m := range perPage {
		objNrs := make([]int, 0, len(m))
		for objNr := range m {
			objNrs = append(objNrs, objNr)
		}
		sort.Ints(objNrs)

		for _, objNr := range objNrs {
			img := m[objNr]
			if img.Reader == nil {
				continue
			}
			data, err := io.ReadAll(img)
			if err != nil {
				return nil, fmt.Errorf("read image %s on page %d: %w", img.Name, img.PageNr, err)
			}
			format := strings.ToLower(img.FileType)
			if format == "" {
				format = strings.TrimPrefix(mimetype.Detect(data).Extension(), ".")
			}
			result[img.PageNr] = append(result[img.PageNr], PageImage{
				Page:   img.PageNr,
				Name:   img.Name,
				Format: format,
				Data:   data,
				Width:  img.Width,
				Height: img.Height,
			})
		}
	}

	return result, nil
}

// NewConfiguration returns the pdfcpu configuration used for reading and
// writing. Output keeps classic cross-reference tables so the text layer
// reader can open it.
func NewConfiguration() *model.Configuration {
	conf := model.NewDefaultConfiguration()
	conf.WriteObjectStream = false
	conf.WriteXRefStream = false
	return conf
}
