package ocr

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/inalma/officeconv/pkg/pdf2docx/pdfread"
	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// textLayerDesc stamps the recognized text invisibly over the page.
const textLayerDesc = "fontname:Helvetica, points:8, position:tl, offset:10 -10, scalefactor:1 abs, rotation:0, opacity:0"

// BurnTextLayer writes the recognized text of each page into pdfPath, in
// place, as an invisible text stamp. Pages whose stamp fails are reported
// together; the others are still written.
func BurnTextLayer(pdfPath string, pages map[int]string) error {
	nums := make([]int, 0, len(pages))
	for n, text := range pages {
		if text != "" {
			nums = append(nums, n)
		}
	}
	sort.Ints(nums)

	conf := pdfread.NewConfiguration()
	var errs []error
	for _, n := range nums {
		err := api.AddTextWatermarksFile(pdfPath, pdfPath, []string{strconv.Itoa(n)}, true, pages[n], textLayerDesc, conf)
		if err != nil {
			errs = append(errs, fmt.Errorf("page %d: %w", n, err))
		}
	}
	return errors.Join(errs...)
}
