package writer

import (
	"fmt"
	"math"

	"github.com/inalma/officeconv/pkg/docx2excel/models"
	"github.com/xuri/excelize/v2"
)

// Placement returns the uniform scale for img and the number of rows its
// block (label plus picture) occupies.
func (o Options) Placement(img models.Image) (scale float64, rows int) {
	scale = 1.0
	if !img.HasSize() {
		return scale, o.FallbackImageRows
	}
	w, h := *img.Width, *img.Height
	if w > o.MaxImageWidth {
		scale = float64(o.MaxImageWidth) / float64(w)
	}
	rows = int(math.Ceil(float64(h)*scale/o.RowHeightPx)) + 2
	return scale, rows
}

// writeImages stacks a numbered label and the picture below it for each
// image, advancing far enough that pictures do not overlap.
func (wb *workbook) writeImages(sheet string, images []models.Image) error {
	if err := wb.addSheet(sheet); err != nil {
		return fmt.Errorf("create sheet %s: %w", sheet, err)
	}

	row := 0
	for idx, img := range images {
		labelCell, _ := excelize.CoordinatesToCellName(1, row+1)
		if err := wb.file.SetCellValue(sheet, labelCell, fmt.Sprintf("%d. %s", idx+1, img.Name)); err != nil {
			return err
		}

		scale, advance := wb.opts.Placement(img)
		picCell, _ := excelize.CoordinatesToCellName(1, row+2)
		err := wb.file.AddPictureFromBytes(sheet, picCell, &excelize.Picture{
			Extension: img.Extension(),
			File:      img.Data,
			Format: &excelize.GraphicOptions{
				AltText: img.Name,
				ScaleX:  scale,
				ScaleY:  scale,
			},
		})
		if err != nil {
			wb.log.WithError(err).WithField("image", img.Name).Warn("picture not embedded, listing name only")
		}

		row += advance
	}
	return nil
}
