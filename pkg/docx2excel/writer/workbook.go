package writer

import (
	"fmt"

	"github.com/inalma/officeconv/internal/logging"
	"github.com/inalma/officeconv/pkg/docx2excel/models"
	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

// Write saves doc as an XLSX workbook at outPath.
//
// Sheets are written in a fixed order: one per table, the combined sheet
// (more than one table and IncludeCombined), the text sheet (or a message
// sheet when nothing at all was extracted), then the image sheet.
func Write(doc *models.Document, outPath string, opts Options) error {
	opts.defaults()

	f := excelize.NewFile()
	defer f.Close()

	wb := &workbook{
		file: f,
		opts: opts,
		log:  logging.OrDiscard(opts.Logger),
	}

	for i, t := range doc.Tables {
		if err := wb.writeGrid(fmt.Sprintf(TableSheetFormat, i+1), gridFromTable(t)); err != nil {
			return err
		}
	}

	if opts.IncludeCombined && len(doc.Tables) > 1 {
		if err := wb.writeGrid(CombinedSheet, combine(doc.Tables)); err != nil {
			return err
		}
	}

	if len(doc.Paragraphs) > 0 {
		if err := wb.writeGrid(TextSheet, singleColumn(TextHeader, doc.Paragraphs)); err != nil {
			return err
		}
	} else if doc.IsEmpty() {
		if err := wb.writeGrid(MessageSheet, singleColumn(MessageHeader, []string{EmptyMessage})); err != nil {
			return err
		}
	}

	if len(doc.Images) > 0 {
		if err := wb.writeImages(ImageSheet, doc.Images); err != nil {
			return err
		}
	}

	f.SetActiveSheet(0)
	if err := f.SaveAs(outPath); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

type workbook struct {
	file        *excelize.File
	opts        Options
	log         logrus.FieldLogger
	started     bool
	headerStyle int
}

// addSheet creates a sheet, reusing the default one for the first call.
func (wb *workbook) addSheet(name string) error {
	if !wb.started {
		wb.started = true
		return wb.file.SetSheetName(wb.file.GetSheetName(0), name)
	}
	_, err := wb.file.NewSheet(name)
	return err
}

func (wb *workbook) writeGrid(sheet string, g grid) error {
	if err := wb.addSheet(sheet); err != nil {
		return fmt.Errorf("create sheet %s: %w", sheet, err)
	}
	if len(g.labels) == 0 {
		return nil
	}

	if err := wb.file.SetSheetRow(sheet, "A1", &g.labels); err != nil {
		return err
	}
	if err := wb.styleHeader(sheet, len(g.labels)); err != nil {
		return err
	}

	for i, row := range g.rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := make([]interface{}, len(row))
		for j, v := range row {
			if v != "" {
				values[j] = v
			}
		}
		if err := wb.file.SetSheetRow(sheet, cell, &values); err != nil {
			return err
		}
	}
	return nil
}

// styleHeader makes the first row bold, bordered and centred.
func (wb *workbook) styleHeader(sheet string, cols int) error {
	if wb.headerStyle == 0 {
		border := func(side string) excelize.Border {
			return excelize.Border{Type: side, Color: "000000", Style: 1}
		}
		id, err := wb.file.NewStyle(&excelize.Style{
			Font:      &excelize.Font{Bold: true},
			Border:    []excelize.Border{border("left"), border("top"), border("right"), border("bottom")},
			Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "top"},
		})
		if err != nil {
			return err
		}
		wb.headerStyle = id
	}
	end, err := excelize.CoordinatesToCellName(cols, 1)
	if err != nil {
		return err
	}
	return wb.file.SetCellStyle(sheet, "A1", end, wb.headerStyle)
}

func singleColumn(header string, lines []string) grid {
	rows := make([][]string, len(lines))
	for i, line := range lines {
		rows[i] = []string{line}
	}
	return grid{labels: []interface{}{header}, rows: rows}
}
