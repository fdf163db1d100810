package parser

import (
	"fmt"
	"os"
	"strings"

	"github.com/fumiama/go-docx"
	"github.com/inalma/officeconv/pkg/docx2excel/models"
)

// HeaderFillRatio is the share of non-empty cells the first row needs
// before it is promoted to a header.
const HeaderFillRatio = 0.5

// ExtractTables reads the top-level body tables through the DOCX object
// model. Callers treat an error as "no tables" rather than a failure.
func ExtractTables(docxPath string) (tables []models.Table, err error) {
	f, err := os.Open(docxPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}

	// go-docx panics on some unexpected body layouts.
	defer func() {
		if r := recover(); r != nil {
			tables = nil
			err = fmt.Errorf("document model: %v", r)
		}
	}()

	doc, err := docx.Parse(f, info.Size())
	if err != nil {
		return nil, fmt.Errorf("document model: %w", err)
	}

	for _, item := range doc.Document.Body.Items {
		tbl, ok := item.(*docx.Table)
		if !ok {
			continue
		}
		if t, ok := NormalizeTable(tableCells(tbl)); ok {
			tables = append(tables, t)
		}
	}

	return tables, nil
}

// tableCells returns the trimmed text of every grid column, row by row.
// A cell spanning several columns repeats its text in each of them.
func tableCells(tbl *docx.Table) [][]string {
	rows := make([][]string, 0, len(tbl.TableRows))
	for _, tr := range tbl.TableRows {
		if tr == nil {
			continue
		}
		row := make([]string, 0, len(tr.TableCells))
		for _, tc := range tr.TableCells {
			text := cellText(tc)
			for i := 0; i < gridSpan(tc); i++ {
				row = append(row, text)
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// gridSpan returns the number of grid columns a cell covers.
func gridSpan(tc *docx.WTableCell) int {
	if tc == nil || tc.TableCellProperties == nil || tc.TableCellProperties.GridSpan == nil {
		return 1
	}
	if span := int(tc.TableCellProperties.GridSpan.Val); span > 1 {
		return span
	}
	return 1
}

// cellText joins the plain text of the paragraphs of a cell with newlines.
func cellText(tc *docx.WTableCell) string {
	if tc == nil {
		return ""
	}
	parts := make([]string, 0, len(tc.Paragraphs))
	for _, p := range tc.Paragraphs {
		if p == nil {
			continue
		}
		parts = append(parts, paragraphText(p))
	}
	return strings.TrimSpace(strings.Join(parts, "\n"))
}

// paragraphText returns the visible text of a paragraph: run text, tabs,
// line breaks and hyperlink text. Drawings and field codes are skipped.
func paragraphText(p *docx.Paragraph) string {
	var b strings.Builder
	for _, child := range p.Children {
		switch c := child.(type) {
		case *docx.Run:
			writeRunText(&b, c)
		case *docx.Hyperlink:
			writeRunText(&b, &c.Run)
		}
	}
	return b.String()
}

func writeRunText(b *strings.Builder, r *docx.Run) {
	if r == nil {
		return
	}
	for _, child := range r.Children {
		switch c := child.(type) {
		case *docx.Text:
			b.WriteString(c.Text)
		case *docx.Tab:
			b.WriteByte('\t')
		case *docx.BarterRabbet:
			b.WriteByte('\n')
		}
	}
}

// NormalizeTable pads rows to the widest row, promotes the first row to a
// header when it is filled enough, and fills blank cells down then up each
// column. It returns false for a table with no rows.
func NormalizeTable(rows [][]string) (models.Table, bool) {
	if len(rows) == 0 {
		return models.Table{}, false
	}

	maxCols := 0
	for _, row := range rows {
		if len(row) > maxCols {
			maxCols = len(row)
		}
	}

	padded := make([][]string, len(rows))
	for i, row := range rows {
		p := make([]string, maxCols)
		for j, cell := range row {
			p[j] = strings.TrimSpace(cell)
		}
		padded[i] = p
	}

	var table models.Table
	if isHeaderRow(padded[0]) {
		table.Header = padded[0]
		table.HasHeader = true
		table.Rows = padded[1:]
	} else {
		table.Rows = padded
	}
	fillColumns(table.Rows, maxCols)

	return table, true
}

// isHeaderRow reports whether at least max(1, floor(n*HeaderFillRatio))
// cells of the row are non-empty.
func isHeaderRow(row []string) bool {
	filled := 0
	for _, cell := range row {
		if cell != "" {
			filled++
		}
	}
	need := int(float64(len(row)) * HeaderFillRatio)
	if need < 1 {
		need = 1
	}
	return filled >= need
}

// fillColumns replaces blank cells with the nearest value above them, and
// blanks left at the top of a column with the nearest value below.
func fillColumns(rows [][]string, cols int) {
	for c := 0; c < cols; c++ {
		last := ""
		for r := range rows {
			if rows[r][c] == "" {
				rows[r][c] = last
			} else {
				last = rows[r][c]
			}
		}
		next := ""
		for r := len(rows) - 1; r >= 0; r-- {
			if rows[r][c] == "" {
				rows[r][c] = next
			} else {
				next = rows[r][c]
			}
		}
	}
}
