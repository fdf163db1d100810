// Package pdfread reads the text layer and embedded pictures of PDF pages.
package pdfread

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/ledongthuc/pdf"
)

// Line is one row of text on a page.
type Line struct {
	Text string
	// FontSize is the largest font size seen on the row, 0 if unknown.
	FontSize float64
}

// CountAlnum counts Unicode letters and numbers in s.
func CountAlnum(s string) int {
	n := 0
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			n++
		}
	}
	return n
}

// AlnumCount returns the number of letters and numbers in the text layer
// of the whole document. Counting stops once limit is reached when limit
// is positive.
func AlnumCount(path string, limit int) (int, error) {
	total := 0
	err := eachPage(path, func(_ int, p pdf.Page, fonts map[string]*pdf.Font) bool {
		total += CountAlnum(plainText(p, fonts))
		return limit <= 0 || total < limit
	})
	return total, err
}

// HasRealText reports whether the document carries at least minChars
// letters and numbers in its text layer.
func HasRealText(path string, minChars int) (bool, error) {
	n, err := AlnumCount(path, minChars)
	if err != nil {
		return false, err
	}
	return n >= minChars, nil
}

// PageLines returns the text rows of every page, top to bottom.
func PageLines(path string) ([][]Line, error) {
	var pages [][]Line
	err := eachPage(path, func(_ int, p pdf.Page, fonts map[string]*pdf.Font) bool {
		lines, err := rowLines(p)
		if err != nil || len(lines) == 0 {
			lines = TextLines(plainText(p, fonts))
		}
		pages = append(pages, lines)
		return true
	})
	return pages, err
}

// eachPage calls fn for pages 1..N until fn returns false.
func eachPage(path string, fn func(num int, p pdf.Page, fonts map[string]*pdf.Font) bool) error {
	f, r, err := pdf.Open(path)
	if err != nil {
		return fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	fonts := make(map[string]*pdf.Font)
	for i := 1; i <= r.NumPage(); i++ {
		if !fn(i, r.Page(i), fonts) {
			break
		}
	}
	return nil
}

func plainText(p pdf.Page, fonts map[string]*pdf.Font) (text string) {
	if p.V.IsNull() {
		return ""
	}
	defer func() {
		if recover() != nil {
			text = ""
		}
	}()
	for _, name := range p.Fonts() {
		if _, ok := fonts[name]; !ok {
			font := p.Font(name)
			fonts[name] = &font
		}
	}
	text, err := p.GetPlainText(fonts)
	if err != nil {
		return ""
	}
	return text
}

func rowLines(p pdf.Page) (lines []Line, err error) {
	if p.V.IsNull() {
		return nil, nil
	}
	defer func() {
		if r := recover(); r != nil {
			lines, err = nil, fmt.Errorf("read rows: %v", r)
		}
	}()

	rows, err := p.GetTextByRow()
	if err != nil {
		return nil, err
	}
	// PDF y grows upwards.
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Position > rows[j].Position })

	for _, row := range rows {
		if line, ok := joinRow(row.Content); ok {
			lines = append(lines, line)
		}
	}
	return lines, nil
}

// joinRow concatenates the glyph runs of a row left to right, inserting a
// space where the horizontal gap is wider than a quarter of the font size.
func joinRow(content pdf.TextHorizontal) (Line, bool) {
	texts := append(pdf.TextHorizontal(nil), content...)
	sort.SliceStable(texts, func(i, j int) bool { return texts[i].X < texts[j].X })

	var b strings.Builder
	var line Line
	for i, t := range texts {
		if i > 0 {
			prev := texts[i-1]
			gap := t.X - (prev.X + prev.W)
			if gap > 0.25*maxFloat(t.FontSize, 1) && !strings.HasSuffix(prev.S, " ") && !strings.HasPrefix(t.S, " ") {
				b.WriteByte(' ')
			}
		}
		b.WriteString(t.S)
		line.FontSize = maxFloat(line.FontSize, t.FontSize)
	}

	line.Text = strings.TrimSpace(b.String())
	return line, line.Text != ""
}

// TextLines splits text into trimmed, non-empty lines of unknown size.
func TextLines(text string) []Line {
	var lines []Line
	for _, s := range strings.Split(text, "\n") {
		if s = strings.TrimSpace(s); s != "" {
			lines = append(lines, Line{Text: s})
		}
	}
	return lines
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
