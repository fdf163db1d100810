package writer

import (
	"strconv"

	"github.com/inalma/officeconv/pkg/docx2excel/models"
)

// grid is a header row plus data rows, ready to be written to a sheet.
type grid struct {
	labels []interface{}
	rows   [][]string
}

func gridFromTable(t models.Table) grid {
	return grid{labels: t.Labels(), rows: t.Rows}
}

// combine stacks tables into one grid. Columns are matched by header name
// for tables with a header and by position otherwise; the result has the
// union of all columns in order of first appearance.
func combine(tables []models.Table) grid {
	var out grid
	index := make(map[string]int)

	for _, t := range tables {
		keys := columnKeys(t)
		cols := make([]int, len(keys))
		for i, key := range keys {
			pos, ok := index[key]
			if !ok {
				pos = len(out.labels)
				index[key] = pos
				out.labels = append(out.labels, t.Labels()[i])
			}
			cols[i] = pos
		}

		for _, row := range t.Rows {
			merged := make([]string, len(out.labels))
			for i, cell := range row {
				if i < len(cols) {
					merged[cols[i]] = cell
				}
			}
			out.rows = append(out.rows, merged)
		}
	}

	// Earlier rows are shorter when later tables added columns.
	for i, row := range out.rows {
		if len(row) < len(out.labels) {
			padded := make([]string, len(out.labels))
			copy(padded, row)
			out.rows[i] = padded
		}
	}

	return out
}

// columnKeys identifies each column of t for matching across tables.
// Repeated header names are told apart by their occurrence count.
func columnKeys(t models.Table) []string {
	n := t.Width()
	keys := make([]string, n)
	seen := make(map[string]int)
	for i := 0; i < n; i++ {
		if !t.HasHeader {
			keys[i] = "p:" + strconv.Itoa(i)
			continue
		}
		name := t.Header[i]
		keys[i] = "h:" + name + "#" + strconv.Itoa(seen[name])
		seen[name]++
	}
	return keys
}
