// Package models defines data structures for DOCX extraction.
package models

// Table represents a Word table normalized for spreadsheet output.
type Table struct {
	// Header holds the column labels when the first row was promoted.
	Header []string `json:"header,omitempty"`
	// HasHeader reports whether the first row was promoted to Header.
	HasHeader bool `json:"has_header"`
	// Rows contains the data rows, all padded to the same width.
	Rows [][]string `json:"rows"`
}

// Width returns the number of columns in the table.
func (t Table) Width() int {
	if t.HasHeader {
		return len(t.Header)
	}
	w := 0
	for _, row := range t.Rows {
		if len(row) > w {
			w = len(row)
		}
	}
	return w
}

// Labels returns the header cell values: the promoted names, or the
// zero-based column positions for tables without a header.
func (t Table) Labels() []interface{} {
	n := t.Width()
	labels := make([]interface{}, n)
	for i := 0; i < n; i++ {
		if t.HasHeader {
			labels[i] = t.Header[i]
		} else {
			labels[i] = i
		}
	}
	return labels
}
