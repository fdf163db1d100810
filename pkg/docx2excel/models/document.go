package models

// Document is everything pulled out of a single DOCX file.
type Document struct {
	// SourceName is the input file name (no path).
	SourceName string `json:"source_name"`
	// Tables holds the body tables in document order.
	Tables []Table `json:"tables,omitempty"`
	// Paragraphs holds text lines with consecutive duplicates removed.
	Paragraphs []string `json:"paragraphs,omitempty"`
	// Images holds embedded pictures sorted by archive member name.
	Images []Image `json:"images,omitempty"`
}

// IsEmpty reports whether nothing was extracted.
func (d *Document) IsEmpty() bool {
	return len(d.Tables) == 0 && len(d.Paragraphs) == 0 && len(d.Images) == 0
}
