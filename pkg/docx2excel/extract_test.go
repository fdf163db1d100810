package docx2excel

import (
	"archive/zip"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/xuri/excelize/v2"
)

const documentXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>
<w:p><w:r><w:t>Informe</w:t></w:r></w:p>
<w:tbl><w:tr><w:tc><w:p><w:r><w:t>Mes</w:t></w:r></w:p></w:tc><w:tc><w:p><w:r><w:t>Total</w:t></w:r></w:p></w:tc></w:tr>
<w:tr><w:tc><w:p><w:r><w:t>Enero</w:t></w:r></w:p></w:tc><w:tc><w:p><w:r><w:t>10</w:t></w:r></w:p></w:tc></w:tr></w:tbl>
<w:p><w:r><w:t>Fin</w:t></w:r></w:p>
</w:body></w:document>`

const documentRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"></Relationships>`

const contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`

func writeTestDocx(t *testing.T, dir string, members map[string]string) string {
	t.Helper()
	p := filepath.Join(dir, "informe.docx")
	f, err := os.Create(p)
	if err != nil {
		t.Fatalf("Failed to create docx: %v", err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	for name, body := range members {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("Failed to add %s: %v", name, err)
		}
		if _, err := w.Write([]byte(body)); err != nil {
			t.Fatalf("Failed to write %s: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("Failed to close archive: %v", err)
	}
	return p
}

func TestExtractMissingFile(t *testing.T) {
	_, err := Extract(filepath.Join(t.TempDir(), "missing.docx"), DefaultOptions())
	if !errors.Is(err, ErrFileNotFound) {
		t.Errorf("Expected ErrFileNotFound, got %v", err)
	}
}

func TestExtractParagraphFailure(t *testing.T) {
	path := writeTestDocx(t, t.TempDir(), map[string]string{"word/other.xml": "<x/>"})

	_, err := Extract(path, DefaultOptions())
	var extErr *ExtractionError
	if !errors.As(err, &extErr) {
		t.Fatalf("Expected ExtractionError, got %v", err)
	}
	if extErr.Component != "paragraphs" {
		t.Errorf("Component = %q, expected %q", extErr.Component, "paragraphs")
	}
}

func TestConvert(t *testing.T) {
	dir := t.TempDir()
	path := writeTestDocx(t, dir, map[string]string{
		"[Content_Types].xml":          contentTypesXML,
		"word/_rels/document.xml.rels": documentRelsXML,
		"word/document.xml":            documentXML,
	})

	written, err := Convert(path, "", DefaultOptions())
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}
	if expected := filepath.Join(dir, "informe.xlsx"); written != expected {
		t.Errorf("Convert() wrote %q, expected %q", written, expected)
	}

	f, err := excelize.OpenFile(written)
	if err != nil {
		t.Fatalf("Failed to open workbook: %v", err)
	}
	defer f.Close()

	if got, expected := f.GetSheetList(), []string{"Tabla1", "Texto"}; !reflect.DeepEqual(got, expected) {
		t.Errorf("GetSheetList() = %q, expected %q", got, expected)
	}

	rows, err := f.GetRows("Texto")
	if err != nil {
		t.Fatalf("GetRows failed: %v", err)
	}
	expected := [][]string{{"Texto"}, {"Informe"}, {"Mes"}, {"Total"}, {"Enero"}, {"10"}, {"Fin"}}
	if !reflect.DeepEqual(rows, expected) {
		t.Errorf("Texto rows = %q, expected %q", rows, expected)
	}
}

func TestDefaultOutputPath(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"a.docx", "a.xlsx"},
		{"dir/b.DOCX", "dir/b.xlsx"},
		{"noext", "noext.xlsx"},
	}

	for _, tt := range tests {
		if got := DefaultOutputPath(tt.in); got != tt.expected {
			t.Errorf("DefaultOutputPath(%q) = %q, expected %q", tt.in, got, tt.expected)
		}
	}
}
