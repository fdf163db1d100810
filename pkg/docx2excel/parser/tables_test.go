package parser

import (
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"testing"
)

func TestIsHeaderRow(t *testing.T) {
	tests := []struct {
		row      []string
		expected bool
	}{
		{[]string{"A", "B", "C", "D"}, true},
		{[]string{"A", "B", "", ""}, true},  // 2 of 4 meets floor(4*0.5)
		{[]string{"A", "", "", ""}, false},  // 1 of 4
		{[]string{"A", "", ""}, true},       // floor(1.5) = 1
		{[]string{"A"}, true},               // minimum of one
		{[]string{""}, false},
		{[]string{"", "", ""}, false},
	}

	for _, tt := range tests {
		result := isHeaderRow(tt.row)
		if result != tt.expected {
			t.Errorf("isHeaderRow(%q) = %v, expected %v", tt.row, result, tt.expected)
		}
	}
}

func TestNormalizeTable(t *testing.T) {
	tests := []struct {
		name      string
		rows      [][]string
		hasHeader bool
		header    []string
		expected  [][]string
	}{
		{
			name:      "header promoted",
			rows:      [][]string{{"Nombre", "Edad"}, {"Ana", "30"}, {"Luis", "41"}},
			hasHeader: true,
			header:    []string{"Nombre", "Edad"},
			expected:  [][]string{{"Ana", "30"}, {"Luis", "41"}},
		},
		{
			name:      "sparse first row stays data",
			rows:      [][]string{{"x", "", "", ""}, {"1", "2", "3", "4"}},
			hasHeader: false,
			expected:  [][]string{{"x", "2", "3", "4"}, {"1", "2", "3", "4"}},
		},
		{
			name:      "ragged rows padded",
			rows:      [][]string{{"A", "B", "C"}, {"1"}, {"2", "3"}},
			hasHeader: true,
			header:    []string{"A", "B", "C"},
			expected:  [][]string{{"1", "3", ""}, {"2", "3", ""}},
		},
		{
			name:      "blanks filled down then up",
			rows:      [][]string{{"K", "V"}, {"", "1"}, {"a", ""}, {"", "2"}},
			hasHeader: true,
			header:    []string{"K", "V"},
			expected:  [][]string{{"a", "1"}, {"a", "1"}, {"a", "2"}},
		},
		{
			name:      "cells trimmed",
			rows:      [][]string{{" A ", "B"}, {" 1", "2 "}},
			hasHeader: true,
			header:    []string{"A", "B"},
			expected:  [][]string{{"1", "2"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, ok := NormalizeTable(tt.rows)
			if !ok {
				t.Fatal("NormalizeTable returned false")
			}
			if table.HasHeader != tt.hasHeader {
				t.Errorf("HasHeader = %v, expected %v", table.HasHeader, tt.hasHeader)
			}
			if !reflect.DeepEqual(table.Header, tt.header) {
				t.Errorf("Header = %q, expected %q", table.Header, tt.header)
			}
			if !reflect.DeepEqual(table.Rows, tt.expected) {
				t.Errorf("Rows = %q, expected %q", table.Rows, tt.expected)
			}
		})
	}
}

func TestNormalizeTableEmpty(t *testing.T) {
	if _, ok := NormalizeTable(nil); ok {
		t.Error("Expected false for a table with no rows")
	}
}

func tableXML(rows ...[]string) string {
	cells := make([][]string, len(rows))
	for i, row := range rows {
		for _, text := range row {
			cells[i] = append(cells[i], cellXML(1, para(text)))
		}
	}
	return rawTableXML(cells...)
}

// rawTableXML builds a table from ready-made w:tc elements.
func rawTableXML(rows ...[]string) string {
	s := `<w:tbl><w:tblPr><w:tblW w:w="0" w:type="auto"/></w:tblPr>`
	for _, row := range rows {
		s += `<w:tr>` + strings.Join(row, "") + `</w:tr>`
	}
	return s + `</w:tbl>`
}

func cellXML(span int, content string) string {
	props := `<w:tcW w:w="2000" w:type="dxa"/>`
	if span > 1 {
		props += `<w:gridSpan w:val="` + strconv.Itoa(span) + `"/>`
	}
	return `<w:tc><w:tcPr>` + props + `</w:tcPr>` + content + `</w:tc>`
}

const hyperlinkRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId5" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/image" Target="media/image1.png"/>
<Relationship Id="rId9" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/hyperlink" Target="mailto:ana@example.com" TargetMode="External"/>
</Relationships>`

func TestExtractTables(t *testing.T) {
	body := para("Intro") +
		tableXML([]string{"Producto", "Precio"}, []string{"Pan", "1.20"}) +
		para("Entre tablas") +
		tableXML([]string{"x", ""}, []string{"1", "2"}) +
		`<w:sectPr/>`
	path := writeDocx(t, body, nil)

	tables, err := ExtractTables(path)
	if err != nil {
		t.Fatalf("ExtractTables failed: %v", err)
	}
	if len(tables) != 2 {
		t.Fatalf("Expected 2 tables, got %d", len(tables))
	}

	if !tables[0].HasHeader {
		t.Error("Expected first table to have a header")
	}
	if !reflect.DeepEqual(tables[0].Header, []string{"Producto", "Precio"}) {
		t.Errorf("Header = %q", tables[0].Header)
	}
	if !reflect.DeepEqual(tables[0].Rows, [][]string{{"Pan", "1.20"}}) {
		t.Errorf("Rows = %q", tables[0].Rows)
	}

	// One of two cells filled meets the threshold.
	if !tables[1].HasHeader {
		t.Error("Expected second table to have a header")
	}
}

func TestExtractTablesMergedColumns(t *testing.T) {
	body := rawTableXML(
		[]string{cellXML(1, para("Nombre")), cellXML(1, para("Correo")), cellXML(1, para("Total"))},
		[]string{cellXML(1, para("Ana")), cellXML(1, para("ana@example.com")), cellXML(1, para("10"))},
		[]string{cellXML(2, para("Enero")), cellXML(1, para("20"))},
	) + `<w:sectPr/>`
	path := writeDocx(t, body, nil)

	tables, err := ExtractTables(path)
	if err != nil {
		t.Fatalf("ExtractTables failed: %v", err)
	}
	if len(tables) != 1 {
		t.Fatalf("Expected 1 table, got %d", len(tables))
	}

	expected := [][]string{
		{"Ana", "ana@example.com", "10"},
		{"Enero", "Enero", "20"},
	}
	if !reflect.DeepEqual(tables[0].Rows, expected) {
		t.Errorf("Rows = %q, expected %q", tables[0].Rows, expected)
	}
}

func TestExtractTablesCellText(t *testing.T) {
	hyperlink := `<w:p><w:hyperlink r:id="rId9"><w:r><w:t>ana@example.com</w:t></w:r></w:hyperlink></w:p>`
	picture := `<w:p><w:r><w:t xml:space="preserve">Logo </w:t></w:r><w:r><w:drawing>` +
		`<wp:inline distT="0" distB="0" distL="0" distR="0"><wp:extent cx="952500" cy="952500"/>` +
		`<wp:docPr id="1" name="Picture 1"/>` +
		`<a:graphic><a:graphicData uri="http://schemas.openxmlformats.org/drawingml/2006/picture">` +
		`<pic:pic><pic:nvPicPr><pic:cNvPr id="0" name="image1.png"/><pic:cNvPicPr/></pic:nvPicPr>` +
		`<pic:blipFill><a:blip r:embed="rId5"/><a:stretch><a:fillRect/></a:stretch></pic:blipFill>` +
		`<pic:spPr><a:xfrm><a:off x="0" y="0"/><a:ext cx="952500" cy="952500"/></a:xfrm>` +
		`<a:prstGeom prst="rect"><a:avLst/></a:prstGeom></pic:spPr></pic:pic>` +
		`</a:graphicData></a:graphic></wp:inline></w:drawing></w:r><w:r><w:t>SA</w:t></w:r></w:p>`
	tabbed := `<w:p><w:r><w:t>uno</w:t><w:tab/><w:t>dos</w:t><w:br/><w:t>tres</w:t></w:r></w:p>`

	body := rawTableXML(
		[]string{cellXML(1, para("Contacto")), cellXML(1, para("Empresa")), cellXML(1, para("Notas"))},
		[]string{cellXML(1, hyperlink), cellXML(1, picture), cellXML(1, tabbed)},
	) + `<w:sectPr/>`
	path := writeDocx(t, body, map[string][]byte{
		"word/_rels/document.xml.rels": []byte(hyperlinkRelsXML),
		"word/media/image1.png":        encodePNG(t, 100, 100),
	})

	tables, err := ExtractTables(path)
	if err != nil {
		t.Fatalf("ExtractTables failed: %v", err)
	}
	if len(tables) != 1 || len(tables[0].Rows) != 1 {
		t.Fatalf("Expected 1 table with 1 row, got %+v", tables)
	}

	expected := []string{"ana@example.com", "Logo SA", "uno\tdos\ntres"}
	if !reflect.DeepEqual(tables[0].Rows[0], expected) {
		t.Errorf("Row = %q, expected %q", tables[0].Rows[0], expected)
	}
}

func TestExtractTablesNotADocx(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plain.docx")
	if err := os.WriteFile(path, []byte("not a zip archive"), 0o644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	if _, err := ExtractTables(path); err == nil {
		t.Error("Expected error for archive without a document part")
	}
}
