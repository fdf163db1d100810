package parser

import (
	"archive/zip"
	"os"
	"path/filepath"
	"sort"
	"testing"
)

const contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Default Extension="png" ContentType="image/png"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`

const packageRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

const emptyDocumentRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"></Relationships>`

// wrapBody returns a word/document.xml with body as the content of w:body.
func wrapBody(body string) string {
	return `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"` +
		` xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships"` +
		` xmlns:wp="http://schemas.openxmlformats.org/drawingml/2006/wordprocessingDrawing"` +
		` xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main"` +
		` xmlns:pic="http://schemas.openxmlformats.org/drawingml/2006/picture">` +
		`<w:body>` + body + `</w:body></w:document>`
}

// writeZip writes members to a new archive in a temp dir. Members are
// written in name order.
func writeZip(t *testing.T, name string, members map[string][]byte) string {
	t.Helper()

	p := filepath.Join(t.TempDir(), name)
	f, err := os.Create(p)
	if err != nil {
		t.Fatalf("Failed to create %s: %v", name, err)
	}
	defer f.Close()

	names := make([]string, 0, len(members))
	for n := range members {
		names = append(names, n)
	}
	sort.Strings(names)

	zw := zip.NewWriter(f)
	for _, n := range names {
		w, err := zw.Create(n)
		if err != nil {
			t.Fatalf("Failed to add %s: %v", n, err)
		}
		if _, err := w.Write(members[n]); err != nil {
			t.Fatalf("Failed to write %s: %v", n, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("Failed to close archive: %v", err)
	}
	return p
}

// writeDocx writes a minimal package around body plus any extra members.
func writeDocx(t *testing.T, body string, extra map[string][]byte) string {
	t.Helper()

	members := map[string][]byte{
		"[Content_Types].xml":          []byte(contentTypesXML),
		"_rels/.rels":                  []byte(packageRelsXML),
		"word/_rels/document.xml.rels": []byte(emptyDocumentRelsXML),
		"word/document.xml":            []byte(wrapBody(body)),
	}
	for n, data := range extra {
		members[n] = data
	}
	return writeZip(t, "test.docx", members)
}

func para(text string) string {
	return `<w:p><w:r><w:t xml:space="preserve">` + text + `</w:t></w:r></w:p>`
}
