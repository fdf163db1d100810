package parser

import (
	"archive/zip"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
)

// XML namespaces used in WordprocessingML
const (
	nsW  = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	nsWP = "http://schemas.openxmlformats.org/drawingml/2006/wordprocessingDrawing"
	nsR  = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
)

// Well-known package parts.
const (
	documentPart     = "word/document.xml"
	documentRelsPart = "word/_rels/document.xml.rels"
	mediaPrefix      = "word/media/"
)

// ErrPartNotFound indicates a required member is missing from the archive.
var ErrPartNotFound = errors.New("package part not found")

func readZipFile(r *zip.Reader, name string) ([]byte, error) {
	for _, f := range r.File {
		if f.Name == name {
			return readZipEntry(f)
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrPartNotFound, name)
}

func readZipEntry(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

// resolveRelativePath turns a relationship target into a package part name.
// Targets are relative to baseDir unless they start with "/", which anchors
// them at the package root.
func resolveRelativePath(target, baseDir string) string {
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(path.Clean(target), "/")
	}
	return path.Clean(path.Join(baseDir, target))
}

func attrValue(se xml.StartElement, space, local string) string {
	for _, attr := range se.Attr {
		if attr.Name.Local != local {
			continue
		}
		if space == "" || attr.Name.Space == space {
			return attr.Value
		}
	}
	return ""
}
