package parser

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"strconv"
	"strings"
)

// DrawingExtents maps each media part placed in the document body to the
// size it is displayed at. The first placement of a picture wins.
func DrawingExtents(docxPath string) (map[string]Size, error) {
	r, err := zip.OpenReader(docxPath)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return drawingExtents(&r.Reader)
}

func drawingExtents(r *zip.Reader) (map[string]Size, error) {
	result := make(map[string]Size)

	relsXML, err := readZipFile(r, documentRelsPart)
	if err != nil {
		return result, nil
	}
	targets := parseImageRels(relsXML)
	if len(targets) == 0 {
		return result, nil
	}

	docXML, err := readZipFile(r, documentPart)
	if err != nil {
		return nil, err
	}

	decoder := xml.NewDecoder(bytes.NewReader(docXML))
	var current Size
	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		se, ok := token.(xml.StartElement)
		if !ok {
			continue
		}

		switch {
		case se.Name.Space == nsWP && (se.Name.Local == "inline" || se.Name.Local == "anchor"):
			current = Size{}
		case se.Name.Space == nsWP && se.Name.Local == "extent":
			current = parseExtent(se)
		case se.Name.Local == "blip":
			part, ok := targets[attrValue(se, nsR, "embed")]
			if !ok || !current.Valid() {
				continue
			}
			if _, seen := result[part]; !seen {
				result[part] = current
			}
		}
	}

	return result, nil
}

// parseImageRels returns relationship id -> part name for image relationships.
func parseImageRels(data []byte) map[string]string {
	result := make(map[string]string)
	decoder := xml.NewDecoder(bytes.NewReader(data))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		se, ok := token.(xml.StartElement)
		if !ok || se.Name.Local != "Relationship" {
			continue
		}
		if attrValue(se, "", "TargetMode") == "External" {
			continue
		}
		id := attrValue(se, "", "Id")
		target := attrValue(se, "", "Target")
		if id == "" || target == "" {
			continue
		}
		if part := resolveRelativePath(target, "word"); strings.HasPrefix(part, mediaPrefix) {
			result[id] = part
		}
	}

	return result
}

func parseExtent(se xml.StartElement) Size {
	var s Size
	if cx, err := strconv.ParseInt(attrValue(se, "", "cx"), 10, 64); err == nil {
		s.W = EMUToPixels(cx)
	}
	if cy, err := strconv.ParseInt(attrValue(se, "", "cy"), 10, 64); err == nil {
		s.H = EMUToPixels(cy)
	}
	return s
}
