package parser

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// ExtractParagraphs reads every w:p of word/document.xml, including the
// ones nested in tables and text boxes, and returns their trimmed text.
// Empty lines are dropped and consecutive duplicates collapsed.
func ExtractParagraphs(docxPath string) ([]string, error) {
	r, err := zip.OpenReader(docxPath)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	data, err := readZipFile(&r.Reader, documentPart)
	if err != nil {
		return nil, err
	}

	lines, err := parseParagraphXML(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", documentPart, err)
	}
	return DedupConsecutive(lines), nil
}

// parseParagraphXML collects the text of each paragraph in start-tag order.
// A paragraph's text includes the text of any paragraph nested inside it.
func parseParagraphXML(data []byte) ([]string, error) {
	decoder := xml.NewDecoder(bytes.NewReader(data))

	var paras []*strings.Builder
	var open []int
	inText := 0

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := token.(type) {
		case xml.StartElement:
			if t.Name.Space != nsW {
				continue
			}
			switch t.Name.Local {
			case "p":
				paras = append(paras, &strings.Builder{})
				open = append(open, len(paras)-1)
			case "t":
				inText++
			}
		case xml.EndElement:
			if t.Name.Space != nsW {
				continue
			}
			switch t.Name.Local {
			case "p":
				if len(open) > 0 {
					open = open[:len(open)-1]
				}
			case "t":
				if inText > 0 {
					inText--
				}
			}
		case xml.CharData:
			if inText == 0 {
				continue
			}
			for _, idx := range open {
				paras[idx].Write(t)
			}
		}
	}

	var lines []string
	for _, b := range paras {
		if line := strings.TrimSpace(b.String()); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, nil
}

// DedupConsecutive drops lines equal to the line immediately before them.
func DedupConsecutive(lines []string) []string {
	var cleaned []string
	prev := ""
	for i, line := range lines {
		if i > 0 && line == prev {
			continue
		}
		cleaned = append(cleaned, line)
		prev = line
	}
	return cleaned
}
