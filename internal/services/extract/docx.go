package extract

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

const documentPart = "word/document.xml"

var ErrMissingDocumentPart = errors.New("docx: missing " + documentPart)

// DOCX extracts paragraph text from word/document.xml, one line per paragraph.
// Tabs and line breaks inside a paragraph are kept.
type DOCX struct{}

func (DOCX) Extract(data []byte) (string, error) {
	const op = "extract.DOCX"

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	var part *zip.File
	for _, f := range zr.File {
		if f.Name == documentPart {
			part = f
			break
		}
	}
	if part == nil {
		return "", fmt.Errorf("%s: %w", op, ErrMissingDocumentPart)
	}

	rc, err := part.Open()
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	defer rc.Close()

	text, err := paragraphs(rc)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return text, nil
}

func paragraphs(r io.Reader) (string, error) {
	dec := xml.NewDecoder(r)

	var sb strings.Builder
	inText := false
	// tab and break elements also appear in paragraph properties; only
	// those inside a run are content
	runDepth := 0
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "r":
				runDepth++
			case "t":
				inText = true
			case "tab":
				if runDepth > 0 {
					sb.WriteString("\t")
				}
			case "br", "cr":
				if runDepth > 0 {
					sb.WriteString("\n")
				}
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "r":
				runDepth--
			case "t":
				inText = false
			case "p":
				sb.WriteString("\n")
			}
		case xml.CharData:
			if inText {
				sb.Write(t)
			}
		}
	}
	return sb.String(), nil
}
