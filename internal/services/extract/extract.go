package extract

import (
	"errors"
	"fmt"
	"hirelens/internal/services/corpus"
	"path"
	"strings"
)

var ErrUnsupportedFormat = errors.New("unsupported document format")

// Extractor turns the bytes of one document into plain text.
type Extractor interface {
	Extract(data []byte) (string, error)
}

// ExtractorFunc adapts a function to Extractor.
type ExtractorFunc func(data []byte) (string, error)

func (f ExtractorFunc) Extract(data []byte) (string, error) {
	return f(data)
}

// Registry maps a lowercased file extension to its extractor.
type Registry map[string]Extractor

// Default returns the PDF and DOCX extractors.
func Default() Registry {
	return Registry{
		corpus.ExtPDF:  PDF{},
		corpus.ExtDOCX: DOCX{},
	}
}

// For returns the extractor for name's extension.
func (r Registry) For(name string) (Extractor, error) {
	ext := strings.ToLower(path.Ext(name))
	e, ok := r[ext]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	return e, nil
}
