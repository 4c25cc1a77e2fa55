package extract

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

var ErrMalformed = errors.New("malformed document")

// PDF extracts the text layer page by page, one newline after each non-empty page.
type PDF struct{}

func (PDF) Extract(data []byte) (text string, err error) {
	const op = "extract.PDF"

	// the reader panics on broken object references
	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("%s: %w: %v", op, ErrMalformed, r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	var sb strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("%s: page %d: %w", op, i, err)
		}
		if pageText != "" {
			sb.WriteString(pageText)
			sb.WriteString("\n")
		}
	}
	return sb.String(), nil
}
