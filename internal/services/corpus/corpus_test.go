package corpus

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func names(entries []Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Name)
	}
	return out
}

func TestSelect(t *testing.T) {
	tests := []struct {
		name    string
		entries []Entry
		want    []string
	}{
		{
			name:    "pdf wins over docx",
			entries: []Entry{{Name: "cv1.docx"}, {Name: "cv1.pdf"}},
			want:    []string{"cv1.pdf"},
		},
		{
			name:    "base name is case folded",
			entries: []Entry{{Name: "CV1.DOCX"}, {Name: "cv1.Pdf"}},
			want:    []string{"cv1.Pdf"},
		},
		{
			name: "pdfs first then by name",
			entries: []Entry{
				{Name: "b.docx"}, {Name: "Zed.pdf"}, {Name: "a.docx"}, {Name: "alpha.PDF"},
			},
			want: []string{"alpha.PDF", "Zed.pdf", "a.docx", "b.docx"},
		},
		{
			name: "directories and other formats ignored",
			entries: []Entry{
				{Name: "cvs/", Dir: true}, {Name: "cvs/readme.txt"}, {Name: "cvs/x.doc"},
				{Name: `win\`}, {Name: "cvs/jane.docx"},
			},
			want: []string{"cvs/jane.docx"},
		},
		{
			name:    "same base in different folders is kept",
			entries: []Entry{{Name: "a/cv.pdf"}, {Name: "b/cv.pdf"}},
			want:    []string{"a/cv.pdf", "b/cv.pdf"},
		},
		{
			name:    "empty",
			entries: nil,
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, names(Select(tt.entries)))
		})
	}
}

func TestEntry(t *testing.T) {
	e := Entry{Name: "Folder/John.Smith.PDF"}
	assert.Equal(t, ".pdf", e.Ext())
	assert.Equal(t, "folder/john.smith", e.BaseKey())
	assert.True(t, Supported("x.DOCX"))
	assert.False(t, Supported("x.doc"))
}
