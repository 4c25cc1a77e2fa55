package models

// Document is one extracted archive entry. Name is the entry path inside the archive.
type Document struct {
	Name string `json:"name"`
	Text string `json:"text"`
	Size int64  `json:"size"`
}

func NewDocument(name string, text string, size int64) *Document {
	return &Document{
		Name: name,
		Text: text,
		Size: size,
	}
}
