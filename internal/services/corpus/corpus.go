package corpus

import (
	"path"
	"sort"
	"strings"
)

const (
	ExtPDF  = ".pdf"
	ExtDOCX = ".docx"
)

// Entry is an archive member as listed by the archive reader.
type Entry struct {
	Name  string
	Size  int64
	Dir   bool
	Index int // position in the archive listing
}

// Ext returns the lowercased extension of the entry name.
func (e Entry) Ext() string {
	return strings.ToLower(path.Ext(e.Name))
}

// BaseKey is the case-folded entry path without its final extension.
func (e Entry) BaseKey() string {
	name := e.Name
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[:i]
	}
	return strings.ToLower(name)
}

func (e Entry) isDir() bool {
	return e.Dir || strings.HasSuffix(e.Name, "/") || strings.HasSuffix(e.Name, `\`)
}

func Supported(name string) bool {
	ext := strings.ToLower(path.Ext(name))
	return ext == ExtPDF || ext == ExtDOCX
}

// Select returns the entries to score, in scoring order: PDFs first, then by
// case-folded name. Directories and unsupported extensions are dropped, and
// only the first entry per base key survives, so a PDF wins over a DOCX of
// the same name.
func Select(entries []Entry) []Entry {
	candidates := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if e.isDir() || !Supported(e.Name) {
			continue
		}
		candidates = append(candidates, e)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		pi, pj := candidates[i].Ext() == ExtPDF, candidates[j].Ext() == ExtPDF
		if pi != pj {
			return pi
		}
		return strings.ToLower(candidates[i].Name) < strings.ToLower(candidates[j].Name)
	})

	seen := make(map[string]struct{}, len(candidates))
	selected := candidates[:0]
	for _, e := range candidates {
		key := e.BaseKey()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		selected = append(selected, e)
	}
	return selected
}
