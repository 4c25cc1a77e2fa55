package patterns

import (
	"fmt"
	"hirelens/internal/services/keywords"
	"strings"

	"github.com/dlclark/regexp2"
)

// Pattern matches one keyword form as a whole word, case-insensitively.
// Word boundaries follow regexp2's Unicode word class, so "café" ends at the
// "é" and "naïve" does not match inside "naïveté".
type Pattern struct {
	Keyword string
	Form    string
	re      *regexp2.Regexp
}

func compile(expr string) (*regexp2.Regexp, error) {
	return regexp2.Compile(expr, regexp2.IgnoreCase)
}

// NewPattern compiles the whole-word matcher for form.
func NewPattern(keyword, form string) (*Pattern, error) {
	const op = "patterns.NewPattern"

	p := &Pattern{Keyword: keyword, Form: form}
	if form == "" {
		return p, nil
	}

	re, err := compile(`\b` + regexp2.Escape(form) + `\b`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	p.re = re
	return p, nil
}

// Count returns the number of non-overlapping whole-word matches in text.
func (p *Pattern) Count(text string) int {
	if p.re == nil {
		return 0
	}
	return countMatches(p.re, text)
}

func (p *Pattern) String() string {
	if p.re == nil {
		return ""
	}
	return p.re.String()
}

// countMatches walks every match. FindNextMatch only fails on a match timeout,
// and none is configured.
func countMatches(re *regexp2.Regexp, text string) int {
	n := 0
	m, err := re.FindStringMatch(text)
	for err == nil && m != nil {
		n++
		m, err = re.FindNextMatch(m)
	}
	return n
}

// Set is the ordered list of compiled patterns, two per keyword: plural form
// first, then singular.
type Set struct {
	patterns []*Pattern
}

// Compile builds the pattern set for kws in order. Duplicates are kept.
func Compile(kws []string) (*Set, error) {
	set := &Set{patterns: make([]*Pattern, 0, 2*len(kws))}
	for _, kw := range kws {
		plural, singular := keywords.Normalize(kw)
		for _, form := range []string{plural, singular} {
			p, err := NewPattern(kw, form)
			if err != nil {
				return nil, err
			}
			set.patterns = append(set.patterns, p)
		}
	}
	return set, nil
}

func (s *Set) Patterns() []*Pattern {
	return s.patterns
}

func (s *Set) Len() int {
	return len(s.patterns)
}

// Count sums the matches of every pattern over the lowercased text.
func (s *Set) Count(text string) int {
	lower := strings.ToLower(text)
	total := 0
	for _, p := range s.patterns {
		total += p.Count(lower)
	}
	return total
}

// WordCounter counts a keyword as a whole word with an optional trailing "s".
// It is the count used for matched and missing keywords.
type WordCounter struct {
	keyword string
	re      *regexp2.Regexp
}

func NewWordCounter(keyword string) (*WordCounter, error) {
	const op = "patterns.NewWordCounter"

	re, err := compile(`\b` + regexp2.Escape(strings.ToLower(keyword)) + `s?\b`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &WordCounter{keyword: keyword, re: re}, nil
}

func (w *WordCounter) Keyword() string {
	return w.keyword
}

func (w *WordCounter) Count(text string) int {
	return countMatches(w.re, strings.ToLower(text))
}

// CountWords is the one-shot form of WordCounter.Count.
func CountWords(text, keyword string) (int, error) {
	w, err := NewWordCounter(keyword)
	if err != nil {
		return 0, err
	}
	return w.Count(text), nil
}
