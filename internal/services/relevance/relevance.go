package relevance

import (
	"hirelens/internal/domain/models"
	"hirelens/internal/services/patterns"
	"hirelens/internal/services/search"
	"math"
	"strings"
	"time"
)

// Scorer scores single documents against a fixed keyword list. Word counters
// are compiled once and reused for every document.
type Scorer struct {
	keywords  []string
	counters  []*patterns.WordCounter
	forms     *patterns.Set
	algorithm search.Searcher
}

// NewScorer compiles the counters for kws. Blank keywords are kept in the
// list, and so in the relevance denominator, but never searched.
func NewScorer(kws []string, algorithm search.Searcher) (*Scorer, error) {
	s := &Scorer{
		keywords:  kws,
		counters:  make([]*patterns.WordCounter, len(kws)),
		algorithm: algorithm,
	}
	for i, kw := range kws {
		kw = strings.TrimSpace(kw)
		if kw == "" {
			continue
		}
		wc, err := patterns.NewWordCounter(kw)
		if err != nil {
			return nil, err
		}
		s.counters[i] = wc
	}

	forms, err := patterns.Compile(kws)
	if err != nil {
		return nil, err
	}
	s.forms = forms

	return s, nil
}

// Score builds the analysis record for doc. The matched and missing lists come
// from the whole-word counts; the selected algorithm only contributes elapsed
// time and comparisons.
func (s *Scorer) Score(doc models.Document) models.FileAnalysis {
	fa := models.FileAnalysis{
		Name:    doc.Name,
		Size:    doc.Size,
		Matched: []models.KeywordMatch{},
		Missing: []string{},
	}

	lower := strings.ToLower(doc.Text)
	var elapsed time.Duration

	for _, wc := range s.counters {
		if wc == nil {
			continue
		}
		kw := wc.Keyword()

		count := wc.Count(doc.Text)
		res := s.algorithm.Search(lower, strings.ToLower(kw))

		elapsed += res.Elapsed
		fa.Comparisons += res.Comparisons
		fa.Count += count

		if count > 0 {
			fa.Matched = append(fa.Matched, models.KeywordMatch{Keyword: kw, Count: count})
		} else {
			fa.Missing = append(fa.Missing, kw)
		}
	}

	fa.Elapsed = elapsed
	fa.FormOccurrences = s.forms.Count(doc.Text)
	fa.Relevance = Percentage(len(fa.Matched), len(s.keywords))

	return fa
}

// Percentage returns matched/total as a percentage rounded half to even on
// two decimals, or 0 when total is 0.
func Percentage(matched, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.RoundToEven(float64(matched)/float64(total)*100*100) / 100
}

// Forms returns the singular/plural pattern set compiled for the keywords.
func (s *Scorer) Forms() *patterns.Set {
	return s.forms
}
