package analysis

import (
	"errors"
	"fmt"
	"hirelens/internal/domain/models"
	"hirelens/internal/services/patterns"
	"hirelens/internal/services/relevance"
	"hirelens/internal/services/search"
	"log/slog"
	"sort"
	"strings"
)

var (
	// ErrNoDocuments is returned when a corpus-wide operation runs before any CV was loaded.
	ErrNoDocuments = errors.New("no documents loaded, analyze CVs first")
	// ErrNoKeywords is returned when no keyword was configured.
	ErrNoKeywords = errors.New("no keywords, enter at least one keyword")
)

// Session holds the state of one analysis: keywords, selected algorithm and
// corpus. Changing any of them does not recompute anything; callers run
// Analyze or Compare again.
type Session struct {
	log       *slog.Logger
	keywords  []string
	algorithm search.Algorithm
	documents []models.Document
	scorer    *relevance.Scorer
}

func NewSession(log *slog.Logger) *Session {
	if log == nil {
		log = slog.Default()
	}
	return &Session{
		log:       log,
		algorithm: search.Naive,
	}
}

// SetKeywords replaces the keyword list and recompiles its patterns.
func (s *Session) SetKeywords(kws []string) error {
	const op = "analysis.SetKeywords"

	kws = append([]string(nil), kws...)
	scorer, err := relevance.NewScorer(kws, s.algorithm)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.keywords = kws
	s.scorer = scorer
	s.log.Debug("keywords set", "count", len(kws), "patterns", scorer.Forms().Len())
	return nil
}

func (s *Session) Keywords() []string {
	return append([]string(nil), s.keywords...)
}

// SetAlgorithm selects the algorithm applied to every document and keyword.
func (s *Session) SetAlgorithm(a search.Algorithm) error {
	s.algorithm = a
	if s.keywords == nil {
		return nil
	}
	return s.SetKeywords(s.keywords)
}

func (s *Session) Algorithm() search.Algorithm {
	return s.algorithm
}

// SetDocuments replaces the corpus. Documents are scored in the given order.
func (s *Session) SetDocuments(docs []models.Document) {
	s.documents = append([]models.Document(nil), docs...)
	s.log.Debug("corpus set", "documents", len(docs))
}

func (s *Session) Documents() []models.Document {
	return s.documents
}

// Patterns returns the compiled singular/plural patterns, or nil before SetKeywords.
func (s *Session) Patterns() *patterns.Set {
	if s.scorer == nil {
		return nil
	}
	return s.scorer.Forms()
}

// Analyze scores every document with the selected algorithm and ranks them by
// relevance.
func (s *Session) Analyze() (*models.CorpusAnalysis, error) {
	const op = "analysis.Analyze"

	if len(s.keywords) == 0 || s.scorer == nil {
		return nil, fmt.Errorf("%s: %w", op, ErrNoKeywords)
	}

	files := make([]models.FileAnalysis, 0, len(s.documents))
	for _, doc := range s.documents {
		files = append(files, s.scorer.Score(doc))
	}
	Rank(files)

	avgElapsed, avgComparisons := Averages(files)

	s.log.Debug("corpus analysed",
		"algorithm", s.algorithm.String(),
		"documents", len(files),
		"avg_elapsed_ms", avgElapsed,
		"avg_comparisons", avgComparisons,
	)

	return &models.CorpusAnalysis{
		Algorithm:      s.algorithm.String(),
		Keywords:       s.Keywords(),
		Files:          files,
		AvgElapsed:     avgElapsed,
		AvgComparisons: avgComparisons,
	}, nil
}

// Compare runs every algorithm over the whole corpus and keyword list.
func (s *Session) Compare() (*models.CorpusComparison, error) {
	const op = "analysis.Compare"

	if len(s.documents) == 0 {
		return nil, fmt.Errorf("%s: %w", op, ErrNoDocuments)
	}
	if len(s.keywords) == 0 {
		return nil, fmt.Errorf("%s: %w", op, ErrNoKeywords)
	}

	cmp := Compare(s.documents, s.keywords)
	for _, totals := range cmp.Algorithms {
		s.log.Debug("algorithm compared",
			"algorithm", totals.Algorithm,
			"occurrences", totals.Occurrences,
			"comparisons", totals.Comparisons,
			"elapsed_ms", models.Millis(totals.Elapsed),
		)
	}
	return cmp, nil
}

// Rank sorts files by descending relevance. Files with equal relevance keep
// their order.
func Rank(files []models.FileAnalysis) {
	sort.SliceStable(files, func(i, j int) bool {
		return files[i].Relevance > files[j].Relevance
	})
}

// Averages returns the mean per-document elapsed time in milliseconds and the
// mean comparison count. Both are 0 for no files.
func Averages(files []models.FileAnalysis) (elapsedMs, comparisons float64) {
	if len(files) == 0 {
		return 0, 0
	}
	for _, f := range files {
		elapsedMs += models.Millis(f.Elapsed)
		comparisons += float64(f.Comparisons)
	}
	n := float64(len(files))
	return elapsedMs / n, comparisons / n
}

// Compare runs every algorithm on every (document, keyword) pair. Grand totals
// include repeated keywords; the per-keyword breakdown lists each distinct
// keyword once, in first-seen order.
func Compare(docs []models.Document, kws []string) *models.CorpusComparison {
	texts := make([]string, len(docs))
	for i, doc := range docs {
		texts[i] = strings.ToLower(doc.Text)
	}

	firstIndex := make(map[string]int, len(kws))
	var distinct []string
	for i, kw := range kws {
		if _, ok := firstIndex[kw]; !ok {
			firstIndex[kw] = i
			distinct = append(distinct, kw)
		}
	}

	cmp := &models.CorpusComparison{
		Keywords:   append([]string(nil), kws...),
		Algorithms: make([]models.AlgorithmTotals, 0, len(search.Algorithms)),
	}

	for _, algo := range search.Algorithms {
		totals := models.AlgorithmTotals{
			Algorithm:  algo.String(),
			PerKeyword: make([]models.KeywordMatch, len(distinct)),
		}
		slot := make(map[string]int, len(distinct))
		for i, kw := range distinct {
			totals.PerKeyword[i].Keyword = kw
			slot[kw] = i
		}

		for i, kw := range kws {
			pattern := strings.ToLower(kw)
			for _, text := range texts {
				res := algo.Search(text, pattern)
				totals.Occurrences += res.Occurrences
				totals.Comparisons += res.Comparisons
				totals.Elapsed += res.Elapsed
				if firstIndex[kw] == i {
					totals.PerKeyword[slot[kw]].Count += res.Occurrences
				}
			}
		}

		cmp.Algorithms = append(cmp.Algorithms, totals)
	}

	return cmp
}
