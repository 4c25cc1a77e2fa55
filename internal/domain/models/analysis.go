package models

import (
	"fmt"
	"time"
)

// SearchResult is the instrumentation of one algorithm run over one (text, pattern) pair.
type SearchResult struct {
	Occurrences int           `json:"occurrences"`
	Comparisons int           `json:"comparisons"`
	Elapsed     time.Duration `json:"elapsed"`
}

func (r SearchResult) ElapsedMillis() float64 {
	return Millis(r.Elapsed)
}

type KeywordMatch struct {
	Keyword string `json:"keyword"`
	Count   int    `json:"count"`
}

func (m KeywordMatch) String() string {
	return fmt.Sprintf("%s (%d)", m.Keyword, m.Count)
}

type FileAnalysis struct {
	Name            string         `json:"file"`
	Size            int64          `json:"size"`
	Matched         []KeywordMatch `json:"matched"`
	Missing         []string       `json:"missing"`
	Count           int            `json:"count"`
	FormOccurrences int            `json:"form_occurrences"`
	Relevance       float64        `json:"relevance"`
	Elapsed         time.Duration  `json:"elapsed"`
	Comparisons     int            `json:"comparisons"`
}

type CorpusAnalysis struct {
	Algorithm      string         `json:"algorithm"`
	Keywords       []string       `json:"keywords"`
	Files          []FileAnalysis `json:"files"`
	AvgElapsed     float64        `json:"avg_elapsed_ms"`
	AvgComparisons float64        `json:"avg_comparisons"`
}

type AlgorithmTotals struct {
	Algorithm   string         `json:"algorithm"`
	Occurrences int            `json:"occurrences"`
	Elapsed     time.Duration  `json:"elapsed"`
	Comparisons int            `json:"comparisons"`
	PerKeyword  []KeywordMatch `json:"per_keyword"`
}

type CorpusComparison struct {
	Keywords   []string          `json:"keywords"`
	Algorithms []AlgorithmTotals `json:"algorithms"`
}

// Millis converts d to fractional milliseconds.
func Millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
