package search

import (
	"errors"
	"fmt"
	"hirelens/internal/domain/models"
	"strings"
	"time"
)

// Algorithm is one of the exact substring matchers benchmarked on the corpus.
type Algorithm int

const (
	Naive Algorithm = iota
	RabinKarp
	KMP
)

// Algorithms lists every algorithm in comparison-table order.
var Algorithms = []Algorithm{Naive, RabinKarp, KMP}

var ErrUnknownAlgorithm = errors.New("unknown search algorithm")

// Searcher counts literal occurrences of pattern in text and reports how much work it took.
type Searcher interface {
	Search(text, pattern string) models.SearchResult
}

func (a Algorithm) String() string {
	switch a {
	case Naive:
		return "Brute Force"
	case RabinKarp:
		return "Rabin–Karp"
	case KMP:
		return "KMP"
	}
	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// Search runs the algorithm. Callers pass text and pattern already lowercased.
func (a Algorithm) Search(text, pattern string) models.SearchResult {
	switch a {
	case Naive:
		return SearchNaive(text, pattern)
	case RabinKarp:
		return SearchRabinKarp(text, pattern)
	case KMP:
		return SearchKMP(text, pattern)
	}
	panic(fmt.Sprintf("search: %v", a))
}

func (a Algorithm) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// ParseAlgorithm accepts the display name or a short alias, case-insensitively.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "brute force", "brute-force", "bruteforce", "naive":
		return Naive, nil
	case "rabin–karp", "rabin-karp", "rabinkarp", "rk":
		return RabinKarp, nil
	case "kmp", "knuth-morris-pratt":
		return KMP, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// degenerate reports inputs that never enter the comparison loop.
func degenerate(text, pattern []rune) bool {
	return len(pattern) == 0 || len(pattern) > len(text)
}

func since(start time.Time) time.Duration {
	if d := time.Since(start); d > 0 {
		return d
	}
	// non-degenerate runs always report a positive duration
	return time.Nanosecond
}

// SearchNaive tries every offset and compares left to right, counting the
// mismatching comparison too. Overlapping matches are counted.
func SearchNaive(text, pattern string) models.SearchResult {
	t, p := []rune(text), []rune(pattern)
	if degenerate(t, p) {
		return models.SearchResult{}
	}

	n, m := len(t), len(p)
	var occ, comparisons int

	start := time.Now()
	for i := 0; i <= n-m; i++ {
		ok := true
		for j := 0; j < m; j++ {
			comparisons++
			if t[i+j] != p[j] {
				ok = false
				break
			}
		}
		if ok {
			occ++
		}
	}

	return models.SearchResult{
		Occurrences: occ,
		Comparisons: comparisons,
		Elapsed:     since(start),
	}
}

const (
	rkBase    = 256
	rkModulus = 101
)

// SearchRabinKarp slides a rolling hash over the text. Only windows whose hash
// equals the pattern hash count as a comparison; they are verified before an
// occurrence is recorded, so hash collisions never inflate the count.
func SearchRabinKarp(text, pattern string) models.SearchResult {
	t, p := []rune(text), []rune(pattern)
	if degenerate(t, p) {
		return models.SearchResult{}
	}

	n, m := len(t), len(p)
	var occ, comparisons int

	start := time.Now()

	// base^(m-1) mod q
	h := 1
	for i := 0; i < m-1; i++ {
		h = h * rkBase % rkModulus
	}

	var patHash, txtHash int
	for i := 0; i < m; i++ {
		patHash = (patHash*rkBase + int(p[i])) % rkModulus
		txtHash = (txtHash*rkBase + int(t[i])) % rkModulus
	}

	for i := 0; i <= n-m; i++ {
		if patHash == txtHash {
			comparisons++
			if equalRunes(t[i:i+m], p) {
				occ++
			}
		}

		if i < n-m {
			txtHash = ((txtHash-int(t[i])*h%rkModulus)*rkBase + int(t[i+m])) % rkModulus
			if txtHash < 0 {
				txtHash += rkModulus
			}
		}
	}

	return models.SearchResult{
		Occurrences: occ,
		Comparisons: comparisons,
		Elapsed:     since(start),
	}
}

func equalRunes(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// buildLPS returns the longest proper prefix-suffix table for p.
func buildLPS(p []rune) []int {
	lps := make([]int, len(p))
	length := 0
	for i := 1; i < len(p); {
		if p[i] == p[length] {
			length++
			lps[i] = length
			i++
		} else if length != 0 {
			length = lps[length-1]
		} else {
			lps[i] = 0
			i++
		}
	}
	return lps
}

// SearchKMP scans with the failure table, one comparison per character check.
// After a full match it falls back through the table so overlaps are found.
func SearchKMP(text, pattern string) models.SearchResult {
	t, p := []rune(text), []rune(pattern)
	if degenerate(t, p) {
		return models.SearchResult{}
	}

	n, m := len(t), len(p)
	var occ, comparisons int

	start := time.Now()
	lps := buildLPS(p)

	for i, j := 0, 0; i < n; {
		comparisons++
		if t[i] == p[j] {
			i++
			j++
			if j == m {
				occ++
				j = lps[j-1]
			}
		} else if j != 0 {
			j = lps[j-1]
		} else {
			i++
		}
	}

	return models.SearchResult{
		Occurrences: occ,
		Comparisons: comparisons,
		Elapsed:     since(start),
	}
}
