package analysis

import (
	"hirelens/internal/domain/models"
	"hirelens/internal/services/search"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	log := slog.New(
		slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
	)
	return NewSession(log)
}

var endToEndDocs = []models.Document{
	{Name: "a.pdf", Text: "Python SQL Excel", Size: 100},
	{Name: "b.pdf", Text: "Java only", Size: 200},
}

func TestAnalyzeEndToEnd(t *testing.T) {
	for _, algo := range search.Algorithms {
		t.Run(algo.String(), func(t *testing.T) {
			s := newTestSession(t)
			require.NoError(t, s.SetAlgorithm(algo))
			require.NoError(t, s.SetKeywords([]string{"python", "sql"}))
			s.SetDocuments(endToEndDocs)

			res, err := s.Analyze()
			require.NoError(t, err)
			require.Len(t, res.Files, 2)

			assert.Equal(t, algo.String(), res.Algorithm)
			assert.Equal(t, "a.pdf", res.Files[0].Name)
			assert.Equal(t, 100.0, res.Files[0].Relevance)
			assert.Equal(t, "b.pdf", res.Files[1].Name)
			assert.Equal(t, 0.0, res.Files[1].Relevance)
			assert.Equal(t, []string{"python", "sql"}, res.Files[1].Missing)

			wantComparisons := float64(res.Files[0].Comparisons+res.Files[1].Comparisons) / 2
			assert.Equal(t, wantComparisons, res.AvgComparisons)

			wantElapsed := (models.Millis(res.Files[0].Elapsed) + models.Millis(res.Files[1].Elapsed)) / 2
			assert.InDelta(t, wantElapsed, res.AvgElapsed, 1e-9)
		})
	}
}

func TestAnalyzeStableRanking(t *testing.T) {
	s := newTestSession(t)
	require.NoError(t, s.SetKeywords([]string{"go", "sql"}))
	s.SetDocuments([]models.Document{
		{Name: "first.pdf", Text: "go"},
		{Name: "second.pdf", Text: "nothing"},
		{Name: "third.pdf", Text: "sql"},
		{Name: "fourth.pdf", Text: "go and sql"},
		{Name: "fifth.pdf", Text: "none"},
	})

	res, err := s.Analyze()
	require.NoError(t, err)

	var order []string
	for _, f := range res.Files {
		order = append(order, f.Name)
	}
	assert.Equal(t, []string{"fourth.pdf", "first.pdf", "third.pdf", "second.pdf", "fifth.pdf"}, order)
}

func TestAnalyzeEmptyCorpus(t *testing.T) {
	s := newTestSession(t)
	require.NoError(t, s.SetKeywords([]string{"python"}))

	res, err := s.Analyze()
	require.NoError(t, err)
	assert.Empty(t, res.Files)
	assert.Zero(t, res.AvgElapsed)
	assert.Zero(t, res.AvgComparisons)
}

func TestAnalyzeWithoutKeywords(t *testing.T) {
	s := newTestSession(t)
	s.SetDocuments(endToEndDocs)

	_, err := s.Analyze()
	assert.ErrorIs(t, err, ErrNoKeywords)

	require.NoError(t, s.SetKeywords(nil))
	_, err = s.Analyze()
	assert.ErrorIs(t, err, ErrNoKeywords)
}

func TestComparePreconditions(t *testing.T) {
	s := newTestSession(t)

	_, err := s.Compare()
	assert.ErrorIs(t, err, ErrNoDocuments)

	s.SetDocuments(endToEndDocs)
	_, err = s.Compare()
	assert.ErrorIs(t, err, ErrNoKeywords)
}

func TestCompare(t *testing.T) {
	s := newTestSession(t)
	require.NoError(t, s.SetKeywords([]string{"sql", "python", "sql"}))
	s.SetDocuments([]models.Document{
		{Name: "a.pdf", Text: "SQL and mysql, Python"},
		{Name: "b.pdf", Text: "no match here"},
	})

	cmp, err := s.Compare()
	require.NoError(t, err)
	require.Len(t, cmp.Algorithms, 3)
	assert.Equal(t, []string{"sql", "python", "sql"}, cmp.Keywords)

	for i, totals := range cmp.Algorithms {
		assert.Equal(t, search.Algorithms[i].String(), totals.Algorithm)
		// literal substring counts: "sql" twice (also inside "mysql"), counted for each listed keyword
		assert.Equal(t, 5, totals.Occurrences, totals.Algorithm)
		assert.Equal(t, []models.KeywordMatch{
			{Keyword: "sql", Count: 2},
			{Keyword: "python", Count: 1},
		}, totals.PerKeyword, totals.Algorithm)
	}

	naive, rk := cmp.Algorithms[0], cmp.Algorithms[1]
	assert.Greater(t, naive.Comparisons, rk.Comparisons)
}

func TestSetAlgorithmRebuildsScorer(t *testing.T) {
	s := newTestSession(t)
	assert.Equal(t, search.Naive, s.Algorithm())
	assert.Nil(t, s.Patterns())

	require.NoError(t, s.SetKeywords([]string{"skills"}))
	require.NoError(t, s.SetAlgorithm(search.KMP))
	assert.Equal(t, search.KMP, s.Algorithm())
	assert.Equal(t, 2, s.Patterns().Len())
	assert.Equal(t, []string{"skills"}, s.Keywords())
}

func TestAverages(t *testing.T) {
	elapsed, comparisons := Averages(nil)
	assert.Zero(t, elapsed)
	assert.Zero(t, comparisons)

	_, comparisons = Averages([]models.FileAnalysis{{Comparisons: 10}, {Comparisons: 5}})
	assert.Equal(t, 7.5, comparisons)
}
