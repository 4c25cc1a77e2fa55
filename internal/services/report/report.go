package report

import (
	"encoding/json"
	"fmt"
	"hirelens/internal/domain/models"
	"hirelens/internal/utils"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

type Theme struct {
	Title  lipgloss.Style
	Header lipgloss.Style
	Cell   lipgloss.Style
	Good   lipgloss.Style
	Bad    lipgloss.Style
	Dim    lipgloss.Style
	Border lipgloss.Style
}

var DefaultTheme = Theme{
	Title:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("36")),
	Header: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("36")).Padding(0, 1),
	Cell:   lipgloss.NewStyle().Padding(0, 1),
	Good:   lipgloss.NewStyle().Foreground(lipgloss.Color("82")).Padding(0, 1),
	Bad:    lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Padding(0, 1),
	Dim:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	Border: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
}

// PlainTheme keeps the layout without colors, for writers that do not
// interpret lipgloss escape sequences.
var PlainTheme = Theme{
	Header: lipgloss.NewStyle().Padding(0, 1),
	Cell:   lipgloss.NewStyle().Padding(0, 1),
	Good:   lipgloss.NewStyle().Padding(0, 1),
	Bad:    lipgloss.NewStyle().Padding(0, 1),
}

var analysisHeaders = []string{
	"S.No", "File", "Size (KB)", "Matched Keywords", "Missing Keywords",
	"Count", "Relevance (%)", "Exec Time (ms)", "Comparisons",
}

const (
	colRelevance = 6
	placeholder  = "-"
)

// AnalysisRows returns the ranked files as table rows.
func AnalysisRows(res *models.CorpusAnalysis) [][]string {
	rows := make([][]string, 0, len(res.Files))
	for i, f := range res.Files {
		matched := make([]string, 0, len(f.Matched))
		for _, m := range f.Matched {
			matched = append(matched, m.String())
		}
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			f.Name,
			strconv.FormatInt(utils.SizeKB(f.Size), 10),
			joinOrPlaceholder(matched),
			joinOrPlaceholder(f.Missing),
			strconv.Itoa(f.Count),
			strconv.FormatFloat(f.Relevance, 'f', 2, 64),
			utils.FormatMillis(f.Elapsed),
			strconv.Itoa(f.Comparisons),
		})
	}
	return rows
}

func joinOrPlaceholder(items []string) string {
	if len(items) == 0 {
		return placeholder
	}
	return strings.Join(items, ", ")
}

func (th Theme) newTable(headers []string, rows [][]string, cell func(row, col int) lipgloss.Style) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(th.Border).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return th.Header
			}
			if cell != nil {
				return cell(row, col)
			}
			return th.Cell
		}).
		Headers(headers...).
		Rows(rows...)
}

// WriteAnalysis renders the ranked analysis table followed by the corpus averages.
func (th Theme) WriteAnalysis(w io.Writer, res *models.CorpusAnalysis) error {
	if _, err := fmt.Fprintf(w, "%s %s\n%s %s\n",
		th.Title.Render("Algorithm:"), res.Algorithm,
		th.Title.Render("Keywords:"), strings.Join(res.Keywords, ", "),
	); err != nil {
		return err
	}

	if len(res.Files) == 0 {
		_, err := fmt.Fprintln(w, th.Dim.Render("No PDF/DOCX files found in the archive (or all duplicates removed)."))
		return err
	}

	files := res.Files
	t := th.newTable(analysisHeaders, AnalysisRows(res), func(row, col int) lipgloss.Style {
		if col != colRelevance || row < 0 || row >= len(files) {
			return th.Cell
		}
		if files[row].Relevance > 0 {
			return th.Good
		}
		return th.Bad
	})

	_, err := fmt.Fprintf(w, "%s\n%s %.3f ms   %s %.1f\n",
		t.Render(),
		th.Title.Render("Average execution time (per file):"), res.AvgElapsed,
		th.Title.Render("Average comparisons (per file):"), res.AvgComparisons,
	)
	return err
}

// WriteComparison renders the per-algorithm totals, then the per-keyword
// occurrences with one column per algorithm.
func (th Theme) WriteComparison(w io.Writer, cmp *models.CorpusComparison) error {
	totals := make([][]string, 0, len(cmp.Algorithms))
	for _, a := range cmp.Algorithms {
		totals = append(totals, []string{
			a.Algorithm,
			strconv.Itoa(a.Occurrences),
			utils.FormatMillis(a.Elapsed),
			strconv.Itoa(a.Comparisons),
		})
	}
	totalsTable := th.newTable(
		[]string{"Algorithm", "Total Occurrences", "Exec Time (ms)", "Comparisons"},
		totals, nil,
	)

	headers := []string{"Keyword"}
	for _, a := range cmp.Algorithms {
		headers = append(headers, a.Algorithm)
	}
	var perKeyword [][]string
	if len(cmp.Algorithms) > 0 {
		for i, kc := range cmp.Algorithms[0].PerKeyword {
			row := []string{kc.Keyword}
			for _, a := range cmp.Algorithms {
				row = append(row, strconv.Itoa(a.PerKeyword[i].Count))
			}
			perKeyword = append(perKeyword, row)
		}
	}
	keywordTable := th.newTable(headers, perKeyword, nil)

	_, err := fmt.Fprintf(w, "%s\n%s\n%s\n%s\n",
		th.Title.Render("Compare All Algorithms"),
		totalsTable.Render(),
		th.Title.Render("Per-Keyword Occurrences"),
		keywordTable.Render(),
	)
	return err
}

// WriteJSON writes v as indented JSON.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
