package cmd

import (
	"hirelens/config"
	"hirelens/internal/services/report"

	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [archive.zip]",
	Short: "Rank CVs by keyword relevance",
	Long:  "Extracts the PDF and DOCX CVs of a ZIP archive and ranks them by the share of keywords they mention, timing the selected algorithm.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runAnalyze,
}

func init() {
	addSessionFlags(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	p, err := prepare(cmd, args)
	if err != nil {
		return err
	}

	res, err := p.session.Analyze()
	if err != nil {
		return err
	}

	if p.cfg.Report.Format == config.FormatJSON {
		return report.WriteJSON(cmd.OutOrStdout(), res)
	}

	printf(cmd, "Role: %s  Algorithm: %s\n", p.cfg.Analysis.Role, res.Algorithm)
	return report.DefaultTheme.WriteAnalysis(cmd.OutOrStdout(), res)
}
