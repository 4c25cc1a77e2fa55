package cmd

import (
	"hirelens/config"
	"hirelens/internal/services/report"

	"github.com/spf13/cobra"
)

var compareCmd = &cobra.Command{
	Use:   "compare [archive.zip]",
	Short: "Compare brute force, Rabin–Karp and KMP on the corpus",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCompare,
}

func init() {
	addSessionFlags(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	p, err := prepare(cmd, args)
	if err != nil {
		return err
	}

	cmp, err := p.session.Compare()
	if err != nil {
		return err
	}

	if p.cfg.Report.Format == config.FormatJSON {
		return report.WriteJSON(cmd.OutOrStdout(), cmp)
	}
	return report.DefaultTheme.WriteComparison(cmd.OutOrStdout(), cmp)
}
