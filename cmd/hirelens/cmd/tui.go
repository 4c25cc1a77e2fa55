package cmd

import (
	"hirelens/internal/services/analysis"
	"hirelens/internal/services/cui"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui [archive.zip]",
	Short: "Interactive analysis session",
	Long:  "Loads the corpus and opens a terminal UI to add keywords, switch algorithms and compare them.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runTUI,
}

func init() {
	addSessionFlags(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	p, err := prepare(cmd, args)
	if err != nil {
		return err
	}

	// the terminal belongs to the UI from here on
	quiet := slog.New(slog.NewTextHandler(io.Discard, nil))
	session := analysis.NewSession(quiet)
	if err := session.SetAlgorithm(p.session.Algorithm()); err != nil {
		return err
	}
	session.SetDocuments(p.session.Documents())

	ui, err := cui.New(quiet, session, p.mandatory, p.optional)
	if err != nil {
		return err
	}

	p.log.Info("Starting UI", "documents", len(session.Documents()))
	return ui.Start()
}
