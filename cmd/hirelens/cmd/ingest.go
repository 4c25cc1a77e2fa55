package cmd

import (
	"hirelens/config"
	"hirelens/internal/services/report"
	"os/signal"
	"syscall"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest [archive.zip]",
	Short: "Extract an archive into the corpus cache",
	Long:  "Extracts the selected CVs of a ZIP archive and stores their text in the cache, so later runs skip extraction.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runIngest,
}

func init() {
	ingestCmd.Flags().StringVarP(&format, "format", "f", "", "output format: table or json")
}

func runIngest(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log := setupLogger(cfg.Env, cmd.ErrOrStderr())

	ctx, stop := signal.NotifyContext(commandContext(cmd), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	docs, err := loadCorpus(ctx, log, cfg, args)
	if err != nil {
		return err
	}

	if cfg.Report.Format == config.FormatJSON {
		return report.WriteJSON(cmd.OutOrStdout(), docs)
	}

	var total int64
	for _, doc := range docs {
		printf(cmd, "%-40s %10s\n", doc.Name, humanize.Bytes(uint64(doc.Size)))
		total += doc.Size
	}
	printf(cmd, "%d documents, %s\n", len(docs), humanize.Bytes(uint64(total)))
	return nil
}
