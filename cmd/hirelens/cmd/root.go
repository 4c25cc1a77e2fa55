package cmd

import (
	"context"
	"errors"
	"fmt"
	"hirelens/config"
	"hirelens/internal/app"
	"hirelens/internal/domain/models"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

var errNoArchive = errors.New("no archive given: pass a path or set archive_path")

var (
	configPath  string
	storagePath string
	noCache     bool
	workers     int
)

var rootCmd = &cobra.Command{
	Use:          "hirelens",
	Short:        "hireLens screens CVs against role keywords",
	Long:         "Ranks PDF and DOCX CVs from a ZIP archive by keyword relevance and compares brute force, Rabin–Karp and KMP search.",
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&configPath, "config", "c", "", "path to config file")
	pf.StringVar(&storagePath, "storage-path", "", "corpus cache directory")
	pf.BoolVar(&noCache, "no-cache", false, "always extract, never read or write the corpus cache")
	pf.IntVar(&workers, "workers", 0, "extraction workers")

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(ingestCmd)
	rootCmd.AddCommand(rolesCmd)
	rootCmd.AddCommand(tuiCmd)
}

// loadConfig reads the config and applies the flags that were set explicitly.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("storage-path") {
		cfg.StoragePath = storagePath
	}
	if flags.Changed("no-cache") {
		cfg.Loader.NoCache = noCache
	}
	if flags.Changed("workers") {
		cfg.Loader.Workers = workers
	}
	applySessionFlags(cmd, cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadCorpus extracts (or reads from the cache) the archive given as the
// first argument, or the configured one.
func loadCorpus(ctx context.Context, log *slog.Logger, cfg *config.Config, args []string) ([]models.Document, error) {
	archivePath := cfg.ArchivePath
	if len(args) > 0 {
		archivePath = args[0]
	}
	if archivePath == "" {
		return nil, errNoArchive
	}

	application, err := app.New(log, cfg)
	if err != nil {
		return nil, err
	}
	defer application.Stop()

	return application.Loader.LoadArchive(ctx, archivePath)
}

func setupLogger(env string, w io.Writer) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = slog.New(
			slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case envDev:
		log = slog.New(
			slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case envProd:
		log = slog.New(
			slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	default:
		log = slog.New(
			slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	}

	return log
}

func printf(cmd *cobra.Command, format string, a ...any) {
	fmt.Fprintf(cmd.OutOrStdout(), format, a...)
}
