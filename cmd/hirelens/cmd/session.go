package cmd

import (
	"context"
	"fmt"
	"hirelens/config"
	"hirelens/internal/services/analysis"
	"hirelens/internal/services/keywords"
	"hirelens/internal/services/search"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
)

var (
	role         string
	algorithm    string
	format       string
	extra        []string
	keywordsFile string
)

func addSessionFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVarP(&role, "role", "r", "", "job role whose mandatory keywords are used")
	f.StringVarP(&algorithm, "algorithm", "a", "", "brute-force, rabin-karp or kmp")
	f.StringArrayVarP(&extra, "keyword", "k", nil, "optional keyword (repeatable)")
	f.StringVar(&keywordsFile, "keywords-file", "", "file with one optional keyword per line")
	f.StringVarP(&format, "format", "f", "", "output format: table or json")
}

func applySessionFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("role") {
		cfg.Analysis.Role = role
	}
	if flags.Changed("algorithm") {
		cfg.Analysis.Algorithm = algorithm
	}
	if flags.Changed("keywords-file") {
		cfg.Analysis.OptionalKeywordsPath = keywordsFile
	}
	if flags.Changed("format") {
		cfg.Report.Format = format
	}
}

// sessionKeywords resolves the mandatory keywords of the configured role and
// the optional ones from the keywords file followed by --keyword flags.
func sessionKeywords(log *slog.Logger, cfg *config.Config) (mandatory, optional []string, err error) {
	const op = "cmd.sessionKeywords"

	mandatory, err = cfg.RoleSet().Mandatory(cfg.Analysis.Role)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	if path := cfg.Analysis.OptionalKeywordsPath; path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", op, err)
		}
		defer f.Close()

		optional, err = keywords.ParseOptional(f)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	for _, kw := range extra {
		if kw = strings.ToLower(strings.TrimSpace(kw)); kw != "" {
			optional = append(optional, kw)
		}
	}

	if stop := keywords.StopWords(optional); len(stop) > 0 {
		log.Warn("Optional keywords are common English stop words", "keywords", stop)
	}

	return mandatory, optional, nil
}

// prepared bundles what analyze, compare and tui share.
type prepared struct {
	cfg       *config.Config
	log       *slog.Logger
	session   *analysis.Session
	mandatory []string
	optional  []string
}

func prepare(cmd *cobra.Command, args []string) (*prepared, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	log := setupLogger(cfg.Env, cmd.ErrOrStderr())
	log.Debug("hirelens", "env", cfg.Env, "role", cfg.Analysis.Role)

	alg, err := search.ParseAlgorithm(cfg.Analysis.Algorithm)
	if err != nil {
		return nil, err
	}

	mandatory, optional, err := sessionKeywords(log, cfg)
	if err != nil {
		return nil, err
	}

	ctx, stop := signal.NotifyContext(commandContext(cmd), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	docs, err := loadCorpus(ctx, log, cfg, args)
	if err != nil {
		return nil, err
	}

	session := analysis.NewSession(log)
	if err := session.SetAlgorithm(alg); err != nil {
		return nil, err
	}
	session.SetDocuments(docs)
	if err := session.SetKeywords(keywords.Combine(mandatory, optional)); err != nil {
		return nil, err
	}

	return &prepared{
		cfg:       cfg,
		log:       log,
		session:   session,
		mandatory: mandatory,
		optional:  optional,
	}, nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
