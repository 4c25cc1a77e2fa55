package loader

import (
	"archive/zip"
	"bytes"
	"context"
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"
	"hirelens/internal/domain/models"
	"hirelens/internal/lib/logger/sl"
	"hirelens/internal/services/corpus"
	"hirelens/internal/services/extract"
	"hirelens/internal/storage/leveldb"
	"hirelens/internal/workers"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/dustin/go-humanize"
)

const jobExtract workers.JobType = "extract"

// CorpusCache stores extracted corpora by archive digest.
type CorpusCache interface {
	SaveCorpus(ctx context.Context, corpusID string, docs []models.Document) error
	Corpus(ctx context.Context, corpusID string) ([]models.Document, error)
}

type Loader struct {
	log        *slog.Logger
	pool       *workers.WorkerPool
	extractors extract.Registry
	cache      CorpusCache
}

// NewLoader creates a loader. cache may be nil to always extract.
func NewLoader(log *slog.Logger, pool *workers.WorkerPool, extractors extract.Registry, cache CorpusCache) *Loader {
	if extractors == nil {
		extractors = extract.Default()
	}
	return &Loader{
		log:        log,
		pool:       pool,
		extractors: extractors,
		cache:      cache,
	}
}

// Digest identifies an archive by the md5 of its bytes.
func Digest(data []byte) string {
	sum := md5.Sum(data)
	return hex.EncodeToString(sum[:])
}

// LoadArchive reads a ZIP archive from disk and returns its selected documents.
func (l *Loader) LoadArchive(ctx context.Context, archivePath string) ([]models.Document, error) {
	const op = "loader.LoadArchive"

	data, err := os.ReadFile(archivePath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	l.log.Info("Archive opened", "path", archivePath, "size", humanize.Bytes(uint64(len(data))))

	return l.Load(ctx, data)
}

// Load extracts the documents of a ZIP archive held in memory. Entries are
// selected and ordered by corpus.Select; entries whose extraction fails are
// logged and left out.
func (l *Loader) Load(ctx context.Context, data []byte) ([]models.Document, error) {
	const op = "loader.Load"

	corpusID := Digest(data)
	if docs, ok := l.cached(ctx, corpusID); ok {
		return docs, nil
	}

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	entries := make([]corpus.Entry, 0, len(zr.File))
	for i, f := range zr.File {
		entries = append(entries, corpus.Entry{
			Name:  f.Name,
			Size:  int64(f.UncompressedSize64),
			Dir:   f.FileInfo().IsDir(),
			Index: i,
		})
	}
	selected := corpus.Select(entries)
	l.log.Debug("Entries selected", "total", len(entries), "selected", len(selected))

	jobs := make([]workers.Job[corpus.Entry, models.Document], 0, len(selected))
	for _, entry := range selected {
		file := zr.File[entry.Index]
		jobs = append(jobs, workers.Job[corpus.Entry, models.Document]{
			Description: workers.JobDescriptor{ID: workers.JobID(entry.Name), JobType: jobExtract},
			Args:        entry,
			ExecFn: func(_ context.Context, entry corpus.Entry) (models.Document, error) {
				return l.extractEntry(file, entry)
			},
		})
	}

	start := time.Now()
	results := workers.Run(ctx, l.pool, jobs)

	docs := make([]models.Document, 0, len(results))
	for _, res := range results {
		if res.Err != nil {
			continue
		}
		docs = append(docs, res.Value)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	l.log.Info("Archive extracted",
		"documents", len(docs),
		"failed", len(results)-len(docs),
		"elapsed", time.Since(start),
	)
	l.pool.Metrics().Log(l.log, "Extraction metrics")

	if l.cache != nil {
		if err := l.cache.SaveCorpus(ctx, corpusID, docs); err != nil {
			l.log.Warn("Failed to cache corpus", "corpus", corpusID, sl.Err(err))
		}
	}

	return docs, nil
}

func (l *Loader) cached(ctx context.Context, corpusID string) ([]models.Document, bool) {
	if l.cache == nil {
		return nil, false
	}
	docs, err := l.cache.Corpus(ctx, corpusID)
	if err != nil {
		if !errors.Is(err, leveldb.ErrCorpusNotFound) {
			l.log.Warn("Failed to read corpus cache", "corpus", corpusID, sl.Err(err))
		}
		return nil, false
	}
	l.log.Info("Corpus loaded from cache", "corpus", corpusID, "documents", len(docs))
	return docs, true
}

func (l *Loader) extractEntry(file *zip.File, entry corpus.Entry) (models.Document, error) {
	extractor, err := l.extractors.For(entry.Name)
	if err != nil {
		return models.Document{}, err
	}

	rc, err := file.Open()
	if err != nil {
		return models.Document{}, err
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return models.Document{}, err
	}

	text, err := extractor.Extract(data)
	if err != nil {
		return models.Document{}, err
	}

	return *models.NewDocument(entry.Name, text, entry.Size), nil
}
