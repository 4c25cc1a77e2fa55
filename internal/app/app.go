package app

import (
	"fmt"
	"hirelens/config"
	"hirelens/internal/lib/logger/sl"
	"hirelens/internal/services/extract"
	"hirelens/internal/services/loader"
	"hirelens/internal/workers"
	"log/slog"
)

// App wires the corpus loader with its worker pool and, unless caching is
// disabled, the LevelDB corpus cache.
type App struct {
	Loader     *loader.Loader
	Pool       *workers.WorkerPool
	StorageApp *StorageApp

	log *slog.Logger
}

func New(log *slog.Logger, cfg *config.Config) (*App, error) {
	const op = "app.New"

	pool, err := workers.New(log, cfg.Loader.Workers)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	a := &App{Pool: pool, log: log}

	var cache loader.CorpusCache
	if !cfg.Loader.NoCache {
		storageApp, err := NewStorageApp(cfg.StoragePath)
		if err != nil {
			pool.Release()
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		a.StorageApp = storageApp
		cache = storageApp.Storage()
		log.Debug("Corpus cache opened", "path", cfg.StoragePath)
	}

	a.Loader = loader.NewLoader(log, pool, extract.Default(), cache)

	return a, nil
}

// Stop releases the pool and closes the cache.
func (a *App) Stop() {
	a.Pool.Release()
	if a.StorageApp == nil {
		return
	}
	if err := a.StorageApp.Stop(); err != nil {
		a.log.Error("Failed to close database", "error", sl.Err(err))
	}
}
