package app

import (
	"context"
	"hirelens/config"
	"hirelens/internal/domain/models"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T, noCache bool) *config.Config {
	cfg := &config.Config{StoragePath: filepath.Join(t.TempDir(), "db", "hirelens.db")}
	cfg.Loader.Workers = 2
	cfg.Loader.NoCache = noCache
	return cfg
}

func TestNewWithCache(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	application, err := New(log, testConfig(t, false))
	require.NoError(t, err)
	defer application.Stop()

	require.NotNil(t, application.StorageApp)
	assert.Equal(t, 2, application.Pool.Cap())

	ctx := context.Background()
	docs := []models.Document{*models.NewDocument("a.pdf", "python", 10)}
	require.NoError(t, application.StorageApp.Storage().SaveCorpus(ctx, "id", docs))

	got, err := application.StorageApp.Storage().Corpus(ctx, "id")
	require.NoError(t, err)
	assert.Equal(t, docs, got)
}

func TestNewWithoutCache(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	application, err := New(log, testConfig(t, true))
	require.NoError(t, err)
	defer application.Stop()

	assert.Nil(t, application.StorageApp)
	assert.NotNil(t, application.Loader)
}
