package app

import (
	"fmt"
	"hirelens/internal/storage/leveldb"
	"os"
	"path/filepath"
)

type StorageApp struct {
	storage *leveldb.Storage
}

func NewStorageApp(storagePath string) (*StorageApp, error) {
	if dir := filepath.Dir(storagePath); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("app.NewStorageApp: %w", err)
		}
	}
	storage, err := leveldb.New(storagePath)
	if err != nil {
		return nil, err
	}
	return &StorageApp{storage: storage}, nil
}

func (s *StorageApp) Stop() error {
	return s.storage.Close()
}

func (s *StorageApp) Storage() *leveldb.Storage {
	return s.storage
}
