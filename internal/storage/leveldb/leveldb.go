package leveldb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"hirelens/internal/domain/models"
	"strconv"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/util"
)

var ErrCorpusNotFound = errors.New("corpus not found")

// Storage caches extracted corpora keyed by archive digest, so an archive is
// only extracted once.
type Storage struct {
	db *leveldb.DB
}

func New(path string) (*Storage, error) {
	const op = "storage.leveldb.New"

	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{db: db}, nil
}

func (s *Storage) Close() error {
	return s.db.Close()
}

func countKey(corpusID string) []byte {
	return []byte("corpus:" + corpusID + ":count")
}

func docPrefix(corpusID string) []byte {
	return []byte("corpus:" + corpusID + ":doc:")
}

func docKey(corpusID string, i int) []byte {
	return []byte(fmt.Sprintf("corpus:%s:doc:%08d", corpusID, i))
}

// SaveCorpus replaces the cached documents of corpusID, keeping their order.
func (s *Storage) SaveCorpus(ctx context.Context, corpusID string, docs []models.Document) error {
	const op = "storage.leveldb.SaveCorpus"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	batch := new(leveldb.Batch)

	iter := s.db.NewIterator(util.BytesPrefix(docPrefix(corpusID)), nil)
	for iter.Next() {
		batch.Delete(append([]byte(nil), iter.Key()...))
	}
	iter.Release()
	if err := iter.Error(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	for i, doc := range docs {
		data, err := json.Marshal(doc)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		batch.Put(docKey(corpusID, i), data)
	}
	batch.Put(countKey(corpusID), []byte(strconv.Itoa(len(docs))))

	if err := s.db.Write(batch, nil); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Corpus returns the cached documents of corpusID in their saved order.
func (s *Storage) Corpus(ctx context.Context, corpusID string) ([]models.Document, error) {
	const op = "storage.leveldb.Corpus"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	countBytes, err := s.db.Get(countKey(corpusID), nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return nil, fmt.Errorf("%s: %w", op, ErrCorpusNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	count, err := strconv.Atoi(string(countBytes))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	docs := make([]models.Document, 0, count)
	iter := s.db.NewIterator(util.BytesPrefix(docPrefix(corpusID)), nil)
	defer iter.Release()
	for iter.Next() {
		var doc models.Document
		if err := json.Unmarshal(iter.Value(), &doc); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		docs = append(docs, doc)
	}
	if err := iter.Error(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return docs, nil
}

func (s *Storage) DeleteCorpus(ctx context.Context, corpusID string) error {
	const op = "storage.leveldb.DeleteCorpus"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	batch := new(leveldb.Batch)
	batch.Delete(countKey(corpusID))

	iter := s.db.NewIterator(util.BytesPrefix(docPrefix(corpusID)), nil)
	for iter.Next() {
		batch.Delete(append([]byte(nil), iter.Key()...))
	}
	iter.Release()
	if err := iter.Error(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return s.db.Write(batch, nil)
}
