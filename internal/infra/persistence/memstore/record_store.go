// Package memstore is a process-local RecordStore for tests and local runs.
package memstore

import (
	"context"
	"iter"
	"sync"

	"lounge/internal/domain/entity"
	"lounge/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Store keeps every collection in memory. Documents are normalized on write
// and copied on read, so callers never share state with the store.
type Store struct {
	mu          sync.RWMutex
	collections map[string]map[string]entity.Document
}

var _ repository.RecordStore = (*Store)(nil)

// New creates an empty store.
func New() *Store {
	return &Store{collections: make(map[string]map[string]entity.Document)}
}

// Get implements repository.RecordStore.
func (s *Store) Get(_ context.Context, collection, key string) (entity.Document, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.collections[collection][key]
	if !ok {
		return nil, false, nil
	}

	copied, err := entity.NormalizeDocument(doc)
	if err != nil {
		return nil, false, err
	}

	return copied, true, nil
}

// Set implements repository.RecordStore.
func (s *Store) Set(_ context.Context, collection, key string, doc entity.Document) error {
	normalized, err := entity.NormalizeDocument(doc)
	if err != nil {
		return errors.Wrapf(err, "set %s/%s", collection, key)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	records, ok := s.collections[collection]
	if !ok {
		records = make(map[string]entity.Document)
		s.collections[collection] = records
	}
	records[key] = normalized

	return nil
}

// Delete implements repository.RecordStore.
func (s *Store) Delete(_ context.Context, collection, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.collections[collection], key)

	return nil
}

// Scan implements repository.RecordStore.
func (s *Store) Scan(_ context.Context, collection string, match repository.Predicate) (iter.Seq2[string, entity.Document], error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := make(map[string]entity.Document, len(s.collections[collection]))
	for key, doc := range s.collections[collection] {
		copied, err := entity.NormalizeDocument(doc)
		if err != nil {
			return nil, err
		}
		snapshot[key] = copied
	}

	return repository.SnapshotSeq(snapshot, match), nil
}

// Push implements repository.RecordStore.
func (s *Store) Push(ctx context.Context, collection string, doc entity.Document) (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", errors.Wrap(err, "failed to generate push key")
	}
	key := id.String()

	if err := s.Set(ctx, collection, key, doc); err != nil {
		return "", err
	}

	return key, nil
}

// Len returns the number of records in collection.
func (s *Store) Len(collection string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.collections[collection])
}
