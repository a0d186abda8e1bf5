package impl

import (
	"context"
	"io"
	"iter"
	"log/slog"
	"sync"
	"testing"

	"lounge/internal/domain/entity"
	domainerrors "lounge/internal/domain/errors"
	"lounge/internal/domain/repository"
	"lounge/internal/infra/persistence/memstore"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

var errBackendDown = errors.New("connection reset by peer")

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type faultKey struct {
	op         string
	collection string
	key        string
}

// faultyStore wraps a memstore and fails selected operations with a
// StoreError. A fault on key "" matches every key of the collection.
type faultyStore struct {
	*memstore.Store

	mu     sync.Mutex
	faults map[faultKey]int

	// unreadable lists keys each Scan reports as undecodable, per collection.
	unreadable map[string][]string

	// onSet runs after every successful Set.
	onSet func(collection string)
}

func newFaultyStore() *faultyStore {
	return &faultyStore{
		Store:      memstore.New(),
		faults:     make(map[faultKey]int),
		unreadable: make(map[string][]string),
	}
}

// fail makes the next n calls of op on collection/key fail.
func (s *faultyStore) fail(op, collection, key string, n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.faults[faultKey{op, collection, key}] = n
}

func (s *faultyStore) check(op, collection, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, k := range []faultKey{{op, collection, key}, {op, collection, ""}} {
		if s.faults[k] > 0 {
			s.faults[k]--

			return domainerrors.NewStoreError(op, collection, key, errBackendDown)
		}
	}

	return nil
}

func (s *faultyStore) Get(ctx context.Context, collection, key string) (entity.Document, bool, error) {
	if err := s.check("get", collection, key); err != nil {
		return nil, false, err
	}

	return s.Store.Get(ctx, collection, key)
}

func (s *faultyStore) Set(ctx context.Context, collection, key string, doc entity.Document) error {
	if err := s.check("set", collection, key); err != nil {
		return err
	}
	if err := s.Store.Set(ctx, collection, key, doc); err != nil {
		return err
	}
	if s.onSet != nil {
		s.onSet(collection)
	}

	return nil
}

func (s *faultyStore) Delete(ctx context.Context, collection, key string) error {
	if err := s.check("delete", collection, key); err != nil {
		return err
	}

	return s.Store.Delete(ctx, collection, key)
}

func (s *faultyStore) Scan(ctx context.Context, collection string, match repository.Predicate) (iter.Seq2[string, entity.Document], error) {
	if err := s.check("scan", collection, ""); err != nil {
		return nil, err
	}
	for _, key := range s.unreadable[collection] {
		repository.ReportUnreadable(ctx, collection, key, errors.Errorf("record %s/%s is not an object", collection, key))
	}

	return s.Store.Scan(ctx, collection, match)
}

func (s *faultyStore) Push(ctx context.Context, collection string, doc entity.Document) (string, error) {
	if err := s.check("push", collection, ""); err != nil {
		return "", err
	}

	return s.Store.Push(ctx, collection, doc)
}

func seed(t *testing.T, store repository.RecordStore, collection, key string, doc entity.Document) {
	t.Helper()
	require.NoError(t, store.Set(context.Background(), collection, key, doc))
}

func mustGet(t *testing.T, store repository.RecordStore, collection, key string) entity.Document {
	t.Helper()
	doc, ok, err := store.Get(context.Background(), collection, key)
	require.NoError(t, err)
	require.Truef(t, ok, "expected %s/%s to exist", collection, key)

	return doc
}

func assertAbsent(t *testing.T, store repository.RecordStore, collection, key string) {
	t.Helper()
	_, ok, err := store.Get(context.Background(), collection, key)
	require.NoError(t, err)
	require.Falsef(t, ok, "expected %s/%s to be absent", collection, key)
}
