// Package rtdb is the RecordStore backed by the Firebase Realtime Database,
// where records live at <collection>/<key>.
package rtdb

import (
	"context"
	"iter"
	"log/slog"
	"strings"

	domainerrors "lounge/internal/domain/errors"
	"lounge/internal/domain/entity"
	"lounge/internal/domain/repository"

	"firebase.google.com/go/v4/db"
	"github.com/pkg/errors"
)

// Store implements repository.RecordStore on a realtime database client.
type Store struct {
	client *db.Client
	logger *slog.Logger
}

var _ repository.RecordStore = (*Store)(nil)

// New wraps a realtime database client.
func New(client *db.Client, logger *slog.Logger) *Store {
	return &Store{client: client, logger: logger}
}

func path(collection, key string) string {
	return strings.Trim(collection, "/") + "/" + key
}

// Get implements repository.RecordStore.
func (s *Store) Get(ctx context.Context, collection, key string) (entity.Document, bool, error) {
	var raw any
	if err := s.client.NewRef(path(collection, key)).Get(ctx, &raw); err != nil {
		return nil, false, domainerrors.NewStoreError("get", collection, key, err)
	}
	if raw == nil {
		return nil, false, nil
	}

	doc, err := entity.NormalizeDocument(raw)
	if err != nil {
		return nil, false, errors.Wrapf(err, "record %s/%s", collection, key)
	}

	return doc, true, nil
}

// Set implements repository.RecordStore.
func (s *Store) Set(ctx context.Context, collection, key string, doc entity.Document) error {
	normalized, err := entity.NormalizeDocument(doc)
	if err != nil {
		return errors.Wrapf(err, "record %s/%s", collection, key)
	}
	if err := s.client.NewRef(path(collection, key)).Set(ctx, map[string]any(normalized)); err != nil {
		return domainerrors.NewStoreError("set", collection, key, err)
	}

	return nil
}

// Delete implements repository.RecordStore. The database treats deleting a
// missing path as success.
func (s *Store) Delete(ctx context.Context, collection, key string) error {
	if err := s.client.NewRef(path(collection, key)).Delete(ctx); err != nil {
		return domainerrors.NewStoreError("delete", collection, key, err)
	}

	return nil
}

// Scan implements repository.RecordStore. The whole collection is read in
// one request.
func (s *Store) Scan(ctx context.Context, collection string, match repository.Predicate) (iter.Seq2[string, entity.Document], error) {
	var raw map[string]any
	if err := s.client.NewRef(strings.Trim(collection, "/")).Get(ctx, &raw); err != nil {
		return nil, domainerrors.NewStoreError("scan", collection, "", err)
	}

	return repository.SnapshotSeq(s.decodeChildren(ctx, collection, raw), match), nil
}

// decodeChildren keeps the children that are objects. Anything else is
// logged and reported as unreadable.
func (s *Store) decodeChildren(ctx context.Context, collection string, raw map[string]any) map[string]entity.Document {
	snapshot := make(map[string]entity.Document, len(raw))
	for key, value := range raw {
		if _, ok := value.(map[string]any); !ok {
			s.skip(ctx, collection, key, errors.Errorf("record %s/%s is not an object", collection, key))

			continue
		}
		doc, err := entity.NormalizeDocument(value)
		if err != nil {
			s.skip(ctx, collection, key, errors.Wrapf(err, "record %s/%s", collection, key))

			continue
		}
		snapshot[key] = doc
	}

	return snapshot
}

func (s *Store) skip(ctx context.Context, collection, key string, err error) {
	s.logger.WarnContext(ctx, "Skipping unreadable record", "collection", collection, "key", key, "error", err)
	repository.ReportUnreadable(ctx, collection, key, err)
}

// Push implements repository.RecordStore using the database's own
// chronological push keys.
func (s *Store) Push(ctx context.Context, collection string, doc entity.Document) (string, error) {
	normalized, err := entity.NormalizeDocument(doc)
	if err != nil {
		return "", errors.Wrapf(err, "record %s", collection)
	}
	ref, err := s.client.NewRef(strings.Trim(collection, "/")).Push(ctx, map[string]any(normalized))
	if err != nil {
		return "", domainerrors.NewStoreError("push", collection, "", err)
	}

	return ref.Key, nil
}
