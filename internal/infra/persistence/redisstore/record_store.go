// Package redisstore is a RecordStore keeping each collection in one Redis
// hash, field = record key, value = JSON document.
package redisstore

import (
	"context"
	"encoding/json"
	"iter"
	"log/slog"

	domainerrors "lounge/internal/domain/errors"
	"lounge/internal/domain/entity"
	"lounge/internal/domain/repository"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Store implements repository.RecordStore on a Redis client.
type Store struct {
	client redis.Cmdable
	prefix string
	logger *slog.Logger
}

var _ repository.RecordStore = (*Store)(nil)

// New wraps a Redis client. prefix namespaces the collection hashes.
func New(client redis.Cmdable, prefix string, logger *slog.Logger) *Store {
	return &Store{client: client, prefix: prefix, logger: logger}
}

func (s *Store) hashKey(collection string) string {
	if s.prefix == "" {
		return "collection:" + collection
	}

	return s.prefix + ":collection:" + collection
}

func decode(collection, key, raw string) (entity.Document, error) {
	var doc entity.Document
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, errors.Wrapf(err, "record %s/%s is not a JSON object", collection, key)
	}

	return doc, nil
}

// Get implements repository.RecordStore.
func (s *Store) Get(ctx context.Context, collection, key string) (entity.Document, bool, error) {
	raw, err := s.client.HGet(ctx, s.hashKey(collection), key).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, domainerrors.NewStoreError("get", collection, key, err)
	}

	doc, err := decode(collection, key, raw)
	if err != nil {
		return nil, false, err
	}

	return doc, true, nil
}

// Set implements repository.RecordStore.
func (s *Store) Set(ctx context.Context, collection, key string, doc entity.Document) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return errors.Wrapf(err, "record %s/%s", collection, key)
	}
	if err := s.client.HSet(ctx, s.hashKey(collection), key, raw).Err(); err != nil {
		return domainerrors.NewStoreError("set", collection, key, err)
	}

	return nil
}

// Delete implements repository.RecordStore.
func (s *Store) Delete(ctx context.Context, collection, key string) error {
	if err := s.client.HDel(ctx, s.hashKey(collection), key).Err(); err != nil {
		return domainerrors.NewStoreError("delete", collection, key, err)
	}

	return nil
}

// Scan implements repository.RecordStore. HGETALL gives an atomic snapshot of
// the hash.
func (s *Store) Scan(ctx context.Context, collection string, match repository.Predicate) (iter.Seq2[string, entity.Document], error) {
	all, err := s.client.HGetAll(ctx, s.hashKey(collection)).Result()
	if err != nil {
		return nil, domainerrors.NewStoreError("scan", collection, "", err)
	}

	snapshot := make(map[string]entity.Document, len(all))
	for key, raw := range all {
		doc, err := decode(collection, key, raw)
		if err != nil {
			s.logger.WarnContext(ctx, "Skipping unreadable record", "collection", collection, "key", key, "error", err)
			repository.ReportUnreadable(ctx, collection, key, err)

			continue
		}
		snapshot[key] = doc
	}

	return repository.SnapshotSeq(snapshot, match), nil
}

// Push implements repository.RecordStore with time-ordered UUIDv7 keys.
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
