// Package mongostore is a RecordStore keeping each collection in a MongoDB
// collection of the same name, with the record key as _id.
package mongostore

import (
	"context"
	"encoding/json"
	"iter"
	"log/slog"

	domainerrors "lounge/internal/domain/errors"
	"lounge/internal/domain/entity"
	"lounge/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// record wraps the document so user fields can never clash with _id.
type record struct {
	ID   string `bson:"_id"`
	Data any    `bson:"data"`
}

// storedRecord is record as read back; data stays raw until converted.
type storedRecord struct {
	ID   string   `bson:"_id"`
	Data bson.Raw `bson:"data"`
}

// Store implements repository.RecordStore on a MongoDB database.
type Store struct {
	db     *mongo.Database
	logger *slog.Logger
}

var _ repository.RecordStore = (*Store)(nil)

// New wraps a database handle.
func New(db *mongo.Database, logger *slog.Logger) *Store {
	return &Store{db: db, logger: logger}
}

// toDocument converts through relaxed extended JSON, which renders BSON
// values as plain JSON.
func toDocument(collection string, rec storedRecord) (entity.Document, error) {
	raw, err := bson.MarshalExtJSON(rec.Data, false, false)
	if err != nil {
		return nil, errors.Wrapf(err, "record %s/%s", collection, rec.ID)
	}

	var doc entity.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, errors.Wrapf(err, "record %s/%s", collection, rec.ID)
	}

	return doc, nil
}

// Get implements repository.RecordStore.
func (s *Store) Get(ctx context.Context, collection, key string) (entity.Document, bool, error) {
	var rec storedRecord
	err := s.db.Collection(collection).FindOne(ctx, bson.M{"_id": key}).Decode(&rec)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, domainerrors.NewStoreError("get", collection, key, err)
	}

	doc, err := toDocument(collection, rec)
	if err != nil {
		return nil, false, err
	}

	return doc, true, nil
}

// Set implements repository.RecordStore.
func (s *Store) Set(ctx context.Context, collection, key string, doc entity.Document) error {
	normalized, err := entity.NormalizeDocument(doc)
	if err != nil {
		return errors.Wrapf(err, "record %s/%s", collection, key)
	}

	_, err = s.db.Collection(collection).ReplaceOne(ctx,
		bson.M{"_id": key},
		record{ID: key, Data: map[string]any(normalized)},
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return domainerrors.NewStoreError("set", collection, key, err)
	}

	return nil
}

// Delete implements repository.RecordStore.
func (s *Store) Delete(ctx context.Context, collection, key string) error {
	if _, err := s.db.Collection(collection).DeleteOne(ctx, bson.M{"_id": key}); err != nil {
		return domainerrors.NewStoreError("delete", collection, key, err)
	}

	return nil
}

// Scan implements repository.RecordStore. The cursor is drained before the
// sequence is returned so the result is a snapshot.
func (s *Store) Scan(ctx context.Context, collection string, match repository.Predicate) (iter.Seq2[string, entity.Document], error) {
	cursor, err := s.db.Collection(collection).Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, domainerrors.NewStoreError("scan", collection, "", err)
	}
	defer cursor.Close(ctx)

	var records []storedRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, domainerrors.NewStoreError("scan", collection, "", err)
	}

	snapshot := make(map[string]entity.Document, len(records))
	for _, rec := range records {
		doc, err := toDocument(collection, rec)
		if err != nil {
			s.logger.WarnContext(ctx, "Skipping unreadable record", "collection", collection, "key", rec.ID, "error", err)
			repository.ReportUnreadable(ctx, collection, rec.ID, err)

			continue
		}
		snapshot[rec.ID] = doc
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
