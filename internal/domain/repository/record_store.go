// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"iter"
	"slices"
	"sync/atomic"

	"lounge/internal/domain/entity"
)

// Predicate selects records during a Scan.
type Predicate func(key string, doc entity.Document) bool

// All matches every record.
func All(string, entity.Document) bool { return true }

// FieldEquals matches records whose string field equals value under eq.
func FieldEquals(field, value string, eq func(a, b string) bool) Predicate {
	return func(_ string, doc entity.Document) bool {
		s, ok := doc[field].(string)

		return ok && eq(s, value)
	}
}

// RecordStore is the document database shared by every feature. Records are
// addressed by collection and key.
type RecordStore interface {
	// Get returns the record and whether it exists.
	Get(ctx context.Context, collection, key string) (entity.Document, bool, error)

	// Set overwrites the record at key.
	Set(ctx context.Context, collection, key string, doc entity.Document) error

	// Delete removes the record at key. Deleting an absent key succeeds.
	Delete(ctx context.Context, collection, key string) error

	// Scan snapshots the collection and returns the matching records ordered
	// by key. The sequence yields only on its first range. Records that cannot
	// be decoded are left out and passed to ReportUnreadable.
	Scan(ctx context.Context, collection string, match Predicate) (iter.Seq2[string, entity.Document], error)

	// Push appends a record under a generated key that sorts chronologically.
	Push(ctx context.Context, collection string, doc entity.Document) (string, error)
}

// UnreadableFunc receives a record a Scan left out because it could not be
// decoded.
type UnreadableFunc func(collection, key string, err error)

type unreadableKey struct{}

// WithUnreadableHandler returns a context whose scans report unreadable
// records to fn.
func WithUnreadableHandler(ctx context.Context, fn UnreadableFunc) context.Context {
	return context.WithValue(ctx, unreadableKey{}, fn)
}

// ReportUnreadable passes an undecodable record to the handler on ctx, if any.
func ReportUnreadable(ctx context.Context, collection, key string, err error) {
	if fn, ok := ctx.Value(unreadableKey{}).(UnreadableFunc); ok && fn != nil {
		fn(collection, key, err)
	}
}

// SnapshotSeq turns an already-read snapshot into the single-use, key-ordered
// sequence every RecordStore.Scan returns. match may be nil.
func SnapshotSeq(snapshot map[string]entity.Document, match Predicate) iter.Seq2[string, entity.Document] {
	keys := make([]string, 0, len(snapshot))
	for key, doc := range snapshot {
		if match == nil || match(key, doc) {
			keys = append(keys, key)
		}
	}
	slices.Sort(keys)

	var consumed atomic.Bool

	return func(yield func(string, entity.Document) bool) {
		if !consumed.CompareAndSwap(false, true) {
			return
		}
		for _, key := range keys {
			if !yield(key, snapshot[key].Clone()) {
				return
			}
		}
	}
}

// Collect drains a scan into a slice of keys and documents, in order.
func Collect(seq iter.Seq2[string, entity.Document]) ([]string, []entity.Document) {
	var (
		keys []string
		docs []entity.Document
	)
	for key, doc := range seq {
		keys = append(keys, key)
		docs = append(docs, doc)
	}

	return keys, docs
}
