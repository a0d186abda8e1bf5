// Package denormalization describes every collection that carries a copy of
// a user's identity and how to find the copies.
package denormalization

import (
	"lounge/internal/domain/entity"
	"lounge/internal/domain/identity"
)

// Strategy is how an identity is located in a collection.
type Strategy int

const (
	// DirectKey means the record key is the identity key.
	DirectKey Strategy = iota + 1
	// FieldScan means records are found by comparing a field to the email.
	FieldScan
)

func (s Strategy) String() string {
	switch s {
	case DirectKey:
		return "direct_key"
	case FieldScan:
		return "field_scan"
	default:
		return "unknown"
	}
}

// Entry binds a collection to its lookup strategy. MatchField is only set
// for FieldScan entries.
type Entry struct {
	Collection string
	Strategy   Strategy
	MatchField string
}

// Matches reports whether doc references email through the entry's match
// field. Comparison is trimmed and case-insensitive.
func (e Entry) Matches(doc entity.Document, email string) bool {
	if e.Strategy != FieldScan || doc == nil {
		return false
	}
	value, ok := doc[e.MatchField].(string)
	if !ok {
		return false
	}

	return identity.Equal(value, email)
}

// Lookup is an Entry bound to the value to look up: the identity key for
// DirectKey entries and the email for FieldScan entries.
type Lookup struct {
	Entry
	Value string
}

// Index is the ordered set of denormalization entries. Direct-key entries
// always come before scan entries.
type Index struct {
	entries []Entry
}

// NewIndex builds an index, moving direct-key entries ahead of scan entries
// while keeping the relative order within each group.
func NewIndex(entries ...Entry) *Index {
	ordered := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if e.Strategy == DirectKey {
			ordered = append(ordered, e)
		}
	}
	for _, e := range entries {
		if e.Strategy != DirectKey {
			ordered = append(ordered, e)
		}
	}

	return &Index{entries: ordered}
}

// Default returns the index of every collection holding identity copies.
// Reviews and service requests keep the email they were submitted with and
// are deliberately absent.
func Default() *Index {
	return NewIndex(
		Entry{Collection: entity.CollectionUsers, Strategy: DirectKey},
		Entry{Collection: entity.CollectionCarts, Strategy: DirectKey},
		Entry{Collection: entity.CollectionOrders, Strategy: FieldScan, MatchField: entity.FieldEmail},
		Entry{Collection: entity.CollectionBookings, Strategy: FieldScan, MatchField: entity.FieldEmail},
		Entry{Collection: entity.CollectionDeletionRequests, Strategy: FieldScan, MatchField: entity.FieldEmail},
	)
}

// Entries returns a copy of the ordered entries.
func (idx *Index) Entries() []Entry {
	out := make([]Entry, len(idx.entries))
	copy(out, idx.entries)

	return out
}

// Entry returns the entry for collection.
func (idx *Index) Entry(collection string) (Entry, bool) {
	for _, e := range idx.entries {
		if e.Collection == collection {
			return e, true
		}
	}

	return Entry{}, false
}

// CollectionsForIdentity returns every entry bound to the value that locates
// the given identity in it. oldKeyOrEmail may be an email or an identity
// key; input without '.' is treated as a key.
func (idx *Index) CollectionsForIdentity(oldKeyOrEmail string) []Lookup {
	var key, email string
	if identity.IsKey(oldKeyOrEmail) {
		key = oldKeyOrEmail
		email = identity.Decode(oldKeyOrEmail)
	} else {
		email = oldKeyOrEmail
		key = identity.EncodeUnchecked(oldKeyOrEmail)
	}

	lookups := make([]Lookup, 0, len(idx.entries))
	for _, e := range idx.entries {
		value := email
		if e.Strategy == DirectKey {
			value = key
		}
		lookups = append(lookups, Lookup{Entry: e, Value: value})
	}

	return lookups
}
