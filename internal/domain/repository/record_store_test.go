package repository

import (
	"strings"
	"testing"

	"lounge/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestSnapshotSeq_OrderedAndFiltered(t *testing.T) {
	snapshot := map[string]entity.Document{
		"c": {"email": "jane@example.com"},
		"a": {"email": "jane@example.com"},
		"b": {"email": "bob@example.com"},
	}

	seq := SnapshotSeq(snapshot, FieldEquals("email", "JANE@example.com", strings.EqualFold))
	keys, docs := Collect(seq)

	assert.Equal(t, []string{"a", "c"}, keys)
	assert.Len(t, docs, 2)
}

func TestSnapshotSeq_SingleUse(t *testing.T) {
	seq := SnapshotSeq(map[string]entity.Document{"a": {}, "b": {}}, All)

	first, _ := Collect(seq)
	second, _ := Collect(seq)

	assert.Equal(t, []string{"a", "b"}, first)
	assert.Empty(t, second)
}

func TestSnapshotSeq_YieldsCopies(t *testing.T) {
	snapshot := map[string]entity.Document{"a": {"email": "jane@example.com"}}

	for _, doc := range SnapshotSeq(snapshot, nil) {
		doc["email"] = "changed"
	}

	assert.Equal(t, "jane@example.com", snapshot["a"]["email"])
}

func TestSnapshotSeq_EarlyBreak(t *testing.T) {
	seq := SnapshotSeq(map[string]entity.Document{"a": {}, "b": {}, "c": {}}, nil)

	var seen []string
	for key := range seq {
		seen = append(seen, key)
		if key == "b" {
			break
		}
	}

	assert.Equal(t, []string{"a", "b"}, seen)
}
