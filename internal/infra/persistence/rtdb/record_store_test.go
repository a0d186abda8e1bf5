package rtdb

import (
	"bytes"
	"context"
	"log/slog"
	"slices"
	"testing"

	"lounge/internal/domain/entity"
	"lounge/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_DecodeChildren_ReportsUnreadable(t *testing.T) {
	var buf bytes.Buffer
	store := New(nil, slog.New(slog.NewTextHandler(&buf, nil)))

	var unreadable []string
	ctx := repository.WithUnreadableHandler(context.Background(), func(collection, key string, err error) {
		assert.Equal(t, entity.CollectionOrders, collection)
		assert.Error(t, err)
		unreadable = append(unreadable, key)
	})

	snapshot := store.decodeChildren(ctx, entity.CollectionOrders, map[string]any{
		"o1": map[string]any{"email": "jane.doe@example.com", "orderNumber": 1001},
		"o2": "jane.doe@example.com",
		"o3": []any{1, 2},
	})

	require.Len(t, snapshot, 1)
	assert.Equal(t, "jane.doe@example.com", snapshot["o1"]["email"])
	assert.Equal(t, float64(1001), snapshot["o1"]["orderNumber"])

	slices.Sort(unreadable)
	assert.Equal(t, []string{"o2", "o3"}, unreadable)
	assert.Contains(t, buf.String(), "Skipping unreadable record")
	assert.Contains(t, buf.String(), "key=o2")
}

func TestStore_DecodeChildren_WithoutHandler(t *testing.T) {
	var buf bytes.Buffer
	store := New(nil, slog.New(slog.NewTextHandler(&buf, nil)))

	snapshot := store.decodeChildren(context.Background(), entity.CollectionBookings, map[string]any{
		"b1": true,
	})

	assert.Empty(t, snapshot)
	assert.Contains(t, buf.String(), "collection=bookings")
}
