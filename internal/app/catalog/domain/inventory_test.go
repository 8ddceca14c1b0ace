package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestInventory(t *testing.T, now time.Time) *Inventory {
	t.Helper()
	inv := NewInventory("inv-1", "prod-1", 10, 1000, now)
	require.NoError(t, inv.Restock(100, now))
	inv.ClearEvents()
	inv.Changes().Clear()
	return inv
}

func TestNewInventory_Defaults(t *testing.T) {
	now := time.Now().UTC()
	inv := NewInventory("inv-1", "prod-1", 0, 0, now)
	assert.Equal(t, int64(DefaultReorderThreshold), inv.ReorderThreshold())
	assert.Equal(t, int64(DefaultMaxStock), inv.MaxStock())
	assert.Zero(t, inv.AvailableForSale())
}

func TestReserve(t *testing.T) {
	now := time.Now().UTC()
	inv := newTestInventory(t, now)

	require.NoError(t, inv.Reserve(30, now))
	assert.Equal(t, int64(30), inv.ReservedStock())
	assert.Equal(t, int64(70), inv.AvailableForSale())

	err := inv.Reserve(0, now)
	assert.ErrorIs(t, err, ErrNonPositiveQuantity)

	err = inv.Reserve(71, now)
	var insufficient *InsufficientStockError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, int64(71), insufficient.Requested)
	assert.Equal(t, int64(70), insufficient.Available)
	// counters unchanged on failure
	assert.Equal(t, int64(30), inv.ReservedStock())
}

func TestRelease(t *testing.T) {
	now := time.Now().UTC()
	inv := newTestInventory(t, now)
	require.NoError(t, inv.Reserve(30, now))

	require.NoError(t, inv.Release(10, now))
	assert.Equal(t, int64(20), inv.ReservedStock())
	assert.Equal(t, int64(100), inv.AvailableStock())

	err := inv.Release(21, now)
	assert.ErrorIs(t, err, ErrReleaseExceedsReserved)
	err = inv.Release(-1, now)
	assert.ErrorIs(t, err, ErrNonPositiveQuantity)
}

func TestFulfill(t *testing.T) {
	now := time.Now().UTC()
	inv := newTestInventory(t, now)
	require.NoError(t, inv.Reserve(30, now))

	require.NoError(t, inv.Fulfill(30, now))
	assert.Equal(t, int64(70), inv.AvailableStock())
	assert.Zero(t, inv.ReservedStock())

	err := inv.Fulfill(1, now)
	assert.ErrorIs(t, err, ErrFulfillExceedsReserved)
}

func TestRestock(t *testing.T) {
	now := time.Now().UTC()
	inv := newTestInventory(t, now)

	require.NoError(t, inv.Restock(500, now))
	assert.Equal(t, int64(600), inv.AvailableStock())

	err := inv.Restock(401, now)
	assert.ErrorIs(t, err, ErrMaxStockExceeded)
	assert.Equal(t, int64(600), inv.AvailableStock())
}

func TestNeedsReorder(t *testing.T) {
	now := time.Now().UTC()
	inv := NewInventory("inv-1", "prod-1", 10, 1000, now)
	require.NoError(t, inv.Restock(10, now))
	assert.True(t, inv.NeedsReorder())

	require.NoError(t, inv.Restock(1, now))
	assert.False(t, inv.NeedsReorder())
}

func TestInventoryEvents(t *testing.T) {
	now := time.Now().UTC()
	inv := NewInventory("inv-1", "prod-1", 10, 1000, now)

	require.NoError(t, inv.Restock(50, now))
	require.NoError(t, inv.Reserve(5, now))

	events := inv.DomainEvents()
	require.Len(t, events, 2)
	assert.Equal(t, "inventory.restock", events[0].EventType())
	assert.Equal(t, "inventory.reserve", events[1].EventType())
	assert.Equal(t, "prod-1", events[1].AggregateID())
}
