package service

import (
	"context"
	"testing"
	"time"

	"prontoshop/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cartItem(id int64, price int64, qty int64) types.CartItem {
	return types.CartItem{Id: id, Name: "item", Price: price, Quantity: qty}
}

func TestCartAddMergesSameProduct(t *testing.T) {
	s := NewCartService(nil)
	ctx := context.Background()

	_, err := s.Add(ctx, "sid-1", cartItem(1, 1000, 2))
	require.NoError(t, err)
	snap, err := s.Add(ctx, "sid-1", cartItem(1, 1000, 3))
	require.NoError(t, err)

	require.Len(t, snap.Items, 1)
	assert.Equal(t, int64(5), snap.Items[0].Quantity)
	assert.Equal(t, int64(5000), snap.Total)
	assert.Equal(t, int64(5), snap.Count)
}

func TestCartUpdateQuantity(t *testing.T) {
	s := NewCartService(nil)
	ctx := context.Background()

	_, err := s.Add(ctx, "sid-1", cartItem(1, 500, 1))
	require.NoError(t, err)
	snap, err := s.UpdateQuantity(ctx, "sid-1", 1, 4)
	require.NoError(t, err)

	require.Len(t, snap.Items, 1)
	assert.Equal(t, int64(4), snap.Items[0].Quantity)
	assert.Equal(t, int64(2000), snap.Total)
}

func TestCartRemoveExactlyOneLine(t *testing.T) {
	s := NewCartService(nil)
	ctx := context.Background()

	_, err := s.Add(ctx, "sid-1", cartItem(1, 100, 1))
	require.NoError(t, err)
	_, err = s.Add(ctx, "sid-1", cartItem(2, 200, 1))
	require.NoError(t, err)

	snap, err := s.Remove(ctx, "sid-1", 1)
	require.NoError(t, err)

	require.Len(t, snap.Items, 1)
	assert.Equal(t, int64(2), snap.Items[0].Id)
}

func TestCartClear(t *testing.T) {
	s := NewCartService(nil)
	ctx := context.Background()

	_, err := s.Add(ctx, "sid-1", cartItem(1, 100, 3))
	require.NoError(t, err)

	snap, err := s.Clear(ctx, "sid-1")
	require.NoError(t, err)
	assert.Empty(t, snap.Items)
	assert.Zero(t, snap.Total)
	assert.Zero(t, snap.Count)
}

func TestCartSessionsAreIsolated(t *testing.T) {
	s := NewCartService(nil)
	ctx := context.Background()

	_, err := s.Add(ctx, "sid-a", cartItem(1, 100, 1))
	require.NoError(t, err)

	snap, err := s.Snapshot(ctx, "sid-b")
	require.NoError(t, err)
	assert.Empty(t, snap.Items)
}

func TestCartSnapshotIsImmutable(t *testing.T) {
	s := NewCartService(nil)
	ctx := context.Background()

	snap, err := s.Add(ctx, "sid-1", cartItem(1, 100, 1))
	require.NoError(t, err)

	// 改返回的切片不应影响后续快照
	snap.Items[0].Quantity = 999

	again, err := s.Snapshot(ctx, "sid-1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), again.Items[0].Quantity)
}

func TestCartSubscribeReceivesChanges(t *testing.T) {
	s := NewCartService(nil)
	ctx := context.Background()

	events, cancel := s.Subscribe("sid-1")
	defer cancel()

	_, err := s.Add(ctx, "sid-1", cartItem(1, 100, 2))
	require.NoError(t, err)

	select {
	case snap := <-events:
		assert.Equal(t, int64(200), snap.Total)
	case <-time.After(time.Second):
		t.Fatal("no snapshot received")
	}
}

func TestCartSubscribeCancelClosesChannel(t *testing.T) {
	s := NewCartService(nil)

	events, cancel := s.Subscribe("sid-1")
	cancel()

	_, ok := <-events
	assert.False(t, ok)
}
