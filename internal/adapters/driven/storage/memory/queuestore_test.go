package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueueStore_AppendAndList(t *testing.T) {
	ctx := context.Background()
	store := NewQueueStore()

	require.NoError(t, store.Append(ctx, "111"))
	require.NoError(t, store.Append(ctx, "222"))

	pending, err := store.ListPending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, "111", pending[0].ParcelNumber)
	assert.Equal(t, "222", pending[1].ParcelNumber)
	assert.NotEqual(t, pending[0].LocalKey, pending[1].LocalKey)
}

func TestQueueStore_AppendSanitizes(t *testing.T) {
	ctx := context.Background()
	store := NewQueueStore()

	require.NoError(t, store.Append(ctx, "AB12-34"))

	pending, err := store.ListPending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "1234", pending[0].ParcelNumber)
}

func TestQueueStore_AppendEmptyIsNoOp(t *testing.T) {
	ctx := context.Background()
	store := NewQueueStore()

	require.NoError(t, store.Append(ctx, ""))
	require.NoError(t, store.Append(ctx, "---"))

	pending, err := store.ListPending(ctx)
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestQueueStore_RemoveAbsentKey(t *testing.T) {
	ctx := context.Background()
	store := NewQueueStore()

	assert.NoError(t, store.Remove(ctx, "does-not-exist"))
}
