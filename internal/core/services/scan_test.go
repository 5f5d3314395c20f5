package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/packlane-labs/packtrak-cli/internal/adapters/driven/storage/memory"
	"github.com/packlane-labs/packtrak-cli/internal/core/domain"
)

// failingQueue implements driven.QueueStore and fails every append.
type failingQueue struct {
	memory.QueueStore
}

func (q *failingQueue) Append(_ context.Context, _ string) error {
	return errors.New("disk full")
}

func TestCapture_SanitizesAndQueues(t *testing.T) {
	ctx := context.Background()
	queue := memory.NewQueueStore()
	svc := NewScanService(domain.VariantTracking, queue)

	record, err := svc.Capture(ctx, "AB12-34")
	require.NoError(t, err)
	assert.Equal(t, "1234", record.ParcelNumber)
	assert.False(t, record.StoredAt.IsZero())

	pending, err := queue.ListPending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "1234", pending[0].ParcelNumber)
}

func TestCapture_RejectsInputWithoutDigits(t *testing.T) {
	ctx := context.Background()
	queue := memory.NewQueueStore()
	svc := NewScanService(domain.VariantTracking, queue)

	for _, input := range []string{"", "   ", "no-digits"} {
		_, err := svc.Capture(ctx, input)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "input %q", input)
	}

	pending, err := queue.ListPending(ctx)
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestCapture_SwallowsStorageErrors(t *testing.T) {
	svc := NewScanService(domain.VariantTracking, &failingQueue{})

	record, err := svc.Capture(context.Background(), "987")

	require.NoError(t, err, "storage failure must not surface to the scan flow")
	assert.Equal(t, "987", record.ParcelNumber)
}
