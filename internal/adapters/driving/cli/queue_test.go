package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueueCmd_EmptyQueue(t *testing.T) {
	setupCLI(t, true)

	out, err := runCLI(t, "queue")
	require.NoError(t, err)
	assert.Contains(t, out, "Queue is empty.")
}

func TestQueueCmd_ListsPendingInOrder(t *testing.T) {
	fixture := setupCLI(t, true)

	ctx := context.Background()
	require.NoError(t, fixture.queues["tracking"].Append(ctx, "111"))
	require.NoError(t, fixture.queues["tracking"].Append(ctx, "222"))

	out, err := runCLI(t, "queue")
	require.NoError(t, err)

	assert.Contains(t, out, "2 pending scan(s):")
	assert.Contains(t, out, "[1] 111")
	assert.Contains(t, out, "[2] 222")
}
