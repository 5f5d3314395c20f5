// Package memory provides in-memory implementations of the driven storage
// ports. They are used as test doubles and for ephemeral runs.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/packlane-labs/packtrak-cli/internal/core/domain"
	"github.com/packlane-labs/packtrak-cli/internal/core/ports/driven"
)

// Ensure QueueStore implements the interface.
var _ driven.QueueStore = (*QueueStore)(nil)

// QueueStore is an in-memory implementation of driven.QueueStore.
type QueueStore struct {
	mu      sync.RWMutex
	records []domain.PendingScan
}

// NewQueueStore creates a new in-memory queue store.
func NewQueueStore() *QueueStore {
	return &QueueStore{}
}

// Append sanitizes and stores a new pending scan.
func (s *QueueStore) Append(_ context.Context, parcelNumber string) error {
	sanitized := domain.SanitizeParcelNumber(parcelNumber)
	if sanitized == "" {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, domain.PendingScan{
		LocalKey:     uuid.New().String(),
		ParcelNumber: sanitized,
		StoredAt:     time.Now().UTC(),
	})
	return nil
}

// ListPending returns all records in insertion order.
func (s *QueueStore) ListPending(_ context.Context) ([]domain.PendingScan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.PendingScan, len(s.records))
	copy(out, s.records)
	return out, nil
}

// Remove deletes the record with the given key, if present.
func (s *QueueStore) Remove(_ context.Context, localKey string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, r := range s.records {
		if r.LocalKey == localKey {
			s.records = append(s.records[:i], s.records[i+1:]...)
			return nil
		}
	}
	return nil
}

// Seed inserts a record verbatim, bypassing sanitization. Tests use it to
// simulate corrupted entries.
func (s *QueueStore) Seed(record domain.PendingScan) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if record.LocalKey == "" {
		record.LocalKey = uuid.New().String()
	}
	s.records = append(s.records, record)
}
