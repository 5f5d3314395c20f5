package services

import (
	"context"
	"fmt"
	"time"

	"github.com/packlane-labs/packtrak-cli/internal/core/domain"
	"github.com/packlane-labs/packtrak-cli/internal/core/ports/driven"
	"github.com/packlane-labs/packtrak-cli/internal/core/ports/driving"
	"github.com/packlane-labs/packtrak-cli/internal/logger"
)

// Ensure ScanService implements the interface.
var _ driving.Scanner = (*ScanService)(nil)

// ScanService captures scans into the durable queue.
type ScanService struct {
	variant domain.Variant
	queue   driven.QueueStore
}

// NewScanService creates a scan service for one app variant.
func NewScanService(variant domain.Variant, queue driven.QueueStore) *ScanService {
	return &ScanService{
		variant: variant,
		queue:   queue,
	}
}

// Capture sanitizes input and appends it to the queue.
//
// Invalid input (no digits) is the only error a caller sees. A storage
// failure on append is logged and swallowed: losing one scan on a broken
// disk is accepted, crashing the scan flow is not.
func (s *ScanService) Capture(ctx context.Context, input string) (*domain.PendingScan, error) {
	parcelNumber := domain.SanitizeParcelNumber(input)
	if parcelNumber == "" {
		return nil, fmt.Errorf("%w: no digits in %q", domain.ErrInvalidInput, input)
	}

	if err := s.queue.Append(ctx, parcelNumber); err != nil {
		logger.Warn("capture %s: append %q: %v", s.variant.Name, parcelNumber, err)
	}

	return &domain.PendingScan{
		ParcelNumber: parcelNumber,
		StoredAt:     time.Now().UTC(),
	}, nil
}
