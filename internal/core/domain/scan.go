package domain

import (
	"strings"
	"time"
)

// PendingScan is a locally captured scan awaiting delivery to the remote API.
type PendingScan struct {
	// LocalKey is assigned by the queue store on insert. It is stable until
	// the record is deleted and is never transmitted.
	LocalKey string `json:"-"`

	// ParcelNumber is the sanitized digit string. Never empty for a valid
	// record; empty input is rejected before reaching the queue.
	ParcelNumber string `json:"parcel_number"`

	// StoredAt is the UTC timestamp of local capture. Informational only.
	StoredAt time.Time `json:"stored_at"`
}

// ScanSubmission is the wire shape for POST {prefix}/scans.
type ScanSubmission struct {
	ParcelNumber string `json:"parcel_number"`
}

// HistoryEntry is one delivered scan as reported by the remote API.
type HistoryEntry struct {
	Operator     string    `json:"user_name"`
	ParcelNumber string    `json:"parcel_number"`
	ScannedAt    time.Time `json:"-"`
}

// SanitizeParcelNumber strips every non-digit rune from s.
// Scanner input frequently carries separators ("AB12-34" scans as "1234").
func SanitizeParcelNumber(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
