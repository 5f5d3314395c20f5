package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/packlane-labs/packtrak-cli/internal/core/domain"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewClient(Config{
		BaseURL:           server.URL,
		RequestsPerSecond: 1000, // Don't throttle tests
	})
}

func TestSubmitScan_SendsExpectedRequest(t *testing.T) {
	var gotMethod, gotPath, gotAuth, gotContentType, gotBody string

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		w.WriteHeader(http.StatusOK)
	})

	err := client.SubmitScan(context.Background(), domain.VariantTracking, "t1", "1234")
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/tracking/scans", gotPath)
	assert.Equal(t, "Bearer t1", gotAuth)
	assert.Equal(t, "application/json", gotContentType)
	assert.JSONEq(t, `{"parcel_number":"1234"}`, gotBody)
}

func TestSubmitScan_UsesVariantPathPrefix(t *testing.T) {
	var gotPath string

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	})

	err := client.SubmitScan(context.Background(), domain.VariantScanPak, "t1", "999")
	require.NoError(t, err)
	assert.Equal(t, "/scanpak/scans", gotPath)
}

func TestSubmitScan_FormatRejectionIsNotRetryable(t *testing.T) {
	for _, status := range []int{http.StatusBadRequest, http.StatusUnprocessableEntity} {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(status)
		})

		err := client.SubmitScan(context.Background(), domain.VariantTracking, "t1", "1234")
		assert.ErrorIs(t, err, domain.ErrScanInvalid, "status %d", status)
	}
}

func TestSubmitScan_ServerErrorIsRetryable(t *testing.T) {
	for _, status := range []int{http.StatusInternalServerError, http.StatusBadGateway, http.StatusUnauthorized} {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(status)
		})

		err := client.SubmitScan(context.Background(), domain.VariantTracking, "t1", "1234")
		assert.ErrorIs(t, err, domain.ErrDeliveryRejected, "status %d", status)
	}
}

func TestLogin_ReturnsToken(t *testing.T) {
	var gotBody string

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/login", r.URL.Path)
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		json.NewEncoder(w).Encode(map[string]string{"token": "tok-777"})
	})

	token, err := client.Login(context.Background(), "Kowalski", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, "tok-777", token)
	assert.JSONEq(t, `{"surname":"Kowalski","password":"hunter2"}`, gotBody)
}

func TestLogin_RejectedCredentials(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := client.Login(context.Background(), "Kowalski", "wrong")
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestLogin_EmptyTokenIsRejected(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"token": ""})
	})

	_, err := client.Login(context.Background(), "Kowalski", "hunter2")
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestHistory_ParsesAndSortsNewestFirst(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/tracking/history", r.URL.Path)
		assert.Equal(t, "Bearer t1", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode([]map[string]string{
			{"user_name": "A", "parcel_number": "111", "scanned_at": "2026-08-20T10:00:00Z"},
			{"user_name": "B", "parcel_number": "222", "scanned_at": "2026-08-21 09:30:00"},
		})
	})

	entries, err := client.History(context.Background(), domain.VariantTracking, "t1")
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// The legacy-format entry is newer and must come first.
	assert.Equal(t, "222", entries[0].ParcelNumber)
	assert.Equal(t, "111", entries[1].ParcelNumber)
	assert.Equal(t, "A", entries[1].Operator)
	assert.Equal(t,
		time.Date(2026, 8, 21, 9, 30, 0, 0, time.UTC), entries[0].ScannedAt)
}

func TestHistory_Unauthenticated(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})

	_, err := client.History(context.Background(), domain.VariantTracking, "stale")
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestParseAPITime(t *testing.T) {
	tests := []struct {
		input string
		want  time.Time
	}{
		{"2026-08-20T10:00:00Z", time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)},
		{"2026-08-20 10:00:00", time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)},
		{"garbage", time.Time{}},
		{"", time.Time{}},
	}

	for _, tt := range tests {
		got := parseAPITime(tt.input)
		assert.True(t, got.Equal(tt.want), "input %q: got %v", tt.input, got)
	}
}
