// Package api provides the HTTP client for the remote tracking API.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"time"

	"golang.org/x/time/rate"

	"github.com/packlane-labs/packtrak-cli/internal/core/domain"
	"github.com/packlane-labs/packtrak-cli/internal/core/ports/driven"
)

// Ensure Client implements the interface.
var _ driven.ScanAPI = (*Client)(nil)

// Default configuration values.
const (
	DefaultBaseURL = "https://tracking-api-b4jb.onrender.com"
	DefaultTimeout = 15 * time.Second

	// defaultRequestsPerSecond caps submit throughput so a large queue drain
	// does not hammer the backend.
	defaultRequestsPerSecond = 5
)

// Config holds configuration for the API client.
type Config struct {
	// BaseURL is the API base URL (default: the hosted tracking backend).
	BaseURL string

	// Timeout is the per-request timeout (default: 15s).
	Timeout time.Duration

	// RequestsPerSecond throttles scan submissions (default: 5).
	RequestsPerSecond float64
}

// Client talks to the remote tracking API over HTTPS.
type Client struct {
	client  *http.Client
	baseURL string
	limiter *rate.Limiter
}

// loginRequest is the POST /login request format.
type loginRequest struct {
	Surname  string `json:"surname"`
	Password string `json:"password"`
}

// loginResponse is the POST /login response format.
type loginResponse struct {
	Token string `json:"token"`
	Error string `json:"error,omitempty"`
}

// historyRecord is the wire format of one history entry. The timestamp is
// kept as a string because the backend is not consistent about its format.
type historyRecord struct {
	Operator     string `json:"user_name"`
	ParcelNumber string `json:"parcel_number"`
	ScannedAt    string `json:"scanned_at"`
}

// NewClient creates a new API client.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.RequestsPerSecond == 0 {
		cfg.RequestsPerSecond = defaultRequestsPerSecond
	}

	return &Client{
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL: cfg.BaseURL,
		limiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), 1),
	}
}

// BaseURL returns the configured API base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// SubmitScan delivers one parcel number to the variant's scan endpoint.
func (c *Client) SubmitScan(ctx context.Context, variant domain.Variant, token, parcelNumber string) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	jsonBody, err := json.Marshal(domain.ScanSubmission{ParcelNumber: parcelNumber})
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.baseURL+variant.PathPrefix+"/scans",
		bytes.NewReader(jsonBody),
	)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		return nil
	case resp.StatusCode == http.StatusBadRequest ||
		resp.StatusCode == http.StatusUnprocessableEntity:
		// The server will never accept this parcel number, so retrying is
		// pointless. Callers purge the record.
		return fmt.Errorf("%w: status %d for parcel %s",
			domain.ErrScanInvalid, resp.StatusCode, parcelNumber)
	default:
		return fmt.Errorf("%w: status %d", domain.ErrDeliveryRejected, resp.StatusCode)
	}
}

// Login exchanges operator credentials for a bearer token.
func (c *Client) Login(ctx context.Context, surname, password string) (string, error) {
	jsonBody, err := json.Marshal(loginRequest{Surname: surname, Password: password})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.baseURL+"/login",
		bytes.NewReader(jsonBody),
	)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return "", fmt.Errorf("%w: status %d", domain.ErrUnauthenticated, resp.StatusCode)
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("login failed (status %d): %s", resp.StatusCode, string(body))
	}

	var loginResp loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&loginResp); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if loginResp.Token == "" {
		return "", fmt.Errorf("%w: server returned no token", domain.ErrUnauthenticated)
	}

	return loginResp.Token, nil
}

// History returns delivered scans for the variant, newest first.
func (c *Client) History(ctx context.Context, variant domain.Variant, token string) ([]domain.HistoryEntry, error) {
	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodGet,
		c.baseURL+variant.PathPrefix+"/history",
		http.NoBody,
	)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, fmt.Errorf("%w: status %d", domain.ErrUnauthenticated, resp.StatusCode)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("history failed: status %d", resp.StatusCode)
	}

	var records []historyRecord
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	entries := make([]domain.HistoryEntry, 0, len(records))
	for _, rec := range records {
		entries = append(entries, domain.HistoryEntry{
			Operator:     rec.Operator,
			ParcelNumber: rec.ParcelNumber,
			ScannedAt:    parseAPITime(rec.ScannedAt),
		})
	}

	// Newest first regardless of server order.
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].ScannedAt.After(entries[j].ScannedAt)
	})

	return entries, nil
}

// parseAPITime handles both RFC 3339 timestamps and the backend's legacy
// "2006-01-02 15:04:05" format. Unparseable values yield a zero time.
func parseAPITime(s string) time.Time {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02 15:04:05", s); err == nil {
		return t.UTC()
	}
	return time.Time{}
}
