package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mfield/memorymatch/internal/model"
	"github.com/mfield/memorymatch/internal/services/sync"
)

// Client is an HTTP client for the leaderboard API
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Ensure Client can back the leaderboard reconciler
var _ sync.Remote = (*Client)(nil)

// NewClient creates a new API client
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// ErrorResponse is the API's error body
type ErrorResponse struct {
	Error        string `json:"error"`
	TotalPlayers *int   `json:"totalPlayers,omitempty"`
}

// Do performs an HTTP request
func (c *Client) Do(ctx context.Context, method, path string, body, result any) error {
	reqURL := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	// Check for error responses
	if resp.StatusCode >= 400 {
		var errResp ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Error != "" {
			return fmt.Errorf("%s", errResp.Error)
		}
		return fmt.Errorf("HTTP %d: %s", resp.StatusCode, string(respBody))
	}

	// Parse successful response
	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to parse response: %w", err)
		}
	}

	return nil
}

// Get performs a GET request
func (c *Client) Get(ctx context.Context, path string, result any) error {
	return c.Do(ctx, http.MethodGet, path, nil, result)
}

// Post performs a POST request
func (c *Client) Post(ctx context.Context, path string, body, result any) error {
	return c.Do(ctx, http.MethodPost, path, body, result)
}

// TopEntries fetches ranked entries
func (c *Client) TopEntries(ctx context.Context, limit, offset int) ([]Entry, error) {
	q := url.Values{}
	q.Set("limit", fmt.Sprintf("%d", limit))
	if offset > 0 {
		q.Set("offset", fmt.Sprintf("%d", offset))
	}

	var entries []Entry
	if err := c.Get(ctx, "/api/leaderboard?"+q.Encode(), &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// SubmitEntry submits a finished game result
func (c *Client) SubmitEntry(ctx context.Context, req SubmitRequest) (Entry, error) {
	var entry Entry
	if err := c.Post(ctx, "/api/leaderboard", req, &entry); err != nil {
		return Entry{}, err
	}
	return entry, nil
}

// Standing fetches a player's best ranked entry
func (c *Client) Standing(ctx context.Context, name string) (StandingResult, error) {
	var standing StandingResult
	if err := c.Get(ctx, "/api/leaderboard/standing/"+url.PathEscape(name), &standing); err != nil {
		return StandingResult{}, err
	}
	return standing, nil
}

// Stats fetches leaderboard statistics
func (c *Client) Stats(ctx context.Context) (StatsResult, error) {
	var stats StatsResult
	if err := c.Get(ctx, "/api/leaderboard/stats", &stats); err != nil {
		return StatsResult{}, err
	}
	return stats, nil
}

// Health checks server health
func (c *Client) Health(ctx context.Context) (HealthResult, error) {
	var health HealthResult
	if err := c.Get(ctx, "/health", &health); err != nil {
		return HealthResult{}, err
	}
	return health, nil
}

// DBStatus checks storage connectivity
func (c *Client) DBStatus(ctx context.Context) (DBStatusResult, error) {
	var status DBStatusResult
	if err := c.Get(ctx, "/api/db-status", &status); err != nil {
		return DBStatusResult{}, err
	}
	return status, nil
}

// FetchLeaderboard fetches the ranked entry set as client records
func (c *Client) FetchLeaderboard(ctx context.Context) ([]model.LeaderboardRecord, error) {
	entries, err := c.TopEntries(ctx, 200, 0)
	if err != nil {
		return nil, err
	}

	records := make([]model.LeaderboardRecord, len(entries))
	for i, e := range entries {
		records[i] = model.LeaderboardRecord{
			Name:      e.Name,
			Score:     e.Score,
			Time:      e.FinishedTime,
			CreatedAt: e.CreatedAt,
		}
	}
	return records, nil
}

// SubmitRecord submits a client record to the leaderboard
func (c *Client) SubmitRecord(ctx context.Context, record model.LeaderboardRecord) error {
	req := SubmitRequest{
		Name:         record.Name,
		Score:        record.Score,
		FinishedTime: record.Time,
	}
	_, err := c.SubmitEntry(ctx, req)
	return err
}
