// Package leaveapi implements the snapshot repository against the upstream
// leave service's REST API instead of the reporting database. Responses are
// normalized at this boundary; nothing past it ever sees the upstream's
// field-spelling quirks.
package leaveapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/cmlabs-hris/leave-calendar-go/internal/domain/leave"
)

type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// snapshotEnvelope is the upstream response wrapper. The legacy endpoint
// uses monthly_leaves, the newer one monthlyLeaves.
type snapshotEnvelope struct {
	MonthlyLeaves   []leave.RecordPayload `json:"monthlyLeaves"`
	MonthlyLeavesSC []leave.RecordPayload `json:"monthly_leaves"`
}

func (e snapshotEnvelope) records() []leave.LeaveRecord {
	payloads := e.MonthlyLeaves
	if len(payloads) == 0 {
		payloads = e.MonthlyLeavesSC
	}
	return leave.NormalizeAll(payloads)
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	u := fmt.Sprintf("%s%s?%s", c.baseURL, path, query.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("failed to build upstream request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("upstream request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("upstream returned status %d: %w", resp.StatusCode, leave.ErrSnapshotUnavailable)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode upstream response: %w", err)
	}
	return nil
}

// ListForMonth implements leave.SnapshotRepository.
func (c *Client) ListForMonth(ctx context.Context, anchor time.Time) ([]leave.LeaveRecord, error) {
	query := url.Values{"month": {anchor.Format("2006-01")}}

	var envelope snapshotEnvelope
	if err := c.get(ctx, "/api/leave/total-calendar", query, &envelope); err != nil {
		return nil, err
	}
	return envelope.records(), nil
}

// ListForEmployee implements leave.SnapshotRepository.
func (c *Client) ListForEmployee(ctx context.Context, userID string, anchor time.Time) ([]leave.LeaveRecord, error) {
	query := url.Values{
		"month":   {anchor.Format("2006-01")},
		"user_id": {userID},
	}

	var envelope snapshotEnvelope
	if err := c.get(ctx, "/api/leave/monthly-calendar", query, &envelope); err != nil {
		return nil, err
	}
	return envelope.records(), nil
}
