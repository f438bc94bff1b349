// Package scoring calls the remote insight-scoring service. When the
// service answers, its pre-ranked list supersedes local generation
// entirely; it is never merged. Any failure is reported to the caller,
// whose contract is to fall back to the local engine.
package scoring

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/brightfield-health/wellwatch/internal/insight"
)

const defaultTimeout = 10 * time.Second

// Client talks to one remote scoring endpoint.
type Client struct {
	url        string
	httpClient *http.Client
}

// NewClient builds a client for the given endpoint. A non-positive timeout
// uses the default.
func NewClient(url string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		url:        url,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// scoreRequest is the request body sent to the scoring service.
type scoreRequest struct {
	Signals      insight.Signals      `json:"signals"`
	TrackingMode insight.TrackingMode `json:"tracking_mode"`
	Options      insight.Options      `json:"options"`
}

// scoreResponse is the response body from the scoring service.
type scoreResponse struct {
	Insights []insight.Insight `json:"insights"`
	Error    string            `json:"error,omitempty"`
}

// Rank submits the week's signals and returns the service's pre-ranked
// insight list. The returned list is already safety-filtered again locally;
// the banned-term invariant holds regardless of where copy came from.
func (c *Client) Rank(sig insight.Signals, mode insight.TrackingMode, opts insight.Options) ([]insight.Insight, error) {
	body, err := json.Marshal(scoreRequest{
		Signals:      sig,
		TrackingMode: mode,
		Options:      opts,
	})
	if err != nil {
		return nil, fmt.Errorf("marshaling scoring request: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating scoring request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling scoring service: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading scoring response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("scoring service returned status %d: %.200s", resp.StatusCode, string(respBytes))
	}

	var parsed scoreResponse
	if err := json.Unmarshal(respBytes, &parsed); err != nil {
		return nil, fmt.Errorf("unmarshaling scoring response: %w", err)
	}
	if parsed.Error != "" {
		return nil, fmt.Errorf("scoring service error: %s", parsed.Error)
	}
	if len(parsed.Insights) == 0 {
		return nil, fmt.Errorf("scoring service returned no insights")
	}

	// Remote copy gets no exemption from the safety invariant.
	return insight.FilterUnsafe(parsed.Insights), nil
}
