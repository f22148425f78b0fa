// Package api talks to the rewind backend.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"riftrewind/pkg/game/state"
)

// DefaultBaseURL is where the backend listens in development.
const DefaultBaseURL = "http://localhost:5000"

// DefaultMatchCount is the number of matches requested per analysis.
const DefaultMatchCount = 30

const maxResponseSize = 8 << 20

// ErrUnreachable wraps transport failures: the backend could not be reached
// or its response could not be read.
var ErrUnreachable = errors.New("backend unreachable")

// APIError is a non-2xx response from the backend.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// Client calls the backend. The zero timeout means requests only end when
// their context does.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the backend at baseURL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// BaseURL returns the backend address.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// AnalyzeRequest is the body of POST /api/analyze.
type AnalyzeRequest struct {
	GameName   string `json:"gameName"`
	TagLine    string `json:"tagLine"`
	Platform   string `json:"platform"`
	MatchCount int    `json:"matchCount"`
}

// RewindResponse is what /api/analyze and /api/refresh return on success.
type RewindResponse struct {
	Player       json.RawMessage `json:"player"`
	Zones        state.ZoneMap   `json:"zones"`
	Metadata     state.Metadata  `json:"metadata"`
	SessionToken string          `json:"session_token,omitempty"`
}

// PlayerData converts a response into what gets stored for the map page.
// The submitted identity is the base and the backend's player fields win.
func (r *RewindResponse) PlayerData(gameName, tagLine string, withSession bool) (*state.PlayerData, error) {
	info, err := state.MergePlayerInfo(gameName, tagLine, r.Player)
	if err != nil {
		return nil, err
	}
	data := &state.PlayerData{
		PlayerInfo: info,
		Zones:      r.Zones,
		Metadata:   r.Metadata,
	}
	if data.Zones == nil {
		data.Zones = state.ZoneMap{}
	}
	if withSession {
		data.SessionToken = r.SessionToken
	}
	return data, nil
}

// LegacyRewindRequest is the body of the older POST /api/rewind endpoint.
type LegacyRewindRequest struct {
	Username string `json:"username"`
	Hashtag  string `json:"hashtag"`
	Server   string `json:"server"`
}

// LegacyRewindResponse is the reply of POST /api/rewind.
type LegacyRewindResponse struct {
	Message string `json:"message"`
}

// Analyze submits a player for analysis.
func (c *Client) Analyze(ctx context.Context, req AnalyzeRequest) (*RewindResponse, error) {
	if req.MatchCount == 0 {
		req.MatchCount = DefaultMatchCount
	}
	var resp RewindResponse
	if err := c.post(ctx, "/api/analyze", req, &resp, "Failed to analyze player"); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Refresh regenerates the rewind for riotID ("gameName-tagLine").
func (c *Client) Refresh(ctx context.Context, riotID string) (*RewindResponse, error) {
	var resp RewindResponse
	if err := c.post(ctx, RefreshPath(riotID), nil, &resp, "Failed to refresh data"); err != nil {
		return nil, err
	}
	return &resp, nil
}

// RefreshPath returns the request path for refreshing riotID.
func RefreshPath(riotID string) string {
	return "/api/refresh/" + url.PathEscape(riotID)
}

// LegacyRewind posts to the legacy rewind endpoint. Error replies carry
// their text in "message" rather than "error".
func (c *Client) LegacyRewind(ctx context.Context, req LegacyRewindRequest) (*LegacyRewindResponse, error) {
	var resp LegacyRewindResponse
	if err := c.post(ctx, "/api/rewind", req, &resp, "An error occurred"); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Health checks the backend is up.
func (c *Client) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/health", nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return &APIError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
	}
	return nil
}

func (c *Client) post(ctx context.Context, path string, body, out any, fallback string) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return fmt.Errorf("%w: read response: %v", ErrUnreachable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{Status: resp.StatusCode, Message: errorMessage(raw, fallback)}
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: decode response: %v", ErrUnreachable, err)
	}
	return nil
}

func errorMessage(raw []byte, fallback string) string {
	var body struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return fallback
	}
	if body.Error != "" {
		return body.Error
	}
	if body.Message != "" {
		return body.Message
	}
	return fallback
}
