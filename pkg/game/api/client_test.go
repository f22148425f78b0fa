package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"riftrewind/pkg/game/state"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func newTestServer(t *testing.T, r chi.Router) *Client {
	t.Helper()
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL+"/", 0)
}

func TestAnalyze_Success(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/api/analyze", func(w http.ResponseWriter, req *http.Request) {
		var body AnalyzeRequest
		require.NoError(t, json.NewDecoder(req.Body).Decode(&body))
		assert.Equal(t, "application/json", req.Header.Get("Content-Type"))
		assert.Equal(t, AnalyzeRequest{GameName: "Foo", TagLine: "NA1", Platform: "na1", MatchCount: 30}, body)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"player": {"summoner_name": "Foo Bar", "level": 87},
			"zones": {"baron_pit": {"zone_name": "Baron Nashor", "story": "s", "stats": {"deaths": 4, "barons_secured": 2}}},
			"metadata": {"matches_analyzed": 30, "cached": false, "generated_at": 1700000000},
			"session_token": "tok-1"
		}`))
	})
	c := newTestServer(t, r)

	resp, err := c.Analyze(context.Background(), AnalyzeRequest{GameName: "Foo", TagLine: "NA1", Platform: "na1"})
	require.NoError(t, err)
	assert.Equal(t, "tok-1", resp.SessionToken)

	data, err := resp.PlayerData("Foo", "NA1", true)
	require.NoError(t, err)
	assert.Equal(t, "Foo", data.PlayerInfo.GameName)
	assert.Equal(t, "NA1", data.PlayerInfo.TagLine)
	assert.Equal(t, "Foo Bar", data.PlayerInfo.SummonerName)
	assert.Equal(t, 87, data.PlayerInfo.Level)
	assert.Equal(t, "tok-1", data.SessionToken)
	assert.Equal(t, 30, data.Metadata.MatchesAnalyzed)

	stats := data.Zones["baron_pit"].Stats
	require.Len(t, stats, 2)
	assert.Equal(t, "deaths", stats[0].Key)
	assert.Equal(t, "barons_secured", stats[1].Key)

	withoutSession, err := resp.PlayerData("Foo", "NA1", false)
	require.NoError(t, err)
	assert.Empty(t, withoutSession.SessionToken)
}

func TestAnalyze_APIError(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/api/analyze", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "Player not found"})
	})
	c := newTestServer(t, r)

	_, err := c.Analyze(context.Background(), AnalyzeRequest{GameName: "Foo", TagLine: "NA1", Platform: "na1"})
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr), "err = %v", err)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "Player not found", apiErr.Message)
}

func TestAnalyze_ErrorWithoutBody(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/api/analyze", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	c := newTestServer(t, r)

	_, err := c.Analyze(context.Background(), AnalyzeRequest{})
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "Failed to analyze player", apiErr.Message)
}

func TestAnalyze_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := NewClient(url, 0)
	_, err := c.Analyze(context.Background(), AnalyzeRequest{GameName: "Foo"})
	assert.ErrorIs(t, err, ErrUnreachable)
}

func TestAnalyze_MalformedSuccessBody(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/api/analyze", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	})
	c := newTestServer(t, r)

	_, err := c.Analyze(context.Background(), AnalyzeRequest{})
	assert.ErrorIs(t, err, ErrUnreachable)
}

func TestRefresh_Path(t *testing.T) {
	var gotID string
	r := chi.NewRouter()
	r.Post("/api/refresh/{riotID}", func(w http.ResponseWriter, req *http.Request) {
		gotID = chi.URLParam(req, "riotID")
		writeJSON(w, http.StatusOK, map[string]any{
			"player":   map[string]any{"level": 90},
			"zones":    map[string]any{},
			"metadata": map[string]any{"cached": true},
		})
	})
	c := newTestServer(t, r)

	info := state.PlayerInfo{GameName: "Foo", TagLine: "NA1"}
	resp, err := c.Refresh(context.Background(), info.RefreshID())
	require.NoError(t, err)
	assert.Equal(t, "Foo-NA1", gotID)
	assert.True(t, resp.Metadata.Cached)

	data, err := resp.PlayerData(info.GameName, info.TagLine, false)
	require.NoError(t, err)
	assert.Equal(t, 90, data.PlayerInfo.Level)
	assert.Equal(t, "Foo", data.PlayerInfo.GameName)
}

func TestRefreshPath(t *testing.T) {
	assert.Equal(t, "/api/refresh/Foo-NA1", RefreshPath("Foo-NA1"))
	assert.Equal(t, "/api/refresh/Foo%20Bar-EUW", RefreshPath("Foo Bar-EUW"))
	assert.Equal(t, "/api/refresh/a%2Fb-c", RefreshPath("a/b-c"))
}

func TestRefresh_NotFound(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/api/refresh/{riotID}", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "No previous analysis"})
	})
	c := newTestServer(t, r)

	_, err := c.Refresh(context.Background(), "Foo-NA1")
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "No previous analysis", apiErr.Error())
}

func TestLegacyRewind(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/api/rewind", func(w http.ResponseWriter, req *http.Request) {
		var body LegacyRewindRequest
		require.NoError(t, json.NewDecoder(req.Body).Decode(&body))
		if body.Username == "" {
			writeJSON(w, http.StatusBadRequest, map[string]string{"message": "username is required"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"message": "Hello " + body.Username})
	})
	c := newTestServer(t, r)

	resp, err := c.LegacyRewind(context.Background(), LegacyRewindRequest{Username: "Foo", Hashtag: "NA1", Server: "na1"})
	require.NoError(t, err)
	assert.Equal(t, "Hello Foo", resp.Message)

	_, err = c.LegacyRewind(context.Background(), LegacyRewindRequest{})
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "username is required", apiErr.Message)
}

func TestHealth(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/api/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	c := newTestServer(t, r)
	assert.NoError(t, c.Health(context.Background()))
}
