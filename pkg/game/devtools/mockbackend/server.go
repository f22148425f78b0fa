// Package mockbackend is a development stand-in for the rewind backend. It
// serves canned stories so the client can be run without Riot API access.
package mockbackend

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"riftrewind/pkg/game/state"
)

// FreshFor is how long a stored analysis is served as cached.
const FreshFor = 7 * 24 * time.Hour

const maxBodySize = 1 << 20

// Server answers the backend endpoints from an AnalysisStore.
type Server struct {
	store AnalysisStore
	now   func() time.Time
	token func() string
}

// NewServer creates a server backed by store.
func NewServer(store AnalysisStore) *Server {
	return &Server{
		store: store,
		now:   time.Now,
		token: func() string { return uuid.NewString() },
	}
}

// Routes returns the router for the backend API.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)

	r.Route("/api", func(r chi.Router) {
		r.Post("/analyze", s.handleAnalyze)
		r.Post("/refresh/{riotID}", s.handleRefresh)
		r.Post("/rewind", s.handleRewind)

		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})
	})

	return r
}

// ListenAndServe serves until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		log.Printf("Mock backend listening on %s", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

type metadata struct {
	MatchesAnalyzed int     `json:"matches_analyzed"`
	Cached          bool    `json:"cached"`
	GeneratedAt     float64 `json:"generated_at"`
}

type rewindResponse struct {
	Player       state.PlayerInfo           `json:"player"`
	Zones        map[string]state.ZoneEntry `json:"zones"`
	Metadata     metadata                   `json:"metadata"`
	SessionToken string                     `json:"session_token,omitempty"`
}

func newRewindResponse(a *Analysis, cached bool) rewindResponse {
	return rewindResponse{
		Player: a.Player,
		Zones:  a.Zones,
		Metadata: metadata{
			MatchesAnalyzed: a.MatchesAnalyzed,
			Cached:          cached,
			GeneratedAt:     float64(a.GeneratedAt.UnixMilli()) / 1000,
		},
	}
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize)).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	req.GameName = strings.TrimSpace(req.GameName)
	req.TagLine = strings.TrimSpace(req.TagLine)
	req.Platform = strings.ToLower(strings.TrimSpace(req.Platform))

	matchCount, err := req.validate()
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx := r.Context()
	now := s.now()
	existing, err := s.store.FindByRiotID(ctx, riotKey(req.GameName, req.TagLine))
	if err != nil {
		log.Printf("Error loading analysis for %s#%s: %v", req.GameName, req.TagLine, err)
		respondError(w, http.StatusInternalServerError, "Failed to load player data")
		return
	}

	var resp rewindResponse
	if existing != nil && now.Sub(existing.GeneratedAt) < FreshFor {
		resp = newRewindResponse(existing, true)
	} else {
		a := s.generate(req.GameName, req.TagLine, req.Platform, matchCount, now)
		if existing != nil {
			a.PUUID = existing.PUUID
		}
		if err := s.store.Save(ctx, a); err != nil {
			log.Printf("Error saving analysis for %s#%s: %v", req.GameName, req.TagLine, err)
			respondError(w, http.StatusInternalServerError, "Failed to store player data")
			return
		}
		resp = newRewindResponse(a, false)
	}
	resp.SessionToken = s.token()

	respondJSON(w, http.StatusOK, resp)
}

func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	gameName, tagLine, ok := splitRefreshID(chi.URLParam(r, "riotID"))
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid riot ID. Expected gameName-tagLine")
		return
	}

	ctx := r.Context()
	existing, err := s.store.FindByRiotID(ctx, riotKey(gameName, tagLine))
	if err != nil {
		log.Printf("Error loading analysis for %s#%s: %v", gameName, tagLine, err)
		respondError(w, http.StatusInternalServerError, "Failed to load player data")
		return
	}
	if existing == nil {
		respondError(w, http.StatusNotFound, "Player not found. Analyze the player first")
		return
	}

	a := s.generate(existing.Player.GameName, existing.Player.TagLine, existing.Platform, existing.MatchesAnalyzed, s.now())
	a.PUUID = existing.PUUID
	if err := s.store.Save(ctx, a); err != nil {
		log.Printf("Error saving analysis for %s#%s: %v", gameName, tagLine, err)
		respondError(w, http.StatusInternalServerError, "Failed to store player data")
		return
	}

	respondJSON(w, http.StatusOK, newRewindResponse(a, false))
}

type legacyRewindRequest struct {
	Username string `json:"username"`
	Hashtag  string `json:"hashtag"`
	Server   string `json:"server"`
}

func (s *Server) handleRewind(w http.ResponseWriter, r *http.Request) {
	var req legacyRewindRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize)).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"message": "Invalid JSON body"})
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{
		"message":  "Summoner " + req.Username + req.Hashtag + " from " + req.Server + " received!",
		"username": req.Username,
		"hashtag":  req.Hashtag,
		"server":   req.Server,
	})
}

func (s *Server) generate(gameName, tagLine, platform string, matchCount int, now time.Time) *Analysis {
	return &Analysis{
		PUUID:           s.token(),
		Platform:        platform,
		Player:          seedPlayer(gameName, tagLine),
		Zones:           seedZones(),
		MatchesAnalyzed: matchCount,
		GeneratedAt:     now,
	}
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON: %v", err)
	}
}

// respondError writes an error JSON response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
