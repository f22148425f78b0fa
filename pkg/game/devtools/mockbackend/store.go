package mockbackend

import (
	"context"
	"strings"
	"sync"
	"time"

	"riftrewind/pkg/game/state"
)

// Analysis is one stored rewind.
type Analysis struct {
	PUUID           string
	Platform        string
	Player          state.PlayerInfo
	Zones           map[string]state.ZoneEntry
	MatchesAnalyzed int
	GeneratedAt     time.Time
}

// Key returns the store key of the analysed player.
func (a *Analysis) Key() string {
	return riotKey(a.Player.GameName, a.Player.TagLine)
}

// AnalysisStore defines persistent storage for analyses.
type AnalysisStore interface {
	// FindByRiotID returns the analysis for a riot id key, or nil when the
	// player was never analysed.
	FindByRiotID(ctx context.Context, key string) (*Analysis, error)
	// Save inserts or replaces an analysis.
	Save(ctx context.Context, a *Analysis) error
	// Close releases resources.
	Close() error
}

// MemoryStore keeps analyses in process memory.
type MemoryStore struct {
	mu       sync.RWMutex
	analyses map[string]*Analysis
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{analyses: make(map[string]*Analysis)}
}

func (m *MemoryStore) FindByRiotID(_ context.Context, key string) (*Analysis, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	a, ok := m.analyses[key]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (m *MemoryStore) Save(_ context.Context, a *Analysis) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *a
	m.analyses[a.Key()] = &cp
	return nil
}

func (m *MemoryStore) Close() error {
	return nil
}

// OpenStore returns a Postgres store when databaseURL is set and an
// in-memory one otherwise. Either way the seed player is present.
func OpenStore(ctx context.Context, databaseURL string, now time.Time) (AnalysisStore, error) {
	var store AnalysisStore
	if databaseURL == "" {
		store = NewMemoryStore()
	} else {
		pg, err := NewPostgresStore(ctx, databaseURL)
		if err != nil {
			return nil, err
		}
		store = pg
	}
	if err := Seed(ctx, store, now); err != nil {
		store.Close()
		return nil, err
	}
	return store, nil
}

// Seed stores the canned player unless it is already there.
func Seed(ctx context.Context, store AnalysisStore, now time.Time) error {
	gameName, tagLine, _ := splitRiotID(SeedRiotID)
	existing, err := store.FindByRiotID(ctx, riotKey(gameName, tagLine))
	if err != nil || existing != nil {
		return err
	}
	return store.Save(ctx, &Analysis{
		PUUID:           "MOCK_PUUID_12345",
		Platform:        "euw1",
		Player:          seedPlayer(gameName, tagLine),
		Zones:           seedZones(),
		MatchesAnalyzed: 42,
		GeneratedAt:     now,
	})
}

func splitRiotID(id string) (gameName, tagLine string, ok bool) {
	return strings.Cut(id, "#")
}
