package mockbackend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"riftrewind/pkg/game/state"
)

const schema = `
CREATE TABLE IF NOT EXISTS analyses (
    riot_key TEXT PRIMARY KEY,
    puuid TEXT NOT NULL,
    platform TEXT NOT NULL,
    player JSON NOT NULL,
    zones JSON NOT NULL,
    matches_analyzed INTEGER NOT NULL DEFAULT 0,
    generated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`

// PostgresStore implements AnalysisStore using PostgreSQL.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore connects to PostgreSQL and initializes the schema.
func NewPostgresStore(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	if _, err := pool.Exec(ctx, schema); err != nil {
		pool.Close()
		return nil, err
	}

	return &PostgresStore{pool: pool}, nil
}

// FindByRiotID looks up an analysis by its riot id key.
func (s *PostgresStore) FindByRiotID(ctx context.Context, key string) (*Analysis, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT puuid, platform, player, zones, matches_analyzed, generated_at
		 FROM analyses WHERE riot_key = $1`, key)

	a, err := scanAnalysis(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return a, err
}

// Save inserts or replaces an analysis.
func (s *PostgresStore) Save(ctx context.Context, a *Analysis) error {
	player, err := json.Marshal(a.Player)
	if err != nil {
		return fmt.Errorf("encode player: %w", err)
	}
	zones, err := json.Marshal(a.Zones)
	if err != nil {
		return fmt.Errorf("encode zones: %w", err)
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO analyses (riot_key, puuid, platform, player, zones, matches_analyzed, generated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (riot_key) DO UPDATE SET
		   puuid = EXCLUDED.puuid,
		   platform = EXCLUDED.platform,
		   player = EXCLUDED.player,
		   zones = EXCLUDED.zones,
		   matches_analyzed = EXCLUDED.matches_analyzed,
		   generated_at = EXCLUDED.generated_at`,
		a.Key(), a.PUUID, a.Platform, player, zones, a.MatchesAnalyzed, a.GeneratedAt)
	return err
}

// Close releases database resources.
func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

func scanAnalysis(row pgx.Row) (*Analysis, error) {
	var (
		a             Analysis
		player, zones []byte
	)
	if err := row.Scan(&a.PUUID, &a.Platform, &player, &zones, &a.MatchesAnalyzed, &a.GeneratedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(player, &a.Player); err != nil {
		return nil, fmt.Errorf("decode player: %w", err)
	}
	a.Zones = map[string]state.ZoneEntry{}
	if err := json.Unmarshal(zones, &a.Zones); err != nil {
		return nil, fmt.Errorf("decode zones: %w", err)
	}
	return &a, nil
}
