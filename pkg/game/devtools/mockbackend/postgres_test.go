package mockbackend

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getTestDatabaseURL(t *testing.T) string {
	t.Helper()
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping PostgreSQL integration test")
	}
	return url
}

func setupTestStore(t *testing.T) *PostgresStore {
	t.Helper()
	url := getTestDatabaseURL(t)
	ctx := context.Background()

	s, err := NewPostgresStore(ctx, url)
	require.NoError(t, err)

	_, err = s.pool.Exec(ctx, "DELETE FROM analyses")
	require.NoError(t, err)

	t.Cleanup(func() {
		s.Close()
	})

	return s
}

func TestPostgresStore_SaveAndFind(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	a := &Analysis{
		PUUID:           "puuid-1",
		Platform:        "euw1",
		Player:          seedPlayer("Foo", "EUW"),
		Zones:           seedZones(),
		MatchesAnalyzed: 30,
		GeneratedAt:     testNow,
	}
	require.NoError(t, s.Save(ctx, a))

	found, err := s.FindByRiotID(ctx, "foo#euw")
	require.NoError(t, err)
	require.NotNil(t, found)

	assert.Equal(t, "puuid-1", found.PUUID)
	assert.Equal(t, a.Player, found.Player)
	assert.True(t, found.GeneratedAt.Equal(testNow))
	assert.Equal(t, a.Zones["jungle"].Stats, found.Zones["jungle"].Stats)
}

func TestPostgresStore_SaveReplaces(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	a := &Analysis{PUUID: "p", Platform: "na1", Player: seedPlayer("Foo", "NA1"), Zones: seedZones(), MatchesAnalyzed: 20, GeneratedAt: testNow}
	require.NoError(t, s.Save(ctx, a))
	a.MatchesAnalyzed = 40
	require.NoError(t, s.Save(ctx, a))

	found, err := s.FindByRiotID(ctx, a.Key())
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, 40, found.MatchesAnalyzed)
}

func TestPostgresStore_NotFound(t *testing.T) {
	s := setupTestStore(t)

	found, err := s.FindByRiotID(context.Background(), "nobody#none")
	require.NoError(t, err)
	assert.Nil(t, found)
}
