package landing

import (
	"context"
	"fmt"
	"log"

	"riftrewind/pkg/game/api"
	"riftrewind/pkg/game/state"
	"riftrewind/pkg/game/storage"
)

// Refresher regenerates a stored rewind.
type Refresher interface {
	Refresh(ctx context.Context, riotID string) (*api.RewindResponse, error)
}

// Refresh asks the backend for new data about the player in info and
// overwrites the stored rewind. The session token is not kept.
func Refresh(ctx context.Context, client Refresher, store *storage.Store, info state.PlayerInfo) (*state.PlayerData, error) {
	riotID := info.RefreshID()
	resp, err := client.Refresh(ctx, riotID)
	if err != nil {
		log.Printf("Refresh %s failed: %v", riotID, err)
		return nil, err
	}

	data, err := resp.PlayerData(info.GameName, info.TagLine, false)
	if err != nil {
		return nil, fmt.Errorf("decode player: %w", err)
	}
	if err := store.SavePlayerData(data); err != nil {
		return nil, fmt.Errorf("save rewind: %w", err)
	}
	log.Printf("Refreshed rewind for %s", riotID)
	return data, nil
}
