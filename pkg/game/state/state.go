package state

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// StorageKey is the key the rewind payload is persisted under.
const StorageKey = "rewindData"

// Rank is the ranked tier of a player, e.g. {"GOLD", "II"}.
type Rank struct {
	Tier string `json:"tier"`
	Rank string `json:"rank"`
}

// PlayerInfo identifies the player the rewind was generated for.
type PlayerInfo struct {
	GameName     string `json:"gameName"`
	TagLine      string `json:"tagLine"`
	SummonerName string `json:"summoner_name,omitempty"`
	Level        int    `json:"level,omitempty"`
	Rank         *Rank  `json:"rank,omitempty"`
	RiotID       string `json:"riot_id,omitempty"`
}

// ZoneEntry is the narrative content of one zone.
type ZoneEntry struct {
	ZoneName string `json:"zone_name"`
	Story    string `json:"story"`
	Stats    Stats  `json:"stats,omitempty"`
}

// ZoneMap holds the zone entries by zone id. A zone whose entry is JSON
// null decodes as absent, so it is shown as not found.
type ZoneMap map[string]ZoneEntry

// UnmarshalJSON decodes the zones object, dropping null entries.
func (z *ZoneMap) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*z = nil
		return nil
	}
	var raw map[string]*ZoneEntry
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	zones := make(ZoneMap, len(raw))
	for id, entry := range raw {
		if entry != nil {
			zones[id] = *entry
		}
	}
	*z = zones
	return nil
}

// Metadata describes how the rewind was produced.
type Metadata struct {
	MatchesAnalyzed int     `json:"matches_analyzed,omitempty"`
	Cached          bool    `json:"cached,omitempty"`
	GeneratedAt     float64 `json:"generated_at,omitempty"` // unix seconds
}

// PlayerData is everything the map page needs. It is written by the landing
// flow (or a refresh) and read once per map session.
type PlayerData struct {
	PlayerInfo   PlayerInfo `json:"playerInfo"`
	Zones        ZoneMap    `json:"zones"`
	Metadata     Metadata   `json:"metadata"`
	SessionToken string     `json:"session_token,omitempty"`
}

// Validate reports whether the payload is usable by the map page.
func (d *PlayerData) Validate() error {
	if d.Zones == nil {
		return fmt.Errorf("payload has no zones")
	}
	if d.PlayerInfo.GameName == "" && d.PlayerInfo.SummonerName == "" && d.PlayerInfo.RiotID == "" {
		return fmt.Errorf("payload has no player identity")
	}
	return nil
}

// MergePlayerInfo builds a PlayerInfo from the submitted identity overlaid
// with the backend's player object. Backend fields win.
func MergePlayerInfo(gameName, tagLine string, player json.RawMessage) (PlayerInfo, error) {
	info := PlayerInfo{GameName: gameName, TagLine: tagLine}
	if len(player) == 0 || string(player) == "null" {
		return info, nil
	}
	if err := json.Unmarshal(player, &info); err != nil {
		return PlayerInfo{GameName: gameName, TagLine: tagLine}, fmt.Errorf("decode player: %w", err)
	}
	return info, nil
}

// DisplayName is the summoner name when known, otherwise gameName#tagLine.
func (p PlayerInfo) DisplayName() string {
	if p.SummonerName != "" {
		return p.SummonerName
	}
	return p.GameName + "#" + p.TagLine
}

// RefreshID is the identifier used on the refresh endpoint: riot_id with the
// first '#' replaced by '-', falling back to gameName-tagLine.
func (p PlayerInfo) RefreshID() string {
	if p.RiotID != "" {
		return strings.Replace(p.RiotID, "#", "-", 1)
	}
	return p.GameName + "-" + p.TagLine
}
