package mockbackend

import (
	"hash/fnv"
	"strings"

	"riftrewind/pkg/game/state"
)

// SeedRiotID is the player every fresh store knows about.
const SeedRiotID = "theoppstopper#bigra"

type seedStory struct {
	id    string
	name  string
	story string
	stats state.Stats
}

func stats(kv ...any) state.Stats {
	var s state.Stats
	for i := 0; i+1 < len(kv); i += 2 {
		s.Set(kv[i].(string), kv[i+1])
	}
	return s
}

var seedStories = []seedStory{
	{
		id:    "intro",
		name:  "Overview",
		story: "Welcome to your Rift Rewind! You've played 42 games this month with a 52% win rate. Your jungle control has improved significantly, but there's always room to grow. Let's explore the map together!",
		stats: stats("total_games", 42.0, "wins", 22.0, "losses", 20.0, "avg_kda", 3.2),
	},
	{
		id:    "baron_pit",
		name:  "Baron Nashor",
		story: "Baron Nashor has become your nemesis! You've fallen 12 times in his pit this month, often contesting when your team was behind. Try warding earlier and only fighting when you have vision advantage. Patience wins Baron, not bravery.",
		stats: stats("deaths", 12.0, "barons_secured", 5.0, "barons_lost", 7.0, "participation", 15.0),
	},
	{
		id:    "dragon_pit",
		name:  "Dragon Soul",
		story: "You're a Dragon master! 73% objective control with only 2 deaths during contests. Your early ward coverage at 4:30 has saved your team countless times. Keep it up!",
		stats: stats("deaths", 2.0, "dragons_secured", 18.0, "dragons_lost", 7.0, "participation", 25.0),
	},
	{
		id:    "jungle",
		name:  "Jungle",
		story: "Your jungle pathing is efficient, averaging 6.2 CS/min. However, you tend to over-farm when your laners need help. Try balancing farming with gank opportunities: a well-timed gank is worth 3 camps!",
		stats: stats("avg_cs_per_min", 6.2, "deaths_in_jungle", 8.0, "time_spent_pct", 45.3),
	},
	{
		id:    "river",
		name:  "River Control",
		story: "River skirmishes are your battlefield! You've participated in 28 river fights with a 60% win rate. Your vision control is solid, but watch out for late rotations. 3 deaths came from arriving after your team.",
		stats: stats("deaths", 6.0, "kills", 14.0, "assists", 22.0, "skirmishes", 28.0),
	},
	{
		id:    "top_lane",
		name:  "Top Lane",
		story: "Top lane has seen better days. You average 2 ganks per game, but your success rate is only 35%. Try ganking post-level 3 when your laner has CC, and avoid diving without vision.",
		stats: stats("deaths", 5.0, "successful_ganks", 7.0, "failed_ganks", 13.0),
	},
	{
		id:    "mid_lane",
		name:  "Mid Lane",
		story: "Mid lane is your most impactful zone! 45% of your successful ganks happen here. Your timing around mid priority is excellent. Keep pressuring mid to unlock roams.",
		stats: stats("deaths", 3.0, "successful_ganks", 15.0, "failed_ganks", 8.0),
	},
	{
		id:    "bot_lane",
		name:  "Bot Lane",
		story: "Bot lane ganks are hit-or-miss. You tend to force ganks even when pushed in. Wait for your bot lane to freeze or slow-push before committing. Patience pays off!",
		stats: stats("deaths", 4.0, "successful_ganks", 9.0, "failed_ganks", 11.0),
	},
}

var tiers = []string{"IRON", "BRONZE", "SILVER", "GOLD", "PLATINUM", "EMERALD", "DIAMOND"}
var divisions = []string{"IV", "III", "II", "I"}

// seedZones returns a fresh copy of the canned zone stories.
func seedZones() map[string]state.ZoneEntry {
	zones := make(map[string]state.ZoneEntry, len(seedStories))
	for _, s := range seedStories {
		zones[s.id] = state.ZoneEntry{
			ZoneName: s.name,
			Story:    s.story,
			Stats:    append(state.Stats(nil), s.stats...),
		}
	}
	return zones
}

// seedPlayer invents a stable profile for a riot id so repeated analyses of
// the same player look the same.
func seedPlayer(gameName, tagLine string) state.PlayerInfo {
	h := fnv.New32a()
	h.Write([]byte(strings.ToLower(gameName + "#" + tagLine)))
	sum := h.Sum32()

	return state.PlayerInfo{
		GameName:     gameName,
		TagLine:      tagLine,
		SummonerName: gameName,
		Level:        30 + int(sum%470),
		Rank: &state.Rank{
			Tier: tiers[int(sum>>8)%len(tiers)],
			Rank: divisions[int(sum>>16)%len(divisions)],
		},
		RiotID: gameName + "#" + tagLine,
	}
}

// riotKey is the case-insensitive lookup key for a player.
func riotKey(gameName, tagLine string) string {
	return strings.ToLower(gameName + "#" + tagLine)
}

// splitRefreshID turns "gameName-tagLine" back into its parts. Game names
// may contain '-', tag lines may not, so the last '-' separates them.
func splitRefreshID(id string) (gameName, tagLine string, ok bool) {
	i := strings.LastIndex(id, "-")
	if i <= 0 || i == len(id)-1 {
		return "", "", false
	}
	return id[:i], id[i+1:], true
}
