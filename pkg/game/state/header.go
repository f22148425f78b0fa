package state

import (
	"strings"
	"time"

	"riftrewind/pkg/game/i18n"
)

// DefaultMatchCount is shown when the backend did not report how many
// matches were analysed.
const DefaultMatchCount = 30

// HeaderText is the player line shown above the map: name, level and rank,
// skipping the parts that are unknown.
func (p PlayerInfo) HeaderText() string {
	parts := []string{p.DisplayName()}
	if p.Level > 0 {
		parts = append(parts, i18n.T("LEVEL", p.Level))
	}
	if p.Rank != nil && (p.Rank.Tier != "" || p.Rank.Rank != "") {
		parts = append(parts, strings.TrimSpace(p.Rank.Tier+" "+p.Rank.Rank))
	}
	return strings.Join(parts, " ")
}

// Summary renders "N matches · Cached · 2 hours ago".
func (m Metadata) Summary(now time.Time) string {
	count := m.MatchesAnalyzed
	if count <= 0 {
		count = DefaultMatchCount
	}
	parts := []string{i18n.TN("MATCHES", "MATCHES_PLURAL", count)}
	if m.Cached {
		parts = append(parts, i18n.T("CACHED"))
	} else {
		parts = append(parts, i18n.T("FRESH"))
	}
	if m.GeneratedAt > 0 {
		generated := time.Unix(0, int64(m.GeneratedAt*float64(time.Second)))
		parts = append(parts, TimeAgo(now.Sub(generated)))
	}
	return strings.Join(parts, " · ")
}

var timeAgoBuckets = []struct {
	seconds     int64
	key, plural string
}{
	{31536000, "TIME_AGO_YEAR", "TIME_AGO_YEARS"},
	{2592000, "TIME_AGO_MONTH", "TIME_AGO_MONTHS"},
	{604800, "TIME_AGO_WEEK", "TIME_AGO_WEEKS"},
	{86400, "TIME_AGO_DAY", "TIME_AGO_DAYS"},
	{3600, "TIME_AGO_HOUR", "TIME_AGO_HOURS"},
	{60, "TIME_AGO_MINUTE", "TIME_AGO_MINUTES"},
}

// TimeAgo renders an elapsed duration in the largest whole unit.
func TimeAgo(elapsed time.Duration) string {
	seconds := int64(elapsed / time.Second)
	for _, b := range timeAgoBuckets {
		if n := seconds / b.seconds; n >= 1 {
			return i18n.TN(b.key, b.plural, int(n))
		}
	}
	return i18n.T("JUST_NOW")
}
