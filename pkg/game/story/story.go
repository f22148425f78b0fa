// Package story turns zone entries into the text shown in the story modal.
package story

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"riftrewind/pkg/game/i18n"
	"riftrewind/pkg/game/state"
)

// StatLine is one formatted row of the stats panel.
type StatLine struct {
	Label string
	Value string
}

func (l StatLine) String() string {
	return l.Label + ": " + l.Value
}

// Content is what the modal displays.
type Content struct {
	ZoneID string
	Title  string
	Body   string
	Stats  []StatLine
}

// HasStats reports whether the stats panel should be shown.
func (c Content) HasStats() bool {
	return len(c.Stats) > 0
}

// ActivateZone looks up id and builds the modal content for it. A missing
// zone yields a placeholder rather than an error.
func ActivateZone(zones state.ZoneMap, id string) Content {
	entry, ok := zones[id]
	if !ok {
		return Content{
			ZoneID: id,
			Title:  i18n.T("ZONE_NOT_FOUND"),
			Body:   i18n.T("ZONE_NOT_FOUND_STORY"),
		}
	}
	return Content{
		ZoneID: id,
		Title:  entry.ZoneName,
		Body:   entry.Story,
		Stats:  FormatStats(entry.Stats),
	}
}

// FormatStats formats every stat in order.
func FormatStats(stats state.Stats) []StatLine {
	if len(stats) == 0 {
		return nil
	}
	lines := make([]StatLine, 0, len(stats))
	for _, st := range stats {
		lines = append(lines, StatLine{Label: Humanize(st.Key), Value: FormatValue(st.Value)})
	}
	return lines
}

// Humanize turns "kills_per_game" into "Kills Per Game".
func Humanize(key string) string {
	words := strings.Split(key, "_")
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		if size == 0 {
			continue
		}
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}

// FormatValue renders numbers with two decimals and everything else as-is.
func FormatValue(v any) string {
	switch val := v.(type) {
	case float64:
		return fmt.Sprintf("%.2f", val)
	case float32:
		return fmt.Sprintf("%.2f", val)
	case int:
		return fmt.Sprintf("%.2f", float64(val))
	case int64:
		return fmt.Sprintf("%.2f", float64(val))
	case string:
		return val
	case []any:
		return joinList(val)
	case nil:
		return "null"
	default:
		return fmt.Sprint(val)
	}
}

// joinList renders a list stat the way the web page did: items separated by
// commas, numbers unrounded, null items empty.
func joinList(items []any) string {
	parts := make([]string, len(items))
	for i, item := range items {
		switch v := item.(type) {
		case nil:
		case string:
			parts[i] = v
		case float64:
			parts[i] = strconv.FormatFloat(v, 'f', -1, 64)
		case json.Number:
			if f, err := v.Float64(); err == nil {
				parts[i] = strconv.FormatFloat(f, 'f', -1, 64)
			} else {
				parts[i] = v.String()
			}
		case []any:
			parts[i] = joinList(v)
		case map[string]any:
			parts[i] = "[object Object]"
		default:
			parts[i] = fmt.Sprint(v)
		}
	}
	return strings.Join(parts, ",")
}
