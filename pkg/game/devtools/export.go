package devtools

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"riftrewind/pkg/game/i18n"
	"riftrewind/pkg/game/state"
	"riftrewind/pkg/game/story"
	"riftrewind/pkg/game/zones"
)

// SaveStoryHTML writes every zone story to a standalone HTML page in dir,
// in layout order, and returns its path.
func SaveStoryHTML(data *state.PlayerData, layout *zones.Layout, dir string, now time.Time) (string, error) {
	if data == nil {
		return "", fmt.Errorf("no rewind data")
	}
	filename := fmt.Sprintf("rewind-%s.html", now.Format("20060102-150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(StoryHTML(data, layout, now)), 0o644); err != nil {
		return "", err
	}
	return path, nil
}

// StoryHTML renders the page. Zones in the layout come first, then any
// other stored zones.
func StoryHTML(data *state.PlayerData, layout *zones.Layout, now time.Time) string {
	var b strings.Builder

	b.WriteString(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>`)
	b.WriteString(html.EscapeString(i18n.T("APP_TITLE") + " - " + data.PlayerInfo.DisplayName()))
	b.WriteString(`</title>
    <style>
        body {
            background-color: #0a1428;
            color: #f0e6d2;
            font-family: sans-serif;
            padding: 20px;
        }
        .header { color: #c8aa6e; font-size: 22px; margin-bottom: 4px; }
        .meta { color: #a09b8c; margin-bottom: 24px; }
        .zone {
            background-color: #010a13;
            border: 1px solid #785a28;
            border-radius: 8px;
            padding: 16px 20px;
            margin: 16px 0;
            max-width: 720px;
        }
        .zone h2 { color: #c8aa6e; margin: 0 0 8px 0; }
        .zone .missing { color: #a09b8c; font-style: italic; }
        .stat-label { color: #a09b8c; }
        .stat-value { color: #0ac8b9; font-weight: bold; }
    </style>
</head>
<body>
`)
	fmt.Fprintf(&b, "<div class=\"header\">%s</div>\n", html.EscapeString(data.PlayerInfo.HeaderText()))
	fmt.Fprintf(&b, "<div class=\"meta\">%s</div>\n", html.EscapeString(data.Metadata.Summary(now)))

	for _, id := range exportOrder(data, layout) {
		c := story.ActivateZone(data.Zones, id)
		_, found := data.Zones[id]

		fmt.Fprintf(&b, "<div class=\"zone\" id=\"%s\">\n", html.EscapeString(id))
		fmt.Fprintf(&b, "<h2>%s</h2>\n", html.EscapeString(c.Title))
		if found {
			fmt.Fprintf(&b, "<p>%s</p>\n", html.EscapeString(c.Body))
		} else {
			fmt.Fprintf(&b, "<p class=\"missing\">%s</p>\n", html.EscapeString(c.Body))
		}
		if c.HasStats() {
			fmt.Fprintf(&b, "<h3>%s</h3>\n<ul>\n", html.EscapeString(i18n.T("STATS_HEADING")))
			for _, st := range c.Stats {
				fmt.Fprintf(&b, "<li><span class=\"stat-label\">%s:</span> <span class=\"stat-value\">%s</span></li>\n",
					html.EscapeString(st.Label), html.EscapeString(st.Value))
			}
			b.WriteString("</ul>\n")
		}
		b.WriteString("</div>\n")
	}

	b.WriteString("</body>\n</html>\n")
	return b.String()
}

func exportOrder(data *state.PlayerData, layout *zones.Layout) []string {
	seen := map[string]bool{}
	var ids []string
	if layout != nil {
		for _, z := range layout.Zones {
			ids = append(ids, z.ID)
			seen[z.ID] = true
		}
	}
	var rest []string
	for id := range data.Zones {
		if !seen[id] {
			rest = append(rest, id)
		}
	}
	sort.Strings(rest)
	return append(ids, rest...)
}
