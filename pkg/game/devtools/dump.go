// Package devtools provides developer tools for inspecting stored rewinds.
package devtools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"

	"riftrewind/pkg/game/state"
	"riftrewind/pkg/game/story"
	"riftrewind/pkg/game/zones"
)

const dumpFilename = "rewind.txt"

// DumpRewindToFile writes a debug dump of data to rewind.txt in dir and
// returns the absolute path.
func DumpRewindToFile(data *state.PlayerData, layout *zones.Layout, dir string, now time.Time) (string, error) {
	if data == nil {
		return "", fmt.Errorf("no rewind data")
	}

	absPath, err := filepath.Abs(filepath.Join(dir, dumpFilename))
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := WriteDump(f, data, layout, now); err != nil {
		return "", err
	}
	return absPath, nil
}

// WriteDump writes the dump sections: metadata, player, layout coverage and
// one block per zone.
func WriteDump(w io.Writer, data *state.PlayerData, layout *zones.Layout, now time.Time) error {
	p := &printer{w: w}

	p.line("=== REWIND DUMP ===")
	p.line("")
	p.line("--- Metadata ---")
	p.printf("matches_analyzed: %d\n", data.Metadata.MatchesAnalyzed)
	p.printf("cached: %v\n", data.Metadata.Cached)
	p.printf("generated_at: %.0f\n", data.Metadata.GeneratedAt)
	p.printf("summary: %s\n", data.Metadata.Summary(now))
	p.printf("has_session_token: %v\n", data.SessionToken != "")
	p.line("")

	p.line("--- Player ---")
	p.printf("header: %s\n", data.PlayerInfo.HeaderText())
	p.printf("game_name: %s\n", data.PlayerInfo.GameName)
	p.printf("tag_line: %s\n", data.PlayerInfo.TagLine)
	p.printf("riot_id: %s\n", data.PlayerInfo.RiotID)
	p.printf("refresh_id: %s\n", data.PlayerInfo.RefreshID())
	p.line("")

	if layout != nil {
		p.line("--- Layout (zone: story present) ---")
		for _, z := range layout.Zones {
			_, ok := data.Zones[z.ID]
			p.printf("%s: %v\n", z.ID, ok)
		}
		p.line("")
	}

	ids := make([]string, 0, len(data.Zones))
	for id := range data.Zones {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	p.printf("--- Zones (%d) ---\n", len(ids))
	for _, id := range ids {
		c := story.ActivateZone(data.Zones, id)
		p.printf("[%s] %s\n", id, c.Title)
		p.printf("story: %s\n", c.Body)
		for _, st := range c.Stats {
			p.printf("  %s\n", st)
		}
		p.line("")
	}
	return p.err
}

// printer remembers the first write error so the dump reads top to bottom.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) line(s string) {
	p.printf("%s\n", s)
}
