package tui

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/gookit/color"

	"riftrewind/pkg/engine/input"
	"riftrewind/pkg/game/renderer"
	"riftrewind/pkg/game/state"
	"riftrewind/pkg/game/story"
)

func newTestRenderer(in string) (*TUIRenderer, *bytes.Buffer) {
	color.Enable = false
	out := &bytes.Buffer{}
	t := &TUIRenderer{Out: out, In: input.NewLineReader(strings.NewReader(in))}
	t.Init()
	return t, out
}

func TestFormatText(t *testing.T) {
	r, _ := newTestRenderer("")
	got := r.FormatText("GT{ZONE_NOT_FOUND}: VALUE{%d} UNKNOWN{x}", 3)
	if got != "Zone Not Found: 3 UNKNOWN{x}" {
		t.Errorf("FormatText() = %q", got)
	}
	if got := r.FormatText("100% plain"); got != "100% plain" {
		t.Errorf("FormatText without args = %q", got)
	}
}

func TestStyleText_NormalUnchanged(t *testing.T) {
	r, _ := newTestRenderer("")
	if got := r.StyleText("abc", renderer.StyleNormal); got != "abc" {
		t.Errorf("StyleText(normal) = %q", got)
	}
}

func TestPrompt(t *testing.T) {
	r, out := newTestRenderer("  Faker  \n")
	got, err := r.Prompt("Game name: ")
	if err != nil || got != "Faker" {
		t.Errorf("Prompt() = (%q, %v)", got, err)
	}
	if !strings.Contains(out.String(), "Game name: ") {
		t.Errorf("prompt not printed: %q", out.String())
	}
	if _, err := r.Prompt("again: "); err == nil {
		t.Error("Prompt() at EOF returned nil error")
	}
}

func TestSpinnerNotAnimated(t *testing.T) {
	r, out := newTestRenderer("")
	stop := r.StartSpinner("Loading")
	stop()
	if out.String() != "Loading...\n" {
		t.Errorf("spinner output = %q", out.String())
	}
}

func TestSpinnerAnimatedStops(t *testing.T) {
	r, out := newTestRenderer("")
	r.Animate = true
	stop := r.StartSpinner("Loading")
	stop()
	stop()
	if !strings.Contains(out.String(), "Loading") {
		t.Errorf("spinner output = %q", out.String())
	}
}

func TestPrintStory(t *testing.T) {
	r, out := newTestRenderer("")
	r.PrintStory(story.Content{
		Title: "Baron Nashor",
		Body:  "You secured the baron.",
		Stats: []story.StatLine{{Label: "Barons Secured", Value: "2.00"}},
	})
	got := out.String()
	for _, want := range []string{"Baron Nashor", "You secured the baron.", "Stats", "Barons Secured: 2.00"} {
		if !strings.Contains(got, want) {
			t.Errorf("PrintStory output missing %q:\n%s", want, got)
		}
	}
}

func TestPrintZoneList(t *testing.T) {
	r, out := newTestRenderer("")
	var data state.PlayerData
	if err := json.Unmarshal([]byte(`{
		"playerInfo": {"gameName": "Foo", "tagLine": "NA1"},
		"zones": {"river": {"zone_name": "River Control", "story": ""}, "baron_pit": {"zone_name": "Baron Nashor", "story": ""}},
		"metadata": {}
	}`), &data); err != nil {
		t.Fatal(err)
	}
	r.PrintZoneList(&data)
	got := out.String()
	if !strings.Contains(got, "Foo#NA1") {
		t.Errorf("missing header:\n%s", got)
	}
	if strings.Index(got, "baron_pit") > strings.Index(got, "river") {
		t.Errorf("zones not sorted:\n%s", got)
	}
}
