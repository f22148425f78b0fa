package ebiten

import (
	"fmt"
	"reflect"
	"strings"
	"testing"
	"time"

	"riftrewind/pkg/engine/geom"
	"riftrewind/pkg/game/story"
)

func TestHeaderButtons(t *testing.T) {
	back, refresh := headerButtons(1280)
	if refresh.X+refresh.W != 1280-headerPadding {
		t.Errorf("refresh right edge = %v, want %v", refresh.X+refresh.W, 1280-headerPadding)
	}
	if back.X+back.W+buttonSpacing != refresh.X {
		t.Errorf("back = %+v, refresh = %+v: buttons should be adjacent", back, refresh)
	}
	if back.Y < 0 || back.Y+back.H > headerHeight {
		t.Errorf("back = %+v does not fit the header", back)
	}
}

func TestModalPanel_Centred(t *testing.T) {
	p := modalPanel(1280, 800)
	if p.W != modalMaxWidth || p.H != modalMaxHeight {
		t.Errorf("panel size = %vx%v, want %vx%v", p.W, p.H, modalMaxWidth, modalMaxHeight)
	}
	c := p.Center()
	if c.X != 640 || c.Y != 400 {
		t.Errorf("panel centre = %+v, want (640, 400)", c)
	}

	small := modalPanel(400, 300)
	if small.W != 320 || small.H != 220 {
		t.Errorf("small panel = %+v, want 320x220", small)
	}
}

func TestAnimatedPanel(t *testing.T) {
	p := geom.Rect{X: 100, Y: 100, W: 200, H: 100}
	got := animatedPanel(p, 0.5, 30)
	want := geom.Rect{X: 150, Y: 155, W: 100, H: 50}
	if got != want {
		t.Errorf("animatedPanel() = %+v, want %+v", got, want)
	}
	if animatedPanel(p, 1, 0) != p {
		t.Error("animatedPanel at rest should not move the panel")
	}
}

func TestHitTestModal(t *testing.T) {
	panel := modalPanel(1280, 800)
	closeBtn := modalCloseButton(panel)
	continueBtn := modalContinueButton(panel)

	tests := []struct {
		name string
		p    geom.Point
		want modalHit
	}{
		{"backdrop", geom.Pt(5, 5), modalHitBackdrop},
		{"panel body", panel.Center(), modalHitPanel},
		{"close button", closeBtn.Center(), modalHitClose},
		{"continue button", continueBtn.Center(), modalHitClose},
	}
	for _, tt := range tests {
		if got := hitTestModal(panel, tt.p); got != tt.want {
			t.Errorf("%s: hitTestModal(%+v) = %v, want %v", tt.name, tt.p, got, tt.want)
		}
	}
}

func charWidth(s string) float64 {
	return float64(len([]rune(s)))
}

func TestWrapText(t *testing.T) {
	got := wrapText("the quick brown fox\n\njumps", 10, charWidth)
	want := []string{"the quick", "brown fox", "", "jumps"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("wrapText() = %q, want %q", got, want)
	}

	long := wrapText("a supercalifragilistic word", 10, charWidth)
	if long[1] != "supercalifragilistic" {
		t.Errorf("long word line = %q", long[1])
	}
}

func TestParseMarkup(t *testing.T) {
	segs := parseMarkup("SUBTLE{Kills:} VALUE{3.46} FOO{x}")
	var texts []string
	for _, s := range segs {
		texts = append(texts, s.text)
	}
	want := []string{"Kills:", " ", "3.46", " ", "FOO{x}"}
	if !reflect.DeepEqual(texts, want) {
		t.Errorf("segments = %q, want %q", texts, want)
	}
	if segs[2].color != colorValue {
		t.Errorf("VALUE color = %v, want %v", segs[2].color, colorValue)
	}
}

func lineText(l textLine) string {
	var b strings.Builder
	for _, seg := range l {
		b.WriteString(seg.text)
	}
	return b.String()
}

func TestModalLines(t *testing.T) {
	c := story.Content{
		Title: "River Control",
		Body:  "You fought for the river.",
		Stats: []story.StatLine{{Label: "Kills", Value: "12.00"}},
	}
	lines := modalLines(c, 100, charWidth)
	var texts []string
	for _, l := range lines {
		texts = append(texts, lineText(l))
	}
	want := []string{"You fought for the river.", "", "Stats", "Kills: 12.00"}
	if !reflect.DeepEqual(texts, want) {
		t.Errorf("modalLines() = %q, want %q", texts, want)
	}
	row := lines[len(lines)-1]
	if row[0].color != colorSubtle || row[2].color != colorValue {
		t.Errorf("stat row colours = %v, %v", row[0].color, row[2].color)
	}

	noStats := modalLines(story.Content{Body: "Nothing here."}, 100, charWidth)
	if len(noStats) != 1 {
		t.Errorf("modalLines() without stats = %d lines", len(noStats))
	}
}

func TestModalLines_BracesKept(t *testing.T) {
	c := story.Content{
		Body:  "VALUE{not markup}",
		Stats: []story.StatLine{{Label: "Build", Value: "{ap} }"}},
	}
	lines := modalLines(c, 100, charWidth)
	if got := lineText(lines[0]); got != "VALUE{not markup}" {
		t.Errorf("body line = %q", got)
	}
	if got := lineText(lines[len(lines)-1]); got != "Build: {ap} }" {
		t.Errorf("stat line = %q", got)
	}
}

// An overview zone: a long story and many stats in a small window.
func TestModalScroll_EveryLineReachable(t *testing.T) {
	stats := make([]story.StatLine, 12)
	for i := range stats {
		stats[i] = story.StatLine{Label: fmt.Sprintf("Stat %d", i), Value: "1.00"}
	}
	c := story.Content{
		Body:  strings.Repeat("The season in numbers. ", 12),
		Stats: stats,
	}
	lines := modalLines(c, 60, charWidth)
	capacity := textCapacity(200, 24)
	if capacity >= len(lines) {
		t.Fatalf("test needs overflow: %d lines, capacity %d", len(lines), capacity)
	}

	m := story.NewModal()
	m.Show(c)
	m.SetScrollLimit(scrollLimit(len(lines), capacity))

	seen := make([]bool, len(lines))
	for {
		first, last := visibleLines(len(lines), capacity, m.ScrollOffset())
		if last-first != capacity {
			t.Fatalf("window [%d,%d) is not full", first, last)
		}
		for i := first; i < last; i++ {
			seen[i] = true
		}
		if !m.ScrollBy(1) {
			break
		}
	}
	for i, ok := range seen {
		if !ok {
			t.Errorf("line %d (%q) never shown", i, lineText(lines[i]))
		}
	}
	if got := lineText(lines[len(lines)-1]); got != "Stat 11: 1.00" {
		t.Errorf("last line = %q, want the last stat", got)
	}
}

func TestVisibleLines(t *testing.T) {
	tests := []struct {
		total, capacity, scroll int
		first, last             int
	}{
		{5, 10, 0, 0, 5},
		{5, 10, 3, 0, 5},
		{20, 8, 0, 0, 8},
		{20, 8, 5, 5, 13},
		{20, 8, 50, 12, 20},
		{20, 8, -2, 0, 8},
	}
	for _, tt := range tests {
		first, last := visibleLines(tt.total, tt.capacity, tt.scroll)
		if first != tt.first || last != tt.last {
			t.Errorf("visibleLines(%d, %d, %d) = [%d,%d), want [%d,%d)",
				tt.total, tt.capacity, tt.scroll, first, last, tt.first, tt.last)
		}
	}
}

func TestScrollCue(t *testing.T) {
	tests := []struct {
		first, last, total int
		want               string
	}{
		{0, 5, 5, ""},
		{0, 8, 20, "↓ More below"},
		{5, 13, 20, "↑↓ Scroll for more"},
		{12, 20, 20, "↑ More above"},
	}
	for _, tt := range tests {
		if got := scrollCue(tt.first, tt.last, tt.total); got != tt.want {
			t.Errorf("scrollCue(%d, %d, %d) = %q, want %q", tt.first, tt.last, tt.total, got, tt.want)
		}
	}
}

func TestTextCapacity(t *testing.T) {
	// Default window: 374px between title and buttons at 24px rows.
	if got := textCapacity(374, 24); got != 15 {
		t.Errorf("textCapacity(374, 24) = %d, want 15", got)
	}
	if got := textCapacity(10, 24); got != 1 {
		t.Errorf("textCapacity(10, 24) = %d, want 1", got)
	}
}

func TestCallouts_ReplaceAndExpire(t *testing.T) {
	clock := time.UnixMilli(1_000_000)
	e := &EbitenRenderer{now: func() time.Time { return clock }}

	e.AddCallout("Failed to refresh: boom", ColorCalloutDanger, 1000)
	e.AddCallout("Failed to refresh: boom", ColorCalloutDanger, 1000)
	e.AddCallout("sticky", ColorCalloutInfo, 0)
	if len(e.callouts) != 2 {
		t.Fatalf("callouts = %d, want 2 (duplicates replaced)", len(e.callouts))
	}

	clock = clock.Add(1500 * time.Millisecond)
	e.expireCallouts()
	if len(e.callouts) != 1 || e.callouts[0].Message != "sticky" {
		t.Errorf("callouts after expiry = %+v", e.callouts)
	}

	e.ClearCallouts()
	if len(e.callouts) != 0 {
		t.Error("ClearCallouts() left callouts behind")
	}
}

func TestCalloutAnimation(t *testing.T) {
	c := Callout{CreatedAt: 0, ExpiresAt: 1000}
	if a, _ := calloutAnimation(c, 0); a != 0 {
		t.Errorf("alpha at creation = %v, want 0", a)
	}
	if a, s := calloutAnimation(c, 500); a != 1 || s != 0 {
		t.Errorf("alpha mid-life = %v slide %v, want 1 and 0", a, s)
	}
	if a, _ := calloutAnimation(c, 900); a <= 0 || a >= 1 {
		t.Errorf("alpha while leaving = %v, want in (0,1)", a)
	}
	if a, _ := calloutAnimation(c, 1000); a != 0 {
		t.Errorf("alpha at expiry = %v, want 0", a)
	}
}

func TestPulseValue(t *testing.T) {
	if v := pulseValue(0, 1000); v != 0.5 {
		t.Errorf("pulseValue(0) = %v, want 0.5", v)
	}
	if v := pulseValue(250, 1000); v < 0.999 {
		t.Errorf("pulseValue(250) = %v, want 1", v)
	}
}
