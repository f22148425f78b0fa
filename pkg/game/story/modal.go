package story

import (
	"time"

	"riftrewind/pkg/engine/tween"
)

// Phase of the story modal.
type Phase int

const (
	Hidden Phase = iota
	Opening
	Open
	Closing
)

func (p Phase) String() string {
	switch p {
	case Opening:
		return "opening"
	case Open:
		return "open"
	case Closing:
		return "closing"
	default:
		return "hidden"
	}
}

// Modal animation
const (
	OpenDuration  = 500 * time.Millisecond
	CloseDuration = 300 * time.Millisecond

	closedScale   = 0.7
	closedOffsetY = 100.0
	openOvershoot = 1.7
)

// Modal is the story dialog. All of its visual properties derive from a
// single progress value: 0 is fully closed, 1 fully open.
type Modal struct {
	phase    Phase
	content  Content
	progress *tween.Tween

	// scroll is the first visible text line, at most maxScroll.
	scroll    int
	maxScroll int
}

// NewModal returns a hidden modal.
func NewModal() *Modal {
	return &Modal{progress: tween.New(0, 0, 0, tween.Linear)}
}

// Show replaces the content and plays the opening animation.
func (m *Modal) Show(c Content) {
	m.content = c
	m.scroll, m.maxScroll = 0, 0
	m.phase = Opening
	m.progress = tween.New(0, 1, OpenDuration, tween.BackOut(openOvershoot))
}

// Close plays the closing animation. It does nothing when already hidden
// or closing.
func (m *Modal) Close() {
	if m.phase == Hidden || m.phase == Closing {
		return
	}
	m.phase = Closing
	m.progress = tween.New(m.progress.Value(), 0, CloseDuration, tween.Power2In)
}

// Update advances the animation.
func (m *Modal) Update(dt time.Duration) {
	if m.phase != Opening && m.phase != Closing {
		return
	}
	if _, done := m.progress.Advance(dt); !done {
		return
	}
	if m.phase == Opening {
		m.phase = Open
	} else {
		m.phase = Hidden
	}
}

// Phase returns the current phase.
func (m *Modal) Phase() Phase {
	return m.phase
}

// Visible reports whether the modal is on screen (including while it
// animates in or out).
func (m *Modal) Visible() bool {
	return m.phase != Hidden
}

// Content returns what is being shown.
func (m *Modal) Content() Content {
	return m.content
}

// Scale of the content box.
func (m *Modal) Scale() float64 {
	return closedScale + (1-closedScale)*m.progress.Value()
}

// Opacity of the content box, clamped to [0,1] while the easing overshoots.
func (m *Modal) Opacity() float64 {
	p := m.progress.Value()
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// OffsetY is the vertical offset of the content box in pixels.
func (m *Modal) OffsetY() float64 {
	return closedOffsetY * (1 - m.progress.Value())
}

// SetScrollLimit sets how far the text can scroll, i.e. the number of lines
// that do not fit the panel. The current offset is clamped to it.
func (m *Modal) SetScrollLimit(limit int) {
	m.maxScroll = max(limit, 0)
	m.scroll = min(m.scroll, m.maxScroll)
}

// ScrollBy moves the text by delta lines and reports whether it moved.
func (m *Modal) ScrollBy(delta int) bool {
	next := min(max(m.scroll+delta, 0), m.maxScroll)
	if next == m.scroll {
		return false
	}
	m.scroll = next
	return true
}

// ScrollOffset returns the index of the first visible text line.
func (m *Modal) ScrollOffset() int {
	return m.scroll
}
