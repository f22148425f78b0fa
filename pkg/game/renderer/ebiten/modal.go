package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"riftrewind/pkg/engine/geom"
	"riftrewind/pkg/game/i18n"
	"riftrewind/pkg/game/story"
)

// modalLines lays out the story body and stats as lines that fit maxWidth.
// Zone text is never parsed as markup, so braces in stories or stat values
// are drawn as written.
func modalLines(c story.Content, maxWidth float64, measure func(string) float64) []textLine {
	var lines []textLine
	for _, l := range wrapText(c.Body, maxWidth, measure) {
		lines = append(lines, plainLine(l, colorText))
	}
	if c.HasStats() {
		lines = append(lines, nil, plainLine(i18n.T("STATS_HEADING"), colorAction))
		for _, st := range c.Stats {
			lines = append(lines, textLine{
				{text: st.Label + ":", color: colorSubtle},
				{text: " ", color: colorText},
				{text: st.Value, color: colorValue},
			})
		}
	}
	return lines
}

// modalText is the laid-out text of the open story for a panel at rest.
type modalText struct {
	lines      []textLine
	top        float64 // y of the first text row
	lineHeight float64
	capacity   int // rows that fit between the title and the buttons
}

func (e *EbitenRenderer) layoutModalText(panel geom.Rect, c story.Content) modalText {
	title := e.face(faceTitle)
	body := e.face(faceBody)
	measure := func(s string) float64 {
		w, _ := text.Measure(s, body, 0)
		return w
	}
	top := panel.Y + modalPadding + title.Size + 18
	lineHeight := body.Size + 8
	bottom := modalContinueButton(panel).Y - 12
	return modalText{
		lines:      modalLines(c, panel.W-2*modalPadding, measure),
		top:        top,
		lineHeight: lineHeight,
		capacity:   textCapacity(bottom-top, lineHeight),
	}
}

// syncModalScroll tells the modal how many lines are hidden below the panel.
func (e *EbitenRenderer) syncModalScroll() {
	m := e.session.Modal
	if !m.Visible() || !e.fontsReady() {
		return
	}
	mt := e.layoutModalText(modalPanel(e.screenWidth, e.screenHeight), m.Content())
	m.SetScrollLimit(scrollLimit(len(mt.lines), mt.capacity))
}

// drawModal draws the story overlay using the modal's animation state.
func (e *EbitenRenderer) drawModal(screen *ebiten.Image) {
	m := e.session.Modal
	if !m.Visible() {
		return
	}
	alpha := m.Opacity()

	vector.DrawFilledRect(screen, 0, 0, float32(e.screenWidth), float32(e.screenHeight), applyAlpha(colorBackdrop, alpha), false)

	panel := animatedPanel(modalPanel(e.screenWidth, e.screenHeight), m.Scale(), m.OffsetY())
	drawPanel(screen, panel, panelStyle{
		Fill:   colorPanelBackground,
		Border: colorAction,
		Radius: modalCorner,
		Stroke: 2,
		Glow:   8,
		Alpha:  alpha,
	})

	content := m.Content()
	title := e.face(faceTitle)
	body := e.face(faceBody)
	x := panel.X + modalPadding
	drawText(screen, content.Title, title, x, panel.Y+modalPadding, applyAlpha(colorAction, alpha))

	closeBtn := modalCloseButton(panel)
	drawCenteredText(screen, "×", title, closeBtn.X+closeBtn.W/2, closeBtn.Y+closeBtn.H/2, applyAlpha(colorSubtle, alpha))

	mt := e.layoutModalText(panel, content)
	first, last := visibleLines(len(mt.lines), mt.capacity, m.ScrollOffset())
	y := mt.top
	for _, line := range mt.lines[first:last] {
		drawColoredTextSegments(screen, line, body, x, y, alpha)
		y += mt.lineHeight
	}

	continueBtn := modalContinueButton(panel)
	if cue := scrollCue(first, last, len(mt.lines)); cue != "" {
		drawText(screen, cue, e.face(faceLabel), x, continueBtn.Y+continueBtn.H/2-labelFontSize/2, applyAlpha(colorSubtle, alpha))
	}
	e.drawButton(screen, continueBtn, i18n.T("BUTTON_CLOSE"), false, alpha)
}

// textCapacity is how many rows of lineHeight fit in height, at least one.
func textCapacity(height, lineHeight float64) int {
	if lineHeight <= 0 {
		return 1
	}
	return max(int(height/lineHeight), 1)
}

// scrollLimit is the largest useful scroll offset for total lines shown
// capacity at a time.
func scrollLimit(total, capacity int) int {
	return max(total-capacity, 0)
}

// visibleLines returns the [first, last) range of lines shown at scroll.
func visibleLines(total, capacity, scroll int) (first, last int) {
	first = min(max(scroll, 0), scrollLimit(total, capacity))
	last = min(first+capacity, total)
	return first, last
}

// scrollCue is the hint shown next to the close button while some of the
// text is out of view.
func scrollCue(first, last, total int) string {
	switch {
	case last < total && first > 0:
		return i18n.T("MODAL_MORE_BOTH")
	case last < total:
		return i18n.T("MODAL_MORE_BELOW")
	case first > 0:
		return i18n.T("MODAL_MORE_ABOVE")
	default:
		return ""
	}
}
