package ebiten

import (
	"fmt"
	"image/color"
	"sort"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	engineinput "riftrewind/pkg/engine/input"
	"riftrewind/pkg/engine/tween"
)

const consoleAnimDuration = 200 * time.Millisecond

// ToggleConsole opens or closes the debug console
func (e *EbitenRenderer) ToggleConsole() {
	e.consoleActive = !e.consoleActive
}

// updateConsole slides the console toward its open or closed position.
func (e *EbitenRenderer) updateConsole(dt time.Duration) {
	step := float64(dt) / float64(consoleAnimDuration)
	if e.consoleActive {
		e.consoleAnimProgress = min(1, e.consoleAnimProgress+step)
	} else {
		e.consoleAnimProgress = max(0, e.consoleAnimProgress-step)
	}
}

// consoleLines describes the session for the debug console. Status rows use
// markup; session messages are shown verbatim.
func (e *EbitenRenderer) consoleLines() []textLine {
	status := []string{
		fmt.Sprintf("SUBTLE{tps} %.0f  SUBTLE{fps} %.0f  SUBTLE{screen} %dx%d", ebiten.ActualTPS(), ebiten.ActualFPS(), e.screenWidth, e.screenHeight),
	}
	s := e.session
	if s == nil {
		status = append(status, "VALUE{map loading}")
		return markupLines(status)
	}

	pos := s.Character.Position()
	view := s.Camera.View()
	status = append(status,
		fmt.Sprintf("SUBTLE{character} (%.0f, %.0f) VALUE{%s}  SUBTLE{rotation} %.0f", pos.X, pos.Y, s.Character.Phase(), s.Character.Rotation()),
		fmt.Sprintf("SUBTLE{camera} (%.0f, %.0f) SUBTLE{zoom} %.2f  SUBTLE{map} %.0fx%.0f", view.X, view.Y, view.Zoom, s.MapSize.Width, s.MapSize.Height),
		fmt.Sprintf("SUBTLE{nearby} %d  SUBTLE{timers} %d  SUBTLE{modal} VALUE{%s}  SUBTLE{refreshing} %t", s.Zones.NearbyCount(), s.PendingTimers(), s.Modal.Phase(), e.refreshing),
	)

	bindings := engineinput.GetBindingsByAction()
	actions := make([]engineinput.Action, 0, len(bindings))
	for act := range bindings {
		actions = append(actions, act)
	}
	sort.Slice(actions, func(i, j int) bool { return actions[i] < actions[j] })
	var parts []string
	for _, act := range actions {
		parts = append(parts, "TITLE{"+engineinput.ActionName(act)+":} "+strings.Join(bindings[act], "/"))
	}
	status = append(status, strings.Join(parts, "  "))

	lines := markupLines(status)
	for _, msg := range s.Messages {
		lines = append(lines, plainLine("> "+msg, colorText))
	}
	return lines
}

func markupLines(rows []string) []textLine {
	lines := make([]textLine, len(rows))
	for i, r := range rows {
		lines[i] = parseMarkup(r)
	}
	return lines
}

// drawConsole draws the console overlay at the bottom of the screen
func (e *EbitenRenderer) drawConsole(screen *ebiten.Image) {
	if e.consoleAnimProgress <= 0 {
		return
	}
	progress := tween.Power1InOut(e.consoleAnimProgress)

	lines := e.consoleLines()
	face := e.face(faceMono)
	lineHeight := face.Size + 6
	const paddingX, paddingY = 10, 10

	fullHeight := float64(len(lines))*lineHeight + paddingY*2
	consoleHeight := fullHeight * progress
	consoleY := float64(e.screenHeight) - consoleHeight

	vector.DrawFilledRect(screen, 0, float32(consoleY), float32(e.screenWidth), float32(consoleHeight),
		color.RGBA{0, 0, 0, uint8(220 * progress)}, false)
	vector.DrawFilledRect(screen, 0, float32(consoleY), float32(e.screenWidth), 2,
		color.RGBA{100, 100, 150, uint8(255 * progress)}, false)

	y := consoleY + paddingY
	for _, line := range lines {
		if y+lineHeight > float64(e.screenHeight) {
			break
		}
		drawColoredTextSegments(screen, line, face, paddingX, y, progress)
		y += lineHeight
	}
}
