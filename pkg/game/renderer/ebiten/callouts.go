package ebiten

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"riftrewind/pkg/engine/geom"
)

// AddCallout shows a floating message under the header. A durationMs of 0
// keeps it until ClearCallouts.
func (e *EbitenRenderer) AddCallout(message string, col color.Color, durationMs int) {
	now := e.now().UnixMilli()
	var expiresAt int64
	if durationMs > 0 {
		expiresAt = now + int64(durationMs)
	}

	// Replace an identical message instead of stacking it
	filtered := make([]Callout, 0, len(e.callouts)+1)
	for _, c := range e.callouts {
		if c.Message != message {
			filtered = append(filtered, c)
		}
	}
	e.callouts = append(filtered, Callout{
		Message:   message,
		Color:     col,
		ExpiresAt: expiresAt,
		CreatedAt: now,
	})
}

// ClearCallouts removes all active callouts
func (e *EbitenRenderer) ClearCallouts() {
	e.callouts = nil
}

// expireCallouts drops callouts whose time is up.
func (e *EbitenRenderer) expireCallouts() {
	if len(e.callouts) == 0 {
		return
	}
	now := e.now().UnixMilli()
	kept := e.callouts[:0]
	for _, c := range e.callouts {
		if c.ExpiresAt == 0 || c.ExpiresAt > now {
			kept = append(kept, c)
		}
	}
	e.callouts = kept
}

// calloutAnimation returns the opacity and vertical slide of a callout at now.
func calloutAnimation(c Callout, now int64) (alpha float64, slideY float32) {
	// Animation timing constants
	const (
		entranceDuration = 200 // milliseconds for entrance animation
		exitDuration     = 200 // milliseconds for exit animation
	)

	alpha = 1
	age := now - c.CreatedAt
	if age < entranceDuration {
		progress := float64(age) / entranceDuration
		alpha = progress
		slideY = float32(-20 * (1 - progress))
	}
	if c.ExpiresAt > 0 {
		left := c.ExpiresAt - now
		switch {
		case left <= 0:
			return 0, 0
		case left < exitDuration:
			progress := float64(left) / exitDuration
			alpha = progress
			slideY = float32(20 * (1 - progress))
		}
	}
	return alpha, slideY
}

// drawCallouts renders the callouts stacked under the header, newest last.
func (e *EbitenRenderer) drawCallouts(screen *ebiten.Image) {
	if len(e.callouts) == 0 {
		return
	}

	face := e.face(faceBold)
	const padding = 10
	now := e.now().UnixMilli()
	y := float32(headerHeight + 16)

	for _, c := range e.callouts {
		alpha, slideY := calloutAnimation(c, now)
		// Skip drawing if alpha is too low (avoid rendering artifacts)
		if alpha < 0.01 {
			continue
		}

		lines := strings.Split(c.Message, "\n")
		maxWidth := 0.0
		for _, line := range lines {
			w, _ := text.Measure(line, face, 0)
			if w > maxWidth {
				maxWidth = w
			}
		}
		lineHeight := float32(face.Size + 6)
		boxW := float32(maxWidth) + padding*2
		boxH := lineHeight*float32(len(lines)) + padding*2
		x := (float32(e.screenWidth) - boxW) / 2

		box := geom.Rect{X: float64(x), Y: float64(y + slideY), W: float64(boxW), H: float64(boxH)}
		drawPanel(screen, box, panelStyle{
			Fill:   color.RGBA{15, 12, 28, 240},
			Border: c.Color,
			Radius: 6,
			Stroke: 1,
			Glow:   6,
			Alpha:  alpha,
		})
		border := applyAlpha(c.Color, alpha)

		// Small accent bar on the left edge in the callout's color
		vector.DrawFilledRect(screen, x+3, y+slideY+padding, 3, boxH-padding*2, border, false)

		for i, line := range lines {
			op := &text.DrawOptions{}
			op.GeoM.Translate(float64(x+padding+4), float64(y+slideY+padding+lineHeight*float32(i)))
			op.ColorScale.ScaleWithColor(applyAlpha(c.Color, alpha))
			text.Draw(screen, line, face, op)
		}

		y += boxH + 8
	}
}
