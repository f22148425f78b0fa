package ebiten

import (
	"math"

	"riftrewind/pkg/engine/geom"
)

// headerButtons returns the Back and Refresh button rectangles, right-aligned
// in the header.
func headerButtons(screenWidth int) (back, refresh geom.Rect) {
	y := float64(headerHeight-buttonHeight) / 2
	refresh = geom.Rect{
		X: float64(screenWidth) - headerPadding - buttonWidth,
		Y: y,
		W: buttonWidth,
		H: buttonHeight,
	}
	back = geom.Rect{
		X: refresh.X - buttonSpacing - buttonWidth,
		Y: y,
		W: buttonWidth,
		H: buttonHeight,
	}
	return back, refresh
}

// modalPanel is the story box at rest, centred on screen.
func modalPanel(screenWidth, screenHeight int) geom.Rect {
	w := math.Min(modalMaxWidth, float64(screenWidth-2*modalMargin))
	h := math.Min(modalMaxHeight, float64(screenHeight-2*modalMargin))
	w = math.Max(w, 200)
	h = math.Max(h, 160)
	return geom.Rect{
		X: (float64(screenWidth) - w) / 2,
		Y: (float64(screenHeight) - h) / 2,
		W: w,
		H: h,
	}
}

// animatedPanel applies the modal's scale and vertical offset to the panel.
func animatedPanel(panel geom.Rect, scale, offsetY float64) geom.Rect {
	r := panel.ScaledAroundCenter(scale)
	r.Y += offsetY
	return r
}

// modalCloseButton is the "x" in the panel's top-right corner.
func modalCloseButton(panel geom.Rect) geom.Rect {
	return geom.Rect{
		X: panel.X + panel.W - modalPadding/2 - modalCloseSize,
		Y: panel.Y + modalPadding/2,
		W: modalCloseSize,
		H: modalCloseSize,
	}
}

// modalContinueButton is the wide button along the panel's bottom edge.
func modalContinueButton(panel geom.Rect) geom.Rect {
	return geom.Rect{
		X: panel.X + (panel.W-continueWidth)/2,
		Y: panel.Y + panel.H - modalPadding - continueHeight,
		W: continueWidth,
		H: continueHeight,
	}
}

// modalHit is what a click on the modal overlay lands on.
type modalHit int

const (
	modalHitPanel modalHit = iota
	modalHitBackdrop
	modalHitClose
)

// hitTestModal classifies a click while the modal is shown. Both buttons and
// the backdrop close it, clicks inside the panel are swallowed.
func hitTestModal(panel geom.Rect, p geom.Point) modalHit {
	if modalCloseButton(panel).Contains(p) || modalContinueButton(panel).Contains(p) {
		return modalHitClose
	}
	if panel.Contains(p) {
		return modalHitPanel
	}
	return modalHitBackdrop
}
