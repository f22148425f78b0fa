package ebiten

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"riftrewind/pkg/engine/geom"
)

// panelStyle describes how drawPanel fills and outlines a rounded box.
type panelStyle struct {
	Fill   color.Color
	Border color.Color
	Radius float64
	Stroke float64
	// Glow is the width of the soft outer halo in pixels, 0 for none.
	Glow int
	// Alpha fades the whole panel, halo included.
	Alpha float64
}

// roundedPath traces r with corners of the given radius.
func roundedPath(p *vector.Path, r geom.Rect, radius float64, dir vector.Direction) {
	x, y, w, h := float32(r.X), float32(r.Y), float32(r.W), float32(r.H)
	rad := float32(math.Min(radius, math.Min(r.W, r.H)/2))
	if rad <= 0 {
		p.MoveTo(x, y)
		p.LineTo(x+w, y)
		p.LineTo(x+w, y+h)
		p.LineTo(x, y+h)
		p.Close()
		return
	}

	const quarter = float32(math.Pi / 2)
	corners := [4]struct{ cx, cy float32 }{
		{x + w - rad, y + rad},
		{x + w - rad, y + h - rad},
		{x + rad, y + h - rad},
		{x + rad, y + rad},
	}
	if dir == vector.Clockwise {
		p.MoveTo(x+rad, y)
		for i, c := range corners {
			start := float32(i-1) * quarter
			p.Arc(c.cx, c.cy, rad, start, start+quarter, dir)
		}
	} else {
		p.MoveTo(x+w-rad, y)
		for i := len(corners) - 1; i >= 0; i-- {
			start := float32(i) * quarter
			p.Arc(corners[i].cx, corners[i].cy, rad, start, start-quarter, dir)
		}
	}
	p.Close()
}

// grow returns r expanded by d on every side.
func grow(r geom.Rect, d float64) geom.Rect {
	return geom.Rect{X: r.X - d, Y: r.Y - d, W: r.W + 2*d, H: r.H + 2*d}
}

func fillPath(screen *ebiten.Image, p *vector.Path, c color.Color) {
	op := &vector.DrawPathOptions{AntiAlias: true}
	op.ColorScale.ScaleWithColor(c)
	vector.FillPath(screen, p, nil, op)
}

// drawPanel draws a rounded box with an optional halo tinted by the border
// colour. Each halo ring is drawn as an outer path minus the next inner one
// so rings do not stack.
func drawPanel(screen *ebiten.Image, r geom.Rect, s panelStyle) {
	var path vector.Path

	if s.Glow > 0 {
		br, bg, bb, _ := s.Border.RGBA()
		for i := s.Glow; i >= 1; i-- {
			a := float64(min(10+i*6, 50)) * s.Alpha
			ring := color.RGBA{uint8(br >> 10), uint8(bg >> 10), uint8(bb >> 10), uint8(a)}
			path.Reset()
			roundedPath(&path, grow(r, float64(i)), s.Radius+float64(i), vector.Clockwise)
			roundedPath(&path, grow(r, float64(i-1)), s.Radius+float64(i-1), vector.CounterClockwise)
			fillPath(screen, &path, ring)
		}
	}

	path.Reset()
	roundedPath(&path, r, s.Radius, vector.Clockwise)
	fillPath(screen, &path, applyAlpha(s.Fill, s.Alpha))

	if s.Stroke > 0 {
		op := &vector.DrawPathOptions{AntiAlias: true}
		op.ColorScale.ScaleWithColor(applyAlpha(s.Border, s.Alpha))
		vector.StrokePath(screen, &path, &vector.StrokeOptions{Width: float32(s.Stroke), MiterLimit: 10}, op)
	}
}

// drawButton draws a header or modal button with a centred label. Hovered
// buttons get the lighter fill, disabled ones are greyed out.
func (e *EbitenRenderer) drawButton(screen *ebiten.Image, r geom.Rect, label string, disabled bool, alpha float64) {
	style := panelStyle{Fill: colorButton, Border: colorAction, Radius: 8, Stroke: 1, Glow: 4, Alpha: alpha}
	fg := colorText
	switch {
	case disabled:
		style.Fill, style.Border, fg = colorButtonDisabled, colorSubtle, colorSubtle
	case r.Contains(cursorPoint()):
		style.Fill = colorButtonHover
	}
	drawPanel(screen, r, style)

	face := e.face(faceBold)
	w, h := text.Measure(label, face, 0)
	op := &text.DrawOptions{}
	op.GeoM.Translate(r.X+(r.W-w)/2, r.Y+(r.H-h)/2)
	op.ColorScale.ScaleWithColor(applyAlpha(fg, alpha))
	text.Draw(screen, label, face, op)
}

func cursorPoint() geom.Point {
	x, y := ebiten.CursorPosition()
	return geom.Pt(float64(x), float64(y))
}
