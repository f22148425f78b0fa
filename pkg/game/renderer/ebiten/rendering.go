package ebiten

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"riftrewind/pkg/engine/geom"
	"riftrewind/pkg/game/i18n"
)

// Draw renders the window (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	if !e.fontsReady() {
		return
	}

	if e.session == nil {
		e.drawFloatingTilesBackground(screen)
		drawCenteredText(screen, i18n.T("LOADING_MAP"), e.face(faceTitle),
			float64(e.screenWidth)/2, float64(e.screenHeight)/2, e.pulsingLoadingColor())
		e.drawCallouts(screen)
		e.drawConsole(screen)
		return
	}

	t := e.session.Transform()
	e.drawMap(screen, t)
	e.drawZones(screen, t)
	e.drawTrail(screen, t)
	e.drawCharacter(screen, t)
	e.drawHeader(screen)
	e.drawControlsHint(screen)
	e.drawModal(screen)
	e.drawCallouts(screen)
	e.drawConsole(screen)
}

// drawMap draws the background image through the camera transform.
func (e *EbitenRenderer) drawMap(screen *ebiten.Image, t geom.Transform) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(t.Scale, t.Scale)
	op.GeoM.Translate(t.TranslateX, t.TranslateY)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(e.mapImage, op)
}

// drawZones draws every zone overlay with its current highlight.
func (e *EbitenRenderer) drawZones(screen *ebiten.Image, t geom.Transform) {
	label := e.face(faceLabel)
	for _, z := range e.session.Zones.Zones() {
		b := z.DrawBounds()
		tl := t.Apply(geom.Pt(b.X, b.Y))
		w, h := float32(b.W*t.Scale), float32(b.H*t.Scale)

		vector.DrawFilledRect(screen, float32(tl.X), float32(tl.Y), w, h, applyAlpha(colorZoneFill, z.FillAlpha()), true)
		vector.StrokeRect(screen, float32(tl.X), float32(tl.Y), w, h, float32(z.Border()), colorZoneBorder, true)

		c := t.Apply(z.Center())
		drawCenteredText(screen, z.Label, label, c.X, c.Y, colorZoneLabel)
	}
}

// drawTrail draws the fading markers left behind by the last move.
func (e *EbitenRenderer) drawTrail(screen *ebiten.Image, t geom.Transform) {
	for _, m := range e.session.Trail {
		p := t.Apply(m.Pos)
		r := float32(trailRadius * m.Scale() * t.Scale)
		if r <= 0 {
			continue
		}
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), r, applyAlpha(colorTrail, m.Opacity()), true)
	}
}

// drawCharacter draws the avatar: a glow, a body and a heading notch that
// follows the rotation.
func (e *EbitenRenderer) drawCharacter(screen *ebiten.Image, t geom.Transform) {
	c := e.session.Character
	p := t.Apply(c.Position())
	x, y := float32(p.X), float32(p.Y)
	r := float32(characterRadius * t.Scale)

	vector.DrawFilledCircle(screen, x, y, r*1.8, e.pulsingGlow(), true)
	vector.DrawFilledCircle(screen, x, y, r, colorPlayer, true)
	vector.StrokeCircle(screen, x, y, r, 2, colorText, true)

	rad := c.Rotation() * math.Pi / 180
	hx := x + float32(math.Cos(rad))*r*0.65
	hy := y + float32(math.Sin(rad))*r*0.65
	vector.DrawFilledCircle(screen, hx, hy, r*0.3, colorText, true)
}

// drawHeader draws the player line, the metadata line and the buttons.
func (e *EbitenRenderer) drawHeader(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, float32(e.screenWidth), headerHeight, colorHeaderBg, false)
	vector.DrawFilledRect(screen, 0, headerHeight-1, float32(e.screenWidth), 1, colorAction, false)

	if e.data != nil {
		drawText(screen, e.data.PlayerInfo.HeaderText(), e.face(faceBold), headerPadding, 12, colorText)
		drawText(screen, e.data.Metadata.Summary(e.now()), e.face(faceLabel), headerPadding, 36, colorSubtle)
	}

	back, refresh := headerButtons(e.screenWidth)
	e.drawButton(screen, back, i18n.T("BUTTON_BACK"), false, 1)
	label := i18n.T("BUTTON_REFRESH")
	if e.refreshing {
		label = i18n.T("REFRESHING")
	}
	e.drawButton(screen, refresh, label, e.refreshing, 1)
}

// drawControlsHint draws the key help in the bottom-left corner.
func (e *EbitenRenderer) drawControlsHint(screen *ebiten.Image) {
	if e.consoleActive {
		return
	}
	face := e.face(faceLabel)
	drawText(screen, i18n.T("CONTROLS_HINT"), face, headerPadding, float64(e.screenHeight)-face.Size-headerPadding, colorSubtle)
}
