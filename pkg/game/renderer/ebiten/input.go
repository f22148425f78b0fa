package ebiten

import (
	"context"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"riftrewind/pkg/engine/geom"
	engineinput "riftrewind/pkg/engine/input"
	"riftrewind/pkg/game/gameplay"
	"riftrewind/pkg/game/i18n"
)

// keyCodes maps Ebiten keys to the raw codes understood by the bindings.
var keyCodes = map[ebiten.Key]string{
	ebiten.KeyArrowUp:    "arrow_up",
	ebiten.KeyArrowDown:  "arrow_down",
	ebiten.KeyArrowLeft:  "arrow_left",
	ebiten.KeyArrowRight: "arrow_right",
	ebiten.KeyW:          "w",
	ebiten.KeyA:          "a",
	ebiten.KeyS:          "s",
	ebiten.KeyD:          "d",
	ebiten.KeySpace:      "space",
	ebiten.KeyEscape:     "escape",
	ebiten.KeyF5:         "f5",
	ebiten.KeyBackspace:  "back",
}

// Update handles input and advances the session (Ebiten interface)
func (e *EbitenRenderer) Update() error {
	// Log window opening on first update (confirms window is actually running)
	if !e.windowOpenedLogged {
		e.windowOpenedLogged = true
		w, h := ebiten.WindowSize()
		log.Printf("Map window opened (%dx%d)", w, h)
	}

	dt := time.Second / time.Duration(ebiten.TPS())

	if inpututil.IsKeyJustPressed(ebiten.KeyGraveAccent) {
		e.ToggleConsole()
	}
	e.updateConsole(dt)
	e.expireCallouts()
	e.pollRefresh()

	if e.session == nil {
		e.pollImageLoad()
		e.updateFloatingTiles()
		return nil
	}

	e.syncModalScroll()
	for _, raw := range e.collectRawInputs() {
		if raw.Device == engineinput.DeviceMouse && raw.Code == "mouse_left" && e.handleUIClick(geom.Pt(raw.X, raw.Y)) {
			continue
		}
		intent := engineinput.MapToIntent(engineinput.NewDebouncedInput(raw))
		if err := e.handleIntent(intent); err != nil {
			return err
		}
	}

	e.session.Update(dt)
	return nil
}

// collectRawInputs is the raw layer: edge-triggered keys, left clicks and
// wheel movement for this frame.
func (e *EbitenRenderer) collectRawInputs() []engineinput.RawInput {
	now := e.now()
	var raws []engineinput.RawInput

	for key, code := range keyCodes {
		if inpututil.IsKeyJustPressed(key) {
			raws = append(raws, engineinput.RawInput{Device: engineinput.DeviceKeyboard, Code: code, Timestamp: now})
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		raws = append(raws, engineinput.RawInput{
			Device:    engineinput.DeviceMouse,
			Code:      "mouse_left",
			X:         float64(x),
			Y:         float64(y),
			Timestamp: now,
		})
	}

	if _, yoff := ebiten.Wheel(); yoff != 0 {
		raws = append(raws, engineinput.RawInput{Device: engineinput.DeviceMouse, Code: "wheel", Delta: yoff, Timestamp: now})
	}
	return raws
}

// handleUIClick routes clicks that land on the header or the story modal.
// It returns true when the click was consumed.
func (e *EbitenRenderer) handleUIClick(p geom.Point) bool {
	back, refresh := headerButtons(e.screenWidth)
	switch {
	case back.Contains(p):
		e.goBack()
		return true
	case refresh.Contains(p):
		e.startRefresh()
		return true
	case p.Y < headerHeight:
		return true
	}

	if !e.session.Modal.Visible() {
		return false
	}
	m := e.session.Modal
	panel := animatedPanel(modalPanel(e.screenWidth, e.screenHeight), m.Scale(), m.OffsetY())
	if hitTestModal(panel, p) != modalHitPanel {
		m.Close()
	}
	return true
}

func (e *EbitenRenderer) handleIntent(intent engineinput.Intent) error {
	switch intent.Action {
	case engineinput.ActionBack:
		e.goBack()
	case engineinput.ActionRefresh:
		e.startRefresh()
	default:
		gameplay.ProcessIntent(e.session, intent)
	}
	if e.outcome == OutcomeBack {
		return ebiten.Termination
	}
	return nil
}

func (e *EbitenRenderer) goBack() {
	log.Printf("Returning to landing")
	e.outcome = OutcomeBack
}

// startRefresh requests new data in the background. It does nothing while a
// refresh is already running.
func (e *EbitenRenderer) startRefresh() {
	if e.refreshing || e.opts.Refresh == nil || e.data == nil {
		return
	}
	e.refreshing = true

	ctx, cancel := context.WithCancel(context.Background())
	e.refreshCancel = cancel
	info := e.data.PlayerInfo
	refresh := e.opts.Refresh
	go func() {
		data, err := refresh(ctx, info)
		e.refreshChan <- refreshResult{data: data, err: err}
	}()
}

// pollRefresh applies a finished refresh. Success reloads the page session
// from the new data, failure shows an alert and re-enables the button.
func (e *EbitenRenderer) pollRefresh() {
	select {
	case res := <-e.refreshChan:
		e.refreshing = false
		if e.refreshCancel != nil {
			e.refreshCancel()
			e.refreshCancel = nil
		}
		if res.err != nil {
			e.AddCallout(i18n.T("REFRESH_FAILED", res.err.Error()), ColorCalloutDanger, calloutDuration)
			return
		}
		e.data = res.data
		e.ClearCallouts()
		e.AddCallout(i18n.T("REFRESH_DONE"), ColorCalloutSuccess, calloutDuration)
		if e.session != nil {
			e.startSession(e.session.MapSize)
		}
	default:
	}
}

