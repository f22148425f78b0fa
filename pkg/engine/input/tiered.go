package input

import (
	"sort"
	"time"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceMouse
)

// Action represents a high‑level intent on the map page.
type Action int

const (
	ActionNone Action = iota

	// Relative movement
	ActionMoveNorth
	ActionMoveSouth
	ActionMoveWest
	ActionMoveEast

	ActionMoveRandom // Jump to a random point on the map (Space)
	ActionMoveTo     // Click on the map, carries a screen position
	ActionZoom       // Mouse wheel, carries a delta
	ActionCloseModal // Escape
	ActionRefresh    // Re-fetch player data (F5)
	ActionBack       // Return to the landing flow
)

// Intent is the 4th‑layer, high‑level description of what the player wants to do.
// X and Y are screen coordinates for pointer actions, Delta is +1/-1 for zoom.
type Intent struct {
	Action Action
	X, Y   float64
	Delta  float64
}

// RawInput is the 1st‑layer event emitted directly from an input device.
// Code is a device‑specific identifier (e.g. "arrow_up", "mouse_left", "wheel").
type RawInput struct {
	Device    Device
	Code      string
	X, Y      float64
	Delta     float64
	Timestamp time.Time
}

// DebouncedInput is the 2nd‑layer representation after debouncing/deduplication.
// Ebiten's just-pressed helpers already give us edge-triggered events, so
// this stays a thin copy.
type DebouncedInput struct {
	Device Device
	Code   string
	X, Y   float64
	Delta  float64
}

// NewDebouncedInput converts a raw event to a debounced event.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Code:   raw.Code,
		X:      raw.X,
		Y:      raw.Y,
		Delta:  raw.Delta,
	}
}

// bindings maps raw codes to actions (3rd-layer bindings).
// Multiple codes may point to the same Action.
var bindings = map[string]Action{
	// Movement (arrows, WASD)
	"arrow_up":    ActionMoveNorth,
	"w":           ActionMoveNorth,
	"arrow_down":  ActionMoveSouth,
	"s":           ActionMoveSouth,
	"arrow_left":  ActionMoveWest,
	"a":           ActionMoveWest,
	"arrow_right": ActionMoveEast,
	"d":           ActionMoveEast,

	"space": ActionMoveRandom,

	// Pointer
	"mouse_left": ActionMoveTo,
	"wheel":      ActionZoom,

	"escape": ActionCloseModal,
	"f5":     ActionRefresh,
	"back":   ActionBack,
}

// MapToIntent is the 3rd+4th layer: it applies the current bindings to a
// debounced input and returns a high‑level Intent.
func MapToIntent(ev DebouncedInput) Intent {
	act, ok := bindings[ev.Code]
	if !ok {
		return Intent{Action: ActionNone}
	}
	intent := Intent{Action: act}
	switch act {
	case ActionMoveTo:
		intent.X, intent.Y = ev.X, ev.Y
	case ActionZoom:
		// Scrolling down (negative wheel delta) zooms out.
		switch {
		case ev.Delta > 0:
			intent.Delta = 1
		case ev.Delta < 0:
			intent.Delta = -1
		default:
			return Intent{Action: ActionNone}
		}
	}
	return intent
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionMoveNorth:
		return "Move North"
	case ActionMoveSouth:
		return "Move South"
	case ActionMoveWest:
		return "Move West"
	case ActionMoveEast:
		return "Move East"
	case ActionMoveRandom:
		return "Random Point"
	case ActionMoveTo:
		return "Move To"
	case ActionZoom:
		return "Zoom"
	case ActionCloseModal:
		return "Close"
	case ActionRefresh:
		return "Refresh"
	case ActionBack:
		return "Back"
	default:
		return "None"
	}
}

// GetBindingsByAction returns the current bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Stable ordering so the controls overlay doesn't flicker.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}
