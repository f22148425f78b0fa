package ebiten

import (
	"context"
	"image"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"riftrewind/pkg/game/gameplay"
	"riftrewind/pkg/game/state"
	"riftrewind/pkg/game/zones"
)

// Outcome tells the caller why the window closed.
type Outcome int

const (
	// OutcomeQuit means the window was closed.
	OutcomeQuit Outcome = iota
	// OutcomeBack means the user asked to go back to the landing flow.
	OutcomeBack
)

// RefreshFunc fetches and stores new data for a player.
type RefreshFunc func(ctx context.Context, info state.PlayerInfo) (*state.PlayerData, error)

// Options configures the map window.
type Options struct {
	Title  string
	Width  int
	Height int

	Data   *state.PlayerData
	Layout *zones.Layout

	// MapImage is a PNG or JPEG used as the map background. Empty means a
	// generated one.
	MapImage string

	Refresh RefreshFunc
}

// Callout is a floating message shown under the header
type Callout struct {
	Message   string
	Color     color.Color
	ExpiresAt int64 // Unix milliseconds, 0 = never
	CreatedAt int64 // Unix milliseconds, for the entrance animation
}

// mapImageResult is the outcome of decoding the background off the game loop.
type mapImageResult struct {
	img image.Image
	err error
}

// refreshResult is the outcome of a refresh request.
type refreshResult struct {
	data *state.PlayerData
	err  error
}

// floatingTile is one drifting marker on the loading screen.
type floatingTile struct {
	x, y   float64
	vx, vy float64
	radius float64
	color  color.Color
	alpha  float64
}

// EbitenRenderer runs the map window
type EbitenRenderer struct {
	windowWidth  int
	windowHeight int
	screenWidth  int
	screenHeight int

	opts Options

	// Font sources for text rendering
	sansFontSource     *text.GoTextFaceSource
	sansBoldFontSource *text.GoTextFaceSource
	monoFontSource     *text.GoTextFaceSource

	// Cached font faces, keyed by role
	faces map[faceRole]*text.GoTextFace

	data    *state.PlayerData
	session *gameplay.Session

	mapImage  *ebiten.Image
	imageChan chan mapImageResult

	refreshChan   chan refreshResult
	refreshing    bool
	refreshCancel context.CancelFunc

	callouts []Callout

	// Loading screen animation
	floatingTiles []floatingTile

	// Debug console
	consoleActive       bool
	consoleAnimProgress float64

	// now is swapped in tests
	now func() time.Time

	windowOpenedLogged bool
	outcome            Outcome
	loadStarted        time.Time
}
