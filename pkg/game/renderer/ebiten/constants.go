// Package ebiten draws the rewind map in an Ebiten window.
package ebiten

import "image/color"

// Color palette
var (
	colorBackground      = color.RGBA{12, 10, 24, 255}    // Near-black purple
	colorMapBackground   = color.RGBA{18, 34, 30, 255}    // Deep jungle green
	colorLane            = color.RGBA{92, 84, 60, 255}    // Dusty lane
	colorRiver           = color.RGBA{34, 74, 110, 255}   // River blue
	colorBase            = color.RGBA{70, 60, 110, 255}   // Nexus platform
	colorPlayer          = color.RGBA{255, 80, 180, 255}  // Hot pink
	colorPlayerGlow      = color.RGBA{255, 80, 180, 90}   // Soft pink halo
	colorTrail           = color.RGBA{120, 220, 255, 255} // Cyan sparks
	colorZoneBorder      = color.RGBA{120, 220, 255, 255} // Cyan
	colorZoneFill        = color.RGBA{120, 220, 255, 255} // Alpha comes from the zone
	colorZoneLabel       = color.RGBA{230, 240, 255, 255}
	colorSubtle          = color.RGBA{140, 140, 185, 255} // Soft blue-purple-gray
	colorText            = color.RGBA{215, 215, 245, 255} // Off-white with a purple tint
	colorAction          = color.RGBA{255, 80, 180, 255}  // Pink accent
	colorValue           = color.RGBA{255, 120, 200, 255} // Stat values
	colorDenied          = color.RGBA{255, 100, 100, 255} // Bright red
	colorPanelBackground = color.RGBA{16, 12, 30, 235}    // Semi-transparent dark
	colorHeaderBg        = color.RGBA{16, 12, 30, 210}
	colorButton          = color.RGBA{60, 40, 100, 255}
	colorButtonHover     = color.RGBA{100, 60, 160, 255}
	colorButtonDisabled  = color.RGBA{50, 50, 65, 255}
	colorBackdrop        = color.RGBA{0, 0, 0, 170}

	// Callout colors
	ColorCalloutInfo    = color.RGBA{200, 200, 255, 255} // Light blue for info
	ColorCalloutSuccess = color.RGBA{100, 255, 150, 255} // Green for success
	ColorCalloutDanger  = color.RGBA{255, 120, 120, 255} // Red for failures
)

// Layout
const (
	headerHeight    = 64
	headerPadding   = 16
	buttonWidth     = 120
	buttonHeight    = 34
	buttonSpacing   = 12
	baseFontSize    = 16.0
	titleFontSize   = 22.0
	labelFontSize   = 13.0
	characterRadius = 10.0
	trailRadius     = 5.0

	modalMaxWidth   = 620
	modalMaxHeight  = 520
	modalMargin     = 40
	modalPadding    = 28
	modalCorner     = 14
	modalCloseSize  = 28
	continueWidth   = 200
	continueHeight  = 38
	calloutDuration = 4000 // milliseconds
)

// defaultMapSize is used for the generated background when no map image is
// configured or it fails to load.
const defaultMapSize = 1600

