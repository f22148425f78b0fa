package ebiten

import (
	"image/color"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// generateMapImage draws a stylised rift when no background image is
// available: jungle floor, three lanes, the river and both bases.
func generateMapImage(size int) *ebiten.Image {
	img := ebiten.NewImage(size, size)
	img.Fill(colorMapBackground)

	s := float32(size)
	lane := s * 0.06

	// Top lane: up the left edge, across the top
	vector.DrawFilledRect(img, s*0.06, s*0.08, lane, s*0.80, colorLane, false)
	vector.DrawFilledRect(img, s*0.06, s*0.06, s*0.86, lane, colorLane, false)
	// Bot lane: along the bottom, up the right edge
	vector.DrawFilledRect(img, s*0.08, s*0.88, s*0.86, lane, colorLane, false)
	vector.DrawFilledRect(img, s*0.88, s*0.08, lane, s*0.86, colorLane, false)

	// Mid lane and river are diagonals made of overlapping circles
	for i := 0; i <= 60; i++ {
		t := float32(i) / 60
		mx := s*0.15 + t*s*0.70
		my := s*0.85 - t*s*0.70
		vector.DrawFilledCircle(img, mx, my, lane*0.6, colorLane, true)

		rx := s*0.18 + t*s*0.64
		ry := s*0.18 + t*s*0.64
		vector.DrawFilledCircle(img, rx, ry, lane*0.9, colorRiver, true)
	}

	// Bases
	vector.DrawFilledCircle(img, s*0.10, s*0.90, s*0.09, colorBase, true)
	vector.DrawFilledCircle(img, s*0.90, s*0.10, s*0.09, colorBase, true)

	// Scattered jungle camps
	rng := rand.New(rand.NewPCG(42, 7))
	camp := color.RGBA{30, 56, 44, 255}
	for i := 0; i < 24; i++ {
		x := s*0.15 + rng.Float32()*s*0.70
		y := s*0.15 + rng.Float32()*s*0.70
		vector.DrawFilledCircle(img, x, y, s*0.015+rng.Float32()*s*0.02, camp, true)
	}
	return img
}

// initFloatingTiles seeds the drifting markers of the loading screen.
func (e *EbitenRenderer) initFloatingTiles(screenWidth, screenHeight int) {
	if screenWidth <= 0 || screenHeight <= 0 {
		return
	}

	colors := []color.Color{
		color.RGBA{60, 40, 90, 255},  // Dark purple
		color.RGBA{40, 70, 90, 255},  // Dark teal
		color.RGBA{90, 40, 70, 255},  // Dark magenta
		color.RGBA{50, 50, 80, 255},  // Blue-gray
		color.RGBA{40, 80, 60, 255},  // Jungle green
		color.RGBA{80, 60, 100, 255}, // Lavender gray
	}

	const tileMovementSpeed = 1.3

	numTiles := 30 + rand.IntN(21)
	e.floatingTiles = make([]floatingTile, numTiles)
	for i := range e.floatingTiles {
		e.floatingTiles[i] = floatingTile{
			x:      rand.Float64() * float64(screenWidth),
			y:      rand.Float64() * float64(screenHeight),
			vx:     (rand.Float64() - 0.5) * tileMovementSpeed,
			vy:     (rand.Float64() - 0.5) * tileMovementSpeed,
			radius: 3 + rand.Float64()*6,
			color:  colors[rand.IntN(len(colors))],
			alpha:  0.4 + rand.Float64()*0.6,
		}
	}
}

// updateFloatingTiles moves the loading screen markers, wrapping at the
// screen edges.
func (e *EbitenRenderer) updateFloatingTiles() {
	w, h := float64(e.screenWidth), float64(e.screenHeight)
	if len(e.floatingTiles) == 0 {
		e.initFloatingTiles(e.screenWidth, e.screenHeight)
	}

	for i := range e.floatingTiles {
		tile := &e.floatingTiles[i]
		tile.x += tile.vx
		tile.y += tile.vy

		if tile.x < 0 {
			tile.x += w
		} else if tile.x >= w {
			tile.x -= w
		}
		if tile.y < 0 {
			tile.y += h
		} else if tile.y >= h {
			tile.y -= h
		}

		// Slight random drift changes for more organic movement
		if rand.Float64() < 0.01 {
			tile.vx = clampVelocity(tile.vx + (rand.Float64()-0.5)*0.13)
			tile.vy = clampVelocity(tile.vy + (rand.Float64()-0.5)*0.13)
		}
	}
}

func clampVelocity(v float64) float64 {
	return max(-1, min(1, v))
}

// drawFloatingTilesBackground draws the loading screen markers.
func (e *EbitenRenderer) drawFloatingTilesBackground(screen *ebiten.Image) {
	for _, tile := range e.floatingTiles {
		vector.DrawFilledCircle(screen, float32(tile.x), float32(tile.y), float32(tile.radius),
			applyAlpha(tile.color, tile.alpha), true)
	}
}
