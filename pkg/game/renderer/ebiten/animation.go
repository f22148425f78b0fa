package ebiten

import (
	"image/color"
	"math"
)

// pulseValue oscillates smoothly between 0 and 1 with the given period.
func pulseValue(nowMs, periodMs int64) float64 {
	phase := float64(nowMs%periodMs) / float64(periodMs)
	return (math.Sin(phase*2*math.Pi) + 1) / 2
}

// pulsingGlow returns the character's halo color; it breathes between 50%
// and 100% of its base alpha every 1.6s.
func (e *EbitenRenderer) pulsingGlow() color.Color {
	v := pulseValue(e.now().UnixMilli(), 1600)
	return applyAlpha(colorPlayerGlow, 0.5+0.5*v)
}

// pulsingLoadingColor fades the loading label between 40% and 100%.
func (e *EbitenRenderer) pulsingLoadingColor() color.Color {
	v := pulseValue(e.now().UnixMilli(), 1200)
	return applyAlpha(colorText, 0.4+0.6*v)
}
