// Package gameplay runs the map page: character movement, camera follow and zone interactions.
package gameplay

import (
	"time"

	"riftrewind/pkg/engine/geom"
	"riftrewind/pkg/engine/tween"
)

// Camera behaviour
const (
	InitialZoom    = 1.8
	FollowDuration = 300 * time.Millisecond
	ZoomAnimation  = 300 * time.Millisecond
)

// Camera smoothly follows a point and animates zoom changes. The logical
// zoom changes immediately, the drawn zoom eases toward it.
type Camera struct {
	x, y     *tween.Tween
	zoom     float64
	drawZoom *tween.Tween
}

// NewCamera centres a camera on p.
func NewCamera(p geom.Point, zoom float64) *Camera {
	zoom = geom.ClampZoom(zoom)
	return &Camera{
		x:        tween.New(p.X, p.X, 0, tween.Power2Out),
		y:        tween.New(p.Y, p.Y, 0, tween.Power2Out),
		zoom:     zoom,
		drawZoom: tween.New(zoom, zoom, 0, tween.Power2Out),
	}
}

// Follow retargets the camera toward p.
func (c *Camera) Follow(p geom.Point) {
	c.x.Retarget(p.X, FollowDuration)
	c.y.Retarget(p.Y, FollowDuration)
}

// ZoomBy applies a wheel delta and returns the new logical zoom.
func (c *Camera) ZoomBy(delta float64) float64 {
	c.zoom = geom.Zoom(delta, c.zoom)
	c.drawZoom.Retarget(c.zoom, ZoomAnimation)
	return c.zoom
}

// Zoom returns the logical zoom level.
func (c *Camera) Zoom() float64 {
	return c.zoom
}

// Update advances the follow and zoom animations.
func (c *Camera) Update(dt time.Duration) {
	c.x.Advance(dt)
	c.y.Advance(dt)
	c.drawZoom.Advance(dt)
}

// View returns the camera as drawn this frame.
func (c *Camera) View() geom.Camera {
	return geom.Camera{X: c.x.Value(), Y: c.y.Value(), Zoom: c.drawZoom.Value()}
}
