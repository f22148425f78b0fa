// Package geom provides the map-space math shared by the map page:
// bounds clamping, camera transforms, zoom and screen/map conversions.
package geom

import "math"

// BoundsMargin keeps the character this far away from every map edge.
const BoundsMargin = 50.0

// Zoom limits and step
const (
	MinZoom   = 1.0
	MaxZoom   = 3.0
	ZoomSpeed = 0.1
)

// Point is a position in either screen or map space.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns p translated by (dx, dy).
func (p Point) Add(dx, dy float64) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Size is the width and height of the rendered background map.
type Size struct {
	Width, Height float64
}

// Center returns the middle of the map.
func (s Size) Center() Point {
	return Point{X: s.Width / 2, Y: s.Height / 2}
}

// Empty reports whether the size has not been measured yet.
func (s Size) Empty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Rect is an axis aligned rectangle in map space.
type Rect struct {
	X, Y, W, H float64
}

// Center returns the middle of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Contains reports whether p lies inside r (edges included).
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.W && p.Y >= r.Y && p.Y <= r.Y+r.H
}

// ScaledAroundCenter returns r grown (or shrunk) by factor around its center.
func (r Rect) ScaledAroundCenter(factor float64) Rect {
	c := r.Center()
	w, h := r.W*factor, r.H*factor
	return Rect{X: c.X - w/2, Y: c.Y - h/2, W: w, H: h}
}

// ClampToBounds keeps p inside [50, w-50] x [50, h-50].
// The upper bound is applied first, so a map smaller than twice the
// margin pins the point to the margin.
func ClampToBounds(p Point, size Size) Point {
	return Point{
		X: math.Max(BoundsMargin, math.Min(size.Width-BoundsMargin, p.X)),
		Y: math.Max(BoundsMargin, math.Min(size.Height-BoundsMargin, p.Y)),
	}
}

// Camera is the view onto the map. X and Y are in map space.
type Camera struct {
	X, Y float64
	Zoom float64
}

// Position returns the camera center as a point.
func (c Camera) Position() Point {
	return Point{X: c.X, Y: c.Y}
}

// Transform is the translate+scale applied to the map when drawing it.
type Transform struct {
	TranslateX, TranslateY float64
	Scale                  float64
}

// Origin is where map-space (0,0) ends up on screen.
func (t Transform) Origin() Point {
	return Point{X: t.TranslateX, Y: t.TranslateY}
}

// Apply converts a map-space point to screen space.
func (t Transform) Apply(p Point) Point {
	return MapToScreenSpace(p, t.Origin(), t.Scale)
}

// ComputeTransform returns the transform that keeps the camera position
// at viewportCenter regardless of zoom.
func ComputeTransform(cam Camera, viewportCenter Point) Transform {
	return Transform{
		TranslateX: viewportCenter.X - cam.X*cam.Zoom,
		TranslateY: viewportCenter.Y - cam.Y*cam.Zoom,
		Scale:      cam.Zoom,
	}
}

// Zoom applies a wheel step to the current zoom, saturating at [1, 3].
func Zoom(delta, current float64) float64 {
	return ClampZoom(current + delta*ZoomSpeed)
}

// ClampZoom restricts z to [MinZoom, MaxZoom].
func ClampZoom(z float64) float64 {
	if math.IsNaN(z) {
		return MinZoom
	}
	return math.Max(MinZoom, math.Min(MaxZoom, z))
}

// ScreenToMapSpace converts a screen position to map space given where the
// map origin currently sits on screen and the zoom.
func ScreenToMapSpace(screen, origin Point, zoom float64) Point {
	return Point{
		X: (screen.X - origin.X) / zoom,
		Y: (screen.Y - origin.Y) / zoom,
	}
}

// MapToScreenSpace is the inverse of ScreenToMapSpace.
func MapToScreenSpace(p, origin Point, zoom float64) Point {
	return Point{
		X: origin.X + p.X*zoom,
		Y: origin.Y + p.Y*zoom,
	}
}

// Distance is the Euclidean distance between a and b.
func Distance(a, b Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// AngleDegrees returns the heading from one point to another in degrees,
// measured like atan2 (0 = east, 90 = south on screen).
func AngleDegrees(from, to Point) float64 {
	return math.Atan2(to.Y-from.Y, to.X-from.X) * 180 / math.Pi
}

// Lerp interpolates between a and b.
func Lerp(a, b Point, t float64) Point {
	return Point{
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
	}
}
