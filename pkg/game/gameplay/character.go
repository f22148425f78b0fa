// Package gameplay runs the map page: character movement, camera follow and zone interactions.
package gameplay

import (
	"time"

	"riftrewind/pkg/engine/geom"
	"riftrewind/pkg/engine/tween"
)

// Character movement
const (
	CharacterSpeed   = 400.0 // map pixels per second
	RotationDuration = 300 * time.Millisecond
)

// MovePhase is the character's movement state.
type MovePhase int

const (
	Idle MovePhase = iota
	Moving
)

func (p MovePhase) String() string {
	if p == Moving {
		return "moving"
	}
	return "idle"
}

type movement struct {
	from, to geom.Point
	progress *tween.Tween
}

// Character is the avatar on the map. Its position only changes through
// MoveTo and Advance.
type Character struct {
	pos        geom.Point
	phase      MovePhase
	move       *movement
	rotation   *tween.Tween
	generation uint64
}

// NewCharacter places a character at p.
func NewCharacter(p geom.Point) *Character {
	return &Character{
		pos:      p,
		rotation: tween.New(0, 0, 0, tween.Power2Out),
	}
}

// Position returns the current map-space position.
func (c *Character) Position() geom.Point {
	return c.pos
}

// Phase returns Idle or Moving.
func (c *Character) Phase() MovePhase {
	return c.phase
}

// IsMoving reports whether a move is in flight.
func (c *Character) IsMoving() bool {
	return c.phase == Moving
}

// Rotation returns the facing angle in degrees.
func (c *Character) Rotation() float64 {
	return c.rotation.Value()
}

// Generation increases with every MoveTo. Work scheduled against an older
// generation is stale.
func (c *Character) Generation() uint64 {
	return c.generation
}

// Target returns where the current move ends, or the position when idle.
func (c *Character) Target() geom.Point {
	if c.move == nil {
		return c.pos
	}
	return c.move.to
}

// MoveTo starts a move toward target, clamped to the map bounds. Any move
// already in flight is dropped and will never report arrival.
func (c *Character) MoveTo(target geom.Point, size geom.Size) geom.Point {
	target = geom.ClampToBounds(target, size)
	distance := geom.Distance(c.pos, target)
	duration := time.Duration(distance / CharacterSpeed * float64(time.Second))

	c.generation++
	c.phase = Moving
	c.move = &movement{
		from:     c.pos,
		to:       target,
		progress: tween.New(0, 1, duration, tween.Power1InOut),
	}

	if distance > 0 {
		c.rotation.Retarget(geom.AngleDegrees(c.pos, target), RotationDuration)
	}
	return target
}

// Advance moves the character forward by dt. moved is true if the position
// changed this frame, arrived is true exactly once per completed move.
func (c *Character) Advance(dt time.Duration) (moved, arrived bool) {
	c.rotation.Advance(dt)

	if c.move == nil {
		return false, false
	}

	t, done := c.move.progress.Advance(dt)
	next := geom.Lerp(c.move.from, c.move.to, t)
	if done {
		next = c.move.to
	}
	moved = next != c.pos
	c.pos = next

	if done {
		c.move = nil
		c.phase = Idle
		return moved, true
	}
	return moved, false
}
