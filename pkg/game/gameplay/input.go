// Package gameplay runs the map page: character movement, camera follow and zone interactions.
package gameplay

import (
	"riftrewind/pkg/engine/geom"
	engineinput "riftrewind/pkg/engine/input"
)

// ProcessIntent handles a high-level input intent from the tiered input
// system. It returns false when the intent was ignored.
func ProcessIntent(s *Session, intent engineinput.Intent) bool {
	switch intent.Action {
	case engineinput.ActionNone:
		return false

	case engineinput.ActionCloseModal:
		s.Modal.Close()
		return true

	case engineinput.ActionMoveTo:
		if s.Modal.Visible() {
			return false
		}
		target := s.ScreenToMap(geom.Pt(intent.X, intent.Y))
		// Clicks on a zone belong to the zone, not the map.
		if _, onZone := s.Zones.ZoneAt(target); onZone {
			return false
		}
		s.MoveTo(target)
		return true

	case engineinput.ActionZoom:
		if s.Modal.Visible() {
			// The wheel scrolls the story instead. Wheel up reads earlier lines.
			switch {
			case intent.Delta > 0:
				return s.Modal.ScrollBy(-1)
			case intent.Delta < 0:
				return s.Modal.ScrollBy(1)
			}
			return false
		}
		s.Camera.ZoomBy(intent.Delta)
		return true

	case engineinput.ActionMoveRandom:
		s.MoveTo(geom.Pt(s.rng.Float64()*s.MapSize.Width, s.rng.Float64()*s.MapSize.Height))
		return true

	case engineinput.ActionMoveNorth:
		if s.Modal.Visible() {
			return s.Modal.ScrollBy(-1)
		}
		s.MoveTo(s.Character.Position().Add(0, -KeyStep))
		return true

	case engineinput.ActionMoveSouth:
		if s.Modal.Visible() {
			return s.Modal.ScrollBy(1)
		}
		s.MoveTo(s.Character.Position().Add(0, KeyStep))
		return true

	case engineinput.ActionMoveWest:
		s.MoveTo(s.Character.Position().Add(-KeyStep, 0))
		return true

	case engineinput.ActionMoveEast:
		s.MoveTo(s.Character.Position().Add(KeyStep, 0))
		return true
	}
	return false
}
