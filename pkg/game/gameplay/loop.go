// Package gameplay runs the map page: character movement, camera follow and zone interactions.
package gameplay

import "time"

// Update advances the whole page by dt: movement, camera follow, the idle
// proximity tick, scheduled work and every animation.
func (s *Session) Update(dt time.Duration) {
	// The clock moves first so work scheduled this frame counts from now.
	s.timers.Advance(dt)

	moved, arrived := s.Character.Advance(dt)
	if moved {
		pos := s.Character.Position()
		s.Camera.Follow(pos)
		s.Zones.Scan(pos)
	}
	if arrived {
		s.arrive()
	}
	s.Camera.Update(dt)

	s.tickAcc += dt
	for s.tickAcc >= IdleTick {
		s.tickAcc -= IdleTick
		if !s.Character.IsMoving() {
			s.Zones.Scan(s.Character.Position())
		}
	}

	s.Zones.Update(dt)
	s.Modal.Update(dt)
	s.updateTrail(dt)
}

func (s *Session) updateTrail(dt time.Duration) {
	kept := s.Trail[:0]
	for _, m := range s.Trail {
		if _, done := m.fade.Advance(dt); !done {
			kept = append(kept, m)
		}
	}
	for i := len(kept); i < len(s.Trail); i++ {
		s.Trail[i] = nil
	}
	s.Trail = kept
}
