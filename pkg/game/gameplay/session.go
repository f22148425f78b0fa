// Package gameplay runs the map page: character movement, camera follow and zone interactions.
package gameplay

import (
	"log"
	"math/rand/v2"
	"time"

	"riftrewind/pkg/engine/geom"
	"riftrewind/pkg/engine/tween"
	"riftrewind/pkg/game/state"
	"riftrewind/pkg/game/story"
	"riftrewind/pkg/game/zones"
)

// Zone interaction and trail timings
const (
	ActivationDelay = 300 * time.Millisecond
	IdleTick        = 100 * time.Millisecond

	TrailCount    = 5
	TrailInterval = 100 * time.Millisecond
	TrailFade     = 500 * time.Millisecond

	KeyStep     = 100.0
	maxMessages = 5
)

// TrailMarker is a cosmetic particle left behind when the character starts
// moving.
type TrailMarker struct {
	Pos  geom.Point
	fade *tween.Tween
}

// Opacity fades from 1 to 0.
func (m *TrailMarker) Opacity() float64 { return m.fade.Value() }

// Scale shrinks from 1 to 0 alongside the opacity.
func (m *TrailMarker) Scale() float64 { return m.fade.Value() }

// Session is the state of one map page visit. Everything here is owned by
// the goroutine calling Update.
type Session struct {
	Data      *state.PlayerData
	MapSize   geom.Size
	Character *Character
	Camera    *Camera
	Zones     *zones.Registry
	Modal     *story.Modal
	Trail     []*TrailMarker
	Messages  []string

	// OnArrival is called once per completed move.
	OnArrival  func(p geom.Point)
	// OnActivate is called whenever a zone's story is opened.
	OnActivate func(c story.Content)

	viewport geom.Point
	timers   *timerQueue
	tickAcc  time.Duration
	rng      *rand.Rand
}

// NewSession builds the map page state once the map size is known. The
// character and the camera start at the map centre.
func NewSession(data *state.PlayerData, layout *zones.Layout, mapSize geom.Size) *Session {
	center := mapSize.Center()
	return &Session{
		Data:      data,
		MapSize:   mapSize,
		Character: NewCharacter(center),
		Camera:    NewCamera(center, InitialZoom),
		Zones:     zones.NewRegistry(layout, mapSize),
		Modal:     story.NewModal(),
		timers:    newTimerQueue(),
		rng:       rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0x5eed)),
		viewport:  center,
	}
}

// SetRand replaces the source used for random movement.
func (s *Session) SetRand(r *rand.Rand) {
	s.rng = r
}

// SetViewport records the size of the drawing area.
func (s *Session) SetViewport(width, height float64) {
	s.viewport = geom.Pt(width/2, height/2)
}

// Transform is the map transform for the current frame.
func (s *Session) Transform() geom.Transform {
	return geom.ComputeTransform(s.Camera.View(), s.viewport)
}

// ScreenToMap converts a screen position using the transform being drawn.
func (s *Session) ScreenToMap(p geom.Point) geom.Point {
	t := s.Transform()
	return geom.ScreenToMapSpace(p, t.Origin(), t.Scale)
}

// AddMessage adds a message to the session's message log
func (s *Session) AddMessage(msg string) {
	s.Messages = append(s.Messages, msg)
	if len(s.Messages) > maxMessages {
		s.Messages = s.Messages[len(s.Messages)-maxMessages:]
	}
}

// MoveTo sends the character toward p. Any pending zone activation from an
// earlier arrival is dropped.
func (s *Session) MoveTo(p geom.Point) {
	start := s.Character.Position()
	s.Character.MoveTo(p, s.MapSize)

	for i := 0; i < TrailCount; i++ {
		s.timers.After(time.Duration(i)*TrailInterval, func() {
			s.Trail = append(s.Trail, &TrailMarker{
				Pos:  start,
				fade: tween.New(1, 0, TrailFade, tween.Power2Out),
			})
		})
	}
}

// ActivateZone opens the story modal for id.
func (s *Session) ActivateZone(id string) {
	var entries state.ZoneMap
	if s.Data != nil {
		entries = s.Data.Zones
	}
	content := story.ActivateZone(entries, id)
	log.Printf("Zone activated: %s", id)
	s.Modal.Show(content)
	if s.OnActivate != nil {
		s.OnActivate(content)
	}
}

func (s *Session) arrive() {
	pos := s.Character.Position()
	if s.OnArrival != nil {
		s.OnArrival(pos)
	}

	s.Zones.Scan(pos)
	z, ok := s.Zones.FirstNearby()
	if !ok {
		return
	}
	s.Zones.Pulse(z.ID)

	gen := s.Character.Generation()
	id := z.ID
	s.timers.After(ActivationDelay, func() {
		if s.Character.Generation() != gen {
			return
		}
		s.ActivateZone(id)
	})
}

// PendingTimers returns how many scheduled callbacks have not run yet.
func (s *Session) PendingTimers() int {
	return s.timers.Len()
}
