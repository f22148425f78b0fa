// Package zones tracks where the narrative zones sit on the map and which of
// them the character is close to.
package zones

import (
	"time"

	"github.com/zyedidia/generic/mapset"

	"riftrewind/pkg/engine/geom"
	"riftrewind/pkg/engine/tween"
)

// ProximityThreshold is the distance (map pixels) under which a zone counts
// as nearby.
const ProximityThreshold = 150.0

// Highlight animation
const (
	HighlightDuration = 300 * time.Millisecond

	DefaultBorder = 2.0
	NearbyBorder  = 4.0
	DefaultFill   = 0.1
	NearbyFill    = 0.4
	DefaultScale  = 1.0
	NearbyScale   = 1.05

	PulsePeak     = 1.2
	PulseDuration = 200 * time.Millisecond
)

// IsNearby reports whether a zone centred at center is close enough to p.
func IsNearby(center, p geom.Point) bool {
	return geom.Distance(center, p) < ProximityThreshold
}

// Zone is one entry of the registry. Bounds are map-space pixels.
type Zone struct {
	ID     string
	Label  string
	Bounds geom.Rect
	Nearby bool

	border *tween.Tween
	fill   *tween.Tween
	scale  *tween.Tween
	pulse  *tween.Sequence
}

func newZone(p Placement, size geom.Size) *Zone {
	return &Zone{
		ID:     p.ID,
		Label:  p.Label,
		Bounds: p.Resolve(size),
		border: tween.New(DefaultBorder, DefaultBorder, 0, tween.Power2Out),
		fill:   tween.New(DefaultFill, DefaultFill, 0, tween.Power2Out),
		scale:  tween.New(DefaultScale, DefaultScale, 0, tween.Power2Out),
	}
}

// Center is the zone centre in map space.
func (z *Zone) Center() geom.Point {
	return z.Bounds.Center()
}

// Border returns the current border width.
func (z *Zone) Border() float64 { return z.border.Value() }

// FillAlpha returns the current fill opacity.
func (z *Zone) FillAlpha() float64 { return z.fill.Value() }

// Scale returns the current draw scale, including any running pulse.
func (z *Zone) Scale() float64 {
	if z.pulse != nil {
		return z.pulse.Value()
	}
	return z.scale.Value()
}

// DrawBounds is Bounds scaled around the centre by the current scale.
func (z *Zone) DrawBounds() geom.Rect {
	return z.Bounds.ScaledAroundCenter(z.Scale())
}

func (z *Zone) setNearby(nearby bool) {
	z.Nearby = nearby
	border, fill, scale := DefaultBorder, DefaultFill, DefaultScale
	if nearby {
		border, fill, scale = NearbyBorder, NearbyFill, NearbyScale
	}
	z.border.Retarget(border, HighlightDuration)
	z.fill.Retarget(fill, HighlightDuration)
	z.scale.Retarget(scale, HighlightDuration)
}

func (z *Zone) startPulse() {
	z.pulse = tween.NewSequence(z.Scale(),
		tween.Step{To: PulsePeak, Duration: PulseDuration, Ease: tween.Power2Out},
		tween.Step{To: NearbyScale, Duration: PulseDuration, Ease: tween.Power2In},
	)
}

func (z *Zone) advance(dt time.Duration) {
	z.border.Advance(dt)
	z.fill.Advance(dt)
	z.scale.Advance(dt)
	if z.pulse != nil {
		if _, done := z.pulse.Advance(dt); done {
			// Hand the scale back to the highlight tween from where the
			// pulse left it.
			target := z.scale.Target()
			z.scale = tween.New(z.pulse.Value(), target, HighlightDuration, tween.Power2Out)
			z.pulse = nil
		}
	}
}

// Registry holds the zones in layout order.
type Registry struct {
	zones  []*Zone
	byID   map[string]*Zone
	nearby mapset.Set[string]
}

// NewRegistry resolves layout against a map of the given size.
func NewRegistry(layout *Layout, size geom.Size) *Registry {
	r := &Registry{
		byID:   make(map[string]*Zone, len(layout.Zones)),
		nearby: mapset.New[string](),
	}
	for _, p := range layout.Zones {
		z := newZone(p, size)
		r.zones = append(r.zones, z)
		r.byID[z.ID] = z
	}
	return r
}

// Zones returns the zones in layout order.
func (r *Registry) Zones() []*Zone {
	return r.zones
}

// Get returns the zone with the given id.
func (r *Registry) Get(id string) (*Zone, bool) {
	z, ok := r.byID[id]
	return z, ok
}

// Scan recomputes which zones are nearby p, starting highlight transitions
// for the ones that changed. It returns true if anything changed.
func (r *Registry) Scan(p geom.Point) bool {
	changed := false
	for _, z := range r.zones {
		near := IsNearby(z.Center(), p)
		if near == z.Nearby {
			continue
		}
		changed = true
		z.setNearby(near)
		if near {
			r.nearby.Put(z.ID)
		} else {
			r.nearby.Remove(z.ID)
		}
	}
	return changed
}

// NearbyCount returns how many zones are currently nearby.
func (r *Registry) NearbyCount() int {
	return r.nearby.Size()
}

// FirstNearby returns the first nearby zone in layout order.
func (r *Registry) FirstNearby() (*Zone, bool) {
	if r.nearby.Size() == 0 {
		return nil, false
	}
	for _, z := range r.zones {
		if r.nearby.Has(z.ID) {
			return z, true
		}
	}
	return nil, false
}

// Pulse plays the activation flash on a zone.
func (r *Registry) Pulse(id string) {
	if z, ok := r.byID[id]; ok {
		z.startPulse()
	}
}

// ZoneAt returns the topmost zone whose drawn rectangle contains p.
func (r *Registry) ZoneAt(p geom.Point) (*Zone, bool) {
	for i := len(r.zones) - 1; i >= 0; i-- {
		if r.zones[i].DrawBounds().Contains(p) {
			return r.zones[i], true
		}
	}
	return nil, false
}

// Update advances all zone animations.
func (r *Registry) Update(dt time.Duration) {
	for _, z := range r.zones {
		z.advance(dt)
	}
}
