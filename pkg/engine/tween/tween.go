// Package tween interpolates scalar values over time. Tweens are advanced
// explicitly by the caller's frame delta so they stay deterministic in tests.
package tween

import "time"

// Tween animates a single float from one value to another.
type Tween struct {
	from, to float64
	duration time.Duration
	elapsed  time.Duration
	ease     Ease
}

// New creates a tween. A zero or negative duration completes on the first
// Advance.
func New(from, to float64, duration time.Duration, ease Ease) *Tween {
	if ease == nil {
		ease = Linear
	}
	return &Tween{from: from, to: to, duration: duration, ease: ease}
}

// Advance moves the tween forward by dt and returns the new value and whether
// it has reached its target.
func (t *Tween) Advance(dt time.Duration) (float64, bool) {
	t.elapsed += dt
	if t.elapsed > t.duration {
		t.elapsed = t.duration
	}
	return t.Value(), t.Done()
}

// Value returns the current interpolated value.
func (t *Tween) Value() float64 {
	if t.Done() {
		return t.to
	}
	if t.elapsed <= 0 {
		return t.from
	}
	return t.from + (t.to-t.from)*t.ease(t.Progress())
}

// Progress returns the raw (un-eased) progress in [0,1].
func (t *Tween) Progress() float64 {
	if t.duration <= 0 {
		return 1
	}
	return clamp01(float64(t.elapsed) / float64(t.duration))
}

// Done reports whether the tween has reached its target.
func (t *Tween) Done() bool {
	return t.duration <= 0 || t.elapsed >= t.duration
}

// Target returns the value the tween is heading to.
func (t *Tween) Target() float64 {
	return t.to
}

// Retarget restarts the tween from its current value toward a new target.
func (t *Tween) Retarget(to float64, duration time.Duration) {
	t.from = t.Value()
	t.to = to
	t.duration = duration
	t.elapsed = 0
}

// Step is one leg of a Sequence.
type Step struct {
	To       float64
	Duration time.Duration
	Ease     Ease
}

// Sequence chains steps, each starting where the previous one ended.
type Sequence struct {
	steps   []Step
	current *Tween
	index   int
	value   float64
}

// NewSequence creates a sequence starting at from.
func NewSequence(from float64, steps ...Step) *Sequence {
	s := &Sequence{steps: steps, value: from}
	if len(steps) > 0 {
		s.current = New(from, steps[0].To, steps[0].Duration, steps[0].Ease)
	}
	return s
}

// Advance moves the sequence forward by dt, carrying leftover time into the
// next step.
func (s *Sequence) Advance(dt time.Duration) (float64, bool) {
	for s.current != nil {
		remaining := s.current.duration - s.current.elapsed
		if dt < remaining {
			s.value, _ = s.current.Advance(dt)
			return s.value, false
		}
		s.current.Advance(remaining)
		s.value = s.current.Value()
		dt -= remaining
		s.index++
		if s.index >= len(s.steps) {
			s.current = nil
			break
		}
		next := s.steps[s.index]
		s.current = New(s.value, next.To, next.Duration, next.Ease)
	}
	return s.value, true
}

// Value returns the current value.
func (s *Sequence) Value() float64 {
	return s.value
}

// Done reports whether every step has completed.
func (s *Sequence) Done() bool {
	return s.current == nil
}
