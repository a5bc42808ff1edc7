package entity

import "chosenoffset.com/outbreak/internal/core/geom"

// ShockwaveParams holds the tuning for newly emitted shockwaves.
type ShockwaveParams struct {
	StartRadius float64
	MaxRadius   float64
	GrowthRate  float64 // units per second
	Damage      float64
	Knockback   float64
}

// Shockwave is a growing circular area effect centred where it was emitted.
type Shockwave struct {
	Center     geom.Vec
	Radius     float64
	MaxRadius  float64
	GrowthRate float64
	Damage     float64
	Knockback  float64
}

// NewShockwave creates a shockwave at center using p.
func NewShockwave(center geom.Vec, p ShockwaveParams) *Shockwave {
	return &Shockwave{
		Center:     center,
		Radius:     p.StartRadius,
		MaxRadius:  p.MaxRadius,
		GrowthRate: p.GrowthRate,
		Damage:     p.Damage,
		Knockback:  p.Knockback,
	}
}

// Grow advances the radius by dt and reports whether the shockwave has
// reached its maximum radius and should be removed.
func (s *Shockwave) Grow(dt float64) bool {
	s.Radius += s.GrowthRate * dt
	return s.Expired()
}

// Expired reports whether the radius has reached the maximum.
func (s *Shockwave) Expired() bool {
	return s.Radius >= s.MaxRadius
}

// Covers reports whether p lies within the current radius, and returns the
// distance from the centre.
func (s *Shockwave) Covers(p geom.Vec) (bool, float64) {
	d := geom.Distance(s.Center, p)
	return d <= s.Radius, d
}

// Impulse returns the knockback applied to a target at p for a tick of dt:
// knockback*dt directed away from the centre, or zero at the centre.
func (s *Shockwave) Impulse(p geom.Vec, dt float64) geom.Vec {
	dir, dist := geom.Direction(s.Center, p)
	if dist == 0 {
		return geom.Vec{}
	}
	return dir.Mul(s.Knockback * dt)
}
