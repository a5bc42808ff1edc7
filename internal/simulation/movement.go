package simulation

import (
	"chosenoffset.com/outbreak/internal/core/geom"
	"chosenoffset.com/outbreak/internal/entity"
)

// AttemptMove displaces e by delta unless any corner of its bounding box
// would land in the solid part of a building, in which case the position
// is left untouched. It reports whether the move was blocked. Dead entities
// never move and never report a collision.
func AttemptMove(e *entity.Entity, delta geom.Vec, buildings []*entity.Building) bool {
	if e == nil || e.Dead {
		return false
	}

	moved := e.Bounds().Translate(delta)
	for _, b := range buildings {
		if b == nil {
			continue
		}
		for _, c := range moved.Corners() {
			if b.CollidesWithPoint(c) {
				return true
			}
		}
	}

	e.Pos = e.Pos.Add(delta)
	return false
}

// applyKnockback consumes the accumulated knockback of e as a displacement,
// then decays what remains. A blocked knockback move clears it.
func applyKnockback(e *entity.Entity, cfg KnockbackConfig, dt float64, buildings []*entity.Building) {
	if !cfg.Apply || e.Dead || e.Knockback == (geom.Vec{}) {
		return
	}
	if AttemptMove(e, e.Knockback, buildings) {
		e.Knockback = geom.Vec{}
		return
	}

	factor := 1 - cfg.DecayPerSecond*dt
	if factor < 0 {
		factor = 0
	}
	e.Knockback = e.Knockback.Mul(factor)
	if e.Knockback.Len() < knockbackEpsilon {
		e.Knockback = geom.Vec{}
	}
}

const knockbackEpsilon = 0.01
