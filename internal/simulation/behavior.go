package simulation

import (
	"math"

	"chosenoffset.com/outbreak/internal/core/geom"
	"chosenoffset.com/outbreak/internal/entity"
)

// Behavior drives one kind of non-player entity for a tick. Cooldowns and
// knockback have already been advanced when Update is called, and the
// entity is alive.
type Behavior interface {
	Update(w *World, e *entity.Entity, dt float64)
}

// BehaviorFunc adapts a plain function to Behavior.
type BehaviorFunc func(w *World, e *entity.Entity, dt float64)

// Update calls f.
func (f BehaviorFunc) Update(w *World, e *entity.Entity, dt float64) { f(w, e, dt) }

func defaultBehaviors() map[entity.Kind]Behavior {
	return map[entity.Kind]Behavior{
		entity.KindZombie: BehaviorFunc(zombieUpdate),
		entity.KindNPC:    BehaviorFunc(npcUpdate),
	}
}

func zombieUpdate(w *World, e *entity.Entity, dt float64) {
	w.chase(e, dt, e.Stats.DetectionRadius)
}

func npcUpdate(w *World, e *entity.Entity, dt float64) {
	player := w.Player()
	dist := e.DistanceTo(player)

	if e.Reveal == entity.Hidden && dist <= e.Stats.DetectionRadius {
		w.reveal(e)
	}

	switch e.Reveal {
	case entity.RevealedHostile:
		w.chase(e, dt, math.Inf(1))
	case entity.RevealedFriendly:
		if !e.FollowingPlayer {
			return
		}
		if dist > e.Stats.FollowDistance {
			dir, _ := geom.Direction(e.Pos, player.Pos)
			AttemptMove(e, dir.Mul(e.Speed*dt), w.buildings)
		}
		w.assist(e, dt)
	}
}

// chase moves e straight at the player when within detection and strikes when the hit condition of the melee mode holds.
func (w *World) chase(e *entity.Entity, dt, detection float64) {
	player := w.Player()
	dir, dist := geom.Direction(e.Pos, player.Pos)
	if dist == 0 || dist > detection {
		return
	}

	delta := dir.Mul(e.Speed * dt)
	blocked := AttemptMove(e, delta, w.buildings)

	hit := blocked
	if w.cfg.Combat.MeleeMode == MeleeContact {
		hit = geom.Distance(e.Pos, player.Pos) <= e.Radius+player.Radius
	}
	if hit && e.CanAttack() {
		w.damage(player, e.Stats.Damage, delta.Mul(2))
		e.ResetAttack()
	}
}

// assist lets a friendly NPC strike the first live hostile in arena order
// within its attack range.
func (w *World) assist(e *entity.Entity, dt float64) {
	if !e.CanAttack() {
		return
	}
	for _, t := range w.entities {
		if t == nil || t == e || t.Dead || !t.Hostile {
			continue
		}
		dir, dist := geom.Direction(e.Pos, t.Pos)
		if dist > e.Stats.AttackRange {
			continue
		}
		w.damage(t, w.cfg.NPC.FriendlyDamage, dir.Mul(w.cfg.Combat.KnockbackForce*dt))
		e.ResetAttack()
		return
	}
}
