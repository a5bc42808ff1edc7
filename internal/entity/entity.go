// Package entity provides the actors of a play session: the player, zombies
// and disguised NPCs share one Entity representation tagged by Kind, while
// buildings and shockwaves are separate non-actor types.
package entity

import (
	"chosenoffset.com/outbreak/internal/core/geom"
)

// ID identifies an entity inside a session's arena. Zero is never assigned.
type ID uint32

// Kind identifies which behavior drives an entity.
type Kind int

const (
	KindPlayer Kind = iota
	KindZombie
	KindNPC
)

// String returns the lower-case kind name.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindZombie:
		return "zombie"
	case KindNPC:
		return "npc"
	default:
		return "unknown"
	}
}

// Reveal is the disguise state of an NPC.
type Reveal int

const (
	Hidden Reveal = iota
	RevealedHostile
	RevealedFriendly
)

// Stats are the per-kind tuning values copied into an entity at creation.
type Stats struct {
	Speed           float64
	Radius          float64
	MaxHealth       float64
	Damage          float64
	AttackInterval  float64 // seconds between attacks
	DetectionRadius float64
	AttackRange     float64 // friendly NPC assist range
	FollowDistance  float64
}

// Entity is any simulated actor with a position and health.
type Entity struct {
	ID   ID
	Kind Kind

	Pos    geom.Vec // logical centre
	Radius float64
	Speed  float64

	Health    float64
	MaxHealth float64
	Hostile   bool
	Dead      bool

	AttackCooldown    float64
	ShockwaveCooldown float64 // player only

	// Knockback is the accumulated external displacement impulse.
	Knockback geom.Vec

	// NPC disguise state. Nature is rolled at spawn and only becomes
	// visible through Hostile once the NPC is revealed.
	Reveal          Reveal
	Nature          bool
	FollowingPlayer bool

	Stats Stats
}

// New creates a live entity of the given kind at pos with full health.
func New(id ID, kind Kind, pos geom.Vec, stats Stats) *Entity {
	return &Entity{
		ID:        id,
		Kind:      kind,
		Pos:       pos,
		Radius:    stats.Radius,
		Speed:     stats.Speed,
		Health:    stats.MaxHealth,
		MaxHealth: stats.MaxHealth,
		Stats:     stats,
	}
}

// NewPlayer creates the player entity. The player is never hostile.
func NewPlayer(id ID, pos geom.Vec, stats Stats) *Entity {
	return New(id, KindPlayer, pos, stats)
}

// NewZombie creates a zombie. Zombies are always hostile.
func NewZombie(id ID, pos geom.Vec, stats Stats) *Entity {
	e := New(id, KindZombie, pos, stats)
	e.Hostile = true
	return e
}

// NewNPC creates a disguised NPC whose true nature is hostile when
// hostileNature is set. It stays non-hostile until revealed.
func NewNPC(id ID, pos geom.Vec, stats Stats, hostileNature bool) *Entity {
	e := New(id, KindNPC, pos, stats)
	e.Nature = hostileNature
	return e
}

// Alive reports whether the entity has not died.
func (e *Entity) Alive() bool {
	return !e.Dead
}

// Bounds returns the bounding box of the entity's circle.
func (e *Entity) Bounds() geom.Rect {
	return geom.RectAround(e.Pos, e.Radius*2, e.Radius*2)
}

// DistanceTo returns the centre-to-centre distance to other.
func (e *Entity) DistanceTo(other *Entity) float64 {
	return geom.Distance(e.Pos, other.Pos)
}

// HealthFraction returns health as a fraction of max health.
func (e *Entity) HealthFraction() float64 {
	if e.MaxHealth <= 0 {
		return 0
	}
	return e.Health / e.MaxHealth
}

// ApplyDamage reduces health by amount, floored at zero, and adds the
// knockback impulse. It is a no-op on a dead entity. It returns true only
// for the call that caused the death transition.
func (e *Entity) ApplyDamage(amount float64, knockback geom.Vec) bool {
	if e.Dead {
		return false
	}
	e.Health -= amount
	if e.Health < 0 {
		e.Health = 0
	}
	if e.Health > e.MaxHealth {
		e.Health = e.MaxHealth
	}
	e.Knockback = e.Knockback.Add(knockback)
	if e.Health <= 0 {
		e.Dead = true
		return true
	}
	return false
}

// TickCooldowns decrements the attack and shockwave cooldowns by dt,
// floored at zero.
func (e *Entity) TickCooldowns(dt float64) {
	e.AttackCooldown = floorZero(e.AttackCooldown - dt)
	e.ShockwaveCooldown = floorZero(e.ShockwaveCooldown - dt)
}

// CanAttack reports whether the attack cooldown has elapsed.
func (e *Entity) CanAttack() bool {
	return e.AttackCooldown <= 0
}

// ResetAttack restarts the attack cooldown from the entity's interval.
func (e *Entity) ResetAttack() {
	e.AttackCooldown = e.Stats.AttackInterval
}

// RevealTo performs the one-time NPC reveal. It returns false if the NPC
// was already revealed or the entity is not an NPC.
func (e *Entity) RevealTo() bool {
	if e.Kind != KindNPC || e.Reveal != Hidden {
		return false
	}
	if e.Nature {
		e.Reveal = RevealedHostile
		e.Hostile = true
	} else {
		e.Reveal = RevealedFriendly
		e.FollowingPlayer = true
	}
	return true
}

func floorZero(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
