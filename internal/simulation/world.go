package simulation

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"chosenoffset.com/outbreak/internal/core/gamestate"
	"chosenoffset.com/outbreak/internal/core/geom"
	"chosenoffset.com/outbreak/internal/entity"
)

// Intent is the player's input for one tick, already reduced to axis
// directions in {-1, 0, 1} and held action keys.
type Intent struct {
	MoveX, MoveY int
	Shockwave    bool
	Attack       bool
}

// World is the arena of one play session. It owns every entity, building
// and shockwave, and advances them in a fixed order on each Tick. A World
// is not reused across sessions.
type World struct {
	ID  uuid.UUID
	cfg *Config
	rng *rand.Rand

	// Entities are stored by index; an entity's ID is its index plus one.
	entities   []*entity.Entity
	buildings  []*entity.Building
	shockwaves []*entity.Shockwave
	behaviors  map[entity.Kind]Behavior

	player    entity.ID
	followers []entity.ID
	camera    Camera
	over      bool
	ticks     uint64
	stats     *gamestate.GameState

	// Callbacks
	OnMessage     func(msg string)
	OnDamage      func(target *entity.Entity, amount float64)
	OnEntityDeath func(e *entity.Entity)
	OnReveal      func(e *entity.Entity)
	OnShockwave   func(s *entity.Shockwave)
	OnPlayerDeath func()
}

// NewWorld creates a fully populated session: buildings placed around the
// arena, the player at the centre, and zombies and NPCs spawned on a ring
// around the player. A nil rng is seeded from cfg.Seed, or the clock when
// the seed is zero.
func NewWorld(cfg *Config, rng *rand.Rand) *World {
	w := NewEmptyWorld(cfg, rng)

	placed := w.placeBuildings()
	if placed < cfg.Building.Count {
		log.Printf("Session %s: placed %d of %d buildings", w.ID, placed, cfg.Building.Count)
	}

	w.spawnActors()

	log.Printf("Session %s started: %d buildings, %d zombies, %d NPCs",
		w.ID, len(w.buildings), cfg.Spawn.Zombies, cfg.Spawn.NPCs)
	return w
}

// NewEmptyWorld creates a session with only the player at the arena centre.
func NewEmptyWorld(cfg *Config, rng *rand.Rand) *World {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if rng == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		rng = rand.New(rand.NewSource(seed))
	}

	w := &World{
		ID:        uuid.New(),
		cfg:       cfg,
		rng:       rng,
		behaviors: defaultBehaviors(),
		camera:    NewCamera(cfg.Arena.Width, cfg.Arena.Height),
		stats:     gamestate.New(),
	}

	center := geom.V(cfg.Arena.Width/2, cfg.Arena.Height/2)
	p := w.add(func(id entity.ID) *entity.Entity {
		return entity.NewPlayer(id, center, cfg.PlayerStats())
	})
	w.player = p.ID
	w.camera.Follow(p.Pos)
	return w
}

// add appends the entity built by create and returns it.
func (w *World) add(create func(id entity.ID) *entity.Entity) *entity.Entity {
	e := create(entity.ID(len(w.entities) + 1))
	w.entities = append(w.entities, e)
	return e
}

// SpawnZombie adds a zombie at pos.
func (w *World) SpawnZombie(pos geom.Vec) *entity.Entity {
	return w.add(func(id entity.ID) *entity.Entity {
		return entity.NewZombie(id, pos, w.cfg.ZombieStats())
	})
}

// SpawnNPC adds a disguised NPC at pos with the given hidden nature.
func (w *World) SpawnNPC(pos geom.Vec, hostileNature bool) *entity.Entity {
	return w.add(func(id entity.ID) *entity.Entity {
		return entity.NewNPC(id, pos, w.cfg.NPCStats(), hostileNature)
	})
}

// AddBuilding adds a building to the arena.
func (w *World) AddBuilding(b *entity.Building) {
	w.buildings = append(w.buildings, b)
}

// SetBehavior replaces the behavior that drives entities of kind.
func (w *World) SetBehavior(kind entity.Kind, b Behavior) {
	w.behaviors[kind] = b
}

// Config returns the tuning the world was created with.
func (w *World) Config() *Config { return w.cfg }

// Player returns the player entity.
func (w *World) Player() *entity.Entity { return w.Entity(w.player) }

// Entity looks up an entity by ID, or nil if there is none.
func (w *World) Entity(id entity.ID) *entity.Entity {
	i := int(id) - 1
	if i < 0 || i >= len(w.entities) {
		return nil
	}
	return w.entities[i]
}

// Entities returns every entity in arena order, dead ones included.
func (w *World) Entities() []*entity.Entity { return w.entities }

// Buildings returns the placed buildings.
func (w *World) Buildings() []*entity.Building { return w.buildings }

// Shockwaves returns the active shockwaves.
func (w *World) Shockwaves() []*entity.Shockwave { return w.shockwaves }

// Followers returns the IDs of NPCs following the player, in reveal order.
func (w *World) Followers() []entity.ID { return w.followers }

// FollowerCount returns how many followers are still alive.
func (w *World) FollowerCount() int {
	n := 0
	for _, id := range w.followers {
		if e := w.Entity(id); e != nil && e.Alive() {
			n++
		}
	}
	return n
}

// Camera returns the camera centred on the player.
func (w *World) Camera() Camera { return w.camera }

// Over reports whether the player has died.
func (w *World) Over() bool { return w.over }

// Ticks returns the number of ticks run so far.
func (w *World) Ticks() uint64 { return w.ticks }

// Stats returns the session counters.
func (w *World) Stats() *gamestate.GameState { return w.stats }

// Tick advances the session by dt seconds: the player first, then every
// shockwave, then every other entity in arena order.
func (w *World) Tick(dt float64, in Intent) {
	if w.over {
		return
	}
	w.ticks++
	w.stats.IncrementCounter(gamestate.Ticks, 1)
	w.stats.AddElapsed(dt)

	player := w.Player()
	w.updatePlayer(player, dt, in)

	w.updateShockwaves(dt)

	for i := 0; i < len(w.entities); i++ {
		e := w.entities[i]
		if e == nil || e.ID == w.player || e.Dead {
			continue
		}
		b := w.behaviors[e.Kind]
		if b == nil {
			continue
		}
		e.TickCooldowns(dt)
		applyKnockback(e, w.cfg.Knockback, dt, w.buildings)
		b.Update(w, e, dt)
	}

	w.camera.Follow(player.Pos)

	if player.Health <= 0 {
		w.over = true
		w.stats.SetFlag(gamestate.PlayerDied, true)
		w.message(fmt.Sprintf("You died after %.1fs", w.stats.GetElapsed()))
		log.Printf("Session %s: player died at tick %d", w.ID, w.ticks)
		if w.OnPlayerDeath != nil {
			w.OnPlayerDeath()
		}
	}
}

func (w *World) updatePlayer(p *entity.Entity, dt float64, in Intent) {
	if p.Dead {
		return
	}
	p.TickCooldowns(dt)
	applyKnockback(p, w.cfg.Knockback, dt, w.buildings)

	step := p.Speed * dt
	delta := geom.V(float64(axis(in.MoveX))*step, float64(axis(in.MoveY))*step)
	AttemptMove(p, delta, w.buildings)

	if in.Shockwave && p.ShockwaveCooldown <= 0 {
		p.ShockwaveCooldown = w.cfg.Shockwave.Cooldown
		s := entity.NewShockwave(p.Pos, w.cfg.ShockwaveParams())
		w.shockwaves = append(w.shockwaves, s)
		w.stats.IncrementCounter(gamestate.ShockwavesEmitted, 1)
		if w.OnShockwave != nil {
			w.OnShockwave(s)
		}
	}

	if in.Attack && p.CanAttack() {
		w.melee(p, dt)
	}
}

// melee strikes every live hostile within reach of the player.
func (w *World) melee(p *entity.Entity, dt float64) {
	p.ResetAttack()
	w.stats.IncrementCounter(gamestate.MeleeSwings, 1)

	for _, t := range w.entities {
		if t == nil || t == p || t.Dead || !t.Hostile {
			continue
		}
		dir, dist := geom.Direction(p.Pos, t.Pos)
		if dist > p.Radius+t.Radius+w.cfg.Player.AttackReach {
			continue
		}
		w.damage(t, p.Stats.Damage, dir.Mul(w.cfg.Combat.KnockbackForce*dt))
	}
}

// updateShockwaves grows each shockwave and hit-tests the ones still
// active. Expired shockwaves are removed after the pass.
func (w *World) updateShockwaves(dt float64) {
	var expired []int
	for i, s := range w.shockwaves {
		if s.Grow(dt) {
			expired = append(expired, i)
			continue
		}
		for _, e := range w.entities {
			if e == nil || e.Dead || !e.Hostile {
				continue
			}
			if in, _ := s.Covers(e.Pos); in {
				w.damage(e, s.Damage, s.Impulse(e.Pos, dt))
			}
		}
	}
	w.removeShockwaves(expired)
}

func (w *World) removeShockwaves(indices []int) {
	if len(indices) == 0 {
		return
	}
	kept := w.shockwaves[:0]
	next := 0
	for i, s := range w.shockwaves {
		if next < len(indices) && indices[next] == i {
			next++
			continue
		}
		kept = append(kept, s)
	}
	for i := len(kept); i < len(w.shockwaves); i++ {
		w.shockwaves[i] = nil
	}
	w.shockwaves = kept
}

// damage applies amount and knockback to target and records the outcome.
func (w *World) damage(target *entity.Entity, amount float64, knockback geom.Vec) {
	if target.Dead {
		return
	}
	died := target.ApplyDamage(amount, knockback)

	if target.ID == w.player {
		w.stats.IncrementCounter(gamestate.DamageTaken, int(amount))
	} else {
		w.stats.IncrementCounter(gamestate.DamageDealt, int(amount))
	}
	if w.OnDamage != nil {
		w.OnDamage(target, amount)
	}
	if !died {
		return
	}

	switch target.Kind {
	case entity.KindZombie:
		w.stats.IncrementCounter(gamestate.ZombiesKilled, 1)
	case entity.KindNPC:
		w.stats.IncrementCounter(gamestate.NPCsKilled, 1)
	}
	if target.ID != w.player {
		w.message(fmt.Sprintf("%s %d died", target.Kind, target.ID))
	}
	if w.OnEntityDeath != nil {
		w.OnEntityDeath(target)
	}
}

// reveal performs the one-time reveal of an NPC and registers friendly
// ones as followers.
func (w *World) reveal(e *entity.Entity) {
	if !e.RevealTo() {
		return
	}
	w.stats.IncrementCounter(gamestate.NPCsRevealed, 1)

	if e.FollowingPlayer && !w.isFollower(e.ID) {
		w.followers = append(w.followers, e.ID)
		w.stats.IncrementCounter(gamestate.FollowersGained, 1)
		w.message("A survivor joins you")
	} else if e.Hostile {
		w.message("A survivor turns on you!")
	}
	if w.OnReveal != nil {
		w.OnReveal(e)
	}
}

func (w *World) isFollower(id entity.ID) bool {
	for _, f := range w.followers {
		if f == id {
			return true
		}
	}
	return false
}

func (w *World) message(msg string) {
	if w.OnMessage != nil {
		w.OnMessage(msg)
	}
}

// axis clamps an input direction to -1, 0 or 1.
func axis(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}
