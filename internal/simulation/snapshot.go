package simulation

import (
	"github.com/google/uuid"

	"chosenoffset.com/outbreak/internal/core/geom"
	"chosenoffset.com/outbreak/internal/entity"
)

// EntityView is the read-only state of one entity for presentation.
type EntityView struct {
	ID        entity.ID
	Kind      entity.Kind
	Pos       geom.Vec
	Radius    float64
	Health    float64
	MaxHealth float64
	Hostile   bool
	Revealed  bool
	Following bool
	Dead      bool
}

// HealthFraction returns health as a fraction of max health.
func (v EntityView) HealthFraction() float64 {
	if v.MaxHealth <= 0 {
		return 0
	}
	return v.Health / v.MaxHealth
}

// BuildingView is a building and its door in arena coordinates.
type BuildingView struct {
	Rect geom.Rect
	Door geom.Rect
}

// ShockwaveView is an active shockwave.
type ShockwaveView struct {
	Center    geom.Vec
	Radius    float64
	MaxRadius float64
}

// Snapshot is a copy of everything a renderer or HUD needs from one tick.
// It shares no memory with the world.
type Snapshot struct {
	SessionID uuid.UUID
	Tick      uint64
	Width     float64
	Height    float64

	Entities   []EntityView
	Buildings  []BuildingView
	Shockwaves []ShockwaveView

	PlayerID          entity.ID
	ShockwaveCooldown float64
	Followers         int
	Camera            Camera
	GameOver          bool
}

// Player returns the view of the player entity.
func (s *Snapshot) Player() EntityView {
	i := int(s.PlayerID) - 1
	if i < 0 || i >= len(s.Entities) {
		return EntityView{}
	}
	return s.Entities[i]
}

// Snapshot copies the current state of the world.
func (w *World) Snapshot() *Snapshot {
	s := &Snapshot{
		SessionID:  w.ID,
		Tick:       w.ticks,
		Width:      w.cfg.Arena.Width,
		Height:     w.cfg.Arena.Height,
		Entities:   make([]EntityView, 0, len(w.entities)),
		Buildings:  make([]BuildingView, 0, len(w.buildings)),
		Shockwaves: make([]ShockwaveView, 0, len(w.shockwaves)),
		PlayerID:   w.player,
		Followers:  w.FollowerCount(),
		Camera:     w.camera,
		GameOver:   w.over,
	}

	for _, e := range w.entities {
		s.Entities = append(s.Entities, EntityView{
			ID:        e.ID,
			Kind:      e.Kind,
			Pos:       e.Pos,
			Radius:    e.Radius,
			Health:    e.Health,
			MaxHealth: e.MaxHealth,
			Hostile:   e.Hostile,
			Revealed:  e.Reveal != entity.Hidden,
			Following: e.FollowingPlayer,
			Dead:      e.Dead,
		})
	}
	for _, b := range w.buildings {
		s.Buildings = append(s.Buildings, BuildingView{Rect: b.Rect, Door: b.DoorWorld()})
	}
	for _, sw := range w.shockwaves {
		s.Shockwaves = append(s.Shockwaves, ShockwaveView{Center: sw.Center, Radius: sw.Radius, MaxRadius: sw.MaxRadius})
	}
	if p := w.Player(); p != nil {
		s.ShockwaveCooldown = p.ShockwaveCooldown
	}
	return s
}
