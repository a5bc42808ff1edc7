package simulation

import (
	"log"
	"math"
	"math/rand"

	"chosenoffset.com/outbreak/internal/core/geom"
	"chosenoffset.com/outbreak/internal/entity"
)

// placeBuildings tries to place the configured number of buildings inside
// the arena margin. Each building gets a fixed number of attempts and is
// skipped when none succeeds. It returns how many were placed.
func (w *World) placeBuildings() int {
	arena := w.cfg.Arena
	bc := w.cfg.Building
	center := geom.V(arena.Width/2, arena.Height/2)
	margin := int(arena.BuildingMargin)

	placed := 0
	for i := 0; i < bc.Count; i++ {
		width := randInt(w.rng, int(bc.MinSize), int(bc.MaxSize))
		height := randInt(w.rng, int(bc.MinSize), int(bc.MaxSize))

		maxX := int(arena.Width) - width - margin
		maxY := int(arena.Height) - height - margin
		if maxX < margin || maxY < margin {
			continue
		}

		for attempt := 0; attempt < arena.PlacementAttempts; attempt++ {
			x := randInt(w.rng, margin, maxX)
			y := randInt(w.rng, margin, maxY)
			rect := geom.NewRect(float64(x), float64(y), float64(width), float64(height))

			if geom.Distance(rect.Center(), center) < arena.SpawnExclusionRadius {
				continue
			}
			if w.overlapsPadded(rect, arena.BuildingPadding) {
				continue
			}

			w.AddBuilding(entity.NewBuilding(rect, bc.DoorSize, w.rng))
			placed++
			break
		}
	}
	return placed
}

func (w *World) overlapsPadded(rect geom.Rect, padding float64) bool {
	for _, b := range w.buildings {
		if b.Rect.Inflate(padding, padding).Intersects(rect) {
			return true
		}
	}
	return false
}

// spawnActors places zombies then NPCs around the player.
func (w *World) spawnActors() {
	origin := w.Player().Pos
	for i := 0; i < w.cfg.Spawn.Zombies; i++ {
		w.SpawnZombie(w.spawnPosition(origin))
	}
	for i := 0; i < w.cfg.Spawn.NPCs; i++ {
		pos := w.spawnPosition(origin)
		w.SpawnNPC(pos, w.rng.Float64() < w.cfg.NPC.HostileChance)
	}
}

// spawnPosition picks a point on a ring around origin whose probe square
// is clear of buildings and inside the arena. After the attempt budget it
// falls back to any point inside the spawn margin.
func (w *World) spawnPosition(origin geom.Vec) geom.Vec {
	sc := w.cfg.Spawn
	arena := w.cfg.Arena

	for attempt := 0; attempt < sc.Attempts; attempt++ {
		angle := w.rng.Float64() * 2 * math.Pi
		dist := sc.MinDistance + w.rng.Float64()*(sc.MaxDistance-sc.MinDistance)
		p := geom.V(origin.X()+dist*math.Cos(angle), origin.Y()+dist*math.Sin(angle))

		if p.X() < 0 || p.X() > arena.Width || p.Y() < 0 || p.Y() > arena.Height {
			continue
		}
		probe := geom.RectAround(p, sc.ProbeSize, sc.ProbeSize)
		if w.blocksProbe(probe) {
			continue
		}
		return p
	}

	margin := int(sc.Margin)
	p := geom.V(
		float64(randInt(w.rng, margin, int(arena.Width)-margin)),
		float64(randInt(w.rng, margin, int(arena.Height)-margin)),
	)
	log.Printf("Session %s: spawn search exhausted, falling back to (%.0f, %.0f)", w.ID, p.X(), p.Y())
	return p
}

func (w *World) blocksProbe(probe geom.Rect) bool {
	for _, b := range w.buildings {
		if b.Rect.Intersects(probe) {
			return true
		}
	}
	return false
}

// randInt returns an integer in [lo, hi], or lo when the range is empty.
func randInt(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}
