package simulation

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/outbreak/internal/core/geom"
	"chosenoffset.com/outbreak/internal/entity"
)

func TestBuildingsKeepClearOfSpawnAndEachOther(t *testing.T) {
	cfg := DefaultConfig()
	center := geom.V(cfg.Arena.Width/2, cfg.Arena.Height/2)

	for seed := int64(1); seed <= 25; seed++ {
		w := NewWorld(cfg, rand.New(rand.NewSource(seed)))
		buildings := w.Buildings()
		require.LessOrEqual(t, len(buildings), cfg.Building.Count)

		for i, b := range buildings {
			assert.GreaterOrEqual(t, geom.Distance(b.Rect.Center(), center), cfg.Arena.SpawnExclusionRadius,
				"seed %d building %d too close to spawn", seed, i)
			assert.GreaterOrEqual(t, b.Rect.X, cfg.Arena.BuildingMargin)
			assert.GreaterOrEqual(t, b.Rect.Y, cfg.Arena.BuildingMargin)
			assert.LessOrEqual(t, b.Rect.Right(), cfg.Arena.Width-cfg.Arena.BuildingMargin)
			assert.LessOrEqual(t, b.Rect.Bottom(), cfg.Arena.Height-cfg.Arena.BuildingMargin)
			assert.GreaterOrEqual(t, b.Rect.Width, cfg.Building.MinSize)
			assert.LessOrEqual(t, b.Rect.Width, cfg.Building.MaxSize)

			for j := i + 1; j < len(buildings); j++ {
				padded := b.Rect.Inflate(cfg.Arena.BuildingPadding, cfg.Arena.BuildingPadding)
				assert.False(t, padded.Intersects(buildings[j].Rect), "seed %d buildings %d and %d overlap", seed, i, j)
			}
		}
	}
}

func TestNewWorldSpawnsActorsInsideArena(t *testing.T) {
	cfg := DefaultConfig()
	w := NewWorld(cfg, rand.New(rand.NewSource(99)))

	entities := w.Entities()
	require.Len(t, entities, 1+cfg.Spawn.Zombies+cfg.Spawn.NPCs)

	zombies, npcs := 0, 0
	for i, e := range entities {
		assert.Equal(t, entity.ID(i+1), e.ID)
		assert.GreaterOrEqual(t, e.Pos.X(), 0.0)
		assert.LessOrEqual(t, e.Pos.X(), cfg.Arena.Width)
		assert.GreaterOrEqual(t, e.Pos.Y(), 0.0)
		assert.LessOrEqual(t, e.Pos.Y(), cfg.Arena.Height)

		switch e.Kind {
		case entity.KindZombie:
			zombies++
			assert.True(t, e.Hostile)
		case entity.KindNPC:
			npcs++
			assert.False(t, e.Hostile, "NPCs start disguised")
			assert.Equal(t, entity.Hidden, e.Reveal)
		}
	}
	assert.Equal(t, cfg.Spawn.Zombies, zombies)
	assert.Equal(t, cfg.Spawn.NPCs, npcs)
	assert.Empty(t, w.Followers())
}

func TestSpawnPositionAvoidsBuildings(t *testing.T) {
	w := NewEmptyWorld(DefaultConfig(), rand.New(rand.NewSource(5)))
	w.AddBuilding(entity.NewBuildingWithDoor(geom.NewRect(900, 200, 300, 300), 30, entity.SideLeft, 100))

	for i := 0; i < 200; i++ {
		p := w.spawnPosition(w.Player().Pos)
		probe := geom.RectAround(p, 50, 50)
		assert.False(t, w.Buildings()[0].Rect.Intersects(probe), "spawn at %v overlaps building", p)
		d := geom.Distance(p, w.Player().Pos)
		assert.True(t, d >= 300 && d <= 500, "spawn at distance %.1f", d)
	}
}

func TestSpawnPositionFallsBackInsideMargin(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Spawn.MinDistance = 5000
	cfg.Spawn.MaxDistance = 6000
	w := NewEmptyWorld(cfg, rand.New(rand.NewSource(5)))

	p := w.spawnPosition(w.Player().Pos)
	assert.GreaterOrEqual(t, p.X(), 50.0)
	assert.LessOrEqual(t, p.X(), cfg.Arena.Width-50)
	assert.GreaterOrEqual(t, p.Y(), 50.0)
	assert.LessOrEqual(t, p.Y(), cfg.Arena.Height-50)
}

func TestPlacementGivesUpWhenArenaIsFull(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Building.Count = 40
	w := NewEmptyWorld(cfg, rand.New(rand.NewSource(3)))

	placed := w.placeBuildings()
	assert.Equal(t, len(w.Buildings()), placed)
	assert.Less(t, placed, 40)
}

func TestSnapshotCopiesState(t *testing.T) {
	w := NewEmptyWorld(DefaultConfig(), rand.New(rand.NewSource(1)))
	w.AddBuilding(entity.NewBuildingWithDoor(geom.NewRect(100, 100, 100, 100), 30, entity.SideTop, 40))
	z := w.SpawnZombie(geom.V(652, 360))
	w.Tick(frame, Intent{Shockwave: true})

	s := w.Snapshot()
	assert.Equal(t, w.ID, s.SessionID)
	assert.Equal(t, uint64(1), s.Tick)
	require.Len(t, s.Entities, 2)
	require.Len(t, s.Shockwaves, 1)
	require.Len(t, s.Buildings, 1)
	assert.Equal(t, geom.NewRect(140, 100, 30, 30), s.Buildings[0].Door)
	assert.Equal(t, 1.0, s.ShockwaveCooldown)
	assert.False(t, s.GameOver)

	player := s.Player()
	assert.Equal(t, entity.KindPlayer, player.Kind)
	assert.Equal(t, 1.0, player.HealthFraction())

	zv := s.Entities[1]
	assert.Equal(t, z.ID, zv.ID)
	assert.InDelta(t, 35.0/50.0, zv.HealthFraction(), 1e-9)

	s.Entities[1].Health = 1
	assert.InDelta(t, 35.0, z.Health, 1e-9)
}
