package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/outbreak/internal/assets"
	"chosenoffset.com/outbreak/internal/core/geom"
	"chosenoffset.com/outbreak/internal/entity"
	"chosenoffset.com/outbreak/internal/render"
	"chosenoffset.com/outbreak/internal/render/rendertest"
	"chosenoffset.com/outbreak/internal/simulation"
	"chosenoffset.com/outbreak/internal/ui/menu"
)

func seededOptions() Options {
	cfg := simulation.DefaultConfig()
	cfg.Seed = 7
	return Options{Config: cfg}
}

func tap(t *testing.T, m *Manager, in *rendertest.Input, key render.Key) error {
	t.Helper()
	in.Tap(key)
	defer in.EndFrame()
	return m.Update()
}

func TestIntentFromInput(t *testing.T) {
	in := rendertest.NewInput()
	assert.Equal(t, simulation.Intent{}, IntentFromInput(in))

	in.Hold(render.KeyA)
	in.Hold(render.KeyD)
	in.Hold(render.KeyUp)
	assert.Equal(t, simulation.Intent{MoveX: 0, MoveY: -1}, IntentFromInput(in))

	in.Release(render.KeyD)
	in.Hold(render.KeySpace)
	in.Hold(render.KeyJ)
	assert.Equal(t, simulation.Intent{MoveX: -1, MoveY: -1, Shockwave: true, Attack: true}, IntentFromInput(in))
}

func TestFloorIsDeterministic(t *testing.T) {
	a := NewFloor(42, 1280, 720)
	b := NewFloor(42, 1280, 720)
	c := NewFloor(43, 1280, 720)

	assert.Equal(t, 33, a.Cols)
	assert.Equal(t, 19, a.Rows)
	assert.Equal(t, a.tints, b.tints)
	assert.NotEqual(t, a.tints, c.tints)
	assert.Equal(t, assets.Palette.Floor, a.Tint(-1, 0))
	assert.Equal(t, assets.Palette.Floor, a.Tint(0, a.Rows))
}

func TestFloorDrawsVisibleCellsOnly(t *testing.T) {
	f := NewFloor(1, 1280, 720)
	r := rendertest.NewRenderer()

	cam := simulation.NewCamera(1280, 720)
	cam.Follow(geom.V(640, 360))
	f.Draw(rendertest.NewImage(1280, 720), r, cam)
	assert.Equal(t, f.Cols*f.Rows, r.Rects)

	r.Reset()
	cam.Follow(geom.V(10000, 10000))
	f.Draw(rendertest.NewImage(1280, 720), r, cam)
	assert.Zero(t, r.Rects)
}

func TestGameMovesPlayerWithHeldKey(t *testing.T) {
	in := rendertest.NewInput()
	opts := seededOptions()
	g := newGame(simulation.NewEmptyWorld(opts.Config, nil), rendertest.NewRenderer(), in, opts, 1280, 720)
	start := g.World.Player().Pos

	in.Hold(render.KeyD)
	require.NoError(t, g.Update())
	assert.Greater(t, g.World.Player().Pos.X(), start.X())
	assert.Equal(t, uint64(1), g.Snapshot().Tick)
}

func TestGameDrawsCirclesWithoutAssets(t *testing.T) {
	r := rendertest.NewRenderer()
	g := NewGame(r, rendertest.NewInput(), seededOptions(), 1280, 720)
	screen := rendertest.NewImage(1280, 720)

	g.Draw(screen)
	assert.Equal(t, len(g.World.Entities()), r.Circles)
	assert.Zero(t, screen.Draws)
	assert.NotEmpty(t, r.Texts)
}

func TestGameDrawsPlaceholderSprites(t *testing.T) {
	r := rendertest.NewRenderer()
	opts := seededOptions()
	opts.Assets = assets.NewLoader(t.TempDir(), &rendertest.Loader{}, r)
	g := NewGame(r, rendertest.NewInput(), opts, 1280, 720)
	screen := rendertest.NewImage(1280, 720)

	g.Draw(screen)
	assert.Equal(t, len(g.World.Entities()), screen.Draws)
	assert.Zero(t, r.Circles)
}

func TestDeadEntityIsMarked(t *testing.T) {
	r := rendertest.NewRenderer()
	opts := seededOptions()
	g := newGame(simulation.NewEmptyWorld(opts.Config, nil), r, rendertest.NewInput(), opts, 1280, 720)
	z := g.World.SpawnZombie(g.World.Player().Pos.Add(geom.V(60, 0)))
	require.True(t, z.ApplyDamage(z.MaxHealth, geom.V(0, 0)))
	g.snapshot = g.World.Snapshot()

	g.Draw(rendertest.NewImage(1280, 720))
	assert.Equal(t, 2, r.Lines)
}

func TestSpriteNames(t *testing.T) {
	assert.Equal(t, assets.SpriteNPC, spriteName(simulation.EntityView{Kind: entity.KindNPC, Hostile: false}))
	assert.Equal(t, assets.SpriteNPCHostile, spriteName(simulation.EntityView{Kind: entity.KindNPC, Revealed: true, Hostile: true}))
	assert.Equal(t, assets.SpriteNPCFriendly, spriteName(simulation.EntityView{Kind: entity.KindNPC, Revealed: true}))
	assert.Equal(t, assets.Palette.NPCHostile, entityColor(simulation.EntityView{Kind: entity.KindNPC, Revealed: true, Hostile: true}))
}

func TestManagerFlow(t *testing.T) {
	in := rendertest.NewInput()
	m := NewManager(rendertest.NewRenderer(), in, seededOptions(), 1280, 720)
	assert.Equal(t, menu.StateMainMenu, m.State)

	require.NoError(t, tap(t, m, in, render.KeyEnter))
	assert.Equal(t, menu.StatePlaying, m.State)
	require.NotNil(t, m.Game)

	require.NoError(t, tap(t, m, in, render.KeyEscape))
	assert.Equal(t, menu.StatePaused, m.State)
	ticks := m.Game.World.Ticks()
	require.NoError(t, m.Update())
	assert.Equal(t, ticks, m.Game.World.Ticks(), "paused world must not tick")

	require.NoError(t, tap(t, m, in, render.KeyEscape))
	assert.Equal(t, menu.StatePlaying, m.State)

	// Restart
	first := m.Game
	require.NoError(t, tap(t, m, in, render.KeyEscape))
	require.NoError(t, tap(t, m, in, render.KeyDown))
	require.NoError(t, tap(t, m, in, render.KeyEnter))
	assert.Equal(t, menu.StatePlaying, m.State)
	assert.NotSame(t, first, m.Game)

	// Quit to Menu
	require.NoError(t, tap(t, m, in, render.KeyEscape))
	require.NoError(t, tap(t, m, in, render.KeyUp))
	require.NoError(t, tap(t, m, in, render.KeyEnter))
	assert.Equal(t, menu.StateMainMenu, m.State)
	assert.Nil(t, m.Game)

	// Options is a no-op
	require.NoError(t, tap(t, m, in, render.KeyDown))
	require.NoError(t, tap(t, m, in, render.KeyEnter))
	assert.Equal(t, menu.StateMainMenu, m.State)

	require.NoError(t, tap(t, m, in, render.KeyDown))
	assert.ErrorIs(t, tap(t, m, in, render.KeyEnter), render.ErrQuit)
}

func TestManagerGameOver(t *testing.T) {
	in := rendertest.NewInput()
	r := rendertest.NewRenderer()
	m := NewManager(r, in, seededOptions(), 1280, 720)
	m.StartGame()

	m.Game.World.Player().Health = 0
	require.NoError(t, m.Update())
	assert.Equal(t, menu.StateGameOver, m.State)
	require.NotEmpty(t, m.Summary())
	assert.Contains(t, m.Summary()[0], "Survived")
	require.NotEmpty(t, m.Game.HUD.Messages())
	assert.Contains(t, m.Game.HUD.Messages()[0], "You died")

	m.Draw(rendertest.NewImage(1280, 720))
	assert.Contains(t, r.Texts, "GAME OVER")

	require.NoError(t, m.Update())
	assert.Equal(t, menu.StateGameOver, m.State)
	require.NoError(t, tap(t, m, in, render.KeyEnter))
	assert.Equal(t, menu.StateMainMenu, m.State)
}

func TestManagerDrawsEveryState(t *testing.T) {
	in := rendertest.NewInput()
	m := NewManager(rendertest.NewRenderer(), in, seededOptions(), 1280, 720)
	screen := rendertest.NewImage(1280, 720)

	m.Draw(screen)
	m.StartGame()
	m.Draw(screen)
	require.NoError(t, tap(t, m, in, render.KeyEscape))
	m.Draw(screen)

	w, h := m.Layout(800, 600)
	assert.Equal(t, 1280, w)
	assert.Equal(t, 720, h)
}
