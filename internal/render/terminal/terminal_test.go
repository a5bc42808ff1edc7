package terminal

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/outbreak/internal/core/geom"
	"chosenoffset.com/outbreak/internal/entity"
	"chosenoffset.com/outbreak/internal/render"
	"chosenoffset.com/outbreak/internal/simulation"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestInput() (*Input, *fakeClock) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	in := NewInput()
	in.Now = clock.now
	return in, clock
}

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestInputHoldsKeyWithinWindow(t *testing.T) {
	in, clock := newTestInput()

	assert.True(t, in.HandleEvent(runeKey('d')))
	in.NextFrame()
	assert.True(t, in.IsKeyPressed(render.KeyD))
	assert.True(t, in.IsKeyJustPressed(render.KeyD))

	clock.advance(100 * time.Millisecond)
	in.NextFrame()
	assert.True(t, in.IsKeyPressed(render.KeyD))
	assert.False(t, in.IsKeyJustPressed(render.KeyD))

	clock.advance(100 * time.Millisecond)
	assert.False(t, in.IsKeyPressed(render.KeyD))
}

func TestInputRepeatIsNotANewPress(t *testing.T) {
	in, clock := newTestInput()

	in.HandleEvent(runeKey('w'))
	in.NextFrame()
	clock.advance(50 * time.Millisecond)
	in.HandleEvent(runeKey('w'))
	in.NextFrame()
	assert.False(t, in.IsKeyJustPressed(render.KeyW))
	assert.True(t, in.IsKeyPressed(render.KeyW))

	clock.advance(HoldWindow)
	in.HandleEvent(runeKey('W'))
	in.NextFrame()
	assert.True(t, in.IsKeyJustPressed(render.KeyW))
}

func TestInputKeyMapping(t *testing.T) {
	in, _ := newTestInput()

	assert.True(t, in.HandleEvent(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone)))
	assert.True(t, in.HandleEvent(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone)))
	assert.True(t, in.HandleEvent(runeKey(' ')))
	assert.False(t, in.HandleEvent(runeKey('z')))
	assert.False(t, in.HandleEvent(tcell.NewEventResize(80, 25)))
	in.NextFrame()

	assert.True(t, in.IsKeyJustPressed(render.KeyEnter))
	assert.True(t, in.IsKeyPressed(render.KeyLeft))
	assert.True(t, in.IsKeyPressed(render.KeySpace))
	assert.False(t, in.QuitRequested())

	in.HandleEvent(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl))
	assert.True(t, in.QuitRequested())
}

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(128, 73)
	t.Cleanup(screen.Fini)
	return screen
}

func TestViewDrawsArena(t *testing.T) {
	screen := newScreen(t)
	v := NewView(screen)

	cfg := simulation.DefaultConfig()
	w := simulation.NewEmptyWorld(cfg, nil)
	w.AddBuilding(entity.NewBuildingWithDoor(geom.NewRect(100, 100, 200, 150), cfg.Building.DoorSize, entity.SideTop, 60))
	w.SpawnZombie(geom.V(1000, 200))
	npc := w.SpawnNPC(geom.V(1000, 500), true)
	npc.Reveal = entity.RevealedHostile
	npc.Hostile = true
	dead := w.SpawnZombie(geom.V(200, 600))
	dead.ApplyDamage(dead.MaxHealth, geom.V(0, 0))

	v.Draw(w.Snapshot())

	// 10 arena units per cell, one status row on top.
	at := func(x, y int) rune {
		r, _, _, _ := screen.GetContent(x, y)
		return r
	}
	assert.Equal(t, GlyphPlayer, at(64, 37))
	assert.Equal(t, GlyphZombie, at(100, 21))
	assert.Equal(t, GlyphNPCHostile, at(100, 51))
	assert.Equal(t, GlyphDead, at(20, 61))
	assert.Equal(t, GlyphWall, at(12, 13))
	assert.Equal(t, GlyphDoor, at(17, 11))
	assert.Equal(t, 'H', at(0, 0)) // "Health: ..."
}

func TestViewDrawsShockwaveRing(t *testing.T) {
	screen := newScreen(t)
	v := NewView(screen)

	s := &simulation.Snapshot{
		Width:      1280,
		Height:     720,
		Shockwaves: []simulation.ShockwaveView{{Center: geom.V(640, 360), Radius: 50, MaxRadius: 100}},
	}
	v.Draw(s)

	r, _, _, _ := screen.GetContent(69, 37)
	assert.Equal(t, GlyphShockwave, r)
}

func TestViewDrawMessage(t *testing.T) {
	screen := newScreen(t)
	v := NewView(screen)

	v.DrawMessage("GAME OVER", []string{"Survived: 3.0s"})

	cols, rows := screen.Size()
	top := (rows - 3) / 2
	r, _, _, _ := screen.GetContent((cols-len("GAME OVER"))/2, top)
	assert.Equal(t, 'G', r)
}

func TestGlyphs(t *testing.T) {
	r, _ := Glyph(simulation.EntityView{Kind: entity.KindNPC})
	assert.Equal(t, GlyphNPC, r)
	r, _ = Glyph(simulation.EntityView{Kind: entity.KindNPC, Revealed: true})
	assert.Equal(t, GlyphNPCFriendly, r)
}
