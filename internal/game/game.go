package game

import (
	"encoding/binary"
	"time"

	"chosenoffset.com/outbreak/internal/assets"
	"chosenoffset.com/outbreak/internal/render"
	"chosenoffset.com/outbreak/internal/simulation"
	"chosenoffset.com/outbreak/internal/telemetry"
	"chosenoffset.com/outbreak/internal/ui/hud"
)

// Game is one play session: the world, its floor and the HUD.
type Game struct {
	ScreenWidth  int
	ScreenHeight int

	World    *simulation.World
	Floor    *Floor
	HUD      *hud.HUD
	Renderer render.Renderer
	InputMgr render.InputManager
	Assets   *assets.Loader
	Metrics  *telemetry.Metrics

	dt       float64
	snapshot *simulation.Snapshot
}

// NewGame starts a fresh session with a newly generated arena.
func NewGame(r render.Renderer, input render.InputManager, opts Options, width, height int) *Game {
	return newGame(simulation.NewWorld(opts.config(), nil), r, input, opts, width, height)
}

// newGame wraps an existing world in a play session.
func newGame(w *simulation.World, r render.Renderer, input render.InputManager, opts Options, width, height int) *Game {
	cfg := w.Config()
	g := &Game{
		ScreenWidth:  width,
		ScreenHeight: height,
		World:        w,
		Floor:        NewFloor(floorSeed(w), cfg.Arena.Width, cfg.Arena.Height),
		HUD:          hud.New(hud.DefaultConfig(), r, width, height),
		Renderer:     r,
		InputMgr:     input,
		Assets:       opts.Assets,
		Metrics:      opts.Metrics,
		dt:           cfg.FrameTime(),
	}

	w.OnMessage = g.HUD.Push
	if g.Metrics != nil {
		g.Metrics.Instrument(w)
	}
	g.snapshot = w.Snapshot()
	return g
}

// floorSeed derives the floor layout from the session ID.
func floorSeed(w *simulation.World) int64 {
	return int64(binary.BigEndian.Uint64(w.ID[:8]))
}

// Update advances the session by one fixed frame.
func (g *Game) Update() error {
	intent := IntentFromInput(g.InputMgr)

	start := time.Now()
	g.World.Tick(g.dt, intent)
	if g.Metrics != nil {
		g.Metrics.ObserveTick(time.Since(start))
	}

	g.HUD.Update(g.dt)
	g.snapshot = g.World.Snapshot()
	return nil
}

// Snapshot returns the state drawn by the last frame.
func (g *Game) Snapshot() *simulation.Snapshot {
	return g.snapshot
}

// Over reports whether the player has died.
func (g *Game) Over() bool {
	return g.World.Over()
}
