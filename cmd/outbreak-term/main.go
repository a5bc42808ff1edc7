package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"

	"chosenoffset.com/outbreak/internal/bootstrap"
	"chosenoffset.com/outbreak/internal/game"
	"chosenoffset.com/outbreak/internal/render"
	"chosenoffset.com/outbreak/internal/render/terminal"
	"chosenoffset.com/outbreak/internal/simulation"
	"chosenoffset.com/outbreak/internal/telemetry"
)

type session struct {
	input   *terminal.Input
	view    *terminal.View
	cfg     *simulation.Config
	metrics *telemetry.Metrics

	world *simulation.World
}

func (s *session) start() {
	s.world = simulation.NewWorld(s.cfg, nil)
	if s.metrics != nil {
		s.metrics.Instrument(s.world)
	}
}

// step runs one frame. It returns false when the player asked to quit.
func (s *session) step() bool {
	s.input.NextFrame()
	if s.input.QuitRequested() || s.input.IsKeyJustPressed(render.KeyQ) || s.input.IsKeyJustPressed(render.KeyEscape) {
		return false
	}

	if s.world.Over() {
		if s.input.IsKeyJustPressed(render.KeyEnter) {
			s.start()
		}
		s.view.DrawMessage("GAME OVER", append(s.world.Stats().Summary(), "", "Enter to play again, Esc to quit"))
		return true
	}

	begin := time.Now()
	s.world.Tick(s.cfg.FrameTime(), game.IntentFromInput(s.input))
	if s.metrics != nil {
		s.metrics.ObserveTick(time.Since(begin))
	}
	s.view.Draw(s.world.Snapshot())
	return true
}

func main() {
	if err := bootstrap.LoadEnv(); err != nil {
		log.Printf("Warning: %v", err)
	}
	settings, err := bootstrap.ParseFlags(os.Args[0], os.Args[1:])
	if err != nil {
		os.Exit(2)
	}
	cfg, err := settings.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// The terminal owns stdout and stderr while the screen is up.
	logFile, err := os.Create("outbreak-term.log")
	if err == nil {
		log.SetOutput(logFile)
		defer logFile.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	s := &session{
		input:   terminal.NewInput(),
		view:    terminal.NewView(screen),
		cfg:     cfg,
		metrics: settings.StartMetrics(ctx),
	}
	s.start()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(cfg.Arena.FPS))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-events:
			if _, ok := ev.(*tcell.EventResize); ok {
				screen.Sync()
				continue
			}
			s.input.HandleEvent(ev)
		case <-ticker.C:
			if !s.step() {
				return
			}
		}
	}
}
