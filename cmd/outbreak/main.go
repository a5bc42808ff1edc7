package main

import (
	"context"
	"log"
	"os"
	"os/signal"

	"chosenoffset.com/outbreak/internal/assets"
	"chosenoffset.com/outbreak/internal/bootstrap"
	"chosenoffset.com/outbreak/internal/game"
	ebitenrender "chosenoffset.com/outbreak/internal/render/ebiten"
)

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
	metrics := settings.StartMetrics(ctx)

	screenWidth := int(cfg.Arena.Width)
	screenHeight := int(cfg.Arena.Height)

	// The font is needed before the renderer exists, so it is loaded
	// through an asset loader without image support.
	face := assets.NewLoader(settings.AssetsDir, nil, nil).LoadFont("font.ttf", assets.DefaultFontSize)

	// Initialize the renderer backend (ebiten)
	renderer := ebitenrender.NewRenderer(face)
	inputMgr := ebitenrender.NewInputManager()
	loader := ebitenrender.NewResourceLoader()
	engine := ebitenrender.NewEngine()

	gameManager := game.NewManager(renderer, inputMgr, game.Options{
		Config:  cfg,
		Assets:  assets.NewLoader(settings.AssetsDir, loader, renderer),
		Metrics: metrics,
	}, screenWidth, screenHeight)

	// Set up the window
	engine.SetWindowSize(screenWidth, screenHeight)
	engine.SetWindowTitle("Outbreak")
	engine.SetTicksPerSecond(cfg.Arena.FPS)

	log.Println("Starting game...")
	if err := engine.RunGame(gameManager); err != nil {
		log.Fatal(err)
	}
}
