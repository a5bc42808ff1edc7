// Package game wires the simulation to a render backend: the screen state
// machine, the play session and the drawing of the arena.
package game

import (
	"image/color"
	"log"

	"chosenoffset.com/outbreak/internal/render"
	"chosenoffset.com/outbreak/internal/ui/menu"
)

// Manager handles the overall game state, including menus and gameplay.
type Manager struct {
	ScreenWidth  int
	ScreenHeight int
	State        menu.GameState
	MainMenu     *menu.Menu
	PauseMenu    *menu.Menu
	Game         *Game
	Renderer     render.Renderer
	InputMgr     render.InputManager

	opts    Options
	summary []string
}

// NewManager creates a new game manager showing the main menu.
func NewManager(r render.Renderer, input render.InputManager, opts Options, width, height int) *Manager {
	return &Manager{
		ScreenWidth:  width,
		ScreenHeight: height,
		State:        menu.StateMainMenu,
		MainMenu:     menu.NewMainMenu(r, input, width, height),
		PauseMenu:    menu.NewPauseMenu(r, input, width, height),
		Renderer:     r,
		InputMgr:     input,
		opts:         opts,
	}
}

// Update updates the game state.
func (m *Manager) Update() error {
	switch m.State {
	case menu.StateMainMenu:
		chosen, option := m.MainMenu.Update()
		if !chosen {
			return nil
		}
		switch option {
		case menu.OptionStart:
			m.StartGame()
		case menu.OptionOptions:
			log.Printf("Options are not available yet")
		case menu.OptionQuit:
			return render.ErrQuit
		}

	case menu.StatePlaying:
		if m.InputMgr.IsKeyJustPressed(render.KeyEscape) {
			m.PauseMenu.Reset()
			m.setState(menu.StatePaused)
			return nil
		}
		if err := m.Game.Update(); err != nil {
			return err
		}
		if m.Game.Over() {
			m.summary = m.Game.World.Stats().Summary()
			m.setState(menu.StateGameOver)
		}

	case menu.StatePaused:
		if m.InputMgr.IsKeyJustPressed(render.KeyEscape) {
			m.setState(menu.StatePlaying)
			return nil
		}
		chosen, option := m.PauseMenu.Update()
		if !chosen {
			return nil
		}
		switch option {
		case menu.OptionResume:
			m.setState(menu.StatePlaying)
		case menu.OptionRestart:
			m.StartGame()
		case menu.OptionQuitToMenu:
			m.toMenu()
		}

	case menu.StateGameOver:
		if m.InputMgr.IsKeyJustPressed(render.KeyEnter) {
			m.toMenu()
		}
	}
	return nil
}

// StartGame discards any running session and starts a fresh one.
func (m *Manager) StartGame() {
	m.Game = NewGame(m.Renderer, m.InputMgr, m.opts, m.ScreenWidth, m.ScreenHeight)
	m.summary = nil
	m.setState(menu.StatePlaying)
}

func (m *Manager) toMenu() {
	m.Game = nil
	m.MainMenu.Reset()
	m.setState(menu.StateMainMenu)
}

func (m *Manager) setState(s menu.GameState) {
	if s != m.State {
		log.Printf("State: %s -> %s", m.State, s)
	}
	m.State = s
}

// Summary returns the session counters shown on the game over screen.
func (m *Manager) Summary() []string {
	return m.summary
}

// Draw draws the current state.
func (m *Manager) Draw(screen render.Image) {
	switch m.State {
	case menu.StateMainMenu:
		m.MainMenu.Draw(screen)
	case menu.StatePlaying:
		m.Game.Draw(screen)
	case menu.StatePaused:
		m.Game.Draw(screen)
		m.PauseMenu.Draw(screen)
	case menu.StateGameOver:
		if m.Game != nil {
			m.Game.Draw(screen)
		}
		m.drawGameOver(screen)
	}
}

func (m *Manager) drawGameOver(screen render.Image) {
	m.Renderer.FillRect(screen, 0, 0, float32(m.ScreenWidth), float32(m.ScreenHeight), color.RGBA{0, 0, 0, 160})

	title := "GAME OVER"
	tw, _ := m.Renderer.MeasureText(title, 2.0)
	m.Renderer.DrawText(screen, title, (m.ScreenWidth-tw)/2, 120, color.RGBA{255, 60, 60, 255}, 2.0)

	y := 200
	for _, line := range m.summary {
		w, _ := m.Renderer.MeasureText(line, 1.0)
		m.Renderer.DrawText(screen, line, (m.ScreenWidth-w)/2, y, color.RGBA{255, 255, 255, 255}, 1.0)
		y += 25
	}

	hint := "Press Enter to return to the menu"
	hw, _ := m.Renderer.MeasureText(hint, 1.0)
	m.Renderer.DrawText(screen, hint, (m.ScreenWidth-hw)/2, m.ScreenHeight-60, color.RGBA{150, 150, 150, 255}, 1.0)
}

// Layout keeps the logical screen at the arena view size.
func (m *Manager) Layout(outsideWidth, outsideHeight int) (int, int) {
	return m.ScreenWidth, m.ScreenHeight
}
