package menu

import (
	"image/color"

	"chosenoffset.com/outbreak/internal/render"
)

// GameState represents the current screen of the game.
type GameState int

const (
	StateMainMenu GameState = iota
	StatePlaying
	StatePaused
	StateGameOver
)

// String returns the state name used in logs.
func (s GameState) String() string {
	switch s {
	case StateMainMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Main menu options
const (
	OptionStart   = "Start Game"
	OptionOptions = "Options"
	OptionQuit    = "Quit"
)

// Pause menu options
const (
	OptionResume     = "Resume"
	OptionRestart    = "Restart"
	OptionQuitToMenu = "Quit to Menu"
)

// Menu is a vertical list of options navigated with the arrow keys.
// Selection wraps around at both ends.
type Menu struct {
	title        string
	options      []string
	selected     int
	overlay      bool
	renderer     render.Renderer
	input        render.InputManager
	screenWidth  int
	screenHeight int
}

// NewMainMenu creates the title screen menu.
func NewMainMenu(r render.Renderer, input render.InputManager, width, height int) *Menu {
	return &Menu{
		title:        "OUTBREAK",
		options:      []string{OptionStart, OptionOptions, OptionQuit},
		renderer:     r,
		input:        input,
		screenWidth:  width,
		screenHeight: height,
	}
}

// NewPauseMenu creates the pause menu drawn over the paused arena.
func NewPauseMenu(r render.Renderer, input render.InputManager, width, height int) *Menu {
	return &Menu{
		title:        "PAUSED",
		options:      []string{OptionResume, OptionRestart, OptionQuitToMenu},
		overlay:      true,
		renderer:     r,
		input:        input,
		screenWidth:  width,
		screenHeight: height,
	}
}

// Options returns the option labels in display order.
func (m *Menu) Options() []string { return m.options }

// Selected returns the label of the highlighted option.
func (m *Menu) Selected() string { return m.options[m.selected] }

// Reset highlights the first option again.
func (m *Menu) Reset() { m.selected = 0 }

// Update moves the highlight on Up/Down and reports the chosen option when
// Enter is pressed.
func (m *Menu) Update() (chosen bool, option string) {
	n := len(m.options)
	if m.input.IsKeyJustPressed(render.KeyUp) || m.input.IsKeyJustPressed(render.KeyW) {
		m.selected = (m.selected - 1 + n) % n
	}
	if m.input.IsKeyJustPressed(render.KeyDown) || m.input.IsKeyJustPressed(render.KeyS) {
		m.selected = (m.selected + 1) % n
	}
	if m.input.IsKeyJustPressed(render.KeyEnter) {
		return true, m.options[m.selected]
	}
	return false, ""
}

// Draw renders the menu to the screen.
func (m *Menu) Draw(screen render.Image) {
	if m.overlay {
		m.renderer.FillRect(screen, 0, 0, float32(m.screenWidth), float32(m.screenHeight), color.RGBA{0, 0, 0, 128})
	} else {
		screen.Fill(color.RGBA{0, 0, 0, 255})
	}

	titleColor := color.RGBA{255, 255, 255, 255}
	tw, _ := m.renderer.MeasureText(m.title, 2.0)
	m.renderer.DrawText(screen, m.title, (m.screenWidth-tw)/2, 100, titleColor, 2.0)

	for i, option := range m.options {
		optionColor := color.RGBA{255, 255, 255, 255}
		if i == m.selected {
			optionColor = color.RGBA{255, 255, 0, 255}
		}
		w, h := m.renderer.MeasureText(option, 1.0)
		m.renderer.DrawText(screen, option, (m.screenWidth-w)/2, 200+i*50-h/2, optionColor, 1.0)
	}

	hintColor := color.RGBA{150, 150, 150, 255}
	hint := "Up/Down to choose, Enter to select"
	hw, _ := m.renderer.MeasureText(hint, 1.0)
	m.renderer.DrawText(screen, hint, (m.screenWidth-hw)/2, m.screenHeight-60, hintColor, 1.0)
}
