// Package terminal runs the arena in a character-cell terminal through
// tcell: keyboard input adapted to render.InputManager and a scaled-down
// view of a simulation snapshot.
package terminal

import (
	"sync"
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"chosenoffset.com/outbreak/internal/render"
)

// HoldWindow is how long a key counts as held after its last key event.
// Terminals report presses and auto-repeats but never releases.
const HoldWindow = 150 * time.Millisecond

// Input implements render.InputManager from tcell key events. Events may
// arrive from the polling goroutine while the game loop reads state.
type Input struct {
	// Now is the clock used to age held keys.
	Now func() time.Time

	mu       sync.Mutex
	hold     time.Duration
	lastSeen map[render.Key]time.Time
	pending  map[render.Key]bool
	just     map[render.Key]bool
	quit     bool
}

// NewInput creates an input with no keys down.
func NewInput() *Input {
	return &Input{
		Now:      time.Now,
		hold:     HoldWindow,
		lastSeen: make(map[render.Key]time.Time),
		pending:  make(map[render.Key]bool),
		just:     make(map[render.Key]bool),
	}
}

// HandleEvent records a key event. It reports whether ev was a key the
// game uses.
func (in *Input) HandleEvent(ev tcell.Event) bool {
	kev, ok := ev.(*tcell.EventKey)
	if !ok {
		return false
	}

	in.mu.Lock()
	defer in.mu.Unlock()

	if kev.Key() == tcell.KeyCtrlC {
		in.quit = true
		return true
	}
	key, ok := keyFromTcell(kev)
	if !ok {
		return false
	}

	now := in.Now()
	if last, seen := in.lastSeen[key]; !seen || now.Sub(last) >= in.hold {
		in.pending[key] = true
	}
	in.lastSeen[key] = now
	return true
}

// NextFrame publishes the presses received since the previous frame as
// just pressed. Call it once per frame before reading keys.
func (in *Input) NextFrame() {
	in.mu.Lock()
	defer in.mu.Unlock()

	in.just = in.pending
	in.pending = make(map[render.Key]bool)
}

// QuitRequested reports whether Ctrl-C was pressed.
func (in *Input) QuitRequested() bool {
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.quit
}

// IsKeyPressed reports whether key was seen within the hold window.
func (in *Input) IsKeyPressed(key render.Key) bool {
	in.mu.Lock()
	defer in.mu.Unlock()

	if in.just[key] {
		return true
	}
	last, ok := in.lastSeen[key]
	return ok && in.Now().Sub(last) < in.hold
}

// IsKeyJustPressed reports whether key went down before this frame.
func (in *Input) IsKeyJustPressed(key render.Key) bool {
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.just[key]
}

func keyFromTcell(ev *tcell.EventKey) (render.Key, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return render.KeyUp, true
	case tcell.KeyDown:
		return render.KeyDown, true
	case tcell.KeyLeft:
		return render.KeyLeft, true
	case tcell.KeyRight:
		return render.KeyRight, true
	case tcell.KeyEnter:
		return render.KeyEnter, true
	case tcell.KeyEscape:
		return render.KeyEscape, true
	case tcell.KeyRune:
		switch unicode.ToLower(ev.Rune()) {
		case 'w':
			return render.KeyW, true
		case 'a':
			return render.KeyA, true
		case 's':
			return render.KeyS, true
		case 'd':
			return render.KeyD, true
		case 'j':
			return render.KeyJ, true
		case 'q':
			return render.KeyQ, true
		case ' ':
			return render.KeySpace, true
		}
	}
	return 0, false
}
