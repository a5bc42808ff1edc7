package terminal

import (
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"

	"chosenoffset.com/outbreak/internal/core/geom"
	"chosenoffset.com/outbreak/internal/entity"
	"chosenoffset.com/outbreak/internal/simulation"
	"chosenoffset.com/outbreak/internal/ui/hud"
)

// Glyphs drawn for arena contents.
const (
	GlyphPlayer      = '@'
	GlyphZombie      = 'Z'
	GlyphNPC         = 'N'
	GlyphNPCHostile  = 'H'
	GlyphNPCFriendly = 'F'
	GlyphDead        = 'x'
	GlyphWall        = '#'
	GlyphDoor        = '+'
	GlyphShockwave   = 'o'
)

var (
	styleDefault   = tcell.StyleDefault
	stylePlayer    = tcell.StyleDefault.Foreground(tcell.ColorBlue).Bold(true)
	styleZombie    = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleNPC       = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleHostile   = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleDead      = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleBuilding  = tcell.StyleDefault.Foreground(tcell.NewRGBColor(139, 69, 19))
	styleDoor      = tcell.StyleDefault.Foreground(tcell.NewRGBColor(200, 160, 90))
	styleShockwave = tcell.StyleDefault.Foreground(tcell.ColorDodgerBlue)
	styleStatus    = tcell.StyleDefault.Reverse(true)
)

// View draws snapshots onto a tcell screen. The whole arena is scaled to
// fit below a one-line status bar.
type View struct {
	screen tcell.Screen
}

// NewView creates a view drawing to screen.
func NewView(screen tcell.Screen) *View {
	return &View{screen: screen}
}

// grid maps arena coordinates to cells.
type grid struct {
	cols, rows int
	sx, sy     float64
}

func (v *View) grid(s *simulation.Snapshot) grid {
	cols, rows := v.screen.Size()
	rows-- // status bar
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	return grid{cols: cols, rows: rows, sx: s.Width / float64(cols), sy: s.Height / float64(rows)}
}

// cell returns the screen cell of an arena point.
func (g grid) cell(p geom.Vec) (int, int) {
	return int(p.X() / g.sx), int(p.Y()/g.sy) + 1
}

func (g grid) inside(x, y int) bool {
	return x >= 0 && x < g.cols && y >= 1 && y <= g.rows
}

// Draw renders s and shows the result.
func (v *View) Draw(s *simulation.Snapshot) {
	v.screen.Clear()
	g := v.grid(s)

	for _, b := range s.Buildings {
		v.fillRect(g, b.Rect, GlyphWall, styleBuilding)
		v.fillRect(g, b.Door, GlyphDoor, styleDoor)
	}
	for _, sw := range s.Shockwaves {
		v.ring(g, sw.Center, sw.Radius)
	}
	// Dead first so the living are drawn on top.
	for _, e := range s.Entities {
		if e.Dead {
			v.put(g, e.Pos, GlyphDead, styleDead)
		}
	}
	for _, e := range s.Entities {
		if !e.Dead {
			r, st := Glyph(e)
			v.put(g, e.Pos, r, st)
		}
	}

	v.status(strings.Join(hud.Lines(s), "  |  "))
	v.screen.Show()
}

// DrawMessage renders a centred block of lines, such as the game over
// summary, and shows the result.
func (v *View) DrawMessage(title string, lines []string) {
	v.screen.Clear()
	cols, rows := v.screen.Size()
	all := append([]string{title, ""}, lines...)
	top := (rows - len(all)) / 2
	for i, line := range all {
		st := styleDefault
		if i == 0 {
			st = st.Bold(true)
		}
		v.text((cols-len(line))/2, top+i, line, st)
	}
	v.screen.Show()
}

// Glyph returns the rune and style for a live entity.
func Glyph(e simulation.EntityView) (rune, tcell.Style) {
	switch e.Kind {
	case entity.KindPlayer:
		return GlyphPlayer, stylePlayer
	case entity.KindZombie:
		return GlyphZombie, styleZombie
	}
	switch {
	case !e.Revealed:
		return GlyphNPC, styleNPC
	case e.Hostile:
		return GlyphNPCHostile, styleHostile
	default:
		return GlyphNPCFriendly, styleNPC
	}
}

func (v *View) put(g grid, p geom.Vec, r rune, st tcell.Style) {
	x, y := g.cell(p)
	if g.inside(x, y) {
		v.screen.SetContent(x, y, r, nil, st)
	}
}

func (v *View) fillRect(g grid, r geom.Rect, ch rune, st tcell.Style) {
	x0, y0 := g.cell(geom.V(r.X, r.Y))
	x1, y1 := g.cell(geom.V(r.Right()-1e-9, r.Bottom()-1e-9))
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if g.inside(x, y) {
				v.screen.SetContent(x, y, ch, nil, st)
			}
		}
	}
}

func (v *View) ring(g grid, c geom.Vec, radius float64) {
	steps := int(2*math.Pi*radius/math.Min(g.sx, g.sy)) + 8
	for i := 0; i < steps; i++ {
		a := 2 * math.Pi * float64(i) / float64(steps)
		v.put(g, c.Add(geom.V(math.Cos(a)*radius, math.Sin(a)*radius)), GlyphShockwave, styleShockwave)
	}
}

func (v *View) status(line string) {
	cols, _ := v.screen.Size()
	for x := 0; x < cols; x++ {
		v.screen.SetContent(x, 0, ' ', nil, styleStatus)
	}
	v.text(0, 0, line, styleStatus)
}

func (v *View) text(x, y int, s string, st tcell.Style) {
	for i, r := range []rune(s) {
		v.screen.SetContent(x+i, y, r, nil, st)
	}
}
