package game

import (
	"image/color"

	"github.com/aquilax/go-perlin"

	"chosenoffset.com/outbreak/internal/assets"
	"chosenoffset.com/outbreak/internal/core/geom"
	"chosenoffset.com/outbreak/internal/render"
	"chosenoffset.com/outbreak/internal/simulation"
)

// FloorCellSize is the edge length of one floor tint cell.
const FloorCellSize = 40

const (
	noiseAlpha  = 2.0
	noiseBeta   = 2.0
	noiseOctave = 3
	noiseScale  = 0.08 // noise units per cell
)

// Floor is the arena ground: a grid of cells tinted by Perlin noise so
// movement reads against the background.
type Floor struct {
	Cols, Rows int
	Cell       float64
	tints      []color.RGBA
}

// NewFloor generates the floor for a width x height arena. The same seed
// always produces the same floor.
func NewFloor(seed int64, width, height float64) *Floor {
	f := &Floor{Cell: FloorCellSize}
	f.Cols = int(width/f.Cell) + 1
	f.Rows = int(height/f.Cell) + 1
	f.tints = make([]color.RGBA, f.Cols*f.Rows)

	noise := perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctave, seed)
	for y := 0; y < f.Rows; y++ {
		for x := 0; x < f.Cols; x++ {
			// Noise2D is roughly in [-1, 1]
			n := (noise.Noise2D(float64(x)*noiseScale, float64(y)*noiseScale) + 1) / 2
			f.tints[y*f.Cols+x] = assets.Lighten(assets.Palette.Floor, 0.12*geom.Clamp(n, 0, 1))
		}
	}
	return f
}

// Tint returns the color of the cell at column x, row y.
func (f *Floor) Tint(x, y int) color.RGBA {
	if x < 0 || y < 0 || x >= f.Cols || y >= f.Rows {
		return assets.Palette.Floor
	}
	return f.tints[y*f.Cols+x]
}

// Draw fills the cells that are visible through cam.
func (f *Floor) Draw(screen render.Image, r render.Renderer, cam simulation.Camera) {
	for y := 0; y < f.Rows; y++ {
		for x := 0; x < f.Cols; x++ {
			cell := cam.Apply(geom.NewRect(float64(x)*f.Cell, float64(y)*f.Cell, f.Cell, f.Cell))
			if cell.Right() < 0 || cell.Bottom() < 0 || cell.X > cam.Width || cell.Y > cam.Height {
				continue
			}
			r.FillRect(screen, float32(cell.X), float32(cell.Y), float32(cell.Width), float32(cell.Height), f.tints[y*f.Cols+x])
		}
	}
}
