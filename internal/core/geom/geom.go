// Package geom provides the axis-aligned rectangle and point helpers shared by
// the simulation: overlap tests, containment and padding.
package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vec is a 2D point or displacement in arena units.
type Vec = mgl64.Vec2

// V builds a Vec from its components.
func V(x, y float64) Vec {
	return Vec{x, y}
}

// Rect is an axis-aligned rectangle with its origin at the top-left corner.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// NewRect creates a rectangle from its top-left corner and size.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, Width: w, Height: h}
}

// RectAround creates a rectangle of the given size centred on c.
func RectAround(c Vec, w, h float64) Rect {
	return Rect{X: c.X() - w/2, Y: c.Y() - h/2, Width: w, Height: h}
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Center returns the centre point of the rectangle.
func (r Rect) Center() Vec {
	return Vec{r.X + r.Width/2, r.Y + r.Height/2}
}

// Intersects reports whether two rectangles overlap. Touching edges do not
// count as an overlap.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.Right() && r.Right() > other.X &&
		r.Y < other.Bottom() && r.Bottom() > other.Y
}

// Contains reports whether p lies inside the rectangle. The left and top
// edges are inside, the right and bottom edges are not.
func (r Rect) Contains(p Vec) bool {
	return p.X() >= r.X && p.X() < r.Right() &&
		p.Y() >= r.Y && p.Y() < r.Bottom()
}

// ContainsClosed is Contains with all four edges treated as inside.
func (r Rect) ContainsClosed(p Vec) bool {
	return p.X() >= r.X && p.X() <= r.Right() &&
		p.Y() >= r.Y && p.Y() <= r.Bottom()
}

// Inflate grows the rectangle by dw and dh in total, keeping its centre.
func (r Rect) Inflate(dw, dh float64) Rect {
	return Rect{
		X:      r.X - dw/2,
		Y:      r.Y - dh/2,
		Width:  r.Width + dw,
		Height: r.Height + dh,
	}
}

// Translate returns the rectangle moved by d.
func (r Rect) Translate(d Vec) Rect {
	return Rect{X: r.X + d.X(), Y: r.Y + d.Y(), Width: r.Width, Height: r.Height}
}

// Corners returns top-left, top-right, bottom-left and bottom-right.
func (r Rect) Corners() [4]Vec {
	return [4]Vec{
		{r.X, r.Y},
		{r.Right(), r.Y},
		{r.X, r.Bottom()},
		{r.Right(), r.Bottom()},
	}
}

// RectIntersects is the free-function form of Rect.Intersects.
func RectIntersects(a, b Rect) bool {
	return a.Intersects(b)
}

// Distance returns the Euclidean distance between two points.
func Distance(a, b Vec) float64 {
	return math.Hypot(b.X()-a.X(), b.Y()-a.Y())
}

// Direction returns the unit vector from a towards b and the distance
// between them. A zero distance yields a zero vector.
func Direction(a, b Vec) (Vec, float64) {
	d := b.Sub(a)
	dist := math.Hypot(d.X(), d.Y())
	if dist == 0 {
		return Vec{}, 0
	}
	return Vec{d.X() / dist, d.Y() / dist}, dist
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
