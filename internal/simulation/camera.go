package simulation

import "chosenoffset.com/outbreak/internal/core/geom"

// Camera maps arena coordinates to screen coordinates so the followed
// target stays at the centre of the view.
type Camera struct {
	Width, Height float64
	Offset        geom.Vec
}

// NewCamera creates a camera for a view of the given size.
func NewCamera(width, height float64) Camera {
	return Camera{Width: width, Height: height}
}

// Follow centres the view on target.
func (c *Camera) Follow(target geom.Vec) {
	c.Offset = geom.V(target.X()-c.Width/2, target.Y()-c.Height/2)
}

// Apply returns r in screen coordinates.
func (c Camera) Apply(r geom.Rect) geom.Rect {
	return r.Translate(c.Offset.Mul(-1))
}

// Point returns p in screen coordinates.
func (c Camera) Point(p geom.Vec) geom.Vec {
	return p.Sub(c.Offset)
}
