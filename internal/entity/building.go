package entity

import (
	"math/rand"

	"chosenoffset.com/outbreak/internal/core/geom"
)

// Side names an edge of a building.
type Side int

const (
	SideTop Side = iota
	SideRight
	SideBottom
	SideLeft
)

func (s Side) String() string {
	switch s {
	case SideTop:
		return "top"
	case SideRight:
		return "right"
	case SideBottom:
		return "bottom"
	case SideLeft:
		return "left"
	default:
		return ""
	}
}

// Building is a static rectangular obstacle with one walkable door cut into
// one of its edges. It never changes after construction.
type Building struct {
	Rect     geom.Rect
	Door     geom.Rect // building-local coordinates
	DoorSide Side
}

// NewBuilding creates a building at rect with a square door of doorSize on a
// randomly chosen edge.
func NewBuilding(rect geom.Rect, doorSize float64, rng *rand.Rand) *Building {
	side := Side(rng.Intn(4))
	return NewBuildingWithDoor(rect, doorSize, side, doorOffset(rng, doorSize, rect, side))
}

// NewBuildingWithDoor creates a building with the door placed on side at
// offset along that edge.
func NewBuildingWithDoor(rect geom.Rect, doorSize float64, side Side, offset float64) *Building {
	var door geom.Rect
	switch side {
	case SideTop:
		door = geom.NewRect(offset, 0, doorSize, doorSize)
	case SideRight:
		door = geom.NewRect(rect.Width-doorSize, offset, doorSize, doorSize)
	case SideBottom:
		door = geom.NewRect(offset, rect.Height-doorSize, doorSize, doorSize)
	default:
		door = geom.NewRect(0, offset, doorSize, doorSize)
	}
	return &Building{Rect: rect, Door: door, DoorSide: side}
}

// doorOffset picks an integer offset in [doorSize, edge-doorSize] along the
// chosen edge.
func doorOffset(rng *rand.Rand, doorSize float64, rect geom.Rect, side Side) float64 {
	edge := rect.Width
	if side == SideLeft || side == SideRight {
		edge = rect.Height
	}
	lo := int(doorSize)
	hi := int(edge - doorSize)
	if hi < lo {
		return float64(lo)
	}
	return float64(lo + rng.Intn(hi-lo+1))
}

// DoorWorld returns the door rectangle in arena coordinates.
func (b *Building) DoorWorld() geom.Rect {
	return b.Door.Translate(geom.V(b.Rect.X, b.Rect.Y))
}

// CollidesWithPoint reports whether p is inside the solid part of the
// building: inside the rectangle and not inside the door.
func (b *Building) CollidesWithPoint(p geom.Vec) bool {
	if !b.Rect.Contains(p) {
		return false
	}
	local := geom.V(p.X()-b.Rect.X, p.Y()-b.Rect.Y)
	return !b.Door.ContainsClosed(local)
}
