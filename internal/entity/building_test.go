package entity

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"chosenoffset.com/outbreak/internal/core/geom"
)

func TestDoorBypass(t *testing.T) {
	b := NewBuildingWithDoor(geom.NewRect(100, 100, 200, 150), 30, SideTop, 60)

	// Door spans local x 60..90, y 0..30.
	assert.False(t, b.CollidesWithPoint(geom.V(175, 115)), "inside the door")
	assert.False(t, b.CollidesWithPoint(geom.V(160, 100)), "door corner is walkable")
	assert.False(t, b.CollidesWithPoint(geom.V(190, 130)), "far door corner is walkable")

	assert.True(t, b.CollidesWithPoint(geom.V(159, 115)), "one unit left of the door")
	assert.True(t, b.CollidesWithPoint(geom.V(175, 131)), "one unit below the door")
	assert.True(t, b.CollidesWithPoint(geom.V(200, 200)), "deep inside the building")

	assert.False(t, b.CollidesWithPoint(geom.V(99, 150)), "outside the building")
	assert.False(t, b.CollidesWithPoint(geom.V(300, 150)), "right edge is outside")
}

func TestDoorPlacementPerSide(t *testing.T) {
	rect := geom.NewRect(0, 0, 120, 100)

	right := NewBuildingWithDoor(rect, 30, SideRight, 40)
	assert.Equal(t, geom.NewRect(90, 40, 30, 30), right.Door)

	bottom := NewBuildingWithDoor(rect, 30, SideBottom, 45)
	assert.Equal(t, geom.NewRect(45, 70, 30, 30), bottom.Door)

	left := NewBuildingWithDoor(rect, 30, SideLeft, 30)
	assert.Equal(t, geom.NewRect(0, 30, 30, 30), left.Door)
	assert.Equal(t, geom.NewRect(0, 30, 30, 30), left.DoorWorld())
}

func TestRandomDoorStaysInsideBuilding(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 500; i++ {
		w := float64(100 + rng.Intn(201))
		h := float64(100 + rng.Intn(201))
		b := NewBuilding(geom.NewRect(10, 20, w, h), 30, rng)

		door := b.DoorWorld()
		assert.GreaterOrEqual(t, door.X, b.Rect.X)
		assert.GreaterOrEqual(t, door.Y, b.Rect.Y)
		assert.LessOrEqual(t, door.Right(), b.Rect.Right())
		assert.LessOrEqual(t, door.Bottom(), b.Rect.Bottom())

		switch b.DoorSide {
		case SideTop:
			assert.Equal(t, b.Rect.Y, door.Y)
		case SideBottom:
			assert.Equal(t, b.Rect.Bottom(), door.Bottom())
		case SideLeft:
			assert.Equal(t, b.Rect.X, door.X)
		case SideRight:
			assert.Equal(t, b.Rect.Right(), door.Right())
		}
	}
}
