package assets

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"strings"
)

// SpriteSize is the edge length of generated placeholder sprites
const SpriteSize = 64

// Sprite names looked up by the game.
const (
	SpritePlayer      = "player.png"
	SpriteZombie      = "zombie.png"
	SpriteNPC         = "npc.png"
	SpriteNPCHostile  = "npc_hostile.png"
	SpriteNPCFriendly = "npc_friendly.png"
)

// Palette defines the colors of the arena
var Palette = struct {
	// Actors
	Player      color.RGBA
	Zombie      color.RGBA
	NPC         color.RGBA
	NPCHostile  color.RGBA
	NPCFriendly color.RGBA
	DeadMark    color.RGBA

	// Scenery
	Building   color.RGBA
	Door       color.RGBA
	Shockwave  color.RGBA
	Floor      color.RGBA
	Background color.RGBA

	// UI
	HealthBack color.RGBA
	HealthFill color.RGBA
	Text       color.RGBA
	Highlight  color.RGBA
}{
	Player:      color.RGBA{0, 0, 255, 255},
	Zombie:      color.RGBA{255, 0, 0, 255},
	NPC:         color.RGBA{255, 255, 255, 255},
	NPCHostile:  color.RGBA{255, 255, 0, 255},
	NPCFriendly: color.RGBA{255, 255, 255, 255},
	DeadMark:    color.RGBA{0, 0, 0, 255},

	Building:   color.RGBA{139, 69, 19, 255},
	Door:       color.RGBA{40, 25, 10, 255},
	Shockwave:  color.RGBA{0, 0, 255, 128},
	Floor:      color.RGBA{28, 30, 26, 255},
	Background: color.RGBA{0, 0, 0, 255},

	HealthBack: color.RGBA{255, 0, 0, 255},
	HealthFill: color.RGBA{0, 255, 0, 255},
	Text:       color.RGBA{255, 255, 255, 255},
	Highlight:  color.RGBA{255, 255, 0, 255},
}

// placeholderColors maps sprite names to their fill color
var placeholderColors = map[string]color.RGBA{
	SpritePlayer:      Palette.Player,
	SpriteZombie:      Palette.Zombie,
	SpriteNPC:         Palette.NPC,
	SpriteNPCHostile:  Palette.NPCHostile,
	SpriteNPCFriendly: Palette.NPCFriendly,
}

// Placeholder generates the placeholder sprite for a known sprite name or
// its dead variant.
func Placeholder(name string) (*image.RGBA, bool) {
	ext := filepath.Ext(name)
	stem, dead := strings.CutSuffix(strings.TrimSuffix(name, ext), "_dead")
	fill, ok := placeholderColors[stem+ext]
	if !ok {
		return nil, false
	}
	img := CreateCircle(fill, Darken(fill, 0.6))
	if dead {
		MarkDead(img, Palette.DeadMark)
	}
	return img, true
}

// CreateCircle creates a circular sprite (for entities)
func CreateCircle(fillColor, outlineColor color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, SpriteSize, SpriteSize))

	// Make background transparent
	draw.Draw(img, img.Bounds(), &image.Uniform{color.RGBA{0, 0, 0, 0}}, image.Point{}, draw.Src)

	center := SpriteSize / 2
	radius := SpriteSize/2 - 2

	for y := 0; y < SpriteSize; y++ {
		for x := 0; x < SpriteSize; x++ {
			dx := x - center
			dy := y - center
			distSq := dx*dx + dy*dy

			if distSq <= radius*radius {
				img.Set(x, y, fillColor)
			} else if distSq <= (radius+2)*(radius+2) {
				img.Set(x, y, outlineColor)
			}
		}
	}

	return img
}

// MarkDead draws the X marker of a dead entity across img.
func MarkDead(img *image.RGBA, mark color.RGBA) {
	b := img.Bounds()
	inset := b.Dx() / 10
	for i := b.Min.X + inset; i < b.Max.X-inset; i++ {
		y := b.Min.Y + (i - b.Min.X)
		for t := -1; t <= 1; t++ {
			img.Set(i, y+t, mark)
			img.Set(i, b.Max.Y-1-(i-b.Min.X)+t, mark)
		}
	}
}

// GenerateAndSave writes every placeholder sprite, plus a dead variant of
// each, into dir.
func GenerateAndSave(dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create sprite directory: %w", err)
	}

	var written []string
	for name := range placeholderColors {
		img, _ := Placeholder(name)
		path := filepath.Join(dir, name)
		if err := SavePNG(img, path); err != nil {
			return written, fmt.Errorf("failed to save %s: %w", name, err)
		}
		written = append(written, path)

		MarkDead(img, Palette.DeadMark)
		deadPath := filepath.Join(dir, DeadName(name))
		if err := SavePNG(img, deadPath); err != nil {
			return written, fmt.Errorf("failed to save %s: %w", DeadName(name), err)
		}
		written = append(written, deadPath)
	}
	return written, nil
}

// DeadName returns the sprite name of the dead variant of name.
func DeadName(name string) string {
	ext := filepath.Ext(name)
	return name[:len(name)-len(ext)] + "_dead" + ext
}

// SavePNG saves an image to a PNG file
func SavePNG(img image.Image, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return png.Encode(file, img)
}

// Darken returns a darker version of a color
func Darken(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}

// Lighten returns a lighter version of a color
func Lighten(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) + (255-float64(c.R))*factor),
		G: uint8(float64(c.G) + (255-float64(c.G))*factor),
		B: uint8(float64(c.B) + (255-float64(c.B))*factor),
		A: c.A,
	}
}
