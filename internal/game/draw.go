package game

import (
	"image/color"

	"chosenoffset.com/outbreak/internal/assets"
	"chosenoffset.com/outbreak/internal/entity"
	"chosenoffset.com/outbreak/internal/render"
	"chosenoffset.com/outbreak/internal/simulation"
)

// Draw renders the arena and the HUD to the screen.
func (g *Game) Draw(screen render.Image) {
	s := g.snapshot
	screen.Fill(assets.Palette.Background)

	g.Floor.Draw(screen, g.Renderer, s.Camera)
	g.drawBuildings(screen, s)
	g.drawShockwaves(screen, s)
	g.drawEntities(screen, s)
	g.HUD.Draw(screen, s)
}

func (g *Game) drawBuildings(screen render.Image, s *simulation.Snapshot) {
	for _, b := range s.Buildings {
		r := s.Camera.Apply(b.Rect)
		g.Renderer.FillRect(screen, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), assets.Palette.Building)
		g.Renderer.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), 2, assets.Darken(assets.Palette.Building, 0.6))

		d := s.Camera.Apply(b.Door)
		g.Renderer.FillRect(screen, float32(d.X), float32(d.Y), float32(d.Width), float32(d.Height), assets.Palette.Door)
	}
}

func (g *Game) drawShockwaves(screen render.Image, s *simulation.Snapshot) {
	for _, sw := range s.Shockwaves {
		c := s.Camera.Point(sw.Center)
		g.Renderer.StrokeCircle(screen, float32(c.X()), float32(c.Y()), float32(sw.Radius), 3, assets.Palette.Shockwave)
	}
}

func (g *Game) drawEntities(screen render.Image, s *simulation.Snapshot) {
	for _, e := range s.Entities {
		p := s.Camera.Point(e.Pos)
		x, y, r := float32(p.X()), float32(p.Y()), float32(e.Radius)

		if sprite := g.sprite(e); sprite != nil {
			w, _ := sprite.Size()
			scale := float64(2*e.Radius) / float64(w)
			opts := &render.DrawImageOptions{GeoM: render.NewGeoM()}
			opts.GeoM.Scale(scale, scale)
			opts.GeoM.Translate(p.X()-e.Radius, p.Y()-e.Radius)
			screen.DrawImage(sprite, opts)
			continue
		}

		// Fallback to circle
		g.Renderer.FillCircle(screen, x, y, r, entityColor(e))
		if e.Dead {
			mark := assets.Palette.DeadMark
			g.Renderer.StrokeLine(screen, x-r, y-r, x+r, y+r, 3, mark)
			g.Renderer.StrokeLine(screen, x-r, y+r, x+r, y-r, 3, mark)
		}
	}
}

// sprite returns the image for e, or nil when no assets are loaded.
func (g *Game) sprite(e simulation.EntityView) render.Image {
	if g.Assets == nil || render.NewGeoM == nil {
		return nil
	}
	name := spriteName(e)
	if e.Dead {
		name = assets.DeadName(name)
	}
	return g.Assets.Sprite(name)
}

func spriteName(e simulation.EntityView) string {
	switch e.Kind {
	case entity.KindPlayer:
		return assets.SpritePlayer
	case entity.KindZombie:
		return assets.SpriteZombie
	}
	switch {
	case !e.Revealed:
		return assets.SpriteNPC
	case e.Hostile:
		return assets.SpriteNPCHostile
	default:
		return assets.SpriteNPCFriendly
	}
}

// entityColor mirrors the placeholder sprite colors.
func entityColor(e simulation.EntityView) color.RGBA {
	switch spriteName(e) {
	case assets.SpritePlayer:
		return assets.Palette.Player
	case assets.SpriteZombie:
		return assets.Palette.Zombie
	case assets.SpriteNPCHostile:
		return assets.Palette.NPCHostile
	case assets.SpriteNPCFriendly:
		return assets.Palette.NPCFriendly
	}
	return assets.Palette.NPC
}
