// Package hud draws the in-play overlay: the player's health bar, the
// shockwave cooldown, the follower count, health bars above every actor
// and a short feed of recent events.
package hud

import (
	"fmt"
	"image/color"

	"chosenoffset.com/outbreak/internal/assets"
	"chosenoffset.com/outbreak/internal/render"
	"chosenoffset.com/outbreak/internal/simulation"
)

// HUDConfig defines what to display in the HUD
type HUDConfig struct {
	BarWidth     float32 // player health bar
	BarHeight    float32
	Margin       int
	LineHeight   int
	EntityBars   bool    // draw health bars above actors
	EntityBarGap float32 // space between an actor and its bar
	MessageTTL   float64 // seconds a feed message stays visible
	MaxMessages  int
	TextScale    float64
}

// DefaultConfig returns the standard HUD layout
func DefaultConfig() *HUDConfig {
	return &HUDConfig{
		BarWidth:     200,
		BarHeight:    20,
		Margin:       10,
		LineHeight:   20,
		EntityBars:   true,
		EntityBarGap: 10,
		MessageTTL:   3,
		MaxMessages:  4,
		TextScale:    1.0,
	}
}

type message struct {
	text string
	ttl  float64
}

// HUD manages the heads-up display
type HUD struct {
	config       *HUDConfig
	renderer     render.Renderer
	screenWidth  int
	screenHeight int
	messages     []message
}

// New creates a new HUD with the given configuration
func New(config *HUDConfig, r render.Renderer, screenWidth, screenHeight int) *HUD {
	if config == nil {
		config = DefaultConfig()
	}
	return &HUD{
		config:       config,
		renderer:     r,
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
	}
}

// Push adds a message to the event feed, dropping the oldest when full.
func (h *HUD) Push(text string) {
	h.messages = append(h.messages, message{text: text, ttl: h.config.MessageTTL})
	if over := len(h.messages) - h.config.MaxMessages; over > 0 {
		h.messages = h.messages[over:]
	}
}

// Messages returns the visible feed, oldest first.
func (h *HUD) Messages() []string {
	out := make([]string, len(h.messages))
	for i, m := range h.messages {
		out[i] = m.text
	}
	return out
}

// Update ages feed messages by dt seconds.
func (h *HUD) Update(dt float64) {
	kept := h.messages[:0]
	for _, m := range h.messages {
		m.ttl -= dt
		if m.ttl > 0 {
			kept = append(kept, m)
		}
	}
	h.messages = kept
}

// HealthText formats the player's health line.
func HealthText(health, maxHealth float64) string {
	return fmt.Sprintf("Health: %d/%d", int(health), int(maxHealth))
}

// ShockwaveText formats the shockwave cooldown line.
func ShockwaveText(cooldown float64) string {
	if cooldown > 0 {
		return fmt.Sprintf("Shockwave: %.1fs", cooldown)
	}
	return "Shockwave: Ready!"
}

// FollowersText formats the follower count line.
func FollowersText(n int) string {
	return fmt.Sprintf("Followers: %d", n)
}

// Lines returns the text lines of the status panel for s.
func Lines(s *simulation.Snapshot) []string {
	p := s.Player()
	return []string{
		HealthText(p.Health, p.MaxHealth),
		ShockwaveText(s.ShockwaveCooldown),
		FollowersText(s.Followers),
	}
}

// Draw renders the HUD for s on top of the arena.
func (h *HUD) Draw(screen render.Image, s *simulation.Snapshot) {
	if h.config.EntityBars {
		h.drawEntityBars(screen, s)
	}
	h.drawStatus(screen, s)
	h.drawFeed(screen)
}

func (h *HUD) drawStatus(screen render.Image, s *simulation.Snapshot) {
	x := float32(h.config.Margin)
	y := float32(h.config.Margin)
	h.bar(screen, x, y, h.config.BarWidth, h.config.BarHeight, s.Player().HealthFraction())

	textY := h.config.Margin + int(h.config.BarHeight) + 5
	for i, line := range Lines(s) {
		h.renderer.DrawText(screen, line, h.config.Margin+10, textY+i*h.config.LineHeight, assets.Palette.Text, h.config.TextScale)
	}
}

func (h *HUD) drawEntityBars(screen render.Image, s *simulation.Snapshot) {
	for _, e := range s.Entities {
		p := s.Camera.Point(e.Pos)
		x := float32(p.X() - e.Radius)
		y := float32(p.Y()-e.Radius) - h.config.EntityBarGap
		h.bar(screen, x, y, float32(e.Radius*2), 5, e.HealthFraction())
	}
}

func (h *HUD) drawFeed(screen render.Image) {
	clr := color.RGBA{220, 220, 220, 255}
	for i, m := range h.messages {
		w, _ := h.renderer.MeasureText(m.text, h.config.TextScale)
		y := h.screenHeight - h.config.Margin - (len(h.messages)-i)*h.config.LineHeight
		h.renderer.DrawText(screen, m.text, h.screenWidth-w-h.config.Margin, y, clr, h.config.TextScale)
	}
}

// bar draws a red background with a green fill proportional to frac.
func (h *HUD) bar(screen render.Image, x, y, w, height float32, frac float64) {
	h.renderer.FillRect(screen, x, y, w, height, assets.Palette.HealthBack)
	if frac > 0 {
		h.renderer.FillRect(screen, x, y, w*float32(frac), height, assets.Palette.HealthFill)
	}
}
