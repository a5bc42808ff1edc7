// Package rendertest provides in-memory implementations of the render
// interfaces for tests. Nothing is drawn; calls are recorded instead.
package rendertest

import (
	"errors"
	"image"
	"image/color"
	"os"

	"chosenoffset.com/outbreak/internal/render"
)

// Image is a sized surface that records what was drawn onto it.
type Image struct {
	W, H     int
	Fills    []color.Color
	Draws    int
	Disposed bool
}

// NewImage creates an image of the given size.
func NewImage(w, h int) *Image { return &Image{W: w, H: h} }

// Bounds returns the image rectangle.
func (i *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, i.W, i.H)
}

// Size returns the image size.
func (i *Image) Size() (int, int) {
	return i.W, i.H
}

// Fill records clr.
func (i *Image) Fill(clr color.Color) {
	i.Fills = append(i.Fills, clr)
}

// Clear records a transparent fill.
func (i *Image) Clear() {
	i.Fills = append(i.Fills, color.Transparent)
}

// DrawImage counts the draw.
func (i *Image) DrawImage(src render.Image, opts *render.DrawImageOptions) {
	i.Draws++
}

// Dispose marks the image disposed.
func (i *Image) Dispose() {
	i.Disposed = true
}

// Renderer records text and counts shapes.
type Renderer struct {
	Texts   []string
	Circles int
	Rects   int
	Lines   int
}

// NewRenderer creates an empty recording renderer.
func NewRenderer() *Renderer { return &Renderer{} }

func (r *Renderer) NewImage(w, h int) render.Image { return NewImage(w, h) }

func (r *Renderer) NewImageFromImage(src image.Image) render.Image {
	b := src.Bounds()
	return NewImage(b.Dx(), b.Dy())
}

func (r *Renderer) FillCircle(dst render.Image, x, y, radius float32, clr color.Color) {
	r.Circles++
}

func (r *Renderer) StrokeCircle(dst render.Image, x, y, radius, strokeWidth float32, clr color.Color) {
	r.Circles++
}

func (r *Renderer) FillRect(dst render.Image, x, y, w, h float32, clr color.Color) {
	r.Rects++
}

func (r *Renderer) StrokeRect(dst render.Image, x, y, w, h, strokeWidth float32, clr color.Color) {
	r.Rects++
}

func (r *Renderer) StrokeLine(dst render.Image, x0, y0, x1, y1, strokeWidth float32, clr color.Color) {
	r.Lines++
}

func (r *Renderer) DrawText(dst render.Image, text string, x, y int, clr color.Color, scale float64) {
	r.Texts = append(r.Texts, text)
}

// MeasureText assumes a 7x13 cell per character.
func (r *Renderer) MeasureText(text string, scale float64) (int, int) {
	return int(float64(len(text)*7) * scale), int(13 * scale)
}

// Reset forgets everything recorded so far.
func (r *Renderer) Reset() { *r = Renderer{} }

// Input is a scriptable keyboard. Keys pressed with Tap are "just pressed"
// until the next EndFrame.
type Input struct {
	held map[render.Key]bool
	just map[render.Key]bool
}

// NewInput creates an input with no keys down.
func NewInput() *Input {
	return &Input{held: make(map[render.Key]bool), just: make(map[render.Key]bool)}
}

// Hold presses key and keeps it down.
func (in *Input) Hold(key render.Key) {
	if !in.held[key] {
		in.just[key] = true
	}
	in.held[key] = true
}

// Release lets go of key, including a press not yet ended by EndFrame.
func (in *Input) Release(key render.Key) {
	delete(in.held, key)
	delete(in.just, key)
}

// Tap presses key for a single frame.
func (in *Input) Tap(key render.Key) { in.just[key] = true }

// EndFrame clears the just-pressed state.
func (in *Input) EndFrame() { in.just = make(map[render.Key]bool) }

// IsKeyPressed reports whether key is held or was tapped this frame.
func (in *Input) IsKeyPressed(key render.Key) bool {
	return in.held[key] || in.just[key]
}

// IsKeyJustPressed reports whether key went down this frame.
func (in *Input) IsKeyJustPressed(key render.Key) bool {
	return in.just[key]
}

// Loader serves images from a fixed set of paths and fails for the rest.
type Loader struct {
	Images map[string]*Image
}

// LoadImage returns the image registered at path.
func (l *Loader) LoadImage(path string) (render.Image, error) {
	if img, ok := l.Images[path]; ok {
		return img, nil
	}
	return nil, &os.PathError{Op: "open", Path: path, Err: errors.New("no such file or directory")}
}

// GeoM accumulates translation and scale.
type GeoM struct {
	TX, TY float64
	SX, SY float64
}

func init() {
	if render.NewGeoM == nil {
		render.NewGeoM = func() render.GeoM { return &GeoM{SX: 1, SY: 1} }
	}
}

// Translate shifts by (tx, ty).
func (g *GeoM) Translate(tx, ty float64) {
	g.TX += tx
	g.TY += ty
}

// Scale scales the current transform.
func (g *GeoM) Scale(sx, sy float64) {
	g.SX *= sx
	g.SY *= sy
	g.TX *= sx
	g.TY *= sy
}

// Reset restores the identity.
func (g *GeoM) Reset() {
	*g = GeoM{SX: 1, SY: 1}
}
