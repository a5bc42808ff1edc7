// Package assets looks up images, sounds and fonts by name under an asset
// directory. Missing assets never fail the game: images and sounds come
// back nil, fonts fall back to Go Regular, and known sprites can be
// generated as placeholders.
package assets

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"chosenoffset.com/outbreak/internal/render"
)

// DefaultFontSize is used when a font is requested with a non-positive size.
const DefaultFontSize = 18

// Loader resolves asset names relative to a root directory.
type Loader struct {
	root     string
	images   render.ResourceLoader
	renderer render.Renderer

	imageCache  map[string]render.Image
	spriteCache map[string]render.Image
	soundCache  map[string]*beep.Buffer
}

// NewLoader creates a loader for root. images decodes image files and r
// uploads generated placeholders; either may be nil, which disables that
// source.
func NewLoader(root string, images render.ResourceLoader, r render.Renderer) *Loader {
	return &Loader{
		root:        root,
		images:      images,
		renderer:    r,
		imageCache:  make(map[string]render.Image),
		spriteCache: make(map[string]render.Image),
		soundCache:  make(map[string]*beep.Buffer),
	}
}

// Path returns the file path of an asset name.
func (l *Loader) Path(name string) string {
	return filepath.Join(l.root, name)
}

// LoadImage loads an image by name. It returns nil, and logs why, when the
// image cannot be loaded.
func (l *Loader) LoadImage(name string) render.Image {
	if img, ok := l.imageCache[name]; ok {
		return img
	}
	if l.images == nil {
		return nil
	}

	img, err := l.images.LoadImage(l.Path(name))
	if err != nil {
		log.Printf("Image %s unavailable: %v", name, err)
		img = nil
	}
	l.imageCache[name] = img
	return img
}

// Sprite returns the image for name, generating a placeholder when the
// file is missing. It returns nil only for unknown names without a file.
func (l *Loader) Sprite(name string) render.Image {
	if img, ok := l.spriteCache[name]; ok {
		return img
	}

	img := l.LoadImage(name)
	if img == nil && l.renderer != nil {
		if rgba, ok := Placeholder(name); ok {
			img = l.renderer.NewImageFromImage(rgba)
		}
	}
	l.spriteCache[name] = img
	return img
}

// LoadSound decodes a WAV file into a replayable buffer. It returns nil,
// and logs why, when the sound cannot be loaded.
func (l *Loader) LoadSound(name string) *beep.Buffer {
	if buf, ok := l.soundCache[name]; ok {
		return buf
	}

	buf, err := l.decodeSound(name)
	if err != nil {
		log.Printf("Sound %s unavailable: %v", name, err)
		buf = nil
	}
	l.soundCache[name] = buf
	return buf
}

func (l *Loader) decodeSound(name string) (*beep.Buffer, error) {
	f, err := os.Open(l.Path(name))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	streamer, format, err := wav.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode wav: %w", err)
	}
	defer streamer.Close()

	buf := beep.NewBuffer(format)
	buf.Append(streamer)
	return buf, nil
}

// LoadFont loads a TrueType or OpenType font by name at size points. An
// empty name or an unreadable file yields Go Regular at the same size.
func (l *Loader) LoadFont(name string, size float64) font.Face {
	if size <= 0 {
		size = DefaultFontSize
	}
	if name != "" {
		face, err := l.parseFont(l.Path(name), size)
		if err == nil {
			return face
		}
		log.Printf("Font %s unavailable, using default: %v", name, err)
	}

	face, err := DefaultFont(size)
	if err != nil {
		log.Printf("Default font unavailable: %v", err)
		return nil
	}
	return face
}

func (l *Loader) parseFont(path string, size float64) (font.Face, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return newFace(data, size)
}

// DefaultFont returns Go Regular at size points.
func DefaultFont(size float64) (font.Face, error) {
	return newFace(goregular.TTF, size)
}

func newFace(data []byte, size float64) (font.Face, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create font face: %w", err)
	}
	return face, nil
}
