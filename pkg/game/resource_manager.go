// Package game holds the supporting infrastructure around the effects
// engine: resource loading and caching, persisted settings, and the
// process-wide game state.
package game

import (
	"fmt"
	"image"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/wrenkin/starfx/pkg/effects"
)

// ResourceManager loads and caches image assets. Resources are loaded
// once and reused; the caches are plain maps, so all loading must
// happen on the game goroutine.
type ResourceManager struct {
	baseDir    string
	imageCache map[string]*ebiten.Image
}

// NewResourceManager creates a resource manager rooted at baseDir.
// All load paths are resolved relative to it.
func NewResourceManager(baseDir string) *ResourceManager {
	return &ResourceManager{
		baseDir:    baseDir,
		imageCache: make(map[string]*ebiten.Image),
	}
}

// LoadImage loads and caches an image file. Supported formats are PNG
// and JPEG.
func (rm *ResourceManager) LoadImage(path string) (*ebiten.Image, error) {
	if img, ok := rm.imageCache[path]; ok {
		return img, nil
	}

	f, err := os.Open(filepath.Join(rm.baseDir, path))
	if err != nil {
		return nil, fmt.Errorf("failed to open image %s: %w", path, err)
	}
	defer f.Close()

	decoded, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	img := ebiten.NewImageFromImage(decoded)
	rm.imageCache[path] = img
	return img, nil
}

// LoadSpriteSheet loads an image and cuts it into an sx by sy frame
// grid. It satisfies effects.SpriteLoader.
func (rm *ResourceManager) LoadSpriteSheet(path string, sx, sy int) (effects.Sprite, error) {
	if sx <= 0 || sy <= 0 {
		return nil, fmt.Errorf("sprite sheet %s has invalid grid %dx%d", path, sx, sy)
	}

	img, err := rm.LoadImage(path)
	if err != nil {
		return nil, err
	}
	return NewSpriteSheet(img, sx, sy), nil
}

// SpriteSheet is an image cut into a grid of equally sized frames.
type SpriteSheet struct {
	img    *ebiten.Image
	sx, sy int
	fw, fh int // frame size in pixels
}

// NewSpriteSheet wraps img as an sx by sy frame grid.
func NewSpriteSheet(img *ebiten.Image, sx, sy int) *SpriteSheet {
	bounds := img.Bounds()
	return &SpriteSheet{
		img: img,
		sx:  sx,
		sy:  sy,
		fw:  bounds.Dx() / sx,
		fh:  bounds.Dy() / sy,
	}
}

// GridSize implements effects.Sprite.
func (s *SpriteSheet) GridSize() (int, int) {
	return s.sx, s.sy
}

// Frame implements effects.Sprite, returning the sub-image of grid
// cell (fx, fy).
func (s *SpriteSheet) Frame(fx, fy int) *ebiten.Image {
	min := s.img.Bounds().Min
	rect := image.Rect(
		min.X+fx*s.fw, min.Y+fy*s.fh,
		min.X+(fx+1)*s.fw, min.Y+(fy+1)*s.fh,
	)
	return s.img.SubImage(rect).(*ebiten.Image)
}

// Release implements effects.Sprite, freeing the pixel data.
func (s *SpriteSheet) Release() {
	if s.img != nil {
		s.img.Deallocate()
		s.img = nil
	}
}
