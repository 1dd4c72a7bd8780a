// Package effects implements the special-effects engine: the effect
// template catalog, the two layered pools of live effect instances,
// the camera-shake simulator with coupled haptics, motion trails and
// their colour catalog, and the cinematic letterbox.
//
// Everything in this package runs on the single render/update
// goroutine; no synchronization is needed or provided.
package effects

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/wrenkin/starfx/internal/spfxdata"
)

// Color is a normalized RGBA colour used by trails.
type Color struct {
	R, G, B, A float64
}

// Sprite is a sprite sheet cut into a grid of animation frames.
type Sprite interface {
	// GridSize returns frames per row and the number of rows.
	GridSize() (sx, sy int)
	// Frame returns the sub-image for the given grid cell.
	Frame(fx, fy int) *ebiten.Image
	// Release frees the underlying image data.
	Release()
}

// SpriteLoader resolves a sprite reference from the data files into a
// usable sprite sheet. pkg/game's ResourceManager provides the real
// implementation.
type SpriteLoader func(path string, sx, sy int) (Sprite, error)

// Template is one immutable effect definition: timing plus art.
type Template struct {
	Name string
	TTL  float64 // time to live in seconds
	Anim float64 // animation duration in seconds

	Sprite Sprite
}

// Catalog is the loaded-once table of effect templates.
type Catalog struct {
	templates []Template
}

// LoadCatalog builds the effect catalog from parsed data records.
//
// Durations arrive in milliseconds and are converted to seconds. A
// missing ttl defaults to the animation duration. Degenerate records
// (zero durations, missing or unloadable sprite) are warned about but
// kept, so they time out or render as nothing instead of failing the
// load.
func LoadCatalog(doc *spfxdata.EffectDoc, load SpriteLoader) *Catalog {
	c := &Catalog{templates: make([]Template, 0, len(doc.Effects))}

	for _, def := range doc.Effects {
		tpl := Template{
			Name: def.Name,
			Anim: def.AnimMs / 1000.0,
			TTL:  def.TTLMs / 1000.0,
		}
		if tpl.TTL == 0 {
			tpl.TTL = tpl.Anim
		}

		if def.Sprite != nil && load != nil {
			sprite, err := load(def.Sprite.Image, def.Sprite.SX, def.Sprite.SY)
			if err != nil {
				log.Printf("[EffectCatalog] Warning: effect '%s': failed to load sprite '%s': %v",
					def.Name, def.Sprite.Image, err)
			} else {
				tpl.Sprite = sprite
			}
		}

		if tpl.Anim == 0 {
			log.Printf("[EffectCatalog] Warning: effect '%s' missing/invalid 'anim' element", def.Name)
		}
		if tpl.TTL == 0 {
			log.Printf("[EffectCatalog] Warning: effect '%s' missing/invalid 'ttl' element", def.Name)
		}
		if tpl.Sprite == nil {
			log.Printf("[EffectCatalog] Warning: effect '%s' missing/invalid 'gfx' element", def.Name)
		}

		c.templates = append(c.templates, tpl)
	}

	return c
}

// Lookup finds an effect template id by name with a linear scan.
// The boolean is false when no template matches; callers decide
// whether a miss matters.
func (c *Catalog) Lookup(name string) (int, bool) {
	for i := range c.templates {
		if c.templates[i].Name == name {
			return i, true
		}
	}
	return -1, false
}

// Len returns the number of loaded templates.
func (c *Catalog) Len() int {
	return len(c.templates)
}

// Template returns the template at id. The id must come from Lookup
// or otherwise be in range.
func (c *Catalog) Template(id int) *Template {
	return &c.templates[id]
}

// Free releases all template sprite resources and empties the catalog.
func (c *Catalog) Free() {
	for i := range c.templates {
		if c.templates[i].Sprite != nil {
			c.templates[i].Sprite.Release()
			c.templates[i].Sprite = nil
		}
	}
	c.templates = nil
}
