package effects

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// Viewport is the shared view transform all world-space rendering goes
// through. The shake simulator applies its offset here inside the
// Begin/End frame bracket; the bracket must leave the transform
// untouched across frame boundaries, so a second Apply without a Reset
// in between is refused.
type Viewport struct {
	base ebiten.GeoM

	offX, offY float64
	shaken     bool
}

// NewViewport creates a viewport with an identity base transform.
func NewViewport() *Viewport {
	return &Viewport{}
}

// SetBase replaces the base camera transform. The shake offset, if
// any, stays applied on top of it.
func (v *Viewport) SetBase(g ebiten.GeoM) {
	v.base = g
}

// Apply adds a translation offset on top of the base transform.
func (v *Viewport) Apply(x, y float64) {
	if v.shaken {
		log.Printf("[Viewport] Warning: shake offset applied twice without reset")
		return
	}
	v.offX, v.offY = x, y
	v.shaken = true
}

// Reset removes the applied offset. Resetting an untouched viewport is
// a no-op.
func (v *Viewport) Reset() {
	v.offX, v.offY = 0, 0
	v.shaken = false
}

// Shaken reports whether an offset is currently applied.
func (v *Viewport) Shaken() bool {
	return v.shaken
}

// GeoM returns the effective view transform for this frame.
func (v *Viewport) GeoM() ebiten.GeoM {
	g := v.base
	if v.shaken {
		g.Translate(v.offX, v.offY)
	}
	return g
}
