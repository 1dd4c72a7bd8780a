package effects

import (
	"log"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
)

// Layer selects one of the two independent effect pools. Back-layer
// effects draw under game objects, front-layer effects draw over them.
type Layer int

const (
	LayerBack Layer = iota
	LayerFront
)

// instance is one live, positioned occurrence of a template.
type instance struct {
	effect int // catalog template id

	posX, posY float64
	velX, velY float64

	timer     float64 // remaining time in seconds
	lastFrame int     // frame cache, reused while paused
}

// Manager owns the front and back effect pools and drives their
// lifecycle: spawn, per-tick integration, expiry removal and
// draw-order iteration.
type Manager struct {
	catalog *Catalog

	front []instance
	back  []instance

	paused bool
}

// NewManager creates an effect pool manager over a loaded catalog.
func NewManager(catalog *Catalog) *Manager {
	return &Manager{catalog: catalog}
}

// SetPaused freezes frame selection during rendering. Simulation time
// is expected to stop flowing while paused, so instances neither move
// nor expire.
func (m *Manager) SetPaused(paused bool) {
	m.paused = paused
}

// Spawn adds a new effect instance to the chosen layer.
//
// When ttl differs from the animation duration the instance timer is
// randomized within [ttl, ttl+anim) so looping effects die at
// different points of their animation cycle.
func (m *Manager) Spawn(effect int, posX, posY, velX, velY float64, layer Layer) {
	if effect < 0 || effect >= m.catalog.Len() {
		log.Printf("[EffectPool] Warning: trying to spawn effect with invalid id %d", effect)
		return
	}

	var pool *[]instance
	switch layer {
	case LayerFront:
		pool = &m.front
	case LayerBack:
		pool = &m.back
	default:
		log.Printf("[EffectPool] Warning: invalid effect layer %d", layer)
		return
	}

	tpl := m.catalog.Template(effect)
	inst := instance{
		effect: effect,
		posX:   posX,
		posY:   posY,
		velX:   velX,
		velY:   velY,
	}
	if tpl.TTL != tpl.Anim {
		inst.timer = tpl.TTL + rand.Float64()*tpl.Anim
	} else {
		inst.timer = tpl.TTL
	}

	*pool = append(*pool, inst)
}

// Update advances both layers by dt seconds.
func (m *Manager) Update(dt float64) {
	m.front = updateLayer(m.front, dt)
	m.back = updateLayer(m.back, dt)
}

// updateLayer integrates one pool, compacting survivors in place with
// a write cursor so removal is safe while iterating.
func updateLayer(pool []instance, dt float64) []instance {
	w := 0
	for i := range pool {
		inst := pool[i]
		inst.timer -= dt
		if inst.timer < 0 {
			continue // expired
		}
		inst.posX += inst.velX * dt
		inst.posY += inst.velY * dt
		pool[w] = inst
		w++
	}
	return pool[:w]
}

// Clear empties both instance pools. Templates stay loaded.
func (m *Manager) Clear() {
	m.front = m.front[:0]
	m.back = m.back[:0]
}

// Len returns the number of live instances in a layer.
func (m *Manager) Len(layer Layer) int {
	if layer == LayerFront {
		return len(m.front)
	}
	return len(m.back)
}

// Render draws all live instances of a layer onto dst, in reverse
// insertion order so overlapping effects keep a stable z-order.
// The viewport carries the camera/shake transform; nil means identity.
func (m *Manager) Render(dst *ebiten.Image, layer Layer, view *Viewport) {
	var pool []instance
	switch layer {
	case LayerFront:
		pool = m.front
	case LayerBack:
		pool = m.back
	default:
		log.Printf("[EffectPool] Warning: rendering invalid effect layer %d", layer)
		return
	}

	for i := len(pool) - 1; i >= 0; i-- {
		inst := &pool[i]
		tpl := m.catalog.Template(inst.effect)
		if tpl.Sprite == nil || tpl.Anim <= 0 {
			continue // degenerate template, nothing to draw
		}

		sx, sy := tpl.Sprite.GridSize()
		frame := m.selectFrame(inst, tpl, sx, sy)

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(inst.posX, inst.posY)
		if view != nil {
			op.GeoM.Concat(view.GeoM())
		}
		dst.DrawImage(tpl.Sprite.Frame(frame%sx, frame/sx), op)
	}
}

// selectFrame computes the current animation frame of an instance and
// caches it. While paused the cached frame is reused so the animation
// freezes instead of drifting.
func (m *Manager) selectFrame(inst *instance, tpl *Template, sx, sy int) int {
	if !m.paused {
		inst.lastFrame = FrameIndex(inst.timer, tpl.Anim, sx, sy)
	}
	return inst.lastFrame
}

// FrameIndex maps a remaining-time value onto a sprite sheet frame.
// Progress runs 0..1 over one animation cycle of the timer.
func FrameIndex(timer, anim float64, sx, sy int) int {
	progress := 1.0 - math.Mod(timer, anim)/anim
	frame := int(float64(sx*sy) * math.Min(progress, 1.0))
	if frame >= sx*sy {
		frame = sx*sy - 1 // progress can reach exactly 1.0
	}
	return frame
}
