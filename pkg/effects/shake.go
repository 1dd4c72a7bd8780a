package effects

import (
	"log"
	"math"
	"math/rand"
	"time"

	"github.com/aquilax/go-perlin"
)

// Spring parameters of the shake model: a critically-near-damped 2D
// spring anchored at the origin. The damping constant is chosen so the
// camera settles quickly without visible oscillation.
const (
	shakeMass = 1.0 / 400.0 // virtual mass
	shakeK    = 1.0 / 50.0  // spring stiffness

	// ShakeDecay is how fast the external force modifier decays, per
	// second of simulated time.
	ShakeDecay = 0.3

	// ShakeMax caps the accumulated force modifier.
	ShakeMax = 1.0

	// settleThreshold is the position/velocity magnitude under which
	// an unforced spring is considered at rest.
	settleThreshold = 0.01

	// shakeMaxStep is the largest integration step the spring is
	// stable at. Frames longer than this are sub-stepped.
	shakeMaxStep = 1.0 / 10.0

	// hapticUpdateInterval throttles device effect updates, in real
	// (non-paused) seconds.
	hapticUpdateInterval = 0.1
)

// shakeB is the damping constant, kept near critical damping.
var shakeB = 3.0 * math.Sqrt(shakeK*shakeMass)

// NoiseSource provides 1D coherent noise for the shake direction. It
// is an interface so tests can substitute a deterministic stub.
type NoiseSource interface {
	// Noise1D samples the noise function at phase x.
	Noise1D(x float64) float64
}

// perlinNoise adapts go-perlin to NoiseSource.
type perlinNoise struct {
	p *perlin.Perlin
}

func (n perlinNoise) Noise1D(x float64) float64 {
	return n.p.Noise1D(x)
}

// NewPerlinNoise returns the default coherent-noise source used for
// the shake direction.
func NewPerlinNoise(seed int64) NoiseSource {
	return perlinNoise{p: perlin.NewPerlin(2, 2, 3, seed)}
}

// ShakeSimulator produces a 2D camera offset from a damped spring
// driven by decaying external force whose direction wanders along a
// coherent-noise curve. It optionally couples a haptic rumble device.
//
// One simulator is owned by the render loop; all methods must be
// called from that single goroutine.
type ShakeSimulator struct {
	posX, posY float64 // spring state
	velX, velY float64

	forceMod float64 // decaying external force magnitude
	forceAng float64 // noise phase driving the force direction

	active    bool // simulator has work to do
	committed bool // current frame applied an offset

	view  *Viewport
	noise NoiseSource

	rumbler        Rumbler
	hapticCooldown float64
}

// NewShakeSimulator creates a simulator writing its offset into view.
// rumbler may be nil for visual-only shake.
func NewShakeSimulator(view *Viewport, noise NoiseSource, rumbler Rumbler) *ShakeSimulator {
	if noise == nil {
		noise = NewPerlinNoise(time.Now().UnixNano())
	}
	return &ShakeSimulator{
		view:    view,
		noise:   noise,
		rumbler: rumbler,
	}
}

// Shake increases the current rumble level. The force decays over
// time, so repeated impacts stack up to the cap.
func (s *ShakeSimulator) Shake(mod float64) {
	s.forceMod += mod
	if s.forceMod > ShakeMax {
		s.forceMod = ShakeMax
	}

	// Request the device update before flipping active: a shake from
	// rest skips the device, the follow-up calls drive it.
	s.requestRumble(mod)

	s.active = true
}

// Clear resets all shake state to rest.
func (s *ShakeSimulator) Clear() {
	s.active = false
	s.forceMod = 0
	s.posX, s.posY = 0, 0
	s.velX, s.velY = 0, 0
}

// Active reports whether the spring still has work to do.
func (s *ShakeSimulator) Active() bool {
	return s.active
}

// Offset returns the current shake offset, (0,0) when inactive.
func (s *ShakeSimulator) Offset() (x, y float64) {
	if !s.active {
		return 0, 0
	}
	return s.posX, s.posY
}

// step advances the spring by a single dt. dt must be at most
// shakeMaxStep for the explicit integrator to stay stable; Begin
// enforces that.
func (s *ShakeSimulator) step(dt float64) {
	if !s.active {
		return
	}

	// The external force decays linearly until exhausted.
	forced := false
	if s.forceMod > 0 {
		s.forceMod -= ShakeDecay * dt
		if s.forceMod < 0 {
			s.forceMod = 0
		} else {
			forced = true
		}
	}

	// Settlement: unforced and close enough to rest.
	mod := math.Hypot(s.posX, s.posY)
	vmod := math.Hypot(s.velX, s.velY)
	if !forced && mod < settleThreshold && vmod < settleThreshold {
		s.active = false
		s.posX, s.posY = 0, 0
		s.velX, s.velY = 0, 0
		if s.forceAng > 1e3 {
			// Keep the noise phase from growing without bound.
			s.forceAng = rand.Float64()
		}
		return
	}

	// Restoring spring force.
	forceX := -shakeK*s.posX - shakeB*s.velX
	forceY := -shakeK*s.posY - shakeB*s.velY

	// Perturbation force along a smoothly wandering direction.
	if forced {
		s.forceAng += dt
		angle := s.noise.Noise1D(s.forceAng) * 5.0 * math.Pi
		forceX += s.forceMod * math.Cos(angle)
		forceY += s.forceMod * math.Sin(angle)
	}

	// Semi-implicit Euler: velocity first, then position.
	s.velX += (1.0 / shakeMass) * forceX * dt
	s.velY += (1.0 / shakeMass) * forceY * dt
	s.posX += s.velX * dt
	s.posY += s.velY * dt
}

// Begin opens the per-frame shake bracket. It advances the spring by
// dt using fixed sub-steps so the integrator stays stable at low frame
// rates, then applies the resulting offset to the shared viewport.
//
// realDt is wall-clock time and keeps flowing while the simulation is
// paused; only the haptic cooldown consumes it. Every Begin that
// applies an offset must be matched by exactly one End before the next
// Begin.
func (s *ShakeSimulator) Begin(dt, realDt float64) {
	s.committed = false
	if !s.active {
		return
	}

	if s.hapticCooldown > 0 {
		s.hapticCooldown -= realDt
	}

	ddt := dt
	for ddt > shakeMaxStep {
		s.step(shakeMaxStep)
		ddt -= shakeMaxStep
	}
	s.step(ddt) // leftover partial step

	s.view.Apply(s.posX, s.posY)
	s.committed = true
}

// End closes the frame bracket, reverting the viewport offset applied
// by Begin. A frame that applied no offset ends as a no-op.
func (s *ShakeSimulator) End() {
	if !s.committed {
		return
	}
	s.view.Reset()
	s.committed = false
}

// requestRumble forwards the current shake level to the haptic device,
// throttled to one update per interval of real time. Large single
// increments skip the update since the running effect already covers
// them.
func (s *ShakeSimulator) requestRumble(mod float64) {
	if s.rumbler == nil {
		return
	}
	if s.hapticCooldown > 0 || !s.active || mod > ShakeMax/3 {
		return
	}

	magnitude := s.forceMod / ShakeMax
	duration := time.Duration(1000.0*s.forceMod/ShakeDecay) * time.Millisecond

	if err := s.rumbler.Rumble(magnitude, duration); err != nil {
		// Best effort: device trouble degrades to visual-only shake.
		log.Printf("[ShakeSimulator] Warning: failed to update haptic effect: %v", err)
		s.rumbler = nil
		return
	}

	s.hapticCooldown += hapticUpdateInterval
}
