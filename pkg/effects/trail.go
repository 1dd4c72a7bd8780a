package effects

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Trail growth/retention tuning. New control points are requested once
// the newest point is older than trailGrowAge; points older than
// trailMaxAge are trimmed away.
const (
	trailGrowAge = 2.0
	trailMaxAge  = 50.0
)

// TrailPoint is one time-stamped, coloured control point of a trail.
type TrailPoint struct {
	X, Y  float64
	Color Color
	Age   float64 // seconds since the point was added
}

// Trail is a persistent motion trail: an ordered sequence of control
// points, oldest first, that grows at the tail and decays at the head.
// Used for engine exhaust and similar ribbons.
type Trail struct {
	points []TrailPoint
}

// NewTrail creates an empty trail.
func NewTrail() *Trail {
	return &Trail{points: make([]TrailPoint, 0, 32)}
}

// Grow appends a new control point with age zero at the tail.
func (t *Trail) Grow(x, y float64, col Color) {
	t.points = append(t.points, TrailPoint{X: x, Y: y, Color: col})
}

// Update ages every point by dt and trims outdated points from the
// head. It returns true when the caller should Grow the trail again:
// either the trail is empty and needs seeding, or the newest point has
// drifted too far into the past to keep the ribbon dense.
func (t *Trail) Update(dt float64) bool {
	if len(t.points) == 0 {
		return true
	}

	for i := range t.points {
		t.points[i].Age += dt
	}

	grow := t.points[len(t.points)-1].Age > trailGrowAge

	// Single contiguous head trim: the first over-age point found
	// scanning tail-to-head takes everything before it (and itself)
	// with it. Ages are ordered by construction, so one cut suffices.
	for i := len(t.points) - 1; i >= 0; i-- {
		if t.points[i].Age > trailMaxAge {
			t.points = append(t.points[:0], t.points[i+1:]...)
			break
		}
	}

	return grow
}

// Len returns the number of control points.
func (t *Trail) Len() int {
	return len(t.points)
}

// Points exposes the control points, oldest first, for rendering.
func (t *Trail) Points() []TrailPoint {
	return t.points
}

// Clear discards all points.
func (t *Trail) Clear() {
	t.points = t.points[:0]
}

// Render draws the trail as a ribbon of fading circles, oldest points
// smallest and most transparent. The viewport carries the camera/shake
// transform; nil means identity.
func (t *Trail) Render(dst *ebiten.Image, view *Viewport) {
	for i := range t.points {
		p := &t.points[i]

		fade := 1.0 - p.Age/trailMaxAge
		if fade <= 0 {
			continue
		}

		x, y := p.X, p.Y
		if view != nil {
			g := view.GeoM()
			x, y = g.Apply(x, y)
		}

		radius := float32(1.0 + 3.0*fade)
		vector.DrawFilledCircle(dst, float32(x), float32(y), radius, color.RGBA{
			R: uint8(255 * p.Color.R * fade),
			G: uint8(255 * p.Color.G * fade),
			B: uint8(255 * p.Color.B * fade),
			A: uint8(255 * p.Color.A * fade),
		}, true)
	}
}
