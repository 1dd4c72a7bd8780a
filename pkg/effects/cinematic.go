package effects

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// letterboxFraction is the screen fraction each bar covers when fully
// extended.
const letterboxFraction = 0.2

// letterboxSlideSeconds is how long the bars take to slide in or out.
const letterboxSlideSeconds = 0.5

// Letterbox draws the black cinematic bars over the top and bottom of
// the screen. The bars ease in and out instead of popping.
type Letterbox struct {
	enabled  bool
	coverage float32 // 0 = hidden, 1 = fully extended
	tween    *gween.Tween
}

// NewLetterbox creates a hidden letterbox.
func NewLetterbox() *Letterbox {
	return &Letterbox{}
}

// SetEnabled starts sliding the bars in (true) or out (false).
func (l *Letterbox) SetEnabled(on bool) {
	if l.enabled == on {
		return
	}
	l.enabled = on
	target := float32(0)
	if on {
		target = 1
	}
	l.tween = gween.New(l.coverage, target, letterboxSlideSeconds, ease.OutQuad)
}

// Enabled reports whether the bars are (or are becoming) visible.
func (l *Letterbox) Enabled() bool {
	return l.enabled
}

// Coverage returns the current bar extension, 0..1.
func (l *Letterbox) Coverage() float64 {
	return float64(l.coverage)
}

// Update advances the slide animation by dt seconds.
func (l *Letterbox) Update(dt float64) {
	if l.tween == nil {
		return
	}
	value, done := l.tween.Update(float32(dt))
	l.coverage = value
	if done {
		l.tween = nil
	}
}

// Render draws the bars onto dst. Nothing is drawn while fully hidden.
func (l *Letterbox) Render(dst *ebiten.Image) {
	if l.coverage <= 0 {
		return
	}

	bounds := dst.Bounds()
	w := float32(bounds.Dx())
	h := float32(bounds.Dy())
	barHeight := h * letterboxFraction * l.coverage

	black := color.RGBA{A: 0xff}
	vector.DrawFilledRect(dst, 0, 0, w, barHeight, black, false)
	vector.DrawFilledRect(dst, 0, h-barHeight, w, barHeight, black, false)
}
