package effects

import (
	"errors"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// ErrNoDevice is returned when no force-feedback capable device is
// connected.
var ErrNoDevice = errors.New("no haptic device connected")

// Rumbler plays a rumble effect on a haptic device. Implementations
// are best effort: a returned error disables the coupling and the
// shake stays visual-only.
type Rumbler interface {
	// Rumble restarts the device effect with the given magnitude
	// (0..1) and duration.
	Rumble(magnitude float64, duration time.Duration) error
}

// maxRumbleDuration caps a single device effect; the simulator
// refreshes long rumbles on its update interval anyway.
const maxRumbleDuration = 5 * time.Second

// GamepadRumbler drives the vibration motors of the first connected
// gamepad.
type GamepadRumbler struct {
	ids []ebiten.GamepadID
}

// NewGamepadRumbler creates a gamepad-backed rumbler.
func NewGamepadRumbler() *GamepadRumbler {
	return &GamepadRumbler{}
}

// Rumble implements Rumbler. The strong motor carries the effect, the
// weak motor runs at half magnitude for texture.
func (r *GamepadRumbler) Rumble(magnitude float64, duration time.Duration) error {
	r.ids = ebiten.AppendGamepadIDs(r.ids[:0])
	if len(r.ids) == 0 {
		return ErrNoDevice
	}

	if magnitude < 0 {
		magnitude = 0
	} else if magnitude > 1 {
		magnitude = 1
	}
	if duration > maxRumbleDuration {
		duration = maxRumbleDuration
	}

	ebiten.VibrateGamepad(r.ids[0], &ebiten.VibrateGamepadOptions{
		Duration:        duration,
		StrongMagnitude: magnitude,
		WeakMagnitude:   magnitude / 2,
	})
	return nil
}
