package effects

import (
	"log"

	"github.com/wrenkin/starfx/internal/spfxdata"
)

// TrailState selects which colour of a set a trail point uses.
type TrailState int

const (
	TrailIdle TrailState = iota
	TrailGlow
	TrailAfterburn
	TrailJumping
)

// TrailColorSet is an immutable named colour preset for the four trail
// states.
type TrailColorSet struct {
	Name string

	Idle      Color
	Glow      Color
	Afterburn Color
	Jumping   Color
}

// Color returns the colour for a state.
func (s *TrailColorSet) Color(state TrailState) Color {
	switch state {
	case TrailGlow:
		return s.Glow
	case TrailAfterburn:
		return s.Afterburn
	case TrailJumping:
		return s.Jumping
	default:
		return s.Idle
	}
}

// TrailColors is the loaded-once table of trail colour presets.
type TrailColors struct {
	sets []TrailColorSet
}

// LoadTrailColors builds the colour catalog from parsed data records.
// Missing state colours stay zero-initialized.
func LoadTrailColors(doc *spfxdata.TrailDoc) *TrailColors {
	tc := &TrailColors{sets: make([]TrailColorSet, 0, len(doc.Trails))}
	for _, def := range doc.Trails {
		tc.sets = append(tc.sets, TrailColorSet{
			Name:      def.ID,
			Idle:      toColor(def.Idle),
			Glow:      toColor(def.Glow),
			Afterburn: toColor(def.Afterburn),
			Jumping:   toColor(def.Jumping),
		})
	}
	return tc
}

func toColor(c spfxdata.RGBA) Color {
	return Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

// Lookup finds a colour set id by name with a linear scan. A miss is
// non-fatal: it logs a warning and returns -1.
func (tc *TrailColors) Lookup(name string) int {
	for i := range tc.sets {
		if tc.sets[i].Name == name {
			return i
		}
	}
	log.Printf("[TrailColors] Warning: trail type '%s' not found", name)
	return -1
}

// Len returns the number of loaded colour sets.
func (tc *TrailColors) Len() int {
	return len(tc.sets)
}

// Set returns the colour set at id. The id must come from Lookup or
// otherwise be in range.
func (tc *TrailColors) Set(id int) *TrailColorSet {
	return &tc.sets[id]
}
