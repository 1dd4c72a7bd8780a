// Package spfxdata parses the YAML data files that describe special
// effects and trail colour sets. It only deals with the raw records;
// unit conversion and defaulting happen in pkg/effects when the
// catalogs are built.
package spfxdata

// RGBA is a colour record with normalized float components.
// Missing components stay zero-valued.
type RGBA struct {
	R float64 `yaml:"r"`
	G float64 `yaml:"g"`
	B float64 `yaml:"b"`
	A float64 `yaml:"a"`
}

// SpriteRef references a sprite sheet image and its frame grid.
type SpriteRef struct {
	Image string `yaml:"image"` // image path relative to the data dir
	SX    int    `yaml:"sx"`    // frames per row
	SY    int    `yaml:"sy"`    // frame rows
}

// EffectDef is one effect template record. Durations are expressed in
// milliseconds in the data files.
type EffectDef struct {
	Name   string     `yaml:"name"`
	AnimMs float64    `yaml:"anim"` // animation duration in ms
	TTLMs  float64    `yaml:"ttl"`  // time to live in ms, defaults to anim
	Sprite *SpriteRef `yaml:"gfx"`
}

// EffectDoc is the root of an effects data file.
type EffectDoc struct {
	Effects []EffectDef `yaml:"effects"`
}

// TrailColorDef is one named trail colour set. Each of the four state
// colours is optional and defaults to a zero-initialized colour.
type TrailColorDef struct {
	ID        string `yaml:"id"`
	Idle      RGBA   `yaml:"idle"`
	Glow      RGBA   `yaml:"glow"`
	Afterburn RGBA   `yaml:"afterburn"`
	Jumping   RGBA   `yaml:"jumping"`
}

// TrailDoc is the root of a trail colour data file.
type TrailDoc struct {
	Trails []TrailColorDef `yaml:"trails"`
}
