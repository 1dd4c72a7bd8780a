package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// EffectSettings are the player-facing knobs of the effects engine.
// They are global, not per-save.
type EffectSettings struct {
	// ShakeEnabled turns the camera-shake simulation on or off
	// entirely (accessibility: reduce motion).
	ShakeEnabled bool `yaml:"shakeEnabled"`
	// ShakeIntensity scales every shake impulse, 0.0 ~ 1.0.
	ShakeIntensity float64 `yaml:"shakeIntensity"`
	// HapticsEnabled couples shake to the gamepad rumble motors.
	HapticsEnabled bool `yaml:"hapticsEnabled"`
}

// DefaultSettings returns the default effect settings.
func DefaultSettings() *EffectSettings {
	return &EffectSettings{
		ShakeEnabled:   true,
		ShakeIntensity: 1.0,
		HapticsEnabled: true,
	}
}

// Storage keys within the gdata store.
const (
	settingsObject   = "settings"
	settingsProperty = "effects"
)

// SettingsManager loads and saves effect settings through a gdata
// cross-platform store. A nil manager degrades to in-memory defaults.
type SettingsManager struct {
	gdataManager *gdata.Manager
	settings     *EffectSettings
}

// NewSettingsManager creates a settings manager and loads any
// previously saved settings. A failed load is not fatal; defaults are
// used instead.
func NewSettingsManager(gdataManager *gdata.Manager) (*SettingsManager, error) {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultSettings(),
	}

	if err := sm.Load(); err != nil {
		log.Printf("[SettingsManager] Warning: failed to load settings: %v (using defaults)", err)
	}

	return sm, nil
}

// Load reads settings from the store. Missing store or missing data
// falls back to defaults without error.
func (sm *SettingsManager) Load() error {
	if sm.gdataManager == nil {
		sm.settings = DefaultSettings()
		return nil
	}

	if !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		sm.settings = DefaultSettings()
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to load settings: %w", err)
	}

	var loaded EffectSettings
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	sm.settings = &loaded
	return nil
}

// Save persists the current settings. In degraded mode (nil store)
// Save is a silent no-op.
func (sm *SettingsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	return nil
}

// GetSettings returns the current settings instance.
func (sm *SettingsManager) GetSettings() *EffectSettings {
	return sm.settings
}

// SetShakeEnabled toggles the shake simulation. Call Save to persist.
func (sm *SettingsManager) SetShakeEnabled(enabled bool) {
	sm.settings.ShakeEnabled = enabled
}

// SetShakeIntensity sets the shake impulse scale, clamped to 0.0 ~ 1.0.
// Call Save to persist.
func (sm *SettingsManager) SetShakeIntensity(intensity float64) {
	if intensity < 0 {
		intensity = 0
	} else if intensity > 1 {
		intensity = 1
	}
	sm.settings.ShakeIntensity = intensity
}

// SetHapticsEnabled toggles the haptic coupling. Call Save to persist.
func (sm *SettingsManager) SetHapticsEnabled(enabled bool) {
	sm.settings.HapticsEnabled = enabled
}
