package game

// GameState stores the global game state shared across systems.
type GameState struct {
	// Paused stops simulated time: effects neither move nor expire,
	// and animation frames freeze. Real time (haptic cooldowns) keeps
	// flowing.
	Paused bool

	settingsManager *SettingsManager
}

var globalGameState *GameState

// GetGameState returns the global GameState singleton, creating it on
// first use.
func GetGameState() *GameState {
	if globalGameState == nil {
		globalGameState = &GameState{}
	}
	return globalGameState
}

// TogglePause flips the pause state and returns the new value.
func (gs *GameState) TogglePause() bool {
	gs.Paused = !gs.Paused
	return gs.Paused
}

// SetSettingsManager attaches the settings manager.
func (gs *GameState) SetSettingsManager(sm *SettingsManager) {
	gs.settingsManager = sm
}

// GetSettingsManager returns the attached settings manager, or nil.
func (gs *GameState) GetSettingsManager() *SettingsManager {
	return gs.settingsManager
}
