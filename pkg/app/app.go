// Package app wires the effects engine into a small interactive demo
// game. It owns initialization, the per-frame bracket ordering, and
// the keyboard bindings that exercise each subsystem.
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"math"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/quasilyte/gdata/v2"

	"github.com/wrenkin/starfx/internal/spfxdata"
	"github.com/wrenkin/starfx/pkg/effects"
	"github.com/wrenkin/starfx/pkg/game"
)

const (
	screenWidth  = 800
	screenHeight = 600

	tickSeconds = 1.0 / 60.0
)

// Config defines the application startup options.
type Config struct {
	// Verbose enables log output.
	Verbose bool
	// DataDir is the directory holding effects.yaml, trails.yaml and
	// the sprite images they reference.
	DataDir string
}

// App is the demo game. It implements ebiten.Game.
type App struct {
	state    *game.GameState
	settings *game.SettingsManager

	catalog     *effects.Catalog
	pools       *effects.Manager
	shake       *effects.ShakeSimulator
	trailColors *effects.TrailColors
	view        *effects.Viewport
	letterbox   *effects.Letterbox

	trail         *effects.Trail
	trailColorSet int

	explosion int // cached effect id, -1 when unavailable

	shipX, shipY float64
	shipAngle    float64

	dt, realDt float64
}

// NewApp creates and initializes the demo application.
func NewApp(cfg Config) (*App, error) {
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	// Persisted settings; storage trouble degrades to defaults.
	gdataManager, err := gdata.Open(gdata.Config{AppName: "starfx"})
	if err != nil {
		log.Printf("[App] Warning: settings storage unavailable: %v", err)
		gdataManager = nil
	}
	settings, err := game.NewSettingsManager(gdataManager)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize settings: %w", err)
	}

	state := game.GetGameState()
	state.SetSettingsManager(settings)

	resources := game.NewResourceManager(cfg.DataDir)

	catalog, err := loadEffectCatalog(cfg.DataDir, resources)
	if err != nil {
		return nil, err
	}
	trailColors, err := loadTrailColors(cfg.DataDir)
	if err != nil {
		return nil, err
	}

	view := effects.NewViewport()

	var rumbler effects.Rumbler
	if settings.GetSettings().HapticsEnabled {
		rumbler = effects.NewGamepadRumbler()
	}
	shake := effects.NewShakeSimulator(view, nil, rumbler)

	a := &App{
		state:       state,
		settings:    settings,
		catalog:     catalog,
		pools:       effects.NewManager(catalog),
		shake:       shake,
		trailColors: trailColors,
		view:        view,
		letterbox:   effects.NewLetterbox(),
		trail:       effects.NewTrail(),
		shipX:       screenWidth / 2,
		shipY:       screenHeight / 2,
	}

	a.explosion, _ = catalog.Lookup("ExpM")
	a.trailColorSet = trailColors.Lookup("default")

	return a, nil
}

// loadEffectCatalog parses the effects data file and builds the
// catalog. A missing or malformed file is fatal to startup.
func loadEffectCatalog(dataDir string, resources *game.ResourceManager) (*effects.Catalog, error) {
	f, err := os.Open(filepath.Join(dataDir, "effects.yaml"))
	if err != nil {
		return nil, fmt.Errorf("failed to open effects data: %w", err)
	}
	defer f.Close()

	doc, err := spfxdata.ParseEffects(f)
	if err != nil {
		return nil, err
	}
	return effects.LoadCatalog(doc, resources.LoadSpriteSheet), nil
}

// loadTrailColors parses the trail colour data file.
func loadTrailColors(dataDir string) (*effects.TrailColors, error) {
	f, err := os.Open(filepath.Join(dataDir, "trails.yaml"))
	if err != nil {
		return nil, fmt.Errorf("failed to open trail data: %w", err)
	}
	defer f.Close()

	doc, err := spfxdata.ParseTrails(f)
	if err != nil {
		return nil, err
	}
	return effects.LoadTrailColors(doc), nil
}

// AddShake feeds an impulse into the shake simulator, honoring the
// player's intensity and reduce-motion settings.
func (a *App) AddShake(mod float64) {
	s := a.settings.GetSettings()
	if !s.ShakeEnabled {
		return
	}
	a.shake.Shake(mod * s.ShakeIntensity)
}

// Update advances the demo by one tick.
func (a *App) Update() error {
	a.realDt = tickSeconds
	a.dt = tickSeconds
	if a.state.Paused {
		a.dt = 0 // simulated time stops, real time keeps flowing
	}

	a.handleInput()

	a.pools.SetPaused(a.state.Paused)
	a.pools.Update(a.dt)
	a.letterbox.Update(a.realDt)
	a.updateShip(a.dt)

	return nil
}

// handleInput maps the demo keys onto the engine operations.
func (a *App) handleInput() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		a.spawnExplosion(effects.LayerFront)
	case inpututil.IsKeyJustPressed(ebiten.KeyB):
		a.spawnExplosion(effects.LayerBack)
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		a.AddShake(0.5)
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		a.letterbox.SetEnabled(!a.letterbox.Enabled())
	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		a.state.TogglePause()
	case inpututil.IsKeyJustPressed(ebiten.KeyX):
		a.pools.Clear()
		a.shake.Clear()
		a.trail.Clear()
	}
}

// spawnExplosion adds an explosion near the ship with a small random
// drift, and kicks the camera.
func (a *App) spawnExplosion(layer effects.Layer) {
	if a.explosion < 0 {
		return
	}
	px := a.shipX + (rand.Float64()-0.5)*120
	py := a.shipY + (rand.Float64()-0.5)*120
	vx := (rand.Float64() - 0.5) * 40
	vy := (rand.Float64() - 0.5) * 40
	a.pools.Spawn(a.explosion, px, py, vx, vy, layer)
	a.AddShake(0.25)
}

// updateShip flies the demo ship in a circle and keeps its exhaust
// trail dense.
func (a *App) updateShip(dt float64) {
	a.shipAngle += dt * 0.8
	a.shipX = screenWidth/2 + 180*math.Cos(a.shipAngle)
	a.shipY = screenHeight/2 + 180*math.Sin(a.shipAngle)

	if a.trail.Update(dt) && a.trailColorSet >= 0 {
		state := effects.TrailIdle
		if ebiten.IsKeyPressed(ebiten.KeyShift) {
			state = effects.TrailAfterburn
		}
		col := a.trailColors.Set(a.trailColorSet).Color(state)
		a.trail.Grow(a.shipX, a.shipY, col)
	}
}

// Draw renders one frame. The shake bracket wraps all world-space
// drawing; the letterbox draws over everything, outside the bracket.
func (a *App) Draw(screen *ebiten.Image) {
	a.shake.Begin(a.dt, a.realDt)

	screen.Fill(color.RGBA{R: 8, G: 8, B: 20, A: 255})

	a.pools.Render(screen, effects.LayerBack, a.view)
	a.trail.Render(screen, a.view)
	a.drawShip(screen)
	a.pools.Render(screen, effects.LayerFront, a.view)

	a.shake.End()

	a.letterbox.Render(screen)

	ebitenutil.DebugPrint(screen,
		"space: explosion  b: back-layer  s: shake  shift: afterburn\nc: letterbox  p: pause  x: clear")
}

// drawShip renders the demo ship as a simple disc.
func (a *App) drawShip(screen *ebiten.Image) {
	g := a.view.GeoM()
	x, y := g.Apply(a.shipX, a.shipY)
	vector.DrawFilledCircle(screen, float32(x), float32(y), 8,
		color.RGBA{R: 200, G: 220, B: 255, A: 255}, true)
}

// Layout implements ebiten.Game.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}
