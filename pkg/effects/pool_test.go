package effects

import (
	"testing"

	"github.com/wrenkin/starfx/internal/spfxdata"
)

func testManager(t *testing.T) *Manager {
	t.Helper()
	doc := &spfxdata.EffectDoc{
		Effects: []spfxdata.EffectDef{
			{
				Name:   "explosion",
				AnimMs: 1000,
				TTLMs:  1000,
				Sprite: &spfxdata.SpriteRef{Image: "exp.png", SX: 4, SY: 4},
			},
			{
				Name:   "cargo",
				AnimMs: 2000,
				TTLMs:  5000,
				Sprite: &spfxdata.SpriteRef{Image: "cargo.png", SX: 6, SY: 6},
			},
		},
	}
	sprites := map[string]*stubSprite{"exp.png": {}, "cargo.png": {}}
	return NewManager(LoadCatalog(doc, stubLoader(sprites)))
}

// TestSpawnTimerExact: ttl == anim means the timer is exactly ttl.
func TestSpawnTimerExact(t *testing.T) {
	m := testManager(t)

	for i := 0; i < 10; i++ {
		m.Spawn(0, 0, 0, 0, 0, LayerFront)
	}
	for i := range m.front {
		if m.front[i].timer != 1.0 {
			t.Errorf("Instance %d timer: got %v, want exactly 1.0", i, m.front[i].timer)
		}
	}
}

// TestSpawnTimerRandomized: ttl != anim randomizes the timer within
// [ttl, ttl+anim).
func TestSpawnTimerRandomized(t *testing.T) {
	m := testManager(t)

	for i := 0; i < 100; i++ {
		m.Spawn(1, 0, 0, 0, 0, LayerBack)
	}
	for i := range m.back {
		timer := m.back[i].timer
		if timer < 5.0 || timer >= 7.0 {
			t.Errorf("Instance %d timer: got %v, want in [5.0, 7.0)", i, timer)
		}
	}
}

// TestSpawnInvalid: out-of-range ids and bad layers are warned no-ops.
func TestSpawnInvalid(t *testing.T) {
	m := testManager(t)

	m.Spawn(-1, 0, 0, 0, 0, LayerFront)
	m.Spawn(2, 0, 0, 0, 0, LayerFront)
	m.Spawn(0, 0, 0, 0, 0, Layer(7))

	if m.Len(LayerFront) != 0 || m.Len(LayerBack) != 0 {
		t.Errorf("Invalid spawns must not add instances: front=%d back=%d",
			m.Len(LayerFront), m.Len(LayerBack))
	}
}

// TestUpdateZeroIdempotent: update(0) never changes pool contents.
func TestUpdateZeroIdempotent(t *testing.T) {
	m := testManager(t)
	m.Spawn(0, 10, 20, 1, 2, LayerFront)
	m.Spawn(1, 0, 0, 0, 0, LayerBack)

	before := append([]instance(nil), m.front...)
	for i := 0; i < 5; i++ {
		m.Update(0)
	}

	if m.Len(LayerFront) != 1 || m.Len(LayerBack) != 1 {
		t.Fatalf("Pool sizes changed: front=%d back=%d", m.Len(LayerFront), m.Len(LayerBack))
	}
	if m.front[0] != before[0] {
		t.Errorf("Instance mutated by update(0): got %+v, want %+v", m.front[0], before[0])
	}
}

// TestUpdateIntegration: position advances by velocity * dt.
func TestUpdateIntegration(t *testing.T) {
	m := testManager(t)
	m.Spawn(0, 10, 20, 4, -2, LayerFront)

	m.Update(0.25)

	inst := m.front[0]
	if inst.posX != 11 || inst.posY != 19.5 {
		t.Errorf("Position: got (%v, %v), want (11, 19.5)", inst.posX, inst.posY)
	}
	if inst.timer != 0.75 {
		t.Errorf("Timer: got %v, want 0.75", inst.timer)
	}
}

// TestUpdateExpiry: instances expire one at a time, pool size strictly
// decreasing by one per expiry.
func TestUpdateExpiry(t *testing.T) {
	m := testManager(t)
	// Three explosions with the exact 1.0s timer, staggered by aging
	// them different amounts first.
	m.Spawn(0, 0, 0, 0, 0, LayerFront)
	m.Update(0.5) // first instance now at 0.5
	m.Spawn(0, 0, 0, 0, 0, LayerFront)
	m.Update(0.25) // timers: 0.25, 0.75
	m.Spawn(0, 0, 0, 0, 0, LayerFront)
	// timers: 0.25, 0.75, 1.0

	sizes := []int{}
	for i := 0; i < 5; i++ {
		m.Update(0.3)
		sizes = append(sizes, m.Len(LayerFront))
	}

	// 0.3 steps: timers hit -0.05 (expire), then 0.15/0.4, then
	// -0.15 (expire)/0.1, then -0.2 (expire), then stable empty.
	want := []int{2, 2, 1, 0, 0}
	for i := range want {
		if sizes[i] != want[i] {
			t.Errorf("After update %d: pool size %d, want %d (all: %v)", i+1, sizes[i], want[i], sizes)
			break
		}
	}
}

// TestClear empties both pools but keeps templates.
func TestClear(t *testing.T) {
	m := testManager(t)
	m.Spawn(0, 0, 0, 0, 0, LayerFront)
	m.Spawn(0, 0, 0, 0, 0, LayerBack)

	m.Clear()

	if m.Len(LayerFront) != 0 || m.Len(LayerBack) != 0 {
		t.Errorf("Pools not empty after Clear: front=%d back=%d",
			m.Len(LayerFront), m.Len(LayerBack))
	}
	if m.catalog.Len() != 2 {
		t.Errorf("Templates must survive Clear, got %d", m.catalog.Len())
	}
}

// TestFrameIndex covers the frame-selection math from the explosion
// scenario: 4x4 grid, 1s animation, half elapsed -> frame 8.
func TestFrameIndex(t *testing.T) {
	cases := []struct {
		timer, anim float64
		sx, sy      int
		want        int
	}{
		{0.5, 1.0, 4, 4, 8},   // progress 0.5 of 16 frames
		{1.0, 1.0, 4, 4, 15},  // mod wraps to progress 1.0, clamped
		{0.75, 1.0, 4, 4, 4},  // progress 0.25
		{0.1, 1.0, 6, 5, 27},  // progress 0.9 of 30 frames
	}

	for _, tc := range cases {
		got := FrameIndex(tc.timer, tc.anim, tc.sx, tc.sy)
		if got != tc.want {
			t.Errorf("FrameIndex(%v, %v, %d, %d): got %d, want %d",
				tc.timer, tc.anim, tc.sx, tc.sy, got, tc.want)
		}
	}
}

// TestSelectFramePaused: the cached frame is reused while paused.
func TestSelectFramePaused(t *testing.T) {
	m := testManager(t)
	tpl := m.catalog.Template(0)
	inst := &instance{effect: 0, timer: 0.5}

	frame := m.selectFrame(inst, tpl, 4, 4)
	if frame != 8 {
		t.Fatalf("Unpaused frame: got %d, want 8", frame)
	}

	m.SetPaused(true)
	inst.timer = 0.25 // would be frame 12 if recomputed
	if frame := m.selectFrame(inst, tpl, 4, 4); frame != 8 {
		t.Errorf("Paused frame: got %d, want cached 8", frame)
	}

	m.SetPaused(false)
	if frame := m.selectFrame(inst, tpl, 4, 4); frame != 12 {
		t.Errorf("Resumed frame: got %d, want 12", frame)
	}
}
