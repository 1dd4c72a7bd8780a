package effects

import "testing"

// TestTrailEmptyNeedsGrowth: a fresh trail asks to be seeded.
func TestTrailEmptyNeedsGrowth(t *testing.T) {
	trail := NewTrail()
	if !trail.Update(0.5) {
		t.Error("Update on an empty trail must return true")
	}
	if trail.Len() != 0 {
		t.Errorf("Update must not add points, got %d", trail.Len())
	}
}

// TestTrailGrowAndAge: points append at the tail with age zero and age
// uniformly.
func TestTrailGrowAndAge(t *testing.T) {
	trail := NewTrail()
	col := Color{R: 1, A: 1}

	trail.Grow(0, 0, col)
	trail.Update(1.0)
	trail.Grow(10, 0, col)

	points := trail.Points()
	if len(points) != 2 {
		t.Fatalf("Expected 2 points, got %d", len(points))
	}
	if points[0].Age != 1.0 {
		t.Errorf("Head age: got %v, want 1.0", points[0].Age)
	}
	if points[1].Age != 0 {
		t.Errorf("Tail age: got %v, want 0", points[1].Age)
	}
}

// TestTrailGrowthSignal: growth is requested once the newest point is
// older than the threshold.
func TestTrailGrowthSignal(t *testing.T) {
	trail := NewTrail()
	trail.Grow(0, 0, Color{})

	if trail.Update(1.5) {
		t.Error("Tail at age 1.5 should not need growth yet")
	}
	if !trail.Update(0.6) {
		t.Error("Tail at age 2.1 should request growth")
	}
}

// TestTrailTrimTailOld mirrors the [0, 10, 60] case: the over-age
// point found scanning tail-to-head takes everything up to and
// including itself.
func TestTrailTrimTailOld(t *testing.T) {
	trail := NewTrail()
	trail.points = []TrailPoint{{Age: 0}, {Age: 10}, {Age: 60}}

	trail.Update(0)

	if trail.Len() != 0 {
		t.Errorf("Trail should be empty after trimming through the tail, got %d points", trail.Len())
	}
}

// TestTrailTrimHead: in the natural oldest-first ordering only the
// over-age head is cut, and the survivors keep their order.
func TestTrailTrimHead(t *testing.T) {
	trail := NewTrail()
	trail.points = []TrailPoint{{X: 1, Age: 60}, {X: 2, Age: 10}, {X: 3, Age: 0}}

	trail.Update(0)

	points := trail.Points()
	if len(points) != 2 {
		t.Fatalf("Expected 2 survivors, got %d", len(points))
	}
	if points[0].X != 2 || points[1].X != 3 {
		t.Errorf("Survivor order broken: got %v, %v", points[0].X, points[1].X)
	}
}

// TestTrailTrimSingleCut: only one contiguous head trim happens per
// update, even if several points are over age.
func TestTrailTrimSingleCut(t *testing.T) {
	trail := NewTrail()
	trail.points = []TrailPoint{{X: 1, Age: 80}, {X: 2, Age: 70}, {X: 3, Age: 1}}

	trail.Update(0)

	// The scan from the tail finds the point aged 70 first and cuts
	// through it; the point aged 80 goes with it in the same cut.
	if trail.Len() != 1 {
		t.Fatalf("Expected 1 survivor, got %d", trail.Len())
	}
	if trail.Points()[0].X != 3 {
		t.Errorf("Wrong survivor: got X=%v, want 3", trail.Points()[0].X)
	}
}

// TestTrailClear discards all points.
func TestTrailClear(t *testing.T) {
	trail := NewTrail()
	trail.Grow(0, 0, Color{})
	trail.Grow(1, 1, Color{})

	trail.Clear()

	if trail.Len() != 0 {
		t.Errorf("Expected empty trail, got %d points", trail.Len())
	}
	if !trail.Update(0) {
		t.Error("Cleared trail must request seeding again")
	}
}
