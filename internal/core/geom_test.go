package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 5, 5)

	tests := []struct {
		x, y     int
		expected bool
	}{
		{10, 10, true},  // top-left corner
		{14, 14, true},  // bottom-right inside
		{15, 15, false}, // just outside
		{12, 12, true},  // center
		{9, 12, false},  // left of rect
		{12, 9, false},  // above rect
	}

	for _, tc := range tests {
		if got := r.Contains(tc.x, tc.y); got != tc.expected {
			t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
		}
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestRectCentered(t *testing.T) {
	outer := NewRect(0, 0, 80, 24)
	inner := outer.Centered(20, 6)
	if inner != NewRect(30, 9, 20, 6) {
		t.Errorf("Centered(20, 6) = %+v", inner)
	}
}

func TestCameraProjection(t *testing.T) {
	cam := NewCamera(80, 24, 1)
	cam.AnchorX, cam.AnchorY = 0.5, 0.5
	cam.Follow(100, 50)

	if x, y := cam.ToScreen(100, 50); x != 40 || y != 12 {
		t.Errorf("anchor maps to (%d, %d), expected (40, 12)", x, y)
	}
	// One column per unit horizontally, one row per two units vertically, y up.
	if x, y := cam.ToScreen(110, 54); x != 50 || y != 10 {
		t.Errorf("ToScreen(110, 54) = (%d, %d), expected (50, 10)", x, y)
	}
	if x, y := cam.ToScreen(90, 46); x != 30 || y != 14 {
		t.Errorf("ToScreen(90, 46) = (%d, %d), expected (30, 14)", x, y)
	}

	if wx := cam.ToWorldX(40); wx != 100 {
		t.Errorf("ToWorldX(40) = %v, expected 100", wx)
	}
	if wx := cam.ToWorldX(0); wx != 60 {
		t.Errorf("ToWorldX(0) = %v, expected 60", wx)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(10, 20, 0.25); got != 12.5 {
		t.Errorf("Lerp(10, 20, 0.25) = %v, expected 12.5", got)
	}
}

func TestAbs(t *testing.T) {
	if Abs(5) != 5 {
		t.Error("Abs(5) should be 5")
	}
	if Abs(-5) != 5 {
		t.Error("Abs(-5) should be 5")
	}
	if Abs(0) != 0 {
		t.Error("Abs(0) should be 0")
	}
}

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionThrottle)
	f.Set(ActionLeanBack)

	if !f.Has(ActionThrottle) || !f.Has(ActionLeanBack) {
		t.Error("set actions should be reported")
	}
	if f.Has(ActionBrake) {
		t.Error("unset action should not be reported")
	}

	clone := f.Clone()
	f.Clear()
	if f.Has(ActionThrottle) {
		t.Error("Clear should remove actions")
	}
	if !clone.Has(ActionThrottle) {
		t.Error("Clone should not share state")
	}

	var zero InputFrame
	if zero.Has(ActionQuit) {
		t.Error("zero frame should have no actions")
	}
	zero.Set(ActionQuit)
	if !zero.Has(ActionQuit) {
		t.Error("Set on zero frame should allocate")
	}
}

func TestRuntimeConfigDT(t *testing.T) {
	if dt := (RuntimeConfig{TickRate: 64}).DT(); dt != 1.0/64 {
		t.Errorf("DT() = %v, expected 1/64", dt)
	}
	if dt := (RuntimeConfig{}).DT(); dt != 1.0/60 {
		t.Errorf("zero tick rate DT() = %v, expected 1/60", dt)
	}
}
