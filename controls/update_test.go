package controls

import (
	"math"
	"reflect"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/milk9111/orbitcam/ecs/component"
)

const tolerance = 1e-9

// bare returns a config with every action disabled, for tests that switch
// on one behavior at a time.
func bare() *Config {
	cfg := Default()
	cfg.EnableZoom = false
	cfg.EnableRotation = false
	cfg.EnablePan = false
	cfg.EnableRoll = false
	cfg.ZoomSmoothness = 0
	return cfg
}

func TestDisabledIsNoOp(t *testing.T) {
	cfg := Default()
	cfg.Enable = false

	o := component.NewOrbit(mgl64.Vec3{1, 2, 3}, 6, 0.4, 0.3, 0.2)
	before := *o

	in := &component.InputState{CursorDX: 500, CursorDY: -500, Wheel: 3}
	in.SetHeld(component.MouseLeft, true)
	in.SetHeld(component.MouseRight, true)

	Update(cfg, in, 1.0/60, o)

	if !reflect.DeepEqual(before, *o) {
		t.Fatalf("disabled controller mutated state:\nbefore %+v\nafter  %+v", before, *o)
	}
}

func TestZoomScenario(t *testing.T) {
	cfg := bare()
	cfg.EnableZoom = true
	cfg.ZoomSpeed = 0.2
	cfg.ZoomSmoothness = 0

	o := component.NewOrbit(mgl64.Vec3{}, 6, 0, 0, 0)
	in := &component.InputState{Wheel: 1}

	Update(cfg, in, 1.0/60, o)

	if math.Abs(o.TargetRadius-5.8) > tolerance {
		t.Fatalf("expected target radius 5.8, got %v", o.TargetRadius)
	}
	if o.Radius != o.TargetRadius {
		t.Fatalf("smoothness 0 should snap radius to target, got %v vs %v", o.Radius, o.TargetRadius)
	}
}

func TestZoomSmoothingRunsWhenZoomDisabled(t *testing.T) {
	cfg := bare()

	o := component.NewOrbit(mgl64.Vec3{}, 6, 0, 0, 0)
	o.ApplyDelta(0, 0, 0, -4, mgl64.Vec3{})

	Update(cfg, &component.InputState{}, 1.0/60, o)

	if o.Radius != o.TargetRadius {
		t.Fatalf("in-flight zoom should keep converging with zoom disabled, got %v vs %v", o.Radius, o.TargetRadius)
	}
}

func TestZoomButtonGate(t *testing.T) {
	zoomKey := component.KeyButton("z")

	cases := []struct {
		name     string
		held     bool
		expected float64
	}{
		{"held", true, 5.8},
		{"not_held", false, 6.0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg := bare()
			cfg.EnableZoom = true
			cfg.ZoomButton = &zoomKey

			o := component.NewOrbit(mgl64.Vec3{}, 6, 0, 0, 0)
			in := &component.InputState{Wheel: 1}
			in.SetHeld(zoomKey, c.held)

			Update(cfg, in, 1.0/60, o)

			if math.Abs(o.TargetRadius-c.expected) > tolerance {
				t.Fatalf("expected target %v, got %v", c.expected, o.TargetRadius)
			}
		})
	}
}

func TestRotationSignConvention(t *testing.T) {
	cfg := bare()
	cfg.EnableRotation = true
	cfg.RotationSpeed = 0.5
	cfg.RotateButton = nil // always active

	o := component.NewOrbit(mgl64.Vec3{}, 6, 0, 0, 0)
	in := &component.InputState{CursorDX: 10, CursorDY: 4}
	dt := 0.1

	Update(cfg, in, dt, o)

	if expected := -10 * 0.5 * dt; math.Abs(o.Yaw-expected) > tolerance {
		t.Fatalf("yaw: expected %v, got %v", expected, o.Yaw)
	}
	if expected := -4 * 0.5 * dt; math.Abs(o.Pitch-expected) > tolerance {
		t.Fatalf("pitch: expected %v, got %v", expected, o.Pitch)
	}
}

func TestRotationButtonGate(t *testing.T) {
	cfg := bare()
	cfg.EnableRotation = true

	o := component.NewOrbit(mgl64.Vec3{}, 6, 0, 0, 0)
	in := &component.InputState{CursorDX: 100}

	Update(cfg, in, 0.1, o) // default rotate button not held
	if o.Yaw != 0 {
		t.Fatalf("rotation should be gated on the bound button, yaw=%v", o.Yaw)
	}

	in.SetHeld(component.MouseLeft, true)
	Update(cfg, in, 0.1, o)
	if o.Yaw == 0 {
		t.Fatalf("rotation should apply while the bound button is held")
	}
}

func TestPanScalesWithRadius(t *testing.T) {
	pan := func(radius float64) mgl64.Vec3 {
		cfg := bare()
		cfg.EnablePan = true
		cfg.PanSpeed = 0.01

		// Camera on +Z looking at the origin: right is +X, up is +Y.
		o := component.NewOrbit(mgl64.Vec3{}, radius, 0, 0, 0)
		in := &component.InputState{CursorDX: 100, CursorDY: -50}
		in.SetHeld(component.MouseRight, true)

		Update(cfg, in, 1.0/60, o)
		return o.Pivot
	}

	small := pan(5)
	expected := mgl64.Vec3{-100 * 0.01 * 5, -50 * 0.01 * 5, 0}
	if d := small.Sub(expected).Len(); d > tolerance {
		t.Fatalf("expected pivot %v, got %v", expected, small)
	}

	big := pan(10)
	if d := big.Sub(small.Mul(2)).Len(); d > tolerance {
		t.Fatalf("pan should scale linearly with radius: %v vs %v", big, small)
	}
}

func TestPanWithoutBindingIsAlwaysActive(t *testing.T) {
	cfg := bare()
	cfg.EnablePan = true
	cfg.PanButton = nil

	o := component.NewOrbit(mgl64.Vec3{}, 5, 0, 0, 0)
	in := &component.InputState{CursorDX: 100, CursorDY: 50}

	Update(cfg, in, 1.0/60, o)

	if o.Pivot == (mgl64.Vec3{}) {
		t.Fatalf("unset pan binding should pan unconditionally, pivot did not move")
	}
}

func TestRollKeys(t *testing.T) {
	cases := []struct {
		name     string
		ccw, cw  bool
		expected float64
	}{
		{"ccw_only", true, false, math.Pi * 0.1},
		{"cw_only", false, true, -math.Pi * 0.1},
		{"both_cancel", true, true, 0},
		{"neither", false, false, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg := bare()
			cfg.EnableRoll = true
			cfg.RollSpeed = math.Pi

			o := component.NewOrbit(mgl64.Vec3{}, 6, 0, 0, 0)
			in := &component.InputState{}
			in.SetHeld(cfg.RollButtons.CCW, c.ccw)
			in.SetHeld(cfg.RollButtons.CW, c.cw)

			Update(cfg, in, 0.1, o)

			if math.Abs(o.Roll-c.expected) > tolerance {
				t.Fatalf("expected roll %v, got %v", c.expected, o.Roll)
			}
		})
	}
}

func TestRollWithoutBindingDoesNothing(t *testing.T) {
	cfg := bare()
	cfg.EnableRoll = true
	cfg.RollButtons = nil

	o := component.NewOrbit(mgl64.Vec3{}, 6, 0, 0, 0)
	Update(cfg, &component.InputState{}, 0.1, o)

	if o.Roll != 0 {
		t.Fatalf("roll without a binding should stay 0, got %v", o.Roll)
	}
}

func TestTransformFreshAfterUpdate(t *testing.T) {
	cfg := bare()
	cfg.EnableRotation = true
	cfg.RotateButton = nil

	o := component.NewOrbit(mgl64.Vec3{}, 6, 0, 0, 0)
	in := &component.InputState{CursorDX: 30}

	Update(cfg, in, 0.1, o)

	if !reflect.DeepEqual(o.Transform, o.ComputeTransform()) {
		t.Fatalf("transform should be recomputed by the update")
	}
}

func TestSimultaneousActionsAreAdditive(t *testing.T) {
	cfg := bare()
	cfg.EnableRotation = true
	cfg.RotateButton = nil
	cfg.EnableZoom = true

	o := component.NewOrbit(mgl64.Vec3{}, 6, 0, 0, 0)
	in := &component.InputState{CursorDX: 10, Wheel: 1}

	Update(cfg, in, 0.1, o)

	if o.Yaw == 0 {
		t.Fatalf("rotation should have applied")
	}
	if o.TargetRadius == 6 {
		t.Fatalf("zoom should have applied")
	}
}
