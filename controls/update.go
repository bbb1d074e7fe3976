package controls

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/milk9111/orbitcam/ecs/component"
)

// Update advances one orbit state by one frame of input. dt is the elapsed
// time in seconds. Actions run independently: rotation, zoom target, pan,
// then roll, each gated by its enable flag and binding, followed by a
// transform refresh. Zoom smoothing always runs so an in-flight zoom keeps
// converging on frames without scroll input, even if zoom is disabled
// mid-convergence.
//
// With cfg.Enable false the call is a no-op and the state is left untouched.
func Update(cfg *Config, in *component.InputState, dt float64, o *component.Orbit) {
	if cfg == nil || in == nil || o == nil || !cfg.Enable {
		return
	}

	if cfg.EnableRotation && held(in, cfg.RotateButton) {
		// Drag right -> world appears to rotate right -> yaw decreases.
		o.ApplyDelta(
			-in.CursorDX*cfg.RotationSpeed*dt,
			-in.CursorDY*cfg.RotationSpeed*dt,
			0, 0, mgl64.Vec3{},
		)
	}

	if cfg.EnableZoom && held(in, cfg.ZoomButton) && in.Wheel != 0 {
		// Scroll up moves the camera in.
		o.ApplyDelta(0, 0, 0, -in.Wheel*cfg.ZoomSpeed, mgl64.Vec3{})
	}
	o.StepZoom(cfg.ZoomSmoothness, dt)

	if cfg.EnablePan && held(in, cfg.PanButton) {
		// Move the pivot in the camera's right/up plane. Scaling by the
		// radius keeps the perceived pan speed constant across zoom levels.
		rot := o.Transform.Rotation
		right := rot.Rotate(mgl64.Vec3{1, 0, 0})
		up := rot.Rotate(mgl64.Vec3{0, 1, 0})
		scale := cfg.PanSpeed * o.Radius
		d := right.Mul(-in.CursorDX * scale).Add(up.Mul(in.CursorDY * scale))
		o.ApplyDelta(0, 0, 0, 0, d)
	}

	if cfg.EnableRoll && cfg.RollButtons != nil {
		// Holding both keys cancels out.
		var dRoll float64
		if in.Held(cfg.RollButtons.CCW) {
			dRoll += cfg.RollSpeed * dt
		}
		if in.Held(cfg.RollButtons.CW) {
			dRoll -= cfg.RollSpeed * dt
		}
		if dRoll != 0 {
			o.ApplyDelta(0, 0, dRoll, 0, mgl64.Vec3{})
		}
	}

	o.UpdateTransform()
}

// held reports whether an optional binding is active: an unset binding is
// always active, a set one must be held this frame.
func held(in *component.InputState, b *component.Button) bool {
	return b == nil || in.Held(*b)
}
