package component

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/milk9111/orbitcam/common"
)

const (
	// MinRadius is the hard floor for the orbit radius. A camera sitting on
	// its pivot has no defined view direction, so the radius never reaches
	// zero.
	MinRadius = 0.01

	// PitchLimit keeps pitch strictly inside +-pi/2 so the view direction
	// never becomes parallel to the world up axis.
	PitchLimit = math.Pi/2 - 1e-3

	// zoomRate is the reference smoothing rate in steps per second. A
	// smoothness value removes that fraction of the remaining distance to
	// the zoom target per 1/zoomRate seconds, independent of frame timing.
	zoomRate = 60.0

	maxSmoothness = 1 - 1e-6
)

var worldUp = mgl64.Vec3{0, 1, 0}

// Orbit parameterizes a camera as a point on a sphere around a pivot: a
// radius and yaw/pitch angles place the camera, roll twists it about its
// view axis. Transform is derived from the other fields and refreshed by
// UpdateTransform.
type Orbit struct {
	Pivot  mgl64.Vec3
	Radius float64
	Yaw    float64
	Pitch  float64
	Roll   float64

	// TargetRadius is what zoom input moves; Radius converges toward it
	// through StepZoom.
	TargetRadius float64

	// MinZoom and MaxZoom optionally clamp the radius beyond the MinRadius
	// floor. Zero means unconstrained on that side.
	MinZoom float64
	MaxZoom float64

	// Frozen excludes the entity from controller updates without removing
	// the component.
	Frozen bool

	Transform Transform
}

var OrbitComponent = NewComponent[Orbit]()

// NewOrbit builds an orbit state, silently clamping radius and pitch into
// their valid ranges and wrapping roll. TargetRadius starts at the clamped
// radius and the transform is computed immediately.
func NewOrbit(pivot mgl64.Vec3, radius, yaw, pitch, roll float64) *Orbit {
	o := &Orbit{
		Pivot:  pivot,
		Radius: radius,
		Yaw:    yaw,
		Pitch:  pitch,
		Roll:   roll,
	}
	o.normalize()
	o.TargetRadius = o.Radius
	o.UpdateTransform()
	return o
}

// WithRadius resets the radius (and zoom target) and returns the orbit.
func (o *Orbit) WithRadius(radius float64) *Orbit {
	o.Radius = radius
	o.normalize()
	o.TargetRadius = o.Radius
	o.UpdateTransform()
	return o
}

// WithPivot resets the pivot and returns the orbit.
func (o *Orbit) WithPivot(pivot mgl64.Vec3) *Orbit {
	o.Pivot = pivot
	o.UpdateTransform()
	return o
}

// WithOrbit adds yaw, pitch, and roll deltas and returns the orbit.
func (o *Orbit) WithOrbit(dYaw, dPitch, dRoll float64) *Orbit {
	o.ApplyDelta(dYaw, dPitch, dRoll, 0, mgl64.Vec3{})
	return o
}

// ApplyDelta adds each delta to the corresponding field, then re-clamps
// radius and pitch, wraps yaw and roll, and refreshes the transform.
func (o *Orbit) ApplyDelta(dYaw, dPitch, dRoll, dTargetRadius float64, dPivot mgl64.Vec3) {
	o.Yaw += dYaw
	o.Pitch += dPitch
	o.Roll += dRoll
	o.TargetRadius += dTargetRadius
	o.Pivot = o.Pivot.Add(dPivot)
	o.normalize()
	o.UpdateTransform()
}

// StepZoom advances Radius toward TargetRadius. smoothness 0 snaps in a
// single call; values approaching 1 converge ever more slowly. The step is
// frame-rate independent: many small dt steps land where one big step does.
func (o *Orbit) StepZoom(smoothness, dt float64) {
	t := 1.0
	if smoothness > 0 {
		if dt <= 0 {
			return
		}
		smoothness = math.Min(smoothness, maxSmoothness)
		t = 1 - math.Pow(smoothness, dt*zoomRate)
	}
	o.Radius = o.clampRadius(common.Lerp(o.Radius, o.TargetRadius, t))
	o.UpdateTransform()
}

// ComputeTransform derives the world transform from the orbit fields: the
// position sits at Radius along the (Yaw, Pitch) direction from the pivot,
// oriented to look back at the pivot with Roll twisted about the view axis.
func (o *Orbit) ComputeTransform() Transform {
	pos := o.Pivot.Add(direction(o.Yaw, o.Pitch).Mul(o.Radius))
	rot := mgl64.QuatLookAtV(pos, o.Pivot, worldUp)
	if o.Roll != 0 {
		forward := o.Pivot.Sub(pos).Normalize()
		rot = mgl64.QuatRotate(o.Roll, forward).Mul(rot)
	}
	return Transform{Position: pos, Rotation: rot.Normalize()}
}

// UpdateTransform recomputes and stores the derived transform.
func (o *Orbit) UpdateTransform() {
	o.Transform = o.ComputeTransform()
}

func (o *Orbit) normalize() {
	o.Radius = o.clampRadius(o.Radius)
	o.TargetRadius = o.clampRadius(o.TargetRadius)
	o.Pitch = common.Clamp(o.Pitch, -PitchLimit, PitchLimit)
	o.Yaw = common.WrapAngle(o.Yaw)
	o.Roll = common.WrapAngle(o.Roll)
}

func (o *Orbit) clampRadius(r float64) float64 {
	lo := MinRadius
	if o.MinZoom > lo {
		lo = o.MinZoom
	}
	if r < lo {
		r = lo
	}
	if o.MaxZoom > 0 && r > o.MaxZoom {
		r = o.MaxZoom
	}
	return r
}

// direction maps yaw and pitch to the unit vector pointing from the pivot
// toward the camera, with +Y up. Yaw 0, pitch 0 places the camera on +Z.
func direction(yaw, pitch float64) mgl64.Vec3 {
	cp := math.Cos(pitch)
	return mgl64.Vec3{cp * math.Sin(yaw), math.Sin(pitch), cp * math.Cos(yaw)}
}
