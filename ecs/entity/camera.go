package entity

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/milk9111/orbitcam/ecs"
	"github.com/milk9111/orbitcam/ecs/component"
	"github.com/milk9111/orbitcam/prefabs"
)

// NewOrbitCamera spawns a camera entity from prefabs/camera.yaml.
func NewOrbitCamera(w *ecs.World) (ecs.Entity, error) {
	spec, err := prefabs.LoadCameraSpec()
	if err != nil {
		return 0, fmt.Errorf("camera: load spec: %w", err)
	}

	orbit := component.NewOrbit(
		mgl64.Vec3{spec.Pivot.X, spec.Pivot.Y, spec.Pivot.Z},
		spec.Radius, spec.Yaw, spec.Pitch, spec.Roll,
	)
	orbit.MinZoom = spec.MinZoom
	orbit.MaxZoom = spec.MaxZoom
	// Re-clamp in case the spec radius falls outside its own zoom limits.
	orbit.ApplyDelta(0, 0, 0, 0, mgl64.Vec3{})

	return newCamera(w, orbit)
}

// NewOrbitCameraAt spawns a camera entity orbiting pivot at radius, skipping
// the prefab.
func NewOrbitCameraAt(w *ecs.World, pivot mgl64.Vec3, radius float64) (ecs.Entity, error) {
	return newCamera(w, component.NewOrbit(pivot, radius, 0, 0, 0))
}

func newCamera(w *ecs.World, orbit *component.Orbit) (ecs.Entity, error) {
	camera := w.CreateEntity()
	if err := ecs.Add(w, camera, component.OrbitComponent, orbit); err != nil {
		return 0, fmt.Errorf("camera: add orbit: %w", err)
	}
	if err := ecs.Add(w, camera, component.InputComponent, &component.InputState{}); err != nil {
		return 0, fmt.Errorf("camera: add input: %w", err)
	}
	tr := orbit.Transform
	if err := ecs.Add(w, camera, component.TransformComponent, &tr); err != nil {
		return 0, fmt.Errorf("camera: add transform: %w", err)
	}
	return camera, nil
}
