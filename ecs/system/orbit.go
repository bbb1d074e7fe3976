package system

import (
	"log"
	"time"

	"github.com/milk9111/orbitcam/controls"
	"github.com/milk9111/orbitcam/ecs"
	"github.com/milk9111/orbitcam/ecs/component"
)

// maxFrameDelta caps the per-frame time step so a stalled window doesn't
// slingshot the camera when frames resume.
const maxFrameDelta = 0.25

// OrbitSystem runs the orbit controller over every camera entity and mirrors
// the resulting transform into the entity's Transform component. Which
// cameras participate is decided here, not in the controller: entities with
// Frozen set are skipped.
type OrbitSystem struct {
	cfg  *controls.Config
	now  func() time.Time
	last time.Time
}

func NewOrbitSystem(cfg *controls.Config) *OrbitSystem {
	return &OrbitSystem{cfg: cfg, now: time.Now}
}

func (s *OrbitSystem) Update(w *ecs.World) {
	if w == nil || s.cfg == nil {
		return
	}

	t := s.now()
	var dt float64
	if !s.last.IsZero() {
		dt = t.Sub(s.last).Seconds()
		if dt < 0 {
			dt = 0
		} else if dt > maxFrameDelta {
			dt = maxFrameDelta
		}
	}
	s.last = t

	var idle component.InputState
	ecs.ForEach(w, component.OrbitComponent, func(e ecs.Entity, o *component.Orbit) {
		if o.Frozen {
			return
		}
		in, ok := ecs.Get(w, e, component.InputComponent)
		if !ok {
			in = &idle
		}
		controls.Update(s.cfg, in, dt, o)

		if tr, ok := ecs.Get(w, e, component.TransformComponent); ok {
			*tr = o.Transform
		} else {
			tr := o.Transform
			if err := ecs.Add(w, e, component.TransformComponent, &tr); err != nil {
				log.Printf("orbit system: add transform: %v", err)
			}
		}
	})
}
