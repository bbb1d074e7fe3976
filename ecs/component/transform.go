package component

import "github.com/go-gl/mathgl/mgl64"

// Transform is a rigid world transform: a position and an orientation. The
// orientation rotates camera-local axes into world space, with the camera
// looking down its local -Z and +Y up.
type Transform struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
}

var TransformComponent = NewComponent[Transform]()
