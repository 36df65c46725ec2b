package component

import "github.com/go-gl/mathgl/mgl64"

// Transform places an entity in world space. Rotation holds Euler angles in
// radians around X, Y and Z.
type Transform struct {
	Position mgl64.Vec3
	Rotation mgl64.Vec3
	Scale    float64
}

var TransformComponent = NewComponent[Transform]()
