package component

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
)

type Light struct {
	Position  mgl64.Vec3
	Color     color.Color
	Intensity float64
}

// Lighting describes the scene's ambient, point and spot lights plus the
// backdrop gradient that stands in for the environment map.
type Lighting struct {
	Ambient     Light
	Point       Light
	Spot        Light
	BackdropTop color.Color
	BackdropBot color.Color
}

var LightingComponent = NewComponent[Lighting]()
