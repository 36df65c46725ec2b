package component

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/reefolio/curve"
)

// Camera is a perspective lens. FOV is the vertical field of view in degrees.
type Camera struct {
	FOV  float64
	Near float64
	Far  float64
	// LookAt is the point the lens faces; zero means straight down -Z.
	LookAt    mgl64.Vec3
	HasLookAt bool
}

var CameraComponent = NewComponent[Camera]()

// CameraRig drives the camera along Path from the scroll progress.
type CameraRig struct {
	Path      *curve.Path
	Smoothing float64
	LookAhead float64
	// ArcLength spaces progress evenly along the curve instead of evenly
	// per control-point segment.
	ArcLength bool
	// Target is the last path point the camera was pulled toward.
	Target mgl64.Vec3
}

var CameraRigComponent = NewComponent[CameraRig]()
