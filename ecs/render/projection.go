package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/reefolio/ecs/component"
)

var worldUp = mgl64.Vec3{0, 1, 0}

// Projector maps world positions to screen pixels for one camera pose.
type Projector struct {
	view, proj    mgl64.Mat4
	near, far     float64
	width, height int
	focal         float64
}

// NewProjector builds the view and projection for a camera at eye. Without
// a look-at target the camera faces -Z.
func NewProjector(eye mgl64.Vec3, cam component.Camera, width, height int) Projector {
	fov := cam.FOV
	if fov <= 0 || fov >= 180 {
		fov = 75
	}
	near, far := cam.Near, cam.Far
	if near <= 0 {
		near = 0.1
	}
	if far <= near {
		far = 1000
	}
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}

	center := eye.Add(mgl64.Vec3{0, 0, -1})
	if cam.HasLookAt {
		dir := cam.LookAt.Sub(eye)
		if dir.Len() > 1e-9 && dir.Normalize().Cross(worldUp).Len() > 1e-6 {
			center = cam.LookAt
		}
	}

	half := mgl64.DegToRad(fov) / 2
	return Projector{
		view:   mgl64.LookAtV(eye, center, worldUp),
		proj:   mgl64.Perspective(half*2, float64(width)/float64(height), near, far),
		near:   near,
		far:    far,
		width:  width,
		height: height,
		focal:  float64(height) / 2 / math.Tan(half),
	}
}

// Project returns the screen position of p and its distance along the view
// axis. ok is false when p lies outside the near and far planes.
func (pr Projector) Project(p mgl64.Vec3) (x, y, depth float64, ok bool) {
	depth = -pr.view.Mul4x1(p.Vec4(1)).Z()
	if depth < pr.near || depth > pr.far {
		return 0, 0, depth, false
	}
	win := mgl64.Project(p, pr.view, pr.proj, 0, 0, pr.width, pr.height)
	return win.X(), float64(pr.height) - win.Y(), depth, true
}

// Scale converts a world-space length at the given depth to pixels.
func (pr Projector) Scale(length, depth float64) float64 {
	if depth <= 0 {
		return 0
	}
	return length * pr.focal / depth
}
