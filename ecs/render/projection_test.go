package render

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/reefolio/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var lens = component.Camera{FOV: 75, Near: 0.1, Far: 1000}

func TestProjectCentre(t *testing.T) {
	pr := NewProjector(mgl64.Vec3{0, 0, 10}, lens, 1280, 720)

	x, y, depth, ok := pr.Project(mgl64.Vec3{0, 0, 0})
	require.True(t, ok)
	assert.InDelta(t, 640, x, 1e-6)
	assert.InDelta(t, 360, y, 1e-6)
	assert.InDelta(t, 10, depth, 1e-9)
}

func TestProjectAxes(t *testing.T) {
	pr := NewProjector(mgl64.Vec3{0, 0, 10}, lens, 1280, 720)

	x, y, _, ok := pr.Project(mgl64.Vec3{1, 1, 0})
	require.True(t, ok)
	assert.Greater(t, x, 640.0, "+X is to the right")
	assert.Less(t, y, 360.0, "+Y is up the screen")

	// one unit at depth 10 spans the same number of pixels on both axes
	assert.InDelta(t, x-640, 360-y, 1e-6)
	assert.InDelta(t, pr.Scale(1, 10), x-640, 1e-6)
}

func TestProjectRejectsBehindCamera(t *testing.T) {
	pr := NewProjector(mgl64.Vec3{0, 0, 10}, lens, 1280, 720)

	_, _, _, ok := pr.Project(mgl64.Vec3{0, 0, 11})
	assert.False(t, ok)
	_, _, _, ok = pr.Project(mgl64.Vec3{0, 0, 10.05})
	assert.False(t, ok, "inside the near plane")
	_, _, _, ok = pr.Project(mgl64.Vec3{0, 0, -2000})
	assert.False(t, ok, "past the far plane")
}

func TestScaleFollowsFieldOfView(t *testing.T) {
	pr := NewProjector(mgl64.Vec3{}, lens, 1280, 720)
	want := 360 / math.Tan(mgl64.DegToRad(37.5)) / 10
	assert.InDelta(t, want, pr.Scale(1, 10), 1e-9)
	assert.Zero(t, pr.Scale(1, 0))
}

func TestLookAtTurnsCamera(t *testing.T) {
	cam := lens
	cam.LookAt = mgl64.Vec3{10, 0, 10}
	cam.HasLookAt = true
	pr := NewProjector(mgl64.Vec3{0, 0, 10}, cam, 1280, 720)

	x, y, depth, ok := pr.Project(mgl64.Vec3{5, 0, 10})
	require.True(t, ok)
	assert.InDelta(t, 640, x, 1e-6)
	assert.InDelta(t, 360, y, 1e-6)
	assert.InDelta(t, 5, depth, 1e-9)

	// a degenerate look-at straight up falls back to facing -Z
	cam.LookAt = mgl64.Vec3{0, 5, 10}
	pr = NewProjector(mgl64.Vec3{0, 0, 10}, cam, 1280, 720)
	_, _, depth, ok = pr.Project(mgl64.Vec3{0, 0, 0})
	require.True(t, ok)
	assert.InDelta(t, 10, depth, 1e-9)
}
