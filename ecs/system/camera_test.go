package system

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/reefolio/curve"
	"github.com/milk9111/reefolio/ecs"
	"github.com/milk9111/reefolio/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var flythrough = []mgl64.Vec3{
	{0, 0, 10},
	{-2, 0, 3},
	{3, -1, -2},
	{-3, 2, -6},
	{2, 4, -10},
	{0, 0, -19},
}

func addCamera(t *testing.T, w *ecs.World, rig component.CameraRig) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	require.NoError(t, ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{Position: flythrough[0], Scale: 1}))
	require.NoError(t, ecs.Add(w, e, component.CameraComponent.Kind(), &component.Camera{FOV: 75, Near: 0.1, Far: 1000}))
	require.NoError(t, ecs.Add(w, e, component.CameraRigComponent.Kind(), &rig))
	return e
}

func TestSmoothToward(t *testing.T) {
	c := mgl64.Vec3{0, 0, 0}
	p := mgl64.Vec3{10, -10, 20}

	assert.Equal(t, mgl64.Vec3{1, -1, 2}, SmoothToward(c, p, 0.1))
	assert.Equal(t, p, SmoothToward(c, p, 1))
	assert.Equal(t, c, SmoothToward(c, p, 0))
}

func TestSmoothTowardConvergesMonotonically(t *testing.T) {
	c := mgl64.Vec3{0, 0, 10}
	p := mgl64.Vec3{0, 0, -19}
	prev := p.Sub(c).Len()
	for i := 0; i < 200; i++ {
		c = SmoothToward(c, p, 0.1)
		d := p.Sub(c).Len()
		require.Less(t, d, prev, "frame %d", i)
		assert.InDelta(t, 0.9*prev, d, 1e-9)
		prev = d
	}
	assert.Less(t, prev, 1e-7)
}

func TestCameraRigFollowsScroll(t *testing.T) {
	w, scene := newScene(t, 0)
	path := curve.MustNew(flythrough, curve.Options{})
	cam := addCamera(t, w, component.CameraRig{Path: path, Smoothing: 0.1})

	ss, rig := NewScrollSystem(), NewCameraRigSystem()
	ctrl := controls(t, w, scene)

	cases := []struct {
		name string
		page float64
		want mgl64.Vec3
	}{
		{"start", 0, flythrough[0]},
		{"middle", 2, mgl64.Vec3{-0.0217523, 0.2961031, -4.0580189}},
		{"end", 4, flythrough[5]},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ctrl.ScrollToPage(c.page)
			ss.Update(w)

			tr, _ := ecs.Get(w, cam, component.TransformComponent.Kind())
			before := tr.Position
			rig.Update(w)

			r, _ := ecs.Get(w, cam, component.CameraRigComponent.Kind())
			want := c.want
			assert.InDelta(t, 0, want.Sub(r.Target).Len(), 1e-6)

			// the camera moves a tenth of the way, never jumping
			expect := before.Add(r.Target.Sub(before).Mul(0.1))
			assert.InDelta(t, 0, expect.Sub(tr.Position).Len(), 1e-9)

			prev := r.Target.Sub(tr.Position).Len()
			for i := 0; i < 300; i++ {
				ss.Update(w)
				rig.Update(w)
				d := r.Target.Sub(tr.Position).Len()
				require.LessOrEqual(t, d, prev)
				prev = d
			}
			assert.Less(t, prev, 1e-6)
		})
	}
}

func TestCameraRigLookAhead(t *testing.T) {
	w, _ := newScene(t, 0)
	path := curve.MustNew(flythrough, curve.Options{})
	cam := addCamera(t, w, component.CameraRig{Path: path, Smoothing: 0.1, LookAhead: 0.05})

	NewCameraRigSystem().Update(w)
	c, _ := ecs.Get(w, cam, component.CameraComponent.Kind())
	assert.True(t, c.HasLookAt)
	assert.InDelta(t, 0, path.Point(0.05).Sub(c.LookAt).Len(), 1e-9)

	r, _ := ecs.Get(w, cam, component.CameraRigComponent.Kind())
	r.LookAhead = 0
	NewCameraRigSystem().Update(w)
	assert.False(t, c.HasLookAt)
}

func TestCameraRigDefaultsBadSmoothing(t *testing.T) {
	w, scene := newScene(t, 0)
	path := curve.MustNew(flythrough, curve.Options{})
	cam := addCamera(t, w, component.CameraRig{Path: path, Smoothing: 0})
	controls(t, w, scene).ScrollToPage(4)
	NewScrollSystem().Update(w)
	NewCameraRigSystem().Update(w)

	tr, _ := ecs.Get(w, cam, component.TransformComponent.Kind())
	full := flythrough[5].Sub(flythrough[0]).Len()
	moved := tr.Position.Sub(flythrough[0]).Len()
	assert.InDelta(t, DefaultSmoothing*full, moved, 1e-9)
	assert.False(t, math.IsNaN(tr.Position.Len()))
}

func TestCameraRigArcLength(t *testing.T) {
	w, scene := newScene(t, 0)
	path := curve.MustNew(flythrough, curve.Options{})
	cam := addCamera(t, w, component.CameraRig{Path: path, Smoothing: 1, ArcLength: true})
	controls(t, w, scene).ScrollToPage(2)
	NewScrollSystem().Update(w)
	NewCameraRigSystem().Update(w)

	r, _ := ecs.Get(w, cam, component.CameraRigComponent.Kind())
	assert.InDelta(t, 0, path.PointAt(0.5).Sub(r.Target).Len(), 1e-9)
	assert.Greater(t, path.Point(0.5).Sub(r.Target).Len(), 1e-3, "arc length spacing differs from segment spacing")

	tr, _ := ecs.Get(w, cam, component.TransformComponent.Kind())
	assert.InDelta(t, 0, r.Target.Sub(tr.Position).Len(), 1e-9)
}
