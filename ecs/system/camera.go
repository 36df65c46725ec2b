package system

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/reefolio/ecs"
	"github.com/milk9111/reefolio/ecs/component"
)

const DefaultSmoothing = 0.1

// SmoothToward moves c a fraction alpha of the way to p.
func SmoothToward(c, p mgl64.Vec3, alpha float64) mgl64.Vec3 {
	return c.Add(p.Sub(c).Mul(alpha))
}

// CameraRigSystem pulls each rigged camera toward the point of its path
// selected by the current scroll progress.
type CameraRigSystem struct{}

func NewCameraRigSystem() *CameraRigSystem {
	return &CameraRigSystem{}
}

func (cs *CameraRigSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	t := sceneProgress(w)

	ecs.ForEach2(w, component.TransformComponent.Kind(), component.CameraRigComponent.Kind(), func(e ecs.Entity, tr *component.Transform, rig *component.CameraRig) {
		if rig.Path == nil {
			return
		}
		alpha := rig.Smoothing
		if alpha <= 0 || alpha > 1 {
			alpha = DefaultSmoothing
		}

		rig.Target = rigPoint(rig, t)
		tr.Position = SmoothToward(tr.Position, rig.Target, alpha)

		cam, ok := ecs.Get(w, e, component.CameraComponent.Kind())
		if !ok {
			return
		}
		if rig.LookAhead > 0 {
			cam.LookAt = rigPoint(rig, math.Min(t+rig.LookAhead, 1))
			cam.HasLookAt = cam.LookAt.Sub(tr.Position).Len() > 1e-6
		} else {
			cam.HasLookAt = false
		}
	})
}

func rigPoint(rig *component.CameraRig, t float64) mgl64.Vec3 {
	if rig.ArcLength {
		return rig.Path.PointAt(t)
	}
	return rig.Path.Point(t)
}
