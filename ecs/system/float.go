package system

import (
	"log"

	"github.com/milk9111/reefolio/ecs"
	"github.com/milk9111/reefolio/ecs/component"
)

// FloatSystem bobs floating entities around their resting height.
type FloatSystem struct{}

func NewFloatSystem() *FloatSystem {
	return &FloatSystem{}
}

func (fs *FloatSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	elapsed := sceneElapsed(w)

	ecs.ForEach2(w, component.TransformComponent.Kind(), component.FloatComponent.Kind(), func(e ecs.Entity, tr *component.Transform, f *component.Float) {
		pose := f.Motion.At(elapsed)
		offset := pose.OffsetY

		if f.Script != nil && !f.ScriptFailed {
			v, err := f.Script.Eval(elapsed, f.Phase, f.Motion)
			if err != nil {
				log.Printf("float: entity %v: %v; falling back to sine motion", e, err)
				f.ScriptFailed = true
			} else {
				offset = f.Motion.Clamp(v)
			}
		}

		tr.Position[1] = f.BaseY + offset
		tr.Rotation[0] = pose.RotationX
		tr.Rotation[1] = pose.RotationY
	})
}
