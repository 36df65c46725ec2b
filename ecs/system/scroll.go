package system

import (
	"log"
	"math"

	"github.com/milk9111/reefolio/ecs"
	"github.com/milk9111/reefolio/ecs/component"
	"github.com/milk9111/reefolio/scroll"
)

// ScrollSystem feeds wheel, keyboard and navigation input into the scroll
// controller and advances its damped offset.
type ScrollSystem struct{}

func NewScrollSystem() *ScrollSystem {
	return &ScrollSystem{}
}

func (s *ScrollSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := sceneDelta(w)
	navigation := w.Events().Peek(ecs.EventNavigate)

	delta := 0.0
	ecs.ForEach(w, component.ScrollComponent.Kind(), func(e ecs.Entity, sc *component.Scroll) {
		ctrl := sc.Controls
		if ctrl == nil {
			return
		}

		if input, ok := ecs.Get(w, e, component.InputComponent.Kind()); ok {
			// ebiten reports positive wheel values when scrolling up
			if input.WheelY != 0 {
				ctrl.ScrollBy(-input.WheelY * sc.WheelStep)
			}
			if input.Up {
				ctrl.ScrollBy(-sc.KeyStep)
			}
			if input.Down {
				ctrl.ScrollBy(sc.KeyStep)
			}
			if input.PageUp {
				ctrl.ScrollBy(-ctrl.Viewport())
			}
			if input.PageDown {
				ctrl.ScrollBy(ctrl.Viewport())
			}
			if input.Home {
				ctrl.ScrollTo(0)
			}
			if input.End {
				ctrl.ScrollTo(math.MaxFloat64)
			}
		}

		for _, evt := range navigation {
			nav, ok := evt.Data.(ecs.NavigateEvent)
			if !ok {
				continue
			}
			vh, ok := sc.Anchors[nav.Anchor]
			if !ok {
				log.Printf("scroll: unknown anchor %q", nav.Anchor)
				continue
			}
			ctrl.ScrollToPage(vh)
		}

		ctrl.Update(dt)
		delta = math.Max(delta, ctrl.Delta())
	})

	ecs.ForEach(w, component.SparklesComponent.Kind(), func(_ ecs.Entity, sp *component.Sparkles) {
		sp.Agitation = delta
	})
}

// sceneControls returns the first scroll controller in the world, or nil.
func sceneControls(w *ecs.World) *scroll.Controls {
	e, ok := w.First(component.ScrollComponent.Kind())
	if !ok {
		return nil
	}
	sc, ok := ecs.Get(w, e, component.ScrollComponent.Kind())
	if !ok {
		return nil
	}
	return sc.Controls
}

// sceneProgress returns the damped scroll offset of the scene.
func sceneProgress(w *ecs.World) float64 {
	if ctrl := sceneControls(w); ctrl != nil {
		return ctrl.Offset()
	}
	return 0
}
