package system

import (
	"github.com/milk9111/reefolio/ecs"
	"github.com/milk9111/reefolio/ecs/component"
)

// ClockSystem advances every Clock by one fixed tick.
type ClockSystem struct {
	step float64
}

func NewClockSystem(tps int) *ClockSystem {
	if tps <= 0 {
		tps = 60
	}
	return &ClockSystem{step: 1 / float64(tps)}
}

func (c *ClockSystem) Update(w *ecs.World) {
	ecs.ForEach(w, component.ClockComponent.Kind(), func(_ ecs.Entity, clock *component.Clock) {
		clock.Delta = c.step
		clock.Elapsed += c.step
		clock.Frame++
	})
}

// sceneDelta returns the tick length of the scene clock, or a 60 TPS tick.
func sceneDelta(w *ecs.World) float64 {
	if e, ok := w.First(component.ClockComponent.Kind()); ok {
		if clock, ok := ecs.Get(w, e, component.ClockComponent.Kind()); ok && clock.Delta > 0 {
			return clock.Delta
		}
	}
	return 1.0 / 60
}

func sceneElapsed(w *ecs.World) float64 {
	if e, ok := w.First(component.ClockComponent.Kind()); ok {
		if clock, ok := ecs.Get(w, e, component.ClockComponent.Kind()); ok {
			return clock.Elapsed
		}
	}
	return 0
}
