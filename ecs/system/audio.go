package system

import (
	"github.com/milk9111/reefolio/ecs"
	"github.com/milk9111/reefolio/ecs/component"
)

// AmbienceSystem starts the background drone once and keeps its volume in
// sync with the component.
type AmbienceSystem struct{}

func NewAmbienceSystem() *AmbienceSystem {
	return &AmbienceSystem{}
}

func (a *AmbienceSystem) Update(w *ecs.World) {
	ecs.ForEach(w, component.AmbienceComponent.Kind(), func(_ ecs.Entity, amb *component.Ambience) {
		player := amb.Player
		if player == nil {
			return
		}
		if amb.Muted {
			if player.IsPlaying() {
				player.Pause()
			}
			return
		}
		player.SetVolume(amb.Volume)
		if !amb.Started || !player.IsPlaying() {
			player.Play()
			amb.Started = true
		}
	})
}
