package entity

import (
	"log"

	"github.com/milk9111/reefolio/assets"
	"github.com/milk9111/reefolio/ecs"
	"github.com/milk9111/reefolio/ecs/component"
	"github.com/milk9111/reefolio/prefabs"
)

var openAmbiencePlayer = assets.LoadAmbiencePlayer

func buildAmbience(spec prefabs.AmbienceSpec, muted bool) *component.Ambience {
	return &component.Ambience{Volume: spec.Volume, Muted: muted}
}

// startAmbience opens the drone player for the scene root. It runs once the
// rest of the scene has been built, so a failed build never leaks a player.
// A missing audio device leaves the scene silent rather than failing.
func startAmbience(w *ecs.World, root ecs.Entity) {
	amb, ok := ecs.Get(w, root, component.AmbienceComponent.Kind())
	if !ok || amb.Muted || amb.Volume <= 0 || amb.Player != nil {
		return
	}
	player, err := openAmbiencePlayer(amb.Volume)
	if err != nil {
		log.Printf("ambience: %v", err)
		return
	}
	amb.Player = player
}
