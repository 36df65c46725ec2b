package component

import "github.com/hajimehoshi/ebiten/v2/audio"

// Ambience is the looping background drone.
type Ambience struct {
	Volume  float64
	Muted   bool
	Player  *audio.Player
	Started bool
}

var AmbienceComponent = NewComponent[Ambience]()
