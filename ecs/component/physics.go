package component

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"
)

// Sparkles is a field of drifting particles inside a box centred on Center.
// Particles drift in X/Y on a Chipmunk space; Z stays where it was spawned.
type Sparkles struct {
	Count   int
	Center  mgl64.Vec3
	Scale   mgl64.Vec3
	Size    float64
	Speed   float64
	Opacity float64
	Color   color.Color
	Seed    uint64

	Space  *cp.Space
	Bodies []*cp.Body
	Depth  []float64
	Phase  []float64
	// Agitation scales drift with the current scroll speed.
	Agitation float64
}

var SparklesComponent = NewComponent[Sparkles]()
