package entity

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/reefolio/ecs"
	"github.com/milk9111/reefolio/ecs/component"
	"github.com/milk9111/reefolio/prefabs"
	"golang.org/x/image/colornames"
)

// NewSparkles scatters spec.Count particles uniformly inside the box. The
// same seed always gives the same field.
func NewSparkles(w *ecs.World, spec prefabs.SparklesSpec) (ecs.Entity, error) {
	scale := spec.Scale.Vec3()
	if scale == (mgl64.Vec3{}) {
		scale = mgl64.Vec3{20, 20, 20}
	}
	center := spec.Center.Vec3()
	rng := rand.New(rand.NewPCG(spec.Seed, spec.Seed^0x9e3779b97f4a7c15))

	sp := &component.Sparkles{
		Count:   spec.Count,
		Center:  center,
		Scale:   scale,
		Size:    spec.Size,
		Speed:   spec.Speed,
		Opacity: spec.Opacity,
		Color:   spec.Color.Or(colornames.White),
		Seed:    spec.Seed,
	}
	if spec.Count > 0 {
		space := cp.NewSpace()
		space.SetGravity(cp.Vector{})
		sp.Space = space
		sp.Bodies = make([]*cp.Body, 0, spec.Count)
		sp.Depth = make([]float64, 0, spec.Count)
		sp.Phase = make([]float64, 0, spec.Count)
		for range spec.Count {
			x := center.X() + (rng.Float64()-0.5)*scale.X()
			y := center.Y() + (rng.Float64()-0.5)*scale.Y()
			z := center.Z() + (rng.Float64()-0.5)*scale.Z()
			body := space.AddBody(cp.NewBody(1, cp.INFINITY))
			body.SetPosition(cp.Vector{X: x, Y: y})
			sp.Bodies = append(sp.Bodies, body)
			sp.Depth = append(sp.Depth, z)
			sp.Phase = append(sp.Phase, rng.Float64()*2*math.Pi)
		}
	}

	sparkles := ecs.CreateEntity(w)
	if err := ecs.Add(w, sparkles, component.SparklesComponent.Kind(), sp); err != nil {
		return 0, fmt.Errorf("sparkles: add component: %w", err)
	}
	return sparkles, nil
}
