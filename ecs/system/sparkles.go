package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/reefolio/common"
	"github.com/milk9111/reefolio/ecs"
	"github.com/milk9111/reefolio/ecs/component"
)

const (
	// sparkleResponse is how quickly a particle's velocity eases toward its drift.
	sparkleResponse = 1.5
	// agitationGain converts scroll delta (progress per frame) into extra drift.
	agitationGain = 120.0
)

// SparklesSystem steps the particle space and wraps particles that leave
// their box.
type SparklesSystem struct {
	elapsed float64
	bound   map[*cp.Space]struct{}
}

func NewSparklesSystem() *SparklesSystem {
	return &SparklesSystem{bound: make(map[*cp.Space]struct{})}
}

func (s *SparklesSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := sceneDelta(w)
	s.elapsed = sceneElapsed(w)

	ecs.ForEach(w, component.SparklesComponent.Kind(), func(_ ecs.Entity, sp *component.Sparkles) {
		if sp.Space == nil {
			return
		}
		if _, ok := s.bound[sp.Space]; !ok {
			s.bind(sp)
		}
		sp.Space.Step(dt)

		halfX, halfY := sp.Scale.X()/2, sp.Scale.Y()/2
		for _, body := range sp.Bodies {
			pos := body.Position()
			wrapped := cp.Vector{
				X: common.Wrap(pos.X, sp.Center.X()-halfX, sp.Center.X()+halfX),
				Y: common.Wrap(pos.Y, sp.Center.Y()-halfY, sp.Center.Y()+halfY),
			}
			if wrapped != pos {
				body.SetPosition(wrapped)
			}
		}
	})
}

func (s *SparklesSystem) bind(sp *component.Sparkles) {
	for i, body := range sp.Bodies {
		phase := 0.0
		if i < len(sp.Phase) {
			phase = sp.Phase[i]
		}
		body.SetVelocityUpdateFunc(func(body *cp.Body, gravity cp.Vector, damping, dt float64) {
			target := SparkleDrift(s.elapsed, phase, sp.Speed, sp.Agitation)
			body.SetForce(target.Sub(body.Velocity()).Mult(body.Mass() * sparkleResponse))
			cp.BodyUpdateVelocity(body, gravity, damping, dt)
		})
	}
	s.bound[sp.Space] = struct{}{}
}

// SparkleDrift is the velocity a particle eases toward: a slow sideways
// sway and a buoyant rise, both quickened while the page scrolls.
func SparkleDrift(elapsed, phase, speed, agitation float64) cp.Vector {
	drive := speed * (1 + agitation*agitationGain)
	return cp.Vector{
		X: math.Sin(elapsed*0.3+phase) * 0.5 * drive,
		Y: (0.6 + 0.4*math.Sin(elapsed*0.7+phase*1.3)) * drive,
	}
}
