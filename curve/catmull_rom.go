// Package curve evaluates smooth paths through 3D control points.
package curve

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

var (
	ErrTooFewPoints     = errors.New("curve: at least two control points are required")
	ErrUnknownCurveType = errors.New("curve: unknown curve type")
)

// Type selects the knot parametrisation of a Catmull-Rom spline.
type Type string

const (
	Centripetal Type = "centripetal"
	Chordal     Type = "chordal"
	CatmullRom  Type = "catmullrom"
)

const (
	DefaultTension = 0.5
	arcDivisions   = 200
	minKnotSpacing = 1e-4
)

// Options tunes a spline. The zero value is an open centripetal spline.
type Options struct {
	Type   Type
	Closed bool
	// Tension applies to CatmullRom curves; nil means DefaultTension.
	Tension *float64
}

// Path is an immutable Catmull-Rom spline through a fixed set of points.
type Path struct {
	points  []mgl64.Vec3
	kind    Type
	closed  bool
	tension float64

	lengths []float64
}

// New builds a path through points. The slice is copied.
func New(points []mgl64.Vec3, opts Options) (*Path, error) {
	if len(points) < 2 {
		return nil, ErrTooFewPoints
	}
	kind := opts.Type
	if kind == "" {
		kind = Centripetal
	}
	switch kind {
	case Centripetal, Chordal, CatmullRom:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCurveType, opts.Type)
	}
	tension := DefaultTension
	if opts.Tension != nil {
		tension = *opts.Tension
	}

	p := &Path{
		points:  append([]mgl64.Vec3(nil), points...),
		kind:    kind,
		closed:  opts.Closed,
		tension: tension,
	}
	p.lengths = p.arcLengths(arcDivisions)
	return p, nil
}

// MustNew is New for fixed, known-good control points.
func MustNew(points []mgl64.Vec3, opts Options) *Path {
	p, err := New(points, opts)
	if err != nil {
		panic(err)
	}
	return p
}

// Points returns a copy of the control points.
func (p *Path) Points() []mgl64.Vec3 {
	return append([]mgl64.Vec3(nil), p.points...)
}

func (p *Path) Type() Type   { return p.kind }
func (p *Path) Closed() bool { return p.closed }

// Point evaluates the curve at parameter t in [0,1]. Values outside are clamped.
func (p *Path) Point(t float64) mgl64.Vec3 {
	t = math.Max(0, math.Min(1, t))
	n := len(p.points)

	segments := n - 1
	if p.closed {
		segments = n
	}
	pos := float64(segments) * t
	seg := int(math.Floor(pos))
	weight := pos - float64(seg)

	if p.closed {
		if seg <= 0 {
			seg += (int(math.Floor(math.Abs(float64(seg))/float64(n))) + 1) * n
		}
	} else if weight == 0 && seg == n-1 {
		seg = n - 2
		weight = 1
	}

	var p0, p3 mgl64.Vec3
	if p.closed || seg > 0 {
		p0 = p.points[(seg-1)%n]
	} else {
		// reflect the first point to extend the curve past its start
		p0 = p.points[0].Sub(p.points[1]).Add(p.points[0])
	}
	p1 := p.points[seg%n]
	p2 := p.points[(seg+1)%n]
	if p.closed || seg+2 < n {
		p3 = p.points[(seg+2)%n]
	} else {
		p3 = p.points[n-1].Sub(p.points[n-2]).Add(p.points[n-1])
	}

	var polys [3]cubicPoly
	if p.kind == CatmullRom {
		for axis := range 3 {
			polys[axis] = uniformPoly(p0[axis], p1[axis], p2[axis], p3[axis], p.tension)
		}
	} else {
		exp := 0.25
		if p.kind == Chordal {
			exp = 0.5
		}
		dt0 := math.Pow(distSq(p0, p1), exp)
		dt1 := math.Pow(distSq(p1, p2), exp)
		dt2 := math.Pow(distSq(p2, p3), exp)

		if dt1 < minKnotSpacing {
			dt1 = 1
		}
		if dt0 < minKnotSpacing {
			dt0 = dt1
		}
		if dt2 < minKnotSpacing {
			dt2 = dt1
		}
		for axis := range 3 {
			polys[axis] = nonUniformPoly(p0[axis], p1[axis], p2[axis], p3[axis], dt0, dt1, dt2)
		}
	}

	return mgl64.Vec3{polys[0].at(weight), polys[1].at(weight), polys[2].at(weight)}
}

// PointAt evaluates the curve at fraction u of its arc length.
func (p *Path) PointAt(u float64) mgl64.Vec3 {
	return p.Point(p.uToT(u))
}

// Tangent returns the unit direction of travel at parameter t.
func (p *Path) Tangent(t float64) mgl64.Vec3 {
	const delta = 1e-4
	t1 := math.Max(0, t-delta)
	t2 := math.Min(1, t+delta)
	d := p.Point(t2).Sub(p.Point(t1))
	if d.Len() == 0 {
		return mgl64.Vec3{}
	}
	return d.Normalize()
}

// Length approximates the arc length of the whole curve.
func (p *Path) Length() float64 {
	return p.lengths[len(p.lengths)-1]
}

func (p *Path) arcLengths(divisions int) []float64 {
	lengths := make([]float64, divisions+1)
	last := p.Point(0)
	sum := 0.0
	for i := 1; i <= divisions; i++ {
		cur := p.Point(float64(i) / float64(divisions))
		sum += cur.Sub(last).Len()
		lengths[i] = sum
		last = cur
	}
	return lengths
}

func (p *Path) uToT(u float64) float64 {
	u = math.Max(0, math.Min(1, u))
	lengths := p.lengths
	n := len(lengths)
	target := u * lengths[n-1]

	lo, hi := 0, n-1
	for lo <= hi {
		mid := lo + (hi-lo)/2
		switch c := lengths[mid] - target; {
		case c < 0:
			lo = mid + 1
		case c > 0:
			hi = mid - 1
		default:
			return float64(mid) / float64(n-1)
		}
	}
	i := max(hi, 0)
	if lengths[i] == target || i+1 >= n {
		return float64(i) / float64(n-1)
	}
	before := lengths[i]
	segment := lengths[i+1] - before
	if segment <= 0 {
		return float64(i) / float64(n-1)
	}
	frac := (target - before) / segment
	return (float64(i) + frac) / float64(n-1)
}

func distSq(a, b mgl64.Vec3) float64 {
	d := a.Sub(b)
	return d.Dot(d)
}

// cubicPoly is c0 + c1*t + c2*t^2 + c3*t^3 on one axis of one segment.
type cubicPoly struct {
	c0, c1, c2, c3 float64
}

func hermite(x0, x1, t0, t1 float64) cubicPoly {
	return cubicPoly{
		c0: x0,
		c1: t0,
		c2: -3*x0 + 3*x1 - 2*t0 - t1,
		c3: 2*x0 - 2*x1 + t0 + t1,
	}
}

func uniformPoly(x0, x1, x2, x3, tension float64) cubicPoly {
	return hermite(x1, x2, tension*(x2-x0), tension*(x3-x1))
}

func nonUniformPoly(x0, x1, x2, x3, dt0, dt1, dt2 float64) cubicPoly {
	t1 := (x1-x0)/dt0 - (x2-x0)/(dt0+dt1) + (x2-x1)/dt1
	t2 := (x2-x1)/dt1 - (x3-x1)/(dt1+dt2) + (x3-x2)/dt2
	// rescale tangents to the [0,1] segment parameter
	return hermite(x1, x2, t1*dt1, t2*dt1)
}

func (c cubicPoly) at(t float64) float64 {
	t2 := t * t
	return c.c0 + c.c1*t + c.c2*t2 + c.c3*t2*t
}
