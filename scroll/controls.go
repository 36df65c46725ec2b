// Package scroll turns wheel and keyboard input over a virtual multi-page
// document into a damped progress value in [0,1].
package scroll

import (
	"errors"
	"math"

	"github.com/milk9111/reefolio/common"
)

var ErrInvalidConfig = errors.New("scroll: invalid config")

const (
	DefaultPages   = 5.0
	DefaultDamping = 0.3
	DefaultEpsilon = 1e-4

	minSmoothTime = 1e-4
)

// Config mirrors the tuning knobs of the scene prefab.
type Config struct {
	Pages    float64 // document height in viewport heights
	Distance float64 // scroll distance multiplier per page
	Damping  float64 // smooth time in seconds; 0 disables damping
	Epsilon  float64 // snap threshold
}

// WithDefaults fills zero fields: 5 pages, distance 1 and the default epsilon.
func (c Config) WithDefaults() Config {
	if c.Pages == 0 {
		c.Pages = DefaultPages
	}
	if c.Distance == 0 {
		c.Distance = 1
	}
	if c.Epsilon == 0 {
		c.Epsilon = DefaultEpsilon
	}
	return c
}

func (c Config) Validate() error {
	switch {
	case c.Pages < 1:
		return errors.Join(ErrInvalidConfig, errors.New("pages must be >= 1"))
	case c.Distance <= 0:
		return errors.Join(ErrInvalidConfig, errors.New("distance must be > 0"))
	case c.Damping < 0:
		return errors.Join(ErrInvalidConfig, errors.New("damping must be >= 0"))
	}
	return nil
}

// Controls tracks the scroll position of the document and the damped
// progress derived from it.
type Controls struct {
	cfg Config

	viewport  float64 // viewport height in pixels
	scrollTop float64 // pixels scrolled from the top

	offset   float64
	delta    float64
	velocity float64
	deltaVel float64
}

func New(cfg Config, viewportHeight float64) (*Controls, error) {
	cfg = cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Controls{cfg: cfg, viewport: math.Max(1, viewportHeight)}, nil
}

func (c *Controls) Config() Config { return c.cfg }

// Offset is the damped scroll progress in [0,1].
func (c *Controls) Offset() float64 { return c.offset }

// Delta is the damped magnitude of the per-frame change of Offset.
func (c *Controls) Delta() float64 { return c.delta }

// Target is the undamped progress the offset is heading for.
func (c *Controls) Target() float64 {
	return common.Clamp01(c.scrollTop / c.scrollRange())
}

func (c *Controls) ScrollTop() float64 { return c.scrollTop }

func (c *Controls) Viewport() float64 { return c.viewport }

// SetViewport changes the viewport height, keeping the current progress.
func (c *Controls) SetViewport(h float64) {
	if h <= 0 || h == c.viewport {
		return
	}
	progress := c.Target()
	c.viewport = h
	c.scrollTop = progress * c.scrollRange()
}

// ScrollBy moves the document by dy pixels, clamped to the document.
func (c *Controls) ScrollBy(dy float64) {
	c.ScrollTo(c.scrollTop + dy)
}

// ScrollTo jumps the document to an absolute pixel position.
func (c *Controls) ScrollTo(top float64) {
	c.scrollTop = common.Clamp(top, 0, c.scrollRange())
}

// ScrollToPage scrolls so the given vertical position, in viewport heights
// from the top of the document, sits at the top of the viewport.
func (c *Controls) ScrollToPage(vh float64) {
	c.ScrollTo(vh * c.viewport * c.cfg.Distance)
}

// Pixels is how far the content layer is currently translated upward.
func (c *Controls) Pixels() float64 {
	return c.offset * c.scrollRange()
}

// ScrollHeight is how many pixels the document moves between progress 0
// and progress 1.
func (c *Controls) ScrollHeight() float64 { return c.scrollRange() }

func (c *Controls) scrollRange() float64 {
	r := (c.cfg.Pages - 1) * c.cfg.Distance * c.viewport
	if r <= 0 {
		return 1
	}
	return r
}

// Update advances the damped offset by dt seconds.
func (c *Controls) Update(dt float64) {
	last := c.offset
	target := c.Target()
	if c.cfg.Damping == 0 || dt <= 0 {
		c.offset = target
		c.velocity = 0
	} else {
		c.offset, c.velocity = Damp(c.offset, target, c.velocity, c.cfg.Damping, dt, c.cfg.Epsilon)
	}
	c.offset = common.Clamp01(c.offset)

	change := math.Abs(last - c.offset)
	if c.cfg.Damping == 0 || dt <= 0 {
		c.delta = change
		return
	}
	c.delta, c.deltaVel = Damp(c.delta, change, c.deltaVel, c.cfg.Damping, dt, c.cfg.Epsilon)
}

// Range maps the offset into [0,1] across the window starting at from and
// spanning distance, both expressed as fractions of the whole scroll.
func (c *Controls) Range(from, distance, margin float64) float64 {
	start := from - margin
	end := start + distance + margin*2
	switch {
	case c.offset < start:
		return 0
	case c.offset > end:
		return 1
	case end == start:
		return 1
	}
	return (c.offset - start) / (end - start)
}

// Curve rises from 0 to 1 and back to 0 across the window.
func (c *Controls) Curve(from, distance, margin float64) float64 {
	return math.Sin(c.Range(from, distance, margin) * math.Pi)
}

// Visible reports whether the offset lies inside the window.
func (c *Controls) Visible(from, distance, margin float64) bool {
	start := from - margin
	end := start + distance + margin*2
	return c.offset >= start && c.offset <= end
}

// Damp moves current toward target like a critically damped spring with the
// given smooth time. It returns the new value and velocity.
func Damp(current, target, velocity, smoothTime, dt, eps float64) (float64, float64) {
	if math.Abs(current-target) <= eps {
		return target, velocity
	}
	smoothTime = math.Max(minSmoothTime, smoothTime)
	omega := 2 / smoothTime
	x := omega * dt
	exp := 1 / (1 + x + 0.48*x*x + 0.235*x*x*x)

	change := current - target
	temp := (velocity + omega*change) * dt
	velocity = (velocity - omega*temp) * exp
	out := target + (change+temp)*exp

	// never overshoot the target
	if (target-current > 0) == (out > target) {
		out = target
		velocity = 0
	}
	return out, velocity
}
