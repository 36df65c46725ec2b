package scroll

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	viewport = 720.0
	frame    = 1.0 / 60
)

func newControls(t *testing.T, cfg Config) *Controls {
	t.Helper()
	c, err := New(cfg, viewport)
	require.NoError(t, err)
	return c
}

func TestNewAppliesDefaults(t *testing.T) {
	c := newControls(t, Config{Damping: DefaultDamping})
	assert.Equal(t, DefaultPages, c.Config().Pages)
	assert.Equal(t, 1.0, c.Config().Distance)
	assert.Equal(t, DefaultEpsilon, c.Config().Epsilon)
	assert.Zero(t, c.Offset())
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cases := []struct {
		name string
		cfg  Config
	}{
		{"too_few_pages", Config{Pages: 0.5}},
		{"negative_distance", Config{Distance: -1}},
		{"negative_damping", Config{Damping: -0.1}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := New(c.cfg, viewport)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestScrollIsClampedToDocument(t *testing.T) {
	c := newControls(t, Config{})

	c.ScrollBy(-500)
	assert.Zero(t, c.ScrollTop())
	assert.Zero(t, c.Target())

	c.ScrollBy(1e9)
	assert.Equal(t, 4*viewport, c.ScrollTop())
	assert.Equal(t, 1.0, c.Target())
}

func TestScrollToPage(t *testing.T) {
	c := newControls(t, Config{})
	c.ScrollToPage(2.1)
	assert.InDelta(t, 0.525, c.Target(), 1e-12)

	c.ScrollToPage(4.2)
	assert.Equal(t, 1.0, c.Target())
}

func TestUpdateWithoutDampingJumps(t *testing.T) {
	c := newControls(t, Config{})
	c.ScrollToPage(2)
	c.Update(frame)
	assert.InDelta(t, 0.5, c.Offset(), 1e-12)
	assert.InDelta(t, 0.5, c.Delta(), 1e-12)
	assert.InDelta(t, 2*viewport, c.Pixels(), 1e-9)
}

func TestDampedOffsetConvergesMonotonically(t *testing.T) {
	c := newControls(t, Config{Damping: DefaultDamping})
	c.ScrollToPage(4)

	prev := c.Offset()
	for i := 0; i < 240; i++ {
		c.Update(frame)
		off := c.Offset()
		require.GreaterOrEqual(t, off, prev, "frame %d moved backwards", i)
		require.LessOrEqual(t, off, 1.0)
		prev = off
	}
	assert.Equal(t, 1.0, c.Offset())

	// scrolling back up converges from above
	c.ScrollTo(0)
	for i := 0; i < 240; i++ {
		c.Update(frame)
		off := c.Offset()
		require.LessOrEqual(t, off, prev, "frame %d moved backwards", i)
		require.GreaterOrEqual(t, off, 0.0)
		prev = off
	}
	assert.Zero(t, c.Offset())
}

func TestDeltaSettlesWhenIdle(t *testing.T) {
	c := newControls(t, Config{Damping: DefaultDamping})
	c.ScrollToPage(1)
	moving := 0.0
	for i := 0; i < 20; i++ {
		c.Update(frame)
		moving = math.Max(moving, c.Delta())
	}
	assert.Greater(t, moving, 0.0)

	for i := 0; i < 600; i++ {
		c.Update(frame)
	}
	assert.Less(t, c.Delta(), 1e-3)
}

func TestDampSnapsWithinEpsilon(t *testing.T) {
	v, vel := Damp(0.99995, 1, 0.5, DefaultDamping, frame, DefaultEpsilon)
	assert.Equal(t, 1.0, v)
	assert.Equal(t, 0.5, vel)
}

func TestSetViewportKeepsProgress(t *testing.T) {
	c := newControls(t, Config{})
	c.ScrollToPage(1)
	before := c.Target()

	c.SetViewport(1080)
	assert.InDelta(t, before, c.Target(), 1e-12)
	assert.InDelta(t, 1080.0, c.ScrollTop(), 1e-9)
}

func TestRangeCurveVisible(t *testing.T) {
	c := newControls(t, Config{})
	c.ScrollToPage(2) // offset 0.5 once updated
	c.Update(frame)

	cases := []struct {
		name        string
		from, dist  float64
		wantRange   float64
		wantCurve   float64
		wantVisible bool
	}{
		{"before_window", 0.6, 0.2, 0, 0, false},
		{"after_window", 0.1, 0.2, 1, 0, false},
		{"middle_of_window", 0.4, 0.2, 0.5, 1, true},
		{"start_of_window", 0.5, 0.25, 0, 0, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.wantRange, c.Range(tc.from, tc.dist, 0), 1e-9)
			assert.InDelta(t, tc.wantCurve, c.Curve(tc.from, tc.dist, 0), 1e-9)
			assert.Equal(t, tc.wantVisible, c.Visible(tc.from, tc.dist, 0))
		})
	}

	assert.True(t, c.Visible(0.52, 0.1, 0.05))
}
