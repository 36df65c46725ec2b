package motion

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFloatStaysWithinAmplitude(t *testing.T) {
	speeds := []float64{1.5, 1.2, 0.8, 1, 0.5}
	for _, speed := range speeds {
		f := NewFloat(speed)
		for i := 0; i < 10000; i++ {
			elapsed := float64(i) * 0.0173
			pose := f.At(elapsed)
			require.LessOrEqual(t, math.Abs(pose.OffsetY), f.Amplitude+1e-12)
			require.LessOrEqual(t, math.Abs(pose.RotationX), f.RotationAmplitude+1e-12)
			require.LessOrEqual(t, math.Abs(pose.RotationY), f.RotationAmplitude+1e-12)
		}
	}
}

func TestFloatPoseValues(t *testing.T) {
	f := NewFloat(2)

	zero := f.At(0)
	assert.InDelta(t, 0, zero.OffsetY, 1e-12)
	assert.InDelta(t, DefaultRotationAmplitude, zero.RotationX, 1e-12)
	assert.InDelta(t, 0, zero.RotationY, 1e-12)

	peak := f.At(math.Pi / 4) // sin(pi/2)
	assert.InDelta(t, DefaultAmplitude, peak.OffsetY, 1e-12)
}

func TestNewFloatDefaults(t *testing.T) {
	assert.Equal(t, Float{Speed: 1, Amplitude: DefaultAmplitude, RotationAmplitude: DefaultRotationAmplitude, RotationRate: DefaultRotationRate}, NewFloat(0))
	assert.Equal(t, 0.5, NewFloat(0.5).Speed)
}

func TestZeroAmplitudeHoldsStill(t *testing.T) {
	f := NewFloat(1.5)
	f.Amplitude = 0
	require.NoError(t, f.Validate())
	for _, elapsed := range []float64{0, 0.7, 1.3, 10} {
		assert.Zero(t, f.At(elapsed).OffsetY)
		assert.Zero(t, f.Clamp(0.4))
	}
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Float{Amplitude: 0.2}.Validate())
	assert.ErrorIs(t, Float{Amplitude: -1}.Validate(), ErrNegativeAmplitude)
	assert.ErrorIs(t, Float{RotationAmplitude: -0.1}.Validate(), ErrNegativeAmplitude)
}

func TestClamp(t *testing.T) {
	f := Float{Amplitude: 0.2}
	assert.Equal(t, 0.2, f.Clamp(5))
	assert.Equal(t, -0.2, f.Clamp(-5))
	assert.Equal(t, 0.1, f.Clamp(0.1))
	assert.Equal(t, 0.0, f.Clamp(math.NaN()))
}
