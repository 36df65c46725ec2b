// Package motion computes the decorative bobbing of floating scene objects.
package motion

import (
	"errors"
	"math"
)

var ErrNegativeAmplitude = errors.New("motion: amplitude must not be negative")

const (
	DefaultAmplitude         = 0.2
	DefaultRotationAmplitude = 0.2
	DefaultRotationRate      = 0.5
)

// Float describes a sinusoidal bob around a resting height.
type Float struct {
	Speed             float64
	Amplitude         float64
	RotationAmplitude float64
	RotationRate      float64
}

// Pose is the displacement of a floating object at one instant.
type Pose struct {
	OffsetY   float64
	RotationX float64
	RotationY float64
}

// NewFloat returns a bob at speed with the scene's default amplitude and
// tilt. A zero speed is kept as 1 so that a bare float still moves. Fields
// may be overridden afterwards, including to zero.
func NewFloat(speed float64) Float {
	if speed == 0 {
		speed = 1
	}
	return Float{
		Speed:             speed,
		Amplitude:         DefaultAmplitude,
		RotationAmplitude: DefaultRotationAmplitude,
		RotationRate:      DefaultRotationRate,
	}
}

func (f Float) Validate() error {
	if f.Amplitude < 0 || f.RotationAmplitude < 0 {
		return ErrNegativeAmplitude
	}
	return nil
}

// At returns the pose after elapsed seconds.
func (f Float) At(elapsed float64) Pose {
	return Pose{
		OffsetY:   math.Sin(elapsed*f.Speed) * f.Amplitude,
		RotationX: math.Cos(elapsed*f.RotationRate) * f.RotationAmplitude,
		RotationY: math.Sin(elapsed*f.RotationRate) * f.RotationAmplitude,
	}
}

// Clamp bounds an externally computed offset to the float's amplitude.
func (f Float) Clamp(offset float64) float64 {
	if math.IsNaN(offset) {
		return 0
	}
	return math.Max(-f.Amplitude, math.Min(f.Amplitude, offset))
}
