package motion

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const wobble = `
math := import("math")
offset = math.sin(time * speed + phase) * amplitude * 3
`

func TestScriptEval(t *testing.T) {
	s, err := CompileScript("wobble.tengo", []byte(wobble))
	require.NoError(t, err)

	f := Float{Speed: 2, Amplitude: 0.1}
	got, err := s.Eval(0.25, 0.5, f)
	require.NoError(t, err)
	assert.InDelta(t, math.Sin(0.25*2+0.5)*0.3, got, 1e-12)

	// the raw result may exceed the amplitude; Clamp restores the bound
	assert.LessOrEqual(t, math.Abs(f.Clamp(got)), f.Amplitude)
}

func TestScriptDefaultsToZeroOffset(t *testing.T) {
	s, err := CompileScript("noop.tengo", []byte(`x := 1`))
	require.NoError(t, err)

	got, err := s.Eval(1, 0, Float{Speed: 1, Amplitude: 0.2})
	require.NoError(t, err)
	assert.Zero(t, got)
}

func TestScriptCompileError(t *testing.T) {
	_, err := CompileScript("broken.tengo", []byte(`offset = (`))
	assert.Error(t, err)
}

func TestScriptClonesAreIndependent(t *testing.T) {
	s, err := CompileScript("wobble.tengo", []byte(wobble))
	require.NoError(t, err)
	c := s.Clone()

	f := Float{Speed: 1, Amplitude: 0.2}
	a, err := s.Eval(1, 0, f)
	require.NoError(t, err)
	b, err := c.Eval(2, 0, f)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)

	again, err := s.Eval(1, 0, f)
	require.NoError(t, err)
	assert.Equal(t, a, again)
}

func TestEvalOnNilScript(t *testing.T) {
	var s *Script
	_, err := s.Eval(0, 0, Float{})
	assert.Error(t, err)
	assert.Nil(t, s.Clone())
}
