package motion

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// Script is a compiled tengo program that computes a vertical offset.
//
// The program sees the globals time, speed, amplitude and phase, and must
// assign the float variable offset. Results are clamped to ±amplitude by
// the caller.
type Script struct {
	Path     string
	compiled *tengo.Compiled
}

const scriptPrelude = `
offset := 0.0
`

// CompileScript compiles src once; Eval reuses the compiled program.
func CompileScript(path string, src []byte) (*Script, error) {
	script := tengo.NewScript(append([]byte(scriptPrelude), src...))
	for _, name := range []string{"time", "speed", "amplitude", "phase"} {
		if err := script.Add(name, 0.0); err != nil {
			return nil, fmt.Errorf("motion: script %s: declare %s: %w", path, name, err)
		}
	}
	script.SetImports(stdlib.GetModuleMap("math"))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("motion: compile %s: %w", path, err)
	}
	return &Script{Path: path, compiled: compiled}, nil
}

// Clone returns an independent copy, so objects sharing a script do not
// share globals.
func (s *Script) Clone() *Script {
	if s == nil {
		return nil
	}
	return &Script{Path: s.Path, compiled: s.compiled.Clone()}
}

// Eval runs the script for one frame.
func (s *Script) Eval(elapsed, phase float64, f Float) (float64, error) {
	if s == nil || s.compiled == nil {
		return 0, fmt.Errorf("motion: nil script")
	}
	vars := map[string]float64{
		"time":      elapsed,
		"speed":     f.Speed,
		"amplitude": f.Amplitude,
		"phase":     phase,
	}
	for name, v := range vars {
		if err := s.compiled.Set(name, v); err != nil {
			return 0, fmt.Errorf("motion: script %s: set %s: %w", s.Path, name, err)
		}
	}
	if err := s.compiled.Run(); err != nil {
		return 0, fmt.Errorf("motion: run %s: %w", s.Path, err)
	}
	return s.compiled.Get("offset").Float(), nil
}
