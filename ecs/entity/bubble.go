package entity

import (
	"fmt"

	"github.com/milk9111/reefolio/ecs"
	"github.com/milk9111/reefolio/ecs/component"
	"github.com/milk9111/reefolio/motion"
	"github.com/milk9111/reefolio/prefabs"
	"golang.org/x/image/colornames"
)

// scriptCache compiles each motion script once per scene build.
type scriptCache map[string]*motion.Script

func (c scriptCache) load(path string) (*motion.Script, error) {
	if s, ok := c[path]; ok {
		return s.Clone(), nil
	}
	src, err := prefabs.LoadScript(path)
	if err != nil {
		return nil, fmt.Errorf("load script %s: %w", path, err)
	}
	s, err := motion.CompileScript(path, src)
	if err != nil {
		return nil, err
	}
	c[path] = s
	return s.Clone(), nil
}

func buildMaterial(spec prefabs.MaterialSpec) component.Material {
	opacity := spec.Opacity
	if opacity == 0 {
		opacity = 1
	}
	return component.Material{
		Color:              spec.Color.Or(colornames.White),
		Roughness:          spec.Roughness,
		Metalness:          spec.Metalness,
		Transmission:       spec.Transmission,
		Thickness:          spec.Thickness,
		IOR:                spec.IOR,
		Clearcoat:          spec.Clearcoat,
		ClearcoatRoughness: spec.ClearcoatRoughness,
		Opacity:            opacity,
		EnvMapIntensity:    spec.EnvMapIntensity,
	}
}

func NewBubble(w *ecs.World, spec prefabs.BubbleSpec, material component.Material, scripts scriptCache) (ecs.Entity, error) {
	f := motion.NewFloat(spec.Speed)
	if spec.Amplitude != nil {
		f.Amplitude = *spec.Amplitude
	}
	if err := f.Validate(); err != nil {
		return 0, fmt.Errorf("bubble %s: %w", spec.Name, err)
	}

	var script *motion.Script
	if spec.MotionScript != "" {
		s, err := scripts.load(spec.MotionScript)
		if err != nil {
			return 0, fmt.Errorf("bubble %s: %w", spec.Name, err)
		}
		script = s
	}

	radius := spec.Radius
	if radius == 0 {
		radius = 1
	}
	pos := spec.Position.Vec3()

	bubble := ecs.CreateEntity(w)
	if err := ecs.Add(w, bubble, component.BubbleTagComponent.Kind(), &component.BubbleTag{}); err != nil {
		return 0, fmt.Errorf("bubble %s: add tag: %w", spec.Name, err)
	}
	if err := ecs.Add(w, bubble, component.TransformComponent.Kind(), &component.Transform{Position: pos, Scale: 1}); err != nil {
		return 0, fmt.Errorf("bubble %s: add transform: %w", spec.Name, err)
	}
	if err := ecs.Add(w, bubble, component.BubbleComponent.Kind(), &component.Bubble{Radius: radius, Material: material}); err != nil {
		return 0, fmt.Errorf("bubble %s: add bubble: %w", spec.Name, err)
	}
	if err := ecs.Add(w, bubble, component.FloatComponent.Kind(), &component.Float{
		BaseY:  pos.Y(),
		Motion: f,
		Phase:  spec.Phase,
		Script: script,
	}); err != nil {
		return 0, fmt.Errorf("bubble %s: add float: %w", spec.Name, err)
	}
	return bubble, nil
}
