package entity

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/reefolio/curve"
	"github.com/milk9111/reefolio/ecs"
	"github.com/milk9111/reefolio/ecs/component"
	"github.com/milk9111/reefolio/prefabs"
)

func NewCamera(w *ecs.World, spec prefabs.CameraSpec) (ecs.Entity, error) {
	points := make([]mgl64.Vec3, 0, len(spec.Path.Points))
	for _, p := range spec.Path.Points {
		points = append(points, p.Vec3())
	}
	path, err := curve.New(points, curve.Options{
		Type:    curve.Type(spec.Path.Type),
		Closed:  spec.Path.Closed,
		Tension: spec.Path.Tension,
	})
	if err != nil {
		return 0, fmt.Errorf("camera: build path: %w", err)
	}

	camera := ecs.CreateEntity(w)
	if err := ecs.Add(w, camera, component.CameraTagComponent.Kind(), &component.CameraTag{}); err != nil {
		return 0, fmt.Errorf("camera: add camera tag: %w", err)
	}

	if err := ecs.Add(w, camera, component.TransformComponent.Kind(), &component.Transform{
		Position: spec.Position.Vec3(),
		Scale:    1,
	}); err != nil {
		return 0, fmt.Errorf("camera: add transform: %w", err)
	}

	if err := ecs.Add(w, camera, component.CameraComponent.Kind(), &component.Camera{
		FOV:  spec.FOV,
		Near: spec.Near,
		Far:  spec.Far,
	}); err != nil {
		return 0, fmt.Errorf("camera: add camera component: %w", err)
	}

	if err := ecs.Add(w, camera, component.CameraRigComponent.Kind(), &component.CameraRig{
		Path:      path,
		Smoothing: spec.Smoothing,
		LookAhead: spec.LookAhead,
		ArcLength: spec.ArcLength,
		Target:    spec.Position.Vec3(),
	}); err != nil {
		return 0, fmt.Errorf("camera: add rig: %w", err)
	}

	return camera, nil
}
