package entity

import (
	"fmt"

	"github.com/milk9111/reefolio/common"
	"github.com/milk9111/reefolio/ecs"
	"github.com/milk9111/reefolio/ecs/component"
	"github.com/milk9111/reefolio/prefabs"
	"github.com/milk9111/reefolio/scroll"
	"golang.org/x/image/colornames"
)

type SceneOptions struct {
	ViewportHeight float64
	Mute           bool
}

// BuildScene populates w with the scene root, camera, bubbles and sparkles
// described by the prefabs.
func BuildScene(w *ecs.World, spec *prefabs.SceneSpec, contentSpec *prefabs.ContentSpec, opts SceneOptions) error {
	if w == nil || spec == nil || contentSpec == nil {
		return fmt.Errorf("scene: nil world or spec")
	}

	root, err := NewSceneRoot(w, spec, contentSpec, opts)
	if err != nil {
		return err
	}
	if _, err := NewCamera(w, spec.Camera); err != nil {
		return err
	}

	material := buildMaterial(spec.BubbleMaterial)
	scripts := scriptCache{}
	for _, b := range spec.Bubbles {
		if _, err := NewBubble(w, b, material, scripts); err != nil {
			return err
		}
	}

	if _, err := NewSparkles(w, spec.Sparkles); err != nil {
		return err
	}

	startAmbience(w, root)
	return nil
}

// NewSceneRoot creates the entity holding scene-wide state: clock, input,
// scroll controller, lighting, content overlay and ambience settings. The
// ambience player itself is opened by BuildScene.
func NewSceneRoot(w *ecs.World, spec *prefabs.SceneSpec, contentSpec *prefabs.ContentSpec, opts SceneOptions) (ecs.Entity, error) {
	content, err := buildContent(contentSpec)
	if err != nil {
		return 0, fmt.Errorf("scene: %w", err)
	}

	viewport := opts.ViewportHeight
	if viewport <= 0 {
		viewport = common.BaseHeight
	}
	ctrl, err := scroll.New(spec.Scroll.Config(), viewport)
	if err != nil {
		return 0, fmt.Errorf("scene: scroll: %w", err)
	}
	wheelStep := spec.Scroll.WheelStep
	if wheelStep == 0 {
		wheelStep = 120
	}
	keyStep := spec.Scroll.KeyStep
	if keyStep == 0 {
		keyStep = 60
	}

	root := ecs.CreateEntity(w)
	adds := []error{
		ecs.Add(w, root, component.SceneTagComponent.Kind(), &component.SceneTag{}),
		ecs.Add(w, root, component.ClockComponent.Kind(), &component.Clock{}),
		ecs.Add(w, root, component.InputComponent.Kind(), &component.Input{}),
		ecs.Add(w, root, component.ScrollComponent.Kind(), &component.Scroll{
			Controls:  ctrl,
			WheelStep: wheelStep,
			KeyStep:   keyStep,
			Anchors:   anchorPages(content),
		}),
		ecs.Add(w, root, component.LightingComponent.Kind(), buildLighting(spec.Lighting)),
		ecs.Add(w, root, component.ContentComponent.Kind(), content),
		ecs.Add(w, root, component.AmbienceComponent.Kind(), buildAmbience(spec.Ambience, opts.Mute)),
	}
	for _, err := range adds {
		if err != nil {
			return 0, fmt.Errorf("scene: add root component: %w", err)
		}
	}
	return root, nil
}

func buildLight(spec prefabs.LightSpec) component.Light {
	return component.Light{
		Position:  spec.Position.Vec3(),
		Color:     spec.Color.Or(colornames.White),
		Intensity: spec.Intensity,
	}
}

func buildLighting(spec prefabs.LightingSpec) *component.Lighting {
	return &component.Lighting{
		Ambient:     buildLight(spec.Ambient),
		Point:       buildLight(spec.Point),
		Spot:        buildLight(spec.Spot),
		BackdropTop: spec.BackdropTop.Or(nil),
		BackdropBot: spec.BackdropBottom.Or(nil),
	}
}
