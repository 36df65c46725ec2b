package system

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/reefolio/assets"
	"github.com/milk9111/reefolio/ecs"
	"github.com/milk9111/reefolio/ecs/component"
	"github.com/milk9111/reefolio/ecs/render"
	"golang.org/x/image/colornames"
)

const (
	bubbleTextureSize = 256
	// fogDistance is the depth at which objects have faded out completely.
	fogDistance = 60.0
	// sparkleWorldSize converts the sparkle size setting to world units.
	sparkleWorldSize = 0.02
)

type drawable struct {
	depth float64
	draw  func(screen *ebiten.Image)
}

// SceneRenderer draws bubbles and sparkles through the camera, far to near.
type SceneRenderer struct {
	camEntity ecs.Entity
	items     []drawable
}

func NewSceneRenderer() *SceneRenderer {
	return &SceneRenderer{}
}

func (r *SceneRenderer) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}
	if !r.camEntity.Valid() || !w.IsAlive(r.camEntity) {
		if camEntity, ok := w.First(component.CameraComponent.Kind()); ok {
			r.camEntity = camEntity
		}
	}
	cam, ok := ecs.Get(w, r.camEntity, component.CameraComponent.Kind())
	if !ok {
		return
	}
	camTransform, ok := ecs.Get(w, r.camEntity, component.TransformComponent.Kind())
	if !ok {
		return
	}

	bounds := screen.Bounds()
	pr := render.NewProjector(camTransform.Position, *cam, bounds.Dx(), bounds.Dy())
	lighting := sceneLighting(w)
	elapsed := sceneElapsed(w)

	r.items = r.items[:0]
	ecs.ForEach2(w, component.TransformComponent.Kind(), component.BubbleComponent.Kind(), func(_ ecs.Entity, t *component.Transform, b *component.Bubble) {
		x, y, depth, ok := pr.Project(t.Position)
		if !ok {
			return
		}
		scale := t.Scale
		if scale == 0 {
			scale = 1
		}
		radius := pr.Scale(b.Radius*scale, depth)
		if radius < 0.5 || x+radius < 0 || y+radius < 0 || x-radius > float64(bounds.Dx()) || y-radius > float64(bounds.Dy()) {
			return
		}
		tex := bubbleTexture(b, lighting)
		if tex == nil {
			return
		}
		// a slight squash follows the float rotation so the bubble wobbles
		sx := radius * 2 / bubbleTextureSize * (1 + 0.05*t.Rotation[1])
		sy := radius * 2 / bubbleTextureSize * (1 + 0.05*t.Rotation[0])
		fade := float32(fogFade(depth))
		r.items = append(r.items, drawable{depth: depth, draw: func(screen *ebiten.Image) {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(-bubbleTextureSize/2, -bubbleTextureSize/2)
			op.GeoM.Scale(sx, sy)
			op.GeoM.Translate(x, y)
			op.ColorScale.ScaleAlpha(fade)
			op.Filter = ebiten.FilterLinear
			screen.DrawImage(tex, op)
		}})
	})

	ecs.ForEach(w, component.SparklesComponent.Kind(), func(_ ecs.Entity, sp *component.Sparkles) {
		clr := sp.Color
		if clr == nil {
			clr = colornames.White
		}
		for i, body := range sp.Bodies {
			pos := body.Position()
			p := mgl64.Vec3{pos.X, pos.Y, sp.Depth[i]}
			x, y, depth, ok := pr.Project(p)
			if !ok {
				continue
			}
			radius := math.Max(0.75, pr.Scale(sp.Size*sparkleWorldSize, depth))
			twinkle := 0.6 + 0.4*math.Sin(elapsed*2+sp.Phase[i]*3)
			alpha := sp.Opacity * twinkle * fogFade(depth)
			c := withAlpha(clr, alpha)
			r.items = append(r.items, drawable{depth: depth, draw: func(screen *ebiten.Image) {
				vector.DrawFilledCircle(screen, float32(x), float32(y), float32(radius), c, true)
			}})
		}
	})

	sort.SliceStable(r.items, func(i, j int) bool {
		return r.items[i].depth > r.items[j].depth
	})
	for _, it := range r.items {
		it.draw(screen)
	}
}

func sceneLighting(w *ecs.World) *component.Lighting {
	e, ok := w.First(component.LightingComponent.Kind())
	if !ok {
		return &component.Lighting{}
	}
	l, ok := ecs.Get(w, e, component.LightingComponent.Kind())
	if !ok {
		return &component.Lighting{}
	}
	return l
}

// bubbleTexture bakes the bubble material once per material and lighting.
// Lights are treated as directional, shining from their position toward the
// origin.
func bubbleTexture(b *component.Bubble, l *component.Lighting) *ebiten.Image {
	if b.Texture != nil {
		return b.Texture
	}
	shading := bubbleShading(b.Material, l)
	tex, err := render.BakeImage(bubbleTextureKey(shading), func() (image.Image, error) {
		return assets.BubbleImage(bubbleTextureSize, shading), nil
	})
	if err != nil {
		return nil
	}
	b.Texture = tex
	return tex
}

func bubbleShading(m component.Material, l *component.Lighting) assets.BubbleShading {
	shading := assets.BubbleShading{
		Tint:             m.Color,
		IOR:              m.IOR,
		Roughness:        m.Roughness,
		Transmission:     m.Transmission,
		Thickness:        m.Thickness,
		Clearcoat:        m.Clearcoat,
		Opacity:          m.Opacity,
		EnvIntensity:     m.EnvMapIntensity,
		Ambient:          l.Ambient.Color,
		AmbientIntensity: l.Ambient.Intensity,
	}
	for _, light := range []component.Light{l.Point, l.Spot} {
		if light.Intensity <= 0 {
			continue
		}
		shading.Lights = append(shading.Lights, assets.BubbleLight{
			Dir:       light.Position,
			Color:     light.Color,
			Intensity: light.Intensity,
		})
	}
	return shading
}

// bubbleTextureKey names a baked texture by everything that shades it.
func bubbleTextureKey(s assets.BubbleShading) string {
	return fmt.Sprintf("bubble:%d:%+v", bubbleTextureSize, s)
}

func fogFade(depth float64) float64 {
	return math.Max(0, math.Min(1, 1-depth/fogDistance))
}

func withAlpha(c color.Color, alpha float64) color.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(math.Max(0, math.Min(1, alpha)) * float64(n.A))
	return n
}
