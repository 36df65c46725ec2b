package component

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Material holds physically based shading constants for a bubble.
type Material struct {
	Color              color.Color
	Roughness          float64
	Metalness          float64
	Transmission       float64
	Thickness          float64
	IOR                float64
	Clearcoat          float64
	ClearcoatRoughness float64
	Opacity            float64
	EnvMapIntensity    float64
}

// Bubble is a transparent sphere. Texture is baked from Material on first draw.
type Bubble struct {
	Radius   float64
	Material Material
	Texture  *ebiten.Image
}

var BubbleComponent = NewComponent[Bubble]()
