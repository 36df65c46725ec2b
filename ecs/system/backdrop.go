package system

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/reefolio/assets"
	"github.com/milk9111/reefolio/common"
	"github.com/milk9111/reefolio/ecs"
	"github.com/milk9111/reefolio/ecs/render"
	"golang.org/x/image/colornames"
)

// maxBackdropDarkening is how much the gradient darkens at the bottom of
// the scroll.
const maxBackdropDarkening = 0.35

// BackdropRenderer fills the screen with the water gradient, darkening it
// as the camera descends.
type BackdropRenderer struct{}

func NewBackdropRenderer() *BackdropRenderer {
	return &BackdropRenderer{}
}

func (b *BackdropRenderer) Draw(w *ecs.World, screen *ebiten.Image) {
	if w == nil || screen == nil {
		return
	}
	l := sceneLighting(w)
	top, bottom := l.BackdropTop, l.BackdropBot
	if top == nil {
		top = colornames.Teal
	}
	if bottom == nil {
		bottom = colornames.Black
	}

	bounds := screen.Bounds()
	key := fmt.Sprintf("backdrop:%d:%v:%v", bounds.Dy(), top, bottom)
	img, err := render.BakeImage(key, func() (image.Image, error) {
		return assets.VerticalGradient(bounds.Dy(), top, bottom), nil
	})
	if err != nil {
		screen.Fill(bottom)
		return
	}

	shade := float32(backdropShade(sceneProgress(w)))
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(bounds.Dx()), 1)
	op.ColorScale.Scale(shade, shade, shade, 1)
	screen.DrawImage(img, op)
}

// backdropShade is the brightness of the backdrop at scroll progress p.
func backdropShade(p float64) float64 {
	return common.Lerp(1, 1-maxBackdropDarkening, common.Clamp01(p))
}
