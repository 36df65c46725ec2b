package render

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// BakeImage returns the image cached under key, rendering it with bake on
// first use.
func BakeImage(key string, bake func() (image.Image, error)) (*ebiten.Image, error) {
	if key == "" {
		return nil, fmt.Errorf("render: empty image key")
	}
	if img := GetImage(key); img != nil {
		return img, nil
	}
	src, err := bake()
	if err != nil {
		return nil, fmt.Errorf("render: bake %s: %w", key, err)
	}
	img := ebiten.NewImageFromImage(src)
	RegisterImage(key, img)
	return img, nil
}
