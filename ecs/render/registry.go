package render

import "github.com/hajimehoshi/ebiten/v2"

var images = map[string]*ebiten.Image{}

// RegisterImage stores an image by key, disposing any image it replaces.
func RegisterImage(key string, img *ebiten.Image) {
	if key == "" || img == nil {
		return
	}
	if old, ok := images[key]; ok && old != img {
		old.Deallocate()
	}
	images[key] = img
}

// GetImage returns a cached image by key.
func GetImage(key string) *ebiten.Image {
	if key == "" {
		return nil
	}
	return images[key]
}

// ClearImages drops every cached image, e.g. after a scene reload changed
// the parameters the images were baked from.
func ClearImages() {
	for key, img := range images {
		img.Deallocate()
		delete(images, key)
	}
}
