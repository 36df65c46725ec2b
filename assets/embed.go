// Package assets holds the program's built-in resources: fonts, the
// procedural bubble and backdrop images, and the ambient drone.
package assets

import (
	"bytes"
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

const SampleRate = 44100

var (
	regularSource *text.GoTextFaceSource
	boldSource    *text.GoTextFaceSource

	// DebugFace is the fixed-width face used by the debug HUD.
	DebugFace text.Face = text.NewGoXFace(basicfont.Face7x13)
)

func init() {
	regularSource = loadFontSource("goregular", goregular.TTF)
	boldSource = loadFontSource("gobold", gobold.TTF)
}

func loadFontSource(name string, ttf []byte) *text.GoTextFaceSource {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(ttf))
	if err != nil {
		log.Fatalf("assets: load font %s: %v", name, err)
	}
	return src
}

// Face returns the content face at sizePx pixels.
func Face(sizePx float64, bold bool) *text.GoTextFace {
	src := regularSource
	if bold {
		src = boldSource
	}
	return &text.GoTextFace{Source: src, Size: sizePx}
}

// MeasureText returns the advance width of s in the content face.
func MeasureText(s string, sizePx float64, bold bool) float64 {
	return text.Advance(s, Face(sizePx, bold))
}

// LoadAmbiencePlayer creates a player streaming the ambient drone.
func LoadAmbiencePlayer(volume float64) (*audio.Player, error) {
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(SampleRate)
	}
	player, err := ctx.NewPlayer(NewDrone(ctx.SampleRate()))
	if err != nil {
		return nil, err
	}
	player.SetVolume(volume)
	return player, nil
}
