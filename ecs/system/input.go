package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/reefolio/ecs"
	"github.com/milk9111/reefolio/ecs/component"
)

// InputSource is the part of ebiten's input API the scene reads.
type InputSource interface {
	Wheel() (float64, float64)
	IsKeyPressed(key ebiten.Key) bool
	IsKeyJustPressed(key ebiten.Key) bool
	CursorPosition() (int, int)
	IsMouseButtonJustPressed(button ebiten.MouseButton) bool
}

type ebitenInput struct{}

func (ebitenInput) Wheel() (float64, float64)          { return ebiten.Wheel() }
func (ebitenInput) IsKeyPressed(k ebiten.Key) bool     { return ebiten.IsKeyPressed(k) }
func (ebitenInput) IsKeyJustPressed(k ebiten.Key) bool { return inpututil.IsKeyJustPressed(k) }
func (ebitenInput) CursorPosition() (int, int)         { return ebiten.CursorPosition() }
func (ebitenInput) IsMouseButtonJustPressed(b ebiten.MouseButton) bool {
	return inpututil.IsMouseButtonJustPressed(b)
}

type InputSystem struct {
	source InputSource
}

func NewInputSystem() *InputSystem {
	return &InputSystem{source: ebitenInput{}}
}

// NewInputSystemWithSource reads from src instead of the live window.
func NewInputSystemWithSource(src InputSource) *InputSystem {
	return &InputSystem{source: src}
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil || i.source == nil {
		return
	}
	src := i.source

	_, wheelY := src.Wheel()
	up := src.IsKeyPressed(ebiten.KeyArrowUp) || src.IsKeyPressed(ebiten.KeyW)
	down := src.IsKeyPressed(ebiten.KeyArrowDown) || src.IsKeyPressed(ebiten.KeyS)
	pageUp := src.IsKeyJustPressed(ebiten.KeyPageUp)
	pageDown := src.IsKeyJustPressed(ebiten.KeyPageDown) || src.IsKeyJustPressed(ebiten.KeySpace)
	home := src.IsKeyJustPressed(ebiten.KeyHome)
	end := src.IsKeyJustPressed(ebiten.KeyEnd)
	cx, cy := src.CursorPosition()
	clicked := src.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)

	ecs.ForEach(w, component.InputComponent.Kind(), func(_ ecs.Entity, input *component.Input) {
		input.WheelY = wheelY
		input.Up = up
		input.Down = down
		input.PageUp = pageUp
		input.PageDown = pageDown
		input.Home = home
		input.End = end
		input.CursorX = cx
		input.CursorY = cy
		input.Clicked = clicked
	})
}
