package main

import (
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/reefolio/assets"
	"github.com/milk9111/reefolio/ecs"
	"github.com/milk9111/reefolio/ecs/component"
)

// NewNavUI builds the fixed navigation bar in the top-right corner. Each
// button asks the scroll controller to bring its section into view.
func NewNavUI(g *Game, items []component.NavItem) *ebitenui.UI {
	barImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x01, G: 0x12, B: 0x1c, A: 0x99})
	idleImg := imageui.NewNineSliceColor(color.NRGBA{})
	hoverImg := imageui.NewNineSliceColor(color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x22})
	pressedImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0xd4, B: 0xff, A: 0x44})

	var face ebtext.Face = assets.Face(15, false)

	btnTextColor := &widget.ButtonTextColor{
		Idle:  color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		Hover: color.NRGBA{R: 0x00, G: 0xd4, B: 0xff, A: 0xff},
	}

	bar := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(barImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(4),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 6, Bottom: 6, Left: 10, Right: 10}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionEnd, VerticalPosition: widget.AnchorLayoutPositionStart}),
		),
	)

	for _, item := range items {
		anchor := item.Anchor
		btn := widget.NewButton(
			widget.ButtonOpts.Image(&widget.ButtonImage{Idle: idleImg, Hover: hoverImg, Pressed: pressedImg}),
			widget.ButtonOpts.Text(item.Label, &face, btnTextColor),
			widget.ButtonOpts.TextPadding(&widget.Insets{Top: 6, Bottom: 6, Left: 12, Right: 12}),
			widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				g.navigate(anchor)
			}),
		)
		bar.AddChild(btn)
	}

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout(
			widget.AnchorLayoutOpts.Padding(widget.NewInsetsSimple(16)),
		)),
	)
	root.AddChild(bar)

	return &ebitenui.UI{Container: root}
}

func (g *Game) navigate(anchor string) {
	if g.world == nil {
		return
	}
	g.world.Events().Push(ecs.Event{Type: ecs.EventNavigate, Data: ecs.NavigateEvent{Anchor: anchor}})
}
