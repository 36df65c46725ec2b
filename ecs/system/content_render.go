package system

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/reefolio/assets"
	"github.com/milk9111/reefolio/ecs"
	"github.com/milk9111/reefolio/ecs/component"
	"golang.org/x/image/colornames"
)

var (
	cardFill   = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x14}
	buttonDark = color.NRGBA{R: 0x01, G: 0x12, B: 0x1c, A: 0xc8}
)

const logoMargin = 24.0

// ContentRenderer draws the overlay laid out by ContentSystem, plus the
// fixed logo in the top-left corner.
type ContentRenderer struct{}

func NewContentRenderer() *ContentRenderer {
	return &ContentRenderer{}
}

func (r *ContentRenderer) Draw(w *ecs.World, screen *ebiten.Image) {
	if w == nil || screen == nil {
		return
	}
	e, ok := w.First(component.ContentComponent.Kind())
	if !ok {
		return
	}
	content, ok := ecs.Get(w, e, component.ContentComponent.Kind())
	if !ok {
		return
	}

	ctrl := sceneControls(w)
	if ctrl == nil {
		return
	}
	// the layout was computed before the scroll controller moved this tick
	dy := content.LayoutPixels - ctrl.Pixels()
	monogram := "SK"
	for _, p := range content.Layout {
		if p.Block.Kind == component.BlockLogo && p.Block.Text != "" {
			monogram = p.Block.Text
		}
		if p.Section >= len(content.Windows) || p.Section >= len(content.Sections) {
			continue
		}
		win := content.Windows[p.Section]
		if !ctrl.Visible(win.From, win.Distance, 0) {
			continue
		}
		alpha := 1.0
		if content.Sections[p.Section].Fade {
			alpha = ctrl.Curve(win.From, win.Distance, 0)
		}

		p.Y += dy
		for i := range p.Cards {
			p.Cards[i].Y += dy
		}
		drawPlaced(screen, p, content.HoveredAction, alpha)
	}

	drawLogo(screen, logoMargin, logoMargin*0.75, 2*RemPx, monogram)
}

func drawPlaced(screen *ebiten.Image, p component.Placed, hovered string, alpha float64) {
	b := p.Block
	clr := b.Color
	if clr == nil {
		clr = colornames.White
	}
	clr = withAlpha(clr, alpha)

	switch b.Kind {
	case component.BlockHeading, component.BlockParagraph:
		drawLines(screen, p.Lines, p.X, p.Y, p.W, p.SizePx, b.Bold, p.Align, clr)

	case component.BlockLogo:
		drawLogo(screen, p.X, p.Y, p.SizePx, b.Text)

	case component.BlockList:
		y := p.Y
		for _, lines := range p.Items {
			drawText(screen, "•", p.X, y, p.SizePx, b.Bold, clr)
			drawLines(screen, lines, p.X+listIndent, y, p.W-listIndent, p.SizePx, b.Bold, component.AlignLeft, clr)
			y += float64(len(lines)) * p.SizePx * lineHeight
		}

	case component.BlockCards:
		titlePx := cardTitleRem * RemPx
		for i, c := range p.Cards {
			card := b.Cards[i]
			accent := card.Accent
			if accent == nil {
				accent = clr
			}
			accent = withAlpha(accent, alpha)
			vector.DrawFilledRect(screen, float32(c.X), float32(c.Y), float32(c.W), float32(c.H), withAlpha(cardFill, alpha), false)
			vector.DrawFilledRect(screen, float32(c.X), float32(c.Y), 4, float32(c.H), accent, false)
			drawText(screen, card.Title, c.X+cardPadding, c.Y+cardPadding, titlePx, true, accent)
			drawLines(screen, c.Body, c.X+cardPadding, c.Y+cardPadding+titlePx*lineHeight, c.W-2*cardPadding, p.SizePx, false, component.AlignLeft, clr)
		}

	case component.BlockButton:
		fg, bg := clr, withAlpha(buttonDark, alpha)
		if hovered != "" && hovered == b.Action {
			fg, bg = withAlpha(buttonDark, alpha), clr
		}
		drawPill(screen, p.X, p.Y, p.W, p.H, clr)
		if bg != clr {
			drawPill(screen, p.X+2, p.Y+2, p.W-4, p.H-4, bg)
		}
		drawText(screen, b.Text, p.X+buttonPadX, p.Y+buttonPadY, p.SizePx, b.Bold, fg)
	}
}

func drawLines(screen *ebiten.Image, lines []string, x, y, width, sizePx float64, bold bool, align component.Align, clr color.Color) {
	for i, line := range lines {
		lx := x
		switch align {
		case component.AlignRight:
			lx = x + width - assets.MeasureText(line, sizePx, bold)
		case component.AlignCenter:
			lx = x + (width-assets.MeasureText(line, sizePx, bold))/2
		}
		drawText(screen, line, lx, y+float64(i)*sizePx*lineHeight, sizePx, bold, clr)
	}
}

func drawText(screen *ebiten.Image, s string, x, y, sizePx float64, bold bool, clr color.Color) {
	if s == "" {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, assets.Face(sizePx, bold), op)
}

func drawPill(screen *ebiten.Image, x, y, w, h float64, clr color.Color) {
	r := h / 2
	vector.DrawFilledRect(screen, float32(x+r), float32(y), float32(w-2*r), float32(h), clr, true)
	vector.DrawFilledCircle(screen, float32(x+r), float32(y+r), float32(r), clr, true)
	vector.DrawFilledCircle(screen, float32(x+w-r), float32(y+r), float32(r), clr, true)
}

// drawLogo draws a ringed monogram whose bounding box starts at x, y.
func drawLogo(screen *ebiten.Image, x, y, size float64, monogram string) {
	if monogram == "" {
		monogram = "SK"
	}
	r := size / 2
	cx, cy := x+r, y+r
	vector.DrawFilledCircle(screen, float32(cx), float32(cy), float32(r), buttonDark, true)
	vector.StrokeCircle(screen, float32(cx), float32(cy), float32(r-1), 2, colornames.Cyan, true)
	textPx := size * 0.4
	tw := assets.MeasureText(monogram, textPx, true)
	drawText(screen, monogram, cx-tw/2, cy-textPx*0.6, textPx, true, colornames.White)
}
