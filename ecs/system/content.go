package system

import (
	"math"
	"strings"

	"github.com/milk9111/reefolio/common"
	"github.com/milk9111/reefolio/ecs"
	"github.com/milk9111/reefolio/ecs/component"
)

const (
	RemPx = 16.0

	lineHeight     = 1.3
	cardPadding    = 16.0
	cardGap        = 12.0
	cardTitleRem   = 1.25
	listIndent     = 24.0
	buttonPadX     = 32.0
	buttonPadY     = 14.0
	defaultLogoRem = 3.0
)

// ContactAction is the button action that reveals the contact address.
const ContactAction = "contact"

// MeasureFunc returns the advance width of s at the given pixel size.
type MeasureFunc func(s string, sizePx float64, bold bool) float64

// ContentSystem lays the overlay out for the current scroll position and
// dispatches clicks on its buttons. It runs before ScrollSystem so that
// navigation requested by a button is applied in the same tick.
type ContentSystem struct {
	measure MeasureFunc
	width   float64
	height  float64
}

func NewContentSystem(measure MeasureFunc) *ContentSystem {
	return &ContentSystem{measure: measure, width: common.BaseWidth, height: common.BaseHeight}
}

func (cs *ContentSystem) Update(w *ecs.World) {
	if w == nil || cs.measure == nil {
		return
	}
	pixels, scrollHeight := 0.0, 1.0
	if ctrl := sceneControls(w); ctrl != nil {
		pixels, scrollHeight = ctrl.Pixels(), ctrl.ScrollHeight()
	}

	ecs.ForEach(w, component.ContentComponent.Kind(), func(e ecs.Entity, content *component.Content) {
		content.Layout = LayoutContent(content, pixels, cs.width, cs.height, cs.measure)
		content.LayoutPixels = pixels
		content.Windows = SectionWindows(content.Layout, len(content.Sections), pixels, cs.height, scrollHeight)
		content.HoveredAction = ""

		input, ok := ecs.Get(w, e, component.InputComponent.Kind())
		if !ok {
			return
		}
		x, y := float64(input.CursorX), float64(input.CursorY)
		for _, p := range content.Layout {
			if p.Block.Kind != component.BlockButton || !p.Contains(x, y) {
				continue
			}
			content.HoveredAction = p.Block.Action
			if input.Clicked {
				dispatchAction(w, content, p.Block.Action)
			}
			break
		}
	})
}

func dispatchAction(w *ecs.World, content *component.Content, action string) {
	if anchor, ok := strings.CutPrefix(action, "nav:"); ok {
		w.Events().Push(ecs.Event{Type: ecs.EventNavigate, Data: ecs.NavigateEvent{Anchor: anchor}})
		return
	}
	if action == ContactAction {
		w.Events().Push(ecs.Event{Type: ecs.EventContact, Data: content.Contact})
	}
}

// SectionWindows returns, for each of n sections, the span of scroll
// progress during which part of it is inside a viewport of the given
// height. layout was computed at pixels; scrollHeight is the pixel length of
// the whole scroll.
func SectionWindows(layout []component.Placed, n int, pixels, viewport, scrollHeight float64) []component.ScrollWindow {
	if n == 0 {
		return nil
	}
	if scrollHeight <= 0 {
		scrollHeight = 1
	}
	tops := make([]float64, n)
	bottoms := make([]float64, n)
	seen := make([]bool, n)
	for _, p := range layout {
		if p.Section < 0 || p.Section >= n {
			continue
		}
		top, bottom := p.Y+pixels, p.Y+p.H+pixels
		if !seen[p.Section] || top < tops[p.Section] {
			tops[p.Section] = top
		}
		if !seen[p.Section] || bottom > bottoms[p.Section] {
			bottoms[p.Section] = bottom
		}
		seen[p.Section] = true
	}

	out := make([]component.ScrollWindow, n)
	for i := range out {
		if !seen[i] {
			// empty sections never show
			out[i] = component.ScrollWindow{From: math.Inf(1)}
			continue
		}
		out[i] = component.ScrollWindow{
			From:     (tops[i] - viewport) / scrollHeight,
			Distance: (bottoms[i] - tops[i] + viewport) / scrollHeight,
		}
	}
	return out
}

// LayoutContent places every block of every section in screen space for a
// document scrolled pixels down a width x height viewport.
func LayoutContent(content *component.Content, pixels, width, height float64, measure MeasureFunc) []component.Placed {
	if content == nil {
		return nil
	}
	var out []component.Placed
	for si := range content.Sections {
		section := &content.Sections[si]
		colW := columnWidth(section, width)
		inset := section.InsetVW / 100 * width

		var colX float64
		switch section.Align {
		case component.AlignRight:
			colX = width - inset - colW
		case component.AlignCenter:
			colX = (width - colW) / 2
		default:
			colX = inset
		}

		y := section.TopVH/100*height - pixels
		for bi := range section.Blocks {
			block := &section.Blocks[bi]
			y += block.Margin
			p := layoutBlock(block, colW-block.Indent, measure)
			switch section.Align {
			case component.AlignRight:
				p.X = colX + colW - p.W - block.Indent
			case component.AlignCenter:
				p.X = colX + (colW-p.W)/2
			default:
				p.X = colX + block.Indent
			}
			p.Y = y
			p.Section = si
			p.Align = section.Align
			for i := range p.Cards {
				p.Cards[i].X += p.X
				p.Cards[i].Y += p.Y
			}
			out = append(out, p)
			y += p.H
		}
	}
	return out
}

func columnWidth(section *component.Section, width float64) float64 {
	w := 0.0
	for _, b := range section.Blocks {
		w = math.Max(w, b.MaxWidth+b.Indent)
	}
	if w > 0 {
		return math.Min(w, width)
	}
	if section.Align == component.AlignCenter {
		return width * 0.6
	}
	return width * 0.45
}

func blockSize(b *component.Block, fallbackRem float64) float64 {
	rem := b.SizeRem
	if rem <= 0 {
		rem = fallbackRem
	}
	return rem * RemPx
}

func layoutBlock(b *component.Block, avail float64, measure MeasureFunc) component.Placed {
	p := component.Placed{Block: b}
	maxW := avail
	if b.MaxWidth > 0 {
		maxW = math.Min(maxW, b.MaxWidth)
	}

	switch b.Kind {
	case component.BlockHeading, component.BlockParagraph:
		fallback := 1.0
		if b.Kind == component.BlockHeading {
			fallback = 2
		}
		p.SizePx = blockSize(b, fallback)
		p.Lines = WrapText(b.Text, maxW, func(s string) float64 { return measure(s, p.SizePx, b.Bold) })
		p.W = widest(p.Lines, p.SizePx, b.Bold, measure)
		p.H = float64(len(p.Lines)) * p.SizePx * lineHeight

	case component.BlockLogo:
		p.SizePx = blockSize(b, defaultLogoRem)
		p.W, p.H = p.SizePx, p.SizePx

	case component.BlockList:
		p.SizePx = blockSize(b, 1)
		lineW := maxW - listIndent
		for _, item := range b.Items {
			lines := WrapText(item, lineW, func(s string) float64 { return measure(s, p.SizePx, b.Bold) })
			p.Items = append(p.Items, lines)
			p.W = math.Max(p.W, listIndent+widest(lines, p.SizePx, b.Bold, measure))
			p.H += float64(len(lines)) * p.SizePx * lineHeight
		}

	case component.BlockCards:
		p.SizePx = blockSize(b, 1)
		titlePx := cardTitleRem * RemPx
		inner := maxW - 2*cardPadding
		y := 0.0
		for i, card := range b.Cards {
			if i > 0 {
				y += cardGap
			}
			body := WrapText(card.Body, inner, func(s string) float64 { return measure(s, p.SizePx, false) })
			h := 2*cardPadding + titlePx*lineHeight + float64(len(body))*p.SizePx*lineHeight
			p.Cards = append(p.Cards, component.PlacedCard{Y: y, W: maxW, H: h, Body: body})
			y += h
		}
		p.W, p.H = maxW, y

	case component.BlockButton:
		p.SizePx = blockSize(b, 1)
		p.Lines = []string{b.Text}
		p.W = measure(b.Text, p.SizePx, b.Bold) + 2*buttonPadX
		p.H = p.SizePx + 2*buttonPadY
	}
	return p
}

func widest(lines []string, sizePx float64, bold bool, measure MeasureFunc) float64 {
	w := 0.0
	for _, l := range lines {
		w = math.Max(w, measure(l, sizePx, bold))
	}
	return w
}

// WrapText breaks text into lines no wider than maxWidth, splitting on
// whitespace. Explicit newlines are kept. A single word wider than maxWidth
// gets a line of its own.
func WrapText(text string, maxWidth float64, advance func(string) float64) []string {
	var lines []string
	for _, para := range strings.Split(text, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		line := words[0]
		for _, word := range words[1:] {
			candidate := line + " " + word
			if maxWidth > 0 && advance(candidate) > maxWidth {
				lines = append(lines, line)
				line = word
				continue
			}
			line = candidate
		}
		lines = append(lines, line)
	}
	return lines
}
