package entity

import (
	"fmt"

	"github.com/milk9111/reefolio/ecs/component"
	"github.com/milk9111/reefolio/prefabs"
)

// navTopMarginVH keeps a navigated-to section slightly below the top edge.
const navTopMarginVH = 15.0

var alignments = map[string]component.Align{
	"":       component.AlignLeft,
	"left":   component.AlignLeft,
	"right":  component.AlignRight,
	"center": component.AlignCenter,
}

var blockKinds = map[string]component.BlockKind{
	"heading":   component.BlockHeading,
	"paragraph": component.BlockParagraph,
	"logo":      component.BlockLogo,
	"cards":     component.BlockCards,
	"list":      component.BlockList,
	"button":    component.BlockButton,
}

func buildContent(spec *prefabs.ContentSpec) (*component.Content, error) {
	content := &component.Content{Contact: spec.Contact}
	for _, n := range spec.Nav {
		content.Nav = append(content.Nav, component.NavItem{Label: n.Label, Anchor: n.Anchor})
	}

	for _, s := range spec.Sections {
		align, ok := alignments[s.Align]
		if !ok {
			return nil, fmt.Errorf("content: section %s: unknown align %q", s.ID, s.Align)
		}
		section := component.Section{
			ID:      s.ID,
			Anchors: append([]string(nil), s.Anchors...),
			TopVH:   s.TopVH,
			InsetVW: s.InsetVW,
			Align:   align,
			Fade:    s.Fade,
		}
		for i, b := range s.Blocks {
			kind, ok := blockKinds[b.Kind]
			if !ok {
				return nil, fmt.Errorf("content: section %s block %d: unknown kind %q", s.ID, i, b.Kind)
			}
			block := component.Block{
				Kind:     kind,
				Text:     b.Text,
				Color:    b.Color.Or(nil),
				SizeRem:  b.SizeRem,
				Bold:     b.Bold,
				MaxWidth: b.MaxWidth,
				Indent:   b.Indent,
				Margin:   b.Margin,
				Items:    append([]string(nil), b.Items...),
				Action:   b.Action,
			}
			for _, c := range b.Cards {
				block.Cards = append(block.Cards, component.Card{Title: c.Title, Body: c.Body, Accent: c.Accent.Or(nil)})
			}
			section.Blocks = append(section.Blocks, block)
		}
		content.Sections = append(content.Sections, section)
	}
	return content, nil
}

// anchorPages maps every section anchor to the scroll position, in viewport
// heights, that brings the section into view.
func anchorPages(content *component.Content) map[string]float64 {
	anchors := make(map[string]float64)
	for _, s := range content.Sections {
		page := max(0, (s.TopVH-navTopMarginVH)/100)
		anchors[s.ID] = page
		for _, a := range s.Anchors {
			anchors[a] = page
		}
	}
	return anchors
}
