package system

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/reefolio/assets"
	"github.com/milk9111/reefolio/ecs"
	"github.com/milk9111/reefolio/ecs/component"
	"github.com/milk9111/reefolio/scroll"
	"golang.org/x/image/colornames"
)

// DebugHUD prints frame timing, scroll and camera state in the bottom-left
// corner.
type DebugHUD struct{}

func NewDebugHUD() *DebugHUD {
	return &DebugHUD{}
}

func (h *DebugHUD) Draw(w *ecs.World, screen *ebiten.Image) {
	if w == nil || screen == nil {
		return
	}
	lines := []string{fmt.Sprintf("FPS %.1f  TPS %.1f", ebiten.ActualFPS(), ebiten.ActualTPS())}

	ctrl := sceneControls(w)
	if ctrl != nil {
		lines = append(lines, fmt.Sprintf("scroll offset %.4f target %.4f delta %.5f", ctrl.Offset(), ctrl.Target(), ctrl.Delta()))
		lines = append(lines, sectionLines(w, ctrl)...)
	}
	ecs.ForEach2(w, component.TransformComponent.Kind(), component.CameraRigComponent.Kind(), func(_ ecs.Entity, t *component.Transform, rig *component.CameraRig) {
		p, q := t.Position, rig.Target
		lines = append(lines,
			fmt.Sprintf("camera (%.2f, %.2f, %.2f)", p[0], p[1], p[2]),
			fmt.Sprintf("target (%.2f, %.2f, %.2f) dist %.3f", q[0], q[1], q[2], q.Sub(p).Len()),
		)
		if rig.Path != nil && ctrl != nil {
			d := rig.Path.Tangent(ctrl.Offset())
			lines = append(lines, fmt.Sprintf("path length %.2f heading (%.2f, %.2f, %.2f)", rig.Path.Length(), d[0], d[1], d[2]))
		}
	})
	lines = append(lines, fmt.Sprintf("entities %d", len(ecs.Entities(w))))

	const lineH = 14
	y := float64(screen.Bounds().Dy() - 8 - lineH*len(lines))
	for _, line := range lines {
		op := &text.DrawOptions{}
		op.GeoM.Translate(8, y)
		op.ColorScale.ScaleWithColor(colornames.Lime)
		text.Draw(screen, line, assets.DebugFace, op)
		y += lineH
	}
}

// sectionLines reports how far the scroll has travelled through each
// section that is on screen.
func sectionLines(w *ecs.World, ctrl *scroll.Controls) []string {
	e, ok := w.First(component.ContentComponent.Kind())
	if !ok {
		return nil
	}
	content, ok := ecs.Get(w, e, component.ContentComponent.Kind())
	if !ok {
		return nil
	}
	var out []string
	for i, win := range content.Windows {
		if i >= len(content.Sections) || !ctrl.Visible(win.From, win.Distance, 0) {
			continue
		}
		out = append(out, fmt.Sprintf("section %s %.2f", content.Sections[i].ID, ctrl.Range(win.From, win.Distance, 0)))
	}
	return out
}
