package main

import (
	"fmt"
	"log"
	"path/filepath"
	"sort"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/reefolio/assets"
	"github.com/milk9111/reefolio/common"
	"github.com/milk9111/reefolio/ecs"
	"github.com/milk9111/reefolio/ecs/component"
	"github.com/milk9111/reefolio/ecs/entity"
	"github.com/milk9111/reefolio/ecs/render"
	"github.com/milk9111/reefolio/ecs/system"
	"github.com/milk9111/reefolio/prefabs"
)

type Game struct {
	sceneName string
	debug     bool
	mute      bool

	world     *ecs.World
	scheduler *ecs.Scheduler
	hud       *system.DebugHUD
	contact   *system.ContactSystem
	ui        *ebitenui.UI
	watcher   *prefabs.Watcher
}

func NewGame(sceneName string, debug, dev, mute bool) (*Game, error) {
	g := &Game{
		sceneName: sceneName,
		debug:     debug,
		mute:      mute,
		hud:       system.NewDebugHUD(),
		contact:   system.NewContactSystem(),
	}
	if err := g.load(); err != nil {
		return nil, err
	}

	if dev {
		w, err := prefabs.NewWatcher(prefabs.Dir, filepath.Join(prefabs.Dir, "scripts"))
		if err != nil {
			log.Printf("prefabs: hot reload disabled: %v", err)
		} else {
			g.watcher = w
		}
	}
	return g, nil
}

// load builds a fresh world from the scene prefab. The scroll position of
// the previous world, if any, carries over.
func (g *Game) load() error {
	spec, err := prefabs.LoadSceneSpec(g.sceneName)
	if err != nil {
		return err
	}
	content, err := prefabs.LoadContentSpec(spec.Content)
	if err != nil {
		return err
	}

	world := ecs.NewWorld()
	if err := entity.BuildScene(world, spec, content, entity.SceneOptions{
		ViewportHeight: common.BaseHeight,
		Mute:           g.mute,
	}); err != nil {
		return fmt.Errorf("scene %s: %w", g.sceneName, err)
	}

	top, hadScroll := g.scrollTop()
	g.closeAmbience()
	render.ClearImages()

	g.world = world
	g.scheduler = g.newScheduler(spec.RenderLayers)
	if hadScroll {
		if e, ok := world.First(component.ScrollComponent.Kind()); ok {
			if sc, ok := ecs.Get(world, e, component.ScrollComponent.Kind()); ok {
				sc.Controls.ScrollTo(top)
			}
		}
	}

	root, _ := world.First(component.ContentComponent.Kind())
	if c, ok := ecs.Get(world, root, component.ContentComponent.Kind()); ok {
		g.ui = NewNavUI(g, c.Nav)
	}
	return nil
}

func (g *Game) newScheduler(layers prefabs.RenderLayerSpec) *ecs.Scheduler {
	s := ecs.NewScheduler(
		system.NewClockSystem(ebiten.TPS()),
		system.NewInputSystem(),
		system.NewContentSystem(assets.MeasureText),
		system.NewScrollSystem(),
		system.NewCameraRigSystem(),
		system.NewFloatSystem(),
		system.NewSparklesSystem(),
	)
	// side effects outside the world run after the scene has settled
	s.Add(g.contact)
	s.Add(system.NewAmbienceSystem())

	renderers := []struct {
		layer int
		r     ecs.RenderSystem
	}{
		{layers.Backdrop, system.NewBackdropRenderer()},
		{layers.Scene, system.NewSceneRenderer()},
		{layers.Content, system.NewContentRenderer()},
	}
	sort.SliceStable(renderers, func(i, j int) bool { return renderers[i].layer < renderers[j].layer })
	for _, r := range renderers {
		s.AddRenderer(r.r)
	}
	return s
}

func (g *Game) scrollTop() (float64, bool) {
	if g.world == nil {
		return 0, false
	}
	e, ok := g.world.First(component.ScrollComponent.Kind())
	if !ok {
		return 0, false
	}
	sc, ok := ecs.Get(g.world, e, component.ScrollComponent.Kind())
	if !ok || sc.Controls == nil {
		return 0, false
	}
	return sc.Controls.ScrollTop(), true
}

func (g *Game) closeAmbience() {
	if g.world == nil {
		return
	}
	ecs.ForEach(g.world, component.AmbienceComponent.Kind(), func(_ ecs.Entity, amb *component.Ambience) {
		if amb.Player != nil {
			if err := amb.Player.Close(); err != nil {
				log.Printf("ambience: close: %v", err)
			}
			amb.Player = nil
		}
	})
}

func (g *Game) reloadChanged() {
	if g.watcher == nil {
		return
	}
	select {
	case err, ok := <-g.watcher.Errors:
		if ok && err != nil {
			log.Printf("prefabs: watch: %v", err)
		}
	default:
	}

	changed := g.watcher.Poll()
	if len(changed) == 0 {
		return
	}
	log.Printf("prefabs: %v changed, reloading %s", changed, g.sceneName)
	if err := g.load(); err != nil {
		log.Printf("prefabs: reload: %v", err)
	}
}

func (g *Game) Update() error {
	g.reloadChanged()

	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.debug = !g.debug
	}

	if g.ui != nil {
		g.ui.Update()
	}
	g.scheduler.Update(g.world)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scheduler.Draw(g.world, screen)
	if g.ui != nil {
		g.ui.Draw(screen)
	}
	if g.debug {
		g.hud.Draw(g.world, screen)
	}
}

// Close releases the audio player and the file watcher.
func (g *Game) Close() error {
	g.closeAmbience()
	if g.watcher != nil {
		return g.watcher.Close()
	}
	return nil
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
