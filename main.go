package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	debug := flag.Bool("debug", false, "show the debug HUD (toggle with F3)")
	dev := flag.Bool("dev", false, "reload prefabs from disk when they change")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	mute := flag.Bool("mute", false, "disable the ambient drone")
	sceneName := flag.String("scene", "scene.yaml", "scene prefab in prefabs/")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	w, h := ebiten.Monitor().Size()
	ebiten.SetWindowSize(w*3/4, h*3/4)
	ebiten.SetWindowTitle("reefolio")

	game, err := NewGame(*sceneName, *debug, *dev, *mute)
	if err != nil {
		log.Fatal(err)
	}
	defer func() {
		if err := game.Close(); err != nil {
			log.Printf("close: %v", err)
		}
	}()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
