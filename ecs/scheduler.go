package ecs

import "github.com/hajimehoshi/ebiten/v2"

// System updates a world each tick.
type System interface {
	Update(w *World)
}

// RenderSystem draws a world each frame.
type RenderSystem interface {
	Draw(w *World, screen *ebiten.Image)
}

type Scheduler struct {
	systems   []System
	renderers []RenderSystem
}

func NewScheduler(systems ...System) *Scheduler {
	copied := append([]System(nil), systems...)
	return &Scheduler{systems: copied}
}

func (s *Scheduler) Add(system System) {
	if system == nil {
		return
	}
	s.systems = append(s.systems, system)
}

// AddRenderer appends a render system; renderers draw in insertion order.
func (s *Scheduler) AddRenderer(r RenderSystem) {
	if r == nil {
		return
	}
	s.renderers = append(s.renderers, r)
}

// Update runs all systems once, then drops the tick's events.
func (s *Scheduler) Update(w *World) {
	if s == nil || w == nil {
		return
	}
	for _, system := range s.systems {
		system.Update(w)
	}
	w.events.flush()
}

func (s *Scheduler) Draw(w *World, screen *ebiten.Image) {
	if s == nil || w == nil || screen == nil {
		return
	}
	for _, r := range s.renderers {
		r.Draw(w, screen)
	}
}
