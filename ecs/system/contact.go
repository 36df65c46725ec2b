package system

import (
	"log"

	"github.com/milk9111/reefolio/ecs"
	"golang.design/x/clipboard"
)

// ContactSystem copies the contact address to the clipboard when the
// contact button is clicked.
type ContactSystem struct {
	copy func(text string) error
}

// NewContactSystem uses the system clipboard. If it cannot be initialised
// the address is only logged.
func NewContactSystem() *ContactSystem {
	if err := clipboard.Init(); err != nil {
		log.Printf("contact: clipboard unavailable: %v", err)
		return &ContactSystem{}
	}
	return &ContactSystem{copy: func(text string) error {
		clipboard.Write(clipboard.FmtText, []byte(text))
		return nil
	}}
}

// NewContactSystemWithCopier sends addresses to fn instead of the clipboard.
func NewContactSystemWithCopier(fn func(text string) error) *ContactSystem {
	return &ContactSystem{copy: fn}
}

func (cs *ContactSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	for _, evt := range w.Events().Peek(ecs.EventContact) {
		addr, _ := evt.Data.(string)
		if addr == "" {
			continue
		}
		if cs.copy == nil {
			log.Printf("contact: %s", addr)
			continue
		}
		if err := cs.copy(addr); err != nil {
			log.Printf("contact: copy %s: %v", addr, err)
			continue
		}
		log.Printf("contact: copied %s to clipboard", addr)
	}
}
