package component

// Input stores per-frame input state for the scene.
type Input struct {
	WheelY   float64
	Up       bool
	Down     bool
	PageUp   bool
	PageDown bool
	Home     bool
	End      bool

	CursorX, CursorY int
	Clicked          bool
}

var InputComponent = NewComponent[Input]()
