package component

import "github.com/milk9111/reefolio/scroll"

// Scroll holds the document scroll controller and its tuning.
type Scroll struct {
	Controls *scroll.Controls
	// WheelStep is the pixel distance of one wheel notch.
	WheelStep float64
	// KeyStep is the pixel distance of one arrow key press.
	KeyStep float64
	// Anchors maps navigation anchors to document positions in viewport heights.
	Anchors map[string]float64
}

var ScrollComponent = NewComponent[Scroll]()
