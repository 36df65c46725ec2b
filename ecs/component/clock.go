package component

// Clock is the scene's elapsed time, advanced once per tick.
type Clock struct {
	Elapsed float64
	Delta   float64
	Frame   int
}

var ClockComponent = NewComponent[Clock]()
