package component

import "github.com/milk9111/reefolio/motion"

// Float bobs an entity around BaseY.
type Float struct {
	BaseY  float64
	Motion motion.Float
	Phase  float64
	Script *motion.Script
	// ScriptFailed disables the script after its first runtime error.
	ScriptFailed bool
}

var FloatComponent = NewComponent[Float]()
