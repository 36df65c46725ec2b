package component

type SceneTag struct{}

var SceneTagComponent = NewComponent[SceneTag]()

type CameraTag struct{}

var CameraTagComponent = NewComponent[CameraTag]()

type BubbleTag struct{}

var BubbleTagComponent = NewComponent[BubbleTag]()
