package components

import "github.com/yohamta/donburi"

// FrameData carries the clock for the current update.
type FrameData struct {
	Delta float64 // seconds since the previous update
	Tick  int
}

var Frame = donburi.NewComponentType[FrameData]()
