package components

import (
	"github.com/automoto/wingflap/gamemath"
	"github.com/yohamta/donburi"
)

// FlapData tracks lobby flap strokes per hand.
type FlapData struct {
	Hands [HandCount]gamemath.Stroke
}

// Reset clears both hands' strokes and counts.
func (f *FlapData) Reset() {
	for i := range f.Hands {
		f.Hands[i].Reset()
	}
}

var Flap = donburi.NewComponentType[FlapData]()
