package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// HUDData is presentation state for the scoreboard and score counter.
type HUDData struct {
	ScoreboardVisible bool
	LastScore         int // final score of the previous game

	ScorePop   *gween.Tween // nil when idle
	ScoreScale float64
}

var HUD = donburi.NewComponentType[HUDData]()
