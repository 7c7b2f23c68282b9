package components

import (
	cfg "github.com/automoto/wingflap/config"
	"github.com/yohamta/donburi"
)

// AudioData queues sound effects raised during an update
type AudioData struct {
	PendingSFX []cfg.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()
