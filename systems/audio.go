package systems

import (
	"log"
	"sync"

	"github.com/automoto/wingflap/assets"
	"github.com/automoto/wingflap/components"
	cfg "github.com/automoto/wingflap/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state, created once and shared for the whole process
var (
	globalAudioContext *audio.Context
	globalAudioLoader  *assets.AudioLoader
	globalSFXVolume    = cfg.Audio.DefaultSFXVol
	audioInitOnce      sync.Once
)

func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalAudioLoader = assets.NewAudioLoader(globalAudioContext)
	})
}

// PreloadAllSFX renders all sound effects at startup.
func PreloadAllSFX() {
	if cfg.Audio.Muted {
		return
	}
	initGlobalAudio()

	for id := range cfg.Sound.Tones {
		if err := globalAudioLoader.PreloadSFX(id); err != nil {
			log.Printf("Warning: Could not prepare sound %d: %v", id, err)
		}
	}
}

// UpdateAudio plays the sound effects queued during this update.
func UpdateAudio(e *ecs.ECS) {
	entry, ok := getGame(e)
	if !ok || !entry.HasComponent(components.Audio) {
		return
	}
	audioData := components.Audio.Get(entry)
	if len(audioData.PendingSFX) == 0 {
		return
	}
	if !cfg.Audio.Muted {
		initGlobalAudio()
		for _, id := range audioData.PendingSFX {
			playSFX(id)
		}
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
}

func playSFX(id cfg.SoundID) {
	if globalSFXVolume <= 0 {
		return
	}

	player, err := globalAudioLoader.LoadSFX(id)
	if err != nil {
		return
	}

	volume := globalSFXVolume
	if mult, ok := cfg.Sound.VolumeMultipliers[id]; ok {
		volume *= mult
	}

	player.SetVolume(volume)
	player.Play()
}

// queueSFX records a sound effect for UpdateAudio to play.
func queueSFX(e *ecs.ECS, id cfg.SoundID) {
	entry, ok := getGame(e)
	if !ok || !entry.HasComponent(components.Audio) {
		return
	}
	audioData := components.Audio.Get(entry)
	audioData.PendingSFX = append(audioData.PendingSFX, id)
}
