package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundFlap
	SoundStart
	SoundRingPass
	SoundGameOver
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
	Muted         bool
}

// Tone describes a synthesized effect: a sine sweep from Freq to EndFreq
// with a linear fade out.
type Tone struct {
	Freq     float64 // Hz
	EndFreq  float64 // Hz
	Duration float64 // seconds
}

// SoundConfig maps sound IDs to the tones that voice them
type SoundConfig struct {
	Tones             map[SoundID][]Tone
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 0.6,
	}

	Sound = SoundConfig{
		Tones: map[SoundID][]Tone{
			SoundFlap:     {{Freq: 220, EndFreq: 140, Duration: 0.08}},
			SoundStart:    {{Freq: 440, EndFreq: 440, Duration: 0.1}, {Freq: 660, EndFreq: 660, Duration: 0.15}},
			SoundRingPass: {{Freq: 880, EndFreq: 1320, Duration: 0.12}},
			SoundGameOver: {{Freq: 392, EndFreq: 196, Duration: 0.5}},
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundFlap: 0.5,
		},
	}
}
