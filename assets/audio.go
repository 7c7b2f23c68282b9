package assets

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"

	cfg "github.com/automoto/wingflap/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioLoader synthesizes and caches sound effects
type AudioLoader struct {
	sfxCache map[cfg.SoundID][]byte // Cache rendered PCM for SFX
	context  *audio.Context
}

// NewAudioLoader creates a new audio loader with the given context
func NewAudioLoader(ctx *audio.Context) *AudioLoader {
	return &AudioLoader{
		sfxCache: make(map[cfg.SoundID][]byte),
		context:  ctx,
	}
}

// PreloadSFX renders a sound effect and caches it without creating a player.
// Call this at startup to avoid synthesis lag on first play.
func (l *AudioLoader) PreloadSFX(id cfg.SoundID) error {
	_, err := l.pcm(id)
	return err
}

// LoadSFX returns a new player for a sound effect each time.
func (l *AudioLoader) LoadSFX(id cfg.SoundID) (*audio.Player, error) {
	data, err := l.pcm(id)
	if err != nil {
		return nil, err
	}
	return l.context.NewPlayer(bytes.NewReader(data))
}

func (l *AudioLoader) pcm(id cfg.SoundID) ([]byte, error) {
	if cached, ok := l.sfxCache[id]; ok {
		return cached, nil
	}
	tones, ok := cfg.Sound.Tones[id]
	if !ok || len(tones) == 0 {
		return nil, fmt.Errorf("no tones for sound %d", id)
	}
	data := Synthesize(tones, l.context.SampleRate())
	l.sfxCache[id] = data
	return data, nil
}

// Synthesize renders tones back to back as 16-bit little endian stereo PCM,
// the format audio.Context players read.
func Synthesize(tones []cfg.Tone, sampleRate int) []byte {
	var buf bytes.Buffer
	for _, tone := range tones {
		n := int(tone.Duration * float64(sampleRate))
		phase := 0.0
		for i := 0; i < n; i++ {
			t := float64(i) / float64(n)
			freq := tone.Freq + (tone.EndFreq-tone.Freq)*t
			phase += 2 * math.Pi * freq / float64(sampleRate)
			v := int16(math.Sin(phase) * (1 - t) * 0.5 * math.MaxInt16)
			// Same sample on both channels
			_ = binary.Write(&buf, binary.LittleEndian, [2]int16{v, v})
		}
	}
	return buf.Bytes()
}
