package assets

import (
	"encoding/binary"
	"testing"

	cfg "github.com/automoto/wingflap/config"
)

func TestSynthesizeLength(t *testing.T) {
	tones := []cfg.Tone{
		{Freq: 440, EndFreq: 440, Duration: 0.1},
		{Freq: 660, EndFreq: 330, Duration: 0.05},
	}
	data := Synthesize(tones, 1000)
	// 150 frames, 2 channels, 2 bytes each
	if len(data) != 150*4 {
		t.Fatalf("len = %d, want %d", len(data), 150*4)
	}
}

func TestSynthesizeFadesOut(t *testing.T) {
	data := Synthesize([]cfg.Tone{{Freq: 100, EndFreq: 100, Duration: 1}}, 8000)
	peak := func(from, to int) int16 {
		var p int16
		for i := from; i < to; i += 4 {
			v := int16(binary.LittleEndian.Uint16(data[i:]))
			if v < 0 {
				v = -v
			}
			p = max(p, v)
		}
		return p
	}
	head := peak(0, len(data)/4)
	tail := peak(len(data)*3/4, len(data))
	if head == 0 || tail >= head {
		t.Fatalf("peaks head=%d tail=%d, want a fade", head, tail)
	}
}

func TestEverySoundHasTones(t *testing.T) {
	for _, id := range []cfg.SoundID{cfg.SoundFlap, cfg.SoundStart, cfg.SoundRingPass, cfg.SoundGameOver} {
		if len(cfg.Sound.Tones[id]) == 0 {
			t.Errorf("sound %d has no tones", id)
		}
	}
}
