// Package audio provides the game's sound effects. Audio is strictly
// optional: when the speaker cannot be initialized the player stays silent
// and gameplay is unaffected.
package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Effect tones
const (
	eatFreq      = 880
	eatDuration  = 50 * time.Millisecond
	overFreq     = 220
	overDuration = 300 * time.Millisecond
)

// Player produces short tones for game events.
type Player struct {
	enabled bool
}

// NewPlayer initializes the speaker. On failure it returns a silent player
// together with the error so the caller can log it; the player itself is
// always usable.
func NewPlayer() (*Player, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return &Player{}, err
	}
	return &Player{enabled: true}, nil
}

// Eat plays the food-consumed blip.
func (p *Player) Eat() {
	p.tone(eatFreq, eatDuration)
}

// GameOver plays the low end-of-game tone.
func (p *Player) GameOver() {
	p.tone(overFreq, overDuration)
}

func (p *Player) tone(freq float64, d time.Duration) {
	if !p.enabled {
		return
	}
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(d), sine))
}

// Close releases the speaker.
func (p *Player) Close() {
	if p.enabled {
		speaker.Close()
	}
}
