// Package audio plays the game's sound effects.
package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/errors"
)

// Player reacts to game events with sound.
type Player interface {
	Eat()
	GameOver()
	Close()
}

// Nop is a silent Player.
type Nop struct{}

func (Nop) Eat()      {}
func (Nop) GameOver() {}
func (Nop) Close()    {}

const (
	DefaultSampleRate = beep.SampleRate(44100)
	DefaultVolume     = -1.0 // halves amplitude, base 2
)

// Note is one tone of a sound effect.
type Note struct {
	Freq float64
	Dur  time.Duration
}

var (
	EatNotes      = []Note{{Freq: 880, Dur: 60 * time.Millisecond}}
	GameOverNotes = []Note{
		{Freq: 440, Dur: 120 * time.Millisecond},
		{Freq: 330, Dur: 120 * time.Millisecond},
		{Freq: 220, Dur: 240 * time.Millisecond},
	}
)

// Beep plays sine tones through the system speaker.
type Beep struct {
	sampleRate beep.SampleRate
	volume     float64
}

// NewBeep initialises the speaker. Callers should fall back to Nop on error.
func NewBeep(sampleRate beep.SampleRate) (*Beep, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, errors.Wrap(err, "init speaker")
	}
	return &Beep{sampleRate: sampleRate, volume: DefaultVolume}, nil
}

func (b *Beep) Eat() {
	b.play(EatNotes)
}

func (b *Beep) GameOver() {
	b.play(GameOverNotes)
}

func (b *Beep) Close() {
	speaker.Close()
}

func (b *Beep) play(notes []Note) {
	s, err := Melody(b.sampleRate, b.volume, notes)
	if err != nil {
		return
	}
	speaker.Play(s)
}

// Melody builds a streamer that plays notes back to back at the given volume.
func Melody(sampleRate beep.SampleRate, volume float64, notes []Note) (beep.Streamer, error) {
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		sine, err := generators.SineTone(sampleRate, n.Freq)
		if err != nil {
			return nil, errors.Wrapf(err, "sine %.0fHz", n.Freq)
		}
		parts = append(parts, beep.Take(sampleRate.N(n.Dur), sine))
	}
	return &effects.Volume{
		Streamer: beep.Seq(parts...),
		Base:     2,
		Volume:   volume,
	}, nil
}
