package audio

import (
	"testing"
	"time"
)

// drain counts the samples a streamer yields before it ends.
func drain(t *testing.T, notes []Note) int {
	t.Helper()
	s, err := Melody(DefaultSampleRate, DefaultVolume, notes)
	if err != nil {
		t.Fatalf("Melody: %v", err)
	}

	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			break
		}
	}
	return total
}

func TestMelodyLength(t *testing.T) {
	tests := []struct {
		name  string
		notes []Note
		dur   time.Duration
	}{
		{"eat", EatNotes, 60 * time.Millisecond},
		{"game over", GameOverNotes, 480 * time.Millisecond},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			want := 0
			for _, n := range tc.notes {
				want += DefaultSampleRate.N(n.Dur)
			}
			if got := drain(t, tc.notes); got != want {
				t.Errorf("Expected %d samples, got %d", want, got)
			}
			if DefaultSampleRate.D(want).Round(time.Millisecond) != tc.dur {
				t.Errorf("Expected %v of audio, got %v", tc.dur, DefaultSampleRate.D(want))
			}
		})
	}
}

func TestMelodyRejectsBadFrequency(t *testing.T) {
	// Frequencies above Nyquist cannot be generated.
	if _, err := Melody(DefaultSampleRate, 0, []Note{{Freq: 30000, Dur: time.Millisecond}}); err == nil {
		t.Error("Expected error for frequency above half the sample rate")
	}
}

func TestNopIsSilent(t *testing.T) {
	var p Player = Nop{}
	p.Eat()
	p.GameOver()
	p.Close()
}
