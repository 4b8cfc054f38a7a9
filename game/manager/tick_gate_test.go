package manager

import (
	"testing"
	"time"
)

func TestTickGate(t *testing.T) {
	start := time.Unix(1000, 0)
	tg := NewTickGate(200 * time.Millisecond)
	tg.Reset(start)

	steps := []struct {
		offset time.Duration
		want   bool
	}{
		{16 * time.Millisecond, false},
		{199 * time.Millisecond, false},
		{200 * time.Millisecond, true},
		{216 * time.Millisecond, false},
		{399 * time.Millisecond, false},
		{400 * time.Millisecond, true},
		{2 * time.Second, true},
	}

	for _, st := range steps {
		if got := tg.Ready(start.Add(st.offset)); got != st.want {
			t.Errorf("at %v: expected %v, got %v", st.offset, st.want, got)
		}
	}
}

func TestTickGateReset(t *testing.T) {
	start := time.Unix(1000, 0)
	tg := NewTickGate(DefaultTickInterval)
	tg.Reset(start)

	later := start.Add(10 * time.Second)
	tg.Reset(later)
	if tg.Ready(later.Add(100 * time.Millisecond)) {
		t.Error("Expected gate closed right after reset")
	}
	if tg.Interval() != DefaultTickInterval {
		t.Errorf("Expected interval %v, got %v", DefaultTickInterval, tg.Interval())
	}
}
