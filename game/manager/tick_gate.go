package manager

import "time"

// DefaultTickInterval is the time between snake moves.
const DefaultTickInterval = 200 * time.Millisecond

// TickGate fires at a fixed interval regardless of frame rate.
type TickGate struct {
	interval time.Duration
	last     time.Time
}

func NewTickGate(interval time.Duration) *TickGate {
	return &TickGate{interval: interval}
}

// Reset makes now the last fired time.
func (tg *TickGate) Reset(now time.Time) {
	tg.last = now
}

// Ready reports whether interval has elapsed since the last fire and, if so,
// re-arms the gate at now.
func (tg *TickGate) Ready(now time.Time) bool {
	if now.Sub(tg.last) < tg.interval {
		return false
	}
	tg.last = now
	return true
}

func (tg *TickGate) Interval() time.Duration {
	return tg.interval
}
