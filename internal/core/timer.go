package core

import "time"

// Pacer keeps a blocking loop running at a steady ticks-per-second rate by
// sleeping away the remainder of each tick.
type Pacer struct {
	step time.Duration
	last time.Time
}

// NewPacer constructs a Pacer targeting the given TPS.
func NewPacer(tps int) *Pacer {
	if tps <= 0 {
		tps = 60
	}
	p := &Pacer{}
	p.SetTPS(tps)
	return p
}

// SetTPS changes the tick rate.
func (p *Pacer) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	p.step = time.Second / time.Duration(tps)
}

// Step returns the duration of one tick at the current rate.
func (p *Pacer) Step() time.Duration { return p.step }

// Wait sleeps until the next tick boundary. The sleep never exceeds one tick,
// which bounds how long a caller blocked in Wait can delay a stop request.
func (p *Pacer) Wait() {
	now := time.Now()
	if p.last.IsZero() {
		p.last = now
	}
	elapsed := now.Sub(p.last)
	if elapsed < p.step {
		time.Sleep(p.step - elapsed)
	}
	p.last = time.Now()
}
