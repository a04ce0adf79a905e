//go:build !tinygo

package hal

import "time"

// hostTime turns wall-clock time elapsed between steps into ticks of a
// fixed length. Ticks that find the channel full are dropped.
type hostTime struct {
	tick time.Duration
	ch   chan uint64
	seq  uint64

	last time.Time
	acc  time.Duration
}

func newHostTime(tick time.Duration) *hostTime {
	return &hostTime{tick: tick, ch: make(chan uint64, 1024)}
}

func (t *hostTime) Ticks() <-chan uint64 { return t.ch }

// step is called once per frame. The first call emits a single tick.
func (t *hostTime) step(now time.Time) {
	if t.last.IsZero() {
		t.last = now
		t.emit(1)
		return
	}
	t.acc += now.Sub(t.last)
	t.last = now

	n := uint64(t.acc / t.tick)
	if n == 0 {
		return
	}
	t.acc %= t.tick
	t.emit(n)
}

func (t *hostTime) emit(n uint64) {
	for ; n > 0; n-- {
		t.seq++
		select {
		case t.ch <- t.seq:
		default:
		}
	}
}
