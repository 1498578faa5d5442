package core

import "time"

// maxCatchUp caps how many generations a single Due call reports after a stall.
const maxCatchUp = 4

// FixedStep paces simulation generations independently of the frame rate.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep controller targeting gps generations per
// second. The first call to Due always reports one generation.
func NewFixedStep(gps int) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetRate(gps)
	fs.accumulator = fs.step
	return fs
}

// SetRate changes the generation rate. Non-positive rates fall back to 15.
func (f *FixedStep) SetRate(gps int) {
	if gps <= 0 {
		gps = 15
	}
	f.step = time.Second / time.Duration(gps)
}

// Due reports how many generations should run now.
func (f *FixedStep) Due() int {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now

	n := 0
	for f.accumulator >= f.step && n < maxCatchUp {
		f.accumulator -= f.step
		n++
	}
	if n == maxCatchUp {
		f.accumulator = 0
	}
	return n
}
