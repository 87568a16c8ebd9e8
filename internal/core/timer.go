package core

import "time"

// FixedStep paces replay playback at a steady frames-per-second rate.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given FPS. The
// first call to ShouldStep always reports true.
func NewFixedStep(fps int) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetFPS(fps)
	fs.accumulator = fs.step
	return fs
}

// SetFPS changes the playback rate. Non-positive values fall back to 10.
func (f *FixedStep) SetFPS(fps int) {
	if fps <= 0 {
		fps = 10
	}
	f.step = time.Second / time.Duration(fps)
}

// Step returns the current frame interval.
func (f *FixedStep) Step() time.Duration { return f.step }

// ShouldStep reports whether playback should advance by one frame.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}
