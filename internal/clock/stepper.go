// Package clock drives the simulation at a fixed rate independent of the
// host's refresh rate, and schedules delayed callbacks that can be cancelled.
package clock

import "time"

// Stepper converts irregular host frames into a whole number of fixed
// simulation ticks. Time that does not add up to a full tick is carried over
// to the next frame. After a long stall only maxCatchUp ticks run and the
// rest of the backlog is dropped, so the game never fast-forwards through
// seconds of missed time.
type Stepper struct {
	interval   time.Duration
	maxCatchUp int

	last    time.Time
	started bool
	acc     time.Duration
	dropped int
}

// NewStepper creates a stepper for the given tick rate.
// A non-positive maxCatchUp means one tick per frame at most.
func NewStepper(ticksPerSecond, maxCatchUp int) *Stepper {
	if ticksPerSecond <= 0 {
		ticksPerSecond = 60
	}
	if maxCatchUp <= 0 {
		maxCatchUp = 1
	}
	return &Stepper{
		interval:   time.Second / time.Duration(ticksPerSecond),
		maxCatchUp: maxCatchUp,
	}
}

// Interval returns the fixed simulation step.
func (s *Stepper) Interval() time.Duration {
	return s.interval
}

// Advance accounts for the time since the previous call and runs step once
// per whole interval. The first call only records the start time.
// It returns the number of ticks run.
func (s *Stepper) Advance(now time.Time, step func()) int {
	if !s.started {
		s.started = true
		s.last = now
		return 0
	}

	elapsed := now.Sub(s.last)
	s.last = now
	if elapsed < 0 {
		elapsed = 0
	}
	s.acc += elapsed

	ticks := 0
	for s.acc >= s.interval && ticks < s.maxCatchUp {
		step()
		s.acc -= s.interval
		ticks++
	}

	if s.acc >= s.interval {
		s.dropped += int(s.acc / s.interval)
		s.acc %= s.interval
	}
	return ticks
}

// Dropped returns how many ticks have been skipped by the catch-up cap.
func (s *Stepper) Dropped() int {
	return s.dropped
}

// Reset forgets the previous frame time and any carried time, e.g. after
// the host was paused.
func (s *Stepper) Reset() {
	s.started = false
	s.acc = 0
}
