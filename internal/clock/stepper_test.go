package clock

import (
	"testing"
	"time"
)

func TestStepperFirstFrameRunsNothing(t *testing.T) {
	s := NewStepper(60, 5)
	ticks := 0
	if n := s.Advance(time.Unix(0, 0), func() { ticks++ }); n != 0 || ticks != 0 {
		t.Errorf("first Advance ran %d ticks, expected 0", ticks)
	}
}

func TestStepperIndependentOfFrameRate(t *testing.T) {
	// Two seconds of simulated time must produce the same tick count
	// whether the host refreshes at 30 Hz or 144 Hz.
	run := func(fps int) int {
		s := NewStepper(60, 5)
		start := time.Unix(0, 0)
		ticks := 0
		s.Advance(start, func() {})
		frame := time.Second / time.Duration(fps)
		for i := 1; i <= 2*fps; i++ {
			s.Advance(start.Add(time.Duration(i)*frame), func() { ticks++ })
		}
		return ticks
	}

	for _, fps := range []int{30, 60, 144} {
		got := run(fps)
		if got < 119 || got > 120 {
			t.Errorf("at %d fps got %d ticks in 2s, expected 120", fps, got)
		}
	}
}

func TestStepperCarriesRemainder(t *testing.T) {
	s := NewStepper(10, 5) // 100ms per tick
	start := time.Unix(0, 0)
	ticks := 0
	step := func() { ticks++ }

	s.Advance(start, step)
	s.Advance(start.Add(60*time.Millisecond), step)
	if ticks != 0 {
		t.Fatalf("expected no tick after 60ms, got %d", ticks)
	}
	s.Advance(start.Add(120*time.Millisecond), step)
	if ticks != 1 {
		t.Errorf("expected carried time to complete a tick, got %d", ticks)
	}
}

func TestStepperCatchUpCap(t *testing.T) {
	s := NewStepper(60, 5)
	start := time.Unix(0, 0)
	ticks := 0
	step := func() { ticks++ }

	s.Advance(start, step)
	n := s.Advance(start.Add(3*time.Second), step)

	if n != 5 || ticks != 5 {
		t.Errorf("stall ran %d ticks, expected cap of 5", ticks)
	}
	if s.Dropped() < 170 {
		t.Errorf("Dropped() = %d, expected the rest of the backlog", s.Dropped())
	}

	// The backlog is gone: the next ordinary frame runs one tick.
	n = s.Advance(start.Add(3*time.Second+s.Interval()), step)
	if n != 1 {
		t.Errorf("frame after stall ran %d ticks, expected 1", n)
	}
}

func TestStepperReset(t *testing.T) {
	s := NewStepper(60, 5)
	start := time.Unix(0, 0)
	s.Advance(start, func() {})
	s.Reset()

	ticks := 0
	s.Advance(start.Add(time.Second), func() { ticks++ })
	if ticks != 0 {
		t.Errorf("Advance after Reset ran %d ticks, expected 0", ticks)
	}
}
