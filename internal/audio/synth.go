// Package audio synthesizes and plays the game's sound effects.
package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/tui-flappy/internal/assets"
)

const (
	attack  = 5 * time.Millisecond
	release = 40 * time.Millisecond
)

// oscillator generates a raw wave whose pitch slides from freq to endFreq.
type oscillator struct {
	freq     float64
	endFreq  float64
	phase    float64
	duration int
	position int
	wave     string
	rate     beep.SampleRate
	rng      *rand.Rand
}

func newOscillator(spec assets.SoundSpec, rate beep.SampleRate) *oscillator {
	end := spec.EndFrequency
	if end <= 0 {
		end = spec.Frequency
	}
	return &oscillator{
		freq:     spec.Frequency,
		endFreq:  end,
		duration: rate.N(spec.Duration),
		wave:     spec.Wave,
		rate:     rate,
		rng:      rand.New(rand.NewSource(int64(len(spec.Name)) + int64(spec.Duration))),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case assets.WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case assets.WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case assets.WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case assets.WaveNoise:
			val = o.rng.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		progress := float64(o.position) / float64(o.duration)
		freq := o.freq + (o.endFreq-o.freq)*progress
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope fades a stream in over attack samples and out over release samples.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

func newEnvelope(s beep.Streamer, total, attack, release int) *envelope {
	if attack+release > total {
		attack, release = total/4, total/4
	}
	return &envelope{streamer: s, attack: attack, release: release, total: total}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if remaining := e.total - e.position; e.release > 0 && remaining < e.release {
			vol = math.Max(float64(remaining)/float64(e.release), 0)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream linearly. math.Log2(0) is -Inf, so zero is
// handled as silence.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Synthesize renders a sound description into a finite stream.
func Synthesize(spec assets.SoundSpec, rate beep.SampleRate) beep.Streamer {
	osc := newOscillator(spec, rate)
	shaped := newEnvelope(osc, osc.duration, rate.N(attack), rate.N(release))
	gain := spec.Gain
	if gain == 0 {
		gain = 1
	}
	return newVolume(shaped, gain)
}
