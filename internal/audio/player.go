package audio

import (
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-flappy/internal/assets"
	"github.com/vovakirdan/tui-flappy/internal/config"
)

// Player mixes sound effects onto the speaker. It implements
// assets.SoundBank: every loaded sound is rendered once into a buffer and
// replayed from there.
type Player struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	rate   beep.SampleRate
	volume float64
	muted  atomic.Bool
	logger *log.Logger
	live   bool
}

// NewPlayer opens the default output device.
func NewPlayer(cfg config.FlappyAudio, logger *log.Logger) (*Player, error) {
	p := newPlayer(cfg, logger)
	if err := speaker.Init(p.rate, p.rate.N(time.Millisecond*100)); err != nil {
		return nil, fmt.Errorf("failed to open audio device: %w", err)
	}
	speaker.Play(p.mixer)
	p.live = true
	p.logger.Debug("audio ready", "sample_rate", int(p.rate), "volume", p.volume)
	return p, nil
}

func newPlayer(cfg config.FlappyAudio, logger *log.Logger) *Player {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	rate := cfg.SampleRate
	if rate <= 0 {
		rate = 44100
	}
	return &Player{
		mixer:  &beep.Mixer{},
		rate:   beep.SampleRate(rate),
		volume: cfg.Volume,
		logger: logger,
	}
}

// Load renders spec into a buffer.
func (p *Player) Load(spec assets.SoundSpec) (assets.Sound, error) {
	buf := beep.NewBuffer(beep.Format{SampleRate: p.rate, NumChannels: 2, Precision: 2})
	buf.Append(Synthesize(spec, p.rate))
	if buf.Len() == 0 {
		return nil, fmt.Errorf("sound %q rendered no samples", spec.Name)
	}
	return &voice{player: p, name: spec.Name, buf: buf}, nil
}

// ToggleMute flips the mute switch and reports whether sound is now muted.
func (p *Player) ToggleMute() bool {
	muted := !p.muted.Load()
	p.muted.Store(muted)
	p.logger.Info("sound toggled", "muted", muted)
	return muted
}

// Muted reports whether playback is muted.
func (p *Player) Muted() bool {
	return p.muted.Load()
}

// Active returns the number of sounds currently mixing.
func (p *Player) Active() int {
	speaker.Lock()
	defer speaker.Unlock()
	return p.mixer.Len()
}

// Close stops all sounds and releases the device.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	if p.live {
		speaker.Close()
		p.live = false
	}
}

func (p *Player) play(v *voice) {
	if p.muted.Load() {
		return
	}
	speaker.Lock()
	p.mixer.Add(newVolume(v.buf.Streamer(0, v.buf.Len()), p.volume))
	speaker.Unlock()
}

// voice is one loaded sound effect.
type voice struct {
	player *Player
	name   string
	buf    *beep.Buffer
}

// Play starts the sound. Overlapping plays mix.
func (v *voice) Play() {
	v.player.play(v)
}
