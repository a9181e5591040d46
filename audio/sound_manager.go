package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/drag-target/config"
)

// Player gives audible drop feedback
type Player interface {
	PlayDrop(hit bool)
	Close()
}

// NopPlayer is used when audio is disabled or unavailable
type NopPlayer struct{}

func (NopPlayer) PlayDrop(bool) {}
func (NopPlayer) Close()        {}

// SpeakerPlayer plays through the system speaker via a shared mixer
type SpeakerPlayer struct {
	mu     sync.Mutex
	rate   beep.SampleRate
	volume float64
	mixer  *beep.Mixer
	closed bool
}

// NewSpeakerPlayer initializes the speaker. Only one may be open per process.
func NewSpeakerPlayer(cfg config.AudioConfig) (*SpeakerPlayer, error) {
	rate := beep.SampleRate(cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("speaker init: %w", err)
	}

	p := &SpeakerPlayer{
		rate:   rate,
		volume: cfg.Volume,
		mixer:  &beep.Mixer{},
	}
	speaker.Play(p.mixer)
	return p, nil
}

// New returns a SpeakerPlayer, or NopPlayer when disabled.
// Initialization failure is returned alongside a NopPlayer so callers can log and continue.
func New(cfg config.AudioConfig) (Player, error) {
	if !cfg.Enabled {
		return NopPlayer{}, nil
	}
	p, err := NewSpeakerPlayer(cfg)
	if err != nil {
		return NopPlayer{}, err
	}
	return p, nil
}

func (p *SpeakerPlayer) PlayDrop(hit bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return
	}

	var s beep.Streamer
	if hit {
		s = HitSound(p.rate, p.volume)
	} else {
		s = MissSound(p.rate, p.volume)
	}

	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Close silences pending sounds and releases the device
func (p *SpeakerPlayer) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return
	}
	p.closed = true
	speaker.Clear()
	speaker.Close()
}
