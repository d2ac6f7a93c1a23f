package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Player mixes cues into the system speaker.
// A disabled or uninitialized player silently ignores every cue.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	enabled     bool
	initialized bool
}

// NewPlayer creates a player; it does not touch the audio device until Init.
func NewPlayer(enabled bool, volume float64) *Player {
	return &Player{
		mixer:   &beep.Mixer{},
		volume:  volume,
		enabled: enabled,
	}
}

// Init opens the speaker. It is a no-op for a disabled player or when already
// initialized. Failure leaves the player silent.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.enabled || p.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Play queues the sound for a cue.
func (p *Player) Play(c Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	s := Sound(c, p.volume, sampleRate)
	if s == nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Close stops all queued sounds and releases the audio device.
// The player can be opened again with Init.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.mixer = &beep.Mixer{}
	p.initialized = false
}

// Enabled reports whether the player is producing sound.
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized
}
