package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveTriangle
)

// oscillator generates a fixed-length tone
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a tone of the given frequency and length.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveTriangle:
			val = 1 - 4*math.Abs(o.phase-0.5)
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// decay fades a stream out exponentially so notes do not click when they stop.
type decay struct {
	streamer beep.Streamer
	rate     beep.SampleRate
	position int
	speed    float64 // Amplitude falls by e every 1/speed seconds
}

func newDecay(s beep.Streamer, speed float64, rate beep.SampleRate) beep.Streamer {
	return &decay{streamer: s, rate: rate, speed: speed}
}

func (d *decay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = d.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		t := float64(d.position) / float64(d.rate)
		vol := math.Exp(-t * d.speed)
		samples[i][0] *= vol
		samples[i][1] *= vol
		d.position++
	}
	return n, ok
}

func (d *decay) Err() error { return d.streamer.Err() }

// newVolume scales a stream linearly; math.Log2(0) is -Inf so zero is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

type note struct {
	freq     float64
	duration time.Duration
}

// melodies are short note sequences per cue.
var melodies = map[Cue]struct {
	wave  WaveType
	notes []note
}{
	CueLock:      {WaveTriangle, []note{{196.00, 40 * time.Millisecond}}},
	CueClear:     {WaveSquare, []note{{523.25, 60 * time.Millisecond}, {659.25, 80 * time.Millisecond}}},
	CueFourLines: {WaveSquare, []note{{523.25, 60 * time.Millisecond}, {659.25, 60 * time.Millisecond}, {783.99, 60 * time.Millisecond}, {1046.50, 160 * time.Millisecond}}},
	CueLevelUp:   {WaveSine, []note{{659.25, 80 * time.Millisecond}, {880.00, 80 * time.Millisecond}, {1318.51, 140 * time.Millisecond}}},
	CueGameOver:  {WaveTriangle, []note{{392.00, 180 * time.Millisecond}, {311.13, 180 * time.Millisecond}, {261.63, 400 * time.Millisecond}}},
}

// Sound builds the streamer for a cue, or nil when the cue is silent.
func Sound(c Cue, volume float64, rate beep.SampleRate) beep.Streamer {
	m, ok := melodies[c]
	if !ok {
		return nil
	}
	parts := make([]beep.Streamer, 0, len(m.notes))
	for _, n := range m.notes {
		osc := NewOscillator(n.freq, n.duration, m.wave, rate)
		parts = append(parts, newDecay(osc, 6, rate))
	}
	return newVolume(beep.Seq(parts...), volume*0.4)
}

// Duration returns the total length of a cue.
func Duration(c Cue) time.Duration {
	var total time.Duration
	for _, n := range melodies[c].notes {
		total += n.duration
	}
	return total
}
