package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Drop feedback timings
const (
	hitDuration        = 350 * time.Millisecond
	hitAttack          = 5 * time.Millisecond
	hitFundRelease     = 300 * time.Millisecond
	hitOvertoneRelease = 150 * time.Millisecond

	missDuration = 120 * time.Millisecond
	missAttack   = 5 * time.Millisecond
	missRelease  = 80 * time.Millisecond
)

// Wave is an oscillator shape
type Wave int

const (
	WaveSine Wave = iota
	WaveSaw
)

// tone is a fixed-length periodic wave
type tone struct {
	freq  float64
	phase float64
	pos   int
	total int
	wave  Wave
	rate  beep.SampleRate
}

// NewTone returns a finite streamer of freq Hz lasting d
func NewTone(freq float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &tone{
		freq:  freq,
		total: rate.N(d),
		wave:  wave,
		rate:  rate,
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	if t.pos >= t.total {
		return 0, false
	}
	for i := range samples {
		if t.pos >= t.total {
			return i, true
		}

		var v float64
		switch t.wave {
		case WaveSine:
			v = math.Sin(2 * math.Pi * t.phase)
		case WaveSaw:
			v = 2.0 * (t.phase - 0.5)
		}
		samples[i][0] = v
		samples[i][1] = v

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// shape applies a linear attack/release gain to a streamer
type shape struct {
	s       beep.Streamer
	pos     int
	attack  int
	release int
	total   int
}

// NewShape fades s in over attack and out over the last release of d
func NewShape(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &shape{
		s:       s,
		attack:  rate.N(attack),
		release: rate.N(release),
		total:   rate.N(d),
	}
}

func (e *shape) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.s.Stream(samples)
	for i := 0; i < n; i++ {
		gain := 1.0
		if e.attack > 0 && e.pos < e.attack {
			gain = float64(e.pos) / float64(e.attack)
		}
		if remaining := e.total - e.pos; e.release > 0 && remaining < e.release {
			gain = min(gain, max(float64(remaining)/float64(e.release), 0))
		}
		samples[i][0] *= gain
		samples[i][1] *= gain
		e.pos++
	}
	return n, ok
}

func (e *shape) Err() error { return e.s.Err() }

// gain scales s linearly; zero or negative mutes since Log2(0) is -Inf
func gain(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// HitSound is a two-partial bell (A5 plus octave)
func HitSound(rate beep.SampleRate, volume float64) beep.Streamer {
	fund := NewShape(NewTone(880, hitDuration, WaveSine, rate), hitDuration, hitAttack, hitFundRelease, rate)
	over := NewShape(NewTone(1760, hitDuration, WaveSine, rate), hitDuration, hitAttack, hitOvertoneRelease, rate)
	return gain(beep.Mix(gain(fund, 0.7), gain(over, 0.3)), volume)
}

// MissSound is a short low saw thud
func MissSound(rate beep.SampleRate, volume float64) beep.Streamer {
	thud := NewShape(NewTone(110, missDuration, WaveSaw, rate), missDuration, missAttack, missRelease, rate)
	return gain(thud, volume*0.5)
}
