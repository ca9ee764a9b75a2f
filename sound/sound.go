// Package sound plays the footstep pop and the low-time warning through the
// system speaker.
package sound

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	log "github.com/sirupsen/logrus"
)

const SAMPLE_RATE = beep.SampleRate(44100)

const (
	POP_FREQ      = 660.0
	POP_DURATION  = 60 * time.Millisecond
	WARN_HIGH     = 880.0
	WARN_LOW      = 587.33
	WARN_NOTE     = 120 * time.Millisecond
	WARN_GAP      = 40 * time.Millisecond
	EFFECT_VOLUME = 0.4
)

// tone is a sine oscillator with a linear fade out over its last quarter.
type tone struct {
	freq     float64
	rate     beep.SampleRate
	phase    float64
	position int
	total    int
}

func newTone(freq float64, d time.Duration, rate beep.SampleRate) *tone {
	return &tone{freq: freq, rate: rate, total: rate.N(d)}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	release := t.total / 4
	for i := range samples {
		if t.position >= t.total {
			return i, i > 0
		}
		val := math.Sin(2 * math.Pi * t.phase)
		if left := t.total - t.position; release > 0 && left < release {
			val *= float64(left) / float64(release)
		}
		samples[i][0] = val
		samples[i][1] = val
		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.position++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// PopStreamer is a short blip played on every successful move.
func PopStreamer(rate beep.SampleRate) beep.Streamer {
	return withVolume(newTone(POP_FREQ, POP_DURATION, rate), EFFECT_VOLUME)
}

// WarningStreamer is a falling two-note alarm.
func WarningStreamer(rate beep.SampleRate) beep.Streamer {
	return withVolume(beep.Seq(
		newTone(WARN_HIGH, WARN_NOTE, rate),
		beep.Silence(rate.N(WARN_GAP)),
		newTone(WARN_LOW, WARN_NOTE, rate),
	), EFFECT_VOLUME)
}

// Player mixes effects into a single speaker stream. A Player whose speaker
// failed to open stays silent.
type Player struct {
	mu      sync.Mutex
	mixer   *beep.Mixer
	rate    beep.SampleRate
	enabled bool
}

func New() *Player {
	p := &Player{mixer: &beep.Mixer{}, rate: SAMPLE_RATE}
	if err := speaker.Init(p.rate, p.rate.N(100*time.Millisecond)); err != nil {
		log.Warnf("sound disabled: %v", err)
		return p
	}
	speaker.Play(p.mixer)
	p.enabled = true
	return p
}

func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.enabled
}

func (p *Player) Pop() {
	p.play(PopStreamer(p.rate))
}

func (p *Player) Warning() {
	p.play(WarningStreamer(p.rate))
}

func (p *Player) play(s beep.Streamer) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.enabled {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Close drops queued effects and keeps the player silent afterwards.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.enabled {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.enabled = false
}
