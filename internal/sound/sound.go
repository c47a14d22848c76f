// Package sound plays the short click heard when a target is hit.
package sound

import (
	"math"
	"sync"
	"time"

	"click-a-dot/internal/config"
	"click-a-dot/internal/event"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Player plays game sounds.
type Player interface {
	PlayHit()
	Close()
}

// Nop is a silent Player.
type Nop struct{}

func (Nop) PlayHit() {}
func (Nop) Close()   {}

// BeepPlayer mixes hit tones into the system speaker.
type BeepPlayer struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewBeep opens the speaker. The error is returned as is so the caller can
// fall back to Nop.
func NewBeep() (*BeepPlayer, error) {
	p := &BeepPlayer{mixer: &beep.Mixer{}}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return nil, err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return p, nil
}

// PlayHit queues one short tone.
func (p *BeepPlayer) PlayHit() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	d := time.Duration(config.HitToneMillis) * time.Millisecond
	streamer := beep.Take(sampleRate.N(d), NewToneGenerator(sampleRate, config.HitToneHz, d))

	speaker.Lock()
	p.mixer.Add(streamer)
	speaker.Unlock()
}

// Close silences the mixer and releases the speaker.
func (p *BeepPlayer) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.initialized = false
}

// ToneGenerator is a sine tone with a short attack and a linear decay.
type ToneGenerator struct {
	sr     beep.SampleRate
	freq   float64
	length int
	pos    int
}

// NewToneGenerator creates a tone of the given frequency whose envelope
// reaches silence after d.
func NewToneGenerator(sr beep.SampleRate, freq float64, d time.Duration) *ToneGenerator {
	return &ToneGenerator{
		sr:     sr,
		freq:   freq,
		length: max(sr.N(d), 1),
	}
}

func (g *ToneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	attack := g.sr.N(3 * time.Millisecond)
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		envelope := 1.0 - float64(g.pos)/float64(g.length)
		if envelope < 0 {
			envelope = 0
		}
		if g.pos < attack {
			envelope *= float64(g.pos) / float64(attack)
		}

		sample := 0.25 * envelope * math.Sin(2*math.Pi*g.freq*t)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ToneGenerator) Err() error {
	return nil
}

// HitListener plays a hit sound for every score change.
type HitListener struct {
	Player Player
}

func (l *HitListener) OnEvent(e event.Event) {
	if e.Type == event.ScoreChanged {
		l.Player.PlayHit()
	}
}
