// Package audio plays the short synthesized cues that accompany a throw.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(48000)

	launchDuration = 120 * time.Millisecond
	hitNote        = 90 * time.Millisecond
	missDuration   = 150 * time.Millisecond
)

// Cue names one of the sounds
type Cue int

const (
	CueLaunch Cue = iota
	CueHit
	CueMiss
)

// SoundManager mixes cues onto the speaker. Until Initialize succeeds every
// Play call is silently dropped.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewSoundManager creates a sound manager at linear volume in [0,1]
func NewSoundManager(volume float64) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: math.Max(0, math.Min(1, volume)),
	}
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Close silences everything. The speaker itself stays open.
func (sm *SoundManager) Close() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// Play queues cue on the mixer
func (sm *SoundManager) Play(cue Cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	s, err := cueStreamer(cue, sampleRate)
	if err != nil {
		return
	}
	speaker.Lock()
	sm.mixer.Add(withVolume(s, sm.volume))
	speaker.Unlock()
}

// Launch implements engine.Cues.
func (sm *SoundManager) Launch() { sm.Play(CueLaunch) }

// Hit implements engine.Cues.
func (sm *SoundManager) Hit() { sm.Play(CueHit) }

// Miss implements engine.Cues.
func (sm *SoundManager) Miss() { sm.Play(CueMiss) }

// cueStreamer builds a finite streamer for cue
func cueStreamer(cue Cue, sr beep.SampleRate) (beep.Streamer, error) {
	switch cue {
	case CueLaunch:
		return beep.Take(sr.N(launchDuration), NewSweepGenerator(sr, 300, 900, launchDuration)), nil
	case CueHit:
		low, err := generators.SineTone(sr, 880)
		if err != nil {
			return nil, err
		}
		high, err := generators.SineTone(sr, 1320)
		if err != nil {
			return nil, err
		}
		return beep.Seq(
			withVolume(beep.Take(sr.N(hitNote), low), 0.3),
			withVolume(beep.Take(sr.N(hitNote), high), 0.3),
		), nil
	default:
		return beep.Take(sr.N(missDuration), NewThudGenerator(sr, 110, missDuration)), nil
	}
}

// withVolume scales s by a linear gain in [0,1]
func withVolume(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}

// SweepGenerator glides a sine from one frequency to another
type SweepGenerator struct {
	sr       beep.SampleRate
	from, to float64
	samples  int
	pos      int
	phase    float64
}

// NewSweepGenerator creates a sweep lasting d
func NewSweepGenerator(sr beep.SampleRate, from, to float64, d time.Duration) *SweepGenerator {
	return &SweepGenerator{sr: sr, from: from, to: to, samples: sr.N(d)}
}

func (g *SweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		progress := math.Min(float64(g.pos)/float64(g.samples), 1)
		freq := g.from + (g.to-g.from)*progress
		g.phase += 2 * math.Pi * freq / float64(g.sr)

		// fade out over the sweep
		sample := 0.25 * (1 - progress) * math.Sin(g.phase)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *SweepGenerator) Err() error {
	return nil
}

// ThudGenerator is a decaying low tone
type ThudGenerator struct {
	sr      beep.SampleRate
	freq    float64
	samples int
	pos     int
}

// NewThudGenerator creates a thud lasting d
func NewThudGenerator(sr beep.SampleRate, freq float64, d time.Duration) *ThudGenerator {
	return &ThudGenerator{sr: sr, freq: freq, samples: sr.N(d)}
}

func (g *ThudGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		env := math.Exp(-6 * float64(g.pos) / float64(g.samples))
		sample := 0.4 * env * math.Sin(2*math.Pi*g.freq*t)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ThudGenerator) Err() error {
	return nil
}
