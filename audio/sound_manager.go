package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"dodgetrainer/parameter"
)

const (
	sampleRate = beep.SampleRate(parameter.AudioSampleRate)
)

// SoundManager manages all game audio. Initialization is best-effort:
// on headless machines the speaker fails to open and every Play call
// becomes a no-op.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker and attaches the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferDuration))
	if err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	sm.mixer.Clear()
	sm.initialized = false
}

// PlayShot plays the short descending chirp of a bullet leaving
func (sm *SoundManager) PlayShot() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	gen := NewChirpGenerator(sampleRate, ChirpSpec{
		Duration:  parameter.FireSoundDuration,
		Attack:    parameter.FireSoundAttack,
		Release:   parameter.FireSoundRelease,
		StartFreq: parameter.FireSoundStartFreq,
		EndFreq:   parameter.FireSoundEndFreq,
	})
	sm.mixer.Add(beep.Take(sampleRate.N(parameter.FireSoundDuration), gen))
}

// PlayHit plays a low thud for a bullet impact
func (sm *SoundManager) PlayHit() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	gen := NewChirpGenerator(sampleRate, ChirpSpec{
		Duration:  parameter.HitSoundDuration,
		Attack:    parameter.HitSoundAttack,
		Release:   parameter.HitSoundRelease,
		StartFreq: parameter.HitSoundStartFreq,
		EndFreq:   parameter.HitSoundEndFreq,
	})
	sm.mixer.Add(beep.Take(sampleRate.N(parameter.HitSoundDuration), gen))
}

// PlayExplosion plays the enemy destruction noise burst
func (sm *SoundManager) PlayExplosion() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	gen := NewNoiseGenerator(sampleRate,
		parameter.ExplosionSoundDuration,
		parameter.ExplosionSoundAttack,
		parameter.ExplosionSoundRelease)
	sm.mixer.Add(beep.Take(sampleRate.N(parameter.ExplosionSoundDuration), gen))
}

// PlayEmptyClip plays a flat buzz for a denied fire request
func (sm *SoundManager) PlayEmptyClip() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	gen := NewBuzzGenerator(sampleRate, parameter.EmptySoundFreq, ChirpSpec{
		Duration: parameter.EmptySoundDuration,
		Attack:   parameter.EmptySoundAttack,
		Release:  parameter.EmptySoundRelease,
	})
	sm.mixer.Add(beep.Take(sampleRate.N(parameter.EmptySoundDuration), gen))
}
