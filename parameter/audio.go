package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 50 * time.Millisecond
)

// Fire Sound (per bullet, short chirp down)
const (
	FireSoundDuration  = 40 * time.Millisecond
	FireSoundAttack    = 2 * time.Millisecond
	FireSoundRelease   = 25 * time.Millisecond
	FireSoundStartFreq = 880.0 // Hz
	FireSoundEndFreq   = 440.0 // Hz
)

// Hit Sound (bullet impact thud)
const (
	HitSoundDuration  = 70 * time.Millisecond
	HitSoundAttack    = 1 * time.Millisecond
	HitSoundRelease   = 50 * time.Millisecond
	HitSoundStartFreq = 220.0 // Hz
	HitSoundEndFreq   = 80.0  // Hz
)

// Explosion Sound (enemy death, noise burst)
const (
	ExplosionSoundDuration = 350 * time.Millisecond
	ExplosionSoundAttack   = 5 * time.Millisecond
	ExplosionSoundRelease  = 300 * time.Millisecond
)

// Empty Clip Sound (fire attempt without ammo)
const (
	EmptySoundDuration = 60 * time.Millisecond
	EmptySoundAttack   = 2 * time.Millisecond
	EmptySoundRelease  = 30 * time.Millisecond
	EmptySoundFreq     = 140.0 // Hz
)
