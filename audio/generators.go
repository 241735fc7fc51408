package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// ChirpSpec describes a swept tone with a linear attack/release envelope
type ChirpSpec struct {
	Duration  time.Duration
	Attack    time.Duration
	Release   time.Duration
	StartFreq float64
	EndFreq   float64
}

// envelope returns the amplitude factor at pos for a sound of total
// samples with the given attack and release lengths
func envelope(pos, total, attack, release int) float64 {
	if attack > 0 && pos < attack {
		return float64(pos) / float64(attack)
	}
	if release > 0 && pos > total-release {
		rem := total - pos
		if rem < 0 {
			return 0
		}
		return float64(rem) / float64(release)
	}
	return 1
}

// ChirpGenerator generates a sine sweep from StartFreq to EndFreq
type ChirpGenerator struct {
	sr      beep.SampleRate
	spec    ChirpSpec
	pos     int
	total   int
	attack  int
	release int
	phase   float64
}

// NewChirpGenerator creates a chirp sound generator
func NewChirpGenerator(sr beep.SampleRate, spec ChirpSpec) *ChirpGenerator {
	return &ChirpGenerator{
		sr:      sr,
		spec:    spec,
		total:   sr.N(spec.Duration),
		attack:  sr.N(spec.Attack),
		release: sr.N(spec.Release),
	}
}

func (g *ChirpGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		progress := float64(g.pos) / float64(g.total)
		if progress > 1 {
			progress = 1
		}
		freq := g.spec.StartFreq + (g.spec.EndFreq-g.spec.StartFreq)*progress

		// Phase accumulation keeps the sweep click-free
		g.phase += 2 * math.Pi * freq / float64(g.sr)
		amplitude := 0.2 * envelope(g.pos, g.total, g.attack, g.release)
		sample := amplitude * math.Sin(g.phase)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ChirpGenerator) Err() error {
	return nil
}

// NoiseGenerator generates an enveloped white noise burst
type NoiseGenerator struct {
	sr      beep.SampleRate
	pos     int
	total   int
	attack  int
	release int
	state   uint64
}

// NewNoiseGenerator creates a noise burst generator
func NewNoiseGenerator(sr beep.SampleRate, duration, attack, release time.Duration) *NoiseGenerator {
	return &NoiseGenerator{
		sr:      sr,
		total:   sr.N(duration),
		attack:  sr.N(attack),
		release: sr.N(release),
		state:   0x9E3779B97F4A7C15,
	}
}

func (g *NoiseGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		// xorshift64 noise source, deterministic across runs
		g.state ^= g.state << 13
		g.state ^= g.state >> 7
		g.state ^= g.state << 17
		noise := float64(int64(g.state)) / float64(math.MaxInt64)

		amplitude := 0.25 * envelope(g.pos, g.total, g.attack, g.release)
		sample := amplitude * noise

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *NoiseGenerator) Err() error {
	return nil
}

// BuzzGenerator generates a low square-wave buzz
type BuzzGenerator struct {
	sr      beep.SampleRate
	freq    float64
	pos     int
	total   int
	attack  int
	release int
}

// NewBuzzGenerator creates a buzz sound generator
func NewBuzzGenerator(sr beep.SampleRate, freq float64, spec ChirpSpec) *BuzzGenerator {
	return &BuzzGenerator{
		sr:      sr,
		freq:    freq,
		total:   sr.N(spec.Duration),
		attack:  sr.N(spec.Attack),
		release: sr.N(spec.Release),
	}
}

func (g *BuzzGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		phase := math.Mod(t*g.freq, 1)
		wave := 1.0
		if phase >= 0.5 {
			wave = -1.0
		}

		amplitude := 0.15 * envelope(g.pos, g.total, g.attack, g.release)
		sample := amplitude * wave

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BuzzGenerator) Err() error {
	return nil
}
