package engine

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Session accumulates training statistics for the running game. Written
// by the combat and collision passes, displayed on the status bar and
// optionally dumped as a YAML report on exit.
type Session struct {
	ID      string    `yaml:"id"`
	Started time.Time `yaml:"started"`
	Ended   time.Time `yaml:"ended"`

	// Seed reproduces the random sequence of this session
	Seed int64 `yaml:"seed"`

	Ticks uint64 `yaml:"ticks"`

	// Avatar side
	BurstsFired int `yaml:"bursts_fired"`
	ShotsFired  int `yaml:"shots_fired"`
	HitsTaken   int `yaml:"hits_taken"`
	EmptyClips  int `yaml:"empty_clips"`

	// Opponent side
	HitsDealt        int `yaml:"hits_dealt"`
	EnemiesDestroyed int `yaml:"enemies_destroyed"`
}

// NewSession starts a tracked session
func NewSession() *Session {
	return &Session{
		ID:      uuid.NewString(),
		Started: time.Now(),
	}
}

// Close stamps the end time. Later calls keep the first stamp.
func (s *Session) Close() {
	if s.Ended.IsZero() {
		s.Ended = time.Now()
	}
}

// Duration is the wall-clock session length
func (s *Session) Duration() time.Duration {
	end := s.Ended
	if end.IsZero() {
		end = time.Now()
	}
	return end.Sub(s.Started)
}

// Accuracy is the fraction of fired shots that hit, in [0, 1]
func (s *Session) Accuracy() float64 {
	if s.ShotsFired == 0 {
		return 0
	}
	return float64(s.HitsDealt) / float64(s.ShotsFired)
}

// WriteReport closes the session and writes it as YAML to path
func (s *Session) WriteReport(path string) error {
	s.Close()
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("session report encode: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("session report write: %w", err)
	}
	return nil
}
