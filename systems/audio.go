package systems

import (
	"github.com/mlange-42/ark/ecs"

	"dodgetrainer/audio"
	"dodgetrainer/engine"
)

// AudioSystem drains the game event queue and maps events to sounds.
// It is the queue's only consumer; the drain happens even while paused
// so events raised just before a pause still play.
type AudioSystem struct {
	shared *engine.Shared
	sound  *audio.SoundManager
}

// NewAudioSystem creates the event-to-sound bridge
func NewAudioSystem(shared *engine.Shared, sound *audio.SoundManager) *AudioSystem {
	return &AudioSystem{shared: shared, sound: sound}
}

func (s *AudioSystem) Initialize(_ *ecs.World) {}

func (s *AudioSystem) Update(_ *ecs.World) {
	for _, event := range s.shared.Events.Consume() {
		switch event.Type {
		case engine.EventShotFired:
			s.sound.PlayShot()
		case engine.EventEmptyClip:
			s.sound.PlayEmptyClip()
		case engine.EventPlayerHit, engine.EventEnemyHit:
			s.sound.PlayHit()
		case engine.EventEnemyDestroyed:
			s.sound.PlayExplosion()
		}
	}
}

func (s *AudioSystem) Finalize(_ *ecs.World) {
	s.sound.Cleanup()
}
