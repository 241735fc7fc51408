package engine

import (
	"sync/atomic"

	"dodgetrainer/parameter"
)

// EventType represents the type of game event
type EventType int

const (
	// EventShotFired signals a single bullet spawn
	// Trigger: fire sequencing on a scheduled shot
	// Consumer: AudioSystem | Payload: Source
	EventShotFired EventType = iota

	// EventEmptyClip signals a denied burst attempt
	// Trigger: fire request with less than one segment of total charge
	// Consumer: AudioSystem | Payload: none
	EventEmptyClip

	// EventPlayerHit signals an enemy bullet striking the avatar
	// Trigger: collision pass
	// Consumer: AudioSystem | Payload: none
	EventPlayerHit

	// EventEnemyHit signals a player bullet striking the enemy
	// Trigger: collision pass
	// Consumer: AudioSystem | Payload: Damage
	EventEnemyHit

	// EventEnemyDestroyed signals enemy hit points reaching zero
	// Trigger: collision pass
	// Consumer: AudioSystem | Payload: none
	EventEnemyDestroyed
)

// GameEvent is a queued occurrence with small value payload fields
type GameEvent struct {
	Type   EventType
	Tick   uint64
	Source uint8 // BulletSource for shot/hit events
	Damage int   // EventEnemyHit
}

// EventQueue is a lock-free MPSC ring buffer for game events
// Thread-Safety:
//   - Push: Lock-free CAS, multiple producers OK
//   - Consume: Single consumer (game loop)
//   - Published flags prevent reading partial writes
//
// Overflow: Oldest events overwritten when full
type EventQueue struct {
	events    [parameter.GameEventQueueSize]GameEvent
	published [parameter.GameEventQueueSize]atomic.Bool
	head      atomic.Uint64
	tail      atomic.Uint64
}

func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push adds an event using lock-free CAS with published flags
func (eq *EventQueue) Push(event GameEvent) {
	for {
		currentTail := eq.tail.Load()
		nextTail := currentTail + 1

		if eq.tail.CompareAndSwap(currentTail, nextTail) {
			idx := currentTail & parameter.GameEventMask

			eq.events[idx] = event
			eq.published[idx].Store(true) // MUST be after write

			// Advance head if overwriting unread events
			currentHead := eq.head.Load()
			if nextTail-currentHead > parameter.GameEventQueueSize {
				eq.head.CompareAndSwap(currentHead, nextTail-parameter.GameEventQueueSize)
			}
			return
		}
	}
}

// Consume returns all pending events in FIFO order and advances head.
// Single consumer (game loop); skips slots whose published flag is unset
func (eq *EventQueue) Consume() []GameEvent {
	for {
		currentHead := eq.head.Load()
		currentTail := eq.tail.Load()

		if currentTail == currentHead {
			return nil
		}

		maxAvailable := currentTail - currentHead
		if maxAvailable > parameter.GameEventQueueSize {
			maxAvailable = parameter.GameEventQueueSize
			currentHead = currentTail - parameter.GameEventQueueSize
		}

		result := make([]GameEvent, 0, maxAvailable)
		for i := uint64(0); i < maxAvailable; i++ {
			idx := (currentHead + i) & parameter.GameEventMask

			if !eq.published[idx].Load() {
				break // Writer incomplete
			}

			result = append(result, eq.events[idx])
			eq.published[idx].Store(false)
		}

		newHead := currentHead + uint64(len(result))
		if eq.head.CompareAndSwap(currentHead, newHead) {
			if len(result) == 0 {
				return nil
			}
			return result
		}
	}
}
