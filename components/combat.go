package components

import (
	"dodgetrainer/parameter"
	"dodgetrainer/vmath"
)

// Health tracks hit points for destructible entities
type Health struct {
	// Current remaining hit points (>= 0)
	Current int

	// Max hit points at spawn
	Max int
}

// AmmoClip is a segmented charge store. Slots hold charge in Q32.32,
// each filling to the segment maximum. Firing drains a full segment's
// worth from the rightmost charged slots; recharge refills the leftmost
// non-full slot and pauses while a burst is in flight.
type AmmoClip struct {
	Slots [parameter.AmmoSegments]int64
}

// ammoSegmentMax is one full clip slot in Q32.32
var ammoSegmentMax = vmath.FromFloat(parameter.AmmoSegmentMaxFloat)

// NewFullClip returns a clip with every slot charged
func NewFullClip() AmmoClip {
	var clip AmmoClip
	for i := range clip.Slots {
		clip.Slots[i] = ammoSegmentMax
	}
	return clip
}

// CanFire reports whether the clip can start a burst. Starting needs at
// least one completely full slot; scattered partial charge is not enough.
func (c *AmmoClip) CanFire() bool {
	for _, s := range c.Slots {
		if s >= ammoSegmentMax {
			return true
		}
	}
	return false
}

// Consume drains one segment's worth of charge from the rightmost
// charged slots. A full rightmost slot empties outright; a partial one
// empties and the remainder transfers from slots further left. Returns
// false when total charge is below one segment.
func (c *AmmoClip) Consume() bool {
	var total int64
	for _, s := range c.Slots {
		total += s
	}
	if total < ammoSegmentMax {
		return false
	}

	idx := -1
	for i := len(c.Slots) - 1; i >= 0; i-- {
		if c.Slots[i] > 0 {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}

	if c.Slots[idx] >= ammoSegmentMax {
		c.Slots[idx] = 0
		return true
	}

	need := ammoSegmentMax - c.Slots[idx]
	c.Slots[idx] = 0
	for i := idx - 1; i >= 0; i-- {
		if c.Slots[i] <= 0 {
			continue
		}
		if c.Slots[i] >= need {
			c.Slots[i] -= need
			return true
		}
		need -= c.Slots[i]
		c.Slots[i] = 0
	}
	return true
}

// PendingShot is one scheduled bullet within a burst
type PendingShot struct {
	// DirX, DirY is the normalized flight direction (Q32.32)
	DirX, DirY int64

	// OffX, OffY is the spawn offset from the shooter center (Q32.32 cells)
	OffX, OffY int64

	// FireTick is the absolute logic tick the bullet spawns at
	FireTick uint64
}

// MaxBurstShots bounds the per-burst schedule array
const MaxBurstShots = 16

// Burst carries an in-flight firing sequence. Shots[Next:Count] are
// pending in fire order. The component is removed once Next reaches
// Count, which also resumes ammo recharge.
type Burst struct {
	Shots [MaxBurstShots]PendingShot
	Count int
	Next  int
}

// Done reports whether every scheduled shot has spawned
func (b *Burst) Done() bool {
	return b.Next >= b.Count
}
