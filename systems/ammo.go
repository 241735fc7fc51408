package systems

import (
	"github.com/mlange-42/ark/ecs"

	"dodgetrainer/components"
	"dodgetrainer/engine"
	"dodgetrainer/parameter"
	"dodgetrainer/vmath"
)

// segmentMax is one full clip slot in Q32.32
var segmentMax = vmath.FromFloat(parameter.AmmoSegmentMaxFloat)

// rechargePerTick is charge restored per tick in Q32.32
var rechargePerTick = vmath.FromFloat(parameter.AmmoRechargePerTickFloat)

// AmmoSystem recharges clips one slot at a time, leftmost non-full
// first. Entities with a burst in flight carry a Burst component and
// are excluded, matching the recharge pause while firing.
type AmmoSystem struct {
	shared *engine.Shared
	filter *ecs.Filter1[components.AmmoClip]
}

// NewAmmoSystem creates the clip recharger
func NewAmmoSystem(shared *engine.Shared) *AmmoSystem {
	return &AmmoSystem{shared: shared}
}

func (s *AmmoSystem) Initialize(w *ecs.World) {
	s.filter = ecs.NewFilter1[components.AmmoClip](w).
		Without(ecs.C[components.Burst]())
	s.filter.Register()
}

func (s *AmmoSystem) Update(_ *ecs.World) {
	if s.shared.Paused {
		return
	}

	query := s.filter.Query()
	for query.Next() {
		clip := query.Get()
		for i := range clip.Slots {
			if clip.Slots[i] >= segmentMax {
				continue
			}
			clip.Slots[i] += rechargePerTick
			if clip.Slots[i] > segmentMax {
				clip.Slots[i] = segmentMax
			}
			break // one slot per tick
		}
	}
}

func (s *AmmoSystem) Finalize(_ *ecs.World) {}
