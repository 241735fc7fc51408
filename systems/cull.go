package systems

import (
	"github.com/mlange-42/ark/ecs"

	"dodgetrainer/components"
)

// CullSystem destroys entities tagged as spent. It runs after every
// gameplay pass so travel and collision agree on which bullets existed
// this tick, and before render so a spent bullet never draws.
type CullSystem struct {
	filter *ecs.Filter1[components.Spent]

	doomed []ecs.Entity
}

// NewCullSystem creates the end-of-tick reaper
func NewCullSystem() *CullSystem {
	return &CullSystem{}
}

func (s *CullSystem) Initialize(w *ecs.World) {
	s.filter = ecs.NewFilter1[components.Spent](w)
	s.filter.Register()
}

func (s *CullSystem) Update(w *ecs.World) {
	s.doomed = s.doomed[:0]

	query := s.filter.Query()
	for query.Next() {
		s.doomed = append(s.doomed, query.Entity())
	}

	for _, entity := range s.doomed {
		w.RemoveEntity(entity)
	}
}

func (s *CullSystem) Finalize(_ *ecs.World) {}
