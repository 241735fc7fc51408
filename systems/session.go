package systems

import (
	"github.com/mlange-42/ark/ecs"

	"dodgetrainer/engine"
)

// heartbeatTicks spaces the periodic session log line (10s at 60 TPS)
const heartbeatTicks = 600

// SessionSystem keeps the session record current and persists it. The
// combat passes write their counters directly; this system owns the
// tick column, a periodic debug heartbeat, and the exit report.
type SessionSystem struct {
	shared *engine.Shared

	// reportPath receives the YAML session report on shutdown; empty
	// disables the file and keeps the session in-memory only
	reportPath string
}

// NewSessionSystem creates the session bookkeeper
func NewSessionSystem(shared *engine.Shared, reportPath string) *SessionSystem {
	return &SessionSystem{shared: shared, reportPath: reportPath}
}

func (s *SessionSystem) Initialize(_ *ecs.World) {}

func (s *SessionSystem) Update(_ *ecs.World) {
	sess := s.shared.Session
	sess.Ticks = s.shared.Tick

	if !s.shared.Paused && s.shared.Tick > 0 && s.shared.Tick%heartbeatTicks == 0 {
		engine.Log.Debugw("session heartbeat",
			"tick", s.shared.Tick,
			"bursts", sess.BurstsFired,
			"hits_dealt", sess.HitsDealt,
			"hits_taken", sess.HitsTaken,
			"accuracy", sess.Accuracy())
	}
}

// Finalize stamps the end time and writes the report file when a path
// is configured. Runs during app teardown while the logger is still up.
func (s *SessionSystem) Finalize(_ *ecs.World) {
	sess := s.shared.Session
	sess.Close()

	if s.reportPath != "" {
		if err := sess.WriteReport(s.reportPath); err != nil {
			engine.Log.Warnw("session report failed", "error", err)
		} else {
			engine.Log.Infow("session report written", "path", s.reportPath)
		}
	}

	engine.Log.Infow("session ended",
		"id", sess.ID,
		"duration", sess.Duration(),
		"ticks", sess.Ticks,
		"bursts", sess.BurstsFired,
		"shots", sess.ShotsFired,
		"hits_dealt", sess.HitsDealt,
		"hits_taken", sess.HitsTaken,
		"enemies_destroyed", sess.EnemiesDestroyed,
		"accuracy", sess.Accuracy())
}
