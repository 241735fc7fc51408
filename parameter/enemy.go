package parameter

// Enemy Entity
const (
	// EnemySpeedFloat is approach speed in cells/sec (Q32.32 via vmath.FromFloat)
	EnemySpeedFloat = 15.0

	// EnemyRadiusXFloat is the horizontal body radius in cells
	EnemyRadiusXFloat = 3.0

	// EnemyRadiusYFloat is the vertical body radius in rows (aspect-compressed)
	EnemyRadiusYFloat = 1.5

	// EnemyMaxHealth is hit points at spawn
	EnemyMaxHealth = 100
)

// Enemy Combat AI
const (
	// EnemyAttackRangeFloat is the firing range in cells, measured
	// surface-to-surface: both body radii subtract from it before the
	// center-distance comparison. Matches the bullet travel distance.
	EnemyAttackRangeFloat = 30.0

	// EnemyAttackCooldownTicks is minimum ticks between burst attempts
	EnemyAttackCooldownTicks = 60

	// EnemyBurstCount is bullets per burst across both columns
	EnemyBurstCount = 12

	// EnemyBurstStaggerTicks is logic ticks between bullet pairs in the
	// same column. The right column trails by half this interval (integer
	// truncated).
	EnemyBurstStaggerTicks = 10

	// EnemySpreadFloat is random aim perturbation per bullet added to each
	// direction component before renormalizing
	EnemySpreadFloat = 0.05
)

// Enemy Respawn
const (
	// EnemyRespawnDelayTicks is ticks between an enemy death and the next spawn
	EnemyRespawnDelayTicks = 120

	// EnemySpawnMarginFloat is minimum spawn distance from the player in cells
	EnemySpawnMarginFloat = 35.0
)
