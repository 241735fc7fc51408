package components

// EnemyAI drives the training opponent: approach until the attack range
// covers the player, then hold position and fire on cooldown.
type EnemyAI struct {
	// CooldownTicks remaining before the next burst attempt
	CooldownTicks int
}
