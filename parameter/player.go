package parameter

// Player Avatar
const (
	// PlayerSpeedFloat is movement speed in cells/sec (Q32.32 via vmath.FromFloat)
	PlayerSpeedFloat = 30.0

	// PlayerRadiusXFloat is the horizontal body radius in cells
	PlayerRadiusXFloat = 3.0

	// PlayerRadiusYFloat is the vertical body radius in rows (aspect-compressed)
	PlayerRadiusYFloat = 1.5
)

// Player Burst Fire
const (
	// PlayerBurstCount is bullets per burst across both columns
	PlayerBurstCount = 12

	// PlayerBurstStaggerTicks is logic ticks between bullet pairs in the
	// same column. The right column trails by half this interval (integer
	// truncated).
	PlayerBurstStaggerTicks = 5

	// PlayerSpreadFloat is random aim perturbation per bullet (0 = none)
	PlayerSpreadFloat = 0.0
)
