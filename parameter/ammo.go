package parameter

// Ammo Clip
const (
	// AmmoSegments is the number of charge slots in the clip
	AmmoSegments = 3

	// AmmoSegmentMaxFloat is the full charge of one slot (Q32.32 via vmath.FromFloat)
	AmmoSegmentMaxFloat = 1.0

	// AmmoRechargePerTickFloat is charge restored per logic tick to the
	// leftmost non-full slot. Recharge pauses while a burst is in flight.
	AmmoRechargePerTickFloat = 0.005
)
