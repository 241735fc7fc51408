package parameter

// Bullet Kinetics
const (
	// BulletSpeedFloat is travel speed in cells/sec (Q32.32 via vmath.FromFloat)
	BulletSpeedFloat = 60.0

	// BulletMaxDistanceFloat is travel distance in cells before expiry.
	// Matches the aim indicator length.
	BulletMaxDistanceFloat = 30.0

	// BulletColumnGapFloat is the perpendicular distance between the two
	// burst columns in cells. Each column offsets half of this from the
	// firing entity's center.
	BulletColumnGapFloat = 1.5
)

// Bullet Damage
const (
	// BulletDamage is hit points removed per bullet impact
	BulletDamage = 10
)
