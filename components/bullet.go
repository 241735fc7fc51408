package components

// BulletSource identifies which side fired a bullet
type BulletSource uint8

const (
	SourcePlayer BulletSource = iota
	SourceEnemy
)

// Bullet marks a linear projectile with a bounded travel distance
type Bullet struct {
	// Source decides collision targets and render color
	Source BulletSource

	// DirX, DirY is the normalized flight direction (Q32.32)
	DirX, DirY int64

	// Traveled accumulates flight distance in Q32.32 cells. The projectile
	// expires when it reaches MaxDistance.
	Traveled int64

	// MaxDistance is the travel bound in Q32.32 cells
	MaxDistance int64
}

// Spent tags a projectile for removal at the end of the tick. Travel and
// collision both exclude spent bullets; the cull pass destroys them.
type Spent struct{}
