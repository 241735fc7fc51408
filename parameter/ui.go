package parameter

import "github.com/gdamore/tcell/v2"

// Entity Glyphs
const (
	// PlayerChar fills the player's body ellipse
	PlayerChar = '█'

	// EnemyChar fills the enemy's body ellipse
	EnemyChar = '█'

	// AimChar draws the aim indicator lane
	AimChar = '·'

	// AimEdgeChar marks the far end of the aim indicator
	AimEdgeChar = '┄'
)

// Aim Lane Geometry
const (
	// AimLaneHalfWidth is cells on each side of the lane centerline. The
	// full width covers both burst columns plus their drawn extent.
	AimLaneHalfWidth = 1
)

// Entity Colors
var (
	PlayerColor      = tcell.ColorRed
	PlayerHitColor   = tcell.ColorBlack
	EnemyColor       = tcell.ColorPurple
	EnemyHitColor    = tcell.ColorBlack
	PlayerShotColor  = tcell.ColorBlue
	EnemyShotColor   = tcell.ColorGreen
	AimColor         = tcell.ColorGray
	ArenaBorderColor = tcell.ColorDarkGray
	BackgroundColor  = tcell.NewRGBColor(245, 245, 220)
)

// Ammo Bar
const (
	// AmmoBarSegmentWidth is terminal cells per clip slot
	AmmoBarSegmentWidth = 10

	// AmmoBarGap is terminal cells between slots
	AmmoBarGap = 1

	// AmmoFullChar fills a charged portion of a slot
	AmmoFullChar = '█'

	// AmmoEmptyChar fills the uncharged remainder of a slot
	AmmoEmptyChar = '░'
)

var (
	AmmoReadyColor    = tcell.ColorOrange
	AmmoChargingColor = tcell.ColorDarkOrange
	AmmoEmptyColor    = tcell.ColorDimGray
)

// Enemy Health Bar
const (
	// HealthBarWidth is terminal cells across, centered one row above the enemy
	HealthBarWidth = 7

	// HealthBarOffsetY is rows above the enemy's top edge
	HealthBarOffsetY = 1

	HealthFullChar  = '█'
	HealthEmptyChar = '░'
)

var (
	HealthBarColor     = tcell.ColorRed
	HealthBarBackColor = tcell.ColorDarkSlateGray
)

// Status Bar
var (
	StatusTextColor  = tcell.ColorBlack
	StatusPauseColor = tcell.ColorDarkRed
)

// Flash Durations
const (
	// HitFlashTicks is logic ticks an entity renders in its hit color after
	// taking a bullet
	HitFlashTicks = 6
)
