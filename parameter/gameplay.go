package parameter

import "time"

// Scoring
const (
	// GoalHitPoints is the starting hit points of every goal
	GoalHitPoints = 5

	// GoalDamage is the hit points removed per scoring contact
	GoalDamage = 1

	// RoundsToWin ends the match once a team wins this many rounds
	RoundsToWin = 3
)

// Barrier geometry (corner cylinders)
const (
	BarrierDiameter = 1.5
	BarrierRadius   = BarrierDiameter * 0.5
	BarrierHeight   = 0.5
)

// Arena geometry, world units on the XZ plane centred on the origin
const (
	ArenaHalfExtent    = 10.0
	GoalDepth          = 0.5
	WallThickness      = 0.3
	PaddleOffset       = 1.0 // Distance from goal line toward the centre
	PaddleLength       = 2.5
	PaddleThickness    = 0.3
	PaddleSpeed        = 9.0
	OutOfBoundsMargin  = 3.0
	BallRadius         = 0.25
	BallServeSpeed     = 7.0
	BallMaxSpeed       = 16.0
	MaxBalls           = 2
	PaddleSpinFactor   = 0.35
	PaddleSpeedBonus   = 1.05
	AIDeadZone         = 0.15
	AIReactionFraction = 0.85 // Fraction of paddle speed AI paddles may use
)

// Lifecycle & flow timing
const (
	FadeInDuration        = 400 * time.Millisecond
	FadeOutDuration       = 300 * time.Millisecond
	CountdownDuration     = 3 * time.Second
	RoundOverDelay        = 2 * time.Second
	BallServeInterval     = 1500 * time.Millisecond
	DefaultRandomSeed     = 0x5eed
	DefaultAlliesGoalSide = "bottom"
)
