package component

import "github.com/lixenwraith/ball-arena/core"

// BallComponent marks the scoring projectile
type BallComponent struct{}

// ColliderKind distinguishes deflecting surfaces
type ColliderKind uint8

const (
	ColliderPaddle ColliderKind = iota
	ColliderWall
	ColliderBarrier
)

// ColliderComponent marks an entity that deflects balls
type ColliderComponent struct {
	Kind ColliderKind
}

// BarrierComponent carries corner geometry consumed by shape generation
type BarrierComponent struct {
	Diameter float64
	Radius   float64
	Height   float64
}

// GoalComponent identifies a scoring target by arena side
type GoalComponent struct {
	Side core.GoalSide
}

// TeamComponent labels paddles and goals; assigned once at spawn
type TeamComponent struct {
	Team core.Team
}

// HitPointsComponent is owned by a goal and only ever decremented
type HitPointsComponent struct {
	Current    uint32
	Max        uint32
	Eliminated bool // Frozen once set
}

// ActiveComponent gates participation in collision and scoring
type ActiveComponent struct{}

// PlayerComponent marks entities controlled by the local player
type PlayerComponent struct{}

// EnemyComponent marks entities controlled by the opposing side
type EnemyComponent struct{}

// KeyboardInputComponent routes keyboard axis input to a paddle
type KeyboardInputComponent struct{}

// AiInputComponent routes tracking AI to a paddle
type AiInputComponent struct{}
