package event

import (
	"github.com/lixenwraith/ball-arena/component"
	"github.com/lixenwraith/ball-arena/core"
	"github.com/lixenwraith/ball-arena/vmath"
)

// SpawnRequestPayload is spawn_request(kind, team?, position)
type SpawnRequestPayload struct {
	Kind     core.EntityKind `yaml:"kind"`
	Team     core.Team       `yaml:"team"`
	HasTeam  bool            `yaml:"has_team"`
	Side     core.GoalSide   `yaml:"side"`
	Position vmath.Vec3F     `yaml:"position"`
	Velocity vmath.Vec3F     `yaml:"velocity"`
}

// RemovalReason records why an entity was asked to leave play
type RemovalReason uint8

const (
	RemovalRequested RemovalReason = iota
	RemovalScored
	RemovalOutOfBounds
	RemovalEliminated
	RemovalScopeExit
	RemovalRoundReset
)

// RemovalRequestPayload asks the lifecycle manager to retire an entity
type RemovalRequestPayload struct {
	Entity core.Entity   `yaml:"entity"`
	Reason RemovalReason `yaml:"reason"`
}

// FadeRequestPayload starts a fade transition on an entity
type FadeRequestPayload struct {
	Entity core.Entity `yaml:"entity"`
}

// FadeCompletePayload reports a finished fade transition
type FadeCompletePayload struct {
	Entity    core.Entity             `yaml:"entity"`
	Direction component.FadeDirection `yaml:"direction"`
}

// EntityPayload carries a single entity notification
type EntityPayload struct {
	Entity core.Entity     `yaml:"entity"`
	Kind   core.EntityKind `yaml:"kind"`
}

// BallDeflectedPayload reports a deflection outcome
type BallDeflectedPayload struct {
	Ball     core.Entity            `yaml:"ball"`
	Other    core.Entity            `yaml:"other"`
	Collider component.ColliderKind `yaml:"collider"`
	BallBall bool                   `yaml:"ball_ball"`
}

// GoalScoredPayload reports a hit-point decrement
type GoalScoredPayload struct {
	Goal      core.Entity   `yaml:"goal"`
	Ball      core.Entity   `yaml:"ball"`
	Side      core.GoalSide `yaml:"side"`
	Team      core.Team     `yaml:"team"`
	HitPoints uint32        `yaml:"hit_points"`
}

// GoalEliminatedPayload is goal_eliminated(team, goal)
type GoalEliminatedPayload struct {
	Goal core.Entity   `yaml:"goal"`
	Side core.GoalSide `yaml:"side"`
	Team core.Team     `yaml:"team"`

	// Epoch is the game epoch the goal fell in
	Epoch uint64 `yaml:"epoch"`
}

// TeamPayload carries a team outcome
type TeamPayload struct {
	Team core.Team `yaml:"team"`
}

// PhaseChangedPayload reports a game-state transition
type PhaseChangedPayload struct {
	From core.Phase `yaml:"from"`
	To   core.Phase `yaml:"to"`
}

// SoundRequestPayload requests an audio cue
type SoundRequestPayload struct {
	SoundType core.SoundType `yaml:"sound_type"`
}
