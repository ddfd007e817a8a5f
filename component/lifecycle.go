package component

import "github.com/lixenwraith/ball-arena/core"

// LifecycleState is the entity's position in the spawn/fade pipeline
type LifecycleState uint8

const (
	LifecycleSpawning LifecycleState = iota
	LifecycleActive
	LifecycleInert // Alive but permanently out of play (eliminated goal)
	LifecycleFadingOut
	LifecycleRemoved
)

func (s LifecycleState) String() string {
	switch s {
	case LifecycleSpawning:
		return "spawning"
	case LifecycleActive:
		return "active"
	case LifecycleInert:
		return "inert"
	case LifecycleFadingOut:
		return "fading-out"
	case LifecycleRemoved:
		return "removed"
	}
	return "unknown"
}

// LifecycleComponent tracks the single in-flight transition of an entity
type LifecycleComponent struct {
	State LifecycleState
	Kind  core.EntityKind

	// Scope lists the phases the entity may exist in; zero means unscoped
	Scope core.PhaseMask

	// Static entities are destroyed without a fade-out
	Static bool

	// RemovalQueued is set when removal arrives while still spawning
	RemovalQueued bool
}
