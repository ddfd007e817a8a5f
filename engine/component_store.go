package engine

import (
	"github.com/lixenwraith/ball-arena/component"
)

// ComponentStore provides cached pointers to the typed component stores
// Initialized once per system; pointers remain valid for the world lifetime
type ComponentStore struct {
	// Tags
	Ball     *Store[component.BallComponent]
	Collider *Store[component.ColliderComponent]
	Barrier  *Store[component.BarrierComponent]
	Goal     *Store[component.GoalComponent]
	Team     *Store[component.TeamComponent]
	Active   *Store[component.ActiveComponent]

	// Control
	Player   *Store[component.PlayerComponent]
	Enemy    *Store[component.EnemyComponent]
	Keyboard *Store[component.KeyboardInputComponent]
	AiInput  *Store[component.AiInputComponent]
	Paddle   *Store[component.PaddleComponent]

	// State
	HitPoints *Store[component.HitPointsComponent]
	Lifecycle *Store[component.LifecycleComponent]
	Fade      *Store[component.FadeComponent]

	// Physics
	Kinetic *Store[component.KineticComponent]
	Shape   *Store[component.ShapeComponent]
}

func newComponentStore() ComponentStore {
	return ComponentStore{
		Ball:     NewStore[component.BallComponent](),
		Collider: NewStore[component.ColliderComponent](),
		Barrier:  NewStore[component.BarrierComponent](),
		Goal:     NewStore[component.GoalComponent](),
		Team:     NewStore[component.TeamComponent](),
		Active:   NewStore[component.ActiveComponent](),

		Player:   NewStore[component.PlayerComponent](),
		Enemy:    NewStore[component.EnemyComponent](),
		Keyboard: NewStore[component.KeyboardInputComponent](),
		AiInput:  NewStore[component.AiInputComponent](),
		Paddle:   NewStore[component.PaddleComponent](),

		HitPoints: NewStore[component.HitPointsComponent](),
		Lifecycle: NewStore[component.LifecycleComponent](),
		Fade:      NewStore[component.FadeComponent](),

		Kinetic: NewStore[component.KineticComponent](),
		Shape:   NewStore[component.ShapeComponent](),
	}
}

// all lists every store for entity destruction
func (cs *ComponentStore) all() []AnyStore {
	return []AnyStore{
		cs.Ball, cs.Collider, cs.Barrier, cs.Goal, cs.Team, cs.Active,
		cs.Player, cs.Enemy, cs.Keyboard, cs.AiInput, cs.Paddle,
		cs.HitPoints, cs.Lifecycle, cs.Fade,
		cs.Kinetic, cs.Shape,
	}
}
