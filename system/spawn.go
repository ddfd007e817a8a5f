package system

import (
	"sync/atomic"

	"github.com/lixenwraith/ball-arena/component"
	"github.com/lixenwraith/ball-arena/core"
	"github.com/lixenwraith/ball-arena/engine"
	"github.com/lixenwraith/ball-arena/event"
	"github.com/lixenwraith/ball-arena/parameter"
)

// SpawnSystem turns spawn requests into tagged entities and hands them to the lifecycle
type SpawnSystem struct {
	world     *engine.World
	lifecycle *LifecycleSystem
	layout    Layout

	statSpawned *atomic.Int64
}

func NewSpawnSystem(world *engine.World, lifecycle *LifecycleSystem) *SpawnSystem {
	s := &SpawnSystem{
		world:     world,
		lifecycle: lifecycle,
		layout:    NewLayout(world.Resource.Config),
	}
	s.statSpawned = world.Resource.Status.Ints.Get("spawn.created")
	s.Init()
	return s
}

func (s *SpawnSystem) Init() {}

func (s *SpawnSystem) Name() string {
	return "spawn"
}

func (s *SpawnSystem) Priority() int {
	return parameter.PrioritySpawn
}

func (s *SpawnSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventSpawnRequest,
	}
}

func (s *SpawnSystem) HandleEvent(ev event.GameEvent) {
	if p, ok := ev.Payload.(*event.SpawnRequestPayload); ok {
		s.Spawn(p)
	}
}

func (s *SpawnSystem) Update() {}

// Spawn creates the entity in Spawning state; returns 0 for an unknown kind
func (s *SpawnSystem) Spawn(req *event.SpawnRequestPayload) core.Entity {
	cfg := s.world.Resource.Config
	cs := &s.world.Components

	var (
		scope  core.PhaseMask
		static bool
		shape  component.ShapeComponent
	)

	switch req.Kind {
	case core.KindBall:
		scope = core.ScopePlay
		shape = component.ShapeComponent{Kind: component.ShapeSphere, Radius: cfg.Ball.Radius}
	case core.KindPaddle:
		scope = core.ScopeRound
		hx, hz := s.layout.PaddleExtents(req.Side)
		shape = component.ShapeComponent{Kind: component.ShapeBox, HalfX: hx, HalfZ: hz}
	case core.KindGoal:
		scope = core.ScopeRound
		hx, hz := s.layout.GoalExtents(req.Side)
		shape = component.ShapeComponent{Kind: component.ShapeBox, HalfX: hx, HalfZ: hz}
	case core.KindBarrier:
		static = true
		shape = component.ShapeComponent{
			Kind:   component.ShapeCylinder,
			Radius: cfg.Barrier.ShapeRadius(),
			Height: cfg.Barrier.Height,
		}
	case core.KindWall:
		scope = core.ScopeRound
		static = true
		hx, hz := s.layout.WallExtents(req.Side)
		shape = component.ShapeComponent{Kind: component.ShapeBox, HalfX: hx, HalfZ: hz}
	default:
		return 0
	}

	e := s.world.CreateEntity()
	cs.Kinetic.Set(e, component.KineticComponent{Position: req.Position, Velocity: req.Velocity})
	cs.Shape.Set(e, shape)

	team := cfg.TeamOf(req.Side)
	if req.HasTeam {
		team = req.Team
	}

	switch req.Kind {
	case core.KindBall:
		cs.Ball.Set(e, component.BallComponent{})

	case core.KindPaddle:
		cs.Collider.Set(e, component.ColliderComponent{Kind: component.ColliderPaddle})
		cs.Team.Set(e, component.TeamComponent{Team: team})
		cs.Paddle.Set(e, component.PaddleComponent{
			Side:  req.Side,
			Speed: cfg.Paddle.Speed,
			Limit: s.layout.PaddleLimit(),
		})
		if team == core.TeamAllies {
			cs.Player.Set(e, component.PlayerComponent{})
			if cfg.Teams.AIAllies {
				cs.AiInput.Set(e, component.AiInputComponent{})
			} else {
				cs.Keyboard.Set(e, component.KeyboardInputComponent{})
			}
		} else {
			cs.Enemy.Set(e, component.EnemyComponent{})
			cs.AiInput.Set(e, component.AiInputComponent{})
		}

	case core.KindGoal:
		cs.Goal.Set(e, component.GoalComponent{Side: req.Side})
		cs.Team.Set(e, component.TeamComponent{Team: team})
		cs.HitPoints.Set(e, component.HitPointsComponent{
			Current: cfg.Scoring.HitPoints,
			Max:     cfg.Scoring.HitPoints,
		})

	case core.KindBarrier:
		cs.Collider.Set(e, component.ColliderComponent{Kind: component.ColliderBarrier})
		cs.Barrier.Set(e, component.BarrierComponent{
			Diameter: cfg.Barrier.Diameter,
			Radius:   cfg.Barrier.ShapeRadius(),
			Height:   cfg.Barrier.Height,
		})

	case core.KindWall:
		cs.Collider.Set(e, component.ColliderComponent{Kind: component.ColliderWall})
	}

	s.lifecycle.BeginSpawn(e, req.Kind, scope, static)
	s.statSpawned.Add(1)
	return e
}
