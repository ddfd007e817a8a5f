package system

import (
	"time"

	"github.com/lixenwraith/ball-arena/component"
	"github.com/lixenwraith/ball-arena/core"
	"github.com/lixenwraith/ball-arena/engine"
	"github.com/lixenwraith/ball-arena/event"
	"github.com/lixenwraith/ball-arena/parameter"
	"github.com/lixenwraith/ball-arena/vmath"
)

// Spawner creates an entity from a spawn request
type Spawner interface {
	Spawn(req *event.SpawnRequestPayload) core.Entity
}

// RoundSystem sets up the arena for each round and serves balls while playing
type RoundSystem struct {
	world   *engine.World
	spawner Spawner
	layout  Layout
	rng     *vmath.FastRand

	serveTimer time.Duration
}

func NewRoundSystem(world *engine.World, spawner Spawner) *RoundSystem {
	s := &RoundSystem{
		world:   world,
		spawner: spawner,
		layout:  NewLayout(world.Resource.Config),
	}
	s.Init()
	return s
}

func (s *RoundSystem) Init() {
	s.rng = vmath.NewFastRand(s.world.Resource.Config.Seed)
	s.serveTimer = 0
}

func (s *RoundSystem) Name() string {
	return "round"
}

func (s *RoundSystem) Priority() int {
	return parameter.PriorityRound
}

func (s *RoundSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventRoundStart,
		event.EventPlayStart,
		event.EventGoalEliminated,
		event.EventGameReset,
	}
}

func (s *RoundSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventGameReset:
		s.Init()

	case event.EventRoundStart:
		s.setupRound()

	case event.EventPlayStart:
		s.serveTimer = 0

	case event.EventGoalEliminated:
		if p, ok := ev.Payload.(*event.GoalEliminatedPayload); ok && s.world.Resource.Game.Current(p.Epoch) {
			s.spawner.Spawn(&event.SpawnRequestPayload{
				Kind:     core.KindWall,
				Side:     p.Side,
				Position: s.layout.WallCenter(p.Side),
			})
		}
	}
}

// Update serves balls up to the configured limit while playing
func (s *RoundSystem) Update() {
	if s.world.Resource.Game.Phase != core.PhasePlaying {
		return
	}

	s.serveTimer -= s.world.Resource.Time.DeltaTime
	if s.serveTimer > 0 {
		return
	}

	cfg := s.world.Resource.Config
	if s.liveBalls() >= cfg.Ball.MaxBalls {
		return
	}
	s.spawner.Spawn(&event.SpawnRequestPayload{
		Kind:     core.KindBall,
		Velocity: s.layout.ServeVelocity(s.rng),
	})
	s.serveTimer = cfg.Ball.ServeInterval
}

// liveBalls counts balls that are spawning or in play
func (s *RoundSystem) liveBalls() int {
	n := 0
	for _, e := range s.world.Components.Ball.All() {
		lc, ok := s.world.Components.Lifecycle.Get(e)
		if !ok {
			continue
		}
		if lc.State == component.LifecycleSpawning || lc.State == component.LifecycleActive {
			n++
		}
	}
	return n
}

// setupRound spawns goals and paddles per side, and the corner barriers once
func (s *RoundSystem) setupRound() {
	for _, side := range core.Sides {
		s.spawner.Spawn(&event.SpawnRequestPayload{
			Kind:     core.KindGoal,
			Side:     side,
			Position: s.layout.GoalCenter(side),
		})
		s.spawner.Spawn(&event.SpawnRequestPayload{
			Kind:     core.KindPaddle,
			Side:     side,
			Position: s.layout.PaddleCenter(side),
		})
	}

	if s.world.Components.Barrier.Count() > 0 {
		return
	}
	for _, pos := range s.layout.BarrierCenters() {
		s.spawner.Spawn(&event.SpawnRequestPayload{
			Kind:     core.KindBarrier,
			Position: pos,
		})
	}
}
