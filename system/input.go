package system

import (
	"math"

	"github.com/lixenwraith/ball-arena/core"
	"github.com/lixenwraith/ball-arena/engine"
	"github.com/lixenwraith/ball-arena/event"
	"github.com/lixenwraith/ball-arena/parameter"
	"github.com/lixenwraith/ball-arena/vmath"
)

// InputSystem sets the desired paddle speed from keyboard axis or tracking AI
type InputSystem struct {
	world *engine.World
	gate  ActivityGate
}

func NewInputSystem(world *engine.World) *InputSystem {
	s := &InputSystem{
		world: world,
		gate:  NewActivityGate(world),
	}
	s.Init()
	return s
}

func (s *InputSystem) Init() {}

func (s *InputSystem) Name() string {
	return "input"
}

func (s *InputSystem) Priority() int {
	return parameter.PriorityInput
}

func (s *InputSystem) EventTypes() []event.EventType {
	return nil
}

func (s *InputSystem) HandleEvent(ev event.GameEvent) {}

func (s *InputSystem) Update() {
	if s.world.Resource.Game.Phase != core.PhasePlaying {
		return
	}

	cs := &s.world.Components
	cfg := s.world.Resource.Config
	axis := vmath.Clamp(s.world.Resource.Input.Axis, -1, 1)
	dt := s.world.Resource.Time.DeltaTime.Seconds()

	balls := s.world.Query().With(cs.Ball).With(cs.Active).Execute()

	for _, e := range s.world.Query().With(cs.Paddle).With(cs.Active).Execute() {
		paddle, _ := cs.Paddle.Get(e)

		switch {
		case cs.Keyboard.Has(e):
			paddle.Desired = axis * paddle.Speed
		case cs.AiInput.Has(e):
			k, _ := cs.Kinetic.Get(e)
			paddle.Desired = s.track(paddle.Side, paddle.AlongX(), k.Position, balls, paddle.Speed*cfg.Paddle.AIReaction, cfg.Paddle.AIDeadZone, dt)
		default:
			paddle.Desired = 0
		}
		cs.Paddle.Set(e, paddle)
	}
}

// track follows the nearest ball heading toward the side, or recentres
func (s *InputSystem) track(side core.GoalSide, alongX bool, pos vmath.Vec3F, balls []core.Entity, maxSpeed, deadZone, dt float64) float64 {
	out := outward(side)
	target := 0.0
	best := math.MaxFloat64

	for _, b := range balls {
		k, ok := s.world.Components.Kinetic.Get(b)
		if !ok || vmath.V3FDot(k.Velocity, out) <= 0 {
			continue
		}
		// Distance to the goal line along the outward axis
		dist := -vmath.V3FDot(vmath.V3FSub(k.Position, pos), out)
		if dist < best {
			best = dist
			target = axisCoord(k.Position, alongX)
		}
	}

	delta := target - axisCoord(pos, alongX)
	if math.Abs(delta) <= deadZone {
		return 0
	}
	speed := maxSpeed
	if dt > 0 {
		speed = math.Min(maxSpeed, math.Abs(delta)/dt)
	}
	return math.Copysign(speed, delta)
}

func axisCoord(p vmath.Vec3F, alongX bool) float64 {
	if alongX {
		return p.X
	}
	return p.Z
}
