package system

import (
	"fmt"
	"time"

	"github.com/lixenwraith/ball-arena/core"
	"github.com/lixenwraith/ball-arena/engine"
	"github.com/lixenwraith/ball-arena/engine/fsm"
	"github.com/lixenwraith/ball-arena/event"
	"github.com/lixenwraith/ball-arena/parameter"
	"github.com/lixenwraith/ball-arena/status"
)

// FlowSystem runs the game-flow state machine and publishes the current phase
// Leaf state names map to core.Phase; other names leave the phase unchanged
type FlowSystem struct {
	world   *engine.World
	machine *fsm.Machine[*engine.World]

	statPhase *status.AtomicString
}

// NewFlowSystem loads the flow graph from config (file or embedded)
func NewFlowSystem(world *engine.World) (*FlowSystem, error) {
	graph, err := world.Resource.Config.FlowGraph()
	if err != nil {
		return nil, err
	}
	return NewFlowSystemFromGraph(world, graph)
}

// NewFlowSystemFromGraph builds the machine from a YAML graph
func NewFlowSystemFromGraph(world *engine.World, graph []byte) (*FlowSystem, error) {
	s := &FlowSystem{
		world:     world,
		machine:   fsm.NewMachine[*engine.World](),
		statPhase: world.Resource.Status.Strings.Get("flow.phase"),
	}
	s.register()
	if err := s.machine.LoadConfig(graph); err != nil {
		return nil, fmt.Errorf("failed to load flow graph: %w", err)
	}
	return s, nil
}

// Init re-enters the initial state
func (s *FlowSystem) Init() {
	if err := s.machine.Reset(s.world); err != nil {
		s.world.Resource.Log.Printf("flow: reset failed: %v", err)
		return
	}
	s.syncPhase()
}

func (s *FlowSystem) Name() string {
	return "flow"
}

func (s *FlowSystem) Priority() int {
	return parameter.PriorityFlow
}

func (s *FlowSystem) EventTypes() []event.EventType {
	return s.machine.Triggers()
}

func (s *FlowSystem) HandleEvent(ev event.GameEvent) {
	if s.machine.HandleEvent(s.world, ev.Type) {
		s.syncPhase()
	}
}

func (s *FlowSystem) Update() {
	s.machine.Update(s.world, s.world.Resource.Time.DeltaTime)
	s.syncPhase()
}

// StateName returns the active flow state
func (s *FlowSystem) StateName() string {
	return s.machine.CurrentStateName()
}

func (s *FlowSystem) syncPhase() {
	phase, ok := core.ParsePhase(s.machine.CurrentStateName())
	if !ok {
		return
	}
	game := s.world.Resource.Game
	if phase == game.Phase {
		return
	}
	from := game.Phase
	game.Phase = phase
	s.statPhase.Store(phase.String())
	s.world.PushEvent(event.EventPhaseChanged, &event.PhaseChangedPayload{From: from, To: phase})
}

// register binds the actions and guards the graph may reference
func (s *FlowSystem) register() {
	m := s.machine

	m.RegisterAction("EmitEvent", func(world *engine.World, args any) {
		emitArgs, ok := args.(*fsm.EmitEventArgs)
		if !ok {
			return
		}
		world.PushEvent(emitArgs.Type, emitArgs.Payload)
	})

	// StateTimeExceeds: ms: <int> or setting: countdown | round_over
	m.RegisterGuardFactory("StateTimeExceeds", func(machine *fsm.Machine[*engine.World], args map[string]any) fsm.GuardFunc[*engine.World] {
		fixed, setting := parameter.GameUpdateInterval, ""
		if v, ok := args["setting"].(string); ok {
			setting = v
		} else {
			switch ms := args["ms"].(type) {
			case int:
				fixed = time.Duration(ms) * time.Millisecond
			case float64:
				fixed = time.Duration(ms * float64(time.Millisecond))
			}
		}
		return func(world *engine.World) bool {
			limit := fixed
			switch setting {
			case "countdown":
				limit = world.Resource.Config.Timing.Countdown
			case "round_over":
				limit = world.Resource.Config.Timing.RoundOver
			}
			return machine.TimeInState() >= limit
		}
	})

	m.RegisterGuard("MatchDecided", func(world *engine.World) bool {
		return world.Resource.Game.MatchDecided
	})
	m.RegisterGuard("MatchOpen", func(world *engine.World) bool {
		return !world.Resource.Game.MatchDecided
	})
}
