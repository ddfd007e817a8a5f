package system

import (
	"github.com/lixenwraith/ball-arena/engine"
	"github.com/lixenwraith/ball-arena/event"
	"github.com/lixenwraith/ball-arena/parameter"
)

// JournalSystem logs notable game transitions
// High-frequency conditions are left to telemetry counters
type JournalSystem struct {
	world *engine.World
}

func NewJournalSystem(world *engine.World) *JournalSystem {
	return &JournalSystem{world: world}
}

func (s *JournalSystem) Init() {}

func (s *JournalSystem) Name() string {
	return "journal"
}

func (s *JournalSystem) Priority() int {
	return parameter.PriorityJournal
}

func (s *JournalSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventGoalEliminated,
		event.EventTeamDefeated,
		event.EventRoundOver,
		event.EventGameEnd,
		event.EventPhaseChanged,
	}
}

func (s *JournalSystem) HandleEvent(ev event.GameEvent) {
	l := s.world.Resource.Log
	game := s.world.Resource.Game

	switch p := ev.Payload.(type) {
	case *event.GoalEliminatedPayload:
		l.Printf("goal eliminated: side=%s team=%s", p.Side, p.Team)
	case *event.TeamPayload:
		if ev.Type == event.EventRoundOver {
			l.Printf("round %d over: winner=%s wins=%v", game.Round, p.Team, game.Wins)
		} else {
			l.Printf("team defeated: %s", p.Team)
		}
	case *event.PhaseChangedPayload:
		l.Printf("phase %s -> %s", p.From, p.To)
	default:
		if ev.Type == event.EventGameEnd && game.MatchDecided {
			l.Printf("game over: champion=%s wins=%v", game.Champion, game.Wins)
		}
	}
}

func (s *JournalSystem) Update() {}
