package system

import (
	"sync/atomic"

	"github.com/lixenwraith/ball-arena/core"
	"github.com/lixenwraith/ball-arena/engine"
	"github.com/lixenwraith/ball-arena/event"
	"github.com/lixenwraith/ball-arena/parameter"
)

// SurvivalSystem holds team survival state derived from eliminations
// and decides round and match outcomes
type SurvivalSystem struct {
	world *engine.World

	defended [core.SideCount]bool
	defeated [core.TeamCount]bool
	decided  bool

	statRounds       *atomic.Int64
	statMatchDecided *atomic.Bool
}

func NewSurvivalSystem(world *engine.World) *SurvivalSystem {
	s := &SurvivalSystem{
		world:            world,
		statRounds:       world.Resource.Status.Ints.Get("survival.rounds"),
		statMatchDecided: world.Resource.Status.Bools.Get("survival.match_decided"),
	}
	s.Init()
	return s
}

func (s *SurvivalSystem) Init() {
	s.resetRound()
}

func (s *SurvivalSystem) Name() string {
	return "survival"
}

func (s *SurvivalSystem) Priority() int {
	return parameter.PrioritySurvival
}

func (s *SurvivalSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventRoundStart,
		event.EventGoalEliminated,
		event.EventGameReset,
	}
}

func (s *SurvivalSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventGameReset:
		s.world.Resource.Game.ResetMatch()
		s.statMatchDecided.Store(false)
		s.resetRound()

	case event.EventRoundStart:
		s.world.Resource.Game.StartRound()
		s.statRounds.Add(1)
		s.resetRound()

	case event.EventGoalEliminated:
		if p, ok := ev.Payload.(*event.GoalEliminatedPayload); ok && s.world.Resource.Game.Current(p.Epoch) {
			s.eliminate(p.Side, p.Team)
		}
	}
}

func (s *SurvivalSystem) Update() {}

// Alive reports whether a team still defends at least one goal
func (s *SurvivalSystem) Alive(team core.Team) bool {
	cfg := s.world.Resource.Config
	for _, side := range core.Sides {
		if s.defended[side] && cfg.TeamOf(side) == team {
			return true
		}
	}
	return false
}

func (s *SurvivalSystem) resetRound() {
	for i := range s.defended {
		s.defended[i] = true
	}
	s.defeated = [core.TeamCount]bool{}
	s.decided = false
}

func (s *SurvivalSystem) eliminate(side core.GoalSide, team core.Team) {
	if side >= core.SideCount || !s.defended[side] {
		return
	}
	s.defended[side] = false

	if !s.defeated[team] && !s.Alive(team) {
		s.defeated[team] = true
		s.world.PushEvent(event.EventTeamDefeated, &event.TeamPayload{Team: team})
	}

	if s.decided {
		return
	}
	var (
		alive  int
		winner core.Team
	)
	for t := core.Team(0); t < core.TeamCount; t++ {
		if s.Alive(t) {
			alive++
			winner = t
		}
	}
	if alive != 1 {
		return
	}

	s.decided = true
	game := s.world.Resource.Game
	game.Wins[winner]++
	game.LastWinner = winner
	game.HasWinner = true
	if game.Wins[winner] >= s.world.Resource.Config.Scoring.RoundsToWin {
		game.MatchDecided = true
		game.Champion = winner
		s.statMatchDecided.Store(true)
	}
	s.world.PushEvent(event.EventRoundOver, &event.TeamPayload{Team: winner})
}
