package system

import (
	"sync/atomic"

	"github.com/lixenwraith/ball-arena/core"
	"github.com/lixenwraith/ball-arena/engine"
	"github.com/lixenwraith/ball-arena/event"
)

// ScoreOutcome reports the effect of a single scoring contact
type ScoreOutcome struct {
	Applied    bool
	HitPoints  uint32
	Eliminated bool // True only on the Defended -> Eliminated edge
}

// ScoringMachine owns the per-goal Defended -> Eliminated state
// Hit points are only ever decremented, floored at zero, frozen on elimination
type ScoringMachine struct {
	world     *engine.World
	lifecycle *LifecycleSystem

	statHits         *atomic.Int64
	statEliminations *atomic.Int64
	statIgnored      *atomic.Int64
}

func NewScoringMachine(world *engine.World, lifecycle *LifecycleSystem) *ScoringMachine {
	return &ScoringMachine{
		world:            world,
		lifecycle:        lifecycle,
		statHits:         world.Resource.Status.Ints.Get("scoring.hits"),
		statEliminations: world.Resource.Status.Ints.Get("scoring.eliminations"),
		statIgnored:      world.Resource.Status.Ints.Get("scoring.ignored"),
	}
}

// ApplyHit decrements a goal by the configured damage
// Eliminated goals and entities without hit points are ignored
func (m *ScoringMachine) ApplyHit(goal, ball core.Entity) ScoreOutcome {
	hp, ok := m.world.Components.HitPoints.Get(goal)
	if !ok || hp.Eliminated {
		m.statIgnored.Add(1)
		return ScoreOutcome{HitPoints: hp.Current}
	}

	damage := m.world.Resource.Config.Scoring.Damage
	if hp.Current <= damage {
		hp.Current = 0
	} else {
		hp.Current -= damage
	}

	side := m.sideOf(goal)
	team := m.teamOf(goal)

	out := ScoreOutcome{Applied: true, HitPoints: hp.Current}
	if hp.Current == 0 {
		hp.Eliminated = true
		out.Eliminated = true
	}
	m.world.Components.HitPoints.Set(goal, hp)
	m.statHits.Add(1)

	m.world.PushEvent(event.EventGoalScored, &event.GoalScoredPayload{
		Goal:      goal,
		Ball:      ball,
		Side:      side,
		Team:      team,
		HitPoints: hp.Current,
	})

	if out.Eliminated {
		m.statEliminations.Add(1)
		m.lifecycle.Deactivate(goal)
		m.world.PushEvent(event.EventGoalEliminated, &event.GoalEliminatedPayload{
			Goal:  goal,
			Side:  side,
			Team:  team,
			Epoch: m.world.Resource.Game.Epoch,
		})
	}
	return out
}

func (m *ScoringMachine) sideOf(goal core.Entity) core.GoalSide {
	g, _ := m.world.Components.Goal.Get(goal)
	return g.Side
}

func (m *ScoringMachine) teamOf(e core.Entity) core.Team {
	t, _ := m.world.Components.Team.Get(e)
	return t.Team
}
