package arena

import (
	"github.com/lixenwraith/ball-arena/component"
	"github.com/lixenwraith/ball-arena/core"
	"github.com/lixenwraith/ball-arena/vmath"
)

// EntityView is the read-only render state of one entity
type EntityView struct {
	Entity   core.Entity
	Kind     core.EntityKind
	State    component.LifecycleState
	Position vmath.Vec3F
	Velocity vmath.Vec3F
	Shape    component.ShapeComponent

	Team    core.Team
	HasTeam bool
	Side    core.GoalSide // Goals and paddles

	Active bool
	Alpha  float64

	HitPoints    uint32
	MaxHitPoints uint32
	Eliminated   bool
}

// Snapshot is a copy of everything a renderer needs for one frame
type Snapshot struct {
	Frame        int64
	Phase        core.Phase
	State        string
	Round        int
	Wins         [core.TeamCount]int
	HasWinner    bool
	LastWinner   core.Team
	MatchDecided bool
	Champion     core.Team
	Alive        [core.TeamCount]bool
	Muted        bool

	HalfExtent float64
	Entities   []EntityView
}

// Goals returns goal views indexed by side; missing sides are zero with Entity 0
func (s *Snapshot) Goals() [core.SideCount]EntityView {
	var out [core.SideCount]EntityView
	for _, v := range s.Entities {
		if v.Kind == core.KindGoal && v.Side < core.SideCount {
			out[v.Side] = v
		}
	}
	return out
}

// Snapshot copies the current state under the update lock
func (a *Arena) Snapshot() Snapshot {
	var snap Snapshot
	a.world.RunSafe(func() {
		snap = a.snapshotLocked()
	})
	return snap
}

func (a *Arena) snapshotLocked() Snapshot {
	w := a.world
	cs := &w.Components
	game := w.Resource.Game

	snap := Snapshot{
		Frame:        w.FrameNumber(),
		Phase:        game.Phase,
		State:        a.flow.StateName(),
		Round:        game.Round,
		Wins:         game.Wins,
		HasWinner:    game.HasWinner,
		LastWinner:   game.LastWinner,
		MatchDecided: game.MatchDecided,
		Champion:     game.Champion,
		HalfExtent:   w.Resource.Config.Arena.HalfExtent,
	}
	for t := core.Team(0); t < core.TeamCount; t++ {
		snap.Alive[t] = a.survival.Alive(t)
	}
	if p := w.Resource.Audio.Player; p != nil {
		snap.Muted = p.IsMuted()
	}

	entities := w.Query().With(cs.Lifecycle).With(cs.Kinetic).With(cs.Shape).Execute()
	snap.Entities = make([]EntityView, 0, len(entities))

	for _, e := range entities {
		lc, _ := cs.Lifecycle.Get(e)
		k, _ := cs.Kinetic.Get(e)
		shape, _ := cs.Shape.Get(e)

		v := EntityView{
			Entity:   e,
			Kind:     lc.Kind,
			State:    lc.State,
			Position: k.Position,
			Velocity: k.Velocity,
			Shape:    shape,
			Active:   cs.Active.Has(e),
			Alpha:    alpha(lc.State),
		}
		if fade, ok := cs.Fade.Get(e); ok {
			v.Alpha = fade.Alpha()
		}
		if t, ok := cs.Team.Get(e); ok {
			v.Team, v.HasTeam = t.Team, true
		}
		if g, ok := cs.Goal.Get(e); ok {
			v.Side = g.Side
		}
		if p, ok := cs.Paddle.Get(e); ok {
			v.Side = p.Side
		}
		if hp, ok := cs.HitPoints.Get(e); ok {
			v.HitPoints, v.MaxHitPoints, v.Eliminated = hp.Current, hp.Max, hp.Eliminated
		}
		snap.Entities = append(snap.Entities, v)
	}
	return snap
}

// alpha is the visibility of an entity with no running fade
func alpha(state component.LifecycleState) float64 {
	if state == component.LifecycleSpawning {
		return 0
	}
	return 1
}
