package system

import (
	"testing"

	"github.com/lixenwraith/ball-arena/core"
	"github.com/lixenwraith/ball-arena/event"
	"github.com/lixenwraith/ball-arena/vmath"
)

func TestApplyHitFloorsAtZero(t *testing.T) {
	h := newHarness(t, core.PhasePlaying)
	h.w.Resource.Config.Scoring.HitPoints = 3
	h.w.Resource.Config.Scoring.Damage = 2
	goal := h.active(core.KindGoal, core.SideLeft, vmath.V3F(-10, 0, 0), vmath.Vec3F{})

	tests := []ScoreOutcome{
		{Applied: true, HitPoints: 1},
		{Applied: true, HitPoints: 0, Eliminated: true},
		{Applied: false, HitPoints: 0},
		{Applied: false, HitPoints: 0},
	}
	for i, want := range tests {
		if got := h.scoring.ApplyHit(goal, 0); got != want {
			t.Errorf("hit %d = %+v, want %+v", i+1, got, want)
		}
	}
	h.flush()

	if n := h.rec.count(event.EventGoalEliminated); n != 1 {
		t.Errorf("eliminations = %d, want 1", n)
	}
	if n := h.rec.count(event.EventGoalScored); n != 2 {
		t.Errorf("scored = %d, want 2", n)
	}
	if h.metric("scoring.ignored") != 2 {
		t.Errorf("ignored = %d, want 2", h.metric("scoring.ignored"))
	}
	if h.w.Components.Active.Has(goal) {
		t.Error("eliminated goal still active")
	}
}

func TestApplyHitWithoutHitPoints(t *testing.T) {
	h := newHarness(t, core.PhasePlaying)
	wall := h.active(core.KindWall, core.SideTop, vmath.V3F(0, 0, -10), vmath.Vec3F{})

	if got := h.scoring.ApplyHit(wall, 0); got.Applied {
		t.Errorf("hit on wall applied: %+v", got)
	}
}
