package system

import (
	"testing"

	"github.com/lixenwraith/ball-arena/component"
	"github.com/lixenwraith/ball-arena/core"
	"github.com/lixenwraith/ball-arena/event"
	"github.com/lixenwraith/ball-arena/vmath"
)

func TestSpawnStartsInactive(t *testing.T) {
	h := newHarness(t, core.PhasePlaying)
	ball := h.spawn(core.KindBall, 0, vmath.Vec3F{}, vmath.V3F(1, 0, 0))

	if h.lifecycle.State(ball) != component.LifecycleSpawning {
		t.Fatalf("state = %s, want spawning", h.lifecycle.State(ball))
	}
	if h.w.Components.Active.Has(ball) {
		t.Fatal("spawning ball is active")
	}

	h.settle()
	if h.lifecycle.State(ball) != component.LifecycleActive || !h.w.Components.Active.Has(ball) {
		t.Fatalf("state = %s after fade-in", h.lifecycle.State(ball))
	}
	if n := h.rec.count(event.EventEntityActivated); n != 1 {
		t.Errorf("activated events = %d, want 1", n)
	}
}

func TestRemovalDuringSpawnIsQueued(t *testing.T) {
	h := newHarness(t, core.PhasePlaying)
	ball := h.spawn(core.KindBall, 0, vmath.Vec3F{}, vmath.Vec3F{})

	if !h.lifecycle.RequestRemoval(ball) {
		t.Fatal("removal during spawn not accepted")
	}
	if h.lifecycle.RequestRemoval(ball) {
		t.Error("second removal during spawn reported a new transition")
	}

	// Halfway through the fade-in the entity must still exist and still be spawning
	h.w.StepN(5, step)
	if !h.w.Alive(ball) || h.lifecycle.State(ball) != component.LifecycleSpawning {
		t.Fatalf("ball left spawning early: alive=%v state=%s", h.w.Alive(ball), h.lifecycle.State(ball))
	}

	h.settle()
	h.settle()

	if h.w.Alive(ball) {
		t.Fatalf("ball still alive in state %s", h.lifecycle.State(ball))
	}
	if n := h.rec.count(event.EventEntityActivated); n != 1 {
		t.Errorf("activated events = %d, want 1", n)
	}
	if n := h.rec.count(event.EventEntityRemoved); n != 1 {
		t.Errorf("removed events = %d, want 1", n)
	}
	// Activation precedes removal
	var order []event.EventType
	for _, ev := range h.rec.events {
		if ev.Type == event.EventEntityActivated || ev.Type == event.EventEntityRemoved {
			order = append(order, ev.Type)
		}
	}
	if len(order) != 2 || order[0] != event.EventEntityActivated {
		t.Errorf("event order = %v", order)
	}
	if h.metric("lifecycle.queued") != 1 {
		t.Errorf("queued = %d, want 1", h.metric("lifecycle.queued"))
	}
}

func TestRemovalIdempotentAndStale(t *testing.T) {
	h := newHarness(t, core.PhasePlaying)
	ball := h.active(core.KindBall, 0, vmath.Vec3F{}, vmath.Vec3F{})

	if !h.lifecycle.RequestRemoval(ball) {
		t.Fatal("first removal rejected")
	}
	if h.w.Components.Active.Has(ball) {
		t.Error("active tag kept after removal request")
	}
	if h.lifecycle.State(ball) != component.LifecycleFadingOut {
		t.Errorf("state = %s, want fading-out", h.lifecycle.State(ball))
	}
	if h.lifecycle.RequestRemoval(ball) {
		t.Error("second removal started a transition")
	}

	h.settle()
	if h.w.Alive(ball) {
		t.Fatal("ball survived fade-out")
	}
	if h.lifecycle.RequestRemoval(ball) {
		t.Error("stale removal accepted")
	}
	if h.metric("lifecycle.stale") != 1 {
		t.Errorf("stale = %d, want 1", h.metric("lifecycle.stale"))
	}
	if n := h.rec.count(event.EventEntityRemoved); n != 1 {
		t.Errorf("removed events = %d, want 1", n)
	}
}

func TestStaticEntityDestroyedWithoutFade(t *testing.T) {
	h := newHarness(t, core.PhasePlaying)
	barrier := h.active(core.KindBarrier, 0, vmath.V3F(10, 0, 10), vmath.Vec3F{})

	if !h.lifecycle.RequestRemoval(barrier) {
		t.Fatal("removal rejected")
	}
	if h.w.Alive(barrier) {
		t.Error("static barrier not destroyed immediately")
	}
}

func TestUnmanagedEntityDestroyed(t *testing.T) {
	h := newHarness(t, core.PhasePlaying)
	e := h.w.CreateEntity()
	if !h.lifecycle.RequestRemoval(e) || h.w.Alive(e) {
		t.Error("unmanaged entity not destroyed")
	}
}

func TestScopeExitRetiresBalls(t *testing.T) {
	h := newHarness(t, core.PhasePlaying)
	ball := h.active(core.KindBall, 0, vmath.Vec3F{}, vmath.Vec3F{})
	paddle := h.active(core.KindPaddle, core.SideBottom, vmath.V3F(0, 0, 9), vmath.Vec3F{})
	barrier := h.active(core.KindBarrier, 0, vmath.V3F(10, 0, 10), vmath.Vec3F{})

	h.w.Resource.Game.Phase = core.PhaseRoundOver
	h.w.Tick(step)

	if h.lifecycle.State(ball) != component.LifecycleFadingOut {
		t.Errorf("ball state = %s, want fading-out", h.lifecycle.State(ball))
	}
	if h.lifecycle.State(paddle) != component.LifecycleActive {
		t.Errorf("paddle state = %s, want active", h.lifecycle.State(paddle))
	}
	if !h.w.Alive(barrier) {
		t.Error("unscoped barrier removed")
	}
}

func TestRoundResetRetiresScoped(t *testing.T) {
	h := newHarness(t, core.PhasePlaying)
	ball := h.active(core.KindBall, 0, vmath.Vec3F{}, vmath.Vec3F{})
	goal := h.active(core.KindGoal, core.SideTop, vmath.V3F(0, 0, -10), vmath.Vec3F{})
	wall := h.active(core.KindWall, core.SideLeft, vmath.V3F(-10, 0, 0), vmath.Vec3F{})
	barrier := h.active(core.KindBarrier, 0, vmath.V3F(10, 0, 10), vmath.Vec3F{})
	fresh := h.spawn(core.KindBall, 0, vmath.Vec3F{}, vmath.Vec3F{})

	h.w.PushEvent(event.EventRoundReset, nil)
	h.flush()

	if h.lifecycle.State(ball) != component.LifecycleFadingOut || h.lifecycle.State(goal) != component.LifecycleFadingOut {
		t.Errorf("ball=%s goal=%s, want fading-out", h.lifecycle.State(ball), h.lifecycle.State(goal))
	}
	if h.w.Alive(wall) {
		t.Error("static wall not destroyed")
	}
	if !h.w.Alive(barrier) {
		t.Error("barrier removed by round reset")
	}

	h.settle()
	h.settle()
	if h.w.Alive(ball) || h.w.Alive(goal) || h.w.Alive(fresh) {
		t.Error("scoped entities survived round reset")
	}
}

func TestGoalEliminatedRetiresSidePaddles(t *testing.T) {
	h := newHarness(t, core.PhasePlaying)
	left := h.active(core.KindPaddle, core.SideLeft, vmath.V3F(-9, 0, 0), vmath.Vec3F{})
	right := h.active(core.KindPaddle, core.SideRight, vmath.V3F(9, 0, 0), vmath.Vec3F{})

	h.w.PushEvent(event.EventGoalEliminated, &event.GoalEliminatedPayload{Side: core.SideLeft})
	h.flush()

	if h.w.Components.Active.Has(left) {
		t.Error("left paddle still active")
	}
	if !h.w.Components.Active.Has(right) {
		t.Error("right paddle retired")
	}
}

func TestDeactivate(t *testing.T) {
	h := newHarness(t, core.PhasePlaying)
	goal := h.active(core.KindGoal, core.SideTop, vmath.V3F(0, 0, -10), vmath.Vec3F{})

	if !h.lifecycle.Deactivate(goal) {
		t.Fatal("deactivate rejected")
	}
	if h.w.Components.Active.Has(goal) || h.lifecycle.State(goal) != component.LifecycleInert {
		t.Errorf("state = %s", h.lifecycle.State(goal))
	}
	if h.lifecycle.Deactivate(goal) {
		t.Error("second deactivate accepted")
	}
	if !h.lifecycle.RequestRemoval(goal) || h.lifecycle.State(goal) != component.LifecycleFadingOut {
		t.Errorf("inert goal not retired: %s", h.lifecycle.State(goal))
	}
}
