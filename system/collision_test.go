package system

import (
	"math"
	"testing"

	"github.com/lixenwraith/ball-arena/component"
	"github.com/lixenwraith/ball-arena/core"
	"github.com/lixenwraith/ball-arena/event"
	"github.com/lixenwraith/ball-arena/parameter"
	"github.com/lixenwraith/ball-arena/vmath"
)

var (
	up   = vmath.V3F(0, 0, 1)
	down = vmath.V3F(0, 0, -1)
)

func TestGateIsAbsolute(t *testing.T) {
	h := newHarness(t, core.PhasePlaying)
	goal := h.active(core.KindGoal, core.SideTop, vmath.V3F(0, 0, -10), vmath.Vec3F{})
	wall := h.active(core.KindWall, core.SideLeft, vmath.V3F(-10, 0, 0), vmath.Vec3F{})
	ball := h.spawn(core.KindBall, 0, vmath.Vec3F{}, vmath.V3F(0, 0, -5))

	out := h.collision.Resolve([]core.Contact{
		{A: ball, B: goal, Normal: up},
		{A: wall, B: ball, Normal: down},
	})

	if len(out) != 0 {
		t.Errorf("spawning ball deflected: %+v", out)
	}
	if hp := h.hp(goal); hp.Current != hp.Max {
		t.Errorf("spawning ball scored: hp=%d", hp.Current)
	}
	if h.metric("collision.gated") != 2 {
		t.Errorf("gated = %d, want 2", h.metric("collision.gated"))
	}
	if h.lifecycle.State(ball) != component.LifecycleSpawning {
		t.Errorf("gated ball changed state: %s", h.lifecycle.State(ball))
	}
}

func TestInactiveGoalIgnored(t *testing.T) {
	h := newHarness(t, core.PhasePlaying)
	goal := h.spawn(core.KindGoal, core.SideTop, vmath.V3F(0, 0, -10), vmath.Vec3F{})
	ball := h.active(core.KindBall, 0, vmath.Vec3F{}, vmath.V3F(0, 0, -5))
	h.lifecycle.RequestRemoval(goal)
	h.settle()
	h.settle()

	goal2 := h.spawn(core.KindGoal, core.SideRight, vmath.V3F(10, 0, 0), vmath.Vec3F{})
	h.collision.Resolve([]core.Contact{
		{A: ball, B: goal, Normal: up},
		{A: ball, B: goal2, Normal: up},
	})

	if h.metric("collision.stale") != 1 || h.metric("collision.gated") != 1 {
		t.Errorf("stale=%d gated=%d", h.metric("collision.stale"), h.metric("collision.gated"))
	}
	if h.lifecycle.State(ball) != component.LifecycleActive {
		t.Errorf("ball retired by ignored contacts: %s", h.lifecycle.State(ball))
	}
}

func TestGoalEliminatedAfterThreeHits(t *testing.T) {
	h := newHarness(t, core.PhasePlaying)
	h.w.Resource.Config.Scoring.HitPoints = 3
	h.w.Resource.Config.Teams.Allies = []string{"top"}

	goal := h.active(core.KindGoal, core.SideTop, vmath.V3F(0, 0, -10), vmath.Vec3F{})

	want := []struct {
		hp         uint32
		eliminated bool
	}{{2, false}, {1, false}, {0, true}}

	for i, w := range want {
		ball := h.active(core.KindBall, 0, vmath.Vec3F{}, vmath.V3F(0, 0, -5))
		h.collision.Resolve([]core.Contact{{A: ball, B: goal, Normal: up}})

		hp := h.hp(goal)
		if hp.Current != w.hp || hp.Eliminated != w.eliminated {
			t.Fatalf("after hit %d: hp=%d eliminated=%v, want %d/%v", i+1, hp.Current, hp.Eliminated, w.hp, w.eliminated)
		}
		if h.lifecycle.State(ball) != component.LifecycleFadingOut {
			t.Errorf("scoring ball %d not retired: %s", i+1, h.lifecycle.State(ball))
		}
	}
	h.flush()

	elims := h.rec.of(event.EventGoalEliminated)
	if len(elims) != 1 {
		t.Fatalf("elimination events = %d, want 1", len(elims))
	}
	p := elims[0].Payload.(*event.GoalEliminatedPayload)
	if p.Team != core.TeamAllies || p.Side != core.SideTop || p.Goal != goal {
		t.Errorf("elimination = %+v", p)
	}

	// The eliminated goal is out of play
	ball := h.active(core.KindBall, 0, vmath.Vec3F{}, vmath.V3F(0, 0, -5))
	h.collision.Resolve([]core.Contact{{A: ball, B: goal, Normal: up}})
	h.flush()
	if hp := h.hp(goal); hp.Current != 0 {
		t.Errorf("hp = %d after elimination", hp.Current)
	}
	if n := h.rec.count(event.EventGoalEliminated); n != 1 {
		t.Errorf("elimination events = %d after extra hit", n)
	}
}

func TestBarrierReflectsOnly(t *testing.T) {
	h := newHarness(t, core.PhasePlaying)
	barrier := h.active(core.KindBarrier, 0, vmath.V3F(10, 0, 10), vmath.Vec3F{})
	ball := h.active(core.KindBall, 0, vmath.V3F(9, 0, 9), vmath.V3F(3, 0, 4))

	n := vmath.V3FNormalize(vmath.V3F(-1, 0, -1))
	for i := 0; i < 10; i++ {
		v := h.velocity(ball)
		out := h.collision.Resolve([]core.Contact{{A: ball, B: barrier, Normal: n}})
		if len(out) != 1 || out[0].Entity != ball {
			t.Fatalf("contact %d: outcomes %+v, want one for the ball", i, out)
		}
		if want := Deflect(v, n); !vmath.V3FNear(out[0].Velocity, want, 1e-9) {
			t.Errorf("contact %d: velocity %+v, want %+v", i, out[0].Velocity, want)
		}
		k, _ := h.w.Components.Kinetic.Get(ball)
		k.Velocity = out[0].Velocity
		h.w.Components.Kinetic.Set(ball, k)
	}

	first := vmath.V3FReflect(vmath.V3F(3, 0, 4), n)
	if !vmath.V3FNear(first, vmath.V3F(-4, 0, -3), 1e-9) {
		t.Errorf("reflection = %+v", first)
	}

	h.flush()
	if h.metric("collision.scoring") != 0 || h.rec.count(event.EventGoalScored) != 0 {
		t.Error("barrier contact reached scoring")
	}
	if h.lifecycle.State(ball) != component.LifecycleActive {
		t.Errorf("ball retired by barrier: %s", h.lifecycle.State(ball))
	}
	if h.rec.count(event.EventBallDeflected) != 10 {
		t.Errorf("deflected events = %d, want 10", h.rec.count(event.EventBallDeflected))
	}
}

func TestSimultaneousHitsApplySequentially(t *testing.T) {
	h := newHarness(t, core.PhasePlaying)
	goal := h.active(core.KindGoal, core.SideRight, vmath.V3F(10, 0, 0), vmath.Vec3F{})
	a := h.spawn(core.KindBall, 0, vmath.V3F(9, 0, 1), vmath.V3F(5, 0, 0))
	b := h.spawn(core.KindBall, 0, vmath.V3F(9, 0, -1), vmath.V3F(5, 0, 0))
	h.settle()

	// Reported in reverse id order; resolution sorts
	h.collision.Resolve([]core.Contact{
		{A: goal, B: b, Normal: vmath.V3F(1, 0, 0)},
		{A: a, B: goal, Normal: vmath.V3F(-1, 0, 0)},
	})
	h.flush()

	hpMax := h.w.Resource.Config.Scoring.HitPoints
	if hp := h.hp(goal); hp.Current != hpMax-2 {
		t.Fatalf("hp = %d, want %d", hp.Current, hpMax-2)
	}
	scored := h.rec.of(event.EventGoalScored)
	if len(scored) != 2 {
		t.Fatalf("scored events = %d, want 2", len(scored))
	}
	first := scored[0].Payload.(*event.GoalScoredPayload)
	second := scored[1].Payload.(*event.GoalScoredPayload)
	if first.Ball != a || first.HitPoints != hpMax-1 || second.Ball != b || second.HitPoints != hpMax-2 {
		t.Errorf("order = %+v, %+v", first, second)
	}
}

func TestScoringBallProducesNoDeflection(t *testing.T) {
	h := newHarness(t, core.PhasePlaying)
	goal := h.active(core.KindGoal, core.SideBottom, vmath.V3F(0, 0, 10), vmath.Vec3F{})
	paddle := h.active(core.KindPaddle, core.SideBottom, vmath.V3F(0, 0, 9), vmath.Vec3F{})
	ball := h.active(core.KindBall, 0, vmath.V3F(0, 0, 9.5), vmath.V3F(0, 0, 5))

	out := h.collision.Resolve([]core.Contact{
		{A: ball, B: paddle, Normal: down},
		{A: ball, B: goal, Normal: down},
	})

	if len(out) != 0 {
		t.Errorf("retired ball deflected: %+v", out)
	}
	if h.lifecycle.State(ball) != component.LifecycleFadingOut {
		t.Errorf("ball state = %s", h.lifecycle.State(ball))
	}

	// Next tick the lingering overlap is gated
	out = h.collision.Resolve([]core.Contact{
		{A: ball, B: paddle, Normal: down},
		{A: ball, B: goal, Normal: down},
	})
	if len(out) != 0 || h.metric("collision.gated") != 2 {
		t.Errorf("lingering overlap: out=%+v gated=%d", out, h.metric("collision.gated"))
	}
	if hp := h.hp(goal); hp.Current != hp.Max-1 {
		t.Errorf("hp = %d, want one hit", hp.Current)
	}
}

func TestDuplicateContactScoresOnce(t *testing.T) {
	h := newHarness(t, core.PhasePlaying)
	goal := h.active(core.KindGoal, core.SideLeft, vmath.V3F(-10, 0, 0), vmath.Vec3F{})
	ball := h.active(core.KindBall, 0, vmath.V3F(-9.5, 0, 0), vmath.V3F(-5, 0, 0))

	c := core.Contact{A: ball, B: goal, Normal: vmath.V3F(1, 0, 0)}
	h.collision.Resolve([]core.Contact{c, c, {A: goal, B: ball, Normal: vmath.V3F(-1, 0, 0)}})

	if hp := h.hp(goal); hp.Current != hp.Max-1 {
		t.Errorf("hp = %d, want one hit", hp.Current)
	}
}

func TestBallOnTwoGoalsScoresBoth(t *testing.T) {
	h := newHarness(t, core.PhasePlaying)
	right := h.active(core.KindGoal, core.SideRight, vmath.V3F(10, 0, 0), vmath.Vec3F{})
	top := h.active(core.KindGoal, core.SideTop, vmath.V3F(0, 0, -10), vmath.Vec3F{})
	ball := h.active(core.KindBall, 0, vmath.V3F(9.8, 0, -9.8), vmath.V3F(1, 0, -1))

	h.collision.Resolve([]core.Contact{
		{A: ball, B: right, Normal: vmath.V3F(-1, 0, 0)},
		{A: ball, B: top, Normal: up},
	})
	h.flush()

	scored := h.rec.of(event.EventGoalScored)
	if len(scored) != 2 {
		t.Fatalf("scored events = %d, want 2", len(scored))
	}
	if scored[0].Payload.(*event.GoalScoredPayload).Side != core.SideTop ||
		scored[1].Payload.(*event.GoalScoredPayload).Side != core.SideRight {
		t.Error("goals not processed in side order")
	}
	if h.metric("lifecycle.stale") != 0 {
		t.Error("ball retired twice")
	}
}

func TestBallBallDeflection(t *testing.T) {
	h := newHarness(t, core.PhasePlaying)
	a := h.spawn(core.KindBall, 0, vmath.V3F(0, 0, 0), vmath.V3F(2, 0, 0))
	b := h.spawn(core.KindBall, 0, vmath.V3F(0.4, 0, 0), vmath.V3F(-3, 0, 0))
	h.settle()

	// Reported with the higher id first
	out := h.collision.Resolve([]core.Contact{{A: b, B: a, Normal: vmath.V3F(1, 0, 0)}})
	if len(out) != 2 {
		t.Fatalf("outcomes = %+v, want two", out)
	}
	got := map[core.Entity]vmath.Vec3F{out[0].Entity: out[0].Velocity, out[1].Entity: out[1].Velocity}
	if !vmath.V3FNear(got[a], vmath.V3F(-2, 0, 0), 1e-9) || !vmath.V3FNear(got[b], vmath.V3F(3, 0, 0), 1e-9) {
		t.Errorf("velocities = %+v", got)
	}
	if h.metric("collision.scoring") != 0 {
		t.Error("ball-ball contact scored")
	}
}

func TestUnclassifiedContactIgnored(t *testing.T) {
	h := newHarness(t, core.PhasePlaying)
	goal := h.active(core.KindGoal, core.SideTop, vmath.V3F(0, 0, -10), vmath.Vec3F{})
	paddle := h.active(core.KindPaddle, core.SideTop, vmath.V3F(0, 0, -9), vmath.Vec3F{})

	if out := h.collision.Resolve([]core.Contact{{A: goal, B: paddle, Normal: up}}); len(out) != 0 {
		t.Errorf("outcomes = %+v", out)
	}
	if h.metric("collision.ignored") != 1 {
		t.Errorf("ignored = %d", h.metric("collision.ignored"))
	}
}

func TestParallelClassifyMatchesSerial(t *testing.T) {
	h := newHarness(t, core.PhasePlaying)
	goal := h.active(core.KindGoal, core.SideTop, vmath.V3F(0, 0, -10), vmath.Vec3F{})
	wall := h.active(core.KindWall, core.SideLeft, vmath.V3F(-10, 0, 0), vmath.Vec3F{})

	var balls []core.Entity
	for i := 0; i < 12; i++ {
		balls = append(balls, h.spawn(core.KindBall, 0, vmath.Vec3F{}, vmath.V3F(1, 0, -1)))
	}
	h.settle()
	late := h.spawn(core.KindBall, 0, vmath.Vec3F{}, vmath.Vec3F{})

	var contacts []core.Contact
	for i := 0; len(contacts) < parameter.ParallelClassifyThreshold*2; i++ {
		b := balls[i%len(balls)]
		switch i % 4 {
		case 0:
			contacts = append(contacts, core.Contact{A: b, B: goal, Normal: up})
		case 1:
			contacts = append(contacts, core.Contact{A: wall, B: b, Normal: vmath.V3F(-1, 0, 0)})
		case 2:
			contacts = append(contacts, core.Contact{A: b, B: balls[(i+1)%len(balls)], Normal: vmath.V3F(1, 0, 0)})
		default:
			contacts = append(contacts, core.Contact{A: late, B: b, Normal: up})
		}
	}

	snap := h.collision.gate.Snapshot(contacts)
	parallel, err := h.collision.classifyAll(contacts, snap)
	if err != nil {
		t.Fatalf("classifyAll: %v", err)
	}
	if len(parallel) != len(contacts) {
		t.Fatalf("classified %d of %d contacts", len(parallel), len(contacts))
	}
	for i, c := range contacts {
		if serial := h.collision.classify(c, snap); serial != parallel[i] {
			t.Fatalf("contact %d: parallel %+v, serial %+v", i, parallel[i], serial)
		}
	}
}

func TestPaddleDeflect(t *testing.T) {
	v := vmath.V3F(0, 0, 4)
	n := vmath.V3F(0, 0, -1)

	got := PaddleDeflect(v, n, vmath.V3F(2, 0, 0), 0.5, 1, 100)
	if !vmath.V3FNear(got, vmath.V3F(1, 0, -4), 1e-9) {
		t.Errorf("spin = %+v, want (1,0,-4)", got)
	}

	got = PaddleDeflect(v, n, vmath.Vec3F{}, 0.5, 1.5, 100)
	if !vmath.V3FNear(got, vmath.V3F(0, 0, -6), 1e-9) {
		t.Errorf("bonus = %+v, want (0,0,-6)", got)
	}

	got = PaddleDeflect(v, n, vmath.Vec3F{}, 0, 2, 5)
	if math.Abs(vmath.V3FMag(got)-5) > 1e-9 {
		t.Errorf("cap = %v, want 5", vmath.V3FMag(got))
	}

	// Already separating
	if got := PaddleDeflect(vmath.V3F(0, 0, -4), n, vmath.V3F(2, 0, 0), 0.5, 2, 100); got != vmath.V3F(0, 0, -4) {
		t.Errorf("separating velocity changed: %+v", got)
	}
}

func TestDeflectSeparatingUnchanged(t *testing.T) {
	v := vmath.V3F(1, 0, 1)
	if got := Deflect(v, up); got != v {
		t.Errorf("Deflect = %+v, want unchanged", got)
	}
	if got := Deflect(vmath.V3F(1, 0, -1), up); got != vmath.V3F(1, 0, 1) {
		t.Errorf("Deflect = %+v", got)
	}
}
