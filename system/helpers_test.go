package system

import (
	"testing"
	"time"

	"github.com/lixenwraith/ball-arena/component"
	"github.com/lixenwraith/ball-arena/core"
	"github.com/lixenwraith/ball-arena/engine"
	"github.com/lixenwraith/ball-arena/event"
	"github.com/lixenwraith/ball-arena/vmath"
)

const step = 20 * time.Millisecond

// recorder captures routed events in dispatch order
type recorder struct {
	events []event.GameEvent
}

func (r *recorder) Init()         {}
func (r *recorder) Name() string  { return "recorder" }
func (r *recorder) Priority() int { return 0 }
func (r *recorder) Update()       {}
func (r *recorder) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventEntityActivated,
		event.EventEntityRemoved,
		event.EventBallDeflected,
		event.EventGoalScored,
		event.EventGoalEliminated,
		event.EventTeamDefeated,
		event.EventRoundOver,
		event.EventRoundStart,
		event.EventRoundReset,
		event.EventPlayStart,
		event.EventGameEnd,
		event.EventPhaseChanged,
	}
}
func (r *recorder) HandleEvent(ev event.GameEvent) {
	r.events = append(r.events, ev)
}

func (r *recorder) count(et event.EventType) int {
	n := 0
	for _, ev := range r.events {
		if ev.Type == et {
			n++
		}
	}
	return n
}

func (r *recorder) of(et event.EventType) []event.GameEvent {
	var out []event.GameEvent
	for _, ev := range r.events {
		if ev.Type == et {
			out = append(out, ev)
		}
	}
	return out
}

// harness wires the lifecycle pipeline and the resolver without physics
type harness struct {
	t         *testing.T
	w         *engine.World
	lifecycle *LifecycleSystem
	spawner   *SpawnSystem
	scoring   *ScoringMachine
	collision *CollisionSystem
	rec       *recorder
}

func newHarness(t *testing.T, phase core.Phase) *harness {
	t.Helper()
	w := engine.NewTestWorld(phase)
	h := &harness{t: t, w: w, rec: &recorder{}}

	h.lifecycle = NewLifecycleSystem(w)
	h.spawner = NewSpawnSystem(w, h.lifecycle)
	h.scoring = NewScoringMachine(w, h.lifecycle)
	h.collision = NewCollisionSystem(w, nil, h.lifecycle, h.scoring)

	w.AddSystem(h.rec)
	w.AddSystem(h.lifecycle)
	w.AddSystem(NewFadeSystem(w))
	w.AddSystem(h.spawner)
	w.AddSystem(h.collision)
	return h
}

// settle runs long enough for any pending fade to finish and be consumed
func (h *harness) settle() {
	cfg := h.w.Resource.Config
	d := cfg.Timing.FadeIn
	if cfg.Timing.FadeOut > d {
		d = cfg.Timing.FadeOut
	}
	h.w.StepN(int(d/step)+4, step)
}

func (h *harness) spawn(kind core.EntityKind, side core.GoalSide, pos, vel vmath.Vec3F) core.Entity {
	h.t.Helper()
	e := h.spawner.Spawn(&event.SpawnRequestPayload{Kind: kind, Side: side, Position: pos, Velocity: vel})
	if e == 0 {
		h.t.Fatalf("spawn %s failed", kind)
	}
	return e
}

// active spawns an entity and waits for its fade-in
func (h *harness) active(kind core.EntityKind, side core.GoalSide, pos, vel vmath.Vec3F) core.Entity {
	h.t.Helper()
	e := h.spawn(kind, side, pos, vel)
	h.settle()
	if !h.w.Components.Active.Has(e) {
		h.t.Fatalf("%s %d not active after fade-in", kind, e)
	}
	return e
}

func (h *harness) hp(goal core.Entity) component.HitPointsComponent {
	hp, _ := h.w.Components.HitPoints.Get(goal)
	return hp
}

func (h *harness) velocity(e core.Entity) vmath.Vec3F {
	k, _ := h.w.Components.Kinetic.Get(e)
	return k.Velocity
}

func (h *harness) metric(name string) int64 {
	return h.w.Resource.Status.Ints.Get(name).Load()
}

// flush dispatches events pushed outside a tick
func (h *harness) flush() {
	h.w.Tick(0)
}
