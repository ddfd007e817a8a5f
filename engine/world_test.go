package engine

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/lixenwraith/ball-arena/component"
	"github.com/lixenwraith/ball-arena/core"
	"github.com/lixenwraith/ball-arena/event"
)

// probeSystem records update order and handled events
type probeSystem struct {
	name     string
	priority int
	types    []event.EventType
	trace    *[]string
	onEvent  func(ev event.GameEvent)
	inits    int
}

func (p *probeSystem) Init()                         { p.inits++ }
func (p *probeSystem) Name() string                  { return p.name }
func (p *probeSystem) Priority() int                 { return p.priority }
func (p *probeSystem) EventTypes() []event.EventType { return p.types }
func (p *probeSystem) Update()                       { *p.trace = append(*p.trace, p.name) }
func (p *probeSystem) HandleEvent(ev event.GameEvent) {
	*p.trace = append(*p.trace, p.name+":"+event.GetEventName(ev.Type))
	if p.onEvent != nil {
		p.onEvent(ev)
	}
}

func TestStoreSetGetRemove(t *testing.T) {
	s := NewStore[component.HitPointsComponent]()
	s.Set(1, component.HitPointsComponent{Current: 5, Max: 5})
	s.Set(2, component.HitPointsComponent{Current: 3, Max: 5})
	s.Set(1, component.HitPointsComponent{Current: 4, Max: 5})

	if s.Count() != 2 {
		t.Fatalf("Count = %d, want 2", s.Count())
	}
	if hp, ok := s.Get(1); !ok || hp.Current != 4 {
		t.Errorf("Get(1) = %+v, %v", hp, ok)
	}
	s.Remove(1)
	s.Remove(1)
	if s.Has(1) || s.Count() != 1 {
		t.Error("Remove failed")
	}
	s.RemoveBatch([]core.Entity{2, 99})
	if s.Count() != 0 {
		t.Errorf("RemoveBatch left %d", s.Count())
	}
}

func TestQueryIntersectionSorted(t *testing.T) {
	w := NewWorld(nil)
	var ids []core.Entity
	for i := 0; i < 6; i++ {
		ids = append(ids, w.CreateEntity())
	}
	// Insert in reverse to make store order differ from id order
	for i := len(ids) - 1; i >= 0; i-- {
		w.Components.Ball.Set(ids[i], component.BallComponent{})
		if i%2 == 0 {
			w.Components.Active.Set(ids[i], component.ActiveComponent{})
		}
	}

	got := w.Query().With(w.Components.Ball).With(w.Components.Active).Execute()
	want := []core.Entity{ids[0], ids[2], ids[4]}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got %v, want %v", got, want)
		}
	}
}

func TestDestroyEntityRemovesEverywhere(t *testing.T) {
	w := NewWorld(nil)
	e := w.CreateEntity()
	w.Components.Ball.Set(e, component.BallComponent{})
	w.Components.Active.Set(e, component.ActiveComponent{})
	w.Components.Kinetic.Set(e, component.KineticComponent{})

	if !w.Alive(e) {
		t.Fatal("new entity not alive")
	}
	w.DestroyEntity(e)
	if w.Alive(e) || w.Components.Ball.Has(e) || w.Components.Active.Has(e) || w.Components.Kinetic.Has(e) {
		t.Error("entity survived destroy")
	}
	// Stale destroy is a no-op
	w.DestroyEntity(e)
	if got := w.Resource.Status.Ints.Get("engine.destroyed").Load(); got != 1 {
		t.Errorf("destroyed = %d, want 1", got)
	}
	if next := w.CreateEntity(); next == e {
		t.Error("entity id reused")
	}
}

func TestTickOrderAndDeferredEvents(t *testing.T) {
	w := NewWorld(nil)
	var trace []string

	late := &probeSystem{name: "late", priority: 50, trace: &trace}
	early := &probeSystem{
		name: "early", priority: 10, trace: &trace,
		types: []event.EventType{event.EventRoundStart},
	}
	// Event pushed during dispatch must wait for the next tick
	early.onEvent = func(ev event.GameEvent) {
		w.PushEvent(event.EventPlayStart, nil)
	}
	late.types = []event.EventType{event.EventPlayStart}

	w.AddSystem(late)
	w.AddSystem(early)
	if early.inits != 1 || late.inits != 1 {
		t.Fatal("AddSystem must Init")
	}

	w.PushEvent(event.EventRoundStart, nil)
	w.Tick(time.Millisecond)

	want := []string{"early:EventRoundStart", "early", "late"}
	assertTrace(t, trace, want)

	trace = trace[:0]
	w.Tick(time.Millisecond)
	assertTrace(t, trace, []string{"late:EventPlayStart", "early", "late"})

	if w.FrameNumber() != 2 || w.Resource.Time.GameTime != 2*time.Millisecond {
		t.Errorf("frame=%d game time=%v", w.FrameNumber(), w.Resource.Time.GameTime)
	}
}

func TestClearResetsWorld(t *testing.T) {
	w := NewWorld(nil)
	var trace []string
	p := &probeSystem{name: "p", trace: &trace}
	w.AddSystem(p)
	e := w.CreateEntity()
	w.Components.Goal.Set(e, component.GoalComponent{})
	w.PushEvent(event.EventGameReset, nil)

	w.Clear()
	if w.EntityCount() != 0 || w.Components.Goal.Count() != 0 {
		t.Error("Clear left entities")
	}
	if p.inits != 2 {
		t.Errorf("inits = %d, want 2", p.inits)
	}
	if w.Resource.Event.Queue.Len() != 0 {
		t.Error("Clear left pending events")
	}
}

type countingTicker struct{ n atomic.Int64 }

func (c *countingTicker) Tick(time.Duration) { c.n.Add(1) }

func TestClockSchedulerStopsOnCancel(t *testing.T) {
	target := &countingTicker{}
	cs := NewClockScheduler(target, time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	cs.Start(ctx)

	deadline := time.Now().Add(2 * time.Second)
	for target.n.Load() < 3 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	cancel()
	cs.Stop()

	if target.n.Load() < 3 {
		t.Fatalf("ticks = %d, want >= 3", target.n.Load())
	}
	after := target.n.Load()
	time.Sleep(10 * time.Millisecond)
	if target.n.Load() != after {
		t.Error("scheduler still ticking after Stop")
	}
	if cs.TickCount() != uint64(after) {
		t.Errorf("TickCount = %d, want %d", cs.TickCount(), after)
	}
}

func assertTrace(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("trace = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("trace = %v, want %v", got, want)
		}
	}
}
