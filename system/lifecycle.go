package system

import (
	"sync/atomic"

	"github.com/lixenwraith/ball-arena/component"
	"github.com/lixenwraith/ball-arena/core"
	"github.com/lixenwraith/ball-arena/engine"
	"github.com/lixenwraith/ball-arena/event"
	"github.com/lixenwraith/ball-arena/parameter"
)

// LifecycleSystem drives Spawning -> Active -> FadingOut -> Removed
// At most one transition is in flight per entity; removal during Spawning is queued
// Other systems call RequestRemoval and Deactivate synchronously within the tick
type LifecycleSystem struct {
	world *engine.World

	lastPhase core.Phase

	statActivated *atomic.Int64
	statRemoved   *atomic.Int64
	statQueued    *atomic.Int64
	statStale     *atomic.Int64
}

func NewLifecycleSystem(world *engine.World) *LifecycleSystem {
	s := &LifecycleSystem{
		world: world,
	}

	s.statActivated = world.Resource.Status.Ints.Get("lifecycle.activated")
	s.statRemoved = world.Resource.Status.Ints.Get("lifecycle.removed")
	s.statQueued = world.Resource.Status.Ints.Get("lifecycle.queued")
	s.statStale = world.Resource.Status.Ints.Get("lifecycle.stale")

	s.Init()
	return s
}

func (s *LifecycleSystem) Init() {
	s.lastPhase = s.world.Resource.Game.Phase
}

func (s *LifecycleSystem) Name() string {
	return "lifecycle"
}

func (s *LifecycleSystem) Priority() int {
	return parameter.PriorityLifecycle
}

func (s *LifecycleSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventFadeComplete,
		event.EventRemovalRequest,
		event.EventRoundReset,
		event.EventGameEnd,
		event.EventGoalEliminated,
	}
}

func (s *LifecycleSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventFadeComplete:
		if p, ok := ev.Payload.(*event.FadeCompletePayload); ok {
			s.fadeComplete(p.Entity, p.Direction)
		}

	case event.EventRemovalRequest:
		if p, ok := ev.Payload.(*event.RemovalRequestPayload); ok {
			s.RequestRemoval(p.Entity)
		}

	case event.EventRoundReset, event.EventGameEnd:
		s.removeScoped(func(component.LifecycleComponent) bool { return true })

	case event.EventGoalEliminated:
		if p, ok := ev.Payload.(*event.GoalEliminatedPayload); ok && s.world.Resource.Game.Current(p.Epoch) {
			s.removePaddles(p.Side)
		}
	}
}

// Update enforces phase scopes when the game state changes
func (s *LifecycleSystem) Update() {
	phase := s.world.Resource.Game.Phase
	if phase == s.lastPhase {
		return
	}
	s.lastPhase = phase

	s.removeScoped(func(lc component.LifecycleComponent) bool {
		return !lc.Scope.Has(phase)
	})
}

// BeginSpawn places a freshly created entity in Spawning and requests its fade-in
func (s *LifecycleSystem) BeginSpawn(e core.Entity, kind core.EntityKind, scope core.PhaseMask, static bool) {
	s.world.Components.Active.Remove(e)
	s.world.Components.Lifecycle.Set(e, component.LifecycleComponent{
		State:  component.LifecycleSpawning,
		Kind:   kind,
		Scope:  scope,
		Static: static,
	})
	s.world.PushEvent(event.EventFadeInRequest, &event.FadeRequestPayload{Entity: e})
}

// State returns the lifecycle state; destroyed or unmanaged entities report Removed
func (s *LifecycleSystem) State(e core.Entity) component.LifecycleState {
	lc, ok := s.world.Components.Lifecycle.Get(e)
	if !ok {
		return component.LifecycleRemoved
	}
	return lc.State
}

// RequestRemoval retires an entity; returns true if a transition started or was queued
// Active tag is removed before returning. Repeated requests are no-ops
func (s *LifecycleSystem) RequestRemoval(e core.Entity) bool {
	if !s.world.Alive(e) {
		s.statStale.Add(1)
		return false
	}

	lc, ok := s.world.Components.Lifecycle.Get(e)
	if !ok {
		// Unmanaged entity, nothing to fade
		s.destroy(e, core.KindCount)
		return true
	}

	switch lc.State {
	case component.LifecycleSpawning:
		if lc.RemovalQueued {
			return false
		}
		lc.RemovalQueued = true
		s.world.Components.Lifecycle.Set(e, lc)
		s.statQueued.Add(1)
		return true

	case component.LifecycleActive, component.LifecycleInert:
		s.world.Components.Active.Remove(e)
		if lc.Static {
			s.destroy(e, lc.Kind)
			return true
		}
		lc.State = component.LifecycleFadingOut
		s.world.Components.Lifecycle.Set(e, lc)
		s.world.PushEvent(event.EventFadeOutRequest, &event.FadeRequestPayload{Entity: e})
		return true
	}

	// FadingOut or Removed
	return false
}

// Deactivate takes an Active entity permanently out of play without removing it
func (s *LifecycleSystem) Deactivate(e core.Entity) bool {
	lc, ok := s.world.Components.Lifecycle.Get(e)
	if !ok || lc.State != component.LifecycleActive {
		return false
	}
	s.world.Components.Active.Remove(e)
	lc.State = component.LifecycleInert
	s.world.Components.Lifecycle.Set(e, lc)
	return true
}

func (s *LifecycleSystem) fadeComplete(e core.Entity, dir component.FadeDirection) {
	lc, ok := s.world.Components.Lifecycle.Get(e)
	if !ok {
		s.statStale.Add(1)
		return
	}

	switch {
	case dir == component.FadeIn && lc.State == component.LifecycleSpawning:
		lc.State = component.LifecycleActive
		queued := lc.RemovalQueued
		lc.RemovalQueued = false
		s.world.Components.Lifecycle.Set(e, lc)
		s.world.Components.Active.Set(e, component.ActiveComponent{})
		s.statActivated.Add(1)
		s.world.PushEvent(event.EventEntityActivated, &event.EntityPayload{Entity: e, Kind: lc.Kind})

		if queued {
			s.RequestRemoval(e)
		}

	case dir == component.FadeOut && lc.State == component.LifecycleFadingOut:
		s.destroy(e, lc.Kind)
	}
}

func (s *LifecycleSystem) destroy(e core.Entity, kind core.EntityKind) {
	s.world.DestroyEntity(e)
	s.statRemoved.Add(1)
	s.world.PushEvent(event.EventEntityRemoved, &event.EntityPayload{Entity: e, Kind: kind})
}

// removeScoped requests removal of every scoped entity matching pred, ascending by id
func (s *LifecycleSystem) removeScoped(pred func(component.LifecycleComponent) bool) {
	entities := s.world.Query().With(s.world.Components.Lifecycle).Execute()
	for _, e := range entities {
		lc, ok := s.world.Components.Lifecycle.Get(e)
		if !ok || !lc.Scope.Scoped() || !pred(lc) {
			continue
		}
		s.RequestRemoval(e)
	}
}

func (s *LifecycleSystem) removePaddles(side core.GoalSide) {
	paddles := s.world.Query().With(s.world.Components.Paddle).Execute()
	for _, e := range paddles {
		if p, ok := s.world.Components.Paddle.Get(e); ok && p.Side == side {
			s.RequestRemoval(e)
		}
	}
}
