package engine

import (
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/ball-arena/config"
	"github.com/lixenwraith/ball-arena/core"
	"github.com/lixenwraith/ball-arena/event"
)

// World contains all entities, their components, systems and resources
type World struct {
	mu           sync.RWMutex
	nextEntityID core.Entity
	alive        map[core.Entity]struct{}

	Resource   Resource
	Components ComponentStore
	stores     []AnyStore

	eventQueue *event.EventQueue
	router     *EventRouter
	frame      atomic.Int64

	systems     []System
	updateMutex sync.Mutex

	statDispatched *atomic.Int64
	statDestroyed  *atomic.Int64
}

// NewWorld creates a world bound to cfg; nil cfg uses config.Default()
func NewWorld(cfg *config.Config) *World {
	if cfg == nil {
		cfg = config.Default()
	}
	queue := event.NewEventQueue()
	w := &World{
		nextEntityID: 1,
		alive:        make(map[core.Entity]struct{}),
		Components:   newComponentStore(),
		eventQueue:   queue,
		router:       NewEventRouter(queue),
		systems:      make([]System, 0, 16),
	}
	w.Resource = newResource(cfg, queue)
	w.stores = w.Components.all()
	w.statDispatched = w.Resource.Status.Ints.Get("engine.events")
	w.statDestroyed = w.Resource.Status.Ints.Get("engine.destroyed")
	return w
}

// CreateEntity reserves a new entity ID, never reused
func (w *World) CreateEntity() core.Entity {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.nextEntityID
	w.nextEntityID++
	w.alive[id] = struct{}{}
	return id
}

// Alive reports whether e was created and not yet destroyed
func (w *World) Alive(e core.Entity) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	_, ok := w.alive[e]
	return ok
}

// DestroyEntity removes all components of an entity, no-op when stale
func (w *World) DestroyEntity(e core.Entity) {
	w.mu.Lock()
	if _, ok := w.alive[e]; !ok {
		w.mu.Unlock()
		return
	}
	delete(w.alive, e)
	w.mu.Unlock()

	for _, s := range w.stores {
		s.Remove(e)
	}
	w.statDestroyed.Add(1)
}

// EntityCount returns the number of live entities
func (w *World) EntityCount() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.alive)
}

// Clear removes all entities and components, discards pending events and re-inits systems
func (w *World) Clear() {
	w.mu.Lock()
	w.alive = make(map[core.Entity]struct{})
	systems := append([]System(nil), w.systems...)
	w.mu.Unlock()

	for _, s := range w.stores {
		s.Clear()
	}
	w.eventQueue.Consume()
	for _, s := range systems {
		s.Init()
	}
}

// AddSystem registers a system, routes its events and keeps systems sorted by priority
// Equal priorities keep registration order
func (w *World) AddSystem(system System) {
	w.mu.Lock()
	defer w.mu.Unlock()

	system.Init()
	w.systems = append(w.systems, system)
	sort.SliceStable(w.systems, func(i, j int) bool {
		return w.systems[i].Priority() < w.systems[j].Priority()
	})
	w.router.Register(system)
}

// Systems returns a copy of all registered systems in run order
func (w *World) Systems() []System {
	w.mu.RLock()
	defer w.mu.RUnlock()
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// RunSafe executes a function while holding the world's update lock
func (w *World) RunSafe(fn func()) {
	w.updateMutex.Lock()
	defer w.updateMutex.Unlock()
	fn()
}

// Tick advances the world by dt: time, event dispatch, then systems by priority
func (w *World) Tick(dt time.Duration) {
	w.RunSafe(func() {
		w.TickLocked(dt)
	})
}

// TickLocked runs a tick assuming the caller already holds the update lock
func (w *World) TickLocked(dt time.Duration) {
	w.Resource.Time.Update(dt)
	w.frame.Store(w.Resource.Time.FrameNumber)

	n := w.router.DispatchAll()
	w.statDispatched.Add(int64(n))

	w.mu.RLock()
	systems := make([]System, len(w.systems))
	copy(systems, w.systems)
	w.mu.RUnlock()

	for _, system := range systems {
		system.Update()
	}
}

// FrameNumber returns the current tick index
func (w *World) FrameNumber() int64 {
	return w.frame.Load()
}

// PushEvent queues an event for the next dispatch
func (w *World) PushEvent(eventType event.EventType, payload any) {
	w.eventQueue.Push(event.GameEvent{
		Type:    eventType,
		Payload: payload,
		Frame:   w.frame.Load(),
	})
}

// Router exposes the event router for handlers that are not systems
func (w *World) Router() *EventRouter {
	return w.router
}
