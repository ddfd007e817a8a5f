package arena

import (
	"fmt"
	"log"
	"time"

	"github.com/lixenwraith/ball-arena/config"
	"github.com/lixenwraith/ball-arena/engine"
	"github.com/lixenwraith/ball-arena/event"
	"github.com/lixenwraith/ball-arena/physics"
	"github.com/lixenwraith/ball-arena/system"
)

// Arena composes the simulation: one world, systems registered in a fixed order
// All mutating entry points take the world update lock
type Arena struct {
	world *engine.World

	flow      *system.FlowSystem
	lifecycle *system.LifecycleSystem
	survival  *system.SurvivalSystem
	spawner   *system.SpawnSystem
	space     *physics.Space
}

// New validates cfg and builds the pipeline; nil cfg uses config.Default()
func New(cfg *config.Config, opts ...Option) (*Arena, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := options{logger: log.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	world := engine.NewWorld(cfg)
	world.Resource.Log = o.logger
	world.Resource.Audio.Player = o.player

	a := &Arena{world: world}

	var err error
	if o.flow != nil {
		a.flow, err = system.NewFlowSystemFromGraph(world, o.flow)
	} else {
		a.flow, err = system.NewFlowSystem(world)
	}
	if err != nil {
		return nil, fmt.Errorf("arena: %w", err)
	}

	a.lifecycle = system.NewLifecycleSystem(world)
	a.survival = system.NewSurvivalSystem(world)
	a.spawner = system.NewSpawnSystem(world, a.lifecycle)
	a.space = physics.NewSpace(world)
	scoring := system.NewScoringMachine(world, a.lifecycle)
	collision := system.NewCollisionSystem(world, a.space, a.lifecycle, scoring)

	// Flow first so the lifecycle sees the initial phase
	world.AddSystem(a.flow)
	world.AddSystem(a.lifecycle)
	world.AddSystem(a.survival)
	world.AddSystem(system.NewRoundSystem(world, a.spawner))
	world.AddSystem(system.NewInputSystem(world))
	world.AddSystem(a.space)
	world.AddSystem(collision)
	world.AddSystem(system.NewFadeSystem(world))
	world.AddSystem(a.spawner)
	world.AddSystem(system.NewAudioSystem(world))
	world.AddSystem(system.NewJournalSystem(world))

	o.logger.Printf("arena: %d systems, seed %#x, allies %v", len(world.Systems()), cfg.Seed, cfg.Teams.Allies)
	return a, nil
}

// Tick advances the simulation by dt
func (a *Arena) Tick(dt time.Duration) {
	a.world.Tick(dt)
}

// World exposes the underlying world for tools and tests
func (a *Arena) World() *engine.World {
	return a.world
}

// SetInput sets the keyboard paddle axis, clamped to [-1, 1] on use
func (a *Arena) SetInput(axis float64) {
	a.world.RunSafe(func() {
		a.world.Resource.Input.Axis = axis
	})
}

// TogglePause flips between Playing and Paused on the next tick
func (a *Arena) TogglePause() {
	a.world.PushEvent(event.EventPauseToggle, nil)
}

// Reset starts a new match on the next tick
func (a *Arena) Reset() {
	a.world.PushEvent(event.EventGameReset, nil)
}

// SetAudioPlayer swaps the cue player; nil silences cues
func (a *Arena) SetAudioPlayer(p engine.AudioPlayer) {
	a.world.RunSafe(func() {
		a.world.Resource.Audio.Player = p
	})
}

// ToggleMute flips the player's mute state; false when no player is attached
func (a *Arena) ToggleMute() bool {
	var muted bool
	a.world.RunSafe(func() {
		if p := a.world.Resource.Audio.Player; p != nil {
			muted = p.ToggleMute()
		}
	})
	return muted
}

// State returns the active flow state name
func (a *Arena) State() string {
	var name string
	a.world.RunSafe(func() {
		name = a.flow.StateName()
	})
	return name
}

// Metrics copies the integer telemetry counters
func (a *Arena) Metrics() map[string]int64 {
	return a.world.Resource.Status.IntSnapshot()
}
