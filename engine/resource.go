package engine

import (
	"io"
	"log"
	"time"

	"github.com/lixenwraith/ball-arena/config"
	"github.com/lixenwraith/ball-arena/core"
	"github.com/lixenwraith/ball-arena/event"
	"github.com/lixenwraith/ball-arena/status"
)

// Resource holds singleton game resources, accessed via World.Resource
type Resource struct {
	Time   *TimeResource
	Config *config.Config
	Game   *GameStateResource
	Input  *InputResource
	Event  *EventQueueResource

	// Telemetry
	Status *status.Registry
	Log    *log.Logger

	// Bridged from the runner, nil Player means silent
	Audio *AudioResource
}

// TimeResource is updated at the start of every tick
type TimeResource struct {
	// GameTime accumulates simulated time
	GameTime time.Duration

	// DeltaTime is the step of the current tick
	DeltaTime time.Duration

	FrameNumber int64
}

// Update modifies TimeResource in place; caller holds the world update lock
func (tr *TimeResource) Update(dt time.Duration) {
	tr.GameTime += dt
	tr.DeltaTime = dt
	tr.FrameNumber++
}

// GameStateResource is the explicit game-state context read by systems
// Written only by FlowSystem (Phase) and SurvivalSystem (rounds, wins)
type GameStateResource struct {
	Phase core.Phase
	Round int

	// Epoch advances on every round start and match reset
	// Round-scoped events carry it so late deliveries can be dropped
	Epoch uint64
	Wins  [core.TeamCount]int

	// LastWinner is valid when HasWinner is set for the current round
	LastWinner core.Team
	HasWinner  bool

	// Champion is valid when MatchDecided is set
	Champion     core.Team
	MatchDecided bool
}

// ResetMatch clears rounds and wins for a new match
func (g *GameStateResource) ResetMatch() {
	g.Epoch++
	g.Round = 0
	g.Wins = [core.TeamCount]int{}
	g.HasWinner = false
	g.MatchDecided = false
}

// StartRound opens the next round
func (g *GameStateResource) StartRound() {
	g.Epoch++
	g.Round++
	g.HasWinner = false
}

// Current reports whether an event stamped with epoch belongs to this round
func (g *GameStateResource) Current(epoch uint64) bool {
	return epoch == g.Epoch
}

// InputResource carries runner input into the tick
type InputResource struct {
	// Axis is the keyboard paddle direction in [-1, 1]
	Axis float64
}

// EventQueueResource wraps the event queue for system access
type EventQueueResource struct {
	Queue *event.EventQueue
}

// AudioPlayer defines the minimal audio interface used by game systems
type AudioPlayer interface {
	Play(core.SoundType) bool
	ToggleMute() bool
	IsMuted() bool
}

// AudioResource wraps the audio player
type AudioResource struct {
	Player AudioPlayer
}

func newResource(cfg *config.Config, queue *event.EventQueue) Resource {
	return Resource{
		Time:   &TimeResource{},
		Config: cfg,
		Game:   &GameStateResource{},
		Input:  &InputResource{},
		Event:  &EventQueueResource{Queue: queue},
		Status: status.NewRegistry(),
		Log:    log.New(io.Discard, "", 0),
		Audio:  &AudioResource{},
	}
}
