package event

// EventType represents the type of game event
type EventType int

const (
	// EventTick is reserved for automatic FSM transitions, never pushed
	EventTick EventType = iota

	// === Lifecycle Event ===

	// EventSpawnRequest asks the spawner to create an entity in Spawning state
	// Trigger: RoundSystem, tests | Consumer: SpawnSystem | Payload: *SpawnRequestPayload
	EventSpawnRequest

	// EventRemovalRequest asks the lifecycle manager to retire an entity
	// Trigger: Physics (out of bounds), other systems | Consumer: LifecycleSystem | Payload: *RemovalRequestPayload
	EventRemovalRequest

	// EventFadeInRequest starts a spawn-in transition (begin_fade_in)
	// Trigger: LifecycleSystem | Consumer: FadeSystem | Payload: *FadeRequestPayload
	EventFadeInRequest

	// EventFadeOutRequest starts an exit transition (begin_fade_out)
	// Trigger: LifecycleSystem | Consumer: FadeSystem | Payload: *FadeRequestPayload
	EventFadeOutRequest

	// EventFadeComplete reports a finished fade transition (fade_complete)
	// Trigger: FadeSystem | Consumer: LifecycleSystem | Payload: *FadeCompletePayload
	EventFadeComplete

	// EventEntityActivated notifies that an entity gained the Active tag after spawning
	// Trigger: LifecycleSystem | Consumer: observers | Payload: *EntityPayload
	EventEntityActivated

	// EventEntityRemoved notifies that an entity was destroyed
	// Trigger: LifecycleSystem | Consumer: observers | Payload: *EntityPayload
	EventEntityRemoved

	// === Gameplay Event ===

	// EventBallDeflected notifies a deflection outcome
	// Trigger: CollisionSystem | Consumer: AudioSystem | Payload: *BallDeflectedPayload
	EventBallDeflected

	// EventGoalScored notifies a hit-point decrement
	// Trigger: ScoringSystem | Consumer: AudioSystem, observers | Payload: *GoalScoredPayload
	EventGoalScored

	// EventGoalEliminated is goal_eliminated(team, goal), emitted exactly once per goal
	// Trigger: ScoringSystem | Consumer: LifecycleSystem, SurvivalSystem, RoundSystem | Payload: *GoalEliminatedPayload
	EventGoalEliminated

	// EventTeamDefeated signals that a team has no defended goal left
	// Trigger: SurvivalSystem | Consumer: observers | Payload: *TeamPayload
	EventTeamDefeated

	// === Flow Event ===

	// EventRoundOver signals that exactly one team remains
	// Trigger: SurvivalSystem | Consumer: FSM | Payload: *TeamPayload
	EventRoundOver

	// EventRoundStart signals a new round entering countdown
	// Trigger: FSM | Consumer: RoundSystem, SurvivalSystem | Payload: nil
	EventRoundStart

	// EventRoundReset is reset_round(): bulk fade-out of scoped entities
	// Trigger: FSM | Consumer: LifecycleSystem | Payload: nil
	EventRoundReset

	// EventPlayStart signals the countdown elapsed
	// Trigger: FSM | Consumer: RoundSystem | Payload: nil
	EventPlayStart

	// EventGameEnd is end_game(): bulk fade-out of scoped entities, match decided
	// Trigger: FSM | Consumer: LifecycleSystem | Payload: nil
	EventGameEnd

	// EventGameReset requests a fresh match
	// Trigger: Runner input | Consumer: FSM, SurvivalSystem, RoundSystem | Payload: nil
	EventGameReset

	// EventPauseToggle flips between Playing and Paused
	// Trigger: Runner input | Consumer: FSM | Payload: nil
	EventPauseToggle

	// EventPhaseChanged notifies a game-state transition
	// Trigger: FlowSystem | Consumer: observers | Payload: *PhaseChangedPayload
	EventPhaseChanged

	// === Audio Event ===

	// EventSoundRequest requests audio playback
	// Trigger: Systems requiring audio feedback | Consumer: AudioSystem | Payload: *SoundRequestPayload
	EventSoundRequest

	eventTypeCount
)

// GameEvent is a single queued event stamped with the frame it was raised in
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64
}
