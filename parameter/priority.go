package parameter

// System Execution Priorities (lower runs first)
const (
	PriorityFlow      = 10 // Phase first, everything below reads it
	PriorityLifecycle = 20 // Scope enforcement after phase change
	PrioritySurvival  = 25 // Round outcome from elimination events
	PriorityRound     = 30 // Serving balls
	PriorityInput     = 40 // Desired paddle velocity
	PriorityPhysics   = 50 // Integrate and detect contacts
	PriorityCollision = 60 // Resolve contacts, hand deflections back
	PriorityFade      = 70 // Advance fade transitions after gameplay
	PrioritySpawn     = 80 // Event-driven only
	PriorityAudio     = 90
	PriorityJournal   = 95 // Logs after cues are played
)
