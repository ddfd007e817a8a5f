package parameter

import "time"

// Game Loop & Engine Timing
const (
	// GameUpdateInterval is the simulation tick interval (~60 Hz)
	GameUpdateInterval = 16 * time.Millisecond

	// FrameUpdateInterval is the terminal redraw interval
	FrameUpdateInterval = 33 * time.Millisecond

	// MaxTickDelta caps a single tick step after a stall so physics does not tunnel
	MaxTickDelta = 100 * time.Millisecond
)

// ECS & Resources Limits
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 2048

	// EventBufferMask is the bitmask for fast modulo operations (2048 - 1)
	EventBufferMask = 2047

	// ParallelClassifyThreshold is the contact batch size above which classification fans out
	ParallelClassifyThreshold = 64

	// ParallelClassifyWorkers caps classification goroutines per batch
	ParallelClassifyWorkers = 4
)
