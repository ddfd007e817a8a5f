package engine

import "github.com/lixenwraith/ball-arena/event"

// System is a unit of per-tick logic that may also consume routed events
type System interface {
	// Init resets internal state; called on registration and on world reset
	Init()

	Name() string

	// Priority orders Update calls, lower runs first
	Priority() int

	EventHandler
	Update()
}

// EventHandler processes specific event types
type EventHandler interface {
	// HandleEvent is called synchronously during dispatch, before systems update
	HandleEvent(ev event.GameEvent)

	// EventTypes returns the event types this handler processes
	EventTypes() []event.EventType
}
