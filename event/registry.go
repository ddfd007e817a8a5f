package event

import (
	"reflect"
	"strings"
	"sync"
)

var (
	registryOnce  sync.Once
	nameToType    = make(map[string]EventType)
	typeToName    = make(map[EventType]string)
	typeToPayload = make(map[EventType]reflect.Type)
)

// registerType maps a string name to an EventType and its payload struct type
// payloadInstance should be a pointer to the payload struct; nil if the event has no payload
func registerType(name string, et EventType, payloadInstance any) {
	nameToType[name] = et
	typeToName[et] = name
	if payloadInstance != nil {
		t := reflect.TypeOf(payloadInstance)
		if t.Kind() == reflect.Ptr {
			t = t.Elem()
		}
		typeToPayload[et] = t
	}
}

// GetEventType returns the EventType for a given name
func GetEventType(name string) (EventType, bool) {
	initRegistry()
	if strings.EqualFold(name, "Tick") {
		return EventTick, true
	}
	et, ok := nameToType[name]
	return et, ok
}

// GetEventName returns the string name for an EventType
func GetEventName(et EventType) string {
	initRegistry()
	if et == EventTick {
		return "Tick"
	}
	return typeToName[et]
}

// NewPayloadStruct returns a new pointer to a zero-value payload struct for the event type
// Returns nil if no payload is registered
func NewPayloadStruct(et EventType) any {
	initRegistry()
	t, ok := typeToPayload[et]
	if !ok {
		return nil
	}
	return reflect.New(t).Interface()
}

func initRegistry() {
	registryOnce.Do(func() {
		registerType("EventSpawnRequest", EventSpawnRequest, &SpawnRequestPayload{})
		registerType("EventRemovalRequest", EventRemovalRequest, &RemovalRequestPayload{})
		registerType("EventFadeInRequest", EventFadeInRequest, &FadeRequestPayload{})
		registerType("EventFadeOutRequest", EventFadeOutRequest, &FadeRequestPayload{})
		registerType("EventFadeComplete", EventFadeComplete, &FadeCompletePayload{})
		registerType("EventEntityActivated", EventEntityActivated, &EntityPayload{})
		registerType("EventEntityRemoved", EventEntityRemoved, &EntityPayload{})

		registerType("EventBallDeflected", EventBallDeflected, &BallDeflectedPayload{})
		registerType("EventGoalScored", EventGoalScored, &GoalScoredPayload{})
		registerType("EventGoalEliminated", EventGoalEliminated, &GoalEliminatedPayload{})
		registerType("EventTeamDefeated", EventTeamDefeated, &TeamPayload{})

		registerType("EventRoundOver", EventRoundOver, &TeamPayload{})
		registerType("EventRoundStart", EventRoundStart, nil)
		registerType("EventRoundReset", EventRoundReset, nil)
		registerType("EventPlayStart", EventPlayStart, nil)
		registerType("EventGameEnd", EventGameEnd, nil)
		registerType("EventGameReset", EventGameReset, nil)
		registerType("EventPauseToggle", EventPauseToggle, nil)
		registerType("EventPhaseChanged", EventPhaseChanged, &PhaseChangedPayload{})

		registerType("EventSoundRequest", EventSoundRequest, &SoundRequestPayload{})
	})
}
