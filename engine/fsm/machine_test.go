package fsm

import (
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/lixenwraith/ball-arena/event"
)

type recorder struct {
	log     []string
	emitted []event.EventType
	allow   bool
}

func newTestMachine(t *testing.T, cfg string) (*Machine[*recorder], *recorder) {
	t.Helper()
	m := NewMachine[*recorder]()
	m.RegisterAction("Log", func(r *recorder, args any) {
		r.log = append(r.log, "act")
	})
	m.RegisterAction("EmitEvent", func(r *recorder, args any) {
		if a, ok := args.(*EmitEventArgs); ok {
			r.emitted = append(r.emitted, a.Type)
		}
	})
	m.RegisterGuard("Allowed", func(r *recorder) bool { return r.allow })
	m.RegisterGuardFactory("StateTimeExceeds", func(machine *Machine[*recorder], args map[string]any) GuardFunc[*recorder] {
		ms, _ := args["ms"].(int)
		d := time.Duration(ms) * time.Millisecond
		return func(*recorder) bool { return machine.TimeInState() >= d }
	})
	if err := m.LoadConfig([]byte(cfg)); err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	r := &recorder{}
	if err := m.Init(r); err != nil {
		t.Fatalf("Init: %v", err)
	}
	return m, r
}

const testGraph = `
initial: Countdown
states:
  Root:
    transitions:
      - trigger: EventGameReset
        target: Countdown
  Countdown:
    on_enter:
      - action: EmitEvent
        event: EventRoundStart
    transitions:
      - trigger: Tick
        target: Playing
        guard: StateTimeExceeds
        guard_args: {ms: 100}
  Playing:
    transitions:
      - trigger: EventPauseToggle
        target: Paused
      - trigger: EventRoundOver
        target: Over
        guards:
          - name: Allowed
  Paused:
    transitions:
      - trigger: EventPauseToggle
        target: Playing
  Over:
    on_enter:
      - action: EmitEvent
        event: EventGameEnd
`

func TestTickTransitionAfterDuration(t *testing.T) {
	m, r := newTestMachine(t, testGraph)

	if got := m.CurrentStateName(); got != "Countdown" {
		t.Fatalf("initial state = %q", got)
	}
	if len(r.emitted) != 1 || r.emitted[0] != event.EventRoundStart {
		t.Fatalf("on_enter not run: %v", r.emitted)
	}

	m.Update(r, 50*time.Millisecond)
	if m.CurrentStateName() != "Countdown" {
		t.Fatal("transitioned too early")
	}
	m.Update(r, 60*time.Millisecond)
	if m.CurrentStateName() != "Playing" {
		t.Fatalf("state = %q, want Playing", m.CurrentStateName())
	}
	if m.TimeInState() != 0 {
		t.Errorf("time in state not reset: %v", m.TimeInState())
	}
}

func TestEventTransitionsAndGuards(t *testing.T) {
	m, r := newTestMachine(t, testGraph)
	m.Update(r, time.Second)

	if !m.HandleEvent(r, event.EventPauseToggle) || m.CurrentStateName() != "Paused" {
		t.Fatalf("pause failed: %q", m.CurrentStateName())
	}
	m.HandleEvent(r, event.EventPauseToggle)

	// Guard blocks
	if m.HandleEvent(r, event.EventRoundOver) {
		t.Fatal("guarded transition fired")
	}
	r.allow = true
	if !m.HandleEvent(r, event.EventRoundOver) || m.CurrentStateName() != "Over" {
		t.Fatalf("state = %q, want Over", m.CurrentStateName())
	}
	if r.emitted[len(r.emitted)-1] != event.EventGameEnd {
		t.Errorf("EmitEvent on enter not compiled: %v", r.emitted)
	}

	// Unhandled event
	if m.HandleEvent(r, event.EventPauseToggle) {
		t.Error("Over should ignore pause")
	}
}

func TestRootTransitionBubblesAndSelfReenters(t *testing.T) {
	m, r := newTestMachine(t, testGraph)
	before := len(r.emitted)

	// Countdown -> Countdown via Root re-runs on_enter
	if !m.HandleEvent(r, event.EventGameReset) {
		t.Fatal("reset not handled")
	}
	if m.CurrentStateName() != "Countdown" {
		t.Fatalf("state = %q", m.CurrentStateName())
	}
	if len(r.emitted) != before+1 {
		t.Errorf("self transition did not re-enter, emitted=%v", r.emitted)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		cfg  string
		want error
	}{
		{"unknown target", "initial: A\nstates:\n  A:\n    transitions:\n      - {trigger: Tick, target: B}\n", ErrUnknownState},
		{"unknown event", "initial: A\nstates:\n  A:\n    transitions:\n      - {trigger: Nope, target: A}\n", ErrUnknownEvent},
		{"unknown guard", "initial: A\nstates:\n  A:\n    transitions:\n      - {trigger: Tick, target: A, guard: Missing}\n", ErrUnknownGuard},
		{"unknown action", "initial: A\nstates:\n  A:\n    on_enter:\n      - {action: Missing}\n", ErrUnknownAction},
		{"missing initial", "initial: Z\nstates:\n  A: {}\n", ErrUnknownState},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMachine[*recorder]()
			err := m.LoadConfig([]byte(tt.cfg))
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestInitWithoutLoad(t *testing.T) {
	m := NewMachine[*recorder]()
	if err := m.Init(&recorder{}); !errors.Is(err, ErrNotLoaded) {
		t.Errorf("err = %v", err)
	}
}

func TestEmitPayloadDecoded(t *testing.T) {
	m := NewMachine[*recorder]()
	var got any
	m.RegisterAction("EmitEvent", func(r *recorder, args any) {
		got = args.(*EmitEventArgs).Payload
	})
	cfg := "initial: A\nstates:\n  A:\n    on_enter:\n      - action: EmitEvent\n        event: EventSoundRequest\n        payload: {sound_type: 4}\n"
	if err := m.LoadConfig([]byte(cfg)); err != nil {
		t.Fatal(err)
	}
	if err := m.Init(&recorder{}); err != nil {
		t.Fatal(err)
	}
	p, ok := got.(*event.SoundRequestPayload)
	if !ok || p.SoundType != 4 {
		t.Errorf("payload = %#v", got)
	}
}

func TestTriggers(t *testing.T) {
	m, _ := newTestMachine(t, testGraph)
	got := m.Triggers()
	want := []event.EventType{event.EventRoundOver, event.EventGameReset, event.EventPauseToggle}
	slices.Sort(want)
	if len(got) != len(want) {
		t.Fatalf("Triggers = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Triggers = %v, want %v", got, want)
		}
	}
}
