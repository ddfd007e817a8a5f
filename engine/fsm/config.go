package fsm

// RootConfig represents the top-level config structure
type RootConfig struct {
	InitialState string                  `yaml:"initial"`
	States       map[string]*StateConfig `yaml:"states"`
}

// StateConfig represents a single state definition
type StateConfig struct {
	Parent      string             `yaml:"parent,omitempty"`
	OnEnter     []ActionConfig     `yaml:"on_enter,omitempty"`
	OnUpdate    []ActionConfig     `yaml:"on_update,omitempty"`
	OnExit      []ActionConfig     `yaml:"on_exit,omitempty"`
	Transitions []TransitionConfig `yaml:"transitions,omitempty"`
}

// TransitionConfig represents a transition definition
// Guard and every entry of Guards must all pass
type TransitionConfig struct {
	Trigger   string         `yaml:"trigger"`              // Event name or "Tick"
	Target    string         `yaml:"target"`               // Target state name
	Guard     string         `yaml:"guard,omitempty"`      // Guard function name
	GuardArgs map[string]any `yaml:"guard_args,omitempty"` // Parameters for factory guards
	Guards    []GuardConfig  `yaml:"guards,omitempty"`
}

// GuardConfig names a guard with optional factory args
type GuardConfig struct {
	Name string         `yaml:"name"`
	Args map[string]any `yaml:"args,omitempty"`
}

// ActionConfig represents an action definition
type ActionConfig struct {
	Action  string         `yaml:"action"`            // Action function name (e.g. "EmitEvent")
	Event   string         `yaml:"event,omitempty"`   // For EmitEvent: event name
	Payload map[string]any `yaml:"payload,omitempty"` // For EmitEvent: payload fields
}
