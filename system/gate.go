package system

import (
	"github.com/lixenwraith/ball-arena/component"
	"github.com/lixenwraith/ball-arena/core"
	"github.com/lixenwraith/ball-arena/engine"
)

// ActivityGate answers is_active(entity): true iff the entity bears the Active tag
// Pure predicate, safe for concurrent readers
type ActivityGate struct {
	active *engine.Store[component.ActiveComponent]
}

func NewActivityGate(world *engine.World) ActivityGate {
	return ActivityGate{active: world.Components.Active}
}

func (g ActivityGate) IsActive(e core.Entity) bool {
	return g.active.Has(e)
}

// GateSnapshot freezes gate answers for a set of entities
type GateSnapshot map[core.Entity]bool

// Snapshot records the gate state of every entity named by the contacts
func (g ActivityGate) Snapshot(contacts []core.Contact) GateSnapshot {
	snap := make(GateSnapshot, len(contacts)*2)
	for _, c := range contacts {
		if _, ok := snap[c.A]; !ok {
			snap[c.A] = g.IsActive(c.A)
		}
		if _, ok := snap[c.B]; !ok {
			snap[c.B] = g.IsActive(c.B)
		}
	}
	return snap
}

func (s GateSnapshot) IsActive(e core.Entity) bool {
	return s[e]
}
