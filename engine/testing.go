package engine

import (
	"time"

	"github.com/lixenwraith/ball-arena/config"
	"github.com/lixenwraith/ball-arena/core"
)

// NewTestWorld creates a world with default config and the given phase
// Systems are not registered; tests add the ones they exercise
func NewTestWorld(phase core.Phase) *World {
	w := NewWorld(config.Default())
	w.Resource.Game.Phase = phase
	return w
}

// StepN runs n ticks of dt
func (w *World) StepN(n int, dt time.Duration) {
	for i := 0; i < n; i++ {
		w.Tick(dt)
	}
}
