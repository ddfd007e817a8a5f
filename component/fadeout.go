package component

import (
	"time"

	"github.com/lixenwraith/ball-arena/core"
)

// FadeDirection distinguishes spawn-in from exit transitions
type FadeDirection uint8

const (
	FadeIn FadeDirection = iota
	FadeOut
)

func (d FadeDirection) String() string {
	if d == FadeIn {
		return "in"
	}
	return "out"
}

// FadeComponent represents a running visual fade transition
type FadeComponent struct {
	Direction FadeDirection
	Remaining time.Duration
	Duration  time.Duration
	Kind      core.EntityKind
}

// Alpha returns visibility in [0, 1]
func (f FadeComponent) Alpha() float64 {
	if f.Duration <= 0 {
		if f.Direction == FadeIn {
			return 1
		}
		return 0
	}
	progress := 1 - float64(f.Remaining)/float64(f.Duration)
	if progress < 0 {
		progress = 0
	} else if progress > 1 {
		progress = 1
	}
	if f.Direction == FadeIn {
		return progress
	}
	return 1 - progress
}
